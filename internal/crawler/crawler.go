// Package crawler provides the core web crawling functionality.
// It implements a sequential, breadth-first crawler bounded by a page
// budget and a domain-scope rule, with per-host rate limiting and
// per-page failure recovery.
package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sitegather/sitegather/internal/config"
)

// Status describes the crawler lifecycle: Idle until a run starts,
// Running for its duration, Completed afterwards.
type Status int

// Crawler lifecycle states
const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
)

// String returns the lifecycle state name
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// DefaultCrawler implements the Crawler interface
type DefaultCrawler struct {
	config      *config.CrawlConfig
	httpClient  *HTTPClient
	processor   PageProcessor
	rateLimiter *RateLimiter
	seedHost    string
	onProgress  ProgressFunc

	status Status
	stats  CrawlStats
}

// NewCrawler creates a new crawler instance. The configuration is
// validated up front: an invalid seed URL or out-of-range option is
// reported here, before any state exists or any request is made.
// onProgress may be nil when the caller does not render progress.
func NewCrawler(cfg *config.CrawlConfig, onProgress ProgressFunc) (*DefaultCrawler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := NewHTTPClient(cfg.UserAgent, cfg.RequestTimeout)

	return &DefaultCrawler{
		config:      cfg,
		httpClient:  httpClient,
		processor:   NewPageProcessor(httpClient),
		rateLimiter: NewRateLimiter(cfg.RequestDelay),
		seedHost:    cfg.SeedHost(),
		onProgress:  onProgress,
		status:      StatusIdle,
	}, nil
}

// Run executes the crawl to completion on the calling goroutine.
// Loop per iteration: check budget, dequeue (skipping already-visited
// entries without counting them), mark visited, rate-limit, fetch and
// extract (or degrade), append the record, schedule in-scope links, and
// report progress. The frontier grows finitely between budget checks, so
// termination is always reached even on sites with unbounded link graphs.
//
// On context cancellation the records collected so far are returned
// alongside an interruption error.
func (c *DefaultCrawler) Run(ctx context.Context) ([]PageRecord, error) {
	state := NewCrawlState(c.config.SeedURL)
	c.status = StatusRunning
	c.stats = CrawlStats{StartTime: time.Now()}
	defer func() {
		c.stats.Duration = time.Since(c.stats.StartTime)
		c.status = StatusCompleted
	}()

	slog.Info("Starting crawl",
		"seed", c.config.SeedURL,
		"max_pages", c.config.MaxPages,
		"delay", c.config.RequestDelay,
		"include_external", c.config.IncludeExternal)

	for state.VisitedCount() < c.config.MaxPages {
		current, ok := state.Dequeue()
		if !ok {
			break
		}

		// Lazy deduplication: duplicates are tolerated in the frontier
		// and dropped here. A skip consumes no delay and no progress.
		if state.Visited(current) {
			continue
		}
		state.MarkVisited(current)

		if err := c.rateLimiter.Wait(ctx, current); err != nil {
			slog.Info("Crawl interrupted", "visited", state.VisitedCount(), "error", err)
			return state.Results(), fmt.Errorf("crawl interrupted: %w", err)
		}

		record := c.processor.Process(ctx, current)
		state.Append(*record)
		c.stats.PagesVisited++
		if record.Failed() {
			c.stats.ErrorCount++
			slog.Warn("Page degraded", "url", current, "reason", record.Content)
		} else {
			slog.Info("Visited page", "url", current, "status", record.Status, "links", len(record.Links))
		}

		c.scheduleLinks(state, record.Links)
		c.reportProgress(state, record)
	}

	slog.Info("Crawl completed",
		"pages", state.VisitedCount(),
		"errors", c.stats.ErrorCount,
		"frontier_remaining", state.FrontierLen())

	return state.Results(), nil
}

// scheduleLinks pushes not-yet-visited, in-scope links onto the frontier.
// Invalid or out-of-scope links are dropped silently; they are not errors.
func (c *DefaultCrawler) scheduleLinks(state *CrawlState, links []string) {
	for _, link := range links {
		if state.Visited(link) {
			continue
		}
		if !InScope(link, c.seedHost, c.config.IncludeExternal) {
			continue
		}
		state.Enqueue(link)
	}
}

// reportProgress emits the progress fraction and the latest record
func (c *DefaultCrawler) reportProgress(state *CrawlState, record *PageRecord) {
	if c.onProgress == nil {
		return
	}

	fraction := float64(state.VisitedCount()) / float64(c.config.MaxPages)
	if fraction > 1.0 {
		fraction = 1.0
	}

	c.onProgress(Progress{
		Fraction: fraction,
		Visited:  state.VisitedCount(),
		Latest:   record,
	})
}

// Stats returns statistics for the current or most recent run
func (c *DefaultCrawler) Stats() CrawlStats {
	stats := c.stats
	if c.status == StatusRunning {
		stats.Duration = time.Since(stats.StartTime)
	}
	return stats
}

// Status returns the crawler lifecycle state
func (c *DefaultCrawler) Status() Status {
	return c.status
}

// Close releases network resources held by the crawler
func (c *DefaultCrawler) Close() {
	c.httpClient.Close()
}
