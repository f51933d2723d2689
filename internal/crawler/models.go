package crawler

import "time"

// ErrorTitle is the title sentinel recorded when a page could not be
// fetched or parsed.
const ErrorTitle = "Error"

// StatusFailed is the status code recorded for a failed fetch or parse.
// It is distinct from every valid HTTP status code.
const StatusFailed = 0

// PageRecord is the structured result of visiting one URL
type PageRecord struct {
	URL     string   // URL that was visited
	Title   string   // Page title, "No Title" if absent, "Error" on failure
	Content string   // Visible text, whitespace-collapsed and truncated; error description on failure
	Links   []string // Absolute outbound URLs in document order; empty on failure
	Status  int      // HTTP status code, 0 on fetch/parse failure
}

// Failed reports whether the record was degraded by a fetch or parse failure
func (r *PageRecord) Failed() bool {
	return r.Status == StatusFailed
}

// Progress is a point-in-time snapshot of a running crawl, emitted after
// every visited page. Fraction is always within [0.0, 1.0].
type Progress struct {
	Fraction float64     // Visited pages over the page budget, capped at 1.0
	Visited  int         // Number of pages visited so far
	Latest   *PageRecord // Record produced by the most recent visit
}

// ProgressFunc receives progress notifications from the crawl loop.
// Implementations must not mutate the record.
type ProgressFunc func(Progress)

// CrawlStats represents crawling statistics
type CrawlStats struct {
	PagesVisited int
	ErrorCount   int
	StartTime    time.Time
	Duration     time.Duration
}
