package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/sitegather/sitegather/internal/parser"
)

// DefaultPageProcessor implements the PageProcessor interface
type DefaultPageProcessor struct {
	httpClient *HTTPClient
}

// NewPageProcessor creates a page processor backed by the given client
func NewPageProcessor(httpClient *HTTPClient) PageProcessor {
	return &DefaultPageProcessor{httpClient: httpClient}
}

// Process fetches and extracts a single page. Every failure path returns
// a degraded record carrying the error description in place of content.
func (p *DefaultPageProcessor) Process(ctx context.Context, pageURL string) *PageRecord {
	resp, err := p.httpClient.Get(ctx, pageURL)
	if err != nil {
		slog.Debug("Fetch failed", "url", pageURL, "error", err)
		return degradedRecord(pageURL, err)
	}

	// Links resolve against the requested URL, not the post-redirect one,
	// so traversal order stays stable across redirect chains.
	base, err := url.Parse(pageURL)
	if err != nil {
		return degradedRecord(pageURL, err)
	}

	extraction, err := parser.Extract(base, resp.Body)
	if err != nil {
		slog.Debug("Extraction failed", "url", pageURL, "error", err)
		return degradedRecord(pageURL, err)
	}

	return &PageRecord{
		URL:     pageURL,
		Title:   extraction.Title,
		Content: extraction.Content,
		Links:   extraction.Links,
		Status:  resp.StatusCode,
	}
}

// degradedRecord synthesizes the record for a failed fetch or parse
func degradedRecord(pageURL string, err error) *PageRecord {
	return &PageRecord{
		URL:     pageURL,
		Title:   ErrorTitle,
		Content: fmt.Sprintf("Error scraping page: %v", err),
		Links:   []string{},
		Status:  StatusFailed,
	}
}
