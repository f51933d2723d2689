package crawler

import "context"

// Crawler defines the main crawling interface
type Crawler interface {
	// Run executes a full crawl and returns the ordered result
	// collection. Only configuration problems or context cancellation
	// produce an error; per-page failures degrade into records instead.
	Run(ctx context.Context) ([]PageRecord, error)
	Stats() CrawlStats
	Status() Status
}

// PageProcessor turns one URL into a PageRecord. A failed fetch or parse
// must yield a degraded record, never an error, so a single bad page
// cannot abort a run.
type PageProcessor interface {
	Process(ctx context.Context, pageURL string) *PageRecord
}
