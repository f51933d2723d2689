// Package report turns a finished crawl's result collection into
// artifacts: a run summary, a CSV file, and a SQLite database. It only
// consumes records; the crawl engine never depends on it.
package report

import "github.com/sitegather/sitegather/internal/crawler"

// Summary aggregates a result collection for display at run end
type Summary struct {
	PagesScraped int // Total records, successes and failures alike
	Successful   int // Records with a 2xx status
	Errors       int // Records with any other status, degraded ones included
}

// Summarize computes the run summary from the result collection
func Summarize(results []crawler.PageRecord) Summary {
	s := Summary{PagesScraped: len(results)}
	for i := range results {
		if results[i].Status >= 200 && results[i].Status < 300 {
			s.Successful++
		} else {
			s.Errors++
		}
	}
	return s
}
