package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sitegather/sitegather/internal/crawler"
)

// csvHeader is the column layout of the CSV report
var csvHeader = []string{"url", "title", "status", "link_count", "links", "content"}

// WriteCSV writes the result collection as CSV. Rows appear in
// visitation order; links are space-joined into a single cell.
func WriteCSV(w io.Writer, results []crawler.PageRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range results {
		rec := &results[i]
		row := []string{
			rec.URL,
			rec.Title,
			strconv.Itoa(rec.Status),
			strconv.Itoa(len(rec.Links)),
			strings.Join(rec.Links, " "),
			rec.Content,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rec.URL, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV report to the given path
func WriteCSVFile(path string, results []crawler.PageRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := WriteCSV(f, results); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
