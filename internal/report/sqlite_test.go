package report

import (
	"path/filepath"
	"testing"
)

func newTestWriter(t *testing.T) *SQLiteWriter {
	t.Helper()

	w, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "report.db"))
	if err != nil {
		t.Fatalf("Failed to create SQLite writer: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestSQLiteWriterSave(t *testing.T) {
	w := newTestWriter(t)

	if err := w.Save(sampleResults()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	count, err := w.PageCount()
	if err != nil {
		t.Fatalf("PageCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 pages, got %d", count)
	}

	// Order, titles, and link fan-out survive the round trip
	rows, err := w.db.Query("SELECT url, title, status_code, link_count FROM pages ORDER BY position")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	defer func() { _ = rows.Close() }()

	want := []struct {
		url       string
		title     string
		status    int
		linkCount int
	}{
		{"https://example.com/", "Home", 200, 2},
		{"https://example.com/a", "Error", 0, 0},
		{"https://example.com/b", "No Title", 200, 1},
	}

	i := 0
	for rows.Next() {
		var url, title string
		var status, linkCount int
		if err := rows.Scan(&url, &title, &status, &linkCount); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if i >= len(want) {
			t.Fatalf("More rows than expected")
		}
		if url != want[i].url || title != want[i].title || status != want[i].status || linkCount != want[i].linkCount {
			t.Errorf("Row %d: got (%s, %s, %d, %d), want %+v", i, url, title, status, linkCount, want[i])
		}
		i++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Rows iteration failed: %v", err)
	}
	if i != len(want) {
		t.Errorf("Expected %d rows, got %d", len(want), i)
	}

	var linkTotal int
	if err := w.db.QueryRow("SELECT COUNT(*) FROM links").Scan(&linkTotal); err != nil {
		t.Fatalf("Link count query failed: %v", err)
	}
	if linkTotal != 3 {
		t.Errorf("Expected 3 link rows, got %d", linkTotal)
	}
}

func TestSQLiteWriterFailedPagesView(t *testing.T) {
	w := newTestWriter(t)

	if err := w.Save(sampleResults()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var url, message string
	err := w.db.QueryRow("SELECT url, error_message FROM failed_pages").Scan(&url, &message)
	if err != nil {
		t.Fatalf("View query failed: %v", err)
	}
	if url != "https://example.com/a" {
		t.Errorf("Expected the degraded record in the view, got %q", url)
	}
	if message == "" {
		t.Error("Expected the error description to be stored")
	}
}

func TestSQLiteWriterSaveTwice(t *testing.T) {
	w := newTestWriter(t)

	results := sampleResults()
	if err := w.Save(results); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := w.Save(results); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	// Pages are keyed by URL, so re-saving replaces rather than duplicates
	count, err := w.PageCount()
	if err != nil {
		t.Fatalf("PageCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 pages after re-save, got %d", count)
	}

	var linkTotal int
	if err := w.db.QueryRow("SELECT COUNT(*) FROM links").Scan(&linkTotal); err != nil {
		t.Fatalf("Link count query failed: %v", err)
	}
	if linkTotal != 3 {
		t.Errorf("Expected 3 link rows after re-save, got %d", linkTotal)
	}
}
