package crawler

import "testing"

func TestCrawlStateSeedsFrontier(t *testing.T) {
	state := NewCrawlState("https://example.com")

	if state.FrontierLen() != 1 {
		t.Fatalf("Expected frontier length 1, got %d", state.FrontierLen())
	}

	url, ok := state.Dequeue()
	if !ok {
		t.Fatal("Expected dequeue to succeed")
	}
	if url != "https://example.com" {
		t.Errorf("Expected seed URL, got %q", url)
	}

	if _, ok := state.Dequeue(); ok {
		t.Error("Expected dequeue from empty frontier to fail")
	}
}

func TestCrawlStateFIFOOrder(t *testing.T) {
	state := NewCrawlState("a")
	state.Enqueue("b")
	state.Enqueue("c")

	var got []string
	for {
		url, ok := state.Dequeue()
		if !ok {
			break
		}
		got = append(got, url)
	}

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCrawlStateToleratesFrontierDuplicates(t *testing.T) {
	// Duplicates are allowed in the frontier; deduplication is the crawl
	// loop's job at dequeue time.
	state := NewCrawlState("a")
	state.Enqueue("b")
	state.Enqueue("b")
	state.Enqueue("b")

	if state.FrontierLen() != 4 {
		t.Errorf("Expected frontier length 4, got %d", state.FrontierLen())
	}
}

func TestCrawlStateVisited(t *testing.T) {
	state := NewCrawlState("a")

	if state.Visited("a") {
		t.Error("Expected seed to start unvisited")
	}

	state.MarkVisited("a")
	if !state.Visited("a") {
		t.Error("Expected URL to be visited after marking")
	}

	state.MarkVisited("a")
	if state.VisitedCount() != 1 {
		t.Errorf("Expected visited count 1 after double-mark, got %d", state.VisitedCount())
	}
}

func TestCrawlStateResultsSnapshot(t *testing.T) {
	state := NewCrawlState("a")
	state.Append(PageRecord{URL: "a", Title: "First", Status: 200})
	state.Append(PageRecord{URL: "b", Title: "Second", Status: 200})

	results := state.Results()
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].URL != "a" || results[1].URL != "b" {
		t.Error("Expected results in insertion order")
	}

	// Mutating the snapshot must not affect the state
	results[0].Title = "Mutated"
	if state.Results()[0].Title != "First" {
		t.Error("Expected state results to be isolated from caller mutation")
	}
}
