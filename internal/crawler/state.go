package crawler

// CrawlState holds the mutable state of a single crawl run: the frontier
// of URLs awaiting visitation, the set of URLs already visited, and the
// ordered result collection. A fresh value is created per run and owned
// exclusively by the crawler for the run's duration; nothing survives
// between runs.
//
// The frontier tolerates duplicate entries. Deduplication happens lazily
// at dequeue time against the visited set, which keeps traversal order
// identical to a plain breadth-first walk.
type CrawlState struct {
	frontier []string
	visited  map[string]struct{}
	results  []PageRecord
}

// NewCrawlState creates the state for a new run with the seed URL as the
// only frontier entry.
func NewCrawlState(seedURL string) *CrawlState {
	return &CrawlState{
		frontier: []string{seedURL},
		visited:  make(map[string]struct{}),
	}
}

// Enqueue appends a URL to the tail of the frontier.
func (s *CrawlState) Enqueue(url string) {
	s.frontier = append(s.frontier, url)
}

// Dequeue removes and returns the head of the frontier. The second return
// value is false when the frontier is empty.
func (s *CrawlState) Dequeue() (string, bool) {
	if len(s.frontier) == 0 {
		return "", false
	}
	head := s.frontier[0]
	s.frontier = s.frontier[1:]
	return head, true
}

// FrontierLen returns the number of pending frontier entries, duplicates
// included.
func (s *CrawlState) FrontierLen() int {
	return len(s.frontier)
}

// Visited reports whether the URL has already been visited.
func (s *CrawlState) Visited(url string) bool {
	_, ok := s.visited[url]
	return ok
}

// MarkVisited records the URL as visited.
func (s *CrawlState) MarkVisited(url string) {
	s.visited[url] = struct{}{}
}

// VisitedCount returns the number of distinct visited URLs.
func (s *CrawlState) VisitedCount() int {
	return len(s.visited)
}

// Append adds a record to the result collection. Insertion order is
// visitation order.
func (s *CrawlState) Append(rec PageRecord) {
	s.results = append(s.results, rec)
}

// Results returns a copy of the result collection so callers cannot
// mutate the state's backing slice.
func (s *CrawlState) Results() []PageRecord {
	out := make([]PageRecord, len(s.results))
	copy(out, s.results)
	return out
}
