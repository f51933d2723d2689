package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchError describes a failed page fetch: a transport failure, a
// timeout, or a non-success HTTP response. It is never fatal to a run;
// the crawler converts it into a degraded PageRecord.
type FetchError struct {
	URL     string
	Message string
	Err     error // underlying cause, may be nil for status errors
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// HTTPResponse contains a fetched page body and response metadata
type HTTPResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
	FinalURL    string // After following redirects
}

// HTTPClient performs single-page GET requests for the crawler
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewHTTPClient creates a new HTTP client with the given identification
// header and per-request timeout.
func NewHTTPClient(userAgent string, timeout time.Duration) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}

	return &HTTPClient{
		client:    client,
		userAgent: userAgent,
	}
}

// Get performs one HTTP GET request. Transport failures, timeouts, and
// responses with a status of 400 or above are returned as a *FetchError.
// Redirects are followed transparently, so 3xx statuses never reach the
// caller; FinalURL reflects the post-redirect location.
func (h *HTTPClient) Get(ctx context.Context, url string) (*HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Message: "failed to create request", Err: err}
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{
			URL:     url,
			Message: fmt.Sprintf("server returned %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Message: "failed to read response body", Err: err}
	}

	return &HTTPResponse{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
	}, nil
}

// Close closes idle connections held by the client
func (h *HTTPClient) Close() {
	h.client.CloseIdleConnections()
}
