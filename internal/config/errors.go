package config

import "errors"

var (
	// ErrMissingSeedURL is returned when no seed URL is provided
	ErrMissingSeedURL = errors.New("no seed URL provided")
	// ErrInvalidSeedURL is returned when the seed URL lacks a scheme or host
	ErrInvalidSeedURL = errors.New("seed URL must include a scheme and host (e.g. https://example.com)")
	// ErrInvalidMaxPages is returned when max_pages is outside 1-100
	ErrInvalidMaxPages = errors.New("max_pages must be between 1 and 100")
	// ErrInvalidDelay is returned when request_delay is outside 0-2s
	ErrInvalidDelay = errors.New("request_delay must be between 0s and 2s")
	// ErrInvalidTimeout is returned when request timeout is not greater than 0
	ErrInvalidTimeout = errors.New("request_timeout must be greater than 0")
)
