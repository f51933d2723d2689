package crawler

import "net/url"

// InScope decides whether a discovered link may be scheduled. When
// includeExternal is set every URL qualifies; otherwise the link's host
// must equal the seed's host exactly. No subdomain or wildcard matching
// is performed.
func InScope(rawURL, seedHost string, includeExternal bool) bool {
	if includeExternal {
		return true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return u.Host == seedHost
}
