package crawler

import "testing"

func TestInScope(t *testing.T) {
	tests := []struct {
		name            string
		url             string
		seedHost        string
		includeExternal bool
		want            bool
	}{
		{
			name:     "same host",
			url:      "https://example.com/page",
			seedHost: "example.com",
			want:     true,
		},
		{
			name:     "different host",
			url:      "https://other.com/page",
			seedHost: "example.com",
			want:     false,
		},
		{
			name:     "subdomain is not the same host",
			url:      "https://www.example.com/page",
			seedHost: "example.com",
			want:     false,
		},
		{
			name:     "port is part of the host",
			url:      "https://example.com:8080/page",
			seedHost: "example.com",
			want:     false,
		},
		{
			name:            "external host allowed when enabled",
			url:             "https://other.com/page",
			seedHost:        "example.com",
			includeExternal: true,
			want:            true,
		},
		{
			name:            "unparseable URL allowed when external enabled",
			url:             "://bad",
			seedHost:        "example.com",
			includeExternal: true,
			want:            true,
		},
		{
			name:     "unparseable URL rejected otherwise",
			url:      "://bad",
			seedHost: "example.com",
			want:     false,
		},
		{
			name:     "scheme difference does not matter",
			url:      "http://example.com/page",
			seedHost: "example.com",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InScope(tt.url, tt.seedHost, tt.includeExternal)
			if got != tt.want {
				t.Errorf("InScope(%q, %q, %v) = %v, want %v", tt.url, tt.seedHost, tt.includeExternal, got, tt.want)
			}
		})
	}
}
