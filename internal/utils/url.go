package utils

import (
	"net/url"
	"os"
	"strings"
)

// BaseURL resolves the base used when building absolute links such as
// pagination cursors. The BASE_URL environment variable overrides the base
// observed on the request when it parses as an absolute URL, for deployments
// behind proxies that rewrite the Host header. Trailing slashes are trimmed
// either way.
func BaseURL(observed string) string {
	raw := os.Getenv("BASE_URL")
	if raw == "" {
		return strings.TrimRight(observed, "/")
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(observed, "/")
	}
	return strings.TrimRight(parsed.String(), "/")
}
