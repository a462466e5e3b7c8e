package cache

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"
)

// SafeAppsRegion names the cache region that stores rendered safe app
// responses.
const SafeAppsRegion = "safe-apps"

// Cache is a named TTL region holding serialized response bodies. Entries
// under different keys are independent; writing a key replaces its previous
// value. Implementations never fail a request: a backend problem surfaces
// as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Name() string
}

// RequestKey derives a deterministic cache key from request query
// parameters. Keys and their values are sorted, so two requests that differ
// only in parameter order share an entry.
func RequestKey(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	first := true
	for _, k := range keys {
		sorted := append([]string(nil), values[k]...)
		sort.Strings(sorted)
		for _, v := range sorted {
			if !first {
				b.WriteByte('&')
			}
			first = false
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
