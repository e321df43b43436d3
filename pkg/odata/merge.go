package odata

import (
	"net/url"
	"strings"
)

// MergeQuery merges additional parameters into an existing query string.
//
// The merge is additive: a parameter from add is only set when its key is
// not already present — existing values always win, so re-merging the same
// additions is a no-op. Output order is insertion order: existing
// parameters first (original relative order), then new ones in add order.
// Returns "" when the result has no parameters.
func MergeQuery(existing string, add []Param) string {
	raw := strings.TrimPrefix(existing, "?")

	parts := make([]string, 0, len(add)+4)
	seen := make(map[string]bool)

	if raw != "" {
		for _, seg := range strings.Split(raw, "&") {
			if seg == "" {
				continue
			}
			key := seg
			if i := strings.IndexByte(seg, '='); i >= 0 {
				key = seg[:i]
			}
			if dec, err := url.QueryUnescape(key); err == nil {
				key = dec
			}
			seen[key] = true
			parts = append(parts, seg)
		}
	}

	for _, p := range add {
		if seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		parts = append(parts, p.Key+"="+url.QueryEscape(p.Value))
	}

	if len(parts) == 0 {
		return ""
	}
	return "?" + strings.Join(parts, "&")
}
