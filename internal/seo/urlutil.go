package seo

import (
	"net/url"
	"strings"
)

// AbsoluteURL resolves s against base. Already-absolute inputs pass through
// unchanged; relative paths are joined with exactly one slash regardless of
// leading "/" on the input. An empty input returns base itself. It never
// fails: worst case the caller gets the base URL back.
func AbsoluteURL(s, base string) string {
	s = strings.TrimSpace(s)
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if s == "" {
		return base
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return base + "/" + strings.TrimLeft(s, "/")
}

// IsValidURL reports whether s parses as an absolute http(s) URL. Diagnostic
// use only; production output never depends on it.
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
