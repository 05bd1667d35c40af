package seo

import (
	"strings"
	"time"
)

// dateLayouts mirrors the formats the CMS and front matter produce.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
}

// ToISODate coerces v into an ISO-8601 timestamp string. It accepts a
// time.Time or a date string in any of the supported layouts. Anything
// unparseable, empty, or of an unexpected type falls back to the current
// time so page rendering never fails on a bad date. Callers needing strict
// validation must check upstream.
func ToISODate(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			break
		}
		return t.UTC().Format(time.RFC3339)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			break
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC().Format(time.RFC3339)
			}
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// IsValidISODate reports whether s parses as RFC3339 or a plain date.
// Diagnostic use only.
func IsValidISODate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
