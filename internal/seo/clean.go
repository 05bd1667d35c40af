package seo

import "strings"

// Clean strips empty values from a JSON-shaped value, depth first:
// nil vanishes, strings blank after trimming vanish (kept strings are not
// trimmed), arrays drop vanished elements and vanish when emptied, maps drop
// vanished entries and vanish when emptied. Numbers and booleans pass
// through. The returned value is nil when everything cleaned away.
//
// This is the single mechanism by which builders avoid emitting schema
// properties for absent optional data, and it is idempotent.
func Clean(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return t
	case []any:
		out := make([]any, 0, len(t))
		for _, el := range t {
			if c := Clean(el); c != nil {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			if c := Clean(el); c != nil {
				out[k] = c
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return v
	}
}

// cleanObject applies Clean to a builder result. Builder output always
// retains at least @context and @type (non-empty literals), so the map
// assertion cannot fail in practice; an empty map is returned as a guard.
func cleanObject(m map[string]any) map[string]any {
	if c, ok := Clean(m).(map[string]any); ok {
		return c
	}
	return map[string]any{}
}
