package seo

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// JSON marshals v to a compact JSON string. It returns an empty string on
// error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// ScriptTag serializes one schema object or a slice of them into a
// <script type="application/ld+json"> element with a stable id. Nothing on
// this path may break a page render: any problem yields the empty string.
func ScriptTag(data any) template.HTML {
	return ScriptTagOr(data, "")
}

// ScriptTagOr is ScriptTag with a caller-supplied fallback rendered when the
// input is empty or unserializable.
func ScriptTagOr(data any, fallback template.HTML) template.HTML {
	items := normalizeSchemas(data)
	if len(items) == 0 {
		return fallback
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fallback
	}
	// encoding/json escapes <, > and & by default, so the payload is safe
	// to embed inline without further treatment.
	tag := fmt.Sprintf(`<script type="application/ld+json" id="%s">%s</script>`,
		template.HTMLEscapeString(scriptID(items)), payload)
	return template.HTML(tag)
}

// normalizeSchemas flattens the accepted input shapes into a slice of
// schema objects. Nil input and empty slices normalize to nothing, which is
// the fail-closed path.
func normalizeSchemas(data any) []any {
	switch v := data.(type) {
	case nil:
		return nil
	case []any:
		out := make([]any, 0, len(v))
		for _, el := range v {
			if el != nil {
				out = append(out, el)
			}
		}
		return out
	case []map[string]any:
		out := make([]any, 0, len(v))
		for _, el := range v {
			if el != nil {
				out = append(out, el)
			}
		}
		return out
	case map[string]any:
		if v == nil {
			return nil
		}
		return []any{v}
	default:
		return []any{v}
	}
}

// scriptID derives a deterministic DOM id for the script tag. When the
// first schema carries both a type and a url, the id keys on the url alone
// so it stays stable across content edits; otherwise it keys on the whole
// serialized payload. An unserializable payload falls back to a
// timestamped id, acceptable only because it implies malformed input.
func scriptID(items []any) string {
	kind := "schema"
	if first, ok := items[0].(map[string]any); ok {
		t, _ := first["@type"].(string)
		if t != "" {
			kind = strings.ToLower(t)
		}
		if u, ok := first["url"].(string); ok && t != "" && u != "" {
			return "jsonld-" + kind + "-" + md5Prefix([]byte(u))
		}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Sprintf("jsonld-fallback-%d", time.Now().UnixNano())
	}
	return "jsonld-" + kind + "-" + md5Prefix(payload)
}

func md5Prefix(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])[:8]
}
