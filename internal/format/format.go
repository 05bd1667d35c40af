// Package format holds small display formatting helpers shared by templates.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Date formats a publication date in a reader-friendly short form.
// The zero time renders as an empty string so templates can skip it.
func Date(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	switch strings.ToLower(lang) {
	case "ja":
		return t.Format("2006-01-02")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// ReadingTime renders a reading-time badge. Example: ReadingTime(8) => "8 min read".
func ReadingTime(mins int) string {
	if mins <= 0 {
		return ""
	}
	return fmt.Sprintf("%d min read", mins)
}

// WordCount renders a word count with thousand separators.
// Example: WordCount(2450) => "2,450 words"
func WordCount(n int) string {
	if n <= 0 {
		return ""
	}
	return thousandSep(int64(n)) + " words"
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}
