package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	ts := time.Date(2025, 10, 2, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "Oct 2, 2025", Date(ts, "en"))
	assert.Equal(t, "2025-10-02", Date(ts, "ja"))
	assert.Equal(t, "", Date(time.Time{}, "en"))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, "8 min read", ReadingTime(8))
	assert.Equal(t, "", ReadingTime(0))
	assert.Equal(t, "", ReadingTime(-3))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, "2,450 words", WordCount(2450))
	assert.Equal(t, "180 words", WordCount(180))
	assert.Equal(t, "", WordCount(0))
}
