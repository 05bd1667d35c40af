package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteURL(t *testing.T) {
	base := "https://wayfield.org"
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already absolute", "https://cdn.wayfield.org/img.jpg", "https://cdn.wayfield.org/img.jpg"},
		{"http absolute", "http://legacy.example.com/a", "http://legacy.example.com/a"},
		{"leading slash", "/stories/kyoto", base + "/stories/kyoto"},
		{"no leading slash", "stories/kyoto", base + "/stories/kyoto"},
		{"double leading slash", "//stories", base + "/stories"},
		{"empty returns base", "", base},
		{"whitespace returns base", "   ", base},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AbsoluteURL(tc.in, base))
		})
	}
}

func TestAbsoluteURLTrailingSlashBase(t *testing.T) {
	got := AbsoluteURL("/about", "https://wayfield.org/")
	assert.Equal(t, "https://wayfield.org/about", got, "exactly one slash between base and path")
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://wayfield.org/x"))
	assert.True(t, IsValidURL("http://example.com"))
	assert.False(t, IsValidURL("/relative/path"))
	assert.False(t, IsValidURL("ftp://example.com"))
	assert.False(t, IsValidURL(""))
	assert.False(t, IsValidURL("not a url"))
}
