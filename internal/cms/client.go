// Package cms provides read-only access to the headless CMS that backs the
// blog. Every fetch degrades gracefully: remote failures fall back to local
// markdown under the content directory, and parse errors surface as
// ErrNotFound rather than broken pages.
package cms

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

const (
	defaultContentDir = "content"
	defaultLang       = "en"
)

// Client provides read-only access to CMS content endpoints.
type Client struct {
	baseURL    string
	http       *http.Client
	contentDir string
}

// NewClient constructs a Client. An empty base URL means "local content
// only"; every lookup then goes straight to the markdown fallback.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// SetContentDir configures the directory holding fallback markdown articles.
func (c *Client) SetContentDir(dir string) {
	if c == nil {
		return
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultContentDir
	}
	c.contentDir = dir
}

// ContentDir returns the configured fallback directory.
func (c *Client) ContentDir() string {
	if c == nil || strings.TrimSpace(c.contentDir) == "" {
		return defaultContentDir
	}
	return c.contentDir
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return defaultLang
	}
	return lang
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsRune(slug, os.PathSeparator) {
		return ""
	}
	return slug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// article cache: remote round-trips are slow relative to render time, so
// fetched articles are held in memory for a short TTL.

var articleCache = struct {
	mu    sync.RWMutex
	items map[string]articleCacheEntry
	ttl   time.Duration
}{
	items: map[string]articleCacheEntry{},
	ttl:   5 * time.Minute,
}

type articleCacheEntry struct {
	article Article
	expires time.Time
}

// SetCacheDuration overrides the in-memory cache TTL (primarily for tests).
func SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	articleCache.mu.Lock()
	articleCache.ttl = d
	articleCache.mu.Unlock()
}

// ResetCache drops all cached articles (primarily for tests).
func ResetCache() {
	articleCache.mu.Lock()
	articleCache.items = map[string]articleCacheEntry{}
	articleCache.mu.Unlock()
}

func cachedArticle(key string) (Article, bool) {
	now := time.Now()
	articleCache.mu.RLock()
	entry, ok := articleCache.items[key]
	articleCache.mu.RUnlock()
	if !ok || now.After(entry.expires) {
		return Article{}, false
	}
	return cloneArticle(entry.article), true
}

func storeArticle(key string, a Article) {
	articleCache.mu.Lock()
	defer articleCache.mu.Unlock()
	articleCache.items[key] = articleCacheEntry{
		article: cloneArticle(a),
		expires: time.Now().Add(articleCache.ttl),
	}
}
