package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"wayfield.org/wayfield-web/internal/cms"
	"wayfield.org/wayfield-web/internal/config"
	"wayfield.org/wayfield-web/internal/seo"
)

// newTestServer wires the app against the repo's local content and
// templates, reparsing templates per request.
func newTestServer(t *testing.T, env map[string]string) http.Handler {
	t.Helper()
	t.Setenv("WAYFIELD_WEB_DEV", "true")
	t.Setenv("WAYFIELD_WEB_TEMPLATES_DIR", "../../templates")
	t.Setenv("WAYFIELD_WEB_PUBLIC_DIR", "../../public")
	t.Setenv("WAYFIELD_WEB_CONTENT_DIR", "../../content")
	for k, v := range env {
		t.Setenv(k, v)
	}

	loaded, err := config.Load()
	require.NoError(t, err)
	cfg = loaded

	cmsClient = cms.NewClient("")
	cmsClient.SetContentDir(cfg.ContentDir)
	cms.ResetCache()
	composer = seo.NewComposer(cfg.Site(), cfg.Organization())
	tmplCache = nil

	if _, err := parseTemplates(); err != nil {
		t.Fatalf("parseTemplates failed: %v", err)
	}
	return newRouter()
}

func get(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// ldScript is one extracted application/ld+json script tag.
type ldScript struct {
	ID      string
	Payload map[string]any
}

// jsonldScripts extracts every application/ld+json script from an HTML
// document in document order.
func jsonldScripts(t *testing.T, body string) []ldScript {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	var out []ldScript
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			var typ, id string
			for _, a := range n.Attr {
				switch a.Key {
				case "type":
					typ = a.Val
				case "id":
					id = a.Val
				}
			}
			if typ == "application/ld+json" && n.FirstChild != nil {
				var arr []map[string]any
				require.NoError(t, json.Unmarshal([]byte(n.FirstChild.Data), &arr), "script %s payload", id)
				require.Len(t, arr, 1, "script %s holds one schema", id)
				out = append(out, ldScript{ID: id, Payload: arr[0]})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func schemaTypes(scripts []ldScript) []string {
	types := make([]string, 0, len(scripts))
	for _, s := range scripts {
		typ, _ := s.Payload["@type"].(string)
		types = append(types, typ)
	}
	return types
}

func TestHealthzOK(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestHomeMountsSiteAndOrganization(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	scripts := jsonldScripts(t, rec.Body.String())
	require.Equal(t, []string{"WebSite", "Organization"}, schemaTypes(scripts))

	site := scripts[0].Payload
	assert.Equal(t, "https://schema.org", site["@context"])
	assert.Equal(t, "https://wayfield.org", site["url"])
	action, ok := site["potentialAction"].(map[string]any)
	require.True(t, ok, "search enabled by default")
	target := action["target"].(map[string]any)
	assert.Equal(t, "https://wayfield.org/search?q={search_term_string}", target["urlTemplate"])

	idPattern := regexp.MustCompile(`^jsonld-[a-z]+-[0-9a-f]{8}$`)
	for _, s := range scripts {
		assert.Regexp(t, idPattern, s.ID)
	}
}

func TestHomeSearchDisabled(t *testing.T) {
	srv := newTestServer(t, map[string]string{"WAYFIELD_WEB_SEARCH_ENABLED": "false"})

	rec := get(t, srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	scripts := jsonldScripts(t, rec.Body.String())
	require.NotEmpty(t, scripts)
	_, hasAction := scripts[0].Payload["potentialAction"]
	assert.False(t, hasAction)

	rec = get(t, srv, "/search")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoriesListing(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/stories")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := rec.Body.String()
	assert.Contains(t, body, "Hidden Valleys of Svaneti")
	assert.Contains(t, body, "Slow Trains Through the Balkans")

	scripts := jsonldScripts(t, body)
	require.Equal(t, []string{"WebPage", "BreadcrumbList"}, schemaTypes(scripts))
	assert.Equal(t, "https://wayfield.org/stories", scripts[0].Payload["url"])
}

func TestStoryPageSchemaSet(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/stories/hidden-valleys-of-svaneti")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	scripts := jsonldScripts(t, rec.Body.String())
	require.Equal(t, []string{"WebPage", "BreadcrumbList", "BlogPosting", "FAQPage"}, schemaTypes(scripts))

	posting := scripts[2].Payload
	assert.Equal(t, "Svaneti Trekking Guide — Mestia to Ushguli", posting["headline"])
	assert.Equal(t, "2025-06-01T00:00:00Z", posting["datePublished"])
	assert.Equal(t, "2025-07-02T00:00:00Z", posting["dateModified"])
	assert.Equal(t, "PT12M", posting["timeRequired"])
	assert.Equal(t, "https://wayfield.org/stories/hidden-valleys-of-svaneti", posting["url"])

	author := posting["author"].(map[string]any)
	assert.Equal(t, "Mara Lindqvist", author["name"])

	video, ok := posting["video"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VideoObject", video["@type"])
	_, hasContext := video["@context"]
	assert.False(t, hasContext, "inline video carries no @context")

	faq := scripts[3].Payload
	entities := faq["mainEntity"].([]any)
	assert.Len(t, entities, 2)

	// every script id is unique
	seen := map[string]bool{}
	for _, s := range scripts {
		require.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "duplicate script id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestStoryBreadcrumbUsesTitle(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/stories/slow-trains-through-the-balkans")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	scripts := jsonldScripts(t, rec.Body.String())
	require.Equal(t, []string{"WebPage", "BreadcrumbList", "BlogPosting"}, schemaTypes(scripts))

	items := scripts[1].Payload["itemListElement"].([]any)
	require.Len(t, items, 3)
	leaf := items[2].(map[string]any)
	assert.Equal(t, "Slow Trains Through the Balkans", leaf["name"])
	assert.Equal(t, float64(3), leaf["position"])
}

func TestStorySlugNormalized(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/stories/Hidden-Valleys-Of-Svaneti")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestStoryNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/stories/no-such-story")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestAboutPageFAQ(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/about")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := rec.Body.String()
	assert.Contains(t, body, "content-prose")

	scripts := jsonldScripts(t, body)
	require.Equal(t, []string{"WebPage", "BreadcrumbList", "FAQPage"}, schemaTypes(scripts))
}

func TestSearchPage(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := get(t, srv, "/search?q=svaneti")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Hidden Valleys of Svaneti")

	rec = get(t, srv, "/search?q=zzz-no-match")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Hidden Valleys of Svaneti")
}

func TestAssetsServedWithETag(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv, "/assets/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec2 := httptest.NewRecorder()
	srv.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusNotModified, rec2.Code)
}
