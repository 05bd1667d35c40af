package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfield.org/wayfield-web/internal/cms"
	"wayfield.org/wayfield-web/internal/config"
	"wayfield.org/wayfield-web/internal/seo"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func testComposer(cfg *config.Config) *seo.Composer {
	return seo.NewComposer(cfg.Site(), cfg.Organization())
}

func testArticle() cms.Article {
	return cms.Article{
		Slug:            "hidden-valleys-of-svaneti",
		Lang:            "en",
		Title:           "Hidden Valleys of Svaneti",
		Summary:         "Ten days of walking between stone towers.",
		Body:            "Some body text.",
		Cover:           cms.Image{URL: "/assets/img/svaneti.jpg", Width: 1600, Height: 900},
		Tags:            []string{"georgia", "hiking"},
		Categories:      []string{"guides"},
		Country:         "Georgia",
		ReadingTimeMins: 12,
		WordCount:       2450,
		Author:          cms.Author{Name: "Mara Lindqvist", ProfileURL: "/authors/mara"},
		PublishedAt:     time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC),
	}
}

func TestArticleSchemaMapping(t *testing.T) {
	cfg := testConfig(t)
	meta := ArticleSchema(cfg, testArticle())

	assert.Equal(t, "/stories/hidden-valleys-of-svaneti", meta.URL)
	assert.Equal(t, "Hidden Valleys of Svaneti", meta.Title)
	assert.Equal(t, "Mara Lindqvist", meta.Author.Name)
	assert.Equal(t, 12, meta.ReadingTimeMins)
	assert.Equal(t, "Georgia", meta.Country)
	assert.NotNil(t, meta.ModifiedAt)
}

func TestArticleSchemaSEOOverrides(t *testing.T) {
	cfg := testConfig(t)
	a := testArticle()
	a.SEO.MetaTitle = "Svaneti Trekking Guide"
	a.SEO.MetaDescription = "A practical guide."
	meta := ArticleSchema(cfg, a)

	assert.Equal(t, "Svaneti Trekking Guide", meta.Title)
	assert.Equal(t, "A practical guide.", meta.Description)
}

func TestArticleSchemaDefaultAuthor(t *testing.T) {
	cfg := testConfig(t)
	a := testArticle()
	a.Author = cms.Author{}
	meta := ArticleSchema(cfg, a)

	assert.Equal(t, cfg.DefaultAuthor, meta.Author.Name)
}

func TestArticleSchemaUnmodified(t *testing.T) {
	cfg := testConfig(t)
	a := testArticle()
	a.UpdatedAt = a.PublishedAt
	meta := ArticleSchema(cfg, a)

	assert.Nil(t, meta.ModifiedAt)
}

func TestArticlePageViewModel(t *testing.T) {
	cfg := testConfig(t)
	data := ArticlePage(cfg, testComposer(cfg), testArticle(), "<p>hi</p>")

	assert.Equal(t, "Hidden Valleys of Svaneti", data.Title)
	require.Len(t, data.JSONLD, 3) // WebPage, BreadcrumbList, BlogPosting
	assert.Contains(t, string(data.JSONLD[2]), `"BlogPosting"`)

	// Leaf crumb carries the story title.
	last := data.Breadcrumbs[len(data.Breadcrumbs)-1]
	assert.Equal(t, "Hidden Valleys of Svaneti", last.Label)

	// OG image is absolute.
	assert.True(t, strings.HasPrefix(data.Meta.OG.Image, cfg.SiteURL))
	assert.Equal(t, "article", data.Meta.OG.Type)
}

func TestHomePageSchemas(t *testing.T) {
	cfg := testConfig(t)
	data := HomePage(cfg, testComposer(cfg), nil)

	require.Len(t, data.JSONLD, 2)
	assert.Contains(t, string(data.JSONLD[0]), `"WebSite"`)
	assert.Contains(t, string(data.JSONLD[1]), `"Organization"`)
}

func TestStaticPageWithFAQ(t *testing.T) {
	cfg := testConfig(t)
	faqs := []seo.FAQItem{{Question: "Q?", Answer: "A."}}
	data := StaticPage(cfg, testComposer(cfg), "/about", "About", "About Wayfield.", "<p>body</p>", faqs)

	require.Len(t, data.JSONLD, 3) // WebPage, BreadcrumbList, FAQPage
	assert.Contains(t, string(data.JSONLD[2]), `"FAQPage"`)
}

func TestStoriesPageCanonical(t *testing.T) {
	cfg := testConfig(t)
	data := StoriesPage(cfg, testComposer(cfg), nil, "", "")

	assert.Equal(t, cfg.SiteURL+"/stories", data.Meta.Canonical)
	require.NotEmpty(t, data.JSONLD)
	assert.Contains(t, string(data.JSONLD[0]), `"WebPage"`)
}
