package handlers

import (
	"html/template"

	"wayfield.org/wayfield-web/internal/cms"
	"wayfield.org/wayfield-web/internal/config"
	"wayfield.org/wayfield-web/internal/nav"
	"wayfield.org/wayfield-web/internal/seo"
)

// HomePage builds the landing page view model. The landing page mounts the
// WebSite and Organization schemas rather than a WebPage.
func HomePage(cfg *config.Config, composer *seo.Composer, featured []cms.Article) PageData {
	data := NewPageData(cfg, "/", cfg.SiteName, cfg.SiteDescription)
	data.Home = &HomeData{Featured: featured}
	data.JSONLD = composer.Home()
	return data
}

// StoriesPage builds the story listing view model.
func StoriesPage(cfg *config.Config, composer *seo.Composer, articles []cms.Article, category, tag string) PageData {
	data := NewPageData(cfg, "/stories", "Stories", "Latest travel stories and field notes from Wayfield.")
	data.Stories = &StoriesData{Articles: articles, Category: category, Tag: tag}
	data.JSONLD = composer.Page(seo.PageInput{
		URL:         "/stories",
		Title:       data.Title,
		Description: data.Meta.Description,
		Language:    cfg.Language,
	}, nav.SchemaItems(data.Breadcrumbs), nil, nil)
	return data
}

// StaticPage builds a plain content page view model (about, search, ...)
// with an optional standalone FAQ schema.
func StaticPage(cfg *config.Config, composer *seo.Composer, path, title, description string, body template.HTML, faqs []seo.FAQItem) PageData {
	data := NewPageData(cfg, path, title, description)
	data.Content = body
	data.JSONLD = composer.Page(seo.PageInput{
		URL:         path,
		Title:       title,
		Description: description,
		Language:    cfg.Language,
	}, nav.SchemaItems(data.Breadcrumbs), nil, faqs)
	return data
}

// SearchPage builds the search results view model.
func SearchPage(cfg *config.Config, composer *seo.Composer, query string, results []cms.Article) PageData {
	data := NewPageData(cfg, "/search", "Search", "Search Wayfield stories.")
	data.Query = query
	data.Stories = &StoriesData{Articles: results}
	data.JSONLD = composer.Page(seo.PageInput{
		URL:         "/search",
		Title:       data.Title,
		Description: data.Meta.Description,
		Language:    cfg.Language,
	}, nav.SchemaItems(data.Breadcrumbs), nil, nil)
	return data
}
