// Package handlers builds the view models shared by the web templates.
// Each page gets a PageData: head metadata, the JSON-LD script tags for
// that page, navigation state, and a page-specific payload.
package handlers

import (
	"html/template"

	"wayfield.org/wayfield-web/internal/config"
	"wayfield.org/wayfield-web/internal/nav"
	"wayfield.org/wayfield-web/internal/seo"
)

// PageData is the base view model handed to the base layout.
type PageData struct {
	Title       string
	Lang        string
	Path        string
	Meta        seo.Meta
	JSONLD      []template.HTML
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Page payloads; templates use whichever their block needs.
	Home    *HomeData
	Stories *StoriesData
	Story   *StoryData
	Content template.HTML
	Query   string
}

// NewPageData assembles the shared parts of a view model for the given
// request path.
func NewPageData(cfg *config.Config, path, title, description string) PageData {
	canonical := seo.AbsoluteURL(path, cfg.SiteURL)
	return PageData{
		Title: title,
		Lang:  cfg.Language,
		Path:  path,
		Meta: seo.Meta{
			Title:       title,
			Description: description,
			Canonical:   canonical,
			OG: seo.OpenGraph{
				Title:       title,
				Description: description,
				Type:        "website",
				URL:         canonical,
				SiteName:    cfg.SiteName,
			},
			Twitter: seo.Twitter{Card: "summary_large_image"},
		},
		Nav:         nav.Build(path),
		Breadcrumbs: nav.Breadcrumbs(path),
	}
}
