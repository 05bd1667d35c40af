package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"wayfield.org/wayfield-web/internal/cms"
	"wayfield.org/wayfield-web/internal/handlers"
	mw "wayfield.org/wayfield-web/internal/middleware"
	md "wayfield.org/wayfield-web/internal/render"
	"wayfield.org/wayfield-web/internal/seo"
	"wayfield.org/wayfield-web/internal/slug"
)

const featuredCount = 6

// HomeHandler renders the landing page with the newest stories.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := cmsClient.ListArticles(r.Context(), cms.ListArticlesOptions{
		Lang:  cfg.Language,
		Limit: featuredCount,
	})
	if err != nil {
		log.Printf("web: list featured: %v", err)
	}
	render(w, "home", handlers.HomePage(cfg, composer, articles))
}

// StoriesHandler renders the story listing, optionally filtered by
// category or tag query parameters.
func StoriesHandler(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	tag := strings.TrimSpace(r.URL.Query().Get("tag"))
	articles, err := cmsClient.ListArticles(r.Context(), cms.ListArticlesOptions{
		Lang:     cfg.Language,
		Category: category,
		Tag:      tag,
	})
	if err != nil {
		log.Printf("web: list stories: %v", err)
	}
	render(w, "stories", handlers.StoriesPage(cfg, composer, articles, category, tag))
}

// StoryHandler renders a single story page with its full schema set. The
// URL segment is normalized so links with stray case or diacritics still
// resolve to the canonical slug.
func StoryHandler(w http.ResponseWriter, r *http.Request) {
	s := slug.From(chi.URLParam(r, "slug"))
	article, err := cmsClient.GetArticle(r.Context(), s, cfg.Language)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			NotFoundHandler(w, r)
			return
		}
		rid, _ := mw.RequestID(r.Context())
		log.Printf("web: get story %s: %v (request %s)", s, err, rid)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	body := md.MarkdownOrRaw(article.Body)
	render(w, "story", handlers.ArticlePage(cfg, composer, article, body))
}

// AboutHandler renders the about page from local markdown when present.
func AboutHandler(w http.ResponseWriter, r *http.Request) {
	source := "Wayfield publishes slow travel stories, field notes, and destination guides."
	if data, err := os.ReadFile(filepath.Join(cfg.ContentDir, "pages", "about.md")); err == nil {
		source = string(data)
	}
	body := md.MarkdownOrRaw(source)
	render(w, "page", handlers.StaticPage(cfg, composer, "/about", "About", "About Wayfield.", body, aboutFAQ))
}

var aboutFAQ = []seo.FAQItem{
	{Question: "How often does Wayfield publish?", Answer: "New stories land every week, guides roughly once a month."},
	{Question: "Can I pitch a story?", Answer: "Yes. Email hello@wayfield.org with a short outline and two writing samples."},
}

// SearchHandler renders search results over the article index. Only mounted
// when search is enabled in configuration.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	var results []cms.Article
	if query != "" {
		var err error
		results, err = cmsClient.ListArticles(r.Context(), cms.ListArticlesOptions{
			Lang:   cfg.Language,
			Search: query,
		})
		if err != nil {
			log.Printf("web: search %q: %v", query, err)
		}
	}
	render(w, "search", handlers.SearchPage(cfg, composer, query, results))
}

// NotFoundHandler renders the 404 page.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	data := handlers.NewPageData(cfg, r.URL.Path, "Page not found", "")
	data.Meta.Robots = "noindex"
	renderNamed(w, "notfound", data)
}

// renderNamed executes a template without touching the response status,
// which render would otherwise reset on error paths.
func renderNamed(w http.ResponseWriter, name string, data any) {
	t := tmplCache
	if cfg.DevMode || t == nil {
		tc, err := parseTemplates()
		if err != nil {
			log.Printf("web: parse templates: %v", err)
			return
		}
		t = tc
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("web: execute %s: %v", name, err)
	}
}
