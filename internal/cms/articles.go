package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Article is a localized story as served to the rendering layer.
type Article struct {
	Slug            string
	Lang            string
	Title           string
	Summary         string
	Body            string
	Cover           Image
	Gallery         []Image
	Tags            []string
	Categories      []string
	Country         string
	ReadingTimeMins int
	WordCount       int
	Author          Author
	FAQ             []FAQ
	Video           *Video
	PublishedAt     time.Time
	UpdatedAt       time.Time
	SEO             ArticleSEO
}

// Image carries an image URL plus intrinsic dimensions when known.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// Author captures story author metadata.
type Author struct {
	Name       string
	ProfileURL string
}

// FAQ is a question/answer pair attached to an article.
type FAQ struct {
	Question string
	Answer   string
}

// Video describes a video embedded in an article.
type Video struct {
	Name         string
	Description  string
	ThumbnailURL string
	UploadDate   string
	Duration     string
	ContentURL   string
	EmbedURL     string
}

// ArticleSEO contains optional per-article metadata overrides.
type ArticleSEO struct {
	MetaTitle       string
	MetaDescription string
	OGImage         string
}

// ListArticlesOptions controls article listing requests.
type ListArticlesOptions struct {
	Lang     string
	Category string
	Tag      string
	Search   string
	Limit    int
}

// ListArticles returns localized articles sorted newest first, applying
// filters client-side when the CMS cannot. Remote failures always degrade
// to the local markdown fallback rather than an error.
func (c *Client) ListArticles(ctx context.Context, opts ListArticlesOptions) ([]Article, error) {
	lang := normalizeLang(opts.Lang)

	if c == nil || c.baseURL == "" {
		return filterArticles(fallbackArticles(c.ContentDir(), lang), opts), nil
	}

	endpoint, err := url.JoinPath(c.baseURL, "content/articles")
	if err != nil {
		log.Printf("cms: join path articles: %v", err)
		return filterArticles(fallbackArticles(c.ContentDir(), lang), opts), nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("cms: build request articles: %v", err)
		return filterArticles(fallbackArticles(c.ContentDir(), lang), opts), nil
	}
	q := req.URL.Query()
	q.Set("lang", lang)
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("cms: list articles request: %v", err)
		return filterArticles(fallbackArticles(c.ContentDir(), lang), opts), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []Article{}, nil
	}
	if resp.StatusCode >= 400 {
		log.Printf("cms: list articles status %d", resp.StatusCode)
		return filterArticles(fallbackArticles(c.ContentDir(), lang), opts), nil
	}

	var page struct {
		Items []rawArticle `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		log.Printf("cms: decode list articles: %v", err)
		return filterArticles(fallbackArticles(c.ContentDir(), lang), opts), nil
	}

	articles := make([]Article, 0, len(page.Items))
	for _, raw := range page.Items {
		a, ok := mapRawArticle(raw, lang)
		if !ok {
			continue
		}
		articles = append(articles, a)
	}
	if len(articles) == 0 {
		return filterArticles(fallbackArticles(c.ContentDir(), lang), opts), nil
	}

	sortArticles(articles)
	return filterArticles(articles, opts), nil
}

// GetArticle retrieves a single localized article by slug, consulting the
// cache, then the remote CMS, then local markdown.
func (c *Client) GetArticle(ctx context.Context, slug, lang string) (Article, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Article{}, ErrNotFound
	}
	lang = normalizeLang(lang)

	cacheKey := strings.Join([]string{lang, slug}, "|")
	if a, ok := cachedArticle(cacheKey); ok {
		return a, nil
	}

	a, err := c.fetchArticle(ctx, slug, lang)
	if err != nil {
		return Article{}, err
	}
	storeArticle(cacheKey, a)
	return cloneArticle(a), nil
}

func (c *Client) fetchArticle(ctx context.Context, slug, lang string) (Article, error) {
	if c != nil && c.baseURL != "" {
		if a, err := c.fetchArticleRemote(ctx, slug, lang); err == nil {
			return a, nil
		} else if !errors.Is(err, ErrNotFound) {
			log.Printf("cms: article %s remote: %v", slug, err)
		}
	}
	return fallbackArticle(c.ContentDir(), slug, lang)
}

func (c *Client) fetchArticleRemote(ctx context.Context, slug, lang string) (Article, error) {
	endpoint, err := url.JoinPath(c.baseURL, "content/articles", slug)
	if err != nil {
		return Article{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Article{}, err
	}
	q := req.URL.Query()
	q.Set("lang", lang)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Article{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Article{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return Article{}, fmt.Errorf("cms: article detail status %d", resp.StatusCode)
	}

	var raw rawArticle
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Article{}, err
	}
	a, ok := mapRawArticle(raw, lang)
	if !ok {
		return Article{}, ErrNotFound
	}
	return a, nil
}

type rawArticle struct {
	Slug            string     `json:"slug"`
	Lang            string     `json:"lang"`
	Title           string     `json:"title"`
	Summary         string     `json:"summary"`
	Body            string     `json:"body"`
	Cover           rawImage   `json:"cover"`
	Gallery         []rawImage `json:"gallery"`
	Tags            []string   `json:"tags"`
	Categories      []string   `json:"categories"`
	Country         string     `json:"country"`
	ReadingTimeMins int        `json:"readingTimeMinutes"`
	WordCount       int        `json:"wordCount"`
	Author          rawAuthor  `json:"author"`
	FAQ             []rawFAQ   `json:"faq"`
	Video           *rawVideo  `json:"video"`
	PublishedAt     *time.Time `json:"publishedAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
	SEO             rawSEO     `json:"seo"`
}

type rawImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

type rawAuthor struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl"`
}

type rawFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type rawVideo struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	UploadDate   string `json:"uploadDate"`
	Duration     string `json:"duration"`
	ContentURL   string `json:"contentUrl"`
	EmbedURL     string `json:"embedUrl"`
}

type rawSEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	OGImage         string `json:"ogImage"`
}

func mapRawArticle(raw rawArticle, preferredLang string) (Article, bool) {
	if strings.TrimSpace(raw.Title) == "" && strings.TrimSpace(raw.Body) == "" {
		return Article{}, false
	}
	a := Article{
		Slug:            raw.Slug,
		Lang:            firstNonEmpty(raw.Lang, preferredLang),
		Title:           raw.Title,
		Summary:         raw.Summary,
		Body:            raw.Body,
		Cover:           Image(raw.Cover),
		Tags:            append([]string(nil), raw.Tags...),
		Categories:      lowerSlice(raw.Categories),
		Country:         raw.Country,
		ReadingTimeMins: raw.ReadingTimeMins,
		WordCount:       raw.WordCount,
		Author:          Author(raw.Author),
		SEO:             ArticleSEO(raw.SEO),
	}
	for _, img := range raw.Gallery {
		a.Gallery = append(a.Gallery, Image(img))
	}
	for _, f := range raw.FAQ {
		a.FAQ = append(a.FAQ, FAQ(f))
	}
	if raw.Video != nil {
		v := Video(*raw.Video)
		a.Video = &v
	}
	if raw.PublishedAt != nil {
		a.PublishedAt = *raw.PublishedAt
	}
	if raw.UpdatedAt != nil {
		a.UpdatedAt = *raw.UpdatedAt
	}
	if a.WordCount == 0 {
		a.WordCount = len(strings.Fields(a.Body))
	}
	return a, true
}

func filterArticles(articles []Article, opts ListArticlesOptions) []Article {
	category := strings.ToLower(strings.TrimSpace(opts.Category))
	tag := strings.ToLower(strings.TrimSpace(opts.Tag))
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	filtered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if category != "" && !containsFold(a.Categories, category) {
			continue
		}
		if tag != "" && !containsFold(a.Tags, tag) {
			continue
		}
		if search != "" {
			hay := strings.ToLower(a.Title + " " + a.Summary + " " + strings.Join(a.Tags, " "))
			if !strings.Contains(hay, search) {
				continue
			}
		}
		filtered = append(filtered, cloneArticle(a))
		if opts.Limit > 0 && len(filtered) >= opts.Limit {
			break
		}
	}
	return filtered
}

func sortArticles(items []Article) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case !a.PublishedAt.IsZero() && !b.PublishedAt.IsZero():
			if !a.PublishedAt.Equal(b.PublishedAt) {
				return a.PublishedAt.After(b.PublishedAt)
			}
		case !a.PublishedAt.IsZero():
			return true
		case !b.PublishedAt.IsZero():
			return false
		}
		return a.Slug < b.Slug
	})
}

func cloneArticle(a Article) Article {
	clone := a
	if a.Gallery != nil {
		clone.Gallery = append([]Image(nil), a.Gallery...)
	}
	if a.Tags != nil {
		clone.Tags = append([]string(nil), a.Tags...)
	}
	if a.Categories != nil {
		clone.Categories = append([]string(nil), a.Categories...)
	}
	if a.FAQ != nil {
		clone.FAQ = append([]FAQ(nil), a.FAQ...)
	}
	if a.Video != nil {
		v := *a.Video
		clone.Video = &v
	}
	return clone
}

func containsFold(list []string, val string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), val) {
			return true
		}
	}
	return false
}

func lowerSlice(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}
