package cms

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Local markdown fallback. Articles live at
// <contentDir>/articles/<lang>/<slug>.md with YAML front matter.

type articleFrontMatter struct {
	Title       string       `yaml:"title"`
	Summary     string       `yaml:"summary"`
	Lang        string       `yaml:"lang"`
	Country     string       `yaml:"country"`
	Tags        []string     `yaml:"tags"`
	Categories  []string     `yaml:"categories"`
	ReadingTime int          `yaml:"reading_time"`
	Cover       frontImage   `yaml:"cover"`
	Gallery     []frontImage `yaml:"gallery"`
	Author      frontAuthor  `yaml:"author"`
	PublishedAt string       `yaml:"published_at"`
	UpdatedAt   string       `yaml:"updated_at"`
	FAQ         []frontFAQ   `yaml:"faq"`
	Video       *frontVideo  `yaml:"video"`
	SEO         frontSEO     `yaml:"seo"`
}

type frontImage struct {
	URL    string `yaml:"url"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Alt    string `yaml:"alt"`
}

type frontAuthor struct {
	Name       string `yaml:"name"`
	ProfileURL string `yaml:"profile_url"`
}

type frontFAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type frontVideo struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	ThumbnailURL string `yaml:"thumbnail_url"`
	UploadDate   string `yaml:"upload_date"`
	Duration     string `yaml:"duration"`
	ContentURL   string `yaml:"content_url"`
	EmbedURL     string `yaml:"embed_url"`
}

type frontSEO struct {
	MetaTitle       string `yaml:"meta_title"`
	MetaDescription string `yaml:"meta_description"`
	OGImage         string `yaml:"og_image"`
}

func fallbackArticles(contentDir, lang string) []Article {
	dir := filepath.Join(contentDir, "articles", lang)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("cms: read fallback dir %s: %v", dir, err)
		}
		return []Article{}
	}
	articles := make([]Article, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		a, err := readArticleMarkdown(contentDir, slug, lang)
		if err != nil {
			log.Printf("cms: skip fallback article %s: %v", entry.Name(), err)
			continue
		}
		articles = append(articles, a)
	}
	sortArticles(articles)
	return articles
}

func fallbackArticle(contentDir, slug, lang string) (Article, error) {
	priority := []string{lang}
	if lang != defaultLang {
		priority = append(priority, defaultLang)
	}
	for _, candidate := range priority {
		a, err := readArticleMarkdown(contentDir, slug, candidate)
		if err == nil {
			return a, nil
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		// parse errors stop the lookup early
		return Article{}, err
	}
	return Article{}, ErrNotFound
}

func readArticleMarkdown(contentDir, slug, lang string) (Article, error) {
	if slug == "" {
		return Article{}, ErrNotFound
	}
	file := filepath.Join(contentDir, "articles", lang, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
	}

	fm, body := splitFrontMatter(string(data))
	front := articleFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Article{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}

	a := Article{
		Slug:        slug,
		Lang:        firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:       strings.TrimSpace(front.Title),
		Summary:     strings.TrimSpace(front.Summary),
		Body:        body,
		Cover:       Image(front.Cover),
		Tags:        front.Tags,
		Categories:  lowerSlice(front.Categories),
		Country:     strings.TrimSpace(front.Country),
		Author:      Author(front.Author),
		PublishedAt: parseArticleDate(front.PublishedAt),
		UpdatedAt:   parseArticleDate(front.UpdatedAt),
		SEO:         ArticleSEO(front.SEO),
	}
	for _, img := range front.Gallery {
		a.Gallery = append(a.Gallery, Image(img))
	}
	for _, f := range front.FAQ {
		a.FAQ = append(a.FAQ, FAQ(f))
	}
	if front.Video != nil {
		v := Video(*front.Video)
		a.Video = &v
	}
	if a.Title == "" {
		a.Title = prettifySlug(slug)
	}
	a.WordCount = len(strings.Fields(body))
	a.ReadingTimeMins = front.ReadingTime
	if a.ReadingTimeMins == 0 && a.WordCount > 0 {
		// ~200 words a minute, rounded up
		a.ReadingTimeMins = (a.WordCount + 199) / 200
	}
	if a.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			a.UpdatedAt = info.ModTime()
		}
	}
	return a, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseArticleDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
