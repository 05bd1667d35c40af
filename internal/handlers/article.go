package handlers

import (
	"html/template"

	"wayfield.org/wayfield-web/internal/cms"
	"wayfield.org/wayfield-web/internal/config"
	"wayfield.org/wayfield-web/internal/nav"
	"wayfield.org/wayfield-web/internal/seo"
)

// StoryData carries one rendered article.
type StoryData struct {
	Article cms.Article
	Body    template.HTML
}

// StoriesData carries the story listing.
type StoriesData struct {
	Articles []cms.Article
	Category string
	Tag      string
}

// HomeData carries the landing page payload.
type HomeData struct {
	Featured []cms.Article
}

// ArticleSchema maps a CMS article to the BlogPosting builder input.
// Per-article SEO overrides replace the article's own title/description
// where present.
func ArticleSchema(cfg *config.Config, a cms.Article) seo.ArticleMeta {
	title := a.Title
	if a.SEO.MetaTitle != "" {
		title = a.SEO.MetaTitle
	}
	desc := a.Summary
	if a.SEO.MetaDescription != "" {
		desc = a.SEO.MetaDescription
	}
	author := a.Author.Name
	if author == "" {
		author = cfg.DefaultAuthor
	}

	meta := seo.ArticleMeta{
		URL:             "/stories/" + a.Slug,
		Slug:            a.Slug,
		Title:           title,
		Description:     desc,
		Cover:           imageMeta(a.Cover),
		Tags:            a.Tags,
		Categories:      a.Categories,
		ReadingTimeMins: a.ReadingTimeMins,
		WordCount:       a.WordCount,
		Country:         a.Country,
		PublishedAt:     a.PublishedAt,
		Author: seo.AuthorMeta{
			Name: author,
			URL:  a.Author.ProfileURL,
		},
	}
	if !a.UpdatedAt.IsZero() && !a.UpdatedAt.Equal(a.PublishedAt) {
		meta.ModifiedAt = a.UpdatedAt
	}
	for _, img := range a.Gallery {
		meta.Gallery = append(meta.Gallery, imageMeta(img))
	}
	for _, f := range a.FAQ {
		meta.FAQ = append(meta.FAQ, seo.FAQItem{Question: f.Question, Answer: f.Answer})
	}
	if v := a.Video; v != nil {
		meta.Video = &seo.VideoMeta{
			Name:         v.Name,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			UploadDate:   v.UploadDate,
			Duration:     v.Duration,
			ContentURL:   v.ContentURL,
			EmbedURL:     v.EmbedURL,
		}
	}
	return meta
}

// ArticlePage builds the full view model for a story page, including its
// head metadata and JSON-LD tags.
func ArticlePage(cfg *config.Config, composer *seo.Composer, a cms.Article, body template.HTML) PageData {
	title := a.Title
	if a.SEO.MetaTitle != "" {
		title = a.SEO.MetaTitle
	}
	desc := a.Summary
	if a.SEO.MetaDescription != "" {
		desc = a.SEO.MetaDescription
	}

	path := "/stories/" + a.Slug
	data := NewPageData(cfg, path, title, desc)
	data.Story = &StoryData{Article: a, Body: body}

	// Leaf crumb label should be the story title, not the prettified slug.
	if n := len(data.Breadcrumbs); n > 0 {
		data.Breadcrumbs[n-1].Label = a.Title
	}

	data.Meta.OG.Type = "article"
	ogImage := a.SEO.OGImage
	if ogImage == "" {
		ogImage = a.Cover.URL
	}
	if ogImage != "" {
		abs := seo.AbsoluteURL(ogImage, cfg.SiteURL)
		data.Meta.OG.Image = abs
		data.Meta.Twitter.Image = abs
	}

	page := seo.PageInput{
		URL:         path,
		Title:       title,
		Description: desc,
		Language:    orLang(a.Lang, cfg.Language),
	}
	if a.Cover.URL != "" {
		img := seo.ImageMeta(a.Cover)
		page.Image = &img
	}
	article := ArticleSchema(cfg, a)
	data.JSONLD = composer.Page(page, nav.SchemaItems(data.Breadcrumbs), &article, nil)
	return data
}

func imageMeta(img cms.Image) seo.ImageMeta {
	return seo.ImageMeta(img)
}

func orLang(lang, fallback string) string {
	if lang != "" {
		return lang
	}
	return fallback
}
