package seo

import (
	"fmt"
	"strings"
	"time"
)

const schemaContext = "https://schema.org"

// Builder turns typed inputs into schema.org JSON-LD objects. The embedded
// site identity anchors relative URL resolution and supplies publisher
// defaults. Every method is a pure function of its input: call it twice with
// the same value and you get structurally identical output.
type Builder struct {
	Site SiteInput
	Org  OrganizationInput
}

// NewBuilder constructs a Builder around the site identity.
func NewBuilder(site SiteInput, org OrganizationInput) Builder {
	return Builder{Site: site, Org: org}
}

func (b Builder) abs(s string) string {
	return AbsoluteURL(s, b.Site.URL)
}

// absOpt resolves optional URL fields: an empty input stays empty so Clean
// strips the property instead of pointing it at the site root.
func (b Builder) absOpt(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return AbsoluteURL(s, b.Site.URL)
}

// imageObject maps ImageMeta to a schema.org ImageObject. Width and height
// are emitted together or not at all.
func (b Builder) imageObject(img ImageMeta) map[string]any {
	m := map[string]any{
		"@type": "ImageObject",
		"url":   b.absOpt(img.URL),
	}
	if img.Width > 0 && img.Height > 0 {
		m["width"] = img.Width
		m["height"] = img.Height
	}
	return m
}

// Organization builds an Organization schema. The contactPoint is nested
// only when a contact email is supplied.
func (b Builder) Organization(org OrganizationInput) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     org.Name,
		"url":      b.abs(org.URL),
		"logo":     b.imageObject(org.Logo),
		"sameAs":   toAnySlice(org.SameAs),
	}
	if org.ContactEmail != "" {
		m["contactPoint"] = map[string]any{
			"@type":       "ContactPoint",
			"email":       org.ContactEmail,
			"contactType": "customer service",
		}
	}
	return cleanObject(m)
}

// WebSite builds the site-level WebSite schema. The SearchAction target
// advertises the site search endpoint to crawlers; it is gated by
// Site.SearchEnabled so deployments without a search page can opt out.
func (b Builder) WebSite() map[string]any {
	site := b.Site
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "WebSite",
		"name":        site.Name,
		"url":         b.abs(site.URL),
		"description": site.Description,
		"inLanguage":  orDefault(site.Language, "en"),
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  b.Org.Name,
		},
	}
	if site.SearchEnabled {
		m["potentialAction"] = map[string]any{
			"@type": "SearchAction",
			"target": map[string]any{
				"@type":       "EntryPoint",
				"urlTemplate": b.abs(site.URL) + "/search?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		}
	}
	return cleanObject(m)
}

// WebPage builds a WebPage schema. isPartOf always references the global
// site identity, not a per-page override.
func (b Builder) WebPage(p PageInput) map[string]any {
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "WebPage",
		"url":         b.abs(p.URL),
		"name":        p.Title,
		"description": p.Description,
		"inLanguage":  orDefault(p.Language, orDefault(b.Site.Language, "en")),
		"isPartOf": map[string]any{
			"@type": "WebSite",
			"name":  b.Site.Name,
			"url":   b.abs(b.Site.URL),
		},
	}
	if p.Image != nil {
		m["primaryImageOfPage"] = b.imageObject(*p.Image)
	}
	return cleanObject(m)
}

// BreadcrumbList maps breadcrumb items 1:1 to ListItems. Items must already
// be in path order with their own positions; nothing is sorted or validated
// here.
func (b Builder) BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]any, 0, len(items))
	for _, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": it.Position,
			"name":     it.Name,
			"item":     b.abs(it.Item),
		})
	}
	return cleanObject(map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	})
}

// BlogPosting builds the article schema. The cover image always leads the
// image array, ahead of any gallery images, without dedup. The publisher
// defaults to the site organization when the article carries none.
func (b Builder) BlogPosting(a ArticleMeta) map[string]any {
	images := make([]any, 0, 1+len(a.Gallery))
	images = append(images, b.imageObject(a.Cover))
	for _, img := range a.Gallery {
		images = append(images, b.imageObject(img))
	}

	publisher := b.Org
	if a.Publisher != nil {
		publisher = *a.Publisher
	}

	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "BlogPosting",
		"url":         b.abs(a.URL),
		"headline":    a.Title,
		"description": a.Description,
		"image":       images,
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   b.abs(a.URL),
		},
		"author": map[string]any{
			"@type":  "Person",
			"name":   a.Author.Name,
			"url":    b.absOpt(a.Author.URL),
			"sameAs": toAnySlice(a.Author.SameAs),
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  publisher.Name,
			"logo":  b.imageObject(publisher.Logo),
		},
		"datePublished":  ToISODate(a.PublishedAt),
		"keywords":       toAnySlice(a.Tags),
		"articleSection": toAnySlice(a.Categories),
		"inLanguage":     orDefault(b.Site.Language, "en"),
	}
	if hasDate(a.ModifiedAt) {
		m["dateModified"] = ToISODate(a.ModifiedAt)
	}
	if a.ReadingTimeMins > 0 {
		// ISO-8601 duration, minutes only, regardless of magnitude.
		m["timeRequired"] = fmt.Sprintf("PT%dM", a.ReadingTimeMins)
	}
	if a.WordCount > 0 {
		m["wordCount"] = a.WordCount
	}
	if a.Country != "" {
		m["contentLocation"] = map[string]any{
			"@type": "Country",
			"name":  a.Country,
		}
	}
	if a.Video != nil {
		m["video"] = b.videoObject(*a.Video)
	}
	return cleanObject(m)
}

// FAQPage maps question/answer pairs to Question entities. Answer text is
// passed through as-is; the renderer owns safe injection.
func (b Builder) FAQPage(items []FAQItem) map[string]any {
	entities := make([]any, 0, len(items))
	for _, it := range items {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return cleanObject(map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	})
}

// VideoObject builds a standalone VideoObject schema.
func (b Builder) VideoObject(v VideoMeta) map[string]any {
	m := b.videoObject(v)
	m["@context"] = schemaContext
	return cleanObject(m)
}

func (b Builder) videoObject(v VideoMeta) map[string]any {
	return map[string]any{
		"@type":        "VideoObject",
		"name":         v.Name,
		"description":  v.Description,
		"thumbnailUrl": b.absOpt(v.ThumbnailURL),
		"uploadDate":   ToISODate(v.UploadDate),
		"duration":     v.Duration,
		"contentUrl":   b.absOpt(v.ContentURL),
		"embedUrl":     b.absOpt(v.EmbedURL),
	}
}

func hasDate(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case time.Time:
		return !t.IsZero()
	case string:
		return t != ""
	default:
		return true
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func toAnySlice(values []string) []any {
	if len(values) == 0 {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
