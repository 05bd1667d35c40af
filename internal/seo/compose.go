package seo

import (
	"html/template"
	"log"
)

// Composer decides which schemas a page gets and mounts each one as its own
// script tag. Separate tags keep every schema independently identifiable in
// the rendered HTML, which matters when debugging crawler output.
//
// Debug enables development-time warnings for malformed schema objects. It
// is plumbed in explicitly at construction so production builds stay silent
// without consulting any global state.
type Composer struct {
	Builder Builder
	Debug   bool
}

// NewComposer builds a Composer for the given site identity.
func NewComposer(site SiteInput, org OrganizationInput) *Composer {
	return &Composer{Builder: NewBuilder(site, org)}
}

// Home returns the script tags for the landing page: the WebSite schema and
// the publishing Organization.
func (c *Composer) Home() []template.HTML {
	return []template.HTML{
		c.tag(c.Builder.WebSite()),
		c.tag(c.Builder.Organization(c.Builder.Org)),
	}
}

// Page composes the schema set for a content page. The WebPage schema is
// always mounted; breadcrumbs, article, and FAQ schemas only when their
// inputs are present. An article's embedded FAQ list wins over a standalone
// one.
func (c *Composer) Page(p PageInput, crumbs []BreadcrumbItem, article *ArticleMeta, faqs []FAQItem) []template.HTML {
	tags := []template.HTML{c.tag(c.Builder.WebPage(p))}
	if len(crumbs) > 0 {
		tags = append(tags, c.tag(c.Builder.BreadcrumbList(crumbs)))
	}
	if article != nil {
		tags = append(tags, c.tag(c.Builder.BlogPosting(*article)))
		if len(article.FAQ) > 0 {
			faqs = article.FAQ
		}
	}
	if len(faqs) > 0 {
		tags = append(tags, c.tag(c.Builder.FAQPage(faqs)))
	}
	out := tags[:0]
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (c *Composer) tag(obj map[string]any) template.HTML {
	if c.Debug {
		warnMalformed(obj)
	}
	return ScriptTag(obj)
}

func warnMalformed(obj map[string]any) {
	if obj == nil {
		log.Printf("seo: dropping nil schema object")
		return
	}
	if _, ok := obj["@context"].(string); !ok {
		log.Printf("seo: schema object missing @context: %v", obj["@type"])
	}
	if _, ok := obj["@type"].(string); !ok {
		log.Printf("seo: schema object missing @type")
	}
}
