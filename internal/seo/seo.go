// Package seo builds schema.org JSON-LD payloads for site pages and mounts
// them as script tags. Builders are pure: they transform typed inputs into
// map-shaped schema objects, normalize URLs and dates, and strip empty
// optional fields. Nothing in this package may fail a page render; every
// entry point degrades to "emit less metadata".
package seo

// ImageMeta describes an image referenced by a schema object. Width and
// Height are emitted together or not at all.
type ImageMeta struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OrganizationInput feeds the Organization builder.
type OrganizationInput struct {
	Name         string
	URL          string
	Logo         ImageMeta
	SameAs       []string
	ContactEmail string
}

// SiteInput feeds the WebSite builder and anchors URL resolution for all
// other builders.
type SiteInput struct {
	Name        string
	URL         string
	Description string
	Language    string
	// SearchEnabled controls whether the WebSite schema advertises a
	// SearchAction for /search. Defaults on for crawler compatibility.
	SearchEnabled bool
}

// PageInput feeds the WebPage builder.
type PageInput struct {
	URL         string
	Title       string
	Description string
	Language    string
	Image       *ImageMeta
}

// BreadcrumbItem is one entry of a breadcrumb trail. Position is 1-based and
// caller-supplied; the builder does not sort or validate monotonicity.
type BreadcrumbItem struct {
	Name     string
	Item     string
	Position int
}

// AuthorMeta identifies an article author.
type AuthorMeta struct {
	Name   string
	URL    string
	SameAs []string
}

// FAQItem is a plain-text question/answer pair.
type FAQItem struct {
	Question string
	Answer   string
}

// VideoMeta describes an embedded video. Duration is an ISO-8601 duration
// string such as "PT4M".
type VideoMeta struct {
	Name         string
	Description  string
	ThumbnailURL string
	UploadDate   string
	Duration     string
	ContentURL   string
	EmbedURL     string
}

// ArticleMeta carries everything the BlogPosting builder needs. PublishedAt
// is required; the zero ModifiedAt means "not modified".
type ArticleMeta struct {
	URL             string
	Slug            string
	Title           string
	Description     string
	Cover           ImageMeta
	Gallery         []ImageMeta
	Tags            []string
	Categories      []string
	ReadingTimeMins int
	WordCount       int
	Country         string
	PublishedAt     any // time.Time or ISO-8601 string
	ModifiedAt      any // time.Time, ISO-8601 string, or nil
	Author          AuthorMeta
	Publisher       *OrganizationInput
	FAQ             []FAQItem
	Video           *VideoMeta
}

// Meta holds head-level metadata for a page render. JSON-LD script tags are
// carried alongside so templates can mount both from one view model.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}
