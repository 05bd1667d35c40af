// Package nav defines the site's primary navigation and derives breadcrumb
// trails from request paths. Breadcrumbs feed both the header markup and
// the BreadcrumbList schema, so ordering here is the ordering crawlers see.
package nav

import (
	"path"
	"strings"

	"wayfield.org/wayfield-web/internal/seo"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/stories"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/stories", Label: "Stories"},
	{Path: "/destinations", Label: "Destinations"},
	{Path: "/about", Label: "About"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path: Home first,
// known sections by their nav label, deeper segments prettified. Labels for
// leaf pages (story titles) can be replaced by the caller afterwards.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	if len(parts) > 0 && parts[0] != "" {
		top := "/" + parts[0]
		label := titleFromSegment(parts[0])
		for _, it := range Main {
			if it.Path == top {
				label = it.Label
				break
			}
		}
		crumbs = append(crumbs, Crumb{Href: top, Label: label, Active: len(parts) == 1})
	}

	if len(parts) > 1 {
		href := "/" + parts[0]
		for i := 1; i < len(parts); i++ {
			href = href + "/" + parts[i]
			crumbs = append(crumbs, Crumb{
				Href:   href,
				Label:  titleFromSegment(parts[i]),
				Active: i == len(parts)-1,
			})
		}
	}
	return crumbs
}

// SchemaItems converts crumbs to BreadcrumbList input with 1-based
// positions in trail order.
func SchemaItems(crumbs []Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{
			Name:     c.Label,
			Item:     c.Href,
			Position: i + 1,
		})
	}
	return items
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
