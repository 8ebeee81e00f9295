// Package view maps loaded content to per-page view models. Every function
// here is pure: the same content and options always produce the same view,
// so the generator, the preview server and tests share one mapping.
package view

import (
	"path"
	"strings"
	"time"

	"github.com/reprogrammability/tutorsite/internal/content"
)

// Variant selects between the rebuilt site and the legacy single-page site.
type Variant int

const (
	Rebuilt Variant = iota
	Legacy
)

// Route is one navigable page.
type Route struct {
	Key  string
	Name string
	Path string
}

// Routes of the rebuilt site, in navigation order.
var Routes = []Route{
	{Key: "home", Name: "Home", Path: "/"},
	{Key: "program", Name: "Program", Path: "/program/"},
	{Key: "speakers", Name: "Speakers", Path: "/speakers/"},
	{Key: "materials", Name: "Materials", Path: "/materials/"},
	{Key: "reading", Name: "Reading", Path: "/reading/"},
	{Key: "taxonomy", Name: "Taxonomy", Path: "/taxonomy/"},
	{Key: "contact", Name: "Contact", Path: "/contact/"},
	{Key: "cite", Name: "Cite", Path: "/cite/"},
}

// LegacyRoutes of the filename-routed legacy site.
var LegacyRoutes = []Route{
	{Key: "home", Name: "Home", Path: "index.html"},
	{Key: "program", Name: "Program", Path: "program.html"},
	{Key: "speakers", Name: "Speakers", Path: "speakers.html"},
	{Key: "materials", Name: "Materials", Path: "materials.html"},
}

// Options carries the rendering context shared by every page.
type Options struct {
	Variant  Variant
	BasePath string
}

func (o Options) routes() []Route {
	if o.Variant == Legacy {
		return LegacyRoutes
	}
	return Routes
}

// Href returns the link to the page with the given key. Keys the variant
// does not have fall back to its materials page, which the legacy site
// uses for reading material as well.
func (o Options) Href(key string) string {
	for _, r := range o.routes() {
		if r.Key == key {
			return o.link(r.Path)
		}
	}
	if key != "materials" {
		return o.Href("materials")
	}
	return o.link("/")
}

// Asset returns the link to a file in the output root.
func (o Options) Asset(name string) string {
	if o.Variant == Legacy {
		return name
	}
	return o.link("/" + name)
}

func (o Options) link(p string) string {
	if o.Variant == Legacy {
		return p
	}
	return strings.TrimSuffix(o.BasePath, "/") + p
}

// PageKey derives a page key from a request path or filename: the last path
// element without its extension. The site root and index pages map to
// "home"; a directory index maps to its directory name.
func PageKey(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	name := path.Base(p)
	name = strings.TrimSuffix(name, path.Ext(name))
	if name == "index" {
		dir := path.Dir(p)
		if dir == "." || dir == "/" {
			return "home"
		}
		name = path.Base(dir)
	}
	if name == "" || name == "." || name == "/" {
		return "home"
	}
	return name
}

// NavItem is one header link.
type NavItem struct {
	Name   string
	Href   string
	Active bool
}

// Nav builds the header navigation with at most one active entry, the
// one whose key matches the current page.
func Nav(current string, o Options) []NavItem {
	key := PageKey(current)
	routes := o.routes()
	items := make([]NavItem, len(routes))
	for i, r := range routes {
		items[i] = NavItem{Name: r.Name, Href: o.link(r.Path), Active: r.Key == key}
	}
	return items
}

// Link is a labelled hyperlink.
type Link struct {
	Label    string
	Href     string
	External bool
}

// Footer is the static block at the bottom of every page.
type Footer struct {
	Contact     Link
	Links       []Link
	Licenses    []string
	Copyright   string
	Year        int
	LastUpdated string
}

// FooterFor builds the footer. Year and last-updated date come from now,
// the clock at render time, never from document metadata.
func FooterFor(t *content.Tutorial, now time.Time) Footer {
	f := Footer{
		Licenses:    []string{"Content: CC BY-SA 4.0", "Code: MIT License"},
		Year:        now.Year(),
		LastUpdated: now.Format("January 2, 2006"),
	}
	if t == nil {
		return f
	}
	if c := t.Contact.Primary(); c.Href() != "" {
		f.Contact = Link{Label: c.Label(), Href: c.Href()}
	}
	if t.ProjectContext.ParentProject != "" {
		f.Links = append(f.Links, Link{Label: "Main Project", Href: "../"})
	}
	if repo := t.ProjectContext.Repository; repo != "" {
		f.Links = append(f.Links, Link{Label: "Source Code", Href: repo, External: true})
		if wp := t.ProjectContext.WebsitePath; wp != "" {
			f.Links = append(f.Links, Link{
				Label:    "Tutorial Source",
				Href:     strings.TrimSuffix(repo, "/") + "/tree/main/" + strings.Trim(wp, "/"),
				External: true,
			})
		}
	}
	f.Copyright = t.Title
	if p := t.ProjectContext.ParentProject; p != "" {
		f.Copyright += ". Part of the " + p + " project."
	}
	return f
}

// Chrome is the header and footer around a page.
type Chrome struct {
	SiteName string
	HomeHref string
	Nav      []NavItem
	Footer   Footer
}

// ChromeFor builds the shared chrome for the page at current.
func ChromeFor(current, siteName string, t *content.Tutorial, now time.Time, o Options) Chrome {
	return Chrome{
		SiteName: siteName,
		HomeHref: o.Href("home"),
		Nav:      Nav(current, o),
		Footer:   FooterFor(t, now),
	}
}
