// Package site writes the static tutorial website: page HTML, stylesheet,
// client script, calendar files and sitemap.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reprogrammability/tutorsite/internal/calendar"
	"github.com/reprogrammability/tutorsite/internal/content"
	"github.com/reprogrammability/tutorsite/internal/view"
)

// Generator builds the rebuilt, route-per-directory site from the YAML
// content documents.
type Generator struct {
	ContentDir string
	OutputDir  string
	SiteName   string
	BasePath   string
	SiteURL    string
	Calendar   calendar.Defaults
	Now        func() time.Time
	LiveReload bool
}

// NewGenerator creates a Generator with the built-in calendar fallbacks and
// the wall clock.
func NewGenerator(contentDir, outputDir, siteName string) *Generator {
	return &Generator{
		ContentDir: contentDir,
		OutputDir:  outputDir,
		SiteName:   siteName,
		Calendar:   calendar.DefaultDefaults(),
		Now:        time.Now,
	}
}

// pageData holds the data passed to the layout for each page.
type pageData struct {
	Title      string
	Variant    string
	Chrome     view.Chrome
	StyleHref  string
	ScriptHref string
	LiveReload bool
	Page       any
}

// renderedPage is one page ready to be written.
type renderedPage struct {
	route view.Route
	tmpl  string
	title string
	page  any
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func (g *Generator) options() view.Options {
	return view.Options{Variant: view.Rebuilt, BasePath: g.BasePath}
}

// Generate loads every content document and writes the site. Any content
// failure aborts before a page is written. Returns the number of pages
// generated.
func (g *Generator) Generate() (int, error) {
	bundle, err := content.NewLoader(g.ContentDir).LoadBundle()
	if err != nil {
		return 0, fmt.Errorf("loading content: %w", err)
	}

	pages, err := g.pages(bundle)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := writeAssets(g.OutputDir); err != nil {
		return 0, err
	}

	now := g.now()
	opts := g.options()
	for _, p := range pages {
		tmpl, err := parsePage(p.tmpl)
		if err != nil {
			return 0, fmt.Errorf("parsing %s template: %w", p.route.Key, err)
		}
		data := pageData{
			Title:      p.title,
			Variant:    "rebuilt",
			Chrome:     view.ChromeFor(p.route.Path, g.SiteName, &bundle.Tutorial, now, opts),
			StyleHref:  opts.Asset("style.css"),
			ScriptHref: opts.Asset("script.js"),
			LiveReload: g.LiveReload,
			Page:       p.page,
		}
		if err := renderPage(tmpl, filepath.Join(g.OutputDir, routeFile(p.route.Path)), data); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", p.route.Path, err)
		}
	}

	if err := writeCalendars(g.OutputDir, bundle, g.Calendar, now); err != nil {
		return 0, fmt.Errorf("writing calendars: %w", err)
	}
	if err := WriteSitemap(filepath.Join(g.OutputDir, "sitemap.txt"), g.SiteURL, g.BasePath, view.Routes); err != nil {
		return 0, fmt.Errorf("writing sitemap: %w", err)
	}

	return len(pages), nil
}

// pages maps every rebuilt route to its template and view model.
func (g *Generator) pages(b *content.Bundle) ([]renderedPage, error) {
	opts := g.options()

	taxonomySrc, err := g.pageSource("taxonomy")
	if err != nil {
		return nil, err
	}
	taxonomy, err := view.Taxonomy(taxonomySrc)
	if err != nil {
		return nil, fmt.Errorf("rendering taxonomy: %w", err)
	}
	citeSrc, err := g.pageSource("cite")
	if err != nil {
		return nil, err
	}
	cite, err := view.Cite(citeSrc, &b.Reading)
	if err != nil {
		return nil, fmt.Errorf("rendering cite: %w", err)
	}

	byKey := map[string]renderedPage{
		"home":      {tmpl: homeTemplate, title: "Home", page: view.Home(&b.Tutorial, opts)},
		"program":   {tmpl: programTemplate, title: "Program", page: view.Program(&b.Program, view.LayoutFor(view.Rebuilt), opts)},
		"speakers":  {tmpl: speakersTemplate, title: "Speakers", page: view.Speakers(&b.Speakers, opts)},
		"materials": {tmpl: materialsPageTemplate, title: "Materials", page: view.Materials(&b.Materials)},
		"reading":   {tmpl: readingPageTemplate, title: "Reading List", page: view.Reading(&b.Reading)},
		"taxonomy":  {tmpl: markdownPageTemplate, title: "Taxonomy", page: taxonomy},
		"contact":   {tmpl: contactTemplate, title: "Contact", page: view.Contact(&b.Tutorial, opts)},
		"cite":      {tmpl: markdownPageTemplate, title: "Cite", page: cite},
	}

	pages := make([]renderedPage, 0, len(view.Routes))
	for _, r := range view.Routes {
		p, ok := byKey[r.Key]
		if !ok {
			return nil, fmt.Errorf("no page for route %s", r.Path)
		}
		p.route = r
		pages = append(pages, p)
	}
	return pages, nil
}

// pageSource returns <content>/pages/<name>.md when present and the
// built-in page otherwise.
func (g *Generator) pageSource(name string) ([]byte, error) {
	override := filepath.Join(g.ContentDir, "pages", name+".md")
	data, err := os.ReadFile(override)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", override, err)
	}
	return view.DefaultPage(name)
}

// parsePage parses the layout, the shared partials and one page template.
func parsePage(page string) (*template.Template, error) {
	tmpl := template.New("page")
	for _, src := range []string{layoutTemplate, contactListTemplate, sessionTemplate, materialsTemplate, readingTemplate, page} {
		if _, err := tmpl.Parse(src); err != nil {
			return nil, err
		}
	}
	return tmpl, nil
}

// renderPage executes the layout into outPath, creating parent directories.
func renderPage(tmpl *template.Template, outPath string, data pageData) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// routeFile maps a route path to its file under the output directory:
// "/" is index.html and "/program/" is program/index.html.
func routeFile(p string) string {
	if strings.HasSuffix(p, ".html") {
		return filepath.FromSlash(strings.TrimPrefix(p, "/"))
	}
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(trimmed), "index.html")
}

// writeAssets writes the stylesheet and client script.
func writeAssets(dir string) error {
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "script.js"), []byte(jsContent), 0o644)
}

// writeCalendars writes one .ics per session plus one for the whole
// tutorial under <dir>/calendar.
func writeCalendars(dir string, b *content.Bundle, d calendar.Defaults, now time.Time) error {
	calDir := filepath.Join(dir, "calendar")
	if err := os.MkdirAll(calDir, 0o755); err != nil {
		return err
	}
	for _, s := range b.Program.Sessions {
		data := calendar.Render(now, calendar.SessionEvent(&b.Tutorial, s, d))
		if err := os.WriteFile(filepath.Join(calDir, calendar.SessionFilename(s.Order)), data, 0o644); err != nil {
			return err
		}
	}
	data := calendar.Render(now, calendar.TutorialEvent(&b.Tutorial, d))
	return os.WriteFile(filepath.Join(calDir, calendar.TutorialFilename(b.Tutorial.Title)), data, 0o644)
}
