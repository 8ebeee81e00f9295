package site

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/reprogrammability/tutorsite/internal/calendar"
	"github.com/reprogrammability/tutorsite/internal/content"
	"github.com/reprogrammability/tutorsite/internal/view"
)

// LegacyGenerator builds the filename-routed legacy site from the aggregate
// JSON document held by Store.
type LegacyGenerator struct {
	Store     *content.LegacyStore
	OutputDir string
	SiteName  string
	Calendar  calendar.Defaults
	Now       func() time.Time
}

// NewLegacyGenerator creates a LegacyGenerator reading dataPath.
func NewLegacyGenerator(dataPath, outputDir, siteName string) *LegacyGenerator {
	return &LegacyGenerator{
		Store:     content.NewLegacyStore(dataPath),
		OutputDir: outputDir,
		SiteName:  siteName,
		Calendar:  calendar.DefaultDefaults(),
		Now:       time.Now,
	}
}

// legacyMaterialsPage puts the reading list under the materials tabs.
type legacyMaterialsPage struct {
	Materials view.MaterialsPage
	Reading   view.ReadingPage
}

// Generate writes the four legacy pages. When the content document cannot
// be loaded the page shells are still written with empty data regions and
// no error is returned; only filesystem failures are reported.
func (g *LegacyGenerator) Generate() (int, error) {
	bundle := g.Store.Bundle()
	if bundle == nil {
		log.Printf("site: legacy content unavailable, writing page shells")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := writeAssets(g.OutputDir); err != nil {
		return 0, err
	}

	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	opts := view.Options{Variant: view.Legacy}

	var tutorial *content.Tutorial
	if bundle != nil {
		tutorial = &bundle.Tutorial
	}

	for _, r := range view.LegacyRoutes {
		tmpl, err := parsePage(legacyTemplate(r.Key))
		if err != nil {
			return 0, fmt.Errorf("parsing %s template: %w", r.Key, err)
		}
		data := pageData{
			Title:      r.Name,
			Variant:    "legacy",
			Chrome:     view.ChromeFor(r.Path, g.SiteName, tutorial, now, opts),
			StyleHref:  opts.Asset("style.css"),
			ScriptHref: opts.Asset("script.js"),
		}
		if bundle != nil {
			data.Page = legacyPage(r.Key, bundle, opts)
		}
		if err := renderPage(tmpl, filepath.Join(g.OutputDir, routeFile(r.Path)), data); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", r.Path, err)
		}
	}

	if bundle != nil {
		if err := writeCalendars(g.OutputDir, bundle, g.Calendar, now); err != nil {
			return 0, fmt.Errorf("writing calendars: %w", err)
		}
	}

	return len(view.LegacyRoutes), nil
}

func legacyTemplate(key string) string {
	switch key {
	case "program":
		return legacyProgramTemplate
	case "speakers":
		return legacySpeakersTemplate
	case "materials":
		return legacyMaterialsTemplate
	default:
		return legacyHomeTemplate
	}
}

func legacyPage(key string, b *content.Bundle, opts view.Options) any {
	switch key {
	case "program":
		return view.Program(&b.Program, view.LayoutFor(view.Legacy), opts)
	case "speakers":
		return view.Speakers(&b.Speakers, opts)
	case "materials":
		return legacyMaterialsPage{
			Materials: view.Materials(&b.Materials),
			Reading:   view.Reading(&b.Reading),
		}
	default:
		return view.Home(&b.Tutorial, opts)
	}
}
