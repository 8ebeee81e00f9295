package view

import (
	"strings"

	"github.com/reprogrammability/tutorsite/internal/content"
)

// BadgeColor is the visual category of a reading item's type badge.
type BadgeColor string

const (
	BadgePrimary BadgeColor = "primary"
	BadgeSuccess BadgeColor = "success"
	BadgeWarning BadgeColor = "warning"
	BadgeInfo    BadgeColor = "info"
)

// TypeBadge maps a reading type to its badge colour, case-insensitively.
// Unknown types are info.
func TypeBadge(typ string) BadgeColor {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "foundational":
		return BadgePrimary
	case "recommended":
		return BadgeSuccess
	case "survey":
		return BadgeWarning
	default:
		return BadgeInfo
	}
}

// ReadingEntry is one rendered reading item.
type ReadingEntry struct {
	Title       string
	URL         string
	Authors     string
	Description string
	Bibtex      string
	Type        string
	Badge       BadgeColor
}

// ReadingSection is one of the three reading buckets.
type ReadingSection struct {
	ID      string
	Number  int
	Heading string
	Intro   string
	Entries []ReadingEntry
}

// ReadingPage holds the essential, advanced and reference sections.
type ReadingPage struct {
	Sections []ReadingSection
}

// ReadingEntryFor renders one item.
func ReadingEntryFor(it content.ReadingItem) ReadingEntry {
	return ReadingEntry{
		Title:       it.Title,
		URL:         it.URL,
		Authors:     it.Authors,
		Description: it.Description,
		Bibtex:      it.Bibtex,
		Type:        it.Type,
		Badge:       TypeBadge(it.Type),
	}
}

func readingSection(id string, n int, heading, intro string, items []content.ReadingItem) ReadingSection {
	s := ReadingSection{ID: id, Number: n, Heading: heading, Intro: intro, Entries: make([]ReadingEntry, 0, len(items))}
	for _, it := range items {
		s.Entries = append(s.Entries, ReadingEntryFor(it))
	}
	return s
}

// Reading builds the three reading sections.
func Reading(r *content.Reading) ReadingPage {
	return ReadingPage{Sections: []ReadingSection{
		readingSection("essential", 1, "Essential Reading",
			"Core papers that establish the theoretical foundation and unified framework for neural network reprogrammability.",
			r.Essential),
		readingSection("advanced", 2, "Advanced Topics",
			"Specialized techniques and cutting-edge research in parameter-efficient adaptation methods.",
			r.Advanced),
		readingSection("reference", 3, "Background References",
			"Foundational knowledge and context for understanding modern AI adaptation challenges.",
			r.Reference),
	}}
}
