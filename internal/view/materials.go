package view

import "github.com/reprogrammability/tutorsite/internal/content"

const (
	LabelComingSoon = "Coming Soon"
	LabelView       = "View"
	LabelDownload   = "Download"
	BadgeLink       = "Link"
)

// MaterialEntry is one rendered material.
type MaterialEntry struct {
	Title       string
	Badge       string
	BadgeClass  string
	Description string
	Href        string
	Label       string
	Enabled     bool
	External    bool
}

// MaterialSection is one tab of the materials page.
type MaterialSection struct {
	ID       string
	Tab      string
	Heading  string
	Selected bool
	Entries  []MaterialEntry
}

// MaterialsPage holds the four material sections.
type MaterialsPage struct {
	Sections []MaterialSection
}

// MaterialEntryFor renders one material of the given section. Without a
// published file or url the control is disabled and reads "Coming Soon".
func MaterialEntryFor(m content.Material, section string) MaterialEntry {
	e := MaterialEntry{
		Title:       m.Title,
		Badge:       m.Format,
		BadgeClass:  "badge-secondary",
		Description: m.Description,
	}
	if e.Badge == "" {
		e.Badge = m.Platform
	}
	if e.Badge == "" {
		e.Badge = BadgeLink
	}
	if section == "slides" {
		e.BadgeClass = "badge-info"
	}

	target := m.Target()
	if target == "" {
		e.Label = LabelComingSoon
		return e
	}
	e.Enabled = true
	e.Href = target
	if section == "code" || m.HasURL() {
		e.Label = LabelView
		e.External = true
	} else {
		e.Label = LabelDownload
	}
	return e
}

func materialSection(id, tab, heading string, ms []content.Material) MaterialSection {
	s := MaterialSection{ID: id, Tab: tab, Heading: heading, Entries: make([]MaterialEntry, 0, len(ms))}
	for _, m := range ms {
		s.Entries = append(s.Entries, MaterialEntryFor(m, id))
	}
	return s
}

// Materials builds the slides, videos, code and other-resources sections,
// each independently. The slides tab starts selected.
func Materials(m *content.Materials) MaterialsPage {
	p := MaterialsPage{Sections: []MaterialSection{
		materialSection("slides", "Slides", "Presentation Slides", m.Slides),
		materialSection("videos", "Videos", "Video Recordings", m.Videos),
		materialSection("code", "Code", "Code Examples", m.Code),
		materialSection("other_resources", "Resources", "Additional Resources", m.OtherResources),
	}}
	p.Sections[0].Selected = true
	return p
}
