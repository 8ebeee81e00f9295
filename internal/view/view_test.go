package view

import (
	"strings"
	"testing"
	"time"

	"github.com/reprogrammability/tutorsite/internal/content"
)

func TestPageKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/", "home"},
		{"", "home"},
		{"index.html", "home"},
		{"/index.html", "home"},
		{"/program", "program"},
		{"/program/", "program"},
		{"/program/index.html", "program"},
		{"program.html", "program"},
		{"/docs/speakers.html", "speakers"},
		{"/reading/?tab=x", "reading"},
	}
	for _, tt := range tests {
		if got := PageKey(tt.in); got != tt.want {
			t.Errorf("PageKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func activeNames(items []NavItem) []string {
	var names []string
	for _, it := range items {
		if it.Active {
			names = append(names, it.Name)
		}
	}
	return names
}

func TestNavActiveLink(t *testing.T) {
	tests := []struct {
		current string
		opts    Options
		want    []string
	}{
		{"/", Options{}, []string{"Home"}},
		{"/program", Options{}, []string{"Program"}},
		{"/cite/", Options{}, []string{"Cite"}},
		{"/unknown", Options{}, nil},
		{"index.html", Options{Variant: Legacy}, []string{"Home"}},
		{"materials.html", Options{Variant: Legacy}, []string{"Materials"}},
	}
	for _, tt := range tests {
		got := activeNames(Nav(tt.current, tt.opts))
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("Nav(%q) active = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestNavNeverMoreThanOneActive(t *testing.T) {
	for _, r := range Routes {
		if n := len(activeNames(Nav(r.Path, Options{}))); n != 1 {
			t.Errorf("Nav(%q) has %d active links", r.Path, n)
		}
	}
}

func TestNavBasePath(t *testing.T) {
	items := Nav("/", Options{BasePath: "/awesome/tutorial-website/"})
	if items[1].Href != "/awesome/tutorial-website/program/" {
		t.Errorf("program href = %q", items[1].Href)
	}
	legacy := Nav("index.html", Options{Variant: Legacy})
	if legacy[1].Href != "program.html" {
		t.Errorf("legacy program href = %q", legacy[1].Href)
	}
}

func TestOptionsHrefLegacyFallback(t *testing.T) {
	o := Options{Variant: Legacy}
	if got := o.Href("reading"); got != "materials.html" {
		t.Errorf("legacy reading href = %q, want materials.html", got)
	}
}

func TestFooterUsesClock(t *testing.T) {
	now := time.Date(2031, time.March, 4, 12, 0, 0, 0, time.UTC)
	tut := &content.Tutorial{
		Title:   "T",
		Contact: content.Contacts{{Name: "a@b.org", Email: "a@b.org"}},
		ProjectContext: content.ProjectContext{
			ParentProject: "awesome-reprogrammability",
			WebsitePath:   "tutorial-website",
			Repository:    "https://github.com/x/awesome-reprogrammability",
		},
	}
	f := FooterFor(tut, now)
	if f.Year != 2031 {
		t.Errorf("Year = %d", f.Year)
	}
	if f.LastUpdated != "March 4, 2031" {
		t.Errorf("LastUpdated = %q", f.LastUpdated)
	}
	if f.Contact.Href != "mailto:a@b.org" {
		t.Errorf("contact href = %q", f.Contact.Href)
	}
	if len(f.Links) != 3 || f.Links[2].Href != "https://github.com/x/awesome-reprogrammability/tree/main/tutorial-website" {
		t.Errorf("links = %+v", f.Links)
	}
}

func TestHomeContactMailto(t *testing.T) {
	tut := &content.Tutorial{Title: "T", Contact: content.Contacts{{Name: "a@b.org", Email: "a@b.org"}}}
	h := Home(tut, Options{})
	if len(h.Contacts) != 1 || h.Contacts[0].Href != "mailto:a@b.org" {
		t.Fatalf("contacts = %+v", h.Contacts)
	}
}

func TestHomeDescriptionLineBreaks(t *testing.T) {
	h := Home(&content.Tutorial{Description: "one\n<two>\nthree"}, Options{})
	if want := "one<br>&lt;two&gt;<br>three"; string(h.Description) != want {
		t.Errorf("Description = %q, want %q", h.Description, want)
	}
}

func TestHomeLearningOutcomesOrder(t *testing.T) {
	outcomes := []string{"b", "a", "c"}
	h := Home(&content.Tutorial{LearningOutcomes: outcomes}, Options{})
	if strings.Join(h.LearningOutcomes, "") != "bac" {
		t.Errorf("outcomes = %v", h.LearningOutcomes)
	}
}

func TestProgramSortedByOrder(t *testing.T) {
	p := &content.Program{Sessions: []content.Session{
		{Order: 3, Title: "C"},
		{Order: 1, Title: "A"},
		{Order: 2, Title: "B"},
	}}
	page := Program(p, TopicsFlat, Options{})
	if len(page.Sessions) != 3 {
		t.Fatalf("cards = %d, want 3", len(page.Sessions))
	}
	for i, want := range []string{"A", "B", "C"} {
		if page.Sessions[i].Title != want {
			t.Errorf("card %d = %q, want %q", i, page.Sessions[i].Title, want)
		}
	}
	if page.Sessions[0].Heading != "Session 1: A" {
		t.Errorf("heading = %q", page.Sessions[0].Heading)
	}
	if p.Sessions[0].Title != "C" {
		t.Error("Program must not reorder the loaded document")
	}
}

func TestProgramTopicLayouts(t *testing.T) {
	p := &content.Program{Sessions: []content.Session{{Order: 1, Topics: []string{"intro", "x", "y"}}}}

	flat := Program(p, TopicsFlat, Options{}).Sessions[0]
	if flat.Intro != "" || len(flat.Topics) != 3 {
		t.Errorf("flat layout = %+v", flat)
	}

	intro := Program(p, TopicsIntro, Options{}).Sessions[0]
	if intro.Intro != "intro" || strings.Join(intro.Topics, ",") != "x,y" {
		t.Errorf("intro layout = %+v", intro)
	}
}

func TestProgramMaterialsLink(t *testing.T) {
	p := &content.Program{Sessions: []content.Session{
		{Order: 1, Slides: "slides/s1.pdf"},
		{Order: 2},
		{Order: 3, Slides: "TBD"},
	}}
	page := Program(p, TopicsFlat, Options{})
	if page.Sessions[0].MaterialsHref != "slides/s1.pdf" {
		t.Errorf("session slides href = %q", page.Sessions[0].MaterialsHref)
	}
	if page.Sessions[1].MaterialsHref != "/materials/" {
		t.Errorf("default materials href = %q", page.Sessions[1].MaterialsHref)
	}
	if page.Sessions[2].MaterialsHref != "/materials/" {
		t.Errorf("placeholder slides href = %q", page.Sessions[2].MaterialsHref)
	}
	if page.Sessions[1].CalendarHref != "/calendar/session-2.ics" {
		t.Errorf("calendar href = %q", page.Sessions[1].CalendarHref)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Feng Liu", "FL"},
		{"Zesheng  Ye", "ZY"},
		{"Pin-Yu Chen", "PC"},
		{"Émile Zola", "ÉZ"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Initials(tt.in); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpeakersListedOrder(t *testing.T) {
	s := &content.Speakers{Speakers: []content.Speaker{{Name: "B b", Email: "b@x.org"}, {Name: "A a"}}}
	page := Speakers(s, Options{})
	if page.Speakers[0].Name != "B b" || page.Speakers[0].EmailHref != "mailto:b@x.org" {
		t.Errorf("first card = %+v", page.Speakers[0])
	}
	if page.Speakers[1].EmailHref != "" {
		t.Errorf("missing email should give empty href, got %q", page.Speakers[1].EmailHref)
	}
}

func TestMaterialEntry(t *testing.T) {
	tests := []struct {
		name        string
		m           content.Material
		section     string
		wantBadge   string
		wantLabel   string
		wantHref    string
		wantEnabled bool
	}{
		{"file download", content.Material{Title: "Intro", File: "intro.pdf"}, "slides", BadgeLink, LabelDownload, "intro.pdf", true},
		{"format badge", content.Material{File: "a.pdf", Format: "PDF"}, "slides", "PDF", LabelDownload, "a.pdf", true},
		{"platform badge", content.Material{URL: "https://yt", Platform: "YouTube"}, "videos", "YouTube", LabelView, "https://yt", true},
		{"code is view", content.Material{File: "nb.ipynb"}, "code", BadgeLink, LabelView, "nb.ipynb", true},
		{"no target", content.Material{Title: "Soon"}, "slides", BadgeLink, LabelComingSoon, "", false},
		{"placeholders", content.Material{File: "TBD", URL: "TBD"}, "videos", BadgeLink, LabelComingSoon, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := MaterialEntryFor(tt.m, tt.section)
			if e.Badge != tt.wantBadge {
				t.Errorf("badge = %q, want %q", e.Badge, tt.wantBadge)
			}
			if e.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", e.Label, tt.wantLabel)
			}
			if e.Href != tt.wantHref {
				t.Errorf("href = %q, want %q", e.Href, tt.wantHref)
			}
			if e.Enabled != tt.wantEnabled {
				t.Errorf("enabled = %v, want %v", e.Enabled, tt.wantEnabled)
			}
		})
	}
}

func TestMaterialsSections(t *testing.T) {
	m := &content.Materials{Slides: []content.Material{{Title: "Intro", File: "intro.pdf"}}}
	page := Materials(m)
	if len(page.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(page.Sections))
	}
	slides := page.Sections[0]
	if slides.ID != "slides" || !slides.Selected {
		t.Errorf("first section = %+v", slides)
	}
	if len(slides.Entries) != 1 || slides.Entries[0].Title != "Intro" || !slides.Entries[0].Enabled || slides.Entries[0].Href != "intro.pdf" {
		t.Errorf("slides entries = %+v", slides.Entries)
	}
	for _, s := range page.Sections[1:] {
		if s.Selected || len(s.Entries) != 0 {
			t.Errorf("section %s = %+v", s.ID, s)
		}
	}
}

func TestTypeBadge(t *testing.T) {
	tests := []struct {
		in   string
		want BadgeColor
	}{
		{"foundational", BadgePrimary},
		{"Foundational", BadgePrimary},
		{"RECOMMENDED", BadgeSuccess},
		{"Survey", BadgeWarning},
		{"tutorial", BadgeInfo},
		{"", BadgeInfo},
	}
	for _, tt := range tests {
		if got := TypeBadge(tt.in); got != tt.want {
			t.Errorf("TypeBadge(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadingSections(t *testing.T) {
	r := &content.Reading{
		Essential: []content.ReadingItem{{Title: "E", URL: "https://e", Type: "survey", Bibtex: "@misc{e}"}},
		Reference: []content.ReadingItem{{Title: "R"}},
	}
	page := Reading(r)
	if len(page.Sections) != 3 {
		t.Fatalf("sections = %d", len(page.Sections))
	}
	e := page.Sections[0].Entries[0]
	if e.Badge != BadgeWarning || e.Bibtex != "@misc{e}" || e.URL != "https://e" {
		t.Errorf("essential entry = %+v", e)
	}
	if len(page.Sections[1].Entries) != 0 || page.Sections[2].Entries[0].Title != "R" {
		t.Errorf("sections = %+v", page.Sections)
	}
}

func TestContactPage(t *testing.T) {
	tut := &content.Tutorial{
		Contact: content.Contacts{{Name: "Feng Liu", Homepage: "https://f.example"}},
		Venue:   content.Venue{Location: "EXPO", Room: "3"},
	}
	p := Contact(tut, Options{})
	if len(p.Contacts) != 1 || p.Contacts[0].Href != "https://f.example" || !p.Contacts[0].External {
		t.Errorf("contacts = %+v", p.Contacts)
	}
	if p.Location != "EXPO" || p.Room != "3" {
		t.Errorf("venue = %q / %q", p.Location, p.Room)
	}
	if len(p.FAQ) == 0 {
		t.Error("FAQ should not be empty")
	}
}

func TestTaxonomyDefaultPage(t *testing.T) {
	src, err := DefaultPage("taxonomy")
	if err != nil {
		t.Fatalf("DefaultPage: %v", err)
	}
	page, err := Taxonomy(src)
	if err != nil {
		t.Fatalf("Taxonomy: %v", err)
	}
	body := string(page.Body)
	if !strings.Contains(body, "<table>") {
		t.Error("taxonomy should render GFM tables")
	}
	if !strings.Contains(body, "<sub>pre</sub>") {
		t.Error("taxonomy should keep raw HTML")
	}
}

func TestCiteSource(t *testing.T) {
	r := &content.Reading{
		Essential: []content.ReadingItem{{Title: "Paper", Authors: "A", Bibtex: "@article{a,\n title={Paper}\n}"}},
		Advanced:  []content.ReadingItem{{Title: "No Bib"}},
	}
	src := string(CiteSource([]byte("# Cite\n"), r))
	if !strings.Contains(src, "```bibtex\n@article{a,") {
		t.Errorf("cite source missing bibtex block:\n%s", src)
	}
	if strings.Contains(src, "No Bib") {
		t.Error("items without bibtex should be skipped")
	}
	page, err := Cite([]byte("# Cite"), r)
	if err != nil {
		t.Fatalf("Cite: %v", err)
	}
	if !strings.Contains(string(page.Body), "Paper") {
		t.Error("cite page should mention the paper")
	}
}

func TestCiteEscapesItemText(t *testing.T) {
	r := &content.Reading{Essential: []content.ReadingItem{{
		Title:   "Filling the <mask> token & *beyond*",
		Authors: "A <b>Author</b>",
		Bibtex:  "@misc{m,\n note={```}\n}",
	}}}
	src := string(CiteSource(nil, r))
	if !strings.Contains(src, "````bibtex\n@misc{m,") {
		t.Errorf("fence should outgrow backticks in the entry:\n%s", src)
	}
	page, err := Cite(nil, r)
	if err != nil {
		t.Fatalf("Cite: %v", err)
	}
	body := string(page.Body)
	for _, want := range []string{"&lt;mask&gt;", "&lt;b&gt;Author", "*beyond*"} {
		if !strings.Contains(body, want) {
			t.Errorf("cite body missing %q:\n%s", want, body)
		}
	}
	for _, bad := range []string{"<mask>", "<em>beyond</em>", "<b>Author"} {
		if strings.Contains(body, bad) {
			t.Errorf("cite body contains unescaped %q", bad)
		}
	}
}
