package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func testdataDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join("..", "..", "testdata", name)
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("testdata dir %s: %v", dir, err)
	}
	return dir
}

func TestLoadBundle(t *testing.T) {
	b, err := NewLoader(testdataDir(t, "content")).LoadBundle()
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if b.Tutorial.Conference != "AAAI 2026" {
		t.Errorf("conference = %q", b.Tutorial.Conference)
	}
	if b.Tutorial.Venue.Location != "Singapore EXPO, Singapore" {
		t.Errorf("venue location = %q", b.Tutorial.Venue.Location)
	}
	if got := b.Tutorial.Contact.Primary().Href(); got != "mailto:feng.liu1@unimelb.edu.au" {
		t.Errorf("contact href = %q", got)
	}
	if len(b.Program.Sessions) != 3 {
		t.Errorf("sessions = %d, want 3", len(b.Program.Sessions))
	}
	if len(b.Speakers.Speakers) != 3 {
		t.Errorf("speakers = %d, want 3", len(b.Speakers.Speakers))
	}
	if len(b.Materials.Slides) != 2 {
		t.Errorf("slides = %d, want 2", len(b.Materials.Slides))
	}
	if len(b.Reading.All()) != 3 {
		t.Errorf("reading items = %d, want 3", len(b.Reading.All()))
	}
}

func TestLoadMissingDocument(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadProgram()
	if !errors.Is(err, ErrMissingDocument) {
		t.Fatalf("err = %v, want ErrMissingDocument", err)
	}
}

func TestLoadYMLExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "speakers.yml"), []byte("speakers:\n  - name: A B\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewLoader(dir).LoadSpeakers()
	if err != nil {
		t.Fatalf("LoadSpeakers: %v", err)
	}
	if len(s.Speakers) != 1 || s.Speakers[0].Name != "A B" {
		t.Errorf("speakers = %+v", s.Speakers)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tutorial.yaml"), []byte("title: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewLoader(dir).LoadTutorial()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %q, want it to mention parsing", err)
	}
}

func TestContactForms(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantLen  int
		wantHref string
	}{
		{"string email", `contact: "a@b.org"`, 1, "mailto:a@b.org"},
		{"string homepage", `contact: "https://example.org"`, 1, "https://example.org"},
		{"list of strings", "contact:\n  - a@b.org\n  - c@d.org", 2, "mailto:a@b.org"},
		{"structured", "contact:\n  - name: Feng Liu\n    homepage: https://f.example\n", 1, "https://f.example"},
		{"absent", `title: x`, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tut Tutorial
			if err := yaml.Unmarshal([]byte(tt.doc), &tut); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(tut.Contact) != tt.wantLen {
				t.Fatalf("contacts = %d, want %d", len(tut.Contact), tt.wantLen)
			}
			if got := tut.Contact.Primary().Href(); got != tt.wantHref {
				t.Errorf("href = %q, want %q", got, tt.wantHref)
			}
		})
	}
}

func TestVenueString(t *testing.T) {
	var tut Tutorial
	if err := yaml.Unmarshal([]byte(`venue: "Hall 1"`), &tut); err != nil {
		t.Fatal(err)
	}
	if tut.Venue.String() != "Hall 1" {
		t.Errorf("venue = %q", tut.Venue.String())
	}
	v := Venue{Location: "EXPO", Room: "Room 3"}
	if v.String() != "EXPO, Room 3" {
		t.Errorf("venue = %q", v.String())
	}
	v = Venue{Location: "EXPO", Room: "TBD"}
	if v.String() != "EXPO" {
		t.Errorf("placeholder room venue = %q", v.String())
	}
}

func TestMaterialTarget(t *testing.T) {
	tests := []struct {
		m    Material
		want string
	}{
		{Material{File: "a.pdf", URL: "https://x"}, "a.pdf"},
		{Material{URL: "https://x"}, "https://x"},
		{Material{File: "TBD", URL: "TBD"}, ""},
		{Material{File: "TBD", URL: "https://x"}, "https://x"},
		{Material{File: "tbd", URL: " Tbd "}, ""},
		{Material{}, ""},
	}
	for _, tt := range tests {
		if got := tt.m.Target(); got != tt.want {
			t.Errorf("Target(%+v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestDecodeLegacy(t *testing.T) {
	b, err := ReadLegacy(filepath.Join(testdataDir(t, "legacy"), "content.json"))
	if err != nil {
		t.Fatalf("ReadLegacy: %v", err)
	}
	if b.Tutorial.Venue.Location != "Singapore EXPO" {
		t.Errorf("venue = %q", b.Tutorial.Venue.Location)
	}
	if len(b.Tutorial.Contact) != 2 || b.Tutorial.Contact[1].Href() != "https://zeshengye.github.io/" {
		t.Errorf("contacts = %+v", b.Tutorial.Contact)
	}
	if len(b.Tutorial.LearningOutcomes) != 2 {
		t.Errorf("learning outcomes = %v", b.Tutorial.LearningOutcomes)
	}
	if len(b.Reading.Essential) != 1 || b.Reading.Essential[0].Type != "survey" {
		t.Errorf("flat reading list should land in essential: %+v", b.Reading)
	}
	if b.Program.Sessions[0].Slides != "slides/session-1.pdf" {
		t.Errorf("slides = %q", b.Program.Sessions[0].Slides)
	}
}

func TestDecodeLegacyBucketedReading(t *testing.T) {
	doc := `{"tutorial": {"contact": "a@b.org"}, "reading": {"advanced": [{"title": "X"}]}}`
	b, err := DecodeLegacy(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeLegacy: %v", err)
	}
	if len(b.Reading.Advanced) != 1 {
		t.Errorf("advanced = %d, want 1", len(b.Reading.Advanced))
	}
	if b.Tutorial.Contact.Primary().Href() != "mailto:a@b.org" {
		t.Errorf("contact = %+v", b.Tutorial.Contact)
	}
}

func TestLegacyStoreMemoizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")

	store := NewLegacyStore(path)
	if b := store.Bundle(); b != nil {
		t.Fatal("expected nil bundle for missing file")
	}

	if err := os.WriteFile(path, []byte(`{"tutorial": {"title": "T"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	first := store.Bundle()
	if first == nil || first.Tutorial.Title != "T" {
		t.Fatalf("bundle = %+v", first)
	}

	// Later edits are not picked up once a load has succeeded.
	if err := os.WriteFile(path, []byte(`{"tutorial": {"title": "U"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if second := store.Bundle(); second != first {
		t.Error("store should return the memoized bundle")
	}
}

func TestPlaceholderCase(t *testing.T) {
	for in, want := range map[string]bool{
		"TBD":   true,
		"tbd":   true,
		" Tbd ": true,
		"TBDx":  false,
		"":      false,
	} {
		if got := IsPlaceholder(in); got != want {
			t.Errorf("IsPlaceholder(%q) = %v, want %v", in, got, want)
		}
	}
	if Published("tbd") {
		t.Error(`Published("tbd") should be false`)
	}
	if (Session{Slides: "tbd"}).HasSlides() {
		t.Error("lowercase placeholder slides should not count as published")
	}
	if !(Session{Slides: "slides/s1.pdf"}).HasSlides() {
		t.Error("real slides path should count as published")
	}
}
