// Package validate checks site content for missing fields and unpublished
// placeholders before a build.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/reprogrammability/tutorsite/internal/content"
)

// Stats summarises the bundle for the validation report.
type Stats struct {
	Sessions     int
	Speakers     int
	ReadingItems int
	Slides       int
	Videos       int
	Code         int
	Placeholders int
}

// Report collects the problems found in a bundle. Errors block a build;
// warnings do not.
type Report struct {
	Errors   []error
	Warnings []string
	Stats    Stats
}

// Err joins all errors, or returns nil when there are none.
func (r *Report) Err() error {
	return errors.Join(r.Errors...)
}

// OK reports whether no errors were found.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Errorf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Bundle validates every document of b.
func Bundle(b *content.Bundle) *Report {
	r := &Report{}
	tutorial(r, &b.Tutorial)
	program(r, &b.Program)
	speakers(r, &b.Speakers)
	presenters(r, &b.Program, &b.Speakers)
	materials(r, &b.Materials)
	reading(r, &b.Reading)

	r.Stats = Stats{
		Sessions:     len(b.Program.Sessions),
		Speakers:     len(b.Speakers.Speakers),
		ReadingItems: len(b.Reading.All()),
		Slides:       len(b.Materials.Slides),
		Videos:       len(b.Materials.Videos),
		Code:         len(b.Materials.Code),
		Placeholders: CountPlaceholders(b),
	}
	if n := r.Stats.Placeholders; n > 0 {
		r.warnf("found %d %q placeholders that need to be updated", n, content.Placeholder)
	}
	return r
}

func tutorial(r *Report, t *content.Tutorial) {
	for _, f := range []struct{ name, value string }{
		{"title", t.Title},
		{"conference", t.Conference},
		{"duration", t.Duration},
	} {
		if blank(f.value) {
			r.errorf("tutorial: missing field %q", f.name)
		}
	}
	if t.Contact.Primary().Href() == "" {
		r.errorf("tutorial: missing field %q", "contact")
	}
}

func program(r *Report, p *content.Program) {
	if len(p.Sessions) == 0 {
		r.errorf("program: sessions must be a non-empty list")
		return
	}
	seen := make(map[int]int)
	for i, s := range p.Sessions {
		n := i + 1
		if s.Order <= 0 {
			r.errorf("session %d: missing field %q", n, "order")
		} else if prev, dup := seen[s.Order]; dup {
			r.errorf("session %d: order %d already used by session %d", n, s.Order, prev)
		} else {
			seen[s.Order] = n
		}
		for _, f := range []struct{ name, value string }{
			{"title", s.Title},
			{"presenter", s.Presenter},
			{"duration", s.Duration},
		} {
			if blank(f.value) {
				r.errorf("session %d: missing field %q", n, f.name)
			}
		}
		if len(s.Topics) == 0 {
			r.errorf("session %d: missing field %q", n, "topics")
		}
	}
}

// validEmail requires a local part and a domain containing a dot.
func validEmail(email string) bool {
	local, domain, ok := strings.Cut(email, "@")
	return ok && local != "" && strings.Contains(domain, ".")
}

func speakers(r *Report, s *content.Speakers) {
	if len(s.Speakers) == 0 {
		r.errorf("speakers: must be a non-empty list")
		return
	}
	for i, sp := range s.Speakers {
		n := i + 1
		for _, f := range []struct{ name, value string }{
			{"name", sp.Name},
			{"affiliation", sp.Affiliation},
			{"email", sp.Email},
			{"bio", sp.Bio},
		} {
			if blank(f.value) {
				r.errorf("speaker %d: missing field %q", n, f.name)
			}
		}
		if !blank(sp.Email) && !validEmail(sp.Email) {
			r.errorf("speaker %d: invalid email %q", n, sp.Email)
		}
	}
}

// presenterNames splits "A & B", "A, B" and "A and B" into names.
func presenterNames(presenter string) []string {
	f := func(r rune) bool { return r == '&' || r == ',' }
	var names []string
	for _, part := range strings.FieldsFunc(strings.ReplaceAll(presenter, " and ", ","), f) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// presenters warns about presenters without a speaker entry.
func presenters(r *Report, p *content.Program, s *content.Speakers) {
	known := make(map[string]bool, len(s.Speakers))
	for _, sp := range s.Speakers {
		known[strings.ToLower(strings.TrimSpace(sp.Name))] = true
	}
	for _, sess := range p.Sessions {
		for _, name := range presenterNames(sess.Presenter) {
			if !known[strings.ToLower(name)] {
				r.warnf("session %d: presenter %q is not listed among the speakers", sess.Order, name)
			}
		}
	}
}

func materials(r *Report, m *content.Materials) {
	for _, group := range []struct {
		name  string
		items []content.Material
	}{
		{"slides", m.Slides},
		{"videos", m.Videos},
		{"code", m.Code},
		{"other_resources", m.OtherResources},
	} {
		for i, item := range group.items {
			if blank(item.Title) {
				r.errorf("materials %s %d: missing field %q", group.name, i+1, "title")
			}
			if item.Target() == "" {
				r.warnf("materials %s %q: no file or url yet (shown as Coming Soon)", group.name, item.Title)
			}
		}
	}
}

func reading(r *Report, rd *content.Reading) {
	for _, group := range []struct {
		name  string
		items []content.ReadingItem
	}{
		{"essential", rd.Essential},
		{"advanced", rd.Advanced},
		{"reference", rd.Reference},
	} {
		for i, item := range group.items {
			n := i + 1
			if blank(item.Title) {
				r.errorf("reading %s %d: missing field %q", group.name, n, "title")
			}
			if blank(item.Authors) {
				r.errorf("reading %s %d: missing field %q", group.name, n, "authors")
			}
		}
	}
}

// CountPlaceholders counts string values across the bundle that are the
// TBD placeholder.
func CountPlaceholders(b *content.Bundle) int {
	data, err := json.Marshal(b)
	if err != nil {
		return 0
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return 0
	}
	return countPlaceholders(v)
}

func countPlaceholders(v any) int {
	switch t := v.(type) {
	case string:
		if content.IsPlaceholder(t) {
			return 1
		}
	case []any:
		n := 0
		for _, e := range t {
			n += countPlaceholders(e)
		}
		return n
	case map[string]any:
		n := 0
		for _, e := range t {
			n += countPlaceholders(e)
		}
		return n
	}
	return 0
}
