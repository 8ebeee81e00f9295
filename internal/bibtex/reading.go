package bibtex

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reprogrammability/tutorsite/internal/content"
)

var arxivID = regexp.MustCompile(`^\d{4}\.\d{4,5}(v\d+)?$`)

// badgeTypes are the reading types with a dedicated badge.
var badgeTypes = []string{"Foundational", "Recommended", "Survey"}

// URL picks the url field, then a DOI link, then an arXiv link from the
// eprint. It returns "" when none apply.
func (e Entry) URL() string {
	if u := e.Field("url"); u != "" {
		return u
	}
	if doi := e.Field("doi"); doi != "" {
		for _, prefix := range []string{"https://doi.org/", "http://dx.doi.org/", "https://dx.doi.org/"} {
			doi = strings.TrimPrefix(doi, prefix)
		}
		return "https://doi.org/" + strings.TrimSpace(doi)
	}
	eprint := e.Field("eprint")
	if eprint == "" {
		eprint = e.Field("arxivid")
	}
	archive := strings.ToLower(e.Field("archiveprefix"))
	if eprint != "" && (strings.Contains(archive, "arxiv") || arxivID.MatchString(eprint)) {
		return "https://arxiv.org/abs/" + eprint
	}
	return ""
}

// Authors renders the author list as "First Last, First Last".
func (e Entry) Authors() string {
	field := e.Field("author")
	if field == "" {
		return ""
	}
	var names []string
	for _, a := range strings.Split(field, " and ") {
		a = strings.Trim(strings.TrimSpace(a), "{}")
		if a == "" {
			continue
		}
		if last, first, ok := strings.Cut(a, ","); ok {
			a = strings.TrimSpace(first) + " " + strings.TrimSpace(last)
		}
		names = append(names, strings.TrimSpace(a))
	}
	return strings.Join(names, ", ")
}

// Year returns the year field as a number, or 0.
func (e Entry) Year() int {
	y, err := strconv.Atoi(strings.TrimSpace(e.Field("year")))
	if err != nil {
		return 0
	}
	return y
}

// ReadingType returns the first keyword naming a badge category.
func (e Entry) ReadingType() string {
	for _, kw := range strings.Split(e.Field("keywords"), ",") {
		kw = strings.TrimSpace(kw)
		for _, t := range badgeTypes {
			if strings.EqualFold(kw, t) {
				return t
			}
		}
	}
	return ""
}

// ReadingItem converts the entry. ok is false when the entry has no title.
func (e Entry) ReadingItem() (content.ReadingItem, bool) {
	title := strings.Join(strings.Fields(strings.NewReplacer("{", "", "}", "").Replace(e.Field("title"))), " ")
	if title == "" {
		return content.ReadingItem{}, false
	}
	desc := e.Field("abstract")
	if desc == "" {
		desc = e.Field("note")
	}
	return content.ReadingItem{
		Title:       title,
		Authors:     e.Authors(),
		Year:        e.Year(),
		URL:         e.URL(),
		Description: desc,
		Bibtex:      e.Raw,
		Type:        e.ReadingType(),
	}, true
}

// Items converts every entry with a title.
func Items(entries []Entry) []content.ReadingItem {
	items := make([]content.ReadingItem, 0, len(entries))
	for _, e := range entries {
		if it, ok := e.ReadingItem(); ok {
			items = append(items, it)
		}
	}
	return items
}

func dedupKey(it content.ReadingItem) string {
	return strings.ToLower(strings.Join(strings.Fields(it.Title), " ")) + "\x00" + strconv.Itoa(it.Year)
}

// Merge appends the items not already present in existing, matching on
// title (case-insensitively) and year. It returns the merged list and the
// number of items added.
func Merge(existing, items []content.ReadingItem) ([]content.ReadingItem, int) {
	seen := make(map[string]bool, len(existing))
	for _, it := range existing {
		seen[dedupKey(it)] = true
	}
	out := append([]content.ReadingItem(nil), existing...)
	added := 0
	for _, it := range items {
		k := dedupKey(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
		added++
	}
	return out, added
}

// Sections are the reading buckets items can be imported into.
var Sections = []string{"essential", "advanced", "reference"}

// AddToReading merges items into the named section of r.
func AddToReading(r *content.Reading, section string, items []content.ReadingItem) (int, error) {
	var target *[]content.ReadingItem
	switch section {
	case "essential":
		target = &r.Essential
	case "advanced":
		target = &r.Advanced
	case "reference":
		target = &r.Reference
	default:
		return 0, fmt.Errorf("unknown reading section %q (want one of %s)", section, strings.Join(Sections, ", "))
	}
	merged, added := Merge(*target, items)
	*target = merged
	return added, nil
}

// MarshalReading encodes a reading list as reading.yaml.
func MarshalReading(r *content.Reading) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encoding reading list: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding reading list: %w", err)
	}
	return buf.Bytes(), nil
}
