package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// legacyDocument is the single aggregate content.json of the legacy site.
type legacyDocument struct {
	Tutorial         Tutorial      `json:"tutorial"`
	LearningOutcomes []string      `json:"learning_outcomes"`
	Sessions         []Session     `json:"sessions"`
	Speakers         []Speaker     `json:"speakers"`
	Materials        Materials     `json:"materials"`
	Reading          legacyReading `json:"reading"`
}

// legacyReading is either a flat list (read as essential) or the three buckets.
type legacyReading struct {
	Reading
}

func (r *legacyReading) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []ReadingItem
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		r.Reading = Reading{Essential: items}
		return nil
	}
	return json.Unmarshal(data, &r.Reading)
}

// DecodeLegacy parses an aggregate content.json document.
func DecodeLegacy(r io.Reader) (*Bundle, error) {
	var doc legacyDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding legacy content: %w", err)
	}
	t := doc.Tutorial
	if len(t.LearningOutcomes) == 0 {
		t.LearningOutcomes = doc.LearningOutcomes
	}
	return &Bundle{
		Tutorial:  t,
		Program:   Program{Sessions: doc.Sessions},
		Speakers:  Speakers{Speakers: doc.Speakers},
		Materials: doc.Materials,
		Reading:   doc.Reading.Reading,
	}, nil
}

// ReadLegacy opens and decodes the aggregate document at path.
func ReadLegacy(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingDocument)
		}
		return nil, err
	}
	defer f.Close()
	return DecodeLegacy(f)
}

// LegacyStore hands out the legacy aggregate document, reading it on first
// use and keeping it after the first success. Failures are logged and
// reported as a nil bundle so callers can render an unpopulated page.
type LegacyStore struct {
	path   string
	mu     sync.Mutex
	bundle *Bundle
}

// NewLegacyStore creates a store for the content.json at path.
func NewLegacyStore(path string) *LegacyStore {
	return &LegacyStore{path: path}
}

// Bundle returns the loaded content or nil when it cannot be read.
func (s *LegacyStore) Bundle() *Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bundle != nil {
		return s.bundle
	}
	b, err := ReadLegacy(s.path)
	if err != nil {
		log.Printf("content: loading legacy content: %v", err)
		return nil
	}
	s.bundle = b
	return b
}
