package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrMissingDocument is returned when a content document does not exist.
var ErrMissingDocument = errors.New("content document not found")

// Kind names one content document.
type Kind string

const (
	KindTutorial  Kind = "tutorial"
	KindProgram   Kind = "program"
	KindSpeakers  Kind = "speakers"
	KindMaterials Kind = "materials"
	KindReading   Kind = "reading"
)

// Kinds lists every document a site needs, in load order.
var Kinds = []Kind{KindTutorial, KindProgram, KindSpeakers, KindMaterials, KindReading}

// Loader reads YAML content documents from a directory. Every call reads
// the file again; nothing is cached between calls.
type Loader struct {
	Dir string
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Path resolves the file backing kind, accepting .yaml and .yml.
func (l *Loader) Path(kind Kind) (string, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(l.Dir, string(kind)+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("accessing %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("%s in %s: %w", kind, l.Dir, ErrMissingDocument)
}

func (l *Loader) load(kind Kind, v any) error {
	p, err := l.Path(kind)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("reading %s: %w", p, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", p, err)
	}
	return nil
}

// LoadTutorial reads tutorial.yaml.
func (l *Loader) LoadTutorial() (*Tutorial, error) {
	var t Tutorial
	if err := l.load(KindTutorial, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadProgram reads program.yaml.
func (l *Loader) LoadProgram() (*Program, error) {
	var p Program
	if err := l.load(KindProgram, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadSpeakers reads speakers.yaml.
func (l *Loader) LoadSpeakers() (*Speakers, error) {
	var s Speakers
	if err := l.load(KindSpeakers, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadMaterials reads materials.yaml.
func (l *Loader) LoadMaterials() (*Materials, error) {
	var m Materials
	if err := l.load(KindMaterials, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadReading reads reading.yaml.
func (l *Loader) LoadReading() (*Reading, error) {
	var r Reading
	if err := l.load(KindReading, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadBundle reads all five documents, stopping at the first failure.
func (l *Loader) LoadBundle() (*Bundle, error) {
	t, err := l.LoadTutorial()
	if err != nil {
		return nil, err
	}
	p, err := l.LoadProgram()
	if err != nil {
		return nil, err
	}
	s, err := l.LoadSpeakers()
	if err != nil {
		return nil, err
	}
	m, err := l.LoadMaterials()
	if err != nil {
		return nil, err
	}
	r, err := l.LoadReading()
	if err != nil {
		return nil, err
	}
	return &Bundle{Tutorial: *t, Program: *p, Speakers: *s, Materials: *m, Reading: *r}, nil
}
