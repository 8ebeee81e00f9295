// Package bibtex converts BibTeX entries into reading-list items.
package bibtex

import (
	"strings"
	"unicode"
)

// Entry is one parsed BibTeX record. Field names are lower case.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
	Raw    string // the entry exactly as written
}

// Field returns a field value, or "".
func (e Entry) Field(name string) string { return e.Fields[name] }

// skipped are the @-blocks that carry no reference.
var skipped = map[string]bool{"comment": true, "string": true, "preamble": true}

// Parse extracts every entry from text. Malformed entries are skipped.
func Parse(text string) []Entry {
	var entries []Entry
	for i := 0; i < len(text); {
		at := strings.IndexByte(text[i:], '@')
		if at < 0 {
			break
		}
		start := i + at
		e, end, ok := parseEntry(text, start)
		if !ok {
			i = start + 1
			continue
		}
		i = end
		if !skipped[e.Type] {
			entries = append(entries, e)
		}
	}
	return entries
}

// parseEntry reads the entry beginning at text[start] == '@' and returns it
// with the offset just past its closing delimiter.
func parseEntry(text string, start int) (Entry, int, bool) {
	p := start + 1
	for p < len(text) && unicode.IsLetter(rune(text[p])) {
		p++
	}
	typ := strings.ToLower(text[start+1 : p])
	for p < len(text) && unicode.IsSpace(rune(text[p])) {
		p++
	}
	if typ == "" || p >= len(text) || (text[p] != '{' && text[p] != '(') {
		return Entry{}, 0, false
	}
	open := text[p]
	closer := byte('}')
	if open == '(' {
		closer = ')'
	}

	end := matching(text, p, open, closer)
	if end < 0 {
		return Entry{}, 0, false
	}
	body := text[p+1 : end]
	e := Entry{Type: typ, Fields: make(map[string]string), Raw: strings.TrimSpace(text[start : end+1])}

	key, rest, hasFields := cutTopLevel(body)
	e.Key = strings.TrimSpace(key)
	if hasFields {
		parseFields(rest, e.Fields)
	}
	return e, end + 1, true
}

// matching returns the index of the delimiter closing text[open].
func matching(text string, open int, o, c byte) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case o:
			depth++
		case c:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// cutTopLevel splits s at the first comma outside braces and quotes.
func cutTopLevel(s string) (before, after string, found bool) {
	depth := 0
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				quoted = !quoted
			}
		case ',':
			if depth == 0 && !quoted {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

func parseFields(s string, into map[string]string) {
	for {
		s = strings.TrimLeft(s, " \t\r\n,")
		if s == "" {
			return
		}
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			return
		}
		name := strings.ToLower(strings.TrimSpace(s[:eq]))
		raw, rest, _ := cutTopLevel(s[eq+1:])
		if name != "" {
			into[name] = cleanValue(raw)
		}
		s = rest
	}
}

// cleanValue strips outer braces or quotes and collapses whitespace.
func cleanValue(raw string) string {
	v := strings.TrimSpace(raw)
	if len(v) >= 2 && ((v[0] == '{' && v[len(v)-1] == '}') || (v[0] == '"' && v[len(v)-1] == '"')) {
		v = v[1 : len(v)-1]
	}
	return strings.Join(strings.Fields(v), " ")
}
