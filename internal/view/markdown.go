package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/reprogrammability/tutorsite/internal/content"
)

//go:embed pages/*.md
var pagesFS embed.FS

// DefaultPage returns the built-in markdown for an authored page
// ("taxonomy" or "cite").
func DefaultPage(name string) ([]byte, error) {
	return pagesFS.ReadFile("pages/" + name + ".md")
}

// newMarkdown mirrors the renderer settings used for every authored page.
// Raw HTML is allowed because the pages are written by the site maintainers.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// RenderMarkdown converts markdown source to HTML.
func RenderMarkdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := newMarkdown().Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// MarkdownPage is an authored page rendered from markdown.
type MarkdownPage struct {
	Body template.HTML
}

// Taxonomy renders the taxonomy page from its markdown source.
func Taxonomy(src []byte) (MarkdownPage, error) {
	body, err := RenderMarkdown(src)
	if err != nil {
		return MarkdownPage{}, err
	}
	return MarkdownPage{Body: body}, nil
}

// escapeMarkdown backslash-escapes every ASCII punctuation character so that
// s renders as literal text, with no inline markup or raw HTML.
func escapeMarkdown(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fenceFor returns a backtick fence longer than any backtick run in code.
func fenceFor(code string) string {
	longest, run := 0, 0
	for _, r := range code {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}

// CiteSource appends a fenced bibtex block for every reading item that
// carries one to the intro markdown.
func CiteSource(intro []byte, r *content.Reading) []byte {
	var b strings.Builder
	b.Write(bytes.TrimSpace(intro))
	b.WriteString("\n")
	for _, it := range r.All() {
		if strings.TrimSpace(it.Bibtex) == "" {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", escapeMarkdown(it.Title))
		if it.Authors != "" {
			fmt.Fprintf(&b, "%s\n\n", escapeMarkdown(it.Authors))
		}
		bib := strings.TrimSpace(it.Bibtex)
		fence := fenceFor(bib)
		fmt.Fprintf(&b, "%sbibtex\n%s\n%s\n", fence, bib, fence)
	}
	return []byte(b.String())
}

// Cite renders the citation page.
func Cite(intro []byte, r *content.Reading) (MarkdownPage, error) {
	body, err := RenderMarkdown(CiteSource(intro, r))
	if err != nil {
		return MarkdownPage{}, err
	}
	return MarkdownPage{Body: body}, nil
}
