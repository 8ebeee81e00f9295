package linkcheck

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/reprogrammability/tutorsite/internal/walker"
)

// urlPattern matches http and https URLs up to whitespace, a closing bracket
// or a character that cannot appear in a URL (such as a YAML quote).
var urlPattern = regexp.MustCompile(`(?i)https?://[\w\-.~:/?#\[@!$&'(*+,;=%]+`)

// ExtractURLs returns the unique URLs in text, sorted. Trailing sentence
// punctuation is not part of a URL.
func ExtractURLs(text string) []string {
	seen := make(map[string]bool)
	for _, m := range urlPattern.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;:!?'")
		if len(m) > len("https://") {
			seen[m] = true
		}
	}
	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// Discover walks the content directory and returns the unique URLs found in
// every included file, together with the number of files scanned.
func Discover(root string, include, exclude []string) ([]string, int, error) {
	files, err := walker.Walk(walker.WalkerConfig{RootDir: root, Include: include, Exclude: exclude})
	if err != nil {
		return nil, 0, fmt.Errorf("discovering files: %w", err)
	}

	var b strings.Builder
	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			continue
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	return ExtractURLs(b.String()), len(files), nil
}
