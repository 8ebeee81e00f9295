package site

import (
	"os"
	"strings"

	"github.com/reprogrammability/tutorsite/internal/view"
)

// SitemapEntries lists one URL per route. With a site URL the entries are
// absolute, otherwise root-relative.
func SitemapEntries(siteURL, basePath string, routes []view.Route) []string {
	prefix := strings.TrimSuffix(siteURL, "/") + strings.TrimSuffix(basePath, "/")
	entries := make([]string, 0, len(routes))
	for _, r := range routes {
		p := r.Path
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		entries = append(entries, prefix+p)
	}
	return entries
}

// WriteSitemap writes the text sitemap format: one URL per line.
func WriteSitemap(path, siteURL, basePath string, routes []view.Route) error {
	entries := SitemapEntries(siteURL, basePath, routes)
	return os.WriteFile(path, []byte(strings.Join(entries, "\n")+"\n"), 0o644)
}
