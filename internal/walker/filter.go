package walker

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// alwaysSkipped are directory names never descended into.
var alwaysSkipped = []string{".git", "node_modules", ".tutorsite"}

func shouldExcludeDir(name string) bool {
	for _, skip := range alwaysSkipped {
		if strings.EqualFold(name, skip) {
			return true
		}
	}
	return false
}

// MatchesInclude reports whether relPath matches any include pattern. An
// empty pattern list includes everything.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude reports whether relPath matches any exclude pattern.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny tries each pattern against the full slash path, then against
// the base name so that "*.md" also matches nested files.
func matchesAny(relPath string, patterns []string) bool {
	base := path.Base(relPath)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
