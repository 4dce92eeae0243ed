package clean

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
)

// Policy decides whether a single non-directory entry should be deleted.
type Policy interface {
	Expired(path string, info fs.FileInfo) bool
}

// AgePolicy expires entries last modified strictly before Cutoff, except
// those matching one of the Keep patterns.
type AgePolicy struct {
	Cutoff time.Time

	// Keep holds wildcard patterns ("*.lock", "/Users/me/Library/Caches/keep/*")
	// matched against both the full path and the base name.
	Keep []string
}

// Expired implements Policy.
func (p AgePolicy) Expired(path string, info fs.FileInfo) bool {
	if !info.ModTime().Before(p.Cutoff) {
		return false
	}
	return !p.IsKept(path)
}

// IsKept reports whether path matches one of the Keep patterns.
func (p AgePolicy) IsKept(path string) bool {
	if len(p.Keep) == 0 {
		return false
	}
	base := filepath.Base(path)
	for _, pattern := range p.Keep {
		if wildcard.Match(pattern, path) || wildcard.Match(pattern, base) {
			return true
		}
	}
	return false
}
