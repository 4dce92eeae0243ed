package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// CleanTarget represents a category of files that can be cleaned or scanned.
type CleanTarget struct {
	// Name is the unique identifier for this target.
	Name string

	// Paths is the list of filesystem paths belonging to the target.
	Paths []string

	// Description is a human-readable description.
	Description string

	// Category groups related targets ("managed" or "scan").
	Category string
}

const (
	// CategoryManaged targets are pruned by age.
	CategoryManaged = "managed"
	// CategoryScan targets are only read by the large-file radar.
	CategoryScan = "scan"
)

// Targets holds every directory the tool touches, resolved against one
// home directory.
type Targets struct {
	Home      string
	Caches    CleanTarget
	Logs      CleanTarget
	ScanRoots []string
}

// HomeDir returns the invoking user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

// ResolveTargets builds the managed and scan-only targets under home.
func ResolveTargets(home string) Targets {
	return Targets{
		Home: home,
		Caches: CleanTarget{
			Name:        "Caches",
			Paths:       []string{filepath.Join(home, "Library", "Caches")},
			Description: "User application caches",
			Category:    CategoryManaged,
		},
		Logs: CleanTarget{
			Name:        "Logs",
			Paths:       []string{filepath.Join(home, "Library", "Logs")},
			Description: "User application logs",
			Category:    CategoryManaged,
		},
		ScanRoots: []string{
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Movies"),
		},
	}
}

// GetCleanTargets returns all targets in display order.
func (t Targets) GetCleanTargets() []CleanTarget {
	return []CleanTarget{
		t.Caches,
		t.Logs,
		{
			Name:        "Radar",
			Paths:       t.ScanRoots,
			Description: "Large-file radar roots (never modified)",
			Category:    CategoryScan,
		},
	}
}

// GetTargetsByCategory returns targets filtered by category.
func (t Targets) GetTargetsByCategory(category string) []CleanTarget {
	var result []CleanTarget
	for _, ct := range t.GetCleanTargets() {
		if ct.Category == category {
			result = append(result, ct)
		}
	}
	return result
}
