package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
)

const (
	// DefaultDaysThreshold is the age after which cache and log files are deleted.
	DefaultDaysThreshold = 30

	// DefaultLargeFileMinMB is the radar threshold.
	DefaultLargeFileMinMB = 500

	// DefaultRadarTop is how many radar hits are shown.
	DefaultRadarTop = 20
)

// Settings holds the thresholds fixed for the lifetime of a session.
type Settings struct {
	// DaysThreshold: files modified more than this many days ago are pruned.
	DaysThreshold int

	// LargeFileMinMB is the minimum size reported by the radar.
	LargeFileMinMB int

	// RadarTop limits the radar report.
	RadarTop int

	// Keep lists wildcard patterns for files the pruner must never delete.
	Keep []string

	// DryRun reports what would be freed without deleting anything.
	DryRun bool
}

// DefaultSettings returns the built-in thresholds.
func DefaultSettings() Settings {
	return Settings{
		DaysThreshold:  DefaultDaysThreshold,
		LargeFileMinMB: DefaultLargeFileMinMB,
		RadarTop:       DefaultRadarTop,
	}
}

// Validate rejects thresholds that would make the cleaner misbehave.
func (s Settings) Validate() error {
	if s.DaysThreshold < 0 {
		return fmt.Errorf("days threshold cannot be negative: %d", s.DaysThreshold)
	}
	if s.LargeFileMinMB < 0 {
		return fmt.Errorf("large-file threshold cannot be negative: %d", s.LargeFileMinMB)
	}
	if s.RadarTop <= 0 {
		return errors.New("radar top must be positive")
	}
	return nil
}

// Cutoff returns the point in time before which files are eligible.
func (s Settings) Cutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(s.DaysThreshold) * 24 * time.Hour)
}

// LargeFileMinBytes converts the radar threshold to bytes.
func (s Settings) LargeFileMinBytes() int64 {
	return core.MegabytesToBytes(s.LargeFileMinMB)
}
