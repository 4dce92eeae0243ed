package status

import (
	"github.com/lakshaymaurya-felt/macmole/internal/analyze"
	"github.com/lakshaymaurya-felt/macmole/internal/config"
)

// Row is one line of the before/after dashboard.
type Row struct {
	Category string
	Before   int64
	After    int64
	Freed    int64
}

// Summary is the whole dashboard: one row per category plus the total.
type Summary struct {
	Rows  []Row
	Total Row
}

// freed clamps before-after at zero so a category that grew between the
// two measurements never reports a negative amount.
func freed(before, after int64) int64 {
	if d := before - after; d > 0 {
		return d
	}
	return 0
}

func newRow(category string, before, after int64) Row {
	return Row{
		Category: category,
		Before:   before,
		After:    after,
		Freed:    freed(before, after),
	}
}

// Dashboard aggregates the caches and logs measurements taken around a
// full clean. The total row sums each column, so its freed value is the
// sum of the clamped per-category amounts.
func Dashboard(cachesBefore, cachesAfter, logsBefore, logsAfter int64) Summary {
	s := Summary{
		Rows: []Row{
			newRow("Caches", cachesBefore, cachesAfter),
			newRow("Logs", logsBefore, logsAfter),
		},
		Total: Row{Category: "Total"},
	}
	for _, r := range s.Rows {
		s.Total.Before += r.Before
		s.Total.After += r.After
		s.Total.Freed += r.Freed
	}
	return s
}

// TargetSize is a target with its measured size.
type TargetSize struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Size        int64  `json:"size"`
}

// MeasureTargets sizes every target's paths; missing paths count as 0.
func MeasureTargets(targets []config.CleanTarget) []TargetSize {
	out := make([]TargetSize, 0, len(targets))
	for _, t := range targets {
		out = append(out, TargetSize{
			Name:        t.Name,
			Category:    t.Category,
			Description: t.Description,
			Size:        analyze.TotalSize(t.Paths),
		})
	}
	return out
}
