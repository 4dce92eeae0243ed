package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
	"github.com/lakshaymaurya-felt/macmole/internal/ui"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrGreen  = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	clrYellow = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	clrOrange = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	clrRed    = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	clrBlue   = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
)

// ─── Dashboard ───────────────────────────────────────────────────────────────

// RenderDashboard draws the Category/Before/After/Freed table followed by
// the overall freed line.
func RenderDashboard(s Summary) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorMuted)).
		Headers("Category", "Before", "After", "Freed").
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return st.Bold(true).Foreground(clrBlue)
			case row == len(s.Rows):
				st = st.Bold(true)
			}
			if col > 0 {
				st = st.Align(lipgloss.Right)
			}
			if col == 3 {
				st = st.Foreground(clrGreen)
			}
			return st
		})

	for _, r := range append(append([]Row(nil), s.Rows...), s.Total) {
		t.Row(r.Category, core.FormatSize(r.Before), core.FormatSize(r.After), core.FormatSize(r.Freed))
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(clrBlue).Render(ui.IconChart + " Space Dashboard")
	overall := lipgloss.NewStyle().Foreground(clrGreen).Render(ui.IconSparkle+" Overall freed (this run): ") +
		ui.BoldStyle().Render(core.FormatSize(s.Total.Freed))

	return strings.Join([]string{"", title, t.Render(), "", overall}, "\n")
}

// ─── Volume panel ────────────────────────────────────────────────────────────

// RenderVolume draws a one-card summary of the volume usage.
func RenderVolume(v VolumeUsage) string {
	lines := []string{
		fmt.Sprintf("  Volume  %s", v.Path),
		fmt.Sprintf("  DSK     %s  %5.1f%%", colorBar(v.UsedPercent, 30), v.UsedPercent),
		fmt.Sprintf("  Used    %s / %s", humanize.IBytes(v.Used), humanize.IBytes(v.Total)),
		fmt.Sprintf("  Free    %s", humanize.IBytes(v.Free)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// RenderTargets lists each target with its category, description and
// current size.
func RenderTargets(targets []TargetSize) string {
	name := lipgloss.NewStyle().Bold(true).Width(8)
	category := lipgloss.NewStyle().Foreground(ui.ColorSecondary).Width(9)
	desc := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	lines := make([]string, 0, len(targets))
	for _, t := range targets {
		lines = append(lines, fmt.Sprintf("  %s %s%s%10s  %s",
			ui.IconBullet,
			name.Render(t.Name),
			category.Render(t.Category),
			core.FormatSize(t.Size),
			desc.Render(t.Description),
		))
	}
	return strings.Join(lines, "\n")
}

// ─── Drawing primitives ─────────────────────────────────────────────────────

// colorBar renders a ████░░░░ bar colored by severity.
func colorBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	barColor := clrGreen
	switch {
	case pct >= 90:
		barColor = clrRed
	case pct >= 75:
		barColor = clrOrange
	case pct >= 50:
		barColor = clrYellow
	}

	fStr := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled))
	eStr := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("░", width-filled))
	return fStr + eStr
}
