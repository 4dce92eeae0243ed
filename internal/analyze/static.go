package analyze

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
	"github.com/lakshaymaurya-felt/macmole/internal/ui"
)

// NoneFoundMessage replaces the radar table when nothing qualifies.
const NoneFoundMessage = "No files above threshold found. Nice!"

// TopN returns at most n of the (already sorted) files.
func TopN(files []LargeFile, n int) []LargeFile {
	if n > 0 && len(files) > n {
		return files[:n]
	}
	return files
}

// RenderRadar renders the largest files as a Size/Path table, limited to
// the first limit entries. With no files it returns NoneFoundMessage.
func RenderRadar(files []LargeFile, limit int) string {
	if len(files) == 0 {
		return "  " + ui.SuccessStyle().Render(NoneFoundMessage+" "+ui.IconSparkle)
	}

	shown := TopN(files, limit)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorMuted)).
		Headers("Size", "Path").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(ui.ColorCoral)
			}
			if col == 0 {
				return s.Align(lipgloss.Right).Foreground(ui.ColorWarning)
			}
			return s
		})

	for _, f := range shown {
		t.Row(core.FormatSize(f.Size), f.Path)
	}

	var b strings.Builder
	b.WriteString(ui.HeadingStyle().Render(fmt.Sprintf("Top %d largest files found:", len(shown))))
	b.WriteString("\n")
	b.WriteString(t.Render())
	if hidden := len(files) - len(shown); hidden > 0 {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle().Render(fmt.Sprintf("  ... and %d more above the threshold", hidden)))
	}
	return b.String()
}
