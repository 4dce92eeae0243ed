package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	analyzeMinSize string
	analyzeTop     int
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze [path...]",
	Aliases: []string{"radar"},
	Short:   "Find the largest files",
	Long: heredoc.Doc(`
		Big File Radar: walk the given directories (Downloads, Desktop and
		Movies by default) and list the largest regular files at or above
		the size threshold. Nothing is deleted.
	`),
	Example: heredoc.Doc(`
		mm analyze
		mm radar ~/Projects --min-size 2GiB --top 10
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("top") {
			if analyzeTop <= 0 {
				return fmt.Errorf("--top must be positive, got %d", analyzeTop)
			}
			session.Settings.RadarTop = analyzeTop
		}

		minBytes := session.Settings.LargeFileMinBytes()
		if analyzeMinSize != "" {
			if minBytes, err = parseMinSize(analyzeMinSize); err != nil {
				return err
			}
		}

		session.RadarAbove(args, minBytes)
		return nil
	},
}

// parseMinSize reads a human size. MiB/GiB are binary like every size the
// tool prints; MB/GB are decimal (1 MB = 10^6 bytes).
func parseMinSize(s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --min-size %q: %w", s, err)
	}
	return int64(n), nil
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeMinSize, "min-size", "",
		"Minimum size to report, e.g. 500MiB or 2GiB (MB/GB are decimal: 1MB = 10^6 bytes); overrides --large-mb")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 20, "Number of files to list")
}
