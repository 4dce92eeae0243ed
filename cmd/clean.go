package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
	"github.com/lakshaymaurya-felt/macmole/internal/ui"
)

var (
	cleanCaches bool
	cleanLogs   bool
	cleanTrash  bool
	cleanAll    bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free up disk space",
	Long: heredoc.Doc(`
		Delete files under ~/Library/Caches and ~/Library/Logs that were last
		modified before the --days cutoff, then remove directories left empty.
		With no category flags, caches and logs are cleaned.
	`),
	Example: heredoc.Doc(`
		mm clean
		mm clean --logs --days 7
		mm clean --all --dry-run
	`),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(cmd)
		if err != nil {
			return err
		}

		caches, logs, trash := cleanCaches, cleanLogs, cleanTrash
		if cleanAll {
			caches, logs, trash = true, true, true
		}
		if !caches && !logs && !trash {
			caches, logs = true, true
		}

		if caches {
			session.CleanCaches()
		}
		if logs {
			session.CleanLogs()
		}
		if trash {
			session.EmptyTrash()
		}

		session.Out.Print("")
		session.Out.Success("%s Total freed this run: %s", ui.IconSparkle, core.FormatSize(session.TotalFreed()))
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanCaches, "caches", false, "Clean ~/Library/Caches")
	cleanCmd.Flags().BoolVar(&cleanLogs, "logs", false, "Clean ~/Library/Logs")
	cleanCmd.Flags().BoolVar(&cleanTrash, "trash", false, "Ask Finder to empty the Trash")
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Clean caches, logs and Trash")
}
