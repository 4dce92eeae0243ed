package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macmole/internal/app"
	"github.com/lakshaymaurya-felt/macmole/internal/clean"
	"github.com/lakshaymaurya-felt/macmole/internal/config"
	"github.com/lakshaymaurya-felt/macmole/internal/core"
	"github.com/lakshaymaurya-felt/macmole/internal/logging"
	"github.com/lakshaymaurya-felt/macmole/internal/ui"
)

var (
	// Global flags
	debug   bool
	dryRun  bool
	days    int
	largeMB int
	keep    []string
	logFile string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "mm",
	Short: "Reclaim disk space on your Mac",
	Long: heredoc.Doc(`
		MacMole - reclaim disk space on your Mac.

		Prunes stale files from ~/Library/Caches and ~/Library/Logs by age,
		asks Finder to empty the Trash and reports the largest files in
		Downloads, Desktop and Movies. Run without a subcommand for the
		interactive menu.
	`),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveMenu(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaults := config.DefaultSettings()

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "Show detailed operation logs")
	pf.BoolVar(&dryRun, "dry-run", false, "Report what would be freed without deleting")
	pf.IntVar(&days, "days", defaults.DaysThreshold, "Delete files last modified more than this many days ago")
	pf.IntVar(&largeMB, "large-mb", defaults.LargeFileMinMB, "Minimum size in MB reported by the radar")
	pf.StringSliceVar(&keep, "keep", nil, "Wildcard patterns for files that are never deleted (e.g. '*.keep')")
	pf.StringVar(&logFile, "log-file", "", "Append a rotating diagnostic log to this file")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(fullCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// settingsFromFlags merges the persistent flags over the defaults.
func settingsFromFlags() (config.Settings, error) {
	s := config.DefaultSettings()
	s.DaysThreshold = days
	s.LargeFileMinMB = largeMB
	s.Keep = keep
	s.DryRun = dryRun
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid flags: %w", err)
	}
	return s, nil
}

func newLogger() (*logrus.Logger, error) {
	log, err := logging.New(logging.Options{Debug: debug, File: logFile})
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return log, nil
}

// newSession wires settings, targets, console and trash for one run.
func newSession(cmd *cobra.Command) (*app.Session, error) {
	settings, err := settingsFromFlags()
	if err != nil {
		return nil, err
	}
	home, err := config.HomeDir()
	if err != nil {
		return nil, err
	}
	log, err := newLogger()
	if err != nil {
		return nil, err
	}

	console := ui.NewConsole(cmd.OutOrStdout(), log)
	if !core.IsMacOS() {
		console.Warn("Not running on macOS; Library paths and Finder may be unavailable")
	}

	log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"home":    home,
		"days":    settings.DaysThreshold,
		"dry_run": settings.DryRun,
	}).Debug("session start")

	return app.New(settings, config.ResolveTargets(home), console, clean.NewFinderTrash(console), log), nil
}

// runInteractiveMenu runs the numbered menu until the operator exits.
func runInteractiveMenu(cmd *cobra.Command) error {
	session, err := newSession(cmd)
	if err != nil {
		return err
	}
	subtitle := fmt.Sprintf("%s %s %s", core.HostString(core.GetHostInfo()), ui.IconPipe, appVersion)
	return session.RunMenu(ui.NewPrompter(os.Stdin, cmd.OutOrStdout()), subtitle)
}
