package cmd

import (
	"github.com/spf13/cobra"
)

var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Clean everything and show the space dashboard",
	Long:  "Measure caches and logs, clean both, empty the Trash, measure again and print a before/after dashboard.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(cmd)
		if err != nil {
			return err
		}
		session.FullClean()
		return nil
	},
}
