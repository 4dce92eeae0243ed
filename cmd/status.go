package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macmole/internal/config"
	"github.com/lakshaymaurya-felt/macmole/internal/status"
)

var (
	statusJSON bool
	statusAll  bool
)

type statusReport struct {
	Volume  status.VolumeUsage  `json:"volume"`
	Targets []status.TargetSize `json:"targets"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show disk usage and reclaimable space",
	Long:  "Print the home volume usage and the current size of each cleaning target. --all adds the radar roots.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := config.HomeDir()
		if err != nil {
			return err
		}
		targets := config.ResolveTargets(home)

		v, err := status.Volume(home)
		if err != nil {
			return err
		}

		selected := targets.GetTargetsByCategory(config.CategoryManaged)
		if statusAll {
			selected = targets.GetCleanTargets()
		}
		sizes := status.MeasureTargets(selected)

		out := cmd.OutOrStdout()
		if statusJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(statusReport{Volume: v, Targets: sizes})
		}

		fmt.Fprintln(out, status.RenderVolume(v))
		fmt.Fprintln(out, status.RenderTargets(sizes))
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")
	statusCmd.Flags().BoolVar(&statusAll, "all", false, "Include the large-file radar roots")
}
