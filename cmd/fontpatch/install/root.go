package install

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SustemFox/mods/pkg/config"
	"github.com/SustemFox/mods/pkg/fetch"
	"github.com/SustemFox/mods/pkg/installer"
)

func GetCommand() *cobra.Command {
	var force, dryRun bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Fetch the patch font and copy it into every destination",
		Long: `Download the pinned Noto Sans font, verify its SHA-256 and copy it into
the base patch directory plus every bundled mod that renders text.

Destinations already holding the pinned font are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, installer.Options{Force: force, DryRun: dryRun})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-fetch and overwrite even when destinations are up to date")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Fetch and verify, but only report what would be written")
	return cmd
}

// Run executes the install flow and prints the per-destination report.
func Run(cmd *cobra.Command, opts installer.Options) error {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	report, err := installer.New(cfg, fetch.NewHTTPFetcher()).Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	for _, a := range report.Actions {
		cmd.Printf("[%s] %s\n", a.Type, a.Target)
	}
	cmd.Printf("\nSummary: %d installed, %d pending, %d skipped\n",
		report.Installed(), report.Pending(), len(report.Actions)-report.Installed()-report.Pending())
	return nil
}
