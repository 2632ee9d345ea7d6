package verify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SustemFox/mods/pkg/config"
	"github.com/SustemFox/mods/pkg/plan"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every destination holds the pinned font",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	targets := plan.Inspect(
		plan.Targets(cfg.PatchDir, cfg.ModDirs(), cfg.FontFilename),
		cfg.FontSHA256,
	)

	bad := 0
	for _, target := range targets {
		cmd.Printf("[%s] %s\n", target.State, target.Path)
		if target.State != plan.UpToDate {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d font copies are missing or stale; run fontpatch install", bad, len(targets))
	}
	return nil
}
