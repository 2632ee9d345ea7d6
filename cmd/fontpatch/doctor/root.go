package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SustemFox/mods/pkg/config"
	"github.com/SustemFox/mods/pkg/manifest"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate the configuration and the bundled mod manifests",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cmd.Printf("config ok: %d mods, font %s\n", len(cfg.Mods), cfg.FontFilename)

	broken := 0
	for i, dir := range cfg.ModDirs() {
		name := cfg.Mods[i]
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			cmd.Printf("[absent] %s (not bundled yet)\n", name)
			continue
		}

		manifestPath := filepath.Join(dir, manifest.FileName)
		if err := manifest.ValidateFile(manifestPath); err != nil {
			cmd.Printf("[broken] %s: %v\n", name, err)
			broken++
			continue
		}
		cmd.Printf("[ok]     %s\n", name)
	}

	if broken > 0 {
		return fmt.Errorf("%d mod manifest(s) failed validation", broken)
	}
	return nil
}
