package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SustemFox/mods/cmd/fontpatch/doctor"
	"github.com/SustemFox/mods/cmd/fontpatch/install"
	plancmd "github.com/SustemFox/mods/cmd/fontpatch/plan"
	"github.com/SustemFox/mods/cmd/fontpatch/verify"
	"github.com/SustemFox/mods/pkg/version"
)

func main() {
	var verbose bool

	installCmd := install.GetCommand()

	cmd := &cobra.Command{
		Use:     "fontpatch",
		Short:   "fontpatch - verified font installer for the OWML fonts patch",
		Version: version.GetBuildID(),
		Args:    cobra.NoArgs,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
		// Bare invocation behaves like `fontpatch install`.
		RunE: installCmd.RunE,
	}
	cmd.Flags().AddFlagSet(installCmd.Flags())

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(installCmd)
	cmd.AddCommand(plancmd.GetCommand())
	cmd.AddCommand(verify.GetCommand())
	cmd.AddCommand(doctor.GetCommand())

	if err := cmd.Execute(); err != nil {
		slog.Error("error", "err", err)
		os.Exit(1)
	}
}
