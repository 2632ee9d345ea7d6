package plan

import (
	"github.com/spf13/cobra"

	"github.com/SustemFox/mods/cmd/fontpatch/install"
	"github.com/SustemFox/mods/pkg/installer"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show what install would write (dry-run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return install.Run(cmd, installer.Options{DryRun: true})
		},
	}
}
