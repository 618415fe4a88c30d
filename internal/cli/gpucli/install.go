package gpucli

import (
	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/config"
	"github.com/hwkit/amdctl/internal/install"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install companion tools via the host package manager",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return install.Run(cfg.Install.Managers, cfg.Install.Packages, cfg.Privilege.Helpers)
	},
}
