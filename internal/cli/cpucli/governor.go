package cpucli

import (
	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/cpu"
	"github.com/hwkit/amdctl/internal/sysfs"
)

func init() {
	rootCmd.AddCommand(performanceCmd)
	rootCmd.AddCommand(powersaveCmd)
}

var performanceCmd = &cobra.Command{
	Use:     "performance",
	Aliases: []string{"high"},
	Short:   "Set the performance governor on all cores",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyGovernor("performance")
	},
}

var powersaveCmd = &cobra.Command{
	Use:     "powersave",
	Aliases: []string{"low"},
	Short:   "Set the powersave governor on all cores",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyGovernor("powersave")
	},
}

// applyGovernor writes the governor on every core, reports per-core
// results, then prints the fresh status. Individual write failures are
// reported lines, not a non-zero exit.
func applyGovernor(governor string) error {
	cfg, dev, p, err := setup()
	if err != nil {
		return err
	}
	w, err := sysfs.NewWriter(cfg.Privilege.Helpers)
	if err != nil {
		return err
	}

	p.Heading("Setting governor=%s", governor)
	p.WriteResults(cpu.SetGovernor(w, dev, governor))
	return printStatus(p, dev, false)
}
