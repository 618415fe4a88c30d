package gpucli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/gpu"
	"github.com/hwkit/amdctl/internal/sysfs"
)

func init() {
	rootCmd.AddCommand(modeCmd("high", "Force the high performance level", "performance"))
	rootCmd.AddCommand(modeCmd("low", "Force the low performance level", "powersave"))
	rootCmd.AddCommand(modeCmd("auto", "Return performance level control to the driver"))
	rootCmd.AddCommand(modeCmd("manual", "Set the manual performance level"))
	rootCmd.AddCommand(modeCmd("reset", "Reset the performance level to auto"))
	rootCmd.AddCommand(modeCmd("gaming", "High performance level plus the 3D fullscreen profile"))
	rootCmd.AddCommand(modeCmd("compute", "High performance level plus the compute profile"))
	rootCmd.AddCommand(modeCmd("power-save", "Low performance level plus the power-saving profile"))
}

// modeCmd builds the cobra command for one named mode from the
// expansion table.
func modeCmd(name, short string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     name,
		Aliases: aliases,
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyMode(name)
		},
	}
}

// applyMode expands the mode into its ordered writes and applies them
// to every card sequentially, in discovery order. Per-device failures
// are reported, not propagated to the exit status.
func applyMode(name string) error {
	mode, ok := gpu.Modes[name]
	if !ok {
		return fmt.Errorf("unknown mode %q", name)
	}

	cfg, devices, p, err := setup()
	if err != nil {
		return err
	}
	w, err := sysfs.NewWriter(cfg.Privilege.Helpers)
	if err != nil {
		return err
	}

	p.Heading("Applying %s", mode.Name)
	for _, dev := range devices {
		p.WriteResults(gpu.Apply(w, dev, mode))
	}
	return printStatus(p, devices, false)
}
