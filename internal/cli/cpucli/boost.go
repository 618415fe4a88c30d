package cpucli

import (
	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/cpu"
	"github.com/hwkit/amdctl/internal/sysfs"
)

func init() {
	rootCmd.AddCommand(boostOnCmd)
	rootCmd.AddCommand(boostOffCmd)
}

var boostOnCmd = &cobra.Command{
	Use:   "boost-on",
	Short: "Enable CPU frequency boost",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyBoost(true)
	},
}

var boostOffCmd = &cobra.Command{
	Use:   "boost-off",
	Short: "Disable CPU frequency boost",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyBoost(false)
	},
}

func applyBoost(on bool) error {
	cfg, dev, p, err := setup()
	if err != nil {
		return err
	}
	w, err := sysfs.NewWriter(cfg.Privilege.Helpers)
	if err != nil {
		return err
	}

	state := "off"
	if on {
		state = "on"
	}
	p.Heading("Setting boost=%s", state)
	p.WriteResults([]sysfs.WriteResult{cpu.SetBoost(w, dev, on)})
	return printStatus(p, dev, false)
}
