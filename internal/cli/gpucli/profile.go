package gpucli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/gpu"
	"github.com/hwkit/amdctl/internal/sysfs"
)

func init() {
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile N",
	Short: "Select a power profile by index (0-6)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("profile argument %q is not a number", args[0])
	}
	// Validation error, not a device error: nothing is written.
	if err := gpu.ValidateProfile(n); err != nil {
		return err
	}

	cfg, devices, p, err := setup()
	if err != nil {
		return err
	}
	w, err := sysfs.NewWriter(cfg.Privilege.Helpers)
	if err != nil {
		return err
	}

	p.Heading("Selecting power profile %d", n)
	for _, dev := range devices {
		p.WriteResults([]sysfs.WriteResult{gpu.SetPowerProfile(w, dev, n)})
	}
	return printStatus(p, devices, false)
}
