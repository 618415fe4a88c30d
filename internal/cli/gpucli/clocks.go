package gpucli

import (
	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/gpu"
)

var clocksJSON bool

func init() {
	clocksCmd.Flags().BoolVar(&clocksJSON, "json", false, "emit the tables as JSON")
	rootCmd.AddCommand(clocksCmd)
}

var clocksCmd = &cobra.Command{
	Use:   "clocks",
	Short: "Dump the available clock and profile tables",
	Args:  cobra.NoArgs,
	RunE:  runClocks,
}

// runClocks dumps every DPM table per card. Display only, no writes.
func runClocks(cmd *cobra.Command, args []string) error {
	_, devices, p, err := setup()
	if err != nil {
		return err
	}

	if clocksJSON {
		statuses := make([]gpu.Status, 0, len(devices))
		for _, dev := range devices {
			statuses = append(statuses, gpu.ReadStatus(dev))
		}
		return p.JSON(statuses)
	}

	for _, dev := range devices {
		st := gpu.ReadStatus(dev)
		p.Heading("AMD GPU %s", st.Card)
		p.Table("Core clock states (sclk)", st.CoreClocks)
		p.Table("Memory clock states (mclk)", st.MemClocks)
		p.Table("PCIe states", st.PCIeStates)
		p.Table("Power profiles", st.Profiles)
	}
	return nil
}
