// Package cpucli implements the amdcpuctl command-line interface using
// Cobra. Each subcommand maps to one cpufreq operation; running the
// tool bare is the same as `status`.
package cpucli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/config"
	"github.com/hwkit/amdctl/internal/cpu"
	"github.com/hwkit/amdctl/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "amdcpuctl",
	Short: "Control AMD CPU frequency scaling",
	Long: `amdcpuctl reads and writes the kernel cpufreq interface for AMD
processors: scaling governor per core, the global boost toggle, and a
colored status report. Writes escalate through sudo/doas/pkexec when
not already root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStatus,
}

// Execute runs the root command. Called from main.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if isUnknownCommand(err) {
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		os.Exit(1)
	}
}

// isUnknownCommand matches cobra's unrecognized-verb error, which is
// the one case where usage goes to stderr alongside the error line.
func isUnknownCommand(err error) bool {
	return strings.Contains(err.Error(), "unknown command")
}

// setup loads config and enumerates the host CPU. A non-AMD host fails
// here, before any mutation.
func setup() (config.Config, *cpu.Device, *report.Printer, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, nil, err
	}
	dev, err := cpu.Enumerate(cfg.Paths)
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, dev, report.New(os.Stdout, cfg.Output.Color), nil
}

// printStatus renders the CPU report. Read-only: no writer is ever
// constructed on this path.
func printStatus(p *report.Printer, dev *cpu.Device, asJSON bool) error {
	st := cpu.ReadStatus(dev)
	if asJSON {
		return p.JSON(st)
	}

	p.Heading("AMD CPU")
	p.Line("Model", st.Model)
	p.Line("Cores / threads", fmt.Sprintf("%s / %d", st.CoreCount, st.ThreadCount))
	p.Line("Boost", st.Boost)
	p.Line("Available governors", st.AvailableGovernors)
	if st.TempOK {
		p.Line("Temperature", fmt.Sprintf("%d°C", st.TempC))
	} else {
		p.Line("Temperature", "n/a")
	}

	for _, core := range st.Cores {
		freq := "n/a"
		if core.FreqOK {
			freq = fmt.Sprintf("%d MHz", core.FreqMHz)
		}
		p.Line(fmt.Sprintf("cpu%d", core.Index),
			fmt.Sprintf("governor=%s  freq=%s", core.Governor, freq))
	}
	return nil
}
