// Package gpucli implements the amdgpuctl command-line interface using
// Cobra. Each subcommand maps to one amdgpu power-management operation;
// running the tool bare is the same as `status`.
package gpucli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/config"
	"github.com/hwkit/amdctl/internal/gpu"
	"github.com/hwkit/amdctl/internal/report"
	"github.com/hwkit/amdctl/internal/sysfs"
)

var rootCmd = &cobra.Command{
	Use:   "amdgpuctl",
	Short: "Control AMD GPU performance levels and power profiles",
	Long: `amdgpuctl reads and writes the amdgpu driver's sysfs power
controls on every AMD card in the system: forced performance level,
power profile presets, and the DPM clock tables. Writes escalate
through sudo/doas/pkexec when not already root.`,
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

// setup loads config and enumerates AMD cards. Zero cards is the
// distinct "no compatible device found" condition and is fatal for
// every verb that reaches here.
func setup() (config.Config, []gpu.Device, *report.Printer, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, nil, err
	}
	devices, err := gpu.Enumerate(cfg.Paths)
	if err != nil {
		return cfg, nil, nil, err
	}
	if len(devices) == 0 {
		return cfg, nil, nil, gpu.ErrNoDevice
	}
	return cfg, devices, report.New(os.Stdout, cfg.Output.Color), nil
}

// printStatus renders the per-card report. Read-only path.
func printStatus(p *report.Printer, devices []gpu.Device, asJSON bool) error {
	if asJSON {
		statuses := make([]gpu.Status, 0, len(devices))
		for _, dev := range devices {
			statuses = append(statuses, gpu.ReadStatus(dev))
		}
		return p.JSON(statuses)
	}

	for _, dev := range devices {
		st := gpu.ReadStatus(dev)
		p.Heading("AMD GPU %s", st.Card)
		p.Line("Performance level", st.PerfLevel)
		if active, ok := sysfs.ActiveEntry(st.Profiles); ok {
			p.Line("Power profile", active.Value)
		} else {
			p.Line("Power profile", "n/a")
		}
		if active, ok := sysfs.ActiveEntry(st.CoreClocks); ok {
			p.Line("Core clock", active.Value)
		}
		if active, ok := sysfs.ActiveEntry(st.MemClocks); ok {
			p.Line("Memory clock", active.Value)
		}
		if st.BusyOK {
			p.Line("Busy", fmt.Sprintf("%d%%", st.BusyPercent))
		}
		if st.VRAMOK {
			p.Line("VRAM", fmt.Sprintf("%d / %d MiB", st.VRAMUsedMB, st.VRAMTotalMB))
		}
		if st.TempOK {
			p.Line("Temperature", fmt.Sprintf("%d°C", st.TempC))
		} else {
			p.Line("Temperature", "n/a")
		}
	}
	return nil
}
