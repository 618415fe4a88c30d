package gpucli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hwkit/amdctl/internal/sysfs"
)

func init() {
	rootCmd.AddCommand(enableOCCmd)
}

var enableOCCmd = &cobra.Command{
	Use:   "enable-oc",
	Short: "Check whether overclocking controls are unlocked",
	Long: `The amdgpu overclocking feature mask is a kernel module parameter
set on the kernel command line, not a sysfs control. This verb reports
the current mask and prints the boot argument needed to unlock the
full set of controls; it never edits bootloader configuration.`,
	Args: cobra.NoArgs,
	RunE: runEnableOC,
}

func runEnableOC(cmd *cobra.Command, args []string) error {
	cfg, _, p, err := setup()
	if err != nil {
		return err
	}

	maskPath := filepath.Join(cfg.Paths.AmdgpuParams, "ppfeaturemask")
	mask, ok := sysfs.ReadString(maskPath)
	if !ok {
		p.Warn("amdgpu module parameters not available (%s)", maskPath)
		return nil
	}

	p.Heading("Overclocking feature mask")
	p.Line("ppfeaturemask", mask)
	if mask == "0xffffffff" || mask == "4294967295" {
		p.OK("overclocking controls are unlocked")
		return nil
	}
	p.Warn("overclocking controls are locked")
	p.Line("To unlock", "add amdgpu.ppfeaturemask=0xffffffff to the kernel command line and reboot")
	return nil
}
