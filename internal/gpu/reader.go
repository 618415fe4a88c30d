package gpu

import (
	"path/filepath"

	"github.com/hwkit/amdctl/internal/sysfs"
)

// Status is one card's live power-management state. List-valued
// attributes keep the kernel's active-row marker as the Active flag on
// each entry.
type Status struct {
	Card        string             `json:"card"`
	PerfLevel   string             `json:"perf_level"`
	Profiles    []sysfs.TableEntry `json:"profiles,omitempty"`
	CoreClocks  []sysfs.TableEntry `json:"core_clocks,omitempty"`
	MemClocks   []sysfs.TableEntry `json:"mem_clocks,omitempty"`
	PCIeStates  []sysfs.TableEntry `json:"pcie_states,omitempty"`
	BusyPercent int                `json:"busy_percent"`
	BusyOK      bool               `json:"busy_ok"`
	VRAMTotalMB int                `json:"vram_total_mb"`
	VRAMUsedMB  int                `json:"vram_used_mb"`
	VRAMOK      bool               `json:"vram_ok"`
	TempC       int                `json:"temp_c"`
	TempOK      bool               `json:"temp_ok"`
}

// ReadStatus collects the card's current state, best-effort per
// attribute.
func ReadStatus(dev Device) Status {
	st := Status{
		Card:      dev.Name,
		PerfLevel: sysfs.ReadStringOr(dev.perfLevelPath()),
	}

	st.Profiles = readTable(dev, "pp_power_profile_mode")
	st.CoreClocks = readTable(dev, "pp_dpm_sclk")
	st.MemClocks = readTable(dev, "pp_dpm_mclk")
	st.PCIeStates = readTable(dev, "pp_dpm_pcie")

	st.BusyPercent, st.BusyOK = sysfs.ReadInt(dev.tablePath("gpu_busy_percent"))

	if total, ok := sysfs.ReadInt(dev.tablePath("mem_info_vram_total")); ok {
		if used, ok := sysfs.ReadInt(dev.tablePath("mem_info_vram_used")); ok {
			st.VRAMTotalMB = total / (1024 * 1024)
			st.VRAMUsedMB = used / (1024 * 1024)
			st.VRAMOK = true
		}
	}

	if hwmon, ok := dev.hwmonDir(); ok {
		st.TempC, st.TempOK = sysfs.ReadMilli(filepath.Join(hwmon, "temp1_input"))
	}

	return st
}

func readTable(dev Device, name string) []sysfs.TableEntry {
	text, ok := sysfs.ReadString(dev.tablePath(name))
	if !ok {
		return nil
	}
	return sysfs.ParseTable(text)
}
