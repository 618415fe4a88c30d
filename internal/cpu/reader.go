package cpu

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hwkit/amdctl/internal/sysfs"
)

// CoreStatus is one core's live cpufreq state.
type CoreStatus struct {
	Index    int    `json:"index"`
	Governor string `json:"governor"`
	FreqMHz  int    `json:"freq_mhz"`
	FreqOK   bool   `json:"freq_ok"`
}

// Status is the full CPU report. Every field is best-effort; missing
// attributes carry the unavailable sentinel or a false ok flag.
type Status struct {
	Model              string       `json:"model"`
	CoreCount          string       `json:"core_count"`
	ThreadCount        int          `json:"thread_count"`
	Boost              string       `json:"boost"`
	AvailableGovernors string       `json:"available_governors"`
	TempC              int          `json:"temp_c"`
	TempOK             bool         `json:"temp_ok"`
	Cores              []CoreStatus `json:"cores"`
}

// ReadStatus collects the device's current state. A missing attribute
// never aborts the rest of the read.
func ReadStatus(dev *Device) Status {
	st := Status{
		Model:     sysfs.Unavailable,
		CoreCount: sysfs.Unavailable,
		Boost:     sysfs.Unavailable,
	}

	if info, err := os.ReadFile(dev.CPUInfo); err == nil {
		st.Model, st.CoreCount, st.ThreadCount = parseCPUInfo(string(info))
	}

	if v, ok := sysfs.ReadString(dev.BoostPath()); ok {
		if v == "1" {
			st.Boost = "on"
		} else {
			st.Boost = "off"
		}
	}

	if len(dev.Cores) > 0 {
		st.AvailableGovernors = sysfs.ReadStringOr(
			filepath.Join(dev.Cores[0].Dir, "scaling_available_governors"))
	} else {
		st.AvailableGovernors = sysfs.Unavailable
	}

	if hwmon, ok := sysfs.FindHwmon(dev.Hwmon, "k10temp"); ok {
		st.TempC, st.TempOK = sysfs.ReadMilli(filepath.Join(hwmon, "temp1_input"))
	}

	for _, core := range dev.Cores {
		cs := CoreStatus{
			Index:    core.Index,
			Governor: sysfs.ReadStringOr(core.governorPath()),
		}
		if khz, ok := sysfs.ReadInt(filepath.Join(core.Dir, "scaling_cur_freq")); ok {
			cs.FreqMHz = khz / 1000
			cs.FreqOK = true
		}
		st.Cores = append(st.Cores, cs)
	}

	return st
}

// parseCPUInfo pulls model name, physical core count and logical
// processor count out of /proc/cpuinfo text.
func parseCPUInfo(text string) (model, cores string, threads int) {
	model = sysfs.Unavailable
	cores = sysfs.Unavailable
	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "model name":
			if model == sysfs.Unavailable {
				model = value
			}
		case "cpu cores":
			if cores == sysfs.Unavailable {
				cores = value
			}
		case "processor":
			threads++
		}
	}
	return model, cores, threads
}
