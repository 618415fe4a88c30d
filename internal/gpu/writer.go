package gpu

import (
	"fmt"
	"strconv"

	"github.com/hwkit/amdctl/internal/sysfs"
)

// Power profile indices per the amdgpu pp_power_profile_mode table.
const (
	Profile3DFullScreen = 1
	ProfilePowerSaving  = 2
	ProfileCompute      = 5

	// ProfileMax is the highest selectable index (CUSTOM).
	ProfileMax = 6
)

// SetPerfLevel writes power_dpm_force_performance_level on one card.
func SetPerfLevel(w sysfs.Writer, dev Device, level string) sysfs.WriteResult {
	err := w.Write(dev.perfLevelPath(), level)
	return sysfs.NewResult(dev.Name, "perf-level", level, err)
}

// SetPowerProfile selects a workload heuristic by index. Range
// validation happens at the CLI before any device is touched; the
// kernel still rejects indices this card doesn't implement.
func SetPowerProfile(w sysfs.Writer, dev Device, profile int) sysfs.WriteResult {
	value := strconv.Itoa(profile)
	err := w.Write(dev.profilePath(), value)
	return sysfs.NewResult(dev.Name, "power-profile", value, err)
}

// ValidateProfile checks a requested profile index against the legal
// range [0, ProfileMax].
func ValidateProfile(n int) error {
	if n < 0 || n > ProfileMax {
		return fmt.Errorf("profile %d out of range [0,%d]", n, ProfileMax)
	}
	return nil
}
