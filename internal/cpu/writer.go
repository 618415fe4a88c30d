package cpu

import (
	"fmt"

	"github.com/hwkit/amdctl/internal/sysfs"
)

// SetGovernor writes the scaling governor on every discovered core,
// sequentially in discovery order. A failed core is recorded and the
// batch continues; earlier successes are never rolled back.
func SetGovernor(w sysfs.Writer, dev *Device, governor string) []sysfs.WriteResult {
	results := make([]sysfs.WriteResult, 0, len(dev.Cores))
	for _, core := range dev.Cores {
		err := w.Write(core.governorPath(), governor)
		results = append(results, sysfs.NewResult(
			fmt.Sprintf("cpu%d", core.Index), "governor", governor, err))
	}
	return results
}

// SetBoost toggles the global turbo flag.
func SetBoost(w sysfs.Writer, dev *Device, on bool) sysfs.WriteResult {
	value := "0"
	if on {
		value = "1"
	}
	err := w.Write(dev.BoostPath(), value)
	return sysfs.NewResult("cpu", "boost", value, err)
}
