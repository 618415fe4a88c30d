// Package cpu enumerates AMD CPU cores and reads/writes their cpufreq
// controls. Discovery is fresh on every invocation; the only state is
// the live sysfs tree.
package cpu

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hwkit/amdctl/internal/config"
)

// vendorID is the string AMD processors report in /proc/cpuinfo.
const vendorID = "AuthenticAMD"

// ErrNotAMD is returned when the host processor is not AMD. The CLI
// treats it as fatal before any mutation.
var ErrNotAMD = fmt.Errorf("host CPU is not %s", vendorID)

// Core is one logical CPU's cpufreq control directory.
type Core struct {
	Index int
	Dir   string
}

// Device is the host CPU: the cpufreq base plus every per-core control
// directory that actually exists. Core count is whatever the kernel
// exposes, never a fixed bound.
type Device struct {
	FreqBase string
	CPUInfo  string
	Hwmon    string
	Cores    []Core
}

var coreDirPattern = regexp.MustCompile(`^cpu(\d+)$`)

// Enumerate verifies the host is an AMD processor and discovers its
// per-core cpufreq directories.
func Enumerate(paths config.PathsConfig) (*Device, error) {
	info, err := os.ReadFile(paths.CPUInfo)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", paths.CPUInfo, err)
	}
	if !strings.Contains(string(info), vendorID) {
		return nil, ErrNotAMD
	}

	entries, err := os.ReadDir(paths.CPUFreqBase)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", paths.CPUFreqBase, err)
	}

	var cores []Core
	for _, entry := range entries {
		m := coreDirPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		dir := filepath.Join(paths.CPUFreqBase, entry.Name(), "cpufreq")
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		idx, _ := strconv.Atoi(m[1])
		cores = append(cores, Core{Index: idx, Dir: dir})
	}
	sort.Slice(cores, func(i, j int) bool { return cores[i].Index < cores[j].Index })

	return &Device{
		FreqBase: paths.CPUFreqBase,
		CPUInfo:  paths.CPUInfo,
		Hwmon:    paths.HwmonClass,
		Cores:    cores,
	}, nil
}

// BoostPath is the global (not per-core) turbo toggle.
func (d *Device) BoostPath() string {
	return filepath.Join(d.FreqBase, "cpufreq", "boost")
}

func (c Core) governorPath() string {
	return filepath.Join(c.Dir, "scaling_governor")
}
