// Package gpu enumerates AMD graphics cards under the DRM class
// directory and reads/writes their amdgpu power-management controls.
package gpu

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hwkit/amdctl/internal/config"
	"github.com/hwkit/amdctl/internal/sysfs"
)

// amdVendorID is the PCI vendor ID AMD cards report.
const amdVendorID = "0x1002"

// ErrNoDevice is returned when no AMD card is present. Distinct from
// an enumeration failure so the CLI can say "no compatible device
// found" and exit 1.
var ErrNoDevice = fmt.Errorf("no compatible AMD GPU found")

// Device is one AMD card. Dir is the card's device directory
// (/sys/class/drm/cardN/device); all control files hang off it.
type Device struct {
	Name string
	Dir  string
}

// cardPattern matches card directories but not connector entries like
// card0-DP-1.
var cardPattern = regexp.MustCompile(`^card\d+$`)

// Enumerate returns every AMD card under the DRM class directory, in
// name order. An empty result is not an error here; callers decide
// whether absence is fatal.
func Enumerate(paths config.PathsConfig) ([]Device, error) {
	entries, err := os.ReadDir(paths.DRMClass)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", paths.DRMClass, err)
	}

	var devices []Device
	for _, entry := range entries {
		if !cardPattern.MatchString(entry.Name()) {
			continue
		}
		dir := filepath.Join(paths.DRMClass, entry.Name(), "device")
		vendor, ok := sysfs.ReadString(filepath.Join(dir, "vendor"))
		if !ok || vendor != amdVendorID {
			continue
		}
		devices = append(devices, Device{Name: entry.Name(), Dir: dir})
	}
	return devices, nil
}

func (d Device) perfLevelPath() string {
	return filepath.Join(d.Dir, "power_dpm_force_performance_level")
}

func (d Device) profilePath() string {
	return filepath.Join(d.Dir, "pp_power_profile_mode")
}

func (d Device) tablePath(name string) string {
	return filepath.Join(d.Dir, name)
}

// hwmonDir finds the card-local hwmon directory, which carries the
// temperature sensor.
func (d Device) hwmonDir() (string, bool) {
	base := filepath.Join(d.Dir, "hwmon")
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if m, _ := filepath.Match("hwmon*", entry.Name()); m {
			return filepath.Join(base, entry.Name()), true
		}
	}
	return "", false
}
