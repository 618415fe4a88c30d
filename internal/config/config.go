// Package config loads amdctl configuration from TOML, falling back to
// compiled-in defaults. The sysfs roots live here so the cpu and gpu
// packages can be pointed at a fake tree in tests.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds everything both tools need.
type Config struct {
	Paths     PathsConfig     `toml:"paths"`
	Privilege PrivilegeConfig `toml:"privilege"`
	Install   InstallConfig   `toml:"install"`
	Output    OutputConfig    `toml:"output"`
}

// PathsConfig points at the kernel interfaces. Only ever changed for
// testing or exotic sysfs mounts.
type PathsConfig struct {
	CPUFreqBase  string `toml:"cpufreq_base"`
	CPUInfo      string `toml:"cpuinfo"`
	DRMClass     string `toml:"drm_class"`
	HwmonClass   string `toml:"hwmon_class"`
	AmdgpuParams string `toml:"amdgpu_params"`
}

// PrivilegeConfig controls how non-root writes escalate.
type PrivilegeConfig struct {
	Helpers []string `toml:"helpers"`
}

// InstallConfig controls the `install` verb.
type InstallConfig struct {
	Managers []string `toml:"managers"`
	Packages []string `toml:"packages"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Color bool `toml:"color"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			CPUFreqBase:  "/sys/devices/system/cpu",
			CPUInfo:      "/proc/cpuinfo",
			DRMClass:     "/sys/class/drm",
			HwmonClass:   "/sys/class/hwmon",
			AmdgpuParams: "/sys/module/amdgpu/parameters",
		},
		Privilege: PrivilegeConfig{
			Helpers: []string{"sudo", "doas", "pkexec"},
		},
		Install: InstallConfig{
			Managers: []string{"pacman", "apt-get", "dnf"},
			Packages: []string{"lm_sensors", "radeontop"},
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Load reads config from $AMDCTL_HOME/config.toml (default
// ~/.config/amdctl), falling back to defaults when no file exists.
func Load() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(Home(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Home returns the amdctl config directory.
func Home() string {
	if env := os.Getenv("AMDCTL_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "amdctl")
}
