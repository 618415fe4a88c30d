package sysfs

import (
	"os"
	"path/filepath"
)

// FindHwmon scans a hwmon class directory for the sensor whose name
// attribute matches, returning its directory. Used to locate k10temp
// for the CPU; the GPU reads its own card-local hwmon instead.
func FindHwmon(classDir, name string) (string, bool) {
	entries, err := os.ReadDir(classDir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		dir := filepath.Join(classDir, entry.Name())
		if got, ok := ReadString(filepath.Join(dir, "name")); ok && got == name {
			return dir, true
		}
	}
	return "", false
}
