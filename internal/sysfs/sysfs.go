// Package sysfs wraps the kernel sysfs attribute files this tool reads
// and writes. Reads are best-effort: a missing attribute yields the
// unavailable sentinel, never an error, so one absent file can't stop a
// status report. Writes go through a Writer that handles privilege
// escalation.
package sysfs

import (
	"os"
	"strconv"
	"strings"
)

// Unavailable is the sentinel rendered for attributes the driver does
// not expose on this hardware.
const Unavailable = "n/a"

// ReadString returns the trimmed contents of a sysfs attribute.
// The second return is false when the attribute is absent or unreadable.
func ReadString(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// ReadStringOr returns the attribute value, or the unavailable sentinel.
func ReadStringOr(path string) string {
	s, ok := ReadString(path)
	if !ok {
		return Unavailable
	}
	return s
}

// ReadInt reads an integer-valued attribute.
func ReadInt(path string) (int, bool) {
	s, ok := ReadString(path)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ReadMilli reads a millidegree/millivolt style attribute and converts
// it to whole units. 45000 reads as 45, 0 as 0.
func ReadMilli(path string) (int, bool) {
	n, ok := ReadInt(path)
	if !ok {
		return 0, false
	}
	return n / 1000, true
}

// Exists reports whether the attribute file is present. Absence means
// the driver does not support the control, not that something failed.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
