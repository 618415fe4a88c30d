package sysfs

import (
	"strconv"
	"strings"
)

// TableEntry is one row of a DPM state table (pp_dpm_sclk,
// pp_power_profile_mode and friends). The kernel marks the active row
// with an asterisk somewhere in the line.
type TableEntry struct {
	Index  int
	Value  string
	Active bool
}

// ParseTable parses a line-oriented kernel state table into entries.
// The asterisk marker is consumed here so callers never see it. Rows
// that don't start with a state index (the pp_power_profile_mode
// column header, odd ASIC-specific lines) are kept with Index -1,
// except the NUM header which is dropped.
func ParseTable(text string) []TableEntry {
	var entries []TableEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		active := strings.Contains(line, "*")
		if active {
			line = strings.TrimSpace(strings.ReplaceAll(line, "*", ""))
		}

		// A row that was only a marker has no content left to report.
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "NUM" {
			continue
		}

		idx := -1
		value := line
		if n, err := strconv.Atoi(strings.TrimSuffix(fields[0], ":")); err == nil {
			idx = n
			value = strings.TrimSpace(strings.Join(fields[1:], " "))
		}

		entries = append(entries, TableEntry{Index: idx, Value: value, Active: active})
	}
	return entries
}

// ActiveEntry returns the entry the kernel marked as current.
func ActiveEntry(entries []TableEntry) (TableEntry, bool) {
	for _, e := range entries {
		if e.Active {
			return e, true
		}
	}
	return TableEntry{}, false
}
