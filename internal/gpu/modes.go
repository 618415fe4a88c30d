package gpu

import (
	"fmt"
	"strconv"

	"github.com/hwkit/amdctl/internal/sysfs"
)

// Step is one (attribute, value) write of a mode expansion.
type Step struct {
	Attribute string // "perf-level" or "power-profile"
	Value     string
}

// Mode is a named operation expanding into an ordered list of writes.
// Order matters: gaming must raise the performance level before
// selecting the profile, and the expansion is applied per device in
// discovery order.
type Mode struct {
	Name  string
	Steps []Step
}

// Modes is the full verb-to-writes table for the GPU tool.
var Modes = map[string]Mode{
	"high":       {Name: "high", Steps: []Step{{"perf-level", "high"}}},
	"low":        {Name: "low", Steps: []Step{{"perf-level", "low"}}},
	"auto":       {Name: "auto", Steps: []Step{{"perf-level", "auto"}}},
	"manual":     {Name: "manual", Steps: []Step{{"perf-level", "manual"}}},
	"reset":      {Name: "reset", Steps: []Step{{"perf-level", "auto"}}},
	"gaming":     {Name: "gaming", Steps: []Step{{"perf-level", "high"}, {"power-profile", strconv.Itoa(Profile3DFullScreen)}}},
	"compute":    {Name: "compute", Steps: []Step{{"perf-level", "high"}, {"power-profile", strconv.Itoa(ProfileCompute)}}},
	"power-save": {Name: "power-save", Steps: []Step{{"perf-level", "low"}, {"power-profile", strconv.Itoa(ProfilePowerSaving)}}},
}

// Apply runs a mode's writes on one card, in order. A failed step is
// recorded and the remaining steps still run, so a half-applied mode
// shows up as a partial-failure report rather than being masked.
func Apply(w sysfs.Writer, dev Device, mode Mode) []sysfs.WriteResult {
	results := make([]sysfs.WriteResult, 0, len(mode.Steps))
	for _, step := range mode.Steps {
		var path string
		switch step.Attribute {
		case "perf-level":
			path = dev.perfLevelPath()
		case "power-profile":
			path = dev.profilePath()
		default:
			results = append(results, sysfs.WriteResult{
				Target:    dev.Name,
				Attribute: step.Attribute,
				Value:     step.Value,
				Err:       fmt.Errorf("unknown attribute %q", step.Attribute),
			})
			continue
		}
		err := w.Write(path, step.Value)
		results = append(results, sysfs.NewResult(dev.Name, step.Attribute, step.Value, err))
	}
	return results
}
