package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hwkit/amdctl/internal/sysfs"
)

func TestWriteResultsMixedBatch(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.WriteResults([]sysfs.WriteResult{
		{Target: "card0", Attribute: "perf-level", Value: "high"},
		{Target: "card1", Attribute: "perf-level", Value: "high", Err: errors.New("permission denied")},
		{Target: "card2", Attribute: "power-profile", Unsupported: true},
	})

	out := buf.String()
	if !strings.Contains(out, "✓ card0: perf-level=high") {
		t.Errorf("success line missing:\n%s", out)
	}
	if !strings.Contains(out, "✗ card1: perf-level=high: permission denied") {
		t.Errorf("failure line missing:\n%s", out)
	}
	if !strings.Contains(out, "! card2: power-profile control not available") {
		t.Errorf("unsupported line missing:\n%s", out)
	}
}

func TestTableMarksActiveRow(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Table("Core clock states", []sysfs.TableEntry{
		{Index: 0, Value: "300Mhz"},
		{Index: 1, Value: "1060Mhz", Active: true},
	})

	out := buf.String()
	if !strings.Contains(out, "1060Mhz (current)") {
		t.Errorf("active row not annotated:\n%s", out)
	}
	if strings.Contains(out, "300Mhz (current)") {
		t.Errorf("inactive row annotated as current:\n%s", out)
	}
}

func TestTableEmptyRendersUnavailable(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Table("PCIe states", nil)
	if !strings.Contains(buf.String(), sysfs.Unavailable) {
		t.Errorf("empty table should render unavailable sentinel:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	if err := p.JSON(map[string]int{"temp_c": 45}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var got map[string]int
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["temp_c"] != 45 {
		t.Errorf("temp_c = %d, want 45", got["temp_c"])
	}
}
