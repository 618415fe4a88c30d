package cpu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hwkit/amdctl/internal/config"
	"github.com/hwkit/amdctl/internal/sysfs"
)

const amdCPUInfo = `processor	: 0
vendor_id	: AuthenticAMD
model name	: AMD Ryzen 7 5800X 8-Core Processor
cpu cores	: 8

processor	: 1
vendor_id	: AuthenticAMD
model name	: AMD Ryzen 7 5800X 8-Core Processor
cpu cores	: 8
`

// fakeHost builds a fake cpufreq tree with the given core count and
// returns the paths config pointing at it.
func fakeHost(t *testing.T, cpuinfo string, cores int) config.PathsConfig {
	t.Helper()
	root := t.TempDir()

	base := filepath.Join(root, "cpu")
	for i := 0; i < cores; i++ {
		dir := filepath.Join(base, fmt.Sprintf("cpu%d", i), "cpufreq")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeAttr(t, dir, "scaling_governor", "schedutil\n")
		writeAttr(t, dir, "scaling_cur_freq", "3800000\n")
		writeAttr(t, dir, "scaling_available_governors", "performance powersave schedutil\n")
	}
	// Directories the enumerator must not count as cores.
	for _, name := range []string{"cpufreq", "cpuidle", "intel_pstate"} {
		if err := os.MkdirAll(filepath.Join(base, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeAttr(t, filepath.Join(base, "cpufreq"), "boost", "1\n")

	infoPath := filepath.Join(root, "cpuinfo")
	if err := os.WriteFile(infoPath, []byte(cpuinfo), 0o644); err != nil {
		t.Fatal(err)
	}

	hwmon := filepath.Join(root, "hwmon", "hwmon1")
	if err := os.MkdirAll(hwmon, 0o755); err != nil {
		t.Fatal(err)
	}
	writeAttr(t, hwmon, "name", "k10temp\n")
	writeAttr(t, hwmon, "temp1_input", "45000\n")

	paths := config.DefaultConfig().Paths
	paths.CPUFreqBase = base
	paths.CPUInfo = infoPath
	paths.HwmonClass = filepath.Join(root, "hwmon")
	return paths
}

func writeAttr(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEnumerateRejectsNonAMD(t *testing.T) {
	paths := fakeHost(t, "vendor_id\t: GenuineIntel\n", 2)

	_, err := Enumerate(paths)
	if !errors.Is(err, ErrNotAMD) {
		t.Fatalf("err = %v, want ErrNotAMD", err)
	}
}

func TestEnumerateDiscoversAllCores(t *testing.T) {
	// 12 cores exercises the numeric sort: cpu10 and cpu11 must come
	// after cpu9, and the count is whatever exists.
	paths := fakeHost(t, amdCPUInfo, 12)

	dev, err := Enumerate(paths)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(dev.Cores) != 12 {
		t.Fatalf("got %d cores, want 12", len(dev.Cores))
	}
	for i, core := range dev.Cores {
		if core.Index != i {
			t.Errorf("core %d has index %d, want %d", i, core.Index, i)
		}
	}
}

func TestReadStatus(t *testing.T) {
	paths := fakeHost(t, amdCPUInfo, 2)
	dev, err := Enumerate(paths)
	if err != nil {
		t.Fatal(err)
	}

	st := ReadStatus(dev)
	if st.Model != "AMD Ryzen 7 5800X 8-Core Processor" {
		t.Errorf("Model = %q", st.Model)
	}
	if st.CoreCount != "8" || st.ThreadCount != 2 {
		t.Errorf("cores/threads = %s/%d, want 8/2", st.CoreCount, st.ThreadCount)
	}
	if st.Boost != "on" {
		t.Errorf("Boost = %q, want on", st.Boost)
	}
	if !st.TempOK || st.TempC != 45 {
		t.Errorf("Temp = %d ok=%v, want 45", st.TempC, st.TempOK)
	}
	if len(st.Cores) != 2 {
		t.Fatalf("got %d core statuses, want 2", len(st.Cores))
	}
	if st.Cores[0].Governor != "schedutil" || st.Cores[0].FreqMHz != 3800 {
		t.Errorf("core 0 = %+v, want schedutil at 3800 MHz", st.Cores[0])
	}
}

func TestReadStatusPartial(t *testing.T) {
	paths := fakeHost(t, amdCPUInfo, 2)
	// Boost and one core's frequency go missing; everything else must
	// still be reported.
	if err := os.Remove(filepath.Join(paths.CPUFreqBase, "cpufreq", "boost")); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(paths.CPUFreqBase, "cpu1", "cpufreq", "scaling_cur_freq")); err != nil {
		t.Fatal(err)
	}

	dev, err := Enumerate(paths)
	if err != nil {
		t.Fatal(err)
	}

	st := ReadStatus(dev)
	if st.Boost != sysfs.Unavailable {
		t.Errorf("Boost = %q, want %q", st.Boost, sysfs.Unavailable)
	}
	if st.Cores[1].FreqOK {
		t.Error("core 1 frequency reported ok despite missing file")
	}
	if st.Cores[1].Governor != "schedutil" {
		t.Errorf("core 1 governor = %q, missing sibling aborted the read", st.Cores[1].Governor)
	}
	if st.Cores[0].FreqMHz != 3800 {
		t.Errorf("core 0 freq = %d, want 3800", st.Cores[0].FreqMHz)
	}
}

func TestSetGovernorBatch(t *testing.T) {
	paths := fakeHost(t, amdCPUInfo, 3)
	// core 1 loses its governor control entirely.
	if err := os.Remove(filepath.Join(paths.CPUFreqBase, "cpu1", "cpufreq", "scaling_governor")); err != nil {
		t.Fatal(err)
	}

	dev, err := Enumerate(paths)
	if err != nil {
		t.Fatal(err)
	}

	results := SetGovernor(sysfs.NewDirectWriter(), dev, "performance")
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !results[0].OK() || !results[2].OK() {
		t.Errorf("healthy cores reported failure: %+v %+v", results[0], results[2])
	}
	if !results[1].Unsupported {
		t.Errorf("core 1 = %+v, want Unsupported", results[1])
	}

	// Successes landed and stay applied.
	got, _ := sysfs.ReadString(filepath.Join(paths.CPUFreqBase, "cpu0", "cpufreq", "scaling_governor"))
	if got != "performance" {
		t.Errorf("cpu0 governor = %q, want performance", got)
	}
}

func TestSetBoost(t *testing.T) {
	paths := fakeHost(t, amdCPUInfo, 1)
	dev, err := Enumerate(paths)
	if err != nil {
		t.Fatal(err)
	}

	res := SetBoost(sysfs.NewDirectWriter(), dev, false)
	if !res.OK() {
		t.Fatalf("SetBoost: %+v", res)
	}
	got, _ := sysfs.ReadString(dev.BoostPath())
	if got != "0" {
		t.Errorf("boost = %q, want 0", got)
	}
}
