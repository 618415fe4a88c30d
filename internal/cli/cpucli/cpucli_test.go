package cpucli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeEnv points the tool's config at a fake cpufreq tree and returns
// its base directory.
func fakeEnv(t *testing.T, vendor string) string {
	t.Helper()
	root := t.TempDir()

	base := filepath.Join(root, "cpu")
	for i := 0; i < 2; i++ {
		dir := filepath.Join(base, fmt.Sprintf("cpu%d", i), "cpufreq")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for name, content := range map[string]string{
			"scaling_governor": "schedutil\n",
			"scaling_cur_freq": "2200000\n",
		} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	info := filepath.Join(root, "cpuinfo")
	content := fmt.Sprintf("processor\t: 0\nvendor_id\t: %s\nmodel name\t: Test CPU\n", vendor)
	if err := os.WriteFile(info, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	home := filepath.Join(root, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := fmt.Sprintf("[paths]\ncpufreq_base = %q\ncpuinfo = %q\nhwmon_class = %q\n\n[output]\ncolor = false\n",
		base, info, filepath.Join(root, "hwmon"))
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AMDCTL_HOME", home)
	return base
}

func run(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestStatusOnAMDHost(t *testing.T) {
	fakeEnv(t, "AuthenticAMD")

	if err := run("status"); err != nil {
		t.Fatalf("status: %v", err)
	}
}

func TestNonAMDHostFailsFast(t *testing.T) {
	base := fakeEnv(t, "GenuineIntel")

	if err := run("status"); err == nil {
		t.Fatal("status succeeded on a non-AMD host")
	}
	// The failure happens before any mutation.
	got, err := os.ReadFile(filepath.Join(base, "cpu0", "cpufreq", "scaling_governor"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "schedutil\n" {
		t.Errorf("governor changed to %q on a rejected host", got)
	}
}

func TestStatusIssuesNoWrites(t *testing.T) {
	base := fakeEnv(t, "AuthenticAMD")
	govPath := filepath.Join(base, "cpu0", "cpufreq", "scaling_governor")
	before, err := os.ReadFile(govPath)
	if err != nil {
		t.Fatal(err)
	}

	if err := run("status"); err != nil {
		t.Fatal(err)
	}

	after, err := os.ReadFile(govPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Errorf("status modified the governor: %q -> %q", before, after)
	}
}

func TestUnknownVerb(t *testing.T) {
	fakeEnv(t, "AuthenticAMD")

	err := run("frobnicate")
	if err == nil {
		t.Fatal("unknown verb accepted")
	}
	// Execute prints usage for exactly this class of error.
	if !isUnknownCommand(err) {
		t.Errorf("err %q not classified as an unknown command", err)
	}
}
