package sysfs

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// Writer applies a single value to a sysfs control file. The two
// implementations differ only in how they obtain write permission; the
// cpu and gpu packages are agnostic to which one they got.
type Writer interface {
	Write(path, value string) error
}

// DefaultHelpers is the escalation helper probe order when the config
// doesn't override it.
var DefaultHelpers = []string{"sudo", "doas", "pkexec"}

// NewWriter probes privilege once and returns the matching writer.
// Root gets the direct path; everyone else goes through the first
// escalation helper found on PATH (the escalating writer still writes
// directly when a specific file turns out to be writable anyway).
func NewWriter(helpers []string) (Writer, error) {
	if os.Geteuid() == 0 {
		return directWriter{}, nil
	}
	if len(helpers) == 0 {
		helpers = DefaultHelpers
	}
	helper, err := probeHelper(helpers)
	if err != nil {
		return nil, err
	}
	return &escalateWriter{helper: helper}, nil
}

// probeHelper returns the path of the first helper present on PATH,
// preserving the configured priority order.
func probeHelper(helpers []string) (string, error) {
	for _, h := range helpers {
		if path, err := exec.LookPath(h); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("not running as root and no escalation helper found (tried %s)",
		strings.Join(helpers, ", "))
}

// directWriter writes the file in-process. Also used by tests against
// fake sysfs trees.
type directWriter struct{}

// NewDirectWriter returns a writer that writes files in-process.
func NewDirectWriter() Writer {
	return directWriter{}
}

func (directWriter) Write(path, value string) error {
	if !Exists(path) {
		return &ErrUnsupported{Path: path}
	}
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// escalateWriter shells out to sudo/doas/pkexec, piping the value into
// tee. The helper may prompt interactively; we block on it.
type escalateWriter struct {
	helper string
}

func (w *escalateWriter) Write(path, value string) error {
	if !Exists(path) {
		return &ErrUnsupported{Path: path}
	}
	// Writable despite non-root euid (some distros relax boost).
	if unix.Access(path, unix.W_OK) == nil {
		return directWriter{}.Write(path, value)
	}
	cmd := exec.Command(w.helper, "tee", path)
	cmd.Stdin = strings.NewReader(value)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s tee %s: %w", w.helper, path, err)
	}
	return nil
}

// ErrUnsupported marks a control file the driver does not expose on
// this device. Callers report it as "control not available" and move
// on to the next device.
type ErrUnsupported struct {
	Path string
}

func (e *ErrUnsupported) Error() string {
	return fmt.Sprintf("control not available: %s", e.Path)
}
