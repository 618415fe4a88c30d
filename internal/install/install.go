// Package install delegates installation of companion tools to the
// host package manager. The manager is an external collaborator; this
// just probes a fixed priority list and hands off.
package install

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// managerArgs maps a package manager binary to its install arguments.
var managerArgs = map[string][]string{
	"pacman":  {"-S", "--needed"},
	"apt-get": {"install", "-y"},
	"dnf":     {"install", "-y"},
}

// Probe returns the first package manager from the priority list that
// exists on PATH.
func Probe(managers []string) (string, error) {
	for _, m := range managers {
		if _, err := exec.LookPath(m); err == nil {
			return m, nil
		}
	}
	return "", fmt.Errorf("no supported package manager found (tried %s)",
		strings.Join(managers, ", "))
}

// Run installs the companion packages through the first available
// manager, escalating through the helper when not already root. The
// manager's output goes straight to the terminal.
func Run(managers, packages, helpers []string) error {
	manager, err := Probe(managers)
	if err != nil {
		return err
	}

	args := append(append([]string{}, managerArgs[manager]...), packages...)

	var cmd *exec.Cmd
	if os.Geteuid() == 0 {
		cmd = exec.Command(manager, args...)
	} else {
		helper := ""
		for _, h := range helpers {
			if _, err := exec.LookPath(h); err == nil {
				helper = h
				break
			}
		}
		if helper == "" {
			return fmt.Errorf("not running as root and no escalation helper found")
		}
		cmd = exec.Command(helper, append([]string{manager}, args...)...)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", manager, err)
	}
	return nil
}
