// Package osutils holds small OS helpers shared by the resolvers.
package osutils

import (
	"os/exec"
	"strings"
)

// RunCommand runs the named program, waits for it to finish, and returns
// its standard output split into lines. The process window is hidden on
// Windows so diagnostic commands never flash a console.
func RunCommand(name string, args ...string) ([]string, error) {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = sysProcAttr()
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	out := strings.ReplaceAll(string(output), "\r\n", "\n")
	return strings.Split(out, "\n"), nil
}
