//go:build windows

package launcher

import (
	"errors"
	"os/exec"
)

// statusControlCExit is the exit code of a console process closed by Ctrl+C.
const statusControlCExit = 0xC000013A

// interruptedBy reports whether err is the child exiting because of Ctrl+C.
func interruptedBy(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	return uint32(exitErr.ExitCode()) == statusControlCExit
}
