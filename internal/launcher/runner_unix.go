//go:build unix

package launcher

import (
	"errors"
	"os/exec"
	"syscall"
)

// interruptedBy reports whether err is the child being terminated by SIGINT.
func interruptedBy(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	return ok && ws.Signaled() && ws.Signal() == syscall.SIGINT
}
