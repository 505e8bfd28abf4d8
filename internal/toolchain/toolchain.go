package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// versionTimeout bounds the `<runtime> --version` probe.
const versionTimeout = 10 * time.Second

// LookPathFunc resolves an executable name against the search path.
// exec.LookPath is the production implementation.
type LookPathFunc func(name string) (string, error)

// Runtime describes the external interpreter the server runs on.
type Runtime struct {
	Name     string
	lookPath LookPathFunc
}

// New returns a Runtime for name. A nil lookPath means exec.LookPath.
func New(name string, lookPath LookPathFunc) *Runtime {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &Runtime{Name: name, lookPath: lookPath}
}

// Available reports whether the runtime is on the search path.
// Lookup failures are reported as false, never as an error.
func (r *Runtime) Available() bool {
	_, err := r.lookPath(r.Name)
	return err == nil
}

// Path returns the resolved executable path, or "" when it cannot be found.
func (r *Runtime) Path() string {
	p, err := r.lookPath(r.Name)
	if err != nil {
		return ""
	}
	return p
}

// Version runs `<runtime> --version` and returns the first line of its output.
func (r *Runtime) Version(ctx context.Context) (string, error) {
	path := r.Path()
	if path == "" {
		return "", fmt.Errorf("%s not found on PATH", r.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to run %s --version: %w", r.Name, err)
	}
	return FirstLine(output), nil
}

// FirstLine returns the first non-empty line of output, trimmed.
func FirstLine(output []byte) string {
	for _, line := range bytes.Split(output, []byte("\n")) {
		if s := strings.TrimSpace(string(line)); s != "" {
			return s
		}
	}
	return ""
}
