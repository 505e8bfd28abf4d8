package launcher_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"

	"dno-launcher/internal/launcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test. It is the child process spawned by the
// runner tests: it echoes PORT and exits with HELPER_EXIT_CODE.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	_, _ = os.Stdout.WriteString("port=" + os.Getenv("PORT") + "\n")
	code, _ := strconv.Atoi(os.Getenv("HELPER_EXIT_CODE"))
	os.Exit(code)
}

func helperCommand(exitCode int) launcher.Command {
	return launcher.Command{
		Name: "helper",
		Path: os.Args[0],
		Args: []string{"-test.run=TestHelperProcess"},
		Env: append(os.Environ(),
			"GO_WANT_HELPER_PROCESS=1",
			"HELPER_EXIT_CODE="+strconv.Itoa(exitCode),
			"PORT=3000",
		),
	}
}

func TestExecRunner_Success(t *testing.T) {
	var out bytes.Buffer
	r := &launcher.ExecRunner{Stdout: &out, Stderr: &out}

	err := r.Run(context.Background(), helperCommand(0))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "port=3000")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	var out bytes.Buffer
	r := &launcher.ExecRunner{Stdout: &out, Stderr: &out}

	err := r.Run(context.Background(), helperCommand(3))

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExecRunner_StartFailure(t *testing.T) {
	r := &launcher.ExecRunner{}

	err := r.Run(context.Background(), launcher.Command{
		Name: "deno",
		Path: filepath.Join(t.TempDir(), "missing", "deno"),
	})

	require.Error(t, err)
	var exitErr *exec.ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.False(t, errors.Is(err, launcher.ErrInterrupted))
}
