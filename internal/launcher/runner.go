package launcher

import (
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"time"
)

// interruptGrace is how long Run keeps catching interrupts after the child
// was killed by one.
const interruptGrace = 250 * time.Millisecond

// Runner starts a child process and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

// ExecRunner runs the child with os/exec, sharing the launcher's terminal.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner wires the child to the launcher's own standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts c and waits for it. While the child runs, an interrupt delivered to
// the launcher is caught instead of terminating it; the terminal delivers the
// same interrupt to the child, and the child decides how to shut down. If an
// interrupt arrived, or the child itself died from one, Run returns
// ErrInterrupted once the child is gone.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	if err := cmd.Start(); err != nil {
		return err
	}
	err := cmd.Wait()

	if interruptedBy(err) {
		// The terminal's copy of the interrupt may still be on its way to us.
		select {
		case <-sigs:
		case <-time.After(interruptGrace):
		}
		return ErrInterrupted
	}

	select {
	case <-sigs:
		return ErrInterrupted
	default:
		return err
	}
}
