package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"dno-launcher/internal/config"
	"dno-launcher/internal/logger"
	"dno-launcher/internal/platform"
	"dno-launcher/internal/toolchain"
)

// Options are the per-invocation inputs of a launch.
type Options struct {
	Root string      // Project root; layout paths are relative to it
	Port int         // Port requested on the command line, or the layout's default port
	Mode config.Mode // Which server entry file to run
}

// Launcher checks the host and the project, then runs the server under the runtime.
// The exported fields are the launcher's view of the outside world and default
// to the real host in New; tests replace them.
type Launcher struct {
	GOOS     string
	LookPath toolchain.LookPathFunc
	Runner   Runner
	Environ  func() []string

	printer *logger.Printer
	layout  config.Layout
	state   State
}

// New returns a Launcher for layout that reports through p.
func New(p *logger.Printer, layout config.Layout) *Launcher {
	return &Launcher{
		GOOS:     runtime.GOOS,
		LookPath: exec.LookPath,
		Runner:   NewExecRunner(),
		Environ:  os.Environ,
		printer:  p,
		layout:   layout,
		state:    StateStart,
	}
}

// State returns where the last Start call stopped.
func (l *Launcher) State() State {
	return l.state
}

// Start runs the whole launch sequence: platform detection, runtime check,
// configuration bootstrap and validation, port resolution, and finally the
// server itself. It blocks until the server exits. A nil error means the server
// ran and exited, or the user interrupted it.
func (l *Launcher) Start(ctx context.Context, opts Options) error {
	l.state = StateStart
	p := l.printer

	if err := config.ValidatePort(opts.Port); err != nil {
		return l.abort(ErrPortOutOfRange, err.Error())
	}

	showBanner(p)

	family := platform.Detect(l.GOOS)
	l.state = StatePlatformDetected
	p.Step("[INFO] Detected operating system: %s\n", family)

	rt, err := l.verifyRuntime(ctx, family)
	if err != nil {
		return err
	}

	if err := l.verifyConfiguration(opts); err != nil {
		return err
	}

	envPath := config.Abs(opts.Root, l.layout.EnvFile)
	defaultPort := l.layout.DefaultPort
	configuredPort := config.ResolveConfiguredPort(envPath, defaultPort)
	// The port the server picks by itself: its environment file, else its built-in default.
	serverPort := config.ResolveConfiguredPort(envPath, config.DefaultPort)
	port, fromFile := config.ResolvePort(opts.Port, configuredPort, defaultPort)
	if fromFile {
		p.Step("[INFO] Using port from %s: %d\n", l.layout.EnvFile, port)
	} else if opts.Port == defaultPort && configuredPort == defaultPort {
		p.Debug("[DEBUG] No port override in %s, using default %d\n", l.layout.EnvFile, port)
	} else {
		p.Debug("[DEBUG] CLI port %d takes precedence over %s port %d\n", port, l.layout.EnvFile, configuredPort)
	}
	if err := config.ValidatePort(port); err != nil {
		return l.abort(ErrPortOutOfRange, fmt.Sprintf("%s in %s", err, l.layout.EnvFile))
	}

	cmd := Command{
		Name: rt.Name,
		Path: rt.Path(),
		Args: BuildArgs(l.layout, opts.Mode),
		Dir:  opts.Root,
		Env:  ChildEnv(l.Environ(), port, serverPort),
	}

	p.Step("[INFO] Starting DNO-Oracle server...\n")
	p.Step("   File: %s\n", l.layout.ServerEntry(opts.Mode))
	p.Step("   Port: %d\n", port)
	p.Step("   Platform: %s\n", family)
	p.Blank()
	p.Step("[INFO] Running command:\n")
	p.Hint("   %s\n", cmd)
	if cmd.Env != nil {
		p.Debug("[DEBUG] Passing %s=%d to the server environment\n", config.PortKey, port)
	}
	p.Blank()
	p.Hint("Press Ctrl+C to stop the server\n")
	p.Blank()

	return l.run(ctx, cmd)
}

func (l *Launcher) verifyRuntime(ctx context.Context, family platform.OSFamily) (*toolchain.Runtime, error) {
	p := l.printer
	rt := toolchain.New(l.layout.Runtime, l.LookPath)

	p.Step("[INFO] Checking %s installation...\n", rt.Name)
	if !rt.Available() {
		platform.ReportInstallInstructions(p, family, rt.Name)
		return nil, l.abort(ErrRuntimeNotFound, fmt.Sprintf("%s is required to run the server", rt.Name))
	}

	if version, err := rt.Version(ctx); err != nil {
		p.Warn("   [WARN] Could not determine %s version: %v\n", rt.Name, err)
	} else {
		p.Info("   %s\n", version)
	}

	l.state = StateRuntimeVerified
	return rt, nil
}

func (l *Launcher) verifyConfiguration(opts Options) error {
	p := l.printer
	p.Step("[INFO] Checking configuration...\n")

	envMissing := !config.Exists(opts.Root, l.layout.EnvFile)
	if envMissing {
		p.Warn("[WARN] %s not found\n", l.layout.EnvFile)
		p.Step("   Copying from %s...\n", l.layout.EnvTemplate)
	}

	created, err := config.EnsureDefaultFiles(opts.Root, l.layout)
	if err != nil {
		p.Error("   [ERROR] %v\n", err)
	}
	for _, path := range created {
		p.Info("   Created %s from %s\n", path, l.layout.EnvTemplate)
	}
	if envMissing && len(created) == 0 && err == nil {
		p.Error("   [ERROR] %s not found\n", l.layout.EnvTemplate)
	}

	v := config.Validate(opts.Root, l.layout, opts.Mode)
	for _, m := range v.Missing {
		if m.Path == l.layout.EnvFile {
			// Already reported above.
			continue
		}
		p.Error("[ERROR] %s %s not found\n", m.Name, m.Path)
	}
	if !v.Valid() {
		return l.abort(ErrConfigurationInvalid, "configuration incomplete, check the files listed above")
	}

	p.Info("   Configuration valid\n")
	l.state = StateConfigValidated
	return nil
}

func (l *Launcher) run(ctx context.Context, cmd Command) error {
	p := l.printer
	l.state = StateRunning

	err := l.Runner.Run(ctx, cmd)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		l.state = StateExited
		return nil
	case errors.Is(err, ErrInterrupted):
		l.state = StateInterrupted
		p.Blank()
		p.Hint("Server stopped by user\n")
		return nil
	case errors.As(err, &exitErr):
		l.state = StateExited
		p.Warn("[WARN] Server exited with status %d\n", exitErr.ExitCode())
		return nil
	default:
		return l.abort(ErrSpawnFailure, err.Error())
	}
}

// abort records the terminal Aborted state, prints msg and returns kind wrapped.
func (l *Launcher) abort(kind error, msg string) error {
	l.state = StateAborted
	l.printer.Error("[ERROR] %s\n", msg)
	return fmt.Errorf("%w: %s", kind, msg)
}

func showBanner(p *logger.Printer) {
	p.Blank()
	p.Plain("DNO-Oracle API Server\n")
	p.Plain("=====================\n")
	p.Blank()
}
