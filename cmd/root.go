package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dno-launcher/internal/config"
	"dno-launcher/internal/launcher"
	"dno-launcher/internal/logger"

	"github.com/spf13/cobra"
)

// Flags shared by every command.
var (
	debug      bool
	noColor    bool
	projectDir string
	layoutPath string
)

// Launch flags.
var (
	port = config.DefaultPort
	mode = config.ModeMinimal
)

// printer and layout are set up in PersistentPreRunE and used by every command.
var (
	printer *logger.Printer
	layout  config.Layout
)

// errReported marks failures whose diagnostic has already been printed.
var errReported = errors.New("failure already reported")

// rootCmd starts the DNO-Oracle API server under Deno.
var rootCmd = &cobra.Command{
	Use:   "dno-launcher",
	Short: "Start the DNO-Oracle API server on Windows, Linux or macOS",
	Long: `dno-launcher checks that Deno is installed, that the project files the
server needs are present, resolves the listening port, and then runs the
selected server entry file under Deno until it exits or Ctrl+C is pressed.`,
	Example: `  # Run on the default port (8000, or PORT from .env)
  dno-launcher

  # Run on a specific port
  dno-launcher --port 3000

  # Use the enhanced server
  dno-launcher --mode enhanced`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			logger.DisableColor()
		}
		printer = logger.New(cmd.OutOrStdout(), debug)

		abs, err := filepath.Abs(projectDir)
		if err != nil {
			return fmt.Errorf("invalid project directory %s: %w", projectDir, err)
		}
		projectDir = abs
		printer.Debug("[DEBUG] Project directory: %s\n", projectDir)

		layout, err = config.LoadLayout(layoutPath)
		if err != nil {
			return err
		}
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("port") {
			port = layout.DefaultPort
		}

		l := launcher.New(printer, layout)
		err := l.Start(cmd.Context(), launcher.Options{
			Root: projectDir,
			Port: port,
			Mode: mode,
		})
		printer.Debug("[DEBUG] Launcher finished in state %s\n", l.State())
		if err != nil {
			return fmt.Errorf("%w: %w", errReported, err)
		}
		return nil
	},
}

// Execute runs the CLI and exits with status 1 on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			reportError(err)
		}
		os.Exit(1)
	}
}

// reportError prints errors that were not already reported, such as bad flags.
func reportError(err error) {
	p := printer
	if p == nil {
		p = logger.New(os.Stderr, false)
	}
	p.Error("[ERROR] %v\n", err)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "d", ".", "Project root containing .env, config/ and api/")
	rootCmd.PersistentFlags().StringVarP(&layoutPath, "config", "c", "", "Optional YAML file overriding the project layout")

	rootCmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "Port to run the server on")
	rootCmd.Flags().VarP(&mode, "mode", "m", "Execution mode")

	rootCmd.AddCommand(verifyCmd)
}
