package cmd

import (
	"os"

	"dno-launcher/internal/verify"

	"github.com/spf13/cobra"
)

// verifyCmd checks the entity configuration and environment without starting the server.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check entity configuration and environment variables",
	Long: `Parses the entity configuration file and reports missing or inconsistent
entity definitions, then checks the variables the server reads from the
environment file. Exits with status 1 when an error is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum := verify.Run(printer, projectDir, layout, os.Environ())
		if !sum.OK() {
			return errReported
		}
		return nil
	},
}
