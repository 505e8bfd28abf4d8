package platform

import "dno-launcher/internal/logger"

// The install instructions below are for Deno only.
const (
	DenoRuntime    = "deno"
	InstallDocsURL = "https://deno.land/manual/getting_started/installation"
)

// Instruction is one way of obtaining the runtime on a given platform.
type Instruction struct {
	Method  string // e.g. "Homebrew"
	Command string // e.g. "brew install deno"
}

var instructions = map[OSFamily][]Instruction{
	Windows: {
		{Method: "PowerShell", Command: "irm https://deno.land/install.ps1 | iex"},
		{Method: "Scoop", Command: "scoop install deno"},
		{Method: "Chocolatey", Command: "choco install deno"},
		{Method: "Winget", Command: "winget install deno"},
	},
	Linux: {
		{Method: "Bash", Command: "curl -fsSL https://deno.land/install.sh | sh"},
		{Method: "Snap", Command: "sudo snap install deno"},
		{Method: "Cargo", Command: "cargo install deno --locked"},
		{Method: "Debian/Ubuntu", Command: "sudo apt install deno"},
	},
	MacOS: {
		{Method: "Homebrew", Command: "brew install deno"},
		{Method: "Bash", Command: "curl -fsSL https://deno.land/install.sh | sh"},
		{Method: "MacPorts", Command: "sudo port install deno"},
	},
}

// InstallInstructions returns the known install methods for family.
// Unknown hosts get no methods, only the documentation link.
func InstallInstructions(family OSFamily) []Instruction {
	return instructions[family]
}

// ReportInstallInstructions prints why the launch cannot continue and how to
// get the missing runtime on the detected platform. Runtimes other than Deno
// only get the not-found line.
func ReportInstallInstructions(p *logger.Printer, family OSFamily, runtimeName string) {
	p.Error("[ERROR] %s is not installed or not on the PATH\n", runtimeName)
	if runtimeName != DenoRuntime {
		return
	}
	p.Blank()
	p.Step("Installation instructions:\n")
	p.Blank()

	for i, in := range InstallInstructions(family) {
		if i > 0 {
			p.Blank()
		}
		p.Step("%s:\n", in.Method)
		p.Hint("  %s\n", in.Command)
	}

	p.Blank()
	p.Step("More information: %s\n", InstallDocsURL)
}
