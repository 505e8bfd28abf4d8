package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Mode selects which server entry file is launched.
// It implements pflag.Value so cobra rejects unknown modes while parsing flags.
type Mode string

const (
	ModeMinimal  Mode = "minimal"
	ModeEnhanced Mode = "enhanced"
)

// Modes lists every accepted execution mode in help-text order.
var Modes = []Mode{ModeMinimal, ModeEnhanced}

// ParseMode converts s into a Mode, rejecting anything outside Modes.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q (choose from %s)", s, strings.Join(modeNames(), ", "))
}

func (m *Mode) String() string { return string(*m) }

func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *Mode) Type() string { return strings.Join(modeNames(), "|") }

func modeNames() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return names
}

// Layout describes where the launcher finds the runtime and the server's files.
// All file paths are relative to the project root.
type Layout struct {
	Runtime      string `yaml:"runtime"`       // Executable name looked up on PATH, e.g. "deno"
	EnvFile      string `yaml:"env_file"`      // KEY=VALUE file holding PORT=...
	EnvTemplate  string `yaml:"env_template"`  // Copied to EnvFile when EnvFile is missing
	EntitiesFile string `yaml:"entities_file"` // Entity configuration JSON, existence-checked
	ServerDir    string `yaml:"server_dir"`    // Directory holding the server entry files
	ServerPrefix string `yaml:"server_prefix"` // Entry file name prefix, e.g. "server-"
	ServerExt    string `yaml:"server_ext"`    // Entry file extension, e.g. ".ts"
	DefaultPort  int    `yaml:"default_port"`  // Port used when neither --port nor the environment file set one
}

// DefaultLayout is the layout of a stock DNO-Oracle checkout.
func DefaultLayout() Layout {
	return Layout{
		Runtime:      "deno",
		EnvFile:      ".env",
		EnvTemplate:  ".env.example",
		EntitiesFile: filepath.Join("config", "entities.json"),
		ServerDir:    "api",
		ServerPrefix: "server-",
		ServerExt:    ".ts",
		DefaultPort:  DefaultPort,
	}
}

// ServerEntry returns the entry file for mode, relative to the project root.
func (l Layout) ServerEntry(mode Mode) string {
	return filepath.Join(l.ServerDir, l.ServerPrefix+string(mode)+l.ServerExt)
}

// Abs joins a layout-relative path onto root. Absolute paths are kept as is.
func Abs(root, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(root, rel)
}
