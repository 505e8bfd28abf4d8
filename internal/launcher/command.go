package launcher

import (
	"strconv"
	"strings"

	"dno-launcher/internal/config"
)

// Permissions are the capability grants passed to the runtime, in order:
// network, filesystem read, environment variables, foreign function interface.
var Permissions = []string{
	"--allow-net",
	"--allow-read",
	"--allow-env",
	"--allow-ffi",
}

// RunSubcommand is the runtime subcommand that executes a script.
const RunSubcommand = "run"

// Command is a fully resolved child process invocation.
type Command struct {
	Name string   // Runtime name as shown to the user, e.g. "deno"
	Path string   // Resolved executable path
	Args []string // Arguments after the executable
	Dir  string   // Working directory of the child
	Env  []string // Full child environment; nil inherits the launcher's
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// BuildArgs returns the fixed argument list for launching mode.
func BuildArgs(layout config.Layout, mode config.Mode) []string {
	args := make([]string, 0, len(Permissions)+2)
	args = append(args, RunSubcommand)
	args = append(args, Permissions...)
	return append(args, layout.ServerEntry(mode))
}

// ChildEnv returns the child's environment. PORT is only injected when the
// resolved port differs from serverPort, the port the server would pick from
// its environment file on its own; otherwise nil is returned and the child
// inherits base unchanged.
func ChildEnv(base []string, port, serverPort int) []string {
	if port == serverPort {
		return nil
	}
	env := make([]string, 0, len(base)+1)
	env = append(env, base...)
	return append(env, config.PortKey+"="+strconv.Itoa(port))
}
