package main

import (
	"dno-launcher/cmd"
)

// main delegates to cmd.Execute, which parses flags and runs the launcher.
//
// dno-launcher is the cross-platform start script of the DNO-Oracle API server:
//   - Detects the host platform and checks that Deno is on the PATH, printing
//     per-platform install instructions when it is not
//   - Creates .env from .env.example on first run, then checks that the entity
//     configuration and the selected server entry file exist
//   - Resolves the listening port from --port or the PORT line of .env
//   - Runs `deno run` with the server's fixed permission flags and waits for it,
//     treating Ctrl+C as a normal way to stop
//
// Any failed check exits with status 1 before the server is started.
func main() {
	cmd.Execute()
}
