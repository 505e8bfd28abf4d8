package launcher_test

import (
	"path/filepath"
	"testing"

	"dno-launcher/internal/config"
	"dno-launcher/internal/launcher"

	"github.com/stretchr/testify/assert"
)

func TestBuildArgs(t *testing.T) {
	args := launcher.BuildArgs(config.DefaultLayout(), config.ModeMinimal)
	assert.Equal(t, []string{
		"run", "--allow-net", "--allow-read", "--allow-env", "--allow-ffi",
		filepath.Join("api", "server-minimal.ts"),
	}, args)
}

func TestChildEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin"}

	assert.Nil(t, launcher.ChildEnv(base, 3000, 3000))
	assert.Equal(t, []string{"PATH=/usr/bin", "PORT=9090"}, launcher.ChildEnv(base, 9090, 3000))
	assert.Equal(t, []string{"PATH=/usr/bin"}, base, "base must not be modified")
}

func TestCommand_String(t *testing.T) {
	c := launcher.Command{Name: "deno", Path: "/opt/deno/bin/deno", Args: []string{"run", "--allow-net", "main.ts"}}
	assert.Equal(t, "deno run --allow-net main.ts", c.String())
}

func TestState(t *testing.T) {
	assert.Equal(t, "running", launcher.StateRunning.String())
	assert.Equal(t, "aborted", launcher.StateAborted.String())
	assert.Equal(t, "unknown", launcher.State(99).String())
}
