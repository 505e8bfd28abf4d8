package toolchain_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"dno-launcher/internal/toolchain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	found := toolchain.New("deno", func(name string) (string, error) {
		return "/usr/local/bin/" + name, nil
	})
	assert.True(t, found.Available())
	assert.Equal(t, "/usr/local/bin/deno", found.Path())

	missing := toolchain.New("deno", func(string) (string, error) {
		return "", exec.ErrNotFound
	})
	assert.False(t, missing.Available())
	assert.Empty(t, missing.Path())
}

func TestVersion_MissingRuntime(t *testing.T) {
	r := toolchain.New("deno", func(string) (string, error) {
		return "", errors.New("not found")
	})

	_, err := r.Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deno not found")
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Deno banner", "deno 1.44.0 (release, x86_64-unknown-linux-gnu)\nv8 12.4\ntypescript 5.4.5\n", "deno 1.44.0 (release, x86_64-unknown-linux-gnu)"},
		{"Leading blank", "\n  v1.2.3  \n", "v1.2.3"},
		{"CRLF", "deno 2.0.0\r\nv8\r\n", "deno 2.0.0"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toolchain.FirstLine([]byte(tt.in)))
		})
	}
}
