package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"dno-launcher/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file under root, making parent directories as needed.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEnsureDefaultFiles_CopiesTemplate(t *testing.T) {
	root := t.TempDir()
	layout := config.DefaultLayout()
	template := "PORT=3000\nUSER=scott\r\nPASSWORD=tiger\n\x00binary-safe\n"
	writeFile(t, root, layout.EnvTemplate, template)

	created, err := config.EnsureDefaultFiles(root, layout)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, ".env")}, created)

	got, err := os.ReadFile(filepath.Join(root, ".env"))
	require.NoError(t, err)
	assert.Equal(t, template, string(got))
	assert.True(t, config.Exists(root, layout.EnvFile))
}

func TestEnsureDefaultFiles_KeepsExistingEnv(t *testing.T) {
	root := t.TempDir()
	layout := config.DefaultLayout()
	writeFile(t, root, layout.EnvFile, "PORT=1234\n")
	writeFile(t, root, layout.EnvTemplate, "PORT=3000\n")

	created, err := config.EnsureDefaultFiles(root, layout)
	require.NoError(t, err)
	assert.Empty(t, created)

	got, err := os.ReadFile(filepath.Join(root, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "PORT=1234\n", string(got))
}

func TestEnsureDefaultFiles_NoTemplate(t *testing.T) {
	root := t.TempDir()
	layout := config.DefaultLayout()

	created, err := config.EnsureDefaultFiles(root, layout)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.False(t, config.Exists(root, layout.EnvFile))

	v := config.Validate(root, layout, config.ModeMinimal)
	assert.False(t, v.Valid())
	assert.Contains(t, v.Missing, config.Requirement{Name: "environment file", Path: ".env"})
}

func TestValidate(t *testing.T) {
	layout := config.DefaultLayout()

	tests := []struct {
		name        string
		files       []string
		mode        config.Mode
		wantMissing []string
	}{
		{
			name:  "All present minimal",
			files: []string{".env", "config/entities.json", "api/server-minimal.ts"},
			mode:  config.ModeMinimal,
		},
		{
			name:        "Enhanced entry missing",
			files:       []string{".env", "config/entities.json", "api/server-minimal.ts"},
			mode:        config.ModeEnhanced,
			wantMissing: []string{filepath.Join("api", "server-enhanced.ts")},
		},
		{
			name:        "Entities missing",
			files:       []string{".env", "api/server-enhanced.ts"},
			mode:        config.ModeEnhanced,
			wantMissing: []string{filepath.Join("config", "entities.json")},
		},
		{
			name:        "Nothing present",
			mode:        config.ModeMinimal,
			wantMissing: []string{".env", filepath.Join("config", "entities.json"), filepath.Join("api", "server-minimal.ts")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, f := range tt.files {
				writeFile(t, root, f, "")
			}

			v := config.Validate(root, layout, tt.mode)

			var missing []string
			for _, m := range v.Missing {
				missing = append(missing, m.Path)
			}
			assert.Equal(t, tt.wantMissing, missing)
			assert.Equal(t, len(tt.wantMissing) == 0, v.Valid())
		})
	}
}

func TestValidate_IsPure(t *testing.T) {
	root := t.TempDir()
	layout := config.DefaultLayout()
	writeFile(t, root, layout.EnvTemplate, "PORT=3000\n")

	v := config.Validate(root, layout, config.ModeMinimal)
	assert.False(t, v.Valid())
	assert.False(t, config.Exists(root, layout.EnvFile))
}
