package platform_test

import (
	"bytes"
	"testing"

	"dno-launcher/internal/logger"
	"dno-launcher/internal/platform"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want platform.OSFamily
	}{
		{"GOOS windows", "windows", platform.Windows},
		{"Display Windows", "Windows", platform.Windows},
		{"GOOS darwin", "darwin", platform.MacOS},
		{"Display Darwin", "Darwin", platform.MacOS},
		{"GOOS linux", "linux", platform.Linux},
		{"Display Linux", "Linux", platform.Linux},
		{"FreeBSD", "freebsd", platform.Unknown},
		{"Plan9", "plan9", platform.Unknown},
		{"Empty", "", platform.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.Detect(tt.in))
		})
	}
}

func TestInstallInstructions(t *testing.T) {
	assert.NotEmpty(t, platform.InstallInstructions(platform.Windows))
	assert.NotEmpty(t, platform.InstallInstructions(platform.Linux))
	assert.NotEmpty(t, platform.InstallInstructions(platform.MacOS))
	assert.Empty(t, platform.InstallInstructions(platform.Unknown))
}

func TestReportInstallInstructions(t *testing.T) {
	logger.DisableColor()

	var buf bytes.Buffer
	platform.ReportInstallInstructions(logger.New(&buf, false), platform.MacOS, "deno")

	out := buf.String()
	assert.Contains(t, out, "deno is not installed")
	assert.Contains(t, out, "brew install deno")
	assert.NotContains(t, out, "winget install deno")
	assert.Contains(t, out, platform.InstallDocsURL)
}

func TestReportInstallInstructions_Unknown(t *testing.T) {
	logger.DisableColor()

	var buf bytes.Buffer
	platform.ReportInstallInstructions(logger.New(&buf, false), platform.Unknown, "deno")

	assert.Contains(t, buf.String(), platform.InstallDocsURL)
	assert.NotContains(t, buf.String(), "brew")
}

func TestReportInstallInstructions_OtherRuntime(t *testing.T) {
	logger.DisableColor()

	var buf bytes.Buffer
	platform.ReportInstallInstructions(logger.New(&buf, false), platform.Linux, "bun")

	assert.Equal(t, "[ERROR] bun is not installed or not on the PATH\n", buf.String())
}
