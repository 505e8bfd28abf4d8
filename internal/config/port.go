package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultPort is the built-in port used when neither the CLI, the layout
	// file nor the environment file set one.
	DefaultPort = 8000
	MinPort     = 1
	MaxPort     = 65535

	// PortKey is the environment file key and the variable handed to the server.
	PortKey = "PORT"
)

// ValidatePort rejects ports outside [MinPort, MaxPort].
func ValidatePort(port int) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("port must be between %d and %d, got %d", MinPort, MaxPort, port)
	}
	return nil
}

// ResolveConfiguredPort scans the environment file for the first line starting
// with "PORT=" and returns its value. Any failure (missing file, read error,
// missing key, non-numeric value) yields fallback.
func ResolveConfiguredPort(envPath string, fallback int) int {
	f, err := os.Open(envPath)
	if err != nil {
		return fallback
	}
	defer f.Close()

	prefix := PortKey + "="
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		// Only the text up to a second '=' counts as the value.
		value, _, _ := strings.Cut(strings.TrimPrefix(line, prefix), "=")
		value = strings.TrimSpace(value)
		if !isDigits(value) {
			return fallback
		}
		port, err := strconv.Atoi(value)
		if err != nil {
			return fallback
		}
		return port
	}
	return fallback
}

// ResolvePort applies the launcher's precedence between the CLI port and the
// port read from the environment file. The CLI port wins unless it equals
// defaultPort, in which case a different configured port takes over. This means
// `--port 8000` cannot override a non-default PORT in the environment file.
// The second return value reports whether the configured port was chosen.
func ResolvePort(cliPort, configuredPort, defaultPort int) (int, bool) {
	if cliPort == defaultPort && configuredPort != defaultPort {
		return configuredPort, true
	}
	return cliPort, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
