package platform

import "strings"

// OSFamily is the coarse operating system classification the launcher works with.
type OSFamily string

const (
	Windows OSFamily = "Windows"
	MacOS   OSFamily = "macOS"
	Linux   OSFamily = "Linux"
	Unknown OSFamily = "Unknown"
)

// Detect maps a reported OS name to an OSFamily. It accepts both Go's GOOS
// values ("windows", "darwin", "linux") and the display names returned by
// uname-style probes ("Windows", "Darwin", "Linux"). Anything else is Unknown.
func Detect(name string) OSFamily {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows":
		return Windows
	case "darwin", "macos":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}
