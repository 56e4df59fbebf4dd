package types

import "runtime"

// Platform identifies the host operating system for global default lookups.
// Values match runtime.GOOS so configuration keys read naturally.
type Platform string

const (
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"

	// PlatformUnknown is any host without global default support
	PlatformUnknown Platform = ""
)

// ParsePlatform maps a GOOS-style name to a Platform.
func ParsePlatform(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}
