package domain

// Platform is the operating system family kiln is running on.
type Platform uint8

const (
	// PlatformUnknown is any operating system kiln has no profile for.
	PlatformUnknown Platform = iota
	// PlatformLinux is Linux.
	PlatformLinux
	// PlatformMacOS is macOS.
	PlatformMacOS
	// PlatformWindows is Windows.
	PlatformWindows
)

// PlatformFromGOOS maps a runtime.GOOS value onto a Platform.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformMacOS:
		return "macos"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}
