// Package platform classifies the running environment as native Windows,
// WSL, native Linux, or unknown. The classification is a pure read of the
// OS identity; nothing here has side effects.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Platform identifies the operating environment the process runs in.
type Platform int

const (
	// Unknown is any environment this tool does not support (e.g. macOS).
	Unknown Platform = iota
	// Windows is a native Windows environment.
	Windows
	// WSL is a Linux environment hosted by Windows (Windows Subsystem for
	// Linux), with the Windows filesystem mounted under /mnt.
	WSL
	// Linux is a native Linux environment (not WSL).
	Linux
)

// String returns the platform name for error messages.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case WSL:
		return "wsl"
	case Linux:
		return "linux"
	default:
		return "unknown"
	}
}

// kernelOSRelease reports the kernel identification string on Linux systems;
// tests may override to simulate WSL and non-WSL kernels.
var kernelOSRelease = func() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return ""
	}
	return string(data)
}

// isWSLKernel reports whether a kernel release string identifies a
// Windows-hosted kernel. WSL kernels carry a "microsoft" vendor marker
// (e.g. "5.15.167.4-microsoft-standard-WSL2"); the match is case-insensitive.
func isWSLKernel(release string) bool {
	return strings.Contains(strings.ToLower(release), "microsoft")
}

// Detect classifies the current operating environment. Linux is split into
// WSL and native Linux by inspecting the kernel release string; anything
// other than Windows or Linux is Unknown.
func Detect() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "linux":
		if isWSLKernel(kernelOSRelease()) {
			return WSL
		}
		return Linux
	default:
		return Unknown
	}
}
