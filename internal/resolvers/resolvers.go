// Package resolvers turns a browser/profile selection into the absolute path
// of that browser's bookmarks file, per operating environment. Resolution is
// a one-shot pure computation followed by an existence check; there are no
// retries and no caching here (callers cache the result).
package resolvers

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MattThePerson/bookmarks-getter/internal/platform"
)

// Placeholders used by the per-browser path templates.
const (
	localAppDataMarker = "%LOCALAPPDATA%"
	profileMarker      = "BROWSER_PROFILE_NAME"
)

// ErrUnsupportedPlatform is returned when the operating environment cannot
// be classified as Windows, WSL, or Linux.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ErrLinuxNotImplemented is returned on native Linux, where no default
// bookmarks paths are implemented.
var ErrLinuxNotImplemented = errors.New("native linux path resolution is not implemented")

// ErrMissingLocalAppData is returned under WSL when the caller did not
// supply the mounted Windows local app data root.
var ErrMissingLocalAppData = errors.New("must declare local app data root when running under WSL")

// defaultPathsWindows maps a lower-cased browser name to its Windows-style
// bookmarks file template. Only browsers with a known default path are
// listed; other recognized Chromium browsers fail resolution explicitly.
var defaultPathsWindows = map[string]string{
	"chrome": localAppDataMarker + `\Google\Chrome\User Data\` + profileMarker + `\Bookmarks`,
	"brave":  localAppDataMarker + `\BraveSoftware\Brave-Browser\User Data\` + profileMarker + `\Bookmarks`,
}

// lookupEnv reads an environment variable; tests may override.
var lookupEnv = os.LookupEnv

// statFile checks a path for existence; tests may override.
var statFile = os.Stat

// windowsTemplate returns the bookmarks path template for a browser, or an
// error when the browser has no known default path.
func windowsTemplate(browser string) (string, error) {
	tmpl, ok := defaultPathsWindows[strings.ToLower(browser)]
	if !ok {
		return "", fmt.Errorf("unknown default bookmarks path for: %q", browser)
	}
	return tmpl, nil
}

// ConvertToWSLPath translates a Windows-style path to its WSL-mounted POSIX
// equivalent: a leading drive letter "X:" becomes "/mnt/x" and backslashes
// become forward slashes, with path components preserved in order. Paths
// without a drive letter only get their separators translated.
func ConvertToWSLPath(path string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	if len(p) >= 2 && p[1] == ':' && isDriveLetter(p[0]) {
		p = "/mnt/" + strings.ToLower(string(p[0])) + p[2:]
	}
	return p
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// BookmarksFilePath computes the bookmarks file path for the given
// environment without touching the filesystem.
//
// On Windows the local app data marker is substituted from the LOCALAPPDATA
// environment variable; an unset variable is an error rather than a silently
// invalid path. Under WSL the caller-supplied root is substituted instead and
// the Windows-style result is translated to its /mnt equivalent. Native Linux
// and unknown environments fail outright.
func BookmarksFilePath(plat platform.Platform, browser, profile, localAppData string) (string, error) {
	switch plat {
	case platform.Windows:
		tmpl, err := windowsTemplate(browser)
		if err != nil {
			return "", err
		}
		local, ok := lookupEnv("LOCALAPPDATA")
		if !ok || local == "" {
			return "", errors.New("LOCALAPPDATA environment variable is not set")
		}
		path := strings.Replace(tmpl, localAppDataMarker, local, 1)
		return strings.Replace(path, profileMarker, profile, 1), nil

	case platform.WSL:
		if localAppData == "" {
			return "", ErrMissingLocalAppData
		}
		tmpl, err := windowsTemplate(browser)
		if err != nil {
			return "", err
		}
		path := strings.Replace(tmpl, localAppDataMarker, localAppData, 1)
		path = strings.Replace(path, profileMarker, profile, 1)
		return ConvertToWSLPath(path), nil

	case platform.Linux:
		return "", ErrLinuxNotImplemented

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, plat)
	}
}

// Resolve computes the bookmarks file path for the given environment and
// verifies it exists. A missing file is an error naming both the profile
// and the path that was probed.
func Resolve(plat platform.Platform, browser, profile, localAppData string) (string, error) {
	path, err := BookmarksFilePath(plat, browser, profile, localAppData)
	if err != nil {
		return "", err
	}
	if _, err := statFile(path); err != nil {
		return "", fmt.Errorf("bookmarks file does not exist for profile %q (looked for %q)", profile, path)
	}
	return path, nil
}
