// Package types holds the shared data records for bookmarks-getter: the
// flattened Bookmark record, the closed browser-family enumeration, and the
// CLI flag container.
package types

import (
	"fmt"
	"strings"
)

// cli related.

// CliFlags defines the structure for command-line flags, including the browser
// and profile selection, the WSL local app data root, the folder, domain and
// sort query options, and the display and save output options.
type CliFlags struct {
	Browser         string
	Profile         string
	LocalAppData    string
	Folder          string
	Domains         []string
	SortBy          string
	Reverse         bool
	DisplayResults  bool
	SaveResults     bool
	OutputDirectory string
	OutputFilename  string
	Quiet           bool
}

// end cli related.

// bookmark related.

// Bookmark is a single flattened bookmark entry. Location is the "/"-joined
// chain of ancestor folder names from the bookmark bar down to the entry,
// empty at the top level. The timestamp fields hold human-readable
// "YYYY-MM-DD HH:MM:SS" strings; DateModified is empty when the source node
// carries none. Fields are JSON-tagged with the source schema's key names.
type Bookmark struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Url          string `json:"url"`
	Location     string `json:"location"`
	DateAdded    string `json:"date_added"`
	DateLastUsed string `json:"date_last_used"`
	DateModified string `json:"date_modified,omitempty"`
}

// BrowserFamily is the closed classification of supported browser engines.
type BrowserFamily int

const (
	// FamilyChrome covers the Chromium-based browsers (Chrome, Chromium,
	// Brave, Edge); they all share the same bookmarks JSON schema and path
	// conventions.
	FamilyChrome BrowserFamily = iota
	// FamilyFirefox covers the Gecko-based browsers; recognized but not
	// supported.
	FamilyFirefox
)

// String returns the family name for error messages.
func (f BrowserFamily) String() string {
	switch f {
	case FamilyChrome:
		return "chrome"
	case FamilyFirefox:
		return "firefox"
	default:
		return fmt.Sprintf("BrowserFamily(%d)", int(f))
	}
}

// ParseBrowserFamily classifies a browser name (case-insensitive) into its
// family. Unrecognized names return an error naming the offending input.
func ParseBrowserFamily(browser string) (BrowserFamily, error) {
	switch strings.ToLower(browser) {
	case "chrome", "chromium", "brave", "bravesoftware", "edge":
		return FamilyChrome, nil
	case "firefox", "waterfox", "librewolf":
		return FamilyFirefox, nil
	default:
		return 0, fmt.Errorf("unknown browser family for: %q", browser)
	}
}

// end bookmark related.
