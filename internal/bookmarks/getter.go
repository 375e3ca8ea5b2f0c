// Package bookmarks provides the Getter facade: construct once against a
// browser/profile selection, then query the live bookmarks file as often as
// needed. The file path is resolved a single time at construction; the file
// itself is re-read and re-parsed on every query, so there is no staleness
// to invalidate.
package bookmarks

import (
	"fmt"

	"github.com/MattThePerson/bookmarks-getter/internal/parsers"
	"github.com/MattThePerson/bookmarks-getter/internal/platform"
	"github.com/MattThePerson/bookmarks-getter/internal/query"
	"github.com/MattThePerson/bookmarks-getter/internal/resolvers"
	"github.com/MattThePerson/bookmarks-getter/internal/types"
)

// detectPlatform classifies the environment; tests may override.
var detectPlatform = platform.Detect

// readChromeBookmarks parses the bookmarks file; tests may override.
var readChromeBookmarks = parsers.ReadChromeBookmarks

// Getter reads bookmarks for one browser profile. Each instance owns its
// resolved file path exclusively; instances share no state.
type Getter struct {
	family types.BrowserFamily
	file   string
}

// NewGetter builds a Getter for a browser (case-insensitive name) and
// profile folder name. localAppData is the POSIX-mounted Windows local app
// data root, required only under WSL. Construction fails on an unknown
// browser, a Gecko-family browser (recognized but not implemented), an
// unsupported environment, or a bookmarks file that does not exist.
func NewGetter(browser, profile, localAppData string) (*Getter, error) {
	family, err := types.ParseBrowserFamily(browser)
	if err != nil {
		return nil, err
	}
	if family == types.FamilyFirefox {
		return nil, fmt.Errorf("firefox-family bookmarks are not implemented (browser %q)", browser)
	}

	file, err := resolvers.Resolve(detectPlatform(), browser, profile, localAppData)
	if err != nil {
		return nil, err
	}

	return &Getter{family: family, file: file}, nil
}

// File returns the resolved bookmarks file path.
func (g *Getter) File() string {
	return g.file
}

// Bookmarks re-reads the bookmarks file, flattens it, and applies the query
// options. The read is synchronous and completes or fails as a whole; no
// partial results are returned.
func (g *Getter) Bookmarks(opts query.Options) ([]types.Bookmark, error) {
	list, err := readChromeBookmarks(g.file)
	if err != nil {
		return nil, err
	}
	return query.Apply(list, opts)
}
