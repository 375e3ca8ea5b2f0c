// Package parsers reads bookmark files into flat Bookmark lists: the
// Chromium JSON format used by live browser profiles, and the Netscape HTML
// format produced by the bookmark manager's export.
package parsers

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MattThePerson/bookmarks-getter/internal/types"
)

// Node types in the Chromium bookmarks schema. Anything else (e.g. the
// meta_info blobs some builds emit) is skipped without recursion.
const (
	nodeTypeURL    = "url"
	nodeTypeFolder = "folder"
)

// chromeNode is one entry in the Chromium bookmarks tree. Unknown keys in
// the source are dropped by the decoder.
type chromeNode struct {
	Id           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Url          string       `json:"url"`
	DateAdded    string       `json:"date_added"`
	DateLastUsed string       `json:"date_last_used"`
	DateModified string       `json:"date_modified"`
	Children     []chromeNode `json:"children"`
}

// chromeFile is the top of the Chromium bookmarks schema. Pointers
// distinguish a missing level from an empty one.
type chromeFile struct {
	Roots struct {
		BookmarkBar *struct {
			Children []chromeNode `json:"children"`
		} `json:"bookmark_bar"`
	} `json:"roots"`
}

// readFile reads the bookmarks file; tests may override.
var readFile = os.ReadFile

// ReadChromeBookmarks loads a Chromium bookmarks file and flattens its
// bookmark-bar folder hierarchy into an ordered list. Traversal is
// depth-first in source order, so the returned order is the browser's own
// child order before any explicit sort.
func ReadChromeBookmarks(path string) ([]types.Bookmark, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read bookmarks file %q: %w", path, err)
	}

	var file chromeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse bookmarks file %q: %w", path, err)
	}
	if file.Roots.BookmarkBar == nil || file.Roots.BookmarkBar.Children == nil {
		return nil, fmt.Errorf("bookmarks file %q is missing roots.bookmark_bar.children", path)
	}

	return flattenChromeNodes(file.Roots.BookmarkBar.Children, "")
}

// flattenChromeNodes walks a children array depth-first. Url nodes are
// emitted tagged with the folder location accumulated so far; folder nodes
// recurse with the location extended by their own name.
func flattenChromeNodes(nodes []chromeNode, location string) ([]types.Bookmark, error) {
	var bookmarks []types.Bookmark
	for _, node := range nodes {
		switch node.Type {
		case nodeTypeURL:
			bm, err := bookmarkFromChromeNode(node, location)
			if err != nil {
				return nil, err
			}
			bookmarks = append(bookmarks, bm)
		case nodeTypeFolder:
			childLocation := node.Name
			if location != "" {
				childLocation = location + "/" + node.Name
			}
			children, err := flattenChromeNodes(node.Children, childLocation)
			if err != nil {
				return nil, err
			}
			bookmarks = append(bookmarks, children...)
		}
	}
	return bookmarks, nil
}

// bookmarkFromChromeNode builds a Bookmark record from a url node,
// converting its timestamps to readable form. A url node missing any
// required field cannot be constructed.
func bookmarkFromChromeNode(node chromeNode, location string) (types.Bookmark, error) {
	if err := requireFields(node); err != nil {
		return types.Bookmark{}, fmt.Errorf("cannot construct bookmark record: %w", err)
	}

	dateAdded, err := WindowsEpochReadable(node.DateAdded)
	if err != nil {
		return types.Bookmark{}, fmt.Errorf("cannot construct bookmark record %q: %w", node.Name, err)
	}
	dateLastUsed, err := WindowsEpochReadable(node.DateLastUsed)
	if err != nil {
		return types.Bookmark{}, fmt.Errorf("cannot construct bookmark record %q: %w", node.Name, err)
	}
	dateModified := ""
	if node.DateModified != "" {
		dateModified, err = WindowsEpochReadable(node.DateModified)
		if err != nil {
			return types.Bookmark{}, fmt.Errorf("cannot construct bookmark record %q: %w", node.Name, err)
		}
	}

	return types.Bookmark{
		Id:           node.Id,
		Name:         node.Name,
		Type:         node.Type,
		Url:          node.Url,
		Location:     location,
		DateAdded:    dateAdded,
		DateLastUsed: dateLastUsed,
		DateModified: dateModified,
	}, nil
}

// requireFields checks that a url node carries every required source field.
// An empty value counts as missing.
func requireFields(node chromeNode) error {
	required := []struct {
		key   string
		value string
	}{
		{"id", node.Id},
		{"name", node.Name},
		{"url", node.Url},
		{"date_added", node.DateAdded},
		{"date_last_used", node.DateLastUsed},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("url node is missing required field %q", f.key)
		}
	}
	return nil
}

// Seconds between the 1601-01-01 epoch used by Chromium timestamps and the
// Unix epoch.
const windowsToUnixEpochSeconds = 11644473600

// readableFormat is the human-readable timestamp layout used throughout.
const readableFormat = "2006-01-02 15:04:05"

// WindowsEpochReadable converts a Chromium timestamp (an integer-valued
// string of microseconds since 1601-01-01T00:00:00 UTC) to a readable
// "YYYY-MM-DD HH:MM:SS" string, truncating sub-second precision.
func WindowsEpochReadable(us string) (string, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(us), 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp %q: %w", us, err)
	}
	t := time.Unix(n/1_000_000-windowsToUnixEpochSeconds, 0).UTC()
	return t.Format(readableFormat), nil
}

// UnixEpochReadable converts a Unix-seconds timestamp string (as found in
// Netscape export ADD_DATE attributes) to the same readable form.
func UnixEpochReadable(sec string) (string, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(sec), 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp %q: %w", sec, err)
	}
	return time.Unix(n, 0).UTC().Format(readableFormat), nil
}
