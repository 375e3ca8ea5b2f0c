// Package exporters handles displaying bookmark results and saving them to
// JSON files.
package exporters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/savioxavier/termlink"

	"github.com/MattThePerson/bookmarks-getter/internal/types"
	"github.com/MattThePerson/bookmarks-getter/internal/utils/formatters"
)

// DisplayBookmarks formats and displays a bookmark list. It takes the
// command-line flags, the bookmarks to display, and a formatting function to
// convert them into a JSON string. When quiet mode is enabled the output is
// plain JSON for piping to jq; otherwise it is colorized.
func DisplayBookmarks(sc types.CliFlags, bookmarks []types.Bookmark, formatBookmarksFunc func([]types.Bookmark) (string, error)) error {
	jsonResults, err := formatBookmarksFunc(bookmarks)
	if err != nil {
		return fmt.Errorf("error while attempting to format bookmarks: %w", err)
	}

	if sc.Quiet {
		formatters.PrintJson(jsonResults)
		return nil
	}

	return formatters.PrintPrettyJson(jsonResults)
}

// SaveBookmarksToJson saves a bookmark list as a JSON file in the specified
// directory, creating the directory when needed. The open and
// ensure-directory functions are injectable for tests. Returns the full file
// path written, or an error if any step fails.
func SaveBookmarksToJson(dir, filename string, bookmarks []types.Bookmark, openFileFunc func(name string, flag int, perm os.FileMode) (*os.File, error), ensureDirExistsFunc func(string) error) (string, error) {
	if err := ensureDirExistsFunc(dir); err != nil {
		return "", err
	}

	fullPath := filepath.Join(dir, filename)

	file, err := openFileFunc(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	defer file.Close()

	jsonData, err := formatters.FormatBookmarksAsJson(bookmarks)
	if err != nil {
		return "", err
	}

	if _, err := file.WriteString(jsonData); err != nil {
		return "", fmt.Errorf("error saving file: %s - %w", fullPath, err)
	}

	return fullPath, nil
}

// SavedFileLink returns a terminal hyperlink for a saved file path, used in
// spinner stop messages.
func SavedFileLink(path string) string {
	return termlink.ColorLink(path, path, "green")
}
