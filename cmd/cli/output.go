package cli

import (
	"fmt"
	"os"

	"github.com/MattThePerson/bookmarks-getter/internal/query"
	"github.com/MattThePerson/bookmarks-getter/internal/types"
	"github.com/MattThePerson/bookmarks-getter/internal/utils"
	"github.com/MattThePerson/bookmarks-getter/internal/utils/exporters"
	"github.com/MattThePerson/bookmarks-getter/internal/utils/formatters"
	"github.com/MattThePerson/bookmarks-getter/internal/utils/spinners"
)

// spinnerI is the subset of spinner operations used by the command phases;
// tests may inject a mock.
type spinnerI interface {
	Start() error
	Stop() error
	StopFail() error
	StopFailMessage(string)
	StopMessage(string)
}

// createSpinner creates a spinner; tests may override to simulate Start() failure.
var createSpinner = func(start, stopCh, stopMsg, failCh, failMsg string) spinnerI {
	return spinners.CreateSpinner(start, stopCh, stopMsg, failCh, failMsg)
}

// formatBookmarksFunc is used when displaying results; tests may override.
var formatBookmarksFunc = formatters.FormatBookmarksAsJson

// saveBookmarksFunc saves bookmarks to disk; tests may override to simulate save failure.
var saveBookmarksFunc = exporters.SaveBookmarksToJson

// runPhase runs fn wrapped in a progress spinner unless quiet mode is
// enabled. On failure the spinner reports the error and the error is
// returned unchanged.
func runPhase(quiet bool, startMessage, stopMessage, failMessage string, fn func() (string, error)) error {
	if quiet {
		_, err := fn()
		return err
	}

	spinner := createSpinner(startMessage, "✓", stopMessage, "✗", failMessage)
	if err := spinner.Start(); err != nil {
		return fmt.Errorf("failed to start spinner: %w", err)
	}
	finalMessage, err := fn()
	if err != nil {
		spinner.StopFailMessage(fmt.Sprintf("%s: %v", failMessage, err))
		if stopErr := spinner.StopFail(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
		}
		return err
	}
	if finalMessage != "" {
		spinner.StopMessage(finalMessage)
	}
	if stopErr := spinner.Stop(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
	}
	return nil
}

// queryOptions builds the query engine options from the parsed flags.
func queryOptions(sc types.CliFlags) query.Options {
	return query.Options{
		Folder:  sc.Folder,
		Domains: sc.Domains,
		SortBy:  sc.SortBy,
		Reverse: sc.Reverse,
	}
}

// outputBookmarks displays and/or saves a bookmark list per the parsed
// flags. Display happens before save, matching the flag defaults (display
// on, save off).
func outputBookmarks(sc types.CliFlags, results []types.Bookmark) error {
	if sc.DisplayResults {
		err := runPhase(sc.Quiet, "Displaying bookmarks", "Bookmarks displayed", "Failed to display bookmarks", func() (string, error) {
			return "", exporters.DisplayBookmarks(sc, results, formatBookmarksFunc)
		})
		if err != nil {
			return err
		}
	}

	if sc.SaveResults {
		err := runPhase(sc.Quiet, "Saving bookmarks", "Bookmarks saved", "Failed to save bookmarks", func() (string, error) {
			path, err := saveBookmarksFunc(sc.OutputDirectory, sc.OutputFilename, results, os.OpenFile, utils.EnsureDirExists)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Saved %d bookmark(s) to %s", len(results), exporters.SavedFileLink(path)), nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
