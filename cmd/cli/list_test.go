package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MattThePerson/bookmarks-getter/internal/types"
)

// mockSpinner satisfies spinnerI without touching the terminal.
type mockSpinner struct {
	startErr    error
	stopCalled  bool
	failCalled  bool
	failMessage string
}

func (m *mockSpinner) Start() error { return m.startErr }
func (m *mockSpinner) Stop() error {
	m.stopCalled = true
	return nil
}
func (m *mockSpinner) StopFail() error {
	m.failCalled = true
	return nil
}
func (m *mockSpinner) StopFailMessage(msg string) { m.failMessage = msg }
func (m *mockSpinner) StopMessage(string)         {}

// useMockSpinner swaps the spinner factory for the duration of a test.
func useMockSpinner(t *testing.T, s *mockSpinner) {
	t.Helper()
	orig := createSpinner
	t.Cleanup(func() { createSpinner = orig })
	createSpinner = func(start, stopCh, stopMsg, failCh, failMsg string) spinnerI { return s }
}

// useFetchedBookmarks swaps the profile fetch for the duration of a test.
func useFetchedBookmarks(t *testing.T, results []types.Bookmark, err error) {
	t.Helper()
	orig := fetchBookmarksFunc
	t.Cleanup(func() { fetchBookmarksFunc = orig })
	fetchBookmarksFunc = func(types.CliFlags) ([]types.Bookmark, error) { return results, err }
}

func TestRunListRequiresAnOutput(t *testing.T) {
	origOptions := options
	defer func() { options = origOptions }()

	options.DisplayResults = false
	options.SaveResults = false

	err := runList(listCmd, []string{"chrome"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--display-results")
	assert.Contains(t, err.Error(), "--save-results")
}

func TestListBookmarksDisplay(t *testing.T) {
	useFetchedBookmarks(t, []types.Bookmark{
		{Id: "1", Name: "repo", Type: "url", Url: "https://github.com/x", DateAdded: "2024-01-01 00:00:00"},
	}, nil)

	sc := types.CliFlags{
		Browser:        "chrome",
		Profile:        "Default",
		DisplayResults: true,
		Quiet:          true,
	}
	assert.NoError(t, listBookmarks(sc))
}

func TestListBookmarksSave(t *testing.T) {
	useFetchedBookmarks(t, []types.Bookmark{
		{Id: "1", Name: "repo", Type: "url", Url: "https://github.com/x", DateAdded: "2024-01-01 00:00:00"},
	}, nil)

	dir := t.TempDir()
	sc := types.CliFlags{
		Browser:         "brave",
		Profile:         "Default",
		SaveResults:     true,
		OutputDirectory: dir,
		OutputFilename:  "bookmarks.json",
		Quiet:           true,
	}
	require.NoError(t, listBookmarks(sc))

	_, err := os.Stat(filepath.Join(dir, "bookmarks.json"))
	assert.NoError(t, err)
}

func TestListBookmarksFetchError(t *testing.T) {
	fetchErr := errors.New("bookmarks file does not exist")
	useFetchedBookmarks(t, nil, fetchErr)

	sc := types.CliFlags{Browser: "chrome", DisplayResults: true, Quiet: true}
	err := listBookmarks(sc)
	assert.ErrorIs(t, err, fetchErr)
}

// With spinners enabled, a fetch failure stops the spinner through its
// failure path and carries the underlying error message.
func TestListBookmarksFetchErrorWithSpinner(t *testing.T) {
	fetchErr := errors.New("bookmarks file does not exist")
	useFetchedBookmarks(t, nil, fetchErr)

	spinner := &mockSpinner{}
	useMockSpinner(t, spinner)

	sc := types.CliFlags{Browser: "chrome", DisplayResults: true}
	err := listBookmarks(sc)
	assert.ErrorIs(t, err, fetchErr)
	assert.True(t, spinner.failCalled)
	assert.Contains(t, spinner.failMessage, fetchErr.Error())
}

func TestListBookmarksSpinnerStartFailure(t *testing.T) {
	useFetchedBookmarks(t, nil, nil)
	useMockSpinner(t, &mockSpinner{startErr: errors.New("no tty")})

	sc := types.CliFlags{Browser: "chrome", DisplayResults: true}
	err := listBookmarks(sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start spinner")
}

func TestListBookmarksSaveError(t *testing.T) {
	useFetchedBookmarks(t, []types.Bookmark{{Id: "1"}}, nil)

	origSave := saveBookmarksFunc
	defer func() { saveBookmarksFunc = origSave }()
	saveErr := errors.New("disk full")
	saveBookmarksFunc = func(dir, filename string, bookmarks []types.Bookmark, openFileFunc func(string, int, os.FileMode) (*os.File, error), ensureDirExistsFunc func(string) error) (string, error) {
		return "", saveErr
	}

	sc := types.CliFlags{Browser: "chrome", SaveResults: true, Quiet: true}
	err := listBookmarks(sc)
	assert.ErrorIs(t, err, saveErr)
}

func TestListFlagsRegistered(t *testing.T) {
	for _, name := range []string{
		"profile", "local-app-data", "folder", "domain", "sort-by", "reverse",
		"display-results", "save-results", "output-directory", "output-filename",
	} {
		assert.NotNil(t, listCmd.Flags().Lookup(name), "flag %s should be registered", name)
	}
}

func TestQueryOptionsFromFlags(t *testing.T) {
	sc := types.CliFlags{
		Folder:  "Work/Sub",
		Domains: []string{"github.com"},
		SortBy:  "url",
		Reverse: true,
	}
	opts := queryOptions(sc)
	assert.Equal(t, "Work/Sub", opts.Folder)
	assert.Equal(t, []string{"github.com"}, opts.Domains)
	assert.Equal(t, "url", opts.SortBy)
	assert.True(t, opts.Reverse)
}
