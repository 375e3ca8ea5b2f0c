package resolvers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MattThePerson/bookmarks-getter/internal/platform"
)

// TestConvertToWSLPath covers drive-letter translation and separator
// normalization.
func TestConvertToWSLPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "drive letter with profile path",
			in:   `C:\Users\matt\AppData\Local\Google\Chrome\User Data\Default\Bookmarks`,
			want: "/mnt/c/Users/matt/AppData/Local/Google/Chrome/User Data/Default/Bookmarks",
		},
		{
			name: "uppercase drive folds to lowercase mount",
			in:   `D:\Data`,
			want: "/mnt/d/Data",
		},
		{
			name: "no drive letter keeps root",
			in:   `\Users\matt`,
			want: "/Users/matt",
		},
		{
			name: "posix root substituted for the marker stays posix",
			in:   `/tmp/local\Google\Chrome`,
			want: "/tmp/local/Google/Chrome",
		},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertToWSLPath(tt.in))
		})
	}
}

func TestBookmarksFilePathWindows(t *testing.T) {
	orig := lookupEnv
	defer func() { lookupEnv = orig }()
	lookupEnv = func(key string) (string, bool) {
		if key == "LOCALAPPDATA" {
			return `C:\Users\matt\AppData\Local`, true
		}
		return "", false
	}

	path, err := BookmarksFilePath(platform.Windows, "chrome", "Profile 6", "")
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\matt\AppData\Local\Google\Chrome\User Data\Profile 6\Bookmarks`, path)

	path, err = BookmarksFilePath(platform.Windows, "Brave", "Default", "")
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\matt\AppData\Local\BraveSoftware\Brave-Browser\User Data\Default\Bookmarks`, path)
}

// Unset LOCALAPPDATA fails fast instead of producing a path containing a
// bogus literal.
func TestBookmarksFilePathWindowsMissingEnv(t *testing.T) {
	orig := lookupEnv
	defer func() { lookupEnv = orig }()
	lookupEnv = func(string) (string, bool) { return "", false }

	_, err := BookmarksFilePath(platform.Windows, "chrome", "Default", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCALAPPDATA")
}

func TestBookmarksFilePathWSL(t *testing.T) {
	path, err := BookmarksFilePath(platform.WSL, "brave", "Profile 6", `C:\Users\matt\AppData\Local`)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/c/Users/matt/AppData/Local/BraveSoftware/Brave-Browser/User Data/Profile 6/Bookmarks", path)
}

func TestBookmarksFilePathWSLMissingRoot(t *testing.T) {
	_, err := BookmarksFilePath(platform.WSL, "chrome", "Default", "")
	assert.ErrorIs(t, err, ErrMissingLocalAppData)
}

// Browsers in the Chromium family without a default path template fail with
// an explicit error rather than resolving to an empty path.
func TestBookmarksFilePathUnmappedBrowser(t *testing.T) {
	for _, browser := range []string{"edge", "chromium", "bravesoftware"} {
		t.Run(browser, func(t *testing.T) {
			_, err := BookmarksFilePath(platform.WSL, browser, "Default", `C:\Users\matt\AppData\Local`)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown default bookmarks path")
			assert.Contains(t, err.Error(), browser)
		})
	}
}

func TestBookmarksFilePathLinux(t *testing.T) {
	_, err := BookmarksFilePath(platform.Linux, "chrome", "Default", "")
	assert.ErrorIs(t, err, ErrLinuxNotImplemented)
}

func TestBookmarksFilePathUnknownPlatform(t *testing.T) {
	_, err := BookmarksFilePath(platform.Unknown, "chrome", "Default", "")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

// TestResolveExistingFile drives Resolve end to end through the WSL branch
// with a POSIX local app data root pointing into a temp dir, so the
// translated path really exists on the test host.
func TestResolveExistingFile(t *testing.T) {
	root := t.TempDir()
	bookmarksPath := filepath.Join(root, "Google", "Chrome", "User Data", "Default", "Bookmarks")
	require.NoError(t, os.MkdirAll(filepath.Dir(bookmarksPath), 0o755))
	require.NoError(t, os.WriteFile(bookmarksPath, []byte("{}"), 0o644))

	path, err := Resolve(platform.WSL, "chrome", "Default", root)
	require.NoError(t, err)
	assert.Equal(t, bookmarksPath, path)
}

func TestResolveMissingFile(t *testing.T) {
	root := t.TempDir()

	_, err := Resolve(platform.WSL, "chrome", "Profile 6", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Contains(t, err.Error(), "Profile 6")
	assert.Contains(t, err.Error(), filepath.Join(root, "Google", "Chrome", "User Data", "Profile 6", "Bookmarks"))
}
