package cli

import (
	"fmt"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MattThePerson/bookmarks-getter/internal/bookmarks"
	"github.com/MattThePerson/bookmarks-getter/internal/types"
	cliUtils "github.com/MattThePerson/bookmarks-getter/internal/utils/cli"
	"github.com/MattThePerson/bookmarks-getter/internal/utils/storage"
)

var (
	// options holds the command-line flag values using the CliFlags struct.
	options = types.CliFlags{}
	// listCmd is a Cobra command used for listing bookmarks from a live
	// browser profile.
	listCmd = &cobra.Command{}
	// fetchBookmarksFunc resolves a browser profile and reads its filtered
	// bookmarks; tests may override.
	fetchBookmarksFunc = func(sc types.CliFlags) ([]types.Bookmark, error) {
		getter, err := bookmarks.NewGetter(sc.Browser, sc.Profile, sc.LocalAppData)
		if err != nil {
			return nil, err
		}
		return getter.Bookmarks(queryOptions(sc))
	}
)

// init initializes the list command, setting its usage, description, and
// argument validation, and adds it to the root command.
func init() {
	listCmd = &cobra.Command{
		Use:   "list <browser> [flags]",
		Short: "List bookmarks",
		Long: dedent.Dedent(`
			List bookmarks from a locally installed Chromium-family browser
			(chrome or brave) as JSON, optionally filtered by folder and
			domain and sorted by any bookmark attribute.

			Under WSL the mounted Windows local app data root must be given
			with --local-app-data (e.g. /mnt/c/Users/<name>/AppData/Local).`),
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	initListFlags(listCmd)
	RootCmd.AddCommand(listCmd)
}

// initListFlags registers the command-line flags for the list command: the
// profile and WSL local app data selection, the folder/domain/sort query
// options, and the display and save output options.
func initListFlags(cmd *cobra.Command) {
	cliUtils.RegisterFlag(cmd, "profile", "p", "Default", "Browser profile folder name (e.g. \"Default\", \"Profile 6\")", &options.Profile)
	cliUtils.RegisterFlag(cmd, "local-app-data", "l", "", "Mounted Windows local app data root (required under WSL)", &options.LocalAppData)
	cliUtils.RegisterFlag(cmd, "folder", "f", "", "Only bookmarks in this folder (single name or nested path like Work/Sub)", &options.Folder)
	cliUtils.RegisterFlag(cmd, "domain", "d", []string{}, "Only bookmarks whose url contains one of these strings", &options.Domains)
	cliUtils.RegisterFlag(cmd, "sort-by", "b", "", "Sort by a bookmark attribute (id, name, type, url, location, date_added, date_last_used, date_modified)", &options.SortBy)
	cliUtils.RegisterFlag(cmd, "reverse", "", false, "Reverse the sort order", &options.Reverse)
	cliUtils.RegisterFlag(cmd, "display-results", "r", true, "Do you want to display the results in the terminal?", &options.DisplayResults)
	cliUtils.RegisterFlag(cmd, "save-results", "s", false, "Do you want to save the results to a JSON file?", &options.SaveResults)
	cliUtils.RegisterFlag(cmd, "output-directory", "o", storage.GetDataStoragePath(), "Output directory to save files", &options.OutputDirectory)
	cliUtils.RegisterFlag(cmd, "output-filename", "n", "bookmarks.json", "Filename to save the bookmarks to", &options.OutputFilename)
}

// runList executes the list command, validating that either display or save
// results options are enabled, then resolving the profile and reading its
// bookmarks with the populated CliFlags.
func runList(cmd *cobra.Command, args []string) error {
	if !options.DisplayResults && !options.SaveResults {
		return fmt.Errorf("at least one of --display-results (-r) or --save-results (-s) must be enabled")
	}

	sc := options
	sc.Browser = args[0]
	sc.Quiet = viper.GetBool("quiet")

	return listBookmarks(sc)
}

// listBookmarks reads the selected profile's bookmarks behind a progress
// spinner and then displays and/or saves them.
func listBookmarks(sc types.CliFlags) error {
	var results []types.Bookmark
	err := runPhase(sc.Quiet,
		fmt.Sprintf("Reading %s bookmarks for profile: %s", sc.Browser, sc.Profile),
		"Bookmarks read", "Failed to read bookmarks",
		func() (string, error) {
			var err error
			results, err = fetchBookmarksFunc(sc)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Read %d bookmark(s)", len(results)), nil
		})
	if err != nil {
		return err
	}

	return outputBookmarks(sc, results)
}
