package cli

import (
	"fmt"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MattThePerson/bookmarks-getter/internal/parsers"
	"github.com/MattThePerson/bookmarks-getter/internal/query"
	"github.com/MattThePerson/bookmarks-getter/internal/types"
	cliUtils "github.com/MattThePerson/bookmarks-getter/internal/utils/cli"
	"github.com/MattThePerson/bookmarks-getter/internal/utils/storage"
)

var (
	// htmlCmd is a Cobra command used for listing bookmarks from an
	// exported bookmarks HTML file.
	htmlCmd = &cobra.Command{}
	// readExportFunc parses a Netscape export file; tests may override.
	readExportFunc = parsers.ReadNetscapeExport
)

// init initializes the html command, setting its usage, description, and
// argument validation, and adds it to the root command. The html command
// shares the query and output flags with list but needs no browser, profile,
// or platform input.
func init() {
	htmlCmd = &cobra.Command{
		Use:   "html <file> [flags]",
		Short: "List bookmarks from an HTML export",
		Long: dedent.Dedent(`
			List bookmarks from a bookmarks HTML export file (the format the
			browser's bookmark manager writes) as JSON, with the same folder,
			domain, and sort filters as the list command. The export format
			carries no ids or usage timestamps, so ids are assigned in file
			order and date_last_used is empty.`),
		Args: cobra.ExactArgs(1),
		RunE: runHtml,
	}

	initHtmlFlags(htmlCmd)
	RootCmd.AddCommand(htmlCmd)
}

// initHtmlFlags registers the command-line flags for the html command: the
// folder/domain/sort query options and the display and save output options.
func initHtmlFlags(cmd *cobra.Command) {
	cliUtils.RegisterFlag(cmd, "folder", "f", "", "Only bookmarks in this folder (single name or nested path like Work/Sub)", &options.Folder)
	cliUtils.RegisterFlag(cmd, "domain", "d", []string{}, "Only bookmarks whose url contains one of these strings", &options.Domains)
	cliUtils.RegisterFlag(cmd, "sort-by", "b", "", "Sort by a bookmark attribute (id, name, type, url, location, date_added, date_last_used, date_modified)", &options.SortBy)
	cliUtils.RegisterFlag(cmd, "reverse", "", false, "Reverse the sort order", &options.Reverse)
	cliUtils.RegisterFlag(cmd, "display-results", "r", true, "Do you want to display the results in the terminal?", &options.DisplayResults)
	cliUtils.RegisterFlag(cmd, "save-results", "s", false, "Do you want to save the results to a JSON file?", &options.SaveResults)
	cliUtils.RegisterFlag(cmd, "output-directory", "o", storage.GetDataStoragePath(), "Output directory to save files", &options.OutputDirectory)
	cliUtils.RegisterFlag(cmd, "output-filename", "n", "bookmarks.json", "Filename to save the bookmarks to", &options.OutputFilename)
}

// runHtml executes the html command against the given export file.
func runHtml(cmd *cobra.Command, args []string) error {
	if !options.DisplayResults && !options.SaveResults {
		return fmt.Errorf("at least one of --display-results (-r) or --save-results (-s) must be enabled")
	}

	sc := options
	sc.Quiet = viper.GetBool("quiet")

	return listExportBookmarks(sc, args[0])
}

// listExportBookmarks reads and filters an export file behind a progress
// spinner and then displays and/or saves the result.
func listExportBookmarks(sc types.CliFlags, file string) error {
	var results []types.Bookmark
	err := runPhase(sc.Quiet,
		fmt.Sprintf("Reading bookmarks export: %s", file),
		"Bookmarks read", "Failed to read bookmarks export",
		func() (string, error) {
			list, err := readExportFunc(file)
			if err != nil {
				return "", err
			}
			results, err = query.Apply(list, queryOptions(sc))
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
