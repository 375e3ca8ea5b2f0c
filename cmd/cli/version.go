package cli

import (
	"go.szostok.io/version/extension"
)

// Repository coordinates used by the version command's upgrade notice.
const (
	RepoOwner = "MattThePerson"
	RepoName  = "bookmarks-getter"
)

// init registers the version subcommand on the root command.
func init() {
	RootCmd.AddCommand(
		extension.NewVersionCobraCmd(
			extension.WithUpgradeNotice(RepoOwner, RepoName),
		),
	)
}
