package cmd

import (
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/globals"
	"github.com/minepkg/mcassets/internals/mcroot"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "versions",
		Short: "Lists the installed versions that have a client jar",
		Args:  cobra.NoArgs,
	}, &versionsRunner{})

	cmd.Flags().String("root", "", "Minecraft directory (default is resolved from HOME or APPDATA)")

	rootCmd.AddCommand(cmd.Command)
}

type versionsRunner struct{}

func (v *versionsRunner) RunE(cmd *cobra.Command, args []string) error {
	root := setting(cmd, "root", "root")
	if root == "" {
		var err error
		root, err = mcroot.ResolveRoot()
		if err != nil {
			return err
		}
	}

	versions, err := mcroot.Versions(root)
	if err != nil {
		return err
	}

	if len(versions) == 0 {
		return &commands.CliError{
			Text:        "No installed versions found in " + mcroot.VersionsDir(root),
			Suggestions: []string{"Start a version once with the official launcher"},
		}
	}

	globals.Logger.Headline("Installed versions")
	globals.Logger.Log(mcroot.VersionsDir(root))
	list := globals.Logger.Indent(2)
	for _, version := range versions {
		list.Info(version)
	}
	return nil
}
