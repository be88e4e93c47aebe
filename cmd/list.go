package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/extract"
	"github.com/minepkg/mcassets/internals/globals"
	"github.com/minepkg/mcassets/internals/utils"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:     "list <version>",
		Short:   "Lists the entries extract would write, without writing anything",
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"ls"},
	}, &listRunner{})

	cmd.Flags().String("root", "", "Minecraft directory (default is resolved from HOME or APPDATA)")
	cmd.Flags().String("prefix", extract.DefaultPrefix, "Only list entries starting with this prefix")

	rootCmd.AddCommand(cmd.Command)
}

type listRunner struct{}

func (l *listRunner) RunE(cmd *cobra.Command, args []string) error {
	extractor := &extract.Extractor{
		Root:   setting(cmd, "root", "root"),
		Prefix: setting(cmd, "prefix", "prefix"),
	}
	if extractor.Prefix == "" {
		extractor.Prefix = extract.DefaultPrefix
	}

	entries, err := extractor.List(args[0])
	if err != nil {
		return err
	}

	globals.Logger.Headline(fmt.Sprintf("Entries of %s starting with %s", args[0], extractor.Prefix))

	var total uint64
	truncated := 0
	for _, entry := range entries {
		total += entry.Size
		name := extract.Sanitize(entry.Name)
		if name != entry.Name {
			truncated++
			name += gchalk.Red(" (truncated)")
		}
		fmt.Printf("%10s  %s\n", gchalk.Gray(humanize.Bytes(entry.Size)), name)
	}

	fmt.Printf("\n%s entries, %s\n", utils.HumanInteger(len(entries)), humanize.Bytes(total))
	if truncated != 0 {
		globals.Logger.Warn(fmt.Sprintf("%s entry names contain a NUL byte and will be written truncated", utils.HumanInteger(truncated)))
	}
	return nil
}
