package cmd

import (
	"fmt"

	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/mcroot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "root",
		Short: "Prints the Minecraft directory that is used",
		Args:  cobra.NoArgs,
	}, &rootRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type rootRunner struct{}

func (r *rootRunner) RunE(cmd *cobra.Command, args []string) error {
	if override := viper.GetString("root"); override != "" {
		fmt.Println(override)
		return nil
	}

	root, err := mcroot.ResolveRoot()
	if err != nil {
		return err
	}
	fmt.Println(root)
	return nil
}
