package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get [key]",
		Short: "Gets a global config value (or all of them)",
		Args:  cobra.MaximumNArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		keys := make([]string, 0, len(config))
		for key := range config {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Println("Printing all config entries:")
		for _, key := range keys {
			entry := config[key]
			fmt.Printf("  %s: %v %s\n", entry.key, display(viper.Get(entry.key)), gchalk.Gray(entry.help))
		}
		return nil
	}

	key := strings.ToLower(args[0])
	entry, ok := config[key]
	if !ok {
		return fmt.Errorf("config key \"%s\" does not exist", key)
	}

	fmt.Println("Printing config entry:")
	fmt.Printf("  %s: %v\n", entry.key, display(viper.Get(entry.key)))

	return nil
}

func display(v interface{}) string {
	if v == nil {
		return "(unset)"
	}
	return fmt.Sprintf("%v", v)
}
