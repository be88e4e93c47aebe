package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
	"github.com/minepkg/mcassets/cmd/config"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/globals"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set by main (goreleaser)
var Version = "dev"

// Commit is set by main (goreleaser)
var Commit = ""

var (
	cfgFile       string
	disableColors bool
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcassets",
	Short: "Extracts the vanilla assets from an installed Minecraft version",
	Long:  "Copies everything below assets/minecraft out of an installed client jar without downloading anything",

	Example: `
  mcassets versions
  mcassets extract 1.19.2
  mcassets extract 1.20.1 --dest ./vanilla --bundle vanilla-assets.zip`,
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Args:  cobra.MaximumNArgs(1),
	Short: "Output shell completion code for bash",
	Long: `To load completion run

. <(mcassets completion)

You can add that line to your ~/.bashrc or ~/.profile to
persist completion in your shell.
`,
	Run: func(cmd *cobra.Command, args []string) {
		rootCmd.GenBashCompletion(os.Stdout)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if Commit != "" {
		rootCmd.Version += " (" + Commit + ")"
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every extracted file")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <config dir>/mcassets/config.toml)")

	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		gchalk.SetLevel(gchalk.LevelNone)
		globals.Logger.SetColor(false)
		commands.EmojiEnabled = false
	}

	viper.SetConfigType("toml")
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := os.UserConfigDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(configDir, "mcassets"))
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("mcassets")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && verboseLogging() {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// nonInteractive is true if no spinners should be shown
func nonInteractive() bool {
	if viper.GetBool("nonInteractive") {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func verboseLogging() bool {
	return verbose || viper.GetBool("verboseLogging")
}

// setting returns the flag value if it was passed, the config value otherwise
func setting(cmd *cobra.Command, flag string, key string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(key)
}
