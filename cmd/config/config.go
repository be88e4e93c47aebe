package config

import (
	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
)

type configEntry struct {
	key  string
	kind int
	help string
}

// keys are lowercase because that's how viper stores them
var config = map[string]configEntry{
	"root":           {"root", configKindString, "Minecraft directory, skips the HOME / APPDATA lookup"},
	"dest":           {"dest", configKindString, "Default output directory"},
	"prefix":         {"prefix", configKindString, "Default entry prefix"},
	"noninteractive": {"nonInteractive", configKindBool, "Never show spinners"},
	"verboselogging": {"verboseLogging", configKindBool, "Log every extracted file"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}
