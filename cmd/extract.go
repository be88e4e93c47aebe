package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/minepkg/mcassets/internals/bundle"
	"github.com/minepkg/mcassets/internals/cmdlog"
	"github.com/minepkg/mcassets/internals/commands"
	"github.com/minepkg/mcassets/internals/extract"
	"github.com/minepkg/mcassets/internals/globals"
	"github.com/minepkg/mcassets/internals/utils"
	"github.com/spf13/cobra"
)

func init() {
	runner := &extractRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "extract <version>",
		Short: "Extracts the assets of an installed version into the current directory",
		Long: `Opens <root>/versions/<version>/<version>.jar and writes every entry
starting with assets/minecraft to the current (or --dest) directory.
Existing files are overwritten.`,
		Example: `
  mcassets extract 1.19.2
  mcassets extract 1.19.2 --dest ./out --bundle assets.tar.gz`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"x", "fetch"},
	}, runner)

	cmd.Flags().String("root", "", "Minecraft directory (default is resolved from HOME or APPDATA)")
	cmd.Flags().String("dest", "", "Output directory (default is the current directory)")
	cmd.Flags().String("prefix", extract.DefaultPrefix, "Only extract entries starting with this prefix")
	cmd.Flags().StringVar(&runner.bundle, "bundle", "", "Also pack the extracted files into this archive (.zip, .tar, .tar.gz, …)")

	rootCmd.AddCommand(cmd.Command)
}

type extractRunner struct {
	bundle string
}

func (e *extractRunner) RunE(cmd *cobra.Command, args []string) error {
	version := args[0]
	startTime := time.Now()

	if e.bundle != "" && !bundle.Supported(e.bundle) {
		return &commands.CliError{
			Text:        fmt.Sprintf("Can not create a bundle named %s", e.bundle),
			Suggestions: []string{"Use a .zip, .tar or .tar.gz file name"},
		}
	}

	extractor := newExtractor(cmd)

	spinner := commands.NewMaybeSpinner(!nonInteractive())
	if spinner.Spin {
		// the spinner shows progress, the summary is printed below
		extractor.Logger = nil
		spinner.Update("Extracting assets of " + version)
		extractor.OnEntry = func(p extract.Progress) {
			spinner.Update(fmt.Sprintf("[%d / %d] %s", p.Index+1, p.Total, filepath.Base(p.Path)))
		}
	}

	steps := 1
	if e.bundle != "" {
		steps++
	}
	var task *cmdlog.Task
	if !spinner.Spin {
		task = globals.Logger.NewTask(steps)
		task.Step("📦", "Extracting assets of "+version)
		// the extractor's own lines belong to the step above
		extractor.Logger = globals.Logger.Indent(2)
	}

	spinner.Start()
	result, err := extractor.Extract(version)
	spinner.Stop()
	if err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("Archive:   %s", result.Archive),
		fmt.Sprintf("Extracted: %s of %s entries", utils.HumanInteger(result.Extracted), utils.HumanInteger(result.Total)),
		fmt.Sprintf("Size:      %s", humanize.Bytes(result.Bytes)),
	}

	if e.bundle != "" {
		if task != nil {
			task.Step("🗜️", "Bundling into "+e.bundle)
		}
		sources, err := bundle.TopLevelDirs(extractor.Dest, result.Files)
		if err != nil {
			return err
		}
		if err := bundle.Create(e.bundle, sources); err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("Bundle:    %s", e.bundle))
	}

	lines = append(lines, fmt.Sprintf("Took:      %s", time.Since(startTime).Round(time.Millisecond)))
	globals.Logger.Info(commands.SummaryBox(commands.Emoji("📦 ")+"Extracted assets of "+version, lines...))
	return nil
}

func newExtractor(cmd *cobra.Command) *extract.Extractor {
	dest := setting(cmd, "dest", "dest")
	if dest == "" {
		dest = "."
	}

	return &extract.Extractor{
		Root:    setting(cmd, "root", "root"),
		Dest:    dest,
		Prefix:  setting(cmd, "prefix", "prefix"),
		Logger:  globals.Logger,
		Verbose: verboseLogging(),
	}
}
