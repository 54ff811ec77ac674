// Package cli provides the Cobra command structure for tagsoup.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagsoup/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root tagsoup command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "tagsoup",
		Short: "A forgiving HTML parser and serializer",
		Long: `tagsoup parses real-world HTML into a clean node tree and back.

It never rejects input: malformed markup is recovered the way browsers
do it, with implicit closes, discarded stray closers, and raw-text
handling for script and style. The tree can be emitted as JSON, as
normalized HTML, or as an indented outline for quick inspection, and
Markdown input is converted to HTML first when detected.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
