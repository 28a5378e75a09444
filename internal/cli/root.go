// Package cli provides the Cobra command structure for sbc.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rgonek/slack-blocks-converter/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root sbc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "sbc",
		Short: "Convert Markdown to Slack Block Kit blocks",
		Long: `sbc converts GitHub Flavored Markdown into Slack Block Kit JSON.

Headings become header blocks, paragraphs, lists, quotes and code become
mrkdwn section blocks, thematic breaks become dividers and GFM tables become
table blocks. Slack's size limits are enforced by truncation.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
