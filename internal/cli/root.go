// Package cli wires the thicket command-line interface together. It is
// internal because the CLI is a thin consumer of the public thicket
// package, not part of the module's API surface.
package cli

import "github.com/spf13/cobra"

// RootOptions holds flags shared across subcommands.
type RootOptions struct{}

// NewDefaultRootCmd builds the thicket root command with every
// subcommand attached.
func NewDefaultRootCmd() *cobra.Command {
	return NewRootCmd(&RootOptions{})
}

// NewRootCmd builds the thicket root command.
func NewRootCmd(_ *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thicket",
		Short: "thicket parses and converts indentation-structured documents",
		Long: `thicket parses and converts indentation-structured documents.

Docs: https://github.com/thicket-lang/go-thicket`,
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewParseCmd(NewParseOptions()))
	cmd.AddCommand(NewExportCmd(NewExportOptions()))
	cmd.AddCommand(NewFmtCmd(NewFmtOptions()))

	return cmd
}
