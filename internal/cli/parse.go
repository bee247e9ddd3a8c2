package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thicket-lang/go-thicket"
)

// ParseOptions holds the parse subcommand's flags.
type ParseOptions struct {
	File string
}

func NewParseOptions() *ParseOptions { return &ParseOptions{} }

// NewParseCmd builds "thicket parse".
func NewParseCmd(o *ParseOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and print its value tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				o.File = args[0]
			}
			return o.Run(cmd.OutOrStdout())
		},
	}
	return cmd
}

// Run parses the configured file and writes its dumped value tree to out.
func (o *ParseOptions) Run(out io.Writer) error {
	f, err := openInput(o.File)
	if err != nil {
		return err
	}
	defer f.Close()

	value, err := thicket.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", displayName(o.File), err)
	}

	fmt.Fprint(out, thicket.Dump(value))
	return nil
}

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func displayName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
