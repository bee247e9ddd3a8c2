package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thicket-lang/go-thicket"
)

// FmtOptions holds the fmt subcommand's flags.
type FmtOptions struct {
	File string
}

func NewFmtOptions() *FmtOptions { return &FmtOptions{} }

// NewFmtCmd builds "thicket fmt", a lint-style syntax check: it parses
// the document and reports success or the first parse error, without
// writing anything back.
func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Check a document for syntax errors",
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

// Run parses the configured file and reports success or the first
// parse error to out.
func (o *FmtOptions) Run(out io.Writer) error {
	f, err := openInput(o.File)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := thicket.Parse(f); err != nil {
		return fmt.Errorf("%s: %w", displayName(o.File), err)
	}

	fmt.Fprintf(out, "%s: ok\n", displayName(o.File))
	return nil
}
