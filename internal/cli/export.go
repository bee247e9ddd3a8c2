package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/thicket-lang/go-thicket"
	"gopkg.in/yaml.v3"
)

// ExportOptions holds the export subcommand's flags.
type ExportOptions struct {
	File   string
	Format string
}

func NewExportOptions() *ExportOptions {
	return &ExportOptions{Format: "json"}
}

// NewExportCmd builds "thicket export".
func NewExportCmd(o *ExportOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Parse a document and re-encode it as JSON, YAML, or TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				o.File = args[0]
			}
			return o.Run(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&o.Format, "format", "f", o.Format, "Output format (json, yaml, toml)")
	return cmd
}

// tomlPlain recursively flattens *thicket.Map values into
// map[string]any, since BurntSushi/toml encodes via reflection and has
// no hook for the library's ordered, non-string-keyed Map type. TOML
// itself only has string keys, so this is a lossless conversion for any
// document that validates as TOML in the first place.
func tomlPlain(v any) any {
	switch x := v.(type) {
	case *thicket.Map:
		out := make(map[string]any, x.Len())
		for _, e := range x.Entries() {
			key, ok := e.Key.Interface().(string)
			if !ok {
				continue
			}
			out[key] = tomlPlain(e.Value.Interface())
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = tomlPlain(item)
		}
		return out
	default:
		return x
	}
}

// Run parses the configured file and re-encodes it to out in the
// configured format.
func (o *ExportOptions) Run(out io.Writer) error {
	in, err := openInput(o.File)
	if err != nil {
		return err
	}
	defer in.Close()

	value, err := thicket.Parse(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", displayName(o.File), err)
	}
	native := value.Interface()

	switch o.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(native)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(native)
	case "toml":
		root, ok := native.(*thicket.Map)
		if !ok {
			return fmt.Errorf("toml export requires a top-level map, got %T", native)
		}
		enc := toml.NewEncoder(out)
		return enc.Encode(tomlPlain(root))
	default:
		return fmt.Errorf("unknown export format %q", o.Format)
	}
}
