package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	gio "github.com/matzehuels/gridlink/pkg/io"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output string // output file; stdout when empty
	format string // toml, yaml or json; inferred from output when empty
}

// exportCommand creates the export command, which re-encodes a plant (or the
// demo) after building it, so the output reflects what gridlink accepted.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write a plant file in TOML, YAML or JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), pathArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: toml (default), yaml, json")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, path string, opts exportOpts) error {
	format, err := exportFormat(opts)
	if err != nil {
		return err
	}

	n, err := loadNetwork(ctx, path)
	if err != nil {
		return err
	}
	plant := gio.FromNetwork(n)

	if err := c.writeOutput(opts.output, func(w io.Writer) error {
		return gio.Encode(w, plant, format)
	}); err != nil {
		return err
	}
	if opts.output != "" {
		printStats(c.Err, n.Stats())
	}
	return nil
}

// exportFormat resolves the output format: the --format flag wins, then the
// output file extension, then TOML.
func exportFormat(opts exportOpts) (gio.Format, error) {
	if opts.format != "" {
		return gio.ParseFormat(opts.format)
	}
	if opts.output != "" {
		return gio.DetectFormat(opts.output)
	}
	return gio.FormatTOML, nil
}
