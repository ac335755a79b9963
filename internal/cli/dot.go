package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlink/pkg/render/nodelink"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	output   string // output file; stdout when empty
	svg      bool   // render SVG instead of emitting DOT source
	detailed bool   // include kind and attributes in node labels
}

// dotCommand creates the dot command, which draws the whole network as a
// Graphviz node-link diagram.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Draw the network as a Graphviz diagram (DOT or SVG)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd.Context(), pathArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG in-process instead of DOT source")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show kind and attributes in node labels")

	return cmd
}

func (c *CLI) runDot(ctx context.Context, path string, opts dotOpts) error {
	n, err := loadNetwork(ctx, path)
	if err != nil {
		return err
	}

	out := []byte(nodelink.ToDOT(n, nodelink.Options{Detailed: opts.detailed}))
	if opts.svg {
		prog := newProgress(loggerFromContext(ctx))
		if out, err = nodelink.RenderSVG(ctx, string(out)); err != nil {
			return err
		}
		prog.done("Rendered SVG")
	}

	if err := c.writeOutput(opts.output, func(w io.Writer) error {
		_, err := w.Write(out)
		return err
	}); err != nil {
		return err
	}
	if opts.output != "" {
		printStats(c.Err, n.Stats())
	}
	return nil
}
