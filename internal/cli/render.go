package cli

import (
	"context"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridlink/pkg/errors"
	"github.com/matzehuels/gridlink/pkg/grid"
	"github.com/matzehuels/gridlink/pkg/render/ascii"
)

// renderCommand creates the render command, which prints one ASCII block
// per component.
func (c *CLI) renderCommand() *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print each component's links as ASCII diagrams",
		Long: `Print each component's links as ASCII diagrams.

Without a file, the built-in demo plant is rendered. Plant files may be
TOML, YAML or JSON; the format is taken from the extension.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), pathArg(args), only)
		},
	}

	cmd.Flags().StringSliceVarP(&only, "component", "c", nil, "render only the named component(s), in the given order")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, only []string) error {
	n, err := loadNetwork(ctx, path)
	if err != nil {
		return err
	}

	components, err := selectComponents(n, only)
	if err != nil {
		return err
	}
	return ascii.RenderAll(c.Out, components)
}

// selectComponents returns the named components in the given order, or all
// components in network order when names is empty.
func selectComponents(n *grid.Network, names []string) ([]*grid.Component, error) {
	if len(names) == 0 {
		return n.Components(), nil
	}
	out := make([]*grid.Component, 0, len(names))
	for _, name := range names {
		comp, ok := n.Component(name)
		if !ok {
			return nil, errs.Wrap(errs.ErrCodeUnknownComponent, grid.ErrUnknownComponent, "no component named %q", name)
		}
		out = append(out, comp)
	}
	return out, nil
}
