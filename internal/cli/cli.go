// Package cli implements the gridlink command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlink/pkg/buildinfo"
	"github.com/matzehuels/gridlink/pkg/grid"
	gio "github.com/matzehuels/gridlink/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used in help and completion text.
	appName = "gridlink"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands. Diagrams and exports go to Out;
// logs and status lines go to Err.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
	Err    io.Writer
}

// New creates a new CLI instance writing results to out and logs to errw.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		Out:    out,
		Err:    errw,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it renders the built-in demo plant.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Gridlink draws the power links between batteries and solar arrays",
		Long:          `Gridlink builds a network of power components from a plant file, mirrors every connection on both ends, and prints each component's links as ASCII diagrams.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			c.Logger.Debug(appName, buildinfo.KeyVals()...)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), "", nil)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging (shows connection log lines)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Network Loading
// =============================================================================

// loadNetwork builds the network described by the plant file at path, or the
// demo plant when path is empty. Connection legs are logged at debug level.
func loadNetwork(ctx context.Context, path string) (*grid.Network, error) {
	plant, err := loadPlant(ctx, path)
	if err != nil {
		return nil, err
	}
	return gio.Build(plant, loggerFromContext(ctx))
}

func loadPlant(ctx context.Context, path string) (*gio.Plant, error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		logger.Debug("Using built-in demo plant")
		return DemoPlant(), nil
	}

	prog := newProgress(logger)
	plant, err := gio.Load(path)
	if err != nil {
		return nil, err
	}
	prog.done("Loaded " + path)
	return plant, nil
}

// pathArg returns the optional plant file argument.
func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
