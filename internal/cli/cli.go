// Package cli implements the archdiagram command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ccu3/archdiagram/pkg/architecture"
	"github.com/ccu3/archdiagram/pkg/buildinfo"
	"github.com/ccu3/archdiagram/pkg/config"
	"github.com/ccu3/archdiagram/pkg/diagram"
	"github.com/ccu3/archdiagram/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "archdiagram"

	// defaultOutputDir is where the no-argument invocation writes.
	defaultOutputDir = "."
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without arguments it renders the architecture diagram into the
// current directory.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "archdiagram renders the CC3 AWS Connect architecture diagram",
		Long: `archdiagram renders the CC3 AWS Connect high level architecture diagram
with Graphviz. Without a subcommand it writes architecture.svg to the
current directory.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetDiagramHooks(newLogHooks(c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), renderOpts{outputDir: defaultOutputDir})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// resolveOptions starts from the diagram's fixed options and layers the
// config file, then explicit flags, on top.
func resolveOptions(ro renderOpts) (diagram.Options, error) {
	opts := architecture.Options(ro.outputDir)

	if ro.configPath != "" {
		cfg, err := config.Load(ro.configPath)
		if err != nil {
			return opts, err
		}
		if err := cfg.Apply(&opts); err != nil {
			return opts, err
		}
		// An explicit --output-dir beats the config file.
		if ro.outputDirSet {
			opts.Dir = ro.outputDir
		}
	}

	if ro.format != "" {
		f, err := diagram.ParseFormat(ro.format)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	if ro.direction != "" {
		d, err := diagram.ParseDirection(ro.direction)
		if err != nil {
			return opts, err
		}
		opts.Direction = d
	}
	if ro.curveStyle != "" {
		cs, err := diagram.ParseCurveStyle(ro.curveStyle)
		if err != nil {
			return opts, err
		}
		opts.CurveStyle = cs
	}
	return opts, nil
}
