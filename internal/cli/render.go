package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccu3/archdiagram/pkg/architecture"
	"github.com/ccu3/archdiagram/pkg/diagram"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outputDir    string // directory the image is written to
	outputDirSet bool   // --output-dir given explicitly
	format       string // svg, png, jpg or dot
	direction    string // TB, BT, LR or RL
	curveStyle   string // ortho, curved, spline or polyline
	configPath   string // optional TOML/YAML overrides
}

// renderCommand creates the render command. With no flags it behaves like
// the bare root command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{outputDir: defaultOutputDir}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the architecture diagram",
		Long: `Render the architecture diagram to an image file.

Flags override values from --config, which override the diagram's own
settings (bottom-to-top, orthogonal edges, SVG).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.outputDirSet = cmd.Flags().Changed("output-dir")
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory to write the image to")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, jpg, dot")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "layout direction: BT (default), TB, LR, RL")
	cmd.Flags().StringVar(&opts.curveStyle, "curve-style", "", "edge routing: ortho (default), curved, spline, polyline")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML or YAML file with render overrides")

	return cmd
}

// runRender renders the diagram and reports the written file.
func (c *CLI) runRender(ctx context.Context, ro renderOpts) error {
	logger := loggerFromContext(ctx)

	opts, err := resolveOptions(ro)
	if err != nil {
		return err
	}

	logger.Infof("Rendering %q", opts.Name)
	prog := newProgress(logger)

	var stats diagram.Stats
	path, err := diagram.Render(ctx, opts, func(d *diagram.Diagram) error {
		if err := architecture.Build(d); err != nil {
			return err
		}
		stats = d.Stats()
		return nil
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %s", path))

	printSuccess("Generated %s", opts.Format)
	printFile(path)
	printStats(stats.Nodes, stats.Clusters, stats.Edges)
	return nil
}
