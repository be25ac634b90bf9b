package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccu3/archdiagram/pkg/architecture"
	"github.com/ccu3/archdiagram/pkg/diagram"
	dio "github.com/ccu3/archdiagram/pkg/io"
)

const (
	inspectJSON = "json"
	inspectYAML = "yaml"
	inspectDOT  = "dot"
)

// inspectCommand prints the declared structure of the diagram without
// rendering it.
func (c *CLI) inspectCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the diagram's nodes, clusters and edges",
		Long: `Print the declared structure of the architecture diagram.

Formats:
  json   nodes, clusters and edges as JSON (default)
  yaml   the same structure as YAML
  dot    the Graphviz source handed to the renderer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseInspectFormat(format)
			if err != nil {
				return err
			}
			d, err := declareDiagram()
			if err != nil {
				return err
			}
			if output == "" {
				return writeInspect(cmd.OutOrStdout(), d, f)
			}
			if err := exportInspect(output, d, f); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", inspectJSON, "output format: json, yaml, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func parseInspectFormat(s string) (string, error) {
	f := strings.ToLower(s)
	switch f {
	case inspectJSON, inspectYAML, inspectDOT:
		return f, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'json', 'yaml', or 'dot')", s)
}

// declareDiagram builds the architecture diagram in memory without flushing it.
func declareDiagram() (*diagram.Diagram, error) {
	d, err := diagram.New(architecture.Options(defaultOutputDir))
	if err != nil {
		return nil, err
	}
	if err := architecture.Build(d); err != nil {
		return nil, err
	}
	return d, nil
}

func writeInspect(w io.Writer, d *diagram.Diagram, format string) error {
	switch format {
	case inspectYAML:
		return dio.WriteYAML(d, w)
	case inspectDOT:
		_, err := io.WriteString(w, d.DOT())
		return err
	default:
		return dio.WriteJSON(d, w)
	}
}

func exportInspect(path string, d *diagram.Diagram, format string) error {
	switch format {
	case inspectYAML:
		return dio.ExportYAML(d, path)
	case inspectDOT:
		if err := os.WriteFile(path, []byte(d.DOT()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	default:
		return dio.ExportJSON(d, path)
	}
}
