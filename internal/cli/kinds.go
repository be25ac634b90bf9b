package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ccu3/archdiagram/pkg/diagram"
)

// kindsCommand lists the node palette.
func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available node kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printKinds(cmd.OutOrStdout(), diagram.Kinds())
			return nil
		},
	}
}

func printKinds(w io.Writer, kinds []diagram.Kind) {
	nameStyle := lipgloss.NewStyle().Foreground(colorCyan).Width(36)
	shapeStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d kinds", len(kinds))))
	for _, k := range kinds {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(k.FillColor)).Render("■")
		fmt.Fprintln(w, nameStyle.Render(k.String())+" "+shapeStyle.Render(k.Shape)+" "+swatch+" "+StyleDim.Render(k.FillColor))
	}
}
