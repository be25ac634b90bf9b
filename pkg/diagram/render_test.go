package diagram

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccu3/archdiagram/pkg/errors"
)

func TestGraphvizRenderSVG(t *testing.T) {
	svg, err := GraphvizRenderer{}.Render(context.Background(), `digraph G { a -> b; }`, FormatSVG)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), `viewBox="0 0 `)
}

func TestGraphvizRenderInvalidDOT(t *testing.T) {
	_, err := GraphvizRenderer{}.Render(context.Background(), `not valid DOT {{{`, FormatSVG)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRenderFailed))
}

func TestGraphvizRenderUnsupportedFormat(t *testing.T) {
	_, err := GraphvizRenderer{}.Render(context.Background(), `digraph G { a; }`, FormatDOT)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestRenderDiagramWithGraphviz(t *testing.T) {
	dir := t.TempDir()
	path, err := Render(context.Background(), Options{Name: "Graphviz End To End", Dir: dir, Direction: BottomToTop},
		func(d *Diagram) error {
			gw := d.Node(KindAPIGateway, "Websocket Gateway")
			d.Cluster("Handlers", func(c *Cluster) {
				fns := c.Numbered(KindLambda, "$default", 2)
				d.Chain(gw).Line(fns)
				d.Chain(fns).Forward(c.Node(KindDynamodb, "DB"), Attrs{Label: "put\nitem", Color: "orange"})
			})
			return nil
		})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	svg := string(data)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(svg), "<?xml") || strings.Contains(svg, "<svg"))
	assert.Contains(t, svg, "Handlers")
	assert.Contains(t, svg, "Websocket Gateway")
	assert.Contains(t, svg, "$default1")
	assert.Contains(t, svg, ">put<")
	assert.Contains(t, svg, ">item<")
}
