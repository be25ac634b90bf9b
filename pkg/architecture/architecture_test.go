package architecture

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccu3/archdiagram/pkg/diagram"
)

func build(t *testing.T) *diagram.Diagram {
	t.Helper()
	d, err := diagram.New(Options(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, Build(d))
	return d
}

func labelsWithPrefix(d *diagram.Diagram, prefix string) []string {
	var out []string
	for _, n := range d.Nodes() {
		if strings.HasPrefix(n.Label, prefix) {
			out = append(out, n.Label)
		}
	}
	return out
}

func TestOptions(t *testing.T) {
	opts := Options("out")
	assert.Equal(t, Title, opts.Name)
	assert.Equal(t, diagram.BottomToTop, opts.Direction)
	assert.Equal(t, diagram.FormatSVG, opts.Format)
	assert.Equal(t, "3.0", opts.GraphAttr["pad"])

	d, err := diagram.New(opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "architecture.svg"), d.Options().OutputPath())
}

func TestStructure(t *testing.T) {
	d := build(t)
	stats := d.Stats()

	assert.Equal(t, 21, stats.Nodes)
	assert.Equal(t, 5, stats.Clusters)
	assert.Equal(t, 36, stats.Edges)

	assert.Equal(t, []string{"$connect0", "$connect1", "$connect2"}, labelsWithPrefix(d, "$connect"))
	assert.Equal(t, []string{"$default0", "$default1", "$default2"}, labelsWithPrefix(d, "$default"))

	assert.Equal(t, 10, stats.ByKind[diagram.KindLambda])
	assert.Equal(t, 4, stats.ByKind[diagram.KindUsers])
	assert.Equal(t, 1, stats.ByKind[diagram.KindConnect])
	assert.Equal(t, 1, stats.ByKind[diagram.KindKinesis])
	assert.Equal(t, 1, stats.ByKind[diagram.KindDynamodb])
	assert.Equal(t, 1, stats.ByKind[diagram.KindAPIGateway])
	assert.Equal(t, 1, stats.ByKind[diagram.KindClient])
	assert.Equal(t, 1, stats.ByKind[diagram.KindVue])
	assert.Equal(t, 1, stats.ByKind[diagram.KindDjango])
}

func TestClusterNesting(t *testing.T) {
	d := build(t)

	paths := make(map[string][]string)
	for _, c := range d.Clusters() {
		paths[c.Label] = c.Path()
	}
	assert.Equal(t, map[string][]string{
		"CCU3 awsconnect":   {"CCU3 awsconnect"},
		"Websocket Handler": {"CCU3 awsconnect", "Websocket Handler"},
		"Connection":        {"CCU3 awsconnect", "Websocket Handler", "Connection"},
		"Messaging":         {"CCU3 awsconnect", "Websocket Handler", "Messaging"},
		"Dynamo Streams":    {"CCU3 awsconnect", "Websocket Handler", "Dynamo Streams"},
	}, paths)

	streams := d.FindNodes("Metrics")
	require.Len(t, streams, 1)
	assert.Equal(t, "Dynamo Streams", streams[0].Cluster().Label)

	gateway := d.FindNodes("Websocket Gateway")
	require.Len(t, gateway, 1)
	assert.Equal(t, "CCU3 awsconnect", gateway[0].Cluster().Label)

	assert.Nil(t, d.FindNodes("Connect")[0].Cluster())
}

func TestConfirmPromptEdge(t *testing.T) {
	d := build(t)

	var found []*diagram.Edge
	for _, e := range d.Edges() {
		if e.Attrs.Label == "Agent\nConfirm\nPrompt" {
			found = append(found, e)
		}
	}
	require.Len(t, found, 1)
	assert.Equal(t, "CCU3 Api", found[0].From.Label)
	assert.Equal(t, "Connect", found[0].To.Label)
	assert.Equal(t, diagram.ArrowForward, found[0].Arrow)
	assert.Equal(t, "green", found[0].Attrs.Color)
	assert.Equal(t, "dashed", found[0].Attrs.Style)
}

func TestBidirectionalChains(t *testing.T) {
	d := build(t)

	type pair struct{ from, to string }
	arrows := make(map[pair]diagram.Arrow)
	for _, e := range d.Edges() {
		arrows[pair{e.From.Label, e.To.Label}] = e.Arrow
	}

	assert.Equal(t, diagram.ArrowBoth, arrows[pair{"CCU3 Web", "Websocket Gateway"}])
	assert.Equal(t, diagram.ArrowBoth, arrows[pair{"CCU3 Web", "AWSConnectStreams"}])
	assert.Equal(t, diagram.ArrowBack, arrows[pair{"AWSConnectStreams", "Connect"}])
	assert.Equal(t, diagram.ArrowBack, arrows[pair{"ConnectClientsDB", "awsConnect"}])
	assert.Equal(t, diagram.ArrowBoth, arrows[pair{"awsConnect", "Connect"}])
	assert.Equal(t, diagram.ArrowBack, arrows[pair{"Connect", "Inbound Contacts"}])
	assert.Equal(t, diagram.ArrowBack, arrows[pair{"CCU3 Api", "Outbound Contacts"}])
	assert.Equal(t, diagram.ArrowNone, arrows[pair{"Client", "CCU3 Web"}])
}

func TestDOTIdempotent(t *testing.T) {
	assert.Equal(t, build(t).DOT(), build(t).DOT())
}

func TestDOTContainsScenarioMarkers(t *testing.T) {
	dot := build(t).DOT()
	assert.Contains(t, dot, `label="CCU3 awsconnect"`)
	assert.Contains(t, dot, `label="Agent\nConfirm\nPrompt"`)
	assert.Contains(t, dot, `rankdir="BT"`)
	assert.Contains(t, dot, `pad="3.0"`)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path, err := Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "architecture.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	svg := string(data)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "CCU3 awsconnect")
	assert.Contains(t, svg, ">Agent<")
	assert.Contains(t, svg, ">Confirm<")
	assert.Contains(t, svg, ">Prompt<")
}

func TestRunTwiceSameStructure(t *testing.T) {
	dir := t.TempDir()
	first, err := Run(context.Background(), dir)
	require.NoError(t, err)
	firstData, err := os.ReadFile(first)
	require.NoError(t, err)

	second, err := Run(context.Background(), dir)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, strings.Count(string(firstData), `class="node"`), strings.Count(string(secondData), `class="node"`))
	assert.Equal(t, 21, strings.Count(string(secondData), `class="node"`))
	assert.Equal(t, 5, strings.Count(string(secondData), `class="cluster"`))
	assert.Equal(t, 36, strings.Count(string(secondData), `class="edge"`))
}
