package diagram

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	fontName  = "Sans-Serif"
	fontColor = "#2D3436"
)

var defaultGraphAttrs = map[string]string{
	"pad":       "2.0",
	"nodesep":   "0.60",
	"ranksep":   "0.75",
	"fontname":  fontName,
	"fontsize":  "15",
	"fontcolor": fontColor,
}

var defaultNodeAttrs = map[string]string{
	"shape":    "box",
	"style":    "rounded",
	"width":    "1.4",
	"height":   "1.4",
	"margin":   "0.15,0.1",
	"labelloc": "c",
	"fontname": fontName,
	"fontsize": "13",
}

var defaultEdgeAttrs = map[string]string{
	"color":     "#7B8894",
	"fontcolor": fontColor,
	"fontname":  fontName,
	"fontsize":  "13",
}

var defaultClusterAttrs = map[string]string{
	"shape":     "box",
	"style":     "rounded",
	"labeljust": "l",
	"pencolor":  "#AEB6BE",
	"fontname":  fontName,
	"fontsize":  "12",
}

// clusterColors cycle with nesting depth.
var clusterColors = []string{"#E5F5FD", "#EBF3E7", "#ECE8F6", "#FDF7E3"}

// DOT returns the Graphviz source of the diagram. Output is fully determined
// by the declarations: attributes are emitted in sorted order and node IDs are
// derived from the diagram name and declaration order.
//
// Nodes are written inside the cluster they were declared in; edges are
// written at the top level in declaration order.
func (d *Diagram) DOT() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", d.opts.Name)

	graph := withOverrides(defaultGraphAttrs, map[string]string{
		"label":   d.opts.Name,
		"rankdir": string(d.opts.Direction),
		"splines": string(d.opts.CurveStyle),
	}, d.opts.GraphAttr)
	fmt.Fprintf(&buf, "  graph [%s];\n", fmtAttrs(graph))
	fmt.Fprintf(&buf, "  node [%s];\n", fmtAttrs(withOverrides(defaultNodeAttrs, d.opts.NodeAttr)))
	fmt.Fprintf(&buf, "  edge [%s];\n", fmtAttrs(withOverrides(defaultEdgeAttrs, d.opts.EdgeAttr)))
	buf.WriteString("\n")

	for _, n := range d.topNodes {
		writeNode(&buf, n, 1)
	}
	for _, c := range d.topClusters {
		writeCluster(&buf, c, 1)
	}

	if len(d.edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range d.edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From.ID, e.To.ID, fmtAttrs(edgeAttrs(e)))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n *Node, depth int) {
	attrs := n.Kind.attrs()
	attrs["label"] = n.Label
	fmt.Fprintf(buf, "%s%q [%s];\n", indent(depth), n.ID, fmtAttrs(attrs))
}

func writeCluster(buf *bytes.Buffer, c *Cluster, depth int) {
	pad := indent(depth)
	fmt.Fprintf(buf, "%ssubgraph %q {\n", pad, c.ID)
	attrs := withOverrides(defaultClusterAttrs, map[string]string{
		"label":   c.Label,
		"bgcolor": clusterColors[c.Depth%len(clusterColors)],
	})
	fmt.Fprintf(buf, "%s  graph [%s];\n", pad, fmtAttrs(attrs))
	for _, n := range c.nodes {
		writeNode(buf, n, depth+1)
	}
	for _, child := range c.children {
		writeCluster(buf, child, depth+1)
	}
	fmt.Fprintf(buf, "%s}\n", pad)
}

func edgeAttrs(e *Edge) map[string]string {
	attrs := e.Attrs.Map()
	attrs["dir"] = e.Arrow.String()
	return attrs
}

func withOverrides(base map[string]string, overrides ...map[string]string) map[string]string {
	out := maps.Clone(base)
	for _, o := range overrides {
		maps.Copy(out, o)
	}
	return out
}

func fmtAttrs(attrs map[string]string) string {
	parts := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		parts = append(parts, fmt.Sprintf("%s=%q", k, attrs[k]))
	}
	return strings.Join(parts, ", ")
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
