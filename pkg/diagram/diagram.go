package diagram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ccu3/archdiagram/pkg/errors"
	"github.com/ccu3/archdiagram/pkg/observability"
)

// idNamespace seeds name-based node and cluster IDs.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ccu3/archdiagram"))

// Node is a typed, labeled box in the diagram.
type Node struct {
	ID    string
	Kind  Kind
	Label string

	d       *Diagram
	cluster *Cluster
}

func (n *Node) members() []*Node { return []*Node{n} }

// Cluster returns the innermost cluster the node was declared in, or nil for
// top-level nodes.
func (n *Node) Cluster() *Cluster { return n.cluster }

// Cluster is a labeled layout grouping of nodes and sub-clusters. It carries
// no semantics beyond placement.
type Cluster struct {
	scope

	ID    string
	Label string
	Depth int // 0 for top-level clusters

	parent   *Cluster
	nodes    []*Node
	children []*Cluster
}

// Parent returns the enclosing cluster, or nil at top level.
func (c *Cluster) Parent() *Cluster { return c.parent }

// Members returns the nodes declared directly in this cluster.
func (c *Cluster) Members() []*Node { return c.nodes }

// Children returns the directly nested clusters.
func (c *Cluster) Children() []*Cluster { return c.children }

// Path returns the cluster labels from the outermost cluster down to c.
func (c *Cluster) Path() []string {
	var path []string
	for cur := c; cur != nil; cur = cur.parent {
		path = append([]string{cur.Label}, path...)
	}
	return path
}

// scope is where declarations land: the diagram itself or one of its clusters.
type scope struct {
	d    *Diagram
	into *Cluster // nil at top level
}

// Node declares a node of the given qualified kind (see [LookupKind]).
//
// An unknown kind is recorded as the diagram's error and returned by
// [Diagram.Flush]; the returned node is a detached placeholder so that the
// rest of the declaration can proceed linearly.
func (s scope) Node(kind, label string) *Node {
	return s.d.newNode(s.into, kind, label)
}

// NodeGroup declares one node of the same kind per label.
func (s scope) NodeGroup(kind string, labels ...string) Group {
	g := make(Group, len(labels))
	for i, l := range labels {
		g[i] = s.Node(kind, l)
	}
	return g
}

// Numbered declares n nodes of the same kind labeled prefix0 .. prefix(n-1).
func (s scope) Numbered(kind, prefix string, n int) Group {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return s.NodeGroup(kind, labels...)
}

// Cluster opens a nested cluster, runs fn inside it and returns it.
// fn may be nil to declare an empty cluster that is filled in later.
func (s scope) Cluster(label string, fn func(c *Cluster)) *Cluster {
	c := s.d.newCluster(s.into, label)
	if fn != nil {
		fn(c)
	}
	return c
}

// Diagram collects nodes, clusters and edges until it is flushed to a file.
// It is not safe for concurrent use.
type Diagram struct {
	scope

	opts Options

	nodes       []*Node
	clusters    []*Cluster
	edges       []*Edge
	topNodes    []*Node
	topClusters []*Cluster

	seq    int
	err    error
	closed bool
}

// New opens a diagram. Options are defaulted and validated.
func New(opts Options) (*Diagram, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	d := &Diagram{opts: opts}
	d.scope = scope{d: d}
	return d, nil
}

// Render is the scoped form of a diagram: it opens one with opts, runs build
// to declare its contents and flushes it on return. Nothing is written when
// build fails or any declaration recorded an error.
//
// It returns the path of the written file.
func Render(ctx context.Context, opts Options, build func(d *Diagram) error) (string, error) {
	d, err := New(opts)
	if err != nil {
		return "", err
	}
	if err := build(d); err != nil {
		d.closed = true
		return "", err
	}
	return d.Flush(ctx)
}

// Options returns the effective (defaulted) options.
func (d *Diagram) Options() Options { return d.opts }

// Err returns the first error recorded during declaration.
func (d *Diagram) Err() error { return d.err }

// Nodes returns all nodes in declaration order.
func (d *Diagram) Nodes() []*Node { return d.nodes }

// Clusters returns all clusters in declaration order, outer before inner.
func (d *Diagram) Clusters() []*Cluster { return d.clusters }

// Edges returns all edges in declaration order.
func (d *Diagram) Edges() []*Edge { return d.edges }

// Closed reports whether the diagram has been flushed.
func (d *Diagram) Closed() bool { return d.closed }

// Stats summarizes the diagram structure.
type Stats struct {
	Nodes    int
	Clusters int
	Edges    int
	ByKind   map[string]int
}

// Stats counts nodes, clusters and edges.
func (d *Diagram) Stats() Stats {
	s := Stats{
		Nodes:    len(d.nodes),
		Clusters: len(d.clusters),
		Edges:    len(d.edges),
		ByKind:   make(map[string]int),
	}
	for _, n := range d.nodes {
		s.ByKind[n.Kind.String()]++
	}
	return s
}

// FindNodes returns the nodes whose label equals label.
func (d *Diagram) FindNodes(label string) []*Node {
	var out []*Node
	for _, n := range d.nodes {
		if n.Label == label {
			out = append(out, n)
		}
	}
	return out
}

// Flush renders the diagram and writes it to [Options.OutputPath]. The
// diagram is closed afterwards, whether or not flushing succeeded.
func (d *Diagram) Flush(ctx context.Context) (string, error) {
	if d.closed {
		return "", errors.New(errors.ErrCodeDiagramClosed, "diagram %q already flushed", d.opts.Name)
	}
	d.closed = true

	hooks := observability.Diagram()
	hooks.OnBuildComplete(ctx, d.opts.Name, observability.BuildStats{
		Nodes:    len(d.nodes),
		Clusters: len(d.clusters),
		Edges:    len(d.edges),
	}, d.err)
	if d.err != nil {
		return "", d.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	format := string(d.opts.Format)
	hooks.OnRenderStart(ctx, d.opts.Name, format)
	start := time.Now()
	data, err := d.render(ctx)
	hooks.OnRenderComplete(ctx, d.opts.Name, format, len(data), time.Since(start), err)
	if err != nil {
		return "", err
	}

	path := d.opts.OutputPath()
	err = writeFile(path, data)
	hooks.OnWrite(ctx, path, len(data), err)
	if err != nil {
		return "", err
	}
	return path, nil
}

func (d *Diagram) render(ctx context.Context) ([]byte, error) {
	dot := d.DOT()
	if d.opts.Format == FormatDOT {
		return []byte(dot), nil
	}
	return d.opts.Renderer.Render(ctx, dot, d.opts.Format)
}

func (d *Diagram) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Diagram) nextID() string {
	d.seq++
	id := uuid.NewSHA1(idNamespace, fmt.Appendf(nil, "%s\x00%d", d.opts.Name, d.seq))
	return strings.ReplaceAll(id.String(), "-", "")
}

func (d *Diagram) newNode(parent *Cluster, kind, label string) *Node {
	if d.closed {
		d.fail(errors.New(errors.ErrCodeDiagramClosed, "node %q declared after flush", label))
		return &Node{Label: label}
	}
	k, err := LookupKind(kind)
	if err != nil {
		d.fail(err)
		return &Node{Label: label}
	}

	n := &Node{ID: d.nextID(), Kind: k, Label: label, d: d, cluster: parent}
	d.nodes = append(d.nodes, n)
	if parent == nil {
		d.topNodes = append(d.topNodes, n)
	} else {
		parent.nodes = append(parent.nodes, n)
	}
	return n
}

func (d *Diagram) newCluster(parent *Cluster, label string) *Cluster {
	if d.closed {
		d.fail(errors.New(errors.ErrCodeDiagramClosed, "cluster %q declared after flush", label))
		return &Cluster{scope: scope{d: d}, Label: label}
	}

	c := &Cluster{ID: "cluster_" + d.nextID(), Label: label, parent: parent}
	c.scope = scope{d: d, into: c}
	d.clusters = append(d.clusters, c)
	if parent == nil {
		d.topClusters = append(d.topClusters, c)
	} else {
		c.Depth = parent.Depth + 1
		parent.children = append(parent.children, c)
	}
	return c
}

func (d *Diagram) connect(from, to *Node, arrow Arrow, attrs Attrs) {
	switch {
	case d.closed:
		d.fail(errors.New(errors.ErrCodeDiagramClosed, "edge %q -> %q declared after flush", from.Label, to.Label))
		return
	case from.d == nil || to.d == nil:
		// A placeholder from a failed declaration; that failure is already recorded.
		return
	case from.d != d || to.d != d:
		d.fail(errors.New(errors.ErrCodeInvalidInput, "edge %q -> %q uses a node from another diagram", from.Label, to.Label))
		return
	}
	d.edges = append(d.edges, &Edge{From: from, To: to, Arrow: arrow, Attrs: attrs})
}
