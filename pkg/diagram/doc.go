// Package diagram builds architecture diagrams from declarative Go code and
// renders them with Graphviz.
//
// # Overview
//
// A diagram is a graph of typed nodes (icons from a closed palette such as
// "aws/compute/Lambda"), nestable clusters that only affect layout, and
// edges with optional color, line style and label. The whole description is
// collected in memory and flushed to exactly one image file.
//
// # Scoped Rendering
//
// [Render] opens a diagram, runs a build function and flushes on return:
//
//	path, err := diagram.Render(ctx, diagram.Options{
//	    Name:      "Web Service",
//	    Direction: diagram.BottomToTop,
//	}, func(d *diagram.Diagram) error {
//	    lb := d.Node(diagram.KindAPIGateway, "gateway")
//	    d.Cluster("workers", func(c *diagram.Cluster) {
//	        fns := c.Numbered(diagram.KindLambda, "worker", 3)
//	        d.Chain(lb).Forward(fns)
//	    })
//	    return nil
//	})
//
// Either the full diagram is written or nothing is: construction errors
// (unknown kinds, declarations after flush) are collected and returned by
// [Diagram.Flush] before the renderer runs, and the output file is replaced
// atomically.
//
// # Edges and Chains
//
// Edges are declared with [Diagram.Chain]. Each step connects every node of
// the current endpoint to every node of the next, so a [Group] fans out or in:
//
//	d.Chain(db).Forward(streams).Forward(gateway)        // db -> s_i -> gateway
//	d.Chain(web).Both(api, red).Forward(db, red)         // web <-> api -> db
//	d.Chain(client).Line(users, diagram.Attrs{Style: "dotted"})
//
// Arrow direction is written as the Graphviz dir attribute; the edge itself
// always runs in declaration order. Cycles are allowed and drawn as declared.
//
// # Determinism
//
// Node and cluster IDs are name-based UUIDs derived from the diagram name and
// declaration order, and attributes are emitted sorted, so [Diagram.DOT] is
// byte-identical across runs. Pixel identity of the image is up to Graphviz.
package diagram
