package diagram

import (
	"maps"
)

// Arrow is the directionality of an edge, written as the Graphviz dir
// attribute. The edge itself always runs From -> To in declaration order.
type Arrow int

const (
	// ArrowNone draws a plain line.
	ArrowNone Arrow = iota
	// ArrowForward points at To.
	ArrowForward
	// ArrowBack points at From.
	ArrowBack
	// ArrowBoth points at both ends.
	ArrowBoth
)

// String returns the Graphviz dir value.
func (a Arrow) String() string {
	switch a {
	case ArrowForward:
		return "forward"
	case ArrowBack:
		return "back"
	case ArrowBoth:
		return "both"
	default:
		return "none"
	}
}

// Attrs are the optional visual attributes of an edge. Extra carries any
// further Graphviz edge attribute; the named fields win over Extra.
type Attrs struct {
	Color string
	Style string
	Label string
	Extra map[string]string
}

// merge overlays b onto a.
func (a Attrs) merge(b Attrs) Attrs {
	out := Attrs{Color: a.Color, Style: a.Style, Label: a.Label}
	if b.Color != "" {
		out.Color = b.Color
	}
	if b.Style != "" {
		out.Style = b.Style
	}
	if b.Label != "" {
		out.Label = b.Label
	}
	if len(a.Extra) > 0 || len(b.Extra) > 0 {
		out.Extra = make(map[string]string, len(a.Extra)+len(b.Extra))
		maps.Copy(out.Extra, a.Extra)
		maps.Copy(out.Extra, b.Extra)
	}
	return out
}

// Map flattens the attributes into Graphviz key/value form.
func (a Attrs) Map() map[string]string {
	m := make(map[string]string, len(a.Extra)+3)
	maps.Copy(m, a.Extra)
	if a.Color != "" {
		m["color"] = a.Color
	}
	if a.Style != "" {
		m["style"] = a.Style
	}
	if a.Label != "" {
		m["label"] = a.Label
	}
	return m
}

// Edge connects two nodes.
type Edge struct {
	From  *Node
	To    *Node
	Arrow Arrow
	Attrs Attrs
}

// Endpoint is one side of a connection: a single [*Node] or a [Group].
type Endpoint interface {
	members() []*Node
}

// Group is an ordered set of nodes used as a fan-out or fan-in endpoint.
type Group []*Node

func (g Group) members() []*Node { return g }

// Chain declares a sequence of connections in a single statement. Each step
// connects every node of the current endpoint to every node of the next one,
// then advances to that next endpoint:
//
//	d.Chain(database).Forward(streams).Forward(gateway)
//
// declares database -> each stream and each stream -> gateway.
type Chain struct {
	d   *Diagram
	cur []*Node
}

// Chain starts a connection chain at from.
func (d *Diagram) Chain(from Endpoint) *Chain {
	return &Chain{d: d, cur: from.members()}
}

// Forward connects the current endpoint to next with an arrow at next.
func (c *Chain) Forward(next Endpoint, attrs ...Attrs) *Chain {
	return c.step(next, ArrowForward, attrs)
}

// Back connects the current endpoint to next with an arrow at the current end.
func (c *Chain) Back(next Endpoint, attrs ...Attrs) *Chain {
	return c.step(next, ArrowBack, attrs)
}

// Both connects the current endpoint to next with arrows at both ends.
func (c *Chain) Both(next Endpoint, attrs ...Attrs) *Chain {
	return c.step(next, ArrowBoth, attrs)
}

// Line connects the current endpoint to next without arrows.
func (c *Chain) Line(next Endpoint, attrs ...Attrs) *Chain {
	return c.step(next, ArrowNone, attrs)
}

// End returns the endpoint the chain currently stands on.
func (c *Chain) End() Group {
	return Group(c.cur)
}

func (c *Chain) step(next Endpoint, arrow Arrow, attrs []Attrs) *Chain {
	var merged Attrs
	for _, a := range attrs {
		merged = merged.merge(a)
	}
	to := next.members()
	for _, from := range c.cur {
		for _, n := range to {
			c.d.connect(from, n, arrow, merged)
		}
	}
	c.cur = to
	return c
}
