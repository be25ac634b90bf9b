package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ccu3/archdiagram/pkg/diagram"
)

// Snapshot is the serializable structure of a diagram.
type Snapshot struct {
	Title     string    `json:"title" yaml:"title"`
	Direction string    `json:"direction" yaml:"direction"`
	Nodes     []Node    `json:"nodes" yaml:"nodes"`
	Clusters  []Cluster `json:"clusters" yaml:"clusters"`
	Edges     []Edge    `json:"edges" yaml:"edges"`
}

// Node is a snapshot node.
type Node struct {
	ID      string   `json:"id" yaml:"id"`
	Kind    string   `json:"kind" yaml:"kind"`
	Label   string   `json:"label" yaml:"label"`
	Cluster []string `json:"cluster,omitempty" yaml:"cluster,omitempty"`
}

// Cluster is a snapshot cluster.
type Cluster struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Depth  int    `json:"depth" yaml:"depth"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// Edge is a snapshot edge.
type Edge struct {
	From   string            `json:"from" yaml:"from"`
	To     string            `json:"to" yaml:"to"`
	FromID string            `json:"from_id" yaml:"from_id"`
	ToID   string            `json:"to_id" yaml:"to_id"`
	Dir    string            `json:"dir" yaml:"dir"`
	Attrs  map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Take captures the structure of d.
func Take(d *diagram.Diagram) Snapshot {
	opts := d.Options()
	s := Snapshot{
		Title:     opts.Name,
		Direction: string(opts.Direction),
		Nodes:     make([]Node, len(d.Nodes())),
		Clusters:  make([]Cluster, len(d.Clusters())),
		Edges:     make([]Edge, len(d.Edges())),
	}

	for i, n := range d.Nodes() {
		nd := Node{ID: n.ID, Kind: n.Kind.String(), Label: n.Label}
		if c := n.Cluster(); c != nil {
			nd.Cluster = c.Path()
		}
		s.Nodes[i] = nd
	}
	for i, c := range d.Clusters() {
		cl := Cluster{ID: c.ID, Label: c.Label, Depth: c.Depth}
		if p := c.Parent(); p != nil {
			cl.Parent = p.ID
		}
		s.Clusters[i] = cl
	}
	for i, e := range d.Edges() {
		ed := Edge{
			From:   e.From.Label,
			To:     e.To.Label,
			FromID: e.From.ID,
			ToID:   e.To.ID,
			Dir:    e.Arrow.String(),
		}
		if attrs := e.Attrs.Map(); len(attrs) > 0 {
			ed.Attrs = attrs
		}
		s.Edges[i] = ed
	}
	return s
}

// WriteJSON encodes the structure of d as indented JSON and writes it to w.
func WriteJSON(d *diagram.Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Take(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes the structure of d as YAML and writes it to w.
func WriteYAML(d *diagram.Diagram, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Take(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes the structure of d to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *diagram.Diagram, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteJSON(d, w) })
}

// ExportYAML writes the structure of d to a YAML file at path.
func ExportYAML(d *diagram.Diagram, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteYAML(d, w) })
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
