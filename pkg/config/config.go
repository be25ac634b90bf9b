// Package config loads optional render overrides for archdiagram.
//
// Nothing is read unless a file is named explicitly. TOML and YAML are both
// accepted, chosen by file extension:
//
//	# archdiagram.toml
//	output_dir  = "docs/diagrams"
//	format      = "png"
//	direction   = "LR"
//	curve_style = "ortho"
//
//	[graph_attr]
//	pad = "1.0"
//
// Only set keys take effect; everything else keeps the diagram's own values.
package config

import (
	"bytes"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ccu3/archdiagram/pkg/diagram"
	"github.com/ccu3/archdiagram/pkg/errors"
)

// Config holds render overrides.
type Config struct {
	OutputDir  string            `toml:"output_dir" yaml:"output_dir"`
	Format     string            `toml:"format" yaml:"format"`
	Direction  string            `toml:"direction" yaml:"direction"`
	CurveStyle string            `toml:"curve_style" yaml:"curve_style"`
	GraphAttr  map[string]string `toml:"graph_attr" yaml:"graph_attr"`
	NodeAttr   map[string]string `toml:"node_attr" yaml:"node_attr"`
	EdgeAttr   map[string]string `toml:"edge_attr" yaml:"edge_attr"`
}

// Load reads and decodes the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Decode parses data as TOML or YAML according to ext (".toml", ".yaml", ".yml").
func Decode(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config extension %q (want .toml, .yaml or .yml)", ext)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, attrs := range []map[string]string{c.GraphAttr, c.NodeAttr, c.EdgeAttr} {
		for k := range attrs {
			if err := errors.ValidateAttrName(k); err != nil {
				return err
			}
		}
	}
	return nil
}

// Apply overlays the set values of c onto opts.
func (c *Config) Apply(opts *diagram.Options) error {
	if c.OutputDir != "" {
		opts.Dir = c.OutputDir
	}
	if c.Format != "" {
		f, err := diagram.ParseFormat(c.Format)
		if err != nil {
			return err
		}
		opts.Format = f
	}
	if c.Direction != "" {
		d, err := diagram.ParseDirection(c.Direction)
		if err != nil {
			return err
		}
		opts.Direction = d
	}
	if c.CurveStyle != "" {
		cs, err := diagram.ParseCurveStyle(c.CurveStyle)
		if err != nil {
			return err
		}
		opts.CurveStyle = cs
	}
	opts.GraphAttr = overlay(opts.GraphAttr, c.GraphAttr)
	opts.NodeAttr = overlay(opts.NodeAttr, c.NodeAttr)
	opts.EdgeAttr = overlay(opts.EdgeAttr, c.EdgeAttr)
	return nil
}

func overlay(base, over map[string]string) map[string]string {
	if len(over) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(over))
	maps.Copy(out, base)
	maps.Copy(out, over)
	return out
}
