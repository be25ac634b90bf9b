package diagram

import (
	"path/filepath"
	"strings"

	"github.com/ccu3/archdiagram/pkg/errors"
)

// Format is an output file format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	// FormatDOT writes the Graphviz source without invoking the layout engine.
	FormatDOT Format = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[Format]bool{FormatSVG: true, FormatPNG: true, FormatJPG: true, FormatDOT: true}

// Direction is the Graphviz rankdir of the diagram.
type Direction string

const (
	TopToBottom Direction = "TB"
	BottomToTop Direction = "BT"
	LeftToRight Direction = "LR"
	RightToLeft Direction = "RL"
)

var validDirections = map[Direction]bool{TopToBottom: true, BottomToTop: true, LeftToRight: true, RightToLeft: true}

// CurveStyle is the Graphviz splines setting used for edges.
type CurveStyle string

const (
	CurveOrtho    CurveStyle = "ortho"
	CurveCurved   CurveStyle = "curved"
	CurveSpline   CurveStyle = "spline"
	CurvePolyline CurveStyle = "polyline"
)

var validCurveStyles = map[CurveStyle]bool{CurveOrtho: true, CurveCurved: true, CurveSpline: true, CurvePolyline: true}

// Options configures a diagram and its single output file.
//
// The zero value renders an untitled left-to-right SVG into the working
// directory. Name doubles as the graph label and, when Filename is empty,
// as the source of the output basename.
type Options struct {
	Name       string
	Filename   string // basename without extension
	Dir        string // output directory; "" means the working directory
	Format     Format
	Direction  Direction
	CurveStyle CurveStyle

	// GraphAttr, NodeAttr and EdgeAttr override the global defaults.
	GraphAttr map[string]string
	NodeAttr  map[string]string
	EdgeAttr  map[string]string

	// Renderer turns DOT into image bytes. Nil means Graphviz.
	Renderer Renderer
}

// SetDefaults fills unset fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if o.Direction == "" {
		o.Direction = LeftToRight
	}
	if o.CurveStyle == "" {
		o.CurveStyle = CurveOrtho
	}
	if o.Filename == "" {
		o.Filename = defaultFilename(o.Name)
	}
	if o.Renderer == nil {
		o.Renderer = GraphvizRenderer{}
	}
}

// Validate checks option values. Call after SetDefaults.
func (o *Options) Validate() error {
	if !ValidFormats[o.Format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'jpg', or 'dot')", o.Format)
	}
	if !validDirections[o.Direction] {
		return errors.New(errors.ErrCodeInvalidDirection, "invalid direction: %s (must be 'TB', 'BT', 'LR', or 'RL')", o.Direction)
	}
	if !validCurveStyles[o.CurveStyle] {
		return errors.New(errors.ErrCodeInvalidCurveStyle, "invalid curve style: %s (must be 'ortho', 'curved', 'spline', or 'polyline')", o.CurveStyle)
	}
	if err := errors.ValidateFilename(o.Filename); err != nil {
		return err
	}
	for _, attrs := range []map[string]string{o.GraphAttr, o.NodeAttr, o.EdgeAttr} {
		for k := range attrs {
			if err := errors.ValidateAttrName(k); err != nil {
				return err
			}
		}
	}
	return nil
}

// OutputPath is the file the diagram flushes to.
func (o Options) OutputPath() string {
	return filepath.Join(o.Dir, o.Filename+"."+string(o.Format))
}

// defaultFilename derives a basename from the diagram name: lowercased, with
// spaces replaced by underscores. An empty name yields "diagram".
func defaultFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "diagram"
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// ParseFormat converts a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !ValidFormats[f] {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'jpg', or 'dot')", s)
	}
	return f, nil
}

// ParseDirection converts a user-supplied direction string.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(s))
	if !validDirections[d] {
		return "", errors.New(errors.ErrCodeInvalidDirection, "invalid direction: %s (must be 'TB', 'BT', 'LR', or 'RL')", s)
	}
	return d, nil
}

// ParseCurveStyle converts a user-supplied curve style string.
func ParseCurveStyle(s string) (CurveStyle, error) {
	c := CurveStyle(strings.ToLower(s))
	if !validCurveStyles[c] {
		return "", errors.New(errors.ErrCodeInvalidCurveStyle, "invalid curve style: %s (must be 'ortho', 'curved', 'spline', or 'polyline')", s)
	}
	return c, nil
}
