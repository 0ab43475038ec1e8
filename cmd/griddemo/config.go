// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"gioui.org/grid/cssgrid"
	"gioui.org/grid/layout"
	"gioui.org/grid/unit"
	"gioui.org/grid/widget"
)

var (
	errInvalidTrack  = errors.New("invalid track")
	errInvalidValue  = errors.New("invalid value")
	errUnknownKind   = errors.New("unknown child kind")
	errUnknownColor  = errors.New("unknown color")
	errUndecodedKeys = errors.New("unknown keys")
)

// sceneFile is the TOML form of a scene: a grid whose children
// are boxes, labels or further grids.
type sceneFile struct {
	Grid gridConfig `toml:"grid"`
}

type gridConfig struct {
	Columns     []string `toml:"columns"`
	Rows        []string `toml:"rows"`
	AutoColumns []string `toml:"auto_columns"`
	AutoRows    []string `toml:"auto_rows"`
	ColumnGap   float32  `toml:"column_gap"`
	RowGap      float32  `toml:"row_gap"`
	Padding     float32  `toml:"padding"`
	// AutoFlow is one of "row", "column", "row dense" and
	// "column dense".
	AutoFlow       string `toml:"auto_flow"`
	JustifyContent string `toml:"justify_content"`
	AlignContent   string `toml:"align_content"`
	// Width and Height are "fill", "shrink" or a number of
	// pixels.
	Width    string        `toml:"width"`
	Height   string        `toml:"height"`
	Children []childConfig `toml:"child"`
}

type childConfig struct {
	// Kind is "fill", "label" or "grid".
	Kind     string  `toml:"kind"`
	Color    string  `toml:"color"`
	Width    float32 `toml:"width"`
	Height   float32 `toml:"height"`
	Text     string  `toml:"text"`
	MaxLines int     `toml:"max_lines"`

	Column     int      `toml:"column"`
	Row        int      `toml:"row"`
	ColumnSpan int      `toml:"column_span"`
	RowSpan    int      `toml:"row_span"`
	Justify    string   `toml:"justify"`
	Align      string   `toml:"align"`
	Margin     float32  `toml:"margin"`
	Position   string   `toml:"position"`
	Left       *float32 `toml:"left"`
	Top        *float32 `toml:"top"`
	Right      *float32 `toml:"right"`
	Bottom     *float32 `toml:"bottom"`

	Grid *gridConfig `toml:"grid"`
}

// loadSceneFile reads a scene from the TOML file at path.
func loadSceneFile(path string) (scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return scene{}, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	sc, err := loadScene(f)
	if err != nil {
		return scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func loadScene(r io.Reader) (scene, error) {
	var f sceneFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return scene{}, fmt.Errorf("decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return scene{}, fmt.Errorf("%w: %s", errUndecodedKeys, strings.Join(keys, ", "))
	}
	g, n, err := f.Grid.build("grid")
	if err != nil {
		return scene{}, err
	}
	return scene{Root: g, Nodes: n}, nil
}

// build returns the grid described by c and the number of its
// descendants.
func (c *gridConfig) build(path string) (*widget.Grid, int, error) {
	g := widget.NewGrid()
	var err error
	s := g.Style()
	if s.TemplateColumns, err = parseTracks(c.Columns); err != nil {
		return nil, 0, fmt.Errorf("%s.columns: %w", path, err)
	}
	if s.TemplateRows, err = parseTracks(c.Rows); err != nil {
		return nil, 0, fmt.Errorf("%s.rows: %w", path, err)
	}
	if s.AutoColumns, err = parseTracks(c.AutoColumns); err != nil {
		return nil, 0, fmt.Errorf("%s.auto_columns: %w", path, err)
	}
	if s.AutoRows, err = parseTracks(c.AutoRows); err != nil {
		return nil, 0, fmt.Errorf("%s.auto_rows: %w", path, err)
	}
	s.ColumnGap = cssgrid.Px(c.ColumnGap)
	s.RowGap = cssgrid.Px(c.RowGap)
	s.Padding = cssgrid.UniformEdges(cssgrid.Px(c.Padding))
	if s.AutoFlow, err = parseAutoFlow(c.AutoFlow); err != nil {
		return nil, 0, fmt.Errorf("%s.auto_flow: %w", path, err)
	}
	if s.JustifyContent, err = parseContentAlign(c.JustifyContent); err != nil {
		return nil, 0, fmt.Errorf("%s.justify_content: %w", path, err)
	}
	if s.AlignContent, err = parseContentAlign(c.AlignContent); err != nil {
		return nil, 0, fmt.Errorf("%s.align_content: %w", path, err)
	}
	g.SetStyle(s)
	w, err := parseLength(c.Width)
	if err != nil {
		return nil, 0, fmt.Errorf("%s.width: %w", path, err)
	}
	h, err := parseLength(c.Height)
	if err != nil {
		return nil, 0, fmt.Errorf("%s.height: %w", path, err)
	}
	g.Width(w).Height(h)

	count := 0
	for i := range c.Children {
		cpath := fmt.Sprintf("%s.child[%d]", path, i)
		el, n, err := c.Children[i].build(cpath)
		if err != nil {
			return nil, 0, err
		}
		style, err := c.Children[i].style()
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", cpath, err)
		}
		g.Append(el, style)
		count += 1 + n
	}
	return g, count, nil
}

func (c *childConfig) build(path string) (layout.Element, int, error) {
	switch c.Kind {
	case "", "fill":
		col, err := parseColor(c.Color)
		if err != nil {
			return nil, 0, fmt.Errorf("%s.color: %w", path, err)
		}
		return &widget.Fill{Color: col, Width: unit.Dp(c.Width), Height: unit.Dp(c.Height)}, 0, nil
	case "label":
		name := c.Color
		if name == "" {
			name = "black"
		}
		col, err := parseColor(name)
		if err != nil {
			return nil, 0, fmt.Errorf("%s.color: %w", path, err)
		}
		return &widget.Label{Text: c.Text, Color: col, MaxLines: c.MaxLines}, 0, nil
	case "grid":
		if c.Grid == nil {
			return widget.NewGrid(), 0, nil
		}
		return c.Grid.build(path + ".grid")
	default:
		return nil, 0, fmt.Errorf("%s.kind: %w: %q", path, errUnknownKind, c.Kind)
	}
}

// style returns the grid item style of the child.
func (c *childConfig) style() (cssgrid.Style, error) {
	var s cssgrid.Style
	s.Column = placement(c.Column, c.ColumnSpan)
	s.Row = placement(c.Row, c.RowSpan)
	var err error
	if s.JustifySelf, err = parseItemAlign(c.Justify); err != nil {
		return s, fmt.Errorf("justify: %w", err)
	}
	if s.AlignSelf, err = parseItemAlign(c.Align); err != nil {
		return s, fmt.Errorf("align: %w", err)
	}
	s.Margin = cssgrid.UniformEdges(cssgrid.Px(c.Margin))
	switch c.Position {
	case "", "relative":
	case "absolute":
		s.Position = cssgrid.Absolute
	default:
		return s, fmt.Errorf("position: %w: %q", errInvalidValue, c.Position)
	}
	inset := func(v *float32) cssgrid.Dimension {
		if v == nil {
			return cssgrid.Auto
		}
		return cssgrid.Px(*v)
	}
	s.Inset = cssgrid.Edges{
		Left:   inset(c.Left),
		Right:  inset(c.Right),
		Top:    inset(c.Top),
		Bottom: inset(c.Bottom),
	}
	return s, nil
}

func placement(line, span int) cssgrid.Placement {
	p := cssgrid.Placement{Start: cssgrid.LineAt(line)}
	if span > 0 {
		p.End = cssgrid.Span(span)
	}
	return p
}

func parseTracks(specs []string) ([]cssgrid.Track, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	tracks := make([]cssgrid.Track, len(specs))
	for i, s := range specs {
		t, err := parseTrack(s)
		if err != nil {
			return nil, err
		}
		tracks[i] = t
	}
	return tracks, nil
}

// parseTrack parses a track in CSS notation: a number of pixels,
// a percentage, a fraction such as "1fr", one of "auto",
// "min-content" and "max-content", "minmax(min, max)" or
// "fit-content(limit)".
func parseTrack(s string) (cssgrid.Track, error) {
	t, err := parseTrackFunc(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return cssgrid.Track{}, fmt.Errorf("track %q: %w", s, err)
	}
	return t, nil
}

func parseTrackFunc(s string) (cssgrid.Track, error) {
	switch s {
	case "auto":
		return cssgrid.AutoTrack(), nil
	case "min-content":
		return cssgrid.MinContent(), nil
	case "max-content":
		return cssgrid.MaxContent(), nil
	}
	if args, ok := call(s, "minmax"); ok {
		a, b, ok := strings.Cut(args, ",")
		if !ok {
			return cssgrid.Track{}, errInvalidTrack
		}
		lo, err := parseTrackFunc(strings.TrimSpace(a))
		if err != nil {
			return cssgrid.Track{}, err
		}
		hi, err := parseTrackFunc(strings.TrimSpace(b))
		if err != nil {
			return cssgrid.Track{}, err
		}
		return cssgrid.MinMax(lo, hi), nil
	}
	if arg, ok := call(s, "fit-content"); ok {
		v, err := parseNumber(strings.TrimSuffix(strings.TrimSpace(arg), "px"))
		if err != nil {
			return cssgrid.Track{}, err
		}
		return cssgrid.FitContent(v), nil
	}
	if v, ok := strings.CutSuffix(s, "fr"); ok {
		f, err := parseNumber(v)
		if err != nil {
			return cssgrid.Track{}, err
		}
		return cssgrid.Fr(f), nil
	}
	if v, ok := strings.CutSuffix(s, "%"); ok {
		f, err := parseNumber(v)
		if err != nil {
			return cssgrid.Track{}, err
		}
		return cssgrid.Percentage(f / 100), nil
	}
	v, err := parseNumber(strings.TrimSuffix(s, "px"))
	if err != nil {
		return cssgrid.Track{}, err
	}
	return cssgrid.Length(v), nil
}

// call returns the argument list of a function call of name in s.
func call(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return "", false
	}
	args, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return "", false
	}
	return args, true
}

func parseNumber(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || v < 0 {
		return 0, errInvalidTrack
	}
	return float32(v), nil
}

func parseLength(s string) (layout.Length, error) {
	switch s {
	case "", "fill":
		return layout.Fill, nil
	case "shrink":
		return layout.Shrink, nil
	}
	v, err := strconv.Atoi(strings.TrimSuffix(s, "px"))
	if err != nil || v < 0 {
		return layout.Length{}, fmt.Errorf("%w: %q", errInvalidValue, s)
	}
	return layout.Fixed(v), nil
}

func parseAutoFlow(s string) (cssgrid.AutoFlow, error) {
	switch strings.Join(strings.Fields(s), " ") {
	case "", "row":
		return cssgrid.FlowRow, nil
	case "column":
		return cssgrid.FlowColumn, nil
	case "row dense", "dense":
		return cssgrid.FlowRowDense, nil
	case "column dense":
		return cssgrid.FlowColumnDense, nil
	}
	return 0, fmt.Errorf("%w: %q", errInvalidValue, s)
}

func parseContentAlign(s string) (cssgrid.ContentAlign, error) {
	switch s {
	case "", "normal":
		return cssgrid.ContentNormal, nil
	case "start":
		return cssgrid.ContentStart, nil
	case "end":
		return cssgrid.ContentEnd, nil
	case "center":
		return cssgrid.ContentCenter, nil
	case "stretch":
		return cssgrid.ContentStretch, nil
	case "space-between":
		return cssgrid.ContentSpaceBetween, nil
	case "space-around":
		return cssgrid.ContentSpaceAround, nil
	case "space-evenly":
		return cssgrid.ContentSpaceEvenly, nil
	}
	return 0, fmt.Errorf("%w: %q", errInvalidValue, s)
}

func parseItemAlign(s string) (cssgrid.ItemAlign, error) {
	switch s {
	case "", "auto":
		return cssgrid.AlignAuto, nil
	case "start":
		return cssgrid.AlignStart, nil
	case "end":
		return cssgrid.AlignEnd, nil
	case "center":
		return cssgrid.AlignCenter, nil
	case "stretch":
		return cssgrid.AlignStretch, nil
	}
	return 0, fmt.Errorf("%w: %q", errInvalidValue, s)
}

// parseColor looks up an SVG color name, or parses "#rrggbb".
func parseColor(s string) (color.NRGBA, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", errUnknownColor, s)
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	if s == "" {
		s = "gray"
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", errUnknownColor, s)
	}
	return nrgba(c), nil
}
