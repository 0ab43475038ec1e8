// SPDX-License-Identifier: Unlicense OR MIT

package cssgrid

import (
	"fmt"
	"strconv"
)

// Display controls whether a node takes part in layout.
type Display uint8

const (
	DisplayGrid Display = iota
	// DisplayNone removes the node from layout. Its box is
	// reported empty through Tree.SetHidden.
	DisplayNone
)

// Position selects between grid placement and absolute
// positioning against the container.
type Position uint8

const (
	Relative Position = iota
	Absolute
)

// Dimension is a length in pixels, a fraction of a reference
// length, or auto. The zero value is auto.
type Dimension struct {
	kind dimKind
	v    float32
}

type dimKind uint8

const (
	dimAuto dimKind = iota
	dimPx
	dimPercent
)

// Auto is the automatic Dimension.
var Auto Dimension

// Px returns a Dimension of v pixels.
func Px(v float32) Dimension {
	return Dimension{kind: dimPx, v: v}
}

// Percent returns a Dimension of fraction f of the reference
// length. 0.5 is half.
func Percent(f float32) Dimension {
	return Dimension{kind: dimPercent, v: f}
}

// IsAuto reports whether d is auto.
func (d Dimension) IsAuto() bool {
	return d.kind == dimAuto
}

// Resolve d against the reference length basis. Auto, or a
// percentage of an undefined basis, resolves to None.
func (d Dimension) Resolve(basis Option) Option {
	switch d.kind {
	case dimPx:
		return Some(d.v)
	case dimPercent:
		if b, ok := basis.Get(); ok {
			return Some(d.v * b)
		}
	}
	return None
}

// resolveZero is Resolve with undefined results mapped to zero,
// for margins, padding and gaps.
func (d Dimension) resolveZero(basis Option) float32 {
	return d.Resolve(basis).Or(0)
}

func (d Dimension) String() string {
	switch d.kind {
	case dimPx:
		return strconv.FormatFloat(float64(d.v), 'g', -1, 32)
	case dimPercent:
		return strconv.FormatFloat(float64(d.v*100), 'g', -1, 32) + "%"
	default:
		return "auto"
	}
}

// Dimensions is a width and height pair of Dimensions.
type Dimensions struct {
	Width, Height Dimension
}

func (d Dimensions) get(a axis) Dimension {
	if a == horizontal {
		return d.Width
	}
	return d.Height
}

func (d Dimensions) resolve(basis KnownSize) KnownSize {
	return KnownSize{
		Width:  d.Width.Resolve(basis.Width),
		Height: d.Height.Resolve(basis.Height),
	}
}

// Edges holds a Dimension per side.
type Edges struct {
	Left, Right, Top, Bottom Dimension
}

// UniformEdges returns Edges with every side set to d.
func UniformEdges(d Dimension) Edges {
	return Edges{Left: d, Right: d, Top: d, Bottom: d}
}

type edges struct {
	left, right, top, bottom float32
}

// resolve all sides against basis, which is the inline size of
// the containing block for every side as in CSS.
func (e Edges) resolve(basis Option) edges {
	return edges{
		left:   e.Left.resolveZero(basis),
		right:  e.Right.resolveZero(basis),
		top:    e.Top.resolveZero(basis),
		bottom: e.Bottom.resolveZero(basis),
	}
}

func (e edges) sum(a axis) float32 {
	if a == horizontal {
		return e.left + e.right
	}
	return e.top + e.bottom
}

func (e edges) start(a axis) float32 {
	if a == horizontal {
		return e.left
	}
	return e.top
}

func (e edges) end(a axis) float32 {
	if a == horizontal {
		return e.right
	}
	return e.bottom
}

// SizingKind identifies a track sizing function.
type SizingKind uint8

const (
	SizingAuto SizingKind = iota
	SizingFixed
	SizingPercent
	SizingMinContent
	SizingMaxContent
	SizingFr
	SizingFitContent
)

// Sizing is one half of a track definition: the minimum or
// the maximum track sizing function.
type Sizing struct {
	Kind  SizingKind
	Value float32
}

func (s Sizing) String() string {
	switch s.Kind {
	case SizingFixed:
		return strconv.FormatFloat(float64(s.Value), 'g', -1, 32)
	case SizingPercent:
		return strconv.FormatFloat(float64(s.Value*100), 'g', -1, 32) + "%"
	case SizingMinContent:
		return "min-content"
	case SizingMaxContent:
		return "max-content"
	case SizingFr:
		return strconv.FormatFloat(float64(s.Value), 'g', -1, 32) + "fr"
	case SizingFitContent:
		return fmt.Sprintf("fit-content(%g)", s.Value)
	default:
		return "auto"
	}
}

// intrinsic reports whether the sizing function depends on
// content.
func (s Sizing) intrinsic() bool {
	switch s.Kind {
	case SizingAuto, SizingMinContent, SizingMaxContent, SizingFitContent:
		return true
	}
	return false
}

// Track is the sizing of a grid row or column, the equivalent
// of CSS minmax(Min, Max).
type Track struct {
	Min, Max Sizing
}

// Length returns a track of v pixels.
func Length(v float32) Track {
	s := Sizing{Kind: SizingFixed, Value: v}
	return Track{Min: s, Max: s}
}

// Percentage returns a track sized to fraction f of the
// container's inner size.
func Percentage(f float32) Track {
	s := Sizing{Kind: SizingPercent, Value: f}
	return Track{Min: s, Max: s}
}

// AutoTrack returns an auto sized track.
func AutoTrack() Track {
	return Track{}
}

// MinContent returns a track sized to the min-content
// contribution of its items.
func MinContent() Track {
	s := Sizing{Kind: SizingMinContent}
	return Track{Min: s, Max: s}
}

// MaxContent returns a track sized to the max-content
// contribution of its items.
func MaxContent() Track {
	s := Sizing{Kind: SizingMaxContent}
	return Track{Min: s, Max: s}
}

// Fr returns a flexible track of f fractions, equivalent to
// minmax(auto, <f>fr).
func Fr(f float32) Track {
	return Track{Max: Sizing{Kind: SizingFr, Value: f}}
}

// MinMax returns a track with the minimum sizing function of
// min and the maximum sizing function of max.
func MinMax(min, max Track) Track {
	m := min.Min
	if m.Kind == SizingFr {
		// A flexible minimum is invalid and treated as auto.
		m = Sizing{}
	}
	return Track{Min: m, Max: max.Max}
}

// FitContent returns a track that grows to its max-content
// contribution but no further than limit pixels.
func FitContent(limit float32) Track {
	return Track{Max: Sizing{Kind: SizingFitContent, Value: limit}}
}

func (t Track) String() string {
	if t.Min == t.Max {
		return t.Min.String()
	}
	switch {
	case t.Min.Kind == SizingAuto && t.Max.Kind == SizingFr:
		return t.Max.String()
	case t.Min.Kind == SizingAuto && t.Max.Kind == SizingFitContent:
		return t.Max.String()
	}
	return fmt.Sprintf("minmax(%s, %s)", t.Min, t.Max)
}

// Line is a grid line reference in a placement. The zero
// value is auto.
type Line struct {
	kind lineKind
	n    int
}

type lineKind uint8

const (
	lineAuto lineKind = iota
	lineNumber
	lineSpan
)

// AutoLine is the automatic Line.
var AutoLine Line

// LineAt returns a reference to grid line n. Lines are numbered
// from 1; negative numbers count back from the last explicit
// line. Zero is treated as auto.
func LineAt(n int) Line {
	if n == 0 {
		return Line{}
	}
	return Line{kind: lineNumber, n: n}
}

// Span returns a Line spanning n tracks. Values below 1 are
// treated as 1.
func Span(n int) Line {
	return Line{kind: lineSpan, n: max(1, n)}
}

func (l Line) String() string {
	switch l.kind {
	case lineNumber:
		return strconv.Itoa(l.n)
	case lineSpan:
		return "span " + strconv.Itoa(l.n)
	default:
		return "auto"
	}
}

// Placement places an item between a start and end line in
// one axis.
type Placement struct {
	Start, End Line
}

// Cell returns a placement starting at line start and spanning
// span tracks.
func Cell(start, span int) Placement {
	return Placement{Start: LineAt(start), End: Span(span)}
}

// AutoFlow controls the auto-placement algorithm.
type AutoFlow uint8

const (
	FlowRow AutoFlow = iota
	FlowColumn
	FlowRowDense
	FlowColumnDense
)

func (f AutoFlow) dense() bool {
	return f == FlowRowDense || f == FlowColumnDense
}

func (f AutoFlow) primary() axis {
	if f == FlowColumn || f == FlowColumnDense {
		return vertical
	}
	return horizontal
}

// ContentAlign distributes the tracks of a grid inside the
// container.
type ContentAlign uint8

const (
	// ContentNormal behaves as ContentStretch.
	ContentNormal ContentAlign = iota
	ContentStart
	ContentEnd
	ContentCenter
	ContentStretch
	ContentSpaceBetween
	ContentSpaceAround
	ContentSpaceEvenly
)

// ItemAlign aligns an item inside its grid area.
type ItemAlign uint8

const (
	// AlignAuto defers to the container's item alignment, and
	// stretches when set there.
	AlignAuto ItemAlign = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignStretch
)

func (a ItemAlign) or(def ItemAlign) ItemAlign {
	if a == AlignAuto {
		return def
	}
	return a
}

// Style describes a grid container or a grid item. The zero
// Style is a valid grid item with auto size and auto placement,
// and a valid container with no explicit tracks.
type Style struct {
	Display  Display
	Position Position
	// Inset offsets absolutely positioned items from the
	// container edges.
	Inset Edges

	Size, MinSize, MaxSize Dimensions
	Margin, Padding        Edges

	ColumnGap, RowGap Dimension

	TemplateColumns, TemplateRows []Track
	// AutoColumns and AutoRows size implicit tracks, repeating
	// when there are more implicit tracks than entries.
	AutoColumns, AutoRows []Track
	AutoFlow              AutoFlow

	Column, Row Placement

	JustifyContent, AlignContent ContentAlign
	JustifyItems, AlignItems     ItemAlign
	JustifySelf, AlignSelf       ItemAlign
}

func (s *Style) gap(a axis) Dimension {
	if a == horizontal {
		return s.ColumnGap
	}
	return s.RowGap
}

func (s *Style) template(a axis) []Track {
	if a == horizontal {
		return s.TemplateColumns
	}
	return s.TemplateRows
}

func (s *Style) autoTracks(a axis) []Track {
	if a == horizontal {
		return s.AutoColumns
	}
	return s.AutoRows
}

func (s *Style) placement(a axis) Placement {
	if a == horizontal {
		return s.Column
	}
	return s.Row
}

func (s *Style) contentAlign(a axis) ContentAlign {
	if a == horizontal {
		return s.JustifyContent
	}
	return s.AlignContent
}

// itemAlign returns the alignment of item s inside container c.
func (s *Style) itemAlign(c *Style, a axis) ItemAlign {
	if a == horizontal {
		return s.JustifySelf.or(c.JustifyItems.or(AlignStretch))
	}
	return s.AlignSelf.or(c.AlignItems.or(AlignStretch))
}
