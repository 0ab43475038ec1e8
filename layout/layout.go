// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"strconv"

	"gioui.org/grid/f32"
	"gioui.org/grid/io/event"
	"gioui.org/grid/io/pointer"
	"gioui.org/grid/unit"
)

// Inf is the constraint maximum of an unbounded axis. Any
// maximum at or above Inf is treated as unbounded.
const Inf = 1 << 24

// Constraints represent the minimum and maximum size of a widget.
//
// A widget does not have to treat its constraints as "hard". For
// example, if it's passed a constraint with a minimum size that's
// smaller than its actual minimum size, it should return its minimum
// size dimensions instead. Parent widgets should deal appropriately
// with child widgets that return dimensions that do not fit their
// constraints (for example, by clipping).
type Constraints struct {
	Min, Max image.Point
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the mutual alignment of a list of widgets.
type Alignment uint8

// Direction is the alignment of widgets relative to a containing
// space.
type Direction uint8

const (
	Start Alignment = iota
	End
	Middle
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

const (
	Horizontal Axis = iota
	Vertical
)

// Exact returns the Constraints with the minimum and maximum size
// set to size.
func Exact(size image.Point) Constraints {
	return Constraints{
		Min: size, Max: size,
	}
}

// Loose returns Constraints with a zero minimum and a maximum set
// to size.
func Loose(size image.Point) Constraints {
	return Constraints{
		Max: size,
	}
}

// Unbounded returns Constraints with a zero minimum and no maximum.
func Unbounded() Constraints {
	return Constraints{
		Max: image.Point{X: Inf, Y: Inf},
	}
}

// Constrain a size so each dimension is in the range [min;max].
func (c Constraints) Constrain(size image.Point) image.Point {
	if min := c.Min.X; size.X < min {
		size.X = min
	}
	if min := c.Min.Y; size.Y < min {
		size.Y = min
	}
	if max := c.Max.X; size.X > max {
		size.X = max
	}
	if max := c.Max.Y; size.Y > max {
		size.Y = max
	}
	return size
}

// AddMin returns a copy of Constraints with the Min constraint enlarged by up to delta
// while still fitting within the Max constraint. The Min constraint will always be
// clamped at or above zero.
func (c Constraints) AddMin(delta image.Point) Constraints {
	c.Min = c.Min.Add(delta)
	if c.Min.X < 0 {
		c.Min.X = 0
	}
	if c.Min.Y < 0 {
		c.Min.Y = 0
	}
	c.Min = c.Constrain(c.Min)
	return c
}

// SubMax returns a copy of Constraints with the Max constraint shrunk by up to delta
// while still fitting within the Min constraint. The Max constraint will always be
// clamped at or above zero. Unbounded axes stay unbounded.
func (c Constraints) SubMax(delta image.Point) Constraints {
	if c.Max.X < Inf {
		c.Max.X -= delta.X
	}
	if c.Max.Y < Inf {
		c.Max.Y -= delta.Y
	}
	if c.Max.X < 0 {
		c.Max.X = 0
	}
	if c.Max.Y < 0 {
		c.Max.Y = 0
	}
	c.Max = c.Constrain(c.Max)
	return c
}

// BoundedX reports whether the maximum width is finite.
func (c Constraints) BoundedX() bool {
	return c.Max.X < Inf
}

// BoundedY reports whether the maximum height is finite.
func (c Constraints) BoundedY() bool {
	return c.Max.Y < Inf
}

// TightX reports whether the width is fixed: the minimum equals
// the maximum and both are finite.
func (c Constraints) TightX() bool {
	return c.Min.X == c.Max.X && c.Min.X < Inf
}

// TightY reports whether the height is fixed: the minimum equals
// the maximum and both are finite.
func (c Constraints) TightY() bool {
	return c.Min.Y == c.Max.Y && c.Min.Y < Inf
}

// Width returns c with the horizontal range adjusted to the size
// policy l.
func (c Constraints) Width(l Length) Constraints {
	c.Min.X, c.Max.X = l.apply(c.Min.X, c.Max.X)
	return c
}

// Height returns c with the vertical range adjusted to the size
// policy l.
func (c Constraints) Height(l Length) Constraints {
	c.Min.Y, c.Max.Y = l.apply(c.Min.Y, c.Max.Y)
	return c
}

// Length is a size policy for one axis of a widget.
type Length struct {
	kind lengthKind
	px   int
}

type lengthKind uint8

const (
	lengthFill lengthKind = iota
	lengthShrink
	lengthFixed
)

var (
	// Fill takes all the space allowed by a bounded maximum.
	Fill = Length{kind: lengthFill}
	// Shrink leaves the constraints as they are and lets the
	// content decide.
	Shrink = Length{kind: lengthShrink}
)

// Fixed returns a Length of exactly px pixels, clamped to the
// incoming range.
func Fixed(px int) Length {
	return Length{kind: lengthFixed, px: px}
}

func (l Length) apply(min, max int) (int, int) {
	switch l.kind {
	case lengthFill:
		if max < Inf {
			min = max
		}
	case lengthFixed:
		v := l.px
		if v > max {
			v = max
		}
		if v < min {
			v = min
		}
		min, max = v, v
	}
	return min, max
}

func (l Length) String() string {
	switch l.kind {
	case lengthFill:
		return "Fill"
	case lengthShrink:
		return "Shrink"
	case lengthFixed:
		return "Fixed(" + strconv.Itoa(l.px) + ")"
	default:
		panic("unreachable")
	}
}

// Inset adds space around an element.
type Inset struct {
	Top, Bottom, Left, Right unit.Dp
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Dp) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Around returns an Element laying out child inside the inset.
func (in Inset) Around(child Element) Element {
	return &inset{Inset: in, child: child}
}

type inset struct {
	Inset
	child Element
}

func (in *inset) edges(gtx Context) (topLeft, total image.Point) {
	top := gtx.Dp(in.Top)
	right := gtx.Dp(in.Right)
	bottom := gtx.Dp(in.Bottom)
	left := gtx.Dp(in.Left)
	return image.Point{X: left, Y: top}, image.Point{X: left + right, Y: top + bottom}
}

func (in *inset) constraints(gtx Context) (Context, image.Point, image.Point) {
	tl, total := in.edges(gtx)
	mcs := gtx.Constraints
	mcs.Max = mcs.Max.Sub(total)
	if mcs.Max.X < 0 {
		tl.X, total.X = 0, 0
		mcs.Max.X = 0
	}
	if mcs.Max.Y < 0 {
		tl.Y, total.Y = 0, 0
		mcs.Max.Y = 0
	}
	if gtx.Constraints.Max.X >= Inf {
		mcs.Max.X = Inf
	}
	if gtx.Constraints.Max.Y >= Inf {
		mcs.Max.Y = Inf
	}
	mcs.Min = mcs.Min.Sub(total)
	if mcs.Min.X < 0 {
		mcs.Min.X = 0
	}
	if mcs.Min.Y < 0 {
		mcs.Min.Y = 0
	}
	if mcs.Min.X > mcs.Max.X {
		mcs.Min.X = mcs.Max.X
	}
	if mcs.Min.Y > mcs.Max.Y {
		mcs.Min.Y = mcs.Max.Y
	}
	gtx.Constraints = mcs
	return gtx, tl, total
}

func (in *inset) Measure(gtx Context) image.Point {
	cgtx, _, total := in.constraints(gtx)
	return in.child.Measure(cgtx).Add(total)
}

func (in *inset) Layout(gtx Context) Node {
	cgtx, tl, total := in.constraints(gtx)
	n := in.child.Layout(cgtx)
	n.Offset = tl
	return Node{Size: n.Size.Add(total), Children: []Node{n}}
}

func (in *inset) Version() uint64 {
	return VersionOf(in.child)
}

func (in *inset) Event(gtx Context, b Box, ev event.Event) event.Status {
	return in.child.Event(gtx, b.Child(0), ev)
}

func (in *inset) Cursor(b Box, pos f32.Point) pointer.Cursor {
	return in.child.Cursor(b.Child(0), pos)
}

func (in *inset) Draw(gtx Context, b Box) {
	in.child.Draw(gtx, b.Child(0))
}

func (in *inset) Overlay(b Box) Element {
	return in.child.Overlay(b.Child(0))
}

func (in *inset) Operate(b Box, v Visitor) {
	in.child.Operate(b.Child(0), v)
}

// Align returns an Element that positions child in the available
// space according to d. The child is laid out with a zero minimum
// size.
func (d Direction) Align(child Element) Element {
	return &align{dir: d, child: child}
}

type align struct {
	dir   Direction
	child Element
}

func (a *align) Measure(gtx Context) image.Point {
	cs := gtx.Constraints
	gtx.Constraints.Min = image.Point{}
	sz := a.child.Measure(gtx)
	return grow(sz, cs)
}

func (a *align) Layout(gtx Context) Node {
	cs := gtx.Constraints
	gtx.Constraints.Min = image.Point{}
	n := a.child.Layout(gtx)
	sz := grow(n.Size, cs)
	n.Offset = a.dir.Position(n.Size, sz)
	return Node{Size: sz, Children: []Node{n}}
}

func (a *align) Version() uint64 {
	return VersionOf(a.child)
}

func (a *align) Event(gtx Context, b Box, ev event.Event) event.Status {
	return a.child.Event(gtx, b.Child(0), ev)
}

func (a *align) Cursor(b Box, pos f32.Point) pointer.Cursor {
	return a.child.Cursor(b.Child(0), pos)
}

func (a *align) Draw(gtx Context, b Box) {
	a.child.Draw(gtx, b.Child(0))
}

func (a *align) Overlay(b Box) Element {
	return a.child.Overlay(b.Child(0))
}

func (a *align) Operate(b Box, v Visitor) {
	a.child.Operate(b.Child(0), v)
}

// grow enlarges sz to the minimum of cs.
func grow(sz image.Point, cs Constraints) image.Point {
	if sz.X < cs.Min.X {
		sz.X = cs.Min.X
	}
	if sz.Y < cs.Min.Y {
		sz.Y = cs.Min.Y
	}
	return sz
}

// Position calculates widget position according to the direction.
func (d Direction) Position(widget, bounds image.Point) image.Point {
	var p image.Point

	switch d {
	case N, S, Center:
		p.X = (bounds.X - widget.X) / 2
	case NE, SE, E:
		p.X = bounds.X - widget.X
	}

	switch d {
	case W, Center, E:
		p.Y = (bounds.Y - widget.Y) / 2
	case SW, S, SE:
		p.Y = bounds.Y - widget.Y
	}

	return p
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt image.Point) image.Point {
	if a == Horizontal {
		return pt
	}
	return image.Pt(pt.Y, pt.X)
}

// mainConstraint returns the min and max main constraints for axis a.
func (a Axis) mainConstraint(cs Constraints) (int, int) {
	if a == Horizontal {
		return cs.Min.X, cs.Max.X
	}
	return cs.Min.Y, cs.Max.Y
}

// crossConstraint returns the min and max cross constraints for axis a.
func (a Axis) crossConstraint(cs Constraints) (int, int) {
	if a == Horizontal {
		return cs.Min.Y, cs.Max.Y
	}
	return cs.Min.X, cs.Max.X
}

// constraints returns the constraints for axis a.
func (a Axis) constraints(mainMin, mainMax, crossMin, crossMax int) Constraints {
	if a == Horizontal {
		return Constraints{Min: image.Pt(mainMin, crossMin), Max: image.Pt(mainMax, crossMax)}
	}
	return Constraints{Min: image.Pt(crossMin, mainMin), Max: image.Pt(crossMax, mainMax)}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
