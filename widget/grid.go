// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"golang.org/x/exp/slices"

	"gioui.org/grid/cssgrid"
	"gioui.org/grid/f32"
	"gioui.org/grid/io/event"
	"gioui.org/grid/io/pointer"
	"gioui.org/grid/layout"
)

// Grid is a layout.Element that places its children with the CSS
// Grid algorithm.
//
// Each child has its own cssgrid.Style for placement, alignment and
// size, and the Grid has one for tracks, gaps and padding. Children
// are measured under the constraints the algorithm asks for and the
// answers are cached per child, so that repeated queries during a
// layout, and identical queries in later layouts, do not reach the
// child again. A child whose Layout is skipped that way must not
// rely on side effects of Layout; a child whose size changes must be
// reported with Invalidate, unless it implements layout.Versioned.
//
// The zero Grid is an empty grid that fills its constraints.
type Grid struct {
	style         cssgrid.Style
	width, height layout.Length
	slots         []gridSlot
	// version counts changes to the grid itself.
	version uint64
}

// NewGrid returns an empty Grid.
func NewGrid() *Grid {
	return new(Grid)
}

// With appends a child with the default style.
func (g *Grid) With(el layout.Element) *Grid {
	g.Append(el, cssgrid.Style{})
	return g
}

// WithStyled appends a child with the default style modified by
// style.
func (g *Grid) WithStyled(el layout.Element, style func(s *cssgrid.Style)) *Grid {
	var s cssgrid.Style
	style(&s)
	g.Append(el, s)
	return g
}

// Append a child. Its index among the children is its position in
// the grid's auto-placement order.
func (g *Grid) Append(el layout.Element, style cssgrid.Style) {
	g.slots = append(g.slots, gridSlot{el: el, style: cloneStyle(style), version: layout.VersionOf(el)})
	g.version++
}

// Columns sets the explicit column tracks.
func (g *Grid) Columns(tracks ...cssgrid.Track) *Grid {
	g.style.TemplateColumns = slices.Clone(tracks)
	g.version++
	return g
}

// Rows sets the explicit row tracks.
func (g *Grid) Rows(tracks ...cssgrid.Track) *Grid {
	g.style.TemplateRows = slices.Clone(tracks)
	g.version++
	return g
}

// ColumnGap sets the space between columns.
func (g *Grid) ColumnGap(d cssgrid.Dimension) *Grid {
	g.style.ColumnGap = d
	g.version++
	return g
}

// RowGap sets the space between rows.
func (g *Grid) RowGap(d cssgrid.Dimension) *Grid {
	g.style.RowGap = d
	g.version++
	return g
}

// MinWidth sets the minimum width of the grid.
func (g *Grid) MinWidth(d cssgrid.Dimension) *Grid {
	g.style.MinSize.Width = d
	g.version++
	return g
}

// MinHeight sets the minimum height of the grid.
func (g *Grid) MinHeight(d cssgrid.Dimension) *Grid {
	g.style.MinSize.Height = d
	g.version++
	return g
}

// MaxWidth sets the maximum width of the grid.
func (g *Grid) MaxWidth(d cssgrid.Dimension) *Grid {
	g.style.MaxSize.Width = d
	g.version++
	return g
}

// MaxHeight sets the maximum height of the grid.
func (g *Grid) MaxHeight(d cssgrid.Dimension) *Grid {
	g.style.MaxSize.Height = d
	g.version++
	return g
}

// Styled modifies the grid's own style.
func (g *Grid) Styled(style func(s *cssgrid.Style)) *Grid {
	style(&g.style)
	g.version++
	return g
}

// Width sets the horizontal size policy. The default is
// layout.Fill.
func (g *Grid) Width(l layout.Length) *Grid {
	g.width = l
	g.version++
	return g
}

// Height sets the vertical size policy. The default is
// layout.Fill.
func (g *Grid) Height(l layout.Length) *Grid {
	g.height = l
	g.version++
	return g
}

// Style returns a copy of the grid's style.
func (g *Grid) Style() cssgrid.Style {
	return cloneStyle(g.style)
}

// SetStyle replaces the grid's style and drops every cached child
// measurement.
func (g *Grid) SetStyle(s cssgrid.Style) {
	g.style = cloneStyle(s)
	g.Invalidate()
}

// SetChildStyle replaces the style of child i and drops its cached
// measurements.
func (g *Grid) SetChildStyle(i int, s cssgrid.Style) {
	sl := &g.slots[i]
	sl.style = cloneStyle(s)
	sl.cache.reset()
	g.version++
}

// Replace child i with el, keeping its style. Nothing measured for
// the previous child is kept.
func (g *Grid) Replace(i int, el layout.Element) {
	sl := &g.slots[i]
	// Keep the old child's count so that Version never decreases.
	g.version += 1 + layout.VersionOf(sl.el)
	sl.el = el
	sl.cache.reset()
	sl.reset()
	sl.version = layout.VersionOf(el)
}

// Invalidate drops all cached child measurements. Call it when a
// child changed in a way that affects its size. Grids containing g
// notice the change through Version.
func (g *Grid) Invalidate() {
	for i := range g.slots {
		g.slots[i].cache.reset()
	}
	g.version++
}

// Version implements layout.Versioned. It grows with every change
// to the grid and with the versions of its children.
func (g *Grid) Version() uint64 {
	v := g.version
	for i := range g.slots {
		v += layout.VersionOf(g.slots[i].el)
	}
	return v
}

// sync drops the cached measurements of children that changed
// since they were last measured.
func (g *Grid) sync() {
	for i := range g.slots {
		s := &g.slots[i]
		if v := layout.VersionOf(s.el); v != s.version {
			s.cache.reset()
			s.version = v
		}
	}
}

// Len returns the number of children.
func (g *Grid) Len() int {
	return len(g.slots)
}

// ChildLayout returns the box of child i from the last Layout,
// relative to the grid. Hidden children have an empty box.
//
// A grid nested in another grid is not laid out again when the outer
// grid reuses its cached layout, so its ChildLayout may describe an
// older layout. The node tree returned by the outermost Layout is
// always current.
func (g *Grid) ChildLayout(i int) cssgrid.Layout {
	return g.slots[i].box
}

func (g *Grid) constraints(cs layout.Constraints) layout.Constraints {
	return cs.Width(g.width).Height(g.height)
}

// Measure returns the size of the grid without laying out its
// children.
func (g *Grid) Measure(gtx layout.Context) image.Point {
	cs := g.constraints(gtx.Constraints)
	known, parent, avail := constraintsQuery(cs)
	g.sync()
	t := &gridTree{g: g, gtx: gtx}
	sz := cssgrid.ComputeSize(t, known, parent, avail, cssgrid.SizingInherent)
	return cs.Constrain(roundSize(sz))
}

// Layout positions the children. Every visible child is laid out
// once, or twice if the size it chose violates its min or max size;
// a child whose previous layout was for the same constraints is not
// laid out at all.
func (g *Grid) Layout(gtx layout.Context) layout.Node {
	cs := g.constraints(gtx.Constraints)
	known, parent, avail := constraintsQuery(cs)
	g.sync()
	for i := range g.slots {
		g.slots[i].reset()
	}
	t := &gridTree{g: g, gtx: gtx}
	sz := cssgrid.PerformLayout(t, known, parent, avail, cssgrid.SizingInherent)
	n := layout.Node{
		Size:     cs.Constrain(roundSize(sz)),
		Children: make([]layout.Node, len(g.slots)),
	}
	for i := range g.slots {
		s := &g.slots[i]
		r := s.box.Rect().Round()
		n.Children[i] = layout.Node{
			Offset:   r.Min,
			Size:     r.Size(),
			Children: s.node.Children,
		}
	}
	return n
}

func roundSize(sz cssgrid.Size) image.Point {
	return image.Pt(toPx(sz.Width), toPx(sz.Height))
}

func (g *Grid) Event(gtx layout.Context, b layout.Box, ev event.Event) event.Status {
	status := event.Ignored
	for i := range g.slots {
		status = status.Merge(g.slots[i].el.Event(gtx, b.Child(i), ev))
	}
	return status
}

// Cursor returns the highest cursor any child asks for.
func (g *Grid) Cursor(b layout.Box, pos f32.Point) pointer.Cursor {
	c := pointer.CursorDefault
	for i := range g.slots {
		c = max(c, g.slots[i].el.Cursor(b.Child(i), pos))
	}
	return c
}

func (g *Grid) Draw(gtx layout.Context, b layout.Box) {
	for i := range g.slots {
		g.slots[i].el.Draw(gtx, b.Child(i))
	}
}

// Overlay returns the overlay of the first child that has one.
func (g *Grid) Overlay(b layout.Box) layout.Element {
	for i := range g.slots {
		if o := g.slots[i].el.Overlay(b.Child(i)); o != nil {
			return o
		}
	}
	return nil
}

func (g *Grid) Operate(b layout.Box, v layout.Visitor) {
	v.Container(b, func(v layout.Visitor) {
		for i := range g.slots {
			g.slots[i].el.Operate(b.Child(i), v)
		}
	})
}

// cloneStyle copies s without sharing its track lists.
func cloneStyle(s cssgrid.Style) cssgrid.Style {
	s.TemplateColumns = slices.Clone(s.TemplateColumns)
	s.TemplateRows = slices.Clone(s.TemplateRows)
	s.AutoColumns = slices.Clone(s.AutoColumns)
	s.AutoRows = slices.Clone(s.AutoRows)
	return s
}
