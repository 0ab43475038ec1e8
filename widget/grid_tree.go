// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"gioui.org/grid/cssgrid"
	"gioui.org/grid/layout"
)

// gridTree presents a Grid and its children to the grid algorithm
// for the duration of one Measure or Layout call.
type gridTree struct {
	g   *Grid
	gtx layout.Context
	// self is the box the algorithm reports for the container.
	self cssgrid.Layout
}

func (t *gridTree) slot(id cssgrid.NodeID) *gridSlot {
	i, ok := id.Index()
	if !ok {
		panic("grid: container node used as a child")
	}
	return &t.g.slots[i]
}

func (t *gridTree) Style(id cssgrid.NodeID) *cssgrid.Style {
	if id.IsSelf() {
		return &t.g.style
	}
	return &t.slot(id).style
}

func (t *gridTree) ChildCount(id cssgrid.NodeID) int {
	if id.IsSelf() {
		return len(t.g.slots)
	}
	return 0
}

func (t *gridTree) Child(id cssgrid.NodeID, i int) cssgrid.NodeID {
	if !id.IsSelf() {
		panic("grid: children of a child are not visible")
	}
	return cssgrid.Child(i)
}

func (t *gridTree) MeasureChildSize(id cssgrid.NodeID, known cssgrid.KnownSize, avail cssgrid.AvailableSize, mode cssgrid.SizingMode) cssgrid.Size {
	s := t.slot(id)
	if sz, ok := s.cache.size(known, avail); ok {
		return sz
	}
	gtx := t.gtx
	gtx.Constraints = childConstraints(known, avail)
	sz := toSize(s.el.Measure(gtx))
	s.cache.put(cacheKey{known, avail, querySize}, cacheEntry{size: sz})
	return sz
}

func (t *gridTree) PerformChildLayout(id cssgrid.NodeID, known cssgrid.KnownSize, avail cssgrid.AvailableSize, mode cssgrid.SizingMode) cssgrid.Size {
	s := t.slot(id)
	if e, ok := s.cache.layout(known, avail); ok {
		s.node = e.node
		return e.size
	}
	gtx := t.gtx
	gtx.Constraints = childConstraints(known, avail)
	n := s.el.Layout(gtx)
	n.Offset = image.Point{}
	sz := toSize(n.Size)
	s.cache.put(cacheKey{known, avail, queryLayout}, cacheEntry{size: sz, node: n})
	s.node = n
	return sz
}

func (t *gridTree) SetLayout(id cssgrid.NodeID, l cssgrid.Layout) {
	if id.IsSelf() {
		t.self = l
		return
	}
	t.slot(id).box = l
}

func (t *gridTree) SetHidden(id cssgrid.NodeID, order uint32) {
	s := t.slot(id)
	s.box = cssgrid.Layout{Order: order}
	s.node = layout.Node{}
}

// childConstraints translates a query into constraints: definite
// available space bounds the maximum and a known dimension fixes
// the size, within that maximum.
func childConstraints(known cssgrid.KnownSize, avail cssgrid.AvailableSize) layout.Constraints {
	cs := layout.Unbounded()
	if w, ok := avail.Width.Value(); ok {
		cs.Max.X = toPx(w)
	}
	if h, ok := avail.Height.Value(); ok {
		cs.Max.Y = toPx(h)
	}
	if w, ok := known.Width.Get(); ok {
		cs = cs.Width(layout.Fixed(toPx(w)))
	}
	if h, ok := known.Height.Get(); ok {
		cs = cs.Height(layout.Fixed(toPx(h)))
	}
	return cs
}

// toPx rounds v to whole pixels within [0, layout.Inf].
func toPx(v float32) int {
	r := math.Round(float64(v))
	switch {
	case r < 0 || math.IsNaN(r):
		return 0
	case r > layout.Inf:
		return layout.Inf
	}
	return int(r)
}

func toSize(p image.Point) cssgrid.Size {
	return cssgrid.Size{Width: float32(p.X), Height: float32(p.Y)}
}

// constraintsQuery derives the known dimensions, the parent size
// and the available space of a grid from its constraints. An axis
// is known when its constraints are tight and available when its
// maximum is bounded.
func constraintsQuery(cs layout.Constraints) (known, parent cssgrid.KnownSize, avail cssgrid.AvailableSize) {
	avail = cssgrid.AvailableSize{Width: cssgrid.MaxContentSpace, Height: cssgrid.MaxContentSpace}
	if cs.TightX() {
		known.Width = cssgrid.Some(float32(cs.Max.X))
	}
	if cs.TightY() {
		known.Height = cssgrid.Some(float32(cs.Max.Y))
	}
	if cs.BoundedX() {
		parent.Width = cssgrid.Some(float32(cs.Max.X))
		avail.Width = cssgrid.Definite(float32(cs.Max.X))
	}
	if cs.BoundedY() {
		parent.Height = cssgrid.Some(float32(cs.Max.Y))
		avail.Height = cssgrid.Definite(float32(cs.Max.Y))
	}
	return known, parent, avail
}
