// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/grid/f32"
	"gioui.org/grid/io/event"
	"gioui.org/grid/io/pointer"
)

// Stack lays out child elements on top of each other,
// according to an alignment direction.
type Stack struct {
	// Alignment is the direction to align children
	// smaller than the available space.
	Alignment Direction
	// Children in paint order.
	Children []StackChild
}

// StackChild represents a child for a Stack layout.
type StackChild struct {
	expanded bool
	element  Element
}

// Stacked returns a Stack child that is laid out with no minimum
// constraints and the maximum constraints passed to Stack.Layout.
func Stacked(el Element) StackChild {
	return StackChild{
		element: el,
	}
}

// Expanded returns a Stack child with the minimum constraints set
// to the largest Stacked child. The maximum constraints are set to
// the same as passed to Stack.Layout.
func Expanded(el Element) StackChild {
	return StackChild{
		expanded: true,
		element:  el,
	}
}

func (s Stack) Measure(gtx Context) image.Point {
	sz, _ := s.layout(gtx, false)
	return sz
}

func (s Stack) Layout(gtx Context) Node {
	sz, children := s.layout(gtx, true)
	return Node{Size: sz, Children: children}
}

func (s Stack) layout(gtx Context, full bool) (image.Point, []Node) {
	var maxSZ image.Point
	sizes := make([]image.Point, len(s.Children))
	var nodes []Node
	if full {
		nodes = make([]Node, len(s.Children))
	}
	run := func(i int, cs Constraints) {
		cgtx := gtx
		cgtx.Constraints = cs
		if full {
			nodes[i] = s.Children[i].element.Layout(cgtx)
			sizes[i] = nodes[i].Size
		} else {
			sizes[i] = s.Children[i].element.Measure(cgtx)
		}
		if w := sizes[i].X; w > maxSZ.X {
			maxSZ.X = w
		}
		if h := sizes[i].Y; h > maxSZ.Y {
			maxSZ.Y = h
		}
	}
	// First lay out Stacked children.
	cs := gtx.Constraints
	cs.Min = image.Point{}
	for i, w := range s.Children {
		if w.expanded {
			continue
		}
		run(i, cs)
	}
	// Then lay out Expanded children.
	for i, w := range s.Children {
		if !w.expanded {
			continue
		}
		run(i, Constraints{
			Min: gtx.Constraints.Constrain(maxSZ), Max: gtx.Constraints.Max,
		})
	}

	maxSZ = gtx.Constraints.Constrain(maxSZ)
	if full {
		for i := range nodes {
			nodes[i].Offset = s.Alignment.Position(sizes[i], maxSZ)
		}
	}
	return maxSZ, nodes
}

func (s Stack) child(i int) Element {
	return s.Children[i].element
}

func (s Stack) Version() uint64 {
	return versionAll(len(s.Children), s.child)
}

func (s Stack) Event(gtx Context, b Box, ev event.Event) event.Status {
	return eventAll(gtx, b, ev, len(s.Children), s.child)
}

// Cursor returns the cursor of the topmost child with a cursor
// other than the default.
func (s Stack) Cursor(b Box, pos f32.Point) pointer.Cursor {
	for i := len(s.Children) - 1; i >= 0; i-- {
		if c := s.Children[i].element.Cursor(b.Child(i), pos); c != pointer.CursorDefault {
			return c
		}
	}
	return pointer.CursorDefault
}

func (s Stack) Draw(gtx Context, b Box) {
	drawAll(gtx, b, len(s.Children), s.child)
}

func (s Stack) Overlay(b Box) Element {
	return overlayFirst(b, len(s.Children), s.child)
}

func (s Stack) Operate(b Box, v Visitor) {
	operateAll(b, v, len(s.Children), s.child)
}
