// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/grid/f32"
	"gioui.org/grid/io/event"
	"gioui.org/grid/io/pointer"
)

// Flex lays out child elements along an axis,
// according to alignment and weights.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing controls the distribution of space left after
	// layout.
	Spacing Spacing
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
	// WeightSum is the sum of weights used for the weighted
	// size of Flexed children. If WeightSum is zero, the sum
	// of all Flexed weights is used.
	WeightSum float32
	// Children in layout order.
	Children []FlexChild
}

// FlexChild is the descriptor for a Flex child.
type FlexChild struct {
	flex   bool
	weight float32

	element Element
}

// Spacing determine the spacing mode for a Flex.
type Spacing uint8

const (
	// SpaceEnd leaves space at the end.
	SpaceEnd Spacing = iota
	// SpaceStart leaves space at the start.
	SpaceStart
	// SpaceSides shares space between the start and end.
	SpaceSides
	// SpaceAround distributes space evenly between children,
	// with half as much space at the start and end.
	SpaceAround
	// SpaceBetween distributes space evenly between children,
	// leaving no space at the start and end.
	SpaceBetween
	// SpaceEvenly distributes space evenly between children and
	// at the start and end.
	SpaceEvenly
)

// Rigid returns a Flex child with a maximal constraint of the
// remaining space.
func Rigid(el Element) FlexChild {
	return FlexChild{
		element: el,
	}
}

// Flexed returns a Flex child forced to take up weight fraction of the
// space left over from Rigid children. The fraction is weight
// divided by either the weight sum of all Flexed children or the Flex
// WeightSum if non zero.
func Flexed(weight float32, el Element) FlexChild {
	return FlexChild{
		flex:    true,
		weight:  weight,
		element: el,
	}
}

// Row returns a horizontal Flex of rigid children.
func Row(children ...Element) Flex {
	f := Flex{Axis: Horizontal}
	for _, c := range children {
		f.Children = append(f.Children, Rigid(c))
	}
	return f
}

// Column returns a vertical Flex of rigid children.
func Column(children ...Element) Flex {
	f := Flex{Axis: Vertical}
	for _, c := range children {
		f.Children = append(f.Children, Rigid(c))
	}
	return f
}

func (f Flex) Measure(gtx Context) image.Point {
	sz, _ := f.layout(gtx, false)
	return sz
}

func (f Flex) Layout(gtx Context) Node {
	sz, children := f.layout(gtx, true)
	return Node{Size: sz, Children: children}
}

// layout computes the size of the Flex and, if full is set, the
// positioned nodes of its children. Rigid children are laid out
// before Flexed children. On an unbounded main axis Flexed children
// are laid out like Rigid children.
func (f Flex) layout(gtx Context, full bool) (image.Point, []Node) {
	cs := gtx.Constraints
	mainMin, mainMax := f.Axis.mainConstraint(cs)
	crossMin, crossMax := f.Axis.crossConstraint(cs)
	bounded := mainMax < Inf
	remaining := mainMax
	sizes := make([]image.Point, len(f.Children))
	var nodes []Node
	if full {
		nodes = make([]Node, len(f.Children))
	}
	cgtx := gtx
	run := func(i int, cs Constraints) {
		cgtx.Constraints = cs
		el := f.Children[i].element
		if full {
			nodes[i] = el.Layout(cgtx)
			sizes[i] = nodes[i].Size
		} else {
			sizes[i] = el.Measure(cgtx)
		}
		if bounded {
			remaining -= f.Axis.Convert(sizes[i]).X
			if remaining < 0 {
				remaining = 0
			}
		}
	}
	var totalWeight float32
	// Lay out Rigid children.
	for i, child := range f.Children {
		if child.flex {
			totalWeight += child.weight
			continue
		}
		run(i, f.Axis.constraints(0, remaining, crossMin, crossMax))
	}
	if w := f.WeightSum; w != 0 {
		totalWeight = w
	}
	flexTotal := remaining
	// fraction is the rounding error from a Flex weighting.
	var fraction float32
	// Lay out Flexed children.
	for i, child := range f.Children {
		if !child.flex {
			continue
		}
		if !bounded {
			run(i, f.Axis.constraints(0, Inf, crossMin, crossMax))
			continue
		}
		var flexSize int
		if remaining > 0 && totalWeight > 0 {
			// Apply weight and add any leftover fraction from a
			// previous Flexed.
			childSize := float32(flexTotal)*child.weight/totalWeight + fraction
			flexSize = int(childSize + .5)
			fraction = childSize - float32(flexSize)
			if flexSize > remaining {
				flexSize = remaining
			}
		}
		run(i, f.Axis.constraints(flexSize, flexSize, crossMin, crossMax))
	}
	var size, maxCross int
	for _, sz := range sizes {
		sz = f.Axis.Convert(sz)
		size += sz.X
		if sz.Y > maxCross {
			maxCross = sz.Y
		}
	}
	if maxCross < crossMin {
		maxCross = crossMin
	}
	var space int
	if mainMin > size {
		space = mainMin - size
	}
	var mainSize int
	switch f.Spacing {
	case SpaceSides:
		mainSize += space / 2
	case SpaceStart:
		mainSize += space
	case SpaceEvenly:
		mainSize += space / (1 + len(f.Children))
	case SpaceAround:
		if len(f.Children) > 0 {
			mainSize += space / (len(f.Children) * 2)
		}
	}
	for i, sz := range sizes {
		sz = f.Axis.Convert(sz)
		var cross int
		switch f.Alignment {
		case End:
			cross = maxCross - sz.Y
		case Middle:
			cross = (maxCross - sz.Y) / 2
		}
		if full {
			nodes[i].Offset = f.Axis.Convert(image.Pt(mainSize, cross))
		}
		mainSize += sz.X
		if i < len(f.Children)-1 {
			switch f.Spacing {
			case SpaceEvenly:
				mainSize += space / (1 + len(f.Children))
			case SpaceAround:
				mainSize += space / len(f.Children)
			case SpaceBetween:
				mainSize += space / (len(f.Children) - 1)
			}
		}
	}
	switch f.Spacing {
	case SpaceSides:
		mainSize += space / 2
	case SpaceEnd:
		mainSize += space
	case SpaceEvenly:
		mainSize += space / (1 + len(f.Children))
	case SpaceAround:
		if len(f.Children) > 0 {
			mainSize += space / (len(f.Children) * 2)
		}
	case SpaceBetween:
		if len(f.Children) <= 1 {
			mainSize += space
		}
	}
	return f.Axis.Convert(image.Pt(mainSize, maxCross)), nodes
}

func (f Flex) child(i int) Element {
	return f.Children[i].element
}

func (f Flex) Version() uint64 {
	return versionAll(len(f.Children), f.child)
}

func (f Flex) Event(gtx Context, b Box, ev event.Event) event.Status {
	return eventAll(gtx, b, ev, len(f.Children), f.child)
}

func (f Flex) Cursor(b Box, pos f32.Point) pointer.Cursor {
	return cursorFirst(b, pos, len(f.Children), f.child)
}

func (f Flex) Draw(gtx Context, b Box) {
	drawAll(gtx, b, len(f.Children), f.child)
}

func (f Flex) Overlay(b Box) Element {
	return overlayFirst(b, len(f.Children), f.child)
}

func (f Flex) Operate(b Box, v Visitor) {
	operateAll(b, v, len(f.Children), f.child)
}

func (s Spacing) String() string {
	switch s {
	case SpaceEnd:
		return "SpaceEnd"
	case SpaceStart:
		return "SpaceStart"
	case SpaceSides:
		return "SpaceSides"
	case SpaceAround:
		return "SpaceAround"
	case SpaceBetween:
		return "SpaceBetween"
	case SpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}

// The fan-out helpers below forward the pass-through calls of a
// container to its n children, pairing child i with box b.Child(i).

// versionAll sums the versions of n children.
func versionAll(n int, child func(int) Element) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v += VersionOf(child(i))
	}
	return v
}

func eventAll(gtx Context, b Box, ev event.Event, n int, child func(int) Element) event.Status {
	status := event.Ignored
	for i := 0; i < n; i++ {
		status = status.Merge(child(i).Event(gtx, b.Child(i), ev))
	}
	return status
}

func cursorFirst(b Box, pos f32.Point, n int, child func(int) Element) pointer.Cursor {
	for i := 0; i < n; i++ {
		if c := child(i).Cursor(b.Child(i), pos); c != pointer.CursorDefault {
			return c
		}
	}
	return pointer.CursorDefault
}

func drawAll(gtx Context, b Box, n int, child func(int) Element) {
	for i := 0; i < n; i++ {
		child(i).Draw(gtx, b.Child(i))
	}
}

func overlayFirst(b Box, n int, child func(int) Element) Element {
	for i := 0; i < n; i++ {
		if o := child(i).Overlay(b.Child(i)); o != nil {
			return o
		}
	}
	return nil
}

func operateAll(b Box, v Visitor, n int, child func(int) Element) {
	v.Container(b, func(v Visitor) {
		for i := 0; i < n; i++ {
			child(i).Operate(b.Child(i), v)
		}
	})
}
