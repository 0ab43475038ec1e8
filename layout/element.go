// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/grid/f32"
	"gioui.org/grid/io/event"
	"gioui.org/grid/io/pointer"
)

// Element is a retained user interface element. Layouts such as Flex,
// Stack and the grid container in package widget hold their children
// as Elements and call them in two phases: sizing and layout, then
// the pass-through calls that use the result of the last layout.
type Element interface {
	// Measure returns the size of the element under gtx.Constraints,
	// without computing the positions of its descendants.
	Measure(gtx Context) image.Point
	// Layout returns the size of the element under gtx.Constraints
	// together with the positioned nodes of its descendants. The
	// Offset of the returned node is set by the parent.
	Layout(gtx Context) Node
	// Event delivers an event to the element laid out as b.
	Event(gtx Context, b Box, ev event.Event) event.Status
	// Cursor returns the cursor shape for a pointer at pos.
	Cursor(b Box, pos f32.Point) pointer.Cursor
	// Draw paints the element laid out as b onto gtx.Canvas.
	Draw(gtx Context, b Box)
	// Overlay returns an element to be laid out on top of everything
	// else, or nil.
	Overlay(b Box) Element
	// Operate walks the element for accessibility and other
	// semantic queries.
	Operate(b Box, v Visitor)
}

// Versioned is implemented by elements that count their changes.
// Containers that cache the results of their children compare
// versions to tell whether a cached result is still valid.
type Versioned interface {
	// Version returns a number that grows whenever the element,
	// or one of its descendants, changed in a way that may affect
	// its size or layout.
	Version() uint64
}

// VersionOf returns the version of el, or zero if el does not
// implement Versioned.
func VersionOf(el Element) uint64 {
	if v, ok := el.(Versioned); ok {
		return v.Version()
	}
	return 0
}

// Visitor receives the semantic structure of an element tree.
type Visitor interface {
	// Container is called for elements that group other elements.
	// The children function visits the group's children.
	Container(b Box, children func(v Visitor))
	// Text is called for elements presenting text.
	Text(b Box, text string)
}

// Leaf provides the pass-through methods of Element for elements
// without children that ignore events and have no overlay.
type Leaf struct{}

func (Leaf) Event(gtx Context, b Box, ev event.Event) event.Status {
	return event.Ignored
}

func (Leaf) Cursor(b Box, pos f32.Point) pointer.Cursor {
	return pointer.CursorDefault
}

func (Leaf) Draw(gtx Context, b Box) {}

func (Leaf) Overlay(b Box) Element {
	return nil
}

func (Leaf) Operate(b Box, v Visitor) {}

// Node is the result of a layout: a size and the positioned nodes of
// the children, in child order.
type Node struct {
	// Offset is the position of the node relative to its parent.
	Offset   image.Point
	Size     image.Point
	Children []Node
}

// Bounds returns the rectangle covered by n in its parent's
// coordinates.
func (n Node) Bounds() image.Rectangle {
	return image.Rectangle{Min: n.Offset, Max: n.Offset.Add(n.Size)}
}

// Box is a Node placed at an absolute position.
type Box struct {
	node   *Node
	origin image.Point
}

// Root returns the Box for the root node n.
func Root(n *Node) Box {
	return Box{node: n, origin: n.Offset}
}

// Node returns the node of b.
func (b Box) Node() *Node {
	return b.node
}

// Bounds returns the absolute bounds of b.
func (b Box) Bounds() image.Rectangle {
	if b.node == nil {
		return image.Rectangle{Min: b.origin, Max: b.origin}
	}
	return image.Rectangle{Min: b.origin, Max: b.origin.Add(b.node.Size)}
}

// Contains reports whether pos is inside the bounds of b.
func (b Box) Contains(pos f32.Point) bool {
	r := b.Bounds()
	return pos.In(f32.Rectangle{Min: f32.FPt(r.Min), Max: f32.FPt(r.Max)})
}

// NumChildren returns the number of child boxes.
func (b Box) NumChildren() int {
	if b.node == nil {
		return 0
	}
	return len(b.node.Children)
}

// Child returns the i'th child box. A missing child, for example
// when an element is asked to handle an event before its first
// layout, is an empty box at the origin of b.
func (b Box) Child(i int) Box {
	if i >= b.NumChildren() {
		return Box{origin: b.origin}
	}
	c := &b.node.Children[i]
	return Box{node: c, origin: b.origin.Add(c.Offset)}
}
