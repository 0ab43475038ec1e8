// SPDX-License-Identifier: Unlicense OR MIT

package cssgrid

import "strconv"

// NodeID names a node in the flat space seen by the algorithm:
// either the container itself or one of its direct children.
// The zero value is Self.
type NodeID struct {
	child bool
	index int
}

// Self is the container node.
var Self NodeID

// Child returns the NodeID of the i'th child of the container.
func Child(i int) NodeID {
	return NodeID{child: true, index: i}
}

// IsSelf reports whether id names the container.
func (id NodeID) IsSelf() bool {
	return !id.child
}

// Index returns the child index of id, and false for Self.
func (id NodeID) Index() (int, bool) {
	return id.index, id.child
}

func (id NodeID) String() string {
	if !id.child {
		return "self"
	}
	return "child(" + strconv.Itoa(id.index) + ")"
}

// SizingMode tells a node whether to apply its own style size
// to a query.
type SizingMode uint8

const (
	// SizingInherent applies the node's style size and min/max
	// size constraints.
	SizingInherent SizingMode = iota
	// SizingContent ignores the node's style size and reports
	// its content size.
	SizingContent
)

func (m SizingMode) String() string {
	if m == SizingContent {
		return "content"
	}
	return "inherent"
}

// Tree gives the algorithm access to a container and its
// children. Implementations own the nodes and their layout
// results.
type Tree interface {
	// Style returns the style of a node. The algorithm does not
	// modify it.
	Style(id NodeID) *Style
	// ChildCount returns the number of children of id. The
	// algorithm only asks for the children of Self.
	ChildCount(id NodeID) int
	// Child returns the NodeID of the i'th child of id.
	Child(id NodeID, i int) NodeID
	// MeasureChildSize returns the size of a child under the
	// given constraints without laying it out. It may be called
	// any number of times per child.
	MeasureChildSize(id NodeID, known KnownSize, avail AvailableSize, mode SizingMode) Size
	// PerformChildLayout lays out a child under the given
	// constraints and returns its size. PerformLayout calls it
	// exactly once per participating child, after all
	// measurements.
	PerformChildLayout(id NodeID, known KnownSize, avail AvailableSize, mode SizingMode) Size
	// SetLayout records the final box of a node.
	SetLayout(id NodeID, l Layout)
	// SetHidden records an empty box for a node that does not
	// take part in layout.
	SetHidden(id NodeID, order uint32)
}
