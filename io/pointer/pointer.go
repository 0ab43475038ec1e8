// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events and cursor shapes.
//
// Pointer positions are in the coordinate space of the root of
// the laid out tree; elements compare them with the bounds of
// their layout.Box.
package pointer

import (
	"strings"

	"gioui.org/grid/f32"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Buttons are the mouse buttons held during the event.
	Buttons Buttons
	// Position is relative to the root of the laid out tree.
	Position f32.Point
	// Scroll is the scroll amount of a Scroll event.
	Scroll f32.Point
}

// Kind of an Event. Kinds are bit flags so that handlers can
// describe sets of them.
type Kind uint

// Buttons is a set of mouse buttons.
type Buttons uint8

// Cursor denotes a pre-defined cursor shape. Containers that
// must pick one cursor among their children's pick the highest,
// so the shapes are ordered from least to most specific.
type Cursor byte

const (
	// Cancel interrupts the current gesture.
	Cancel Kind = 1 << iota
	Press
	Release
	Move
	Drag
	Scroll
)

const (
	// ButtonPrimary is usually the left mouse button.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is usually the right mouse button.
	ButtonSecondary
	// ButtonTertiary is usually the middle mouse button.
	ButtonTertiary
)

// The cursors correspond to CSS pointer naming.
const (
	CursorDefault Cursor = iota
	// CursorNone hides the cursor.
	CursorNone
	CursorText
	// CursorPointer is usually displayed as a pointing hand.
	CursorPointer
	CursorCrosshair
	CursorColResize
	CursorRowResize
	CursorGrab
	CursorNotAllowed
)

var kindNames = [...]string{"Cancel", "Press", "Release", "Move", "Drag", "Scroll"}

var buttonNames = [...]string{"ButtonPrimary", "ButtonSecondary", "ButtonTertiary"}

var cursorNames = [...]string{
	CursorDefault:    "Default",
	CursorNone:       "None",
	CursorText:       "Text",
	CursorPointer:    "Pointer",
	CursorCrosshair:  "Crosshair",
	CursorColResize:  "ColResize",
	CursorRowResize:  "RowResize",
	CursorGrab:       "Grab",
	CursorNotAllowed: "NotAllowed",
}

func (k Kind) String() string {
	var names []string
	for i, n := range kindNames {
		if k&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		panic("unknown Kind")
	}
	return strings.Join(names, "|")
}

// Contain reports whether b contains all of buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var names []string
	for i, n := range buttonNames {
		if b.Contain(1 << i) {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

func (c Cursor) String() string {
	if int(c) >= len(cursorNames) {
		panic("unknown Cursor")
	}
	return cursorNames[c]
}

func (Event) ImplementsEvent() {}
