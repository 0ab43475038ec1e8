// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events and detect higher
level actions such as clicks. The caller decides whether an
event hits the gesture's area, usually by testing the event
position against a layout.Box.
*/
package gesture

import (
	"gioui.org/grid/f32"
	"gioui.org/grid/io/pointer"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
}

type ClickState uint8

// ClickEvent represent a click action, either a
// TypePress for the beginning of a click or a
// TypeClick for a completed click.
type ClickEvent struct {
	Type     ClickType
	Position f32.Point
}

type ClickType uint8

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateFocused is reported when a pointer
	// is hovering over the handler.
	StateFocused
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// TypePress is reported for the first pointer
	// press.
	TypePress ClickType = iota
	// TypeClick is reported when a click action
	// is complete.
	TypeClick
	// TypeCancel is reported when a pressed pointer
	// leaves without completing a click.
	TypeCancel
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Pressed reports whether a pointer is pressed over the handler.
func (c *Click) Pressed() bool {
	return c.state == StatePressed
}

// Update the gesture with e. Hit reports whether the event
// position is inside the handler's area. Update returns the
// resulting click event, if any.
func (c *Click) Update(e pointer.Event, hit bool) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Release:
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if hit {
			c.state = StateFocused
		}
		if !wasPressed {
			break
		}
		if !hit {
			return ClickEvent{Type: TypeCancel, Position: e.Position}, true
		}
		return ClickEvent{Type: TypeClick, Position: e.Position}, true
	case pointer.Cancel:
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if wasPressed {
			return ClickEvent{Type: TypeCancel, Position: e.Position}, true
		}
	case pointer.Press:
		if c.state == StatePressed || !hit {
			break
		}
		if e.Buttons != 0 && e.Buttons&pointer.ButtonPrimary == 0 {
			break
		}
		c.state = StatePressed
		return ClickEvent{Type: TypePress, Position: e.Position}, true
	case pointer.Move, pointer.Drag:
		switch {
		case c.state == StatePressed:
		case hit:
			c.state = StateFocused
		default:
			c.state = StateNormal
		}
	}
	return ClickEvent{}, false
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	case TypeCancel:
		return "TypeCancel"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateFocused:
		return "StateFocused"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
