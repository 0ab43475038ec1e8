// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"time"

	"gioui.org/grid/f32"
	"gioui.org/grid/gesture"
	"gioui.org/grid/io/event"
	"gioui.org/grid/io/pointer"
	"gioui.org/grid/layout"
)

// Clickable makes its child respond to pointer clicks.
type Clickable struct {
	Child layout.Element

	click   gesture.Click
	clicks  int
	history []Press
}

// Press represents a past pointer press.
type Press struct {
	Position f32.Point
	Time     time.Time
}

// Clicked reports whether there are pending clicks. If so, Clicked
// removes the earliest click.
func (b *Clickable) Clicked() bool {
	if b.clicks == 0 {
		return false
	}
	b.clicks--
	return true
}

// History is the past pointer presses useful for drawing markers.
// History is retained for a short duration (about a second). It is
// pruned by Event and Draw, which a parent forwards even when it
// reuses a cached layout.
func (b *Clickable) History() []Press {
	return b.history
}

// Pressed reports whether a pointer is pressing the element.
func (b *Clickable) Pressed() bool {
	return b.click.Pressed()
}

func (b *Clickable) Measure(gtx layout.Context) image.Point {
	return b.Child.Measure(gtx)
}

func (b *Clickable) Layout(gtx layout.Context) layout.Node {
	n := b.Child.Layout(gtx)
	n.Offset = image.Point{}
	return layout.Node{Size: n.Size, Children: []layout.Node{n}}
}

func (b *Clickable) Version() uint64 {
	return layout.VersionOf(b.Child)
}

func (b *Clickable) Event(gtx layout.Context, box layout.Box, ev event.Event) event.Status {
	e, ok := ev.(pointer.Event)
	if !ok {
		return b.Child.Event(gtx, box.Child(0), ev)
	}
	b.prune(gtx.Now)
	ce, ok := b.click.Update(e, box.Contains(e.Position))
	if !ok {
		return b.Child.Event(gtx, box.Child(0), ev)
	}
	switch ce.Type {
	case gesture.TypePress:
		b.history = append(b.history, Press{Position: ce.Position, Time: gtx.Now})
	case gesture.TypeClick:
		b.clicks++
	}
	return event.Captured
}

func (b *Clickable) Cursor(box layout.Box, pos f32.Point) pointer.Cursor {
	if box.Contains(pos) {
		return pointer.CursorPointer
	}
	return b.Child.Cursor(box.Child(0), pos)
}

func (b *Clickable) Draw(gtx layout.Context, box layout.Box) {
	b.prune(gtx.Now)
	b.Child.Draw(gtx, box.Child(0))
}

// prune drops the presses older than a second.
func (b *Clickable) prune(now time.Time) {
	for len(b.history) > 0 {
		if now.Sub(b.history[0].Time) < 1*time.Second {
			break
		}
		n := copy(b.history, b.history[1:])
		b.history = b.history[:n]
	}
}

func (b *Clickable) Overlay(box layout.Box) layout.Element {
	return b.Child.Overlay(box.Child(0))
}

func (b *Clickable) Operate(box layout.Box, v layout.Visitor) {
	b.Child.Operate(box.Child(0), v)
}
