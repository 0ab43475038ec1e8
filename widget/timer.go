// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"time"

	"github.com/charmbracelet/log"

	"gioui.org/grid/f32"
	"gioui.org/grid/io/event"
	"gioui.org/grid/io/pointer"
	"gioui.org/grid/layout"
)

// Timer logs the time its child takes to measure and lay out.
type Timer struct {
	Child layout.Element
	// Name identifies the child in log messages.
	Name string
	// Logger receives the timings at debug level. If nil,
	// log.Default is used.
	Logger *log.Logger
	// Last is the duration of the most recent Layout.
	Last time.Duration
}

func (t *Timer) logger() *log.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return log.Default()
}

func (t *Timer) Measure(gtx layout.Context) image.Point {
	start := time.Now()
	sz := t.Child.Measure(gtx)
	t.logger().Debug("measure", "name", t.Name, "size", sz, "took", time.Since(start))
	return sz
}

func (t *Timer) Layout(gtx layout.Context) layout.Node {
	start := time.Now()
	n := t.Child.Layout(gtx)
	t.Last = time.Since(start)
	t.logger().Debug("layout", "name", t.Name, "size", n.Size, "took", t.Last)
	return n
}

// Version forwards the version of the child.
func (t *Timer) Version() uint64 {
	return layout.VersionOf(t.Child)
}

func (t *Timer) Event(gtx layout.Context, b layout.Box, ev event.Event) event.Status {
	return t.Child.Event(gtx, b, ev)
}

func (t *Timer) Cursor(b layout.Box, pos f32.Point) pointer.Cursor {
	return t.Child.Cursor(b, pos)
}

func (t *Timer) Draw(gtx layout.Context, b layout.Box) {
	t.Child.Draw(gtx, b)
}

func (t *Timer) Overlay(b layout.Box) layout.Element {
	return t.Child.Overlay(b)
}

func (t *Timer) Operate(b layout.Box, v layout.Visitor) {
	t.Child.Operate(b, v)
}
