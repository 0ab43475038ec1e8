// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"gioui.org/grid/unit"
)

// Context carries the state needed by almost all layouts and widgets.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints

	Metric unit.Metric
	// Now is the animation time.
	Now time.Time
	// Face measures and draws text. If nil, a fixed width 7x13
	// face is used.
	Face font.Face
	// Canvas is the destination of Draw calls. Drawing is skipped
	// when Canvas is nil, which makes a Context without a Canvas
	// suitable for measurement only.
	Canvas draw.Image
}

// Reset the context for a new frame. The constraints' minimum and
// maximum values are set to the size of the canvas, or unbounded if
// there is no canvas.
func (c *Context) Reset(now time.Time) {
	c.Now = now
	if c.Canvas != nil {
		c.Constraints = Exact(c.Canvas.Bounds().Size())
	} else {
		c.Constraints = Unbounded()
	}
}

// Dp converts v to pixels.
func (c Context) Dp(v unit.Dp) int {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels.
func (c Context) Sp(v unit.Sp) int {
	return c.Metric.Sp(v)
}

// FontFace returns the face for measuring and drawing text.
func (c Context) FontFace() font.Face {
	if c.Face != nil {
		return c.Face
	}
	return basicfont.Face7x13
}
