// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"gioui.org/grid/layout"
	"gioui.org/grid/unit"
)

// Fill is a box of solid color.
type Fill struct {
	layout.Leaf
	Color color.NRGBA
	// Width and Height are the preferred size, within the
	// constraints.
	Width, Height unit.Dp
}

// Square returns a Fill of size by size.
func Square(size unit.Dp, c color.NRGBA) *Fill {
	return &Fill{Color: c, Width: size, Height: size}
}

func (f *Fill) Measure(gtx layout.Context) image.Point {
	sz := image.Pt(gtx.Dp(f.Width), gtx.Dp(f.Height))
	return gtx.Constraints.Constrain(sz)
}

func (f *Fill) Layout(gtx layout.Context) layout.Node {
	return layout.Node{Size: f.Measure(gtx)}
}

func (f *Fill) Draw(gtx layout.Context, b layout.Box) {
	if gtx.Canvas == nil {
		return
	}
	r := b.Bounds().Intersect(gtx.Canvas.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(gtx.Canvas, r, image.NewUniform(f.Color), image.Point{}, draw.Over)
}
