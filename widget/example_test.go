// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/grid/cssgrid"
	"gioui.org/grid/layout"
	"gioui.org/grid/widget"
)

func ExampleGrid() {
	start := func(s *cssgrid.Style) {
		s.JustifySelf = cssgrid.AlignStart
		s.AlignSelf = cssgrid.AlignStart
	}
	g := widget.NewGrid().
		Columns(cssgrid.Length(40), cssgrid.Length(60)).
		Rows(cssgrid.Length(50)).
		WithStyled(widget.Square(20, color.NRGBA{R: 0xff, A: 0xff}), start).
		WithStyled(widget.Square(20, color.NRGBA{B: 0xff, A: 0xff}), start)

	gtx := layout.Context{Constraints: layout.Exact(image.Pt(100, 100))}
	n := g.Layout(gtx)
	fmt.Println("grid:", n.Size)
	for i, c := range n.Children {
		fmt.Printf("child %d: %v\n", i, c.Bounds())
	}

	// Output:
	// grid: (100,100)
	// child 0: (0,0)-(20,20)
	// child 1: (40,0)-(60,20)
}

func ExampleGrid_Width() {
	g := widget.NewGrid().
		Columns(cssgrid.Fr(1), cssgrid.Fr(3)).
		Width(layout.Fixed(200)).
		Height(layout.Shrink).
		With(widget.Square(10, color.NRGBA{A: 0xff})).
		With(&widget.Label{Text: "text"})

	gtx := layout.Context{Constraints: layout.Loose(image.Pt(400, 400))}
	n := g.Layout(gtx)
	fmt.Println("grid:", n.Size)
	for i, c := range n.Children {
		fmt.Printf("child %d: %v\n", i, c.Bounds())
	}

	// Output:
	// grid: (200,13)
	// child 0: (0,0)-(50,13)
	// child 1: (50,0)-(200,13)
}
