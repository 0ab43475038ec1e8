// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"
	"image"

	"gioui.org/grid/layout"
)

func ExampleInset() {
	gtx := layout.Context{
		// Loose constraints with no minimal size.
		Constraints: layout.Loose(image.Point{X: 100, Y: 100}),
	}

	// Inset all edges by 10.
	inset := layout.UniformInset(10)
	n := inset.Around(widget{size: image.Pt(50, 50), report: func(n layout.Node) {
		// Lay out a 50x50 sized widget.
		fmt.Println(n.Size)
	}}).Layout(gtx)

	fmt.Println(n.Size)
	fmt.Println(n.Children[0].Offset)

	// Output:
	// (50,50)
	// (70,70)
	// (10,10)
}

func ExampleDirection() {
	gtx := layout.Context{
		// Rigid constraints with both minimum and maximum set.
		Constraints: layout.Exact(image.Point{X: 100, Y: 100}),
	}

	n := layout.Center.Align(widget{size: image.Pt(50, 50), report: func(n layout.Node) {
		// Lay out a 50x50 sized widget.
		fmt.Println(n.Size)
	}}).Layout(gtx)

	fmt.Println(n.Size)
	fmt.Println(n.Children[0].Offset)

	// Output:
	// (50,50)
	// (100,100)
	// (25,25)
}

func ExampleFlex() {
	gtx := layout.Context{
		// Rigid constraints with both minimum and maximum set.
		Constraints: layout.Exact(image.Point{X: 100, Y: 100}),
	}

	layout.Flex{
		WeightSum: 2,
		Children: []layout.FlexChild{
			// Rigid 10x10 widget.
			layout.Rigid(widget{size: image.Pt(10, 10), constraints: func(cs layout.Constraints) {
				fmt.Printf("Rigid: %v\n", cs)
			}}),
			// Child with 50% space allowance.
			layout.Flexed(1, widget{size: image.Pt(10, 10), constraints: func(cs layout.Constraints) {
				fmt.Printf("50%%: %v\n", cs)
			}}),
		},
	}.Layout(gtx)

	// Output:
	// Rigid: {(0,100) (100,100)}
	// 50%: {(45,100) (45,100)}
}

func ExampleStack() {
	gtx := layout.Context{
		Constraints: layout.Loose(image.Point{X: 100, Y: 100}),
	}

	layout.Stack{
		Children: []layout.StackChild{
			// Stacked 50x50 widget.
			layout.Stacked(widget{size: image.Pt(50, 50)}),
			// Force widget to the same size as the first.
			layout.Expanded(widget{size: image.Pt(10, 10), constraints: func(cs layout.Constraints) {
				fmt.Printf("Expand: %v\n", cs)
			}}),
		},
	}.Layout(gtx)

	// Output:
	// Expand: {(50,50) (100,100)}
}

// widget is a leaf element of a fixed size.
type widget struct {
	layout.Leaf
	size        image.Point
	constraints func(layout.Constraints)
	report      func(layout.Node)
}

func (w widget) Measure(gtx layout.Context) image.Point {
	return gtx.Constraints.Constrain(w.size)
}

func (w widget) Layout(gtx layout.Context) layout.Node {
	if w.constraints != nil {
		w.constraints(gtx.Constraints)
	}
	n := layout.Node{Size: gtx.Constraints.Constrain(w.size)}
	if w.report != nil {
		w.report(n)
	}
	return n
}
