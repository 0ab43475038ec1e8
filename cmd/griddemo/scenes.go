// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"

	"gioui.org/grid/cssgrid"
	"gioui.org/grid/layout"
	"gioui.org/grid/widget"
)

const paragraph = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum."

// sceneOptions parameterize the generated scenes.
type sceneOptions struct {
	// Levels is the nesting depth of the huge scene. The
	// row-column scene nests three times as deep, with two
	// children per row or column.
	Levels int
	// Tracks is the number of rows and columns of every grid
	// in the huge scene.
	Tracks int
	Seed   uint64
}

func defaultSceneOptions() sceneOptions {
	return sceneOptions{Levels: 4, Tracks: 3, Seed: 12345}
}

// scene is a widget tree together with the number of elements in
// it, not counting the root.
type scene struct {
	Root  layout.Element
	Nodes int
}

var scenes = map[string]func(o sceneOptions) scene{
	"nested":     nestedScene,
	"huge":       hugeScene,
	"row-column": rowColumnScene,
	"test":       testScene,
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for n := range scenes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func buildScene(name string, o sceneOptions) (scene, error) {
	build, ok := scenes[name]
	if !ok {
		return scene{}, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(sceneNames(), ", "))
	}
	return build(o), nil
}

var palette = []color.RGBA{
	colornames.Crimson,
	colornames.Seagreen,
	colornames.Gold,
	colornames.Royalblue,
	colornames.Darkorange,
	colornames.Darkorchid,
	colornames.Turquoise,
	colornames.Violet,
	colornames.Yellowgreen,
	colornames.Pink,
	colornames.Teal,
	colornames.Lavender,
	colornames.Saddlebrown,
	colornames.Lemonchiffon,
	colornames.Maroon,
	colornames.Aquamarine,
	colornames.Olive,
	colornames.Peachpuff,
	colornames.Navy,
	colornames.Gray,
}

func nrgba(c color.RGBA) color.NRGBA {
	// Named colors are opaque, so the premultiplied and
	// non-premultiplied forms agree.
	return color.NRGBA(c)
}

func rect(c color.RGBA) *widget.Fill {
	return widget.Square(20, nrgba(c))
}

func randomColor(rng *rand.Rand) color.RGBA {
	return palette[rng.IntN(len(palette))]
}

func centered(s *cssgrid.Style) {
	s.AlignSelf = cssgrid.AlignCenter
	s.JustifySelf = cssgrid.AlignCenter
}

// button is a clickable label on a light background.
func button(text string) *widget.Clickable {
	label := &widget.Label{Text: text, Color: nrgba(colornames.Black)}
	return &widget.Clickable{
		Child: layout.Stack{
			Children: []layout.StackChild{
				layout.Expanded(&widget.Fill{Color: nrgba(colornames.Lightgray)}),
				layout.Stacked(layout.UniformInset(4).Around(label)),
			},
		},
	}
}

// nestedScene is a three by three grid of fixed boxes, text and
// nested grids, one of them with an absolutely positioned child.
func nestedScene(sceneOptions) scene {
	black := nrgba(colornames.Black)
	text := widget.NewGrid().
		With(layout.Center.Align(&widget.Label{Text: "Button clicked 0 times", Color: black})).
		WithStyled(&widget.Label{Text: paragraph, Color: black}, func(s *cssgrid.Style) {
			s.Size.Width = cssgrid.Px(100)
			s.Margin = cssgrid.UniformEdges(cssgrid.Px(40))
		})
	buttons := widget.NewGrid().
		Columns(cssgrid.Fr(1), cssgrid.Fr(2), cssgrid.Fr(1)).
		Rows(cssgrid.Fr(1), cssgrid.Percentage(0.5), cssgrid.Fr(1)).
		With(rect(palette[6])).
		With(rect(palette[7])).
		With(rect(palette[8])).
		With(rect(palette[9])).
		WithStyled(button("Increment"), centered).
		With(rect(palette[10])).
		With(rect(palette[12])).
		With(rect(palette[13])).
		With(rect(palette[14])).
		WithStyled(rect(palette[15]), func(s *cssgrid.Style) {
			s.Position = cssgrid.Absolute
			s.Row = cssgrid.Placement{Start: cssgrid.LineAt(1)}
			s.Column = cssgrid.Placement{Start: cssgrid.LineAt(1)}
			s.Inset.Left = cssgrid.Px(10)
			s.Inset.Top = cssgrid.Px(10)
		})
	root := widget.NewGrid().
		Columns(cssgrid.Fr(1), cssgrid.Fr(2), cssgrid.Fr(1)).
		Rows(cssgrid.AutoTrack(), cssgrid.AutoTrack(), cssgrid.Fr(1)).
		Styled(func(s *cssgrid.Style) {
			s.Size.Width = cssgrid.Percent(1)
			s.Size.Height = cssgrid.Percent(1)
			s.ColumnGap = cssgrid.Px(20)
			s.RowGap = cssgrid.Px(20)
		}).
		With(rect(colornames.Black)).
		With(text).
		With(rect(colornames.Red)).
		With(rect(palette[0])).
		With(rect(palette[1])).
		With(rect(palette[2])).
		With(rect(palette[3])).
		With(buttons).
		With(rect(palette[5]))
	// 9 root children, 2 text children and the aligned label,
	// 10 in the button grid and the 4 elements inside the button.
	return scene{Root: root, Nodes: 9 + 2 + 1 + 10 + 4}
}

// testScene is two fixed columns with a fixed row, each holding
// a box aligned to the start of its cell.
func testScene(sceneOptions) scene {
	start := func(s *cssgrid.Style) {
		s.JustifySelf = cssgrid.AlignStart
		s.AlignSelf = cssgrid.AlignStart
	}
	root := widget.NewGrid().
		Columns(cssgrid.Length(40), cssgrid.Length(60)).
		Rows(cssgrid.Length(50)).
		WithStyled(rect(colornames.Red), start).
		WithStyled(rect(colornames.Blue), start)
	return scene{Root: root, Nodes: 2}
}

func randomTrack(rng *rand.Rand) cssgrid.Track {
	switch v := rng.Float32(); {
	case v < 0.1:
		return cssgrid.AutoTrack()
	case v < 0.2:
		return cssgrid.MinContent()
	case v < 0.3:
		return cssgrid.MaxContent()
	case v < 0.5:
		return cssgrid.Fr(1)
	case v < 0.6:
		return cssgrid.MinMax(cssgrid.Length(0), cssgrid.Fr(1))
	case v < 0.8:
		return cssgrid.Length(40)
	default:
		return cssgrid.Percentage(0.3)
	}
}

func randomGrid(rng *rand.Rand, n int) *widget.Grid {
	cols := make([]cssgrid.Track, n)
	for i := range cols {
		cols[i] = randomTrack(rng)
	}
	rows := make([]cssgrid.Track, n)
	for i := range rows {
		rows[i] = randomTrack(rng)
	}
	return widget.NewGrid().Columns(cols...).Rows(rows...)
}

// fillGrid adds tracks*tracks children to parent, recursing until
// levels is exhausted. It returns the number of elements added.
func fillGrid(parent *widget.Grid, rng *rand.Rand, levels, tracks int) int {
	count := 0
	for range tracks * tracks {
		count++
		if levels <= 1 {
			parent.With(rect(randomColor(rng)))
			continue
		}
		g := randomGrid(rng, tracks)
		count += fillGrid(g, rng, levels-1, tracks)
		parent.With(g)
	}
	return count
}

// hugeScene is a deep tree of grids with randomly sized tracks.
func hugeScene(o sceneOptions) scene {
	rng := rand.New(rand.NewPCG(o.Seed, 0))
	root := randomGrid(rng, o.Tracks)
	n := fillGrid(root, rng, o.Levels, o.Tracks)
	return scene{Root: root, Nodes: n}
}

func rowColumn(levels int, children []layout.Element) layout.Element {
	if levels%2 == 0 {
		return layout.Row(children...)
	}
	return layout.Column(children...)
}

func rowColumnTree(rng *rand.Rand, levels, n int) ([]layout.Element, int) {
	els := make([]layout.Element, n)
	count := n
	for i := range els {
		if levels <= 1 {
			els[i] = rect(randomColor(rng))
			continue
		}
		children, m := rowColumnTree(rng, levels-1, n)
		count += m
		els[i] = rowColumn(levels, children)
	}
	return els, count
}

// rowColumnScene is a deep tree of alternating rows and columns,
// for comparing the grid against the native box layout.
func rowColumnScene(o sceneOptions) scene {
	rng := rand.New(rand.NewPCG(o.Seed, 0))
	levels := 3 * o.Levels
	children, n := rowColumnTree(rng, levels, 2)
	return scene{Root: rowColumn(levels+1, children), Nodes: n}
}
