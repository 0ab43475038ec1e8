// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gioui.org/grid/cssgrid"
	"gioui.org/grid/f32"
	"gioui.org/grid/io/event"
	"gioui.org/grid/io/pointer"
	"gioui.org/grid/layout"
)

// sizedLeaf is a leaf element that counts the calls it receives. Its
// layout has one child node the size of the minimum constraints.
type sizedLeaf struct {
	layout.Leaf
	size     image.Point
	measures int
	layouts  int
	last     layout.Constraints
}

func (p *sizedLeaf) Measure(gtx layout.Context) image.Point {
	p.measures++
	p.last = gtx.Constraints
	return gtx.Constraints.Constrain(p.size)
}

func (p *sizedLeaf) Layout(gtx layout.Context) layout.Node {
	p.layouts++
	p.last = gtx.Constraints
	return layout.Node{
		Size:     gtx.Constraints.Constrain(p.size),
		Children: []layout.Node{{Size: gtx.Constraints.Min}},
	}
}

func startAligned(s *cssgrid.Style) {
	s.JustifySelf = cssgrid.AlignStart
	s.AlignSelf = cssgrid.AlignStart
}

func twoColumns(a, b layout.Element) *Grid {
	return NewGrid().
		Columns(cssgrid.Length(40), cssgrid.Length(60)).
		Rows(cssgrid.Length(50)).
		WithStyled(a, startAligned).
		WithStyled(b, startAligned)
}

func TestGridFixedEmpty(t *testing.T) {
	g := NewGrid().Width(layout.Fixed(100)).Height(layout.Fixed(100))
	gtx := layout.Context{Constraints: layout.Loose(image.Pt(200, 200))}
	if got, want := g.Measure(gtx), image.Pt(100, 100); got != want {
		t.Errorf("Measure: got %v, want %v", got, want)
	}
	n := g.Layout(gtx)
	if want := (layout.Node{Size: image.Pt(100, 100), Children: []layout.Node{}}); !cmp.Equal(n, want) {
		t.Errorf("Layout: got %+v, want %+v", n, want)
	}
}

func TestGridTwoColumns(t *testing.T) {
	p0, p1 := &sizedLeaf{size: image.Pt(20, 20)}, &sizedLeaf{size: image.Pt(20, 20)}
	g := twoColumns(p0, p1)
	gtx := layout.Context{Constraints: layout.Exact(image.Pt(100, 100))}
	n := g.Layout(gtx)
	if want := image.Pt(100, 100); n.Size != want {
		t.Errorf("size: got %v, want %v", n.Size, want)
	}
	want := []image.Rectangle{
		image.Rect(0, 0, 20, 20),
		image.Rect(40, 0, 60, 20),
	}
	var got []image.Rectangle
	for _, c := range n.Children {
		got = append(got, c.Bounds())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("child bounds (-want +got):\n%s", diff)
	}
	if p0.layouts != 1 || p1.layouts != 1 {
		t.Errorf("layouts: %d, %d; want 1 each", p0.layouts, p1.layouts)
	}
	if box := g.ChildLayout(1); box.Location != f32.Pt(40, 0) || box.Order != 1 {
		t.Errorf("ChildLayout(1): %+v", box)
	}
}

func TestGridShrink(t *testing.T) {
	tests := []struct {
		name string
		g    *Grid
		cs   layout.Constraints
	}{
		{"shrink", twoColumns(&sizedLeaf{}, &sizedLeaf{}).Width(layout.Shrink).Height(layout.Shrink), layout.Loose(image.Pt(200, 200))},
		{"unbounded", twoColumns(&sizedLeaf{}, &sizedLeaf{}), layout.Unbounded()},
	}
	for _, test := range tests {
		gtx := layout.Context{Constraints: test.cs}
		if got, want := test.g.Measure(gtx), image.Pt(100, 50); got != want {
			t.Errorf("%s: Measure: got %v, want %v", test.name, got, want)
		}
		if got, want := test.g.Layout(gtx).Size, image.Pt(100, 50); got != want {
			t.Errorf("%s: Layout: got %v, want %v", test.name, got, want)
		}
	}
}

func TestGridIdempotent(t *testing.T) {
	leaves := []*sizedLeaf{
		{size: image.Pt(30, 10)},
		{size: image.Pt(50, 25)},
		{size: image.Pt(10, 40)},
		{size: image.Pt(70, 5)},
	}
	g := NewGrid().
		Columns(cssgrid.AutoTrack(), cssgrid.Fr(1), cssgrid.MinMax(cssgrid.Length(10), cssgrid.Fr(2))).
		ColumnGap(cssgrid.Px(4)).
		RowGap(cssgrid.Px(2))
	for _, p := range leaves {
		g.With(p)
	}
	gtx := layout.Context{Constraints: layout.Exact(image.Pt(300, 200))}
	first := g.Layout(gtx)
	for i, p := range leaves {
		if p.layouts != 1 {
			t.Errorf("child %d: %d layouts, want 1", i, p.layouts)
		}
	}
	second := g.Layout(gtx)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second layout differs (-first +second):\n%s", diff)
	}
	for i, p := range leaves {
		if p.layouts != 1 {
			t.Errorf("child %d laid out again on identical constraints", i)
		}
	}
}

func TestGridMeasureKeepsLayout(t *testing.T) {
	g := NewGrid().Columns(cssgrid.AutoTrack(), cssgrid.Fr(1)).
		With(&sizedLeaf{size: image.Pt(30, 10)}).
		With(&sizedLeaf{size: image.Pt(50, 10)})
	g.Layout(layout.Context{Constraints: layout.Exact(image.Pt(200, 100))})
	before := []cssgrid.Layout{g.ChildLayout(0), g.ChildLayout(1)}
	g.Measure(layout.Context{Constraints: layout.Loose(image.Pt(80, 30))})
	after := []cssgrid.Layout{g.ChildLayout(0), g.ChildLayout(1)}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("Measure changed child boxes (-before +after):\n%s", diff)
	}
}

func TestGridMeasureCache(t *testing.T) {
	p0, p1 := &sizedLeaf{size: image.Pt(30, 10)}, &sizedLeaf{size: image.Pt(50, 10)}
	g := NewGrid().Columns(cssgrid.AutoTrack(), cssgrid.AutoTrack()).
		Width(layout.Shrink).Height(layout.Shrink).
		With(p0).With(p1)
	gtx := layout.Context{Constraints: layout.Loose(image.Pt(200, 200))}
	if got, want := g.Measure(gtx), image.Pt(80, 10); got != want {
		t.Errorf("Measure: got %v, want %v", got, want)
	}
	n0, n1 := p0.measures, p1.measures
	if n0 == 0 || n1 == 0 {
		t.Fatal("children not measured")
	}
	if got, want := g.Measure(gtx), image.Pt(80, 10); got != want {
		t.Errorf("cached Measure: got %v, want %v", got, want)
	}
	if p0.measures != n0 || p1.measures != n1 {
		t.Errorf("identical Measure reached children: %d→%d, %d→%d", n0, p0.measures, n1, p1.measures)
	}
	g.SetChildStyle(1, cssgrid.Style{})
	g.Measure(gtx)
	if p0.measures != n0 {
		t.Error("SetChildStyle dropped the cache of another child")
	}
	if p1.measures == n1 {
		t.Error("SetChildStyle kept the cache of the child")
	}
	g.Invalidate()
	g.Measure(gtx)
	if p0.measures == n0 {
		t.Error("Invalidate kept the cache")
	}
}

func TestGridCacheRestoresSubLayout(t *testing.T) {
	p := &sizedLeaf{size: image.Pt(20, 20)}
	g := NewGrid().Columns(cssgrid.Fr(1)).With(p)
	big := layout.Context{Constraints: layout.Exact(image.Pt(100, 100))}
	small := layout.Context{Constraints: layout.Exact(image.Pt(60, 60))}
	g.Layout(big)
	g.Layout(small)
	n := g.Layout(big)
	if p.layouts != 2 {
		t.Errorf("child laid out %d times, want 2", p.layouts)
	}
	c := n.Children[0]
	if c.Size != image.Pt(100, 100) {
		t.Errorf("child size %v, want (100,100)", c.Size)
	}
	if len(c.Children) != 1 || c.Children[0].Size != image.Pt(100, 100) {
		t.Errorf("stale sub-layout: %+v", c.Children)
	}
}

func TestGridNodeOrder(t *testing.T) {
	g := NewGrid().Columns(cssgrid.Length(40), cssgrid.Length(60)).
		WithStyled(&sizedLeaf{size: image.Pt(20, 20)}, func(s *cssgrid.Style) {
			s.Column = cssgrid.Cell(2, 1)
		}).
		With(&sizedLeaf{size: image.Pt(20, 20)})
	n := g.Layout(layout.Context{Constraints: layout.Exact(image.Pt(100, 50))})
	if len(n.Children) != 2 {
		t.Fatalf("%d children, want 2", len(n.Children))
	}
	if got, want := n.Children[0].Offset, image.Pt(40, 0); got != want {
		t.Errorf("child 0 at %v, want %v", got, want)
	}
	if got, want := n.Children[1].Offset, image.Pt(0, 25); got != want {
		t.Errorf("child 1 at %v, want %v", got, want)
	}
}

func TestGridHiddenChild(t *testing.T) {
	hidden := &sizedLeaf{size: image.Pt(20, 20)}
	g := NewGrid().
		With(&sizedLeaf{size: image.Pt(20, 20)}).
		WithStyled(hidden, func(s *cssgrid.Style) { s.Display = cssgrid.DisplayNone }).
		With(&sizedLeaf{size: image.Pt(20, 20)})
	n := g.Layout(layout.Context{Constraints: layout.Exact(image.Pt(100, 100))})
	if hidden.measures != 0 || hidden.layouts != 0 {
		t.Error("hidden child was queried")
	}
	if !cmp.Equal(n.Children[1], layout.Node{}) {
		t.Errorf("hidden child node: %+v", n.Children[1])
	}
	if got := g.ChildLayout(1); got != (cssgrid.Layout{Order: 1}) {
		t.Errorf("hidden child box: %+v", got)
	}
}

func TestGridReplace(t *testing.T) {
	old, repl := &sizedLeaf{size: image.Pt(20, 20)}, &sizedLeaf{size: image.Pt(20, 20)}
	g := NewGrid().With(old)
	gtx := layout.Context{Constraints: layout.Exact(image.Pt(50, 50))}
	g.Layout(gtx)
	g.Replace(0, repl)
	if g.ChildLayout(0) != (cssgrid.Layout{}) {
		t.Error("Replace kept the old box")
	}
	g.Layout(gtx)
	if old.layouts != 1 || repl.layouts != 1 {
		t.Errorf("layouts: old %d, new %d; want 1 each", old.layouts, repl.layouts)
	}
}

type recorder struct {
	containers int
	texts      []string
}

func (r *recorder) Container(b layout.Box, children func(v layout.Visitor)) {
	r.containers++
	children(r)
}

func (r *recorder) Text(b layout.Box, text string) {
	r.texts = append(r.texts, text)
}

func TestGridPassThrough(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	btn := &Clickable{Child: &Fill{Color: blue}}
	g := NewGrid().
		Columns(cssgrid.Length(40), cssgrid.Length(60)).
		Rows(cssgrid.Length(50)).
		With(&Fill{Color: red}).
		With(btn).
		With(&Label{Text: "hi"})
	canvas := image.NewRGBA(image.Rect(0, 0, 100, 100))
	gtx := layout.Context{Constraints: layout.Exact(image.Pt(100, 100)), Canvas: canvas}
	n := g.Layout(gtx)
	b := layout.Root(&n)

	press := pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(50, 10)}
	release := press
	release.Kind = pointer.Release
	if st := g.Event(gtx, b, press); st != event.Captured {
		t.Errorf("press: %v", st)
	}
	g.Event(gtx, b, release)
	if !btn.Clicked() {
		t.Error("button not clicked")
	}
	if btn.Clicked() {
		t.Error("one click reported twice")
	}
	if st := g.Event(gtx, b, pointer.Event{Kind: pointer.Press, Position: f32.Pt(10, 10)}); st != event.Ignored {
		t.Errorf("press on fill: %v", st)
	}

	if c := g.Cursor(b, f32.Pt(50, 10)); c != pointer.CursorPointer {
		t.Errorf("cursor over button: %v", c)
	}
	if c := g.Cursor(b, f32.Pt(10, 10)); c != pointer.CursorDefault {
		t.Errorf("cursor over fill: %v", c)
	}
	if o := g.Overlay(b); o != nil {
		t.Errorf("overlay: %v", o)
	}

	g.Draw(gtx, b)
	if got := canvas.RGBAAt(10, 10); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("pixel in first column: %v", got)
	}
	if got := canvas.RGBAAt(50, 10); got != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("pixel in second column: %v", got)
	}

	var r recorder
	g.Operate(b, &r)
	if r.containers != 1 || !cmp.Equal(r.texts, []string{"hi"}) {
		t.Errorf("operate: %d containers, texts %q", r.containers, r.texts)
	}
}

func TestGridNested(t *testing.T) {
	leaf := &sizedLeaf{size: image.Pt(10, 10)}
	inner := NewGrid().Columns(cssgrid.Fr(1), cssgrid.Fr(1)).
		With(&sizedLeaf{size: image.Pt(10, 10)}).
		With(leaf)
	outer := NewGrid().Columns(cssgrid.Length(20), cssgrid.Fr(1)).
		With(&sizedLeaf{size: image.Pt(10, 10)}).
		With(inner)
	gtx := layout.Context{Constraints: layout.Exact(image.Pt(220, 100))}
	first := outer.Layout(gtx)
	in := first.Children[1]
	if got, want := in.Bounds(), image.Rect(20, 0, 220, 100); got != want {
		t.Errorf("inner grid bounds %v, want %v", got, want)
	}
	if got, want := in.Children[1].Bounds(), image.Rect(100, 0, 200, 100); got != want {
		t.Errorf("inner child bounds %v, want %v", got, want)
	}
	second := outer.Layout(gtx)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second layout differs (-first +second):\n%s", diff)
	}
	if leaf.layouts != 1 {
		t.Errorf("nested leaf laid out %d times, want 1", leaf.layouts)
	}
}

func TestGridNestedInvalidate(t *testing.T) {
	tests := []struct {
		name string
		wrap func(el layout.Element) layout.Element
	}{
		{"direct", func(el layout.Element) layout.Element { return el }},
		{"inset", func(el layout.Element) layout.Element { return layout.UniformInset(0).Around(el) }},
		{"clickable", func(el layout.Element) layout.Element { return &Clickable{Child: el} }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			leaf := &sizedLeaf{size: image.Pt(10, 10)}
			inner := NewGrid().Width(layout.Shrink).Height(layout.Shrink).With(leaf)
			outer := NewGrid().WithStyled(test.wrap(inner), startAligned)
			gtx := layout.Context{Constraints: layout.Exact(image.Pt(200, 100))}
			if got, want := outer.Layout(gtx).Children[0].Size, image.Pt(10, 10); got != want {
				t.Fatalf("inner size %v, want %v", got, want)
			}
			leaf.size = image.Pt(60, 10)
			inner.Invalidate()
			if got, want := outer.Layout(gtx).Children[0].Size, image.Pt(60, 10); got != want {
				t.Errorf("inner size after Invalidate %v, want %v", got, want)
			}
		})
	}
}

func TestGridVersion(t *testing.T) {
	inner := NewGrid().With(&sizedLeaf{}).With(&sizedLeaf{})
	g := NewGrid().With(inner)
	v := g.Version()
	inner.Invalidate()
	if g.Version() <= v {
		t.Fatal("Invalidate of a child grid did not change the version")
	}
	v = g.Version()
	g.Replace(0, &sizedLeaf{})
	if g.Version() <= v {
		t.Errorf("Replace lowered the version from %d to %d", v, g.Version())
	}
}

func TestGridItemBounds(t *testing.T) {
	tests := []struct {
		name    string
		size    image.Point
		style   func(s *cssgrid.Style)
		want    image.Point
		layouts int
	}{
		{
			name:    "max",
			size:    image.Pt(50, 10),
			style:   func(s *cssgrid.Style) { s.MaxSize.Width = cssgrid.Px(30) },
			want:    image.Pt(30, 10),
			layouts: 1,
		},
		{
			name:    "min",
			size:    image.Pt(10, 10),
			style:   func(s *cssgrid.Style) { s.MinSize.Width = cssgrid.Px(25) },
			want:    image.Pt(25, 10),
			layouts: 2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := &sizedLeaf{size: test.size}
			g := NewGrid().WithStyled(p, func(s *cssgrid.Style) {
				startAligned(s)
				test.style(s)
			})
			n := g.Layout(layout.Context{Constraints: layout.Exact(image.Pt(100, 40))})
			if got := n.Children[0].Size; got != test.want {
				t.Errorf("box size %v, want %v", got, test.want)
			}
			if got := g.slots[0].node.Size; got != test.want {
				t.Errorf("child laid out at %v, want %v", got, test.want)
			}
			if p.layouts != test.layouts {
				t.Errorf("%d layouts, want %d", p.layouts, test.layouts)
			}
		})
	}
}

func TestGridMeasureThenLayout(t *testing.T) {
	build := func() *Grid {
		return NewGrid().
			Columns(cssgrid.AutoTrack(), cssgrid.Fr(1)).
			ColumnGap(cssgrid.Px(5)).
			With(&sizedLeaf{size: image.Pt(30, 10)}).
			With(&sizedLeaf{size: image.Pt(50, 20)}).
			With(&sizedLeaf{size: image.Pt(70, 5)})
	}
	gtx := layout.Context{Constraints: layout.Exact(image.Pt(250, 150))}
	g := build()
	g.Measure(layout.Context{Constraints: layout.Loose(image.Pt(90, 40))})
	got := g.Layout(gtx)
	fresh := build()
	want := fresh.Layout(gtx)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout after Measure (-fresh +got):\n%s", diff)
	}
	for i := 0; i < g.Len(); i++ {
		if g.ChildLayout(i) != fresh.ChildLayout(i) {
			t.Errorf("child %d: box %+v, fresh grid %+v", i, g.ChildLayout(i), fresh.ChildLayout(i))
		}
	}
}

func TestGridSizeMatchesLayout(t *testing.T) {
	children := []func() layout.Element{
		func() layout.Element { return &Label{Text: "a few words to wrap"} },
		func() layout.Element { return &sizedLeaf{size: image.Pt(40, 15)} },
		func() layout.Element { return Square(20, color.NRGBA{A: 0xff}) },
	}
	queries := []struct {
		known cssgrid.KnownSize
		avail cssgrid.AvailableSize
	}{
		{avail: cssgrid.AvailableSize{Width: cssgrid.MaxContentSpace, Height: cssgrid.MaxContentSpace}},
		{avail: cssgrid.AvailableSize{Width: cssgrid.MinContentSpace, Height: cssgrid.MaxContentSpace}},
		{avail: cssgrid.AvailableSize{Width: cssgrid.Definite(30), Height: cssgrid.Definite(100)}},
		{
			known: cssgrid.KnownSize{Width: cssgrid.Some(50)},
			avail: cssgrid.AvailableSize{Width: cssgrid.Definite(80), Height: cssgrid.MaxContentSpace},
		},
	}
	for i, child := range children {
		for _, q := range queries {
			sized := &gridTree{g: NewGrid().With(child())}
			laid := &gridTree{g: NewGrid().With(child())}
			sz := sized.MeasureChildSize(cssgrid.Child(0), q.known, q.avail, cssgrid.SizingContent)
			lz := laid.PerformChildLayout(cssgrid.Child(0), q.known, q.avail, cssgrid.SizingInherent)
			if sz != lz {
				t.Errorf("child %d, %v %v: size-only %v, layout %v", i, q.known, q.avail, sz, lz)
			}
		}
	}
}

func TestGridTreeSelfPanics(t *testing.T) {
	g := NewGrid().With(&sizedLeaf{})
	tree := &gridTree{g: g}
	defer func() {
		if recover() == nil {
			t.Error("measuring the container as a child did not panic")
		}
	}()
	tree.MeasureChildSize(cssgrid.Self, cssgrid.KnownSize{}, cssgrid.AvailableSize{}, cssgrid.SizingInherent)
}

func TestMeasureCache(t *testing.T) {
	var c measureCache
	known := cssgrid.KnownSize{Width: cssgrid.Some(10)}
	avail := cssgrid.AvailableSize{Width: cssgrid.Definite(10), Height: cssgrid.MinContentSpace}
	c.put(cacheKey{known, avail, querySize}, cacheEntry{size: cssgrid.Size{Width: 10, Height: 5}})
	if _, ok := c.layout(known, avail); ok {
		t.Error("size entry answered a layout query")
	}
	if sz, ok := c.size(known, avail); !ok || sz.Height != 5 {
		t.Errorf("size: %v, %v", sz, ok)
	}
	other := avail
	other.Height = cssgrid.MaxContentSpace
	if _, ok := c.size(known, other); ok {
		t.Error("min-content entry answered a max-content query")
	}
	n := layout.Node{Size: image.Pt(10, 7)}
	c.put(cacheKey{known, other, queryLayout}, cacheEntry{size: cssgrid.Size{Width: 10, Height: 7}, node: n})
	if sz, ok := c.size(known, other); !ok || sz.Height != 7 {
		t.Errorf("layout entry did not answer a size query: %v, %v", sz, ok)
	}
	if e, ok := c.layout(known, other); !ok || !cmp.Equal(e.node, n) {
		t.Errorf("layout: %+v, %v", e, ok)
	}

	for i := 0; i < 3*maxCacheEntries; i++ {
		k := cacheKey{known: cssgrid.KnownSize{Height: cssgrid.Some(float32(i))}}
		c.put(k, cacheEntry{})
		if c.len() > maxCacheEntries {
			t.Fatalf("cache grew to %d entries", c.len())
		}
	}
}

func TestChildConstraints(t *testing.T) {
	tests := []struct {
		name  string
		known cssgrid.KnownSize
		avail cssgrid.AvailableSize
		want  layout.Constraints
	}{
		{
			name: "unbounded",
			want: layout.Unbounded(),
		},
		{
			name:  "available",
			avail: cssgrid.AvailableSize{Width: cssgrid.Definite(40.4), Height: cssgrid.MinContentSpace},
			want:  layout.Constraints{Max: image.Pt(40, layout.Inf)},
		},
		{
			name:  "known",
			known: cssgrid.KnownSize{Width: cssgrid.Some(29.6)},
			avail: cssgrid.AvailableSize{Width: cssgrid.Definite(100), Height: cssgrid.Definite(50)},
			want:  layout.Constraints{Min: image.Pt(30, 0), Max: image.Pt(30, 50)},
		},
		{
			name:  "known beyond available",
			known: cssgrid.KnownSize{Height: cssgrid.Some(80)},
			avail: cssgrid.AvailableSize{Width: cssgrid.MaxContentSpace, Height: cssgrid.Definite(50)},
			want:  layout.Constraints{Min: image.Pt(0, 50), Max: image.Pt(layout.Inf, 50)},
		},
	}
	for _, test := range tests {
		if got := childConstraints(test.known, test.avail); got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestConstraintsQuery(t *testing.T) {
	known, parent, avail := constraintsQuery(layout.Constraints{
		Min: image.Pt(100, 0),
		Max: image.Pt(100, layout.Inf),
	})
	if w, ok := known.Width.Get(); !ok || w != 100 {
		t.Errorf("known width: %v", known.Width)
	}
	if known.Height.IsSome() || parent.Height.IsSome() {
		t.Error("unbounded height is known")
	}
	if v, ok := avail.Width.Value(); !ok || v != 100 {
		t.Errorf("available width: %v", avail.Width)
	}
	if !avail.Height.IsMaxContent() {
		t.Errorf("available height: %v", avail.Height)
	}
}
