// SPDX-License-Identifier: Unlicense OR MIT

package cssgrid

import "gioui.org/grid/f32"

// ComputeSize returns the size of the container of t under the
// given constraints. Children are only measured, never laid out,
// and no layout is recorded.
//
// known holds the container dimensions fixed by its parent,
// parent the size percentages of the container resolve against
// and avail the space the container may use.
func ComputeSize(t Tree, known, parent KnownSize, avail AvailableSize, mode SizingMode) Size {
	return compute(t, known, parent, avail, mode, false)
}

// PerformLayout sizes the container of t like ComputeSize, then
// lays out every participating child exactly once and records
// the boxes of the children and the container through
// Tree.SetLayout. Children with DisplayNone are reported through
// Tree.SetHidden.
func PerformLayout(t Tree, known, parent KnownSize, avail AvailableSize, mode SizingMode) Size {
	return compute(t, known, parent, avail, mode, true)
}

// solver holds the state of one grid computation.
type solver struct {
	t     Tree
	style *Style
	items []item
	// contrib memoizes the min-content and max-content
	// contributions of items, indexed like items.
	contrib []contribution
	padding edges
	// inner is the content box size, where known.
	inner KnownSize
	// avail is the available space for the content box.
	avail  AvailableSize
	gaps   [2]float32
	tracks [2][]track
	// sized reports the axes whose tracks are resolved.
	sized [2]bool
}

type contribution struct {
	have [2][2]bool
	v    [2][2]float32
}

const (
	kindMin = iota
	kindMax
)

func compute(t Tree, known, parent KnownSize, avail AvailableSize, mode SizingMode, full bool) Size {
	style := t.Style(Self)
	if mode == SizingInherent {
		known = resolveOwnSize(style, known, parent)
	}
	if !full {
		if w, ok := known.Width.Get(); ok {
			if h, ok := known.Height.Get(); ok {
				return Size{Width: w, Height: h}
			}
		}
	}

	s := &solver{t: t, style: style}
	s.padding = style.Padding.resolve(parent.Width)
	for _, a := range [2]axis{horizontal, vertical} {
		pad := s.padding.sum(a)
		if v, ok := known.get(a).Get(); ok {
			in := max(0, v-pad)
			s.inner.set(a, Some(in))
			s.avail.set(a, Definite(in))
			continue
		}
		sp := avail.get(a)
		if mode == SizingInherent {
			if hi, ok := style.MaxSize.get(a).Resolve(parent.get(a)).Get(); ok {
				if v, ok := sp.Value(); !ok || hi < v {
					sp = Definite(hi)
				}
			}
		}
		s.avail.set(a, sp.sub(pad))
	}
	for _, a := range [2]axis{horizontal, vertical} {
		s.gaps[a] = style.gap(a).resolveZero(s.room(a))
	}

	// Collect participating items in child order.
	var hidden, absolute []int
	n := t.ChildCount(Self)
	for i := 0; i < n; i++ {
		id := t.Child(Self, i)
		cs := t.Style(id)
		switch {
		case cs.Display == DisplayNone:
			hidden = append(hidden, i)
		case cs.Position == Absolute:
			absolute = append(absolute, i)
		default:
			s.items = append(s.items, item{id: id, index: len(s.items), order: uint32(i), style: cs})
		}
	}
	s.contrib = make([]contribution, len(s.items))
	counts := place(style, s.items)

	for _, a := range [2]axis{horizontal, vertical} {
		s.tracks[a] = newTracks(style, a, counts[a])
		s.sizeTracks(a)
		s.sized[a] = true
	}

	var size Size
	for _, a := range [2]axis{horizontal, vertical} {
		v, ok := known.get(a).Get()
		if !ok {
			var content float32
			for _, tr := range s.tracks[a] {
				content += tr.base
			}
			content += s.gaps[a] * float32(max(0, len(s.tracks[a])-1))
			v = content + s.padding.sum(a)
			if mode == SizingInherent {
				lo := style.MinSize.get(a).Resolve(parent.get(a)).Or(0)
				hi := style.MaxSize.get(a).Resolve(parent.get(a)).Or(inf)
				v = clamp(v, lo, hi)
			}
		}
		if a == horizontal {
			size.Width = v
		} else {
			size.Height = v
		}
	}
	if !full {
		return size
	}

	for _, a := range [2]axis{horizontal, vertical} {
		inner := max(0, size.get(a)-s.padding.sum(a))
		alignTracks(s.tracks[a], s.gaps[a], s.padding.start(a), inner, style.contentAlign(a))
	}
	for i := range s.items {
		s.layoutItem(&s.items[i])
	}
	for _, i := range absolute {
		s.layoutAbsolute(t.Child(Self, i), uint32(i), size)
	}
	for _, i := range hidden {
		t.SetHidden(t.Child(Self, i), uint32(i))
	}
	t.SetLayout(Self, Layout{Size: size})
	return size
}

// resolveOwnSize fills in the dimensions of known set by the
// container's style, clamped to its min and max size.
func resolveOwnSize(style *Style, known, parent KnownSize) KnownSize {
	known.Width = known.Width.orOption(style.Size.Width.Resolve(parent.Width))
	known.Height = known.Height.orOption(style.Size.Height.Resolve(parent.Height))
	for _, a := range [2]axis{horizontal, vertical} {
		v, ok := known.get(a).Get()
		if !ok {
			continue
		}
		lo := style.MinSize.get(a).Resolve(parent.get(a)).Or(0)
		hi := style.MaxSize.get(a).Resolve(parent.get(a)).Or(inf)
		known.set(a, Some(clamp(v, lo, hi)))
	}
	return known
}

// room returns the definite size of the content box in axis a,
// or the definite available space.
func (s *solver) room(a axis) Option {
	return s.inner.get(a).orOption(s.avail.get(a).option())
}

func (s *solver) minContent(it *item, a axis) float32 {
	return s.contribution(it, a, kindMin)
}

func (s *solver) maxContent(it *item, a axis) float32 {
	return s.contribution(it, a, kindMax)
}

// contribution returns the outer size of it in axis a under a
// min-content or max-content constraint.
func (s *solver) contribution(it *item, a axis, kind int) float32 {
	c := &s.contrib[it.index]
	if c.have[a][kind] {
		return c.v[a][kind]
	}
	margin := it.style.Margin.resolve(s.inner.Width)
	var v float32
	if d, ok := it.style.Size.get(a).Resolve(None).Get(); ok {
		v = d
	} else {
		known, avail := s.itemQuery(it)
		known.set(a, None)
		if kind == kindMin {
			avail.set(a, MinContentSpace)
		} else {
			avail.set(a, MaxContentSpace)
		}
		v = s.t.MeasureChildSize(it.id, known, avail, SizingContent).get(a)
	}
	lo, hi := itemBounds(it.style, a, None)
	v = clamp(v, lo, hi) + margin.sum(a)
	c.have[a][kind] = true
	c.v[a][kind] = v
	return v
}

// itemQuery returns the known dimensions and available space of
// an item for the axes whose tracks are sized: the grid area,
// stretched when the item is stretched. Unsized axes use the
// container's available space.
func (s *solver) itemQuery(it *item) (KnownSize, AvailableSize) {
	var known KnownSize
	var avail AvailableSize
	margin := it.style.Margin.resolve(s.inner.Width)
	for _, a := range [2]axis{horizontal, vertical} {
		if !s.sized[a] {
			lo, hi := itemBounds(it.style, a, None)
			if v, ok := it.style.Size.get(a).Resolve(None).Get(); ok {
				known.set(a, Some(clamp(v, lo, hi)))
			}
			avail.set(a, s.avail.get(a))
			continue
		}
		_, area := areaOf(s.tracks[a], it.area[a])
		room := max(0, area-margin.sum(a))
		sz := it.style.Size.get(a).Resolve(Some(area))
		if !sz.IsSome() && it.style.itemAlign(s.style, a) == AlignStretch {
			sz = Some(room)
		}
		if v, ok := sz.Get(); ok {
			lo, hi := itemBounds(it.style, a, Some(area))
			known.set(a, Some(clamp(v, lo, hi)))
		}
		avail.set(a, Definite(room))
	}
	return known, avail
}

// itemBounds returns the min and max size of an item in axis a.
func itemBounds(style *Style, a axis, basis Option) (float32, float32) {
	lo := style.MinSize.get(a).Resolve(basis).Or(0)
	hi := style.MaxSize.get(a).Resolve(basis).Or(inf)
	return lo, hi
}

func (s *solver) layoutItem(it *item) {
	known, avail := s.itemQuery(it)
	var lo, hi [2]float32
	for _, a := range [2]axis{horizontal, vertical} {
		_, area := areaOf(s.tracks[a], it.area[a])
		lo[a], hi[a] = itemBounds(it.style, a, Some(area))
		if known.get(a).IsSome() || hi[a] == inf {
			continue
		}
		if v, ok := avail.get(a).Value(); !ok || hi[a] < v {
			avail.set(a, Definite(max(0, hi[a])))
		}
	}
	sz := s.t.PerformChildLayout(it.id, known, avail, SizingInherent)
	// A child that chose a size outside its bounds is laid out again
	// at the clamped size, so that its layout matches its box.
	again := false
	for _, a := range [2]axis{horizontal, vertical} {
		if v := clamp(sz.get(a), lo[a], hi[a]); v != sz.get(a) {
			known.set(a, Some(v))
			again = true
		}
	}
	if again {
		sz = s.t.PerformChildLayout(it.id, known, avail, SizingInherent)
		sz = Size{
			Width:  clamp(sz.Width, lo[horizontal], hi[horizontal]),
			Height: clamp(sz.Height, lo[vertical], hi[vertical]),
		}
	}
	margin := it.style.Margin.resolve(s.inner.Width)
	var loc [2]float32
	for _, a := range [2]axis{horizontal, vertical} {
		start, area := areaOf(s.tracks[a], it.area[a])
		free := area - margin.sum(a) - sz.get(a)
		pos := start + margin.start(a)
		switch it.style.itemAlign(s.style, a) {
		case AlignEnd:
			pos += free
		case AlignCenter:
			pos += free / 2
		}
		loc[a] = pos
	}
	s.t.SetLayout(it.id, Layout{
		Order:    it.order,
		Size:     sz,
		Location: f32.Pt(loc[horizontal], loc[vertical]),
	})
}

// layoutAbsolute positions an absolutely positioned child
// against the padding box of a container of the given size.
func (s *solver) layoutAbsolute(id NodeID, order uint32, size Size) {
	cs := s.t.Style(id)
	margin := cs.Margin.resolve(Some(size.Width))
	var known KnownSize
	var avail AvailableSize
	var start, end [2]Option
	for _, a := range [2]axis{horizontal, vertical} {
		cb := Some(size.get(a))
		if a == horizontal {
			start[a], end[a] = cs.Inset.Left.Resolve(cb), cs.Inset.Right.Resolve(cb)
		} else {
			start[a], end[a] = cs.Inset.Top.Resolve(cb), cs.Inset.Bottom.Resolve(cb)
		}
		lo, hi := itemBounds(cs, a, cb)
		sz := cs.Size.get(a).Resolve(cb)
		s0, okS := start[a].Get()
		e0, okE := end[a].Get()
		if !sz.IsSome() && okS && okE {
			sz = Some(max(0, size.get(a)-s0-e0-margin.sum(a)))
		}
		if v, ok := sz.Get(); ok {
			known.set(a, Some(clamp(v, lo, hi)))
		}
		avail.set(a, Definite(max(0, size.get(a)-s0-e0-margin.sum(a))))
	}
	sz := s.t.PerformChildLayout(id, known, avail, SizingInherent)
	var loc [2]float32
	for _, a := range [2]axis{horizontal, vertical} {
		s0, okS := start[a].Get()
		e0, okE := end[a].Get()
		switch {
		case okS:
			loc[a] = s0 + margin.start(a)
		case okE:
			loc[a] = size.get(a) - e0 - margin.end(a) - sz.get(a)
		default:
			loc[a] = s.padding.start(a) + margin.start(a)
		}
	}
	s.t.SetLayout(id, Layout{
		Order:    order,
		Size:     sz,
		Location: f32.Pt(loc[horizontal], loc[vertical]),
	})
}
