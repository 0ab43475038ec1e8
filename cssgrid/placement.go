// SPDX-License-Identifier: Unlicense OR MIT

package cssgrid

// span is a half-open range of zero based track indices.
type span struct {
	start, end int
}

func (s span) len() int {
	return s.end - s.start
}

// item is a participating grid item.
type item struct {
	id    NodeID
	index int // position in the item list
	order uint32
	style *Style
	// area by axis.
	area [2]span
}

// resolvedLine is a placement resolved against the explicit
// grid: either a definite span or an auto position with a span
// length.
type resolvedLine struct {
	definite bool
	span     span
}

// lineIndex converts a 1-based, possibly negative, line number
// to a zero based line index. Lines before the start of the
// explicit grid are clamped to the first line.
func lineIndex(n, explicit int) int {
	if n > 0 {
		return n - 1
	}
	return max(0, explicit+1+n)
}

func (p Placement) resolve(explicit int) resolvedLine {
	switch {
	case p.Start.kind == lineNumber && p.End.kind == lineNumber:
		s, e := lineIndex(p.Start.n, explicit), lineIndex(p.End.n, explicit)
		if e < s {
			s, e = e, s
		}
		if e == s {
			e = s + 1
		}
		return resolvedLine{definite: true, span: span{s, e}}
	case p.Start.kind == lineNumber:
		s := lineIndex(p.Start.n, explicit)
		n := 1
		if p.End.kind == lineSpan {
			n = p.End.n
		}
		return resolvedLine{definite: true, span: span{s, s + n}}
	case p.End.kind == lineNumber:
		e := lineIndex(p.End.n, explicit)
		n := 1
		if p.Start.kind == lineSpan {
			n = p.Start.n
		}
		s := max(0, e-n)
		return resolvedLine{definite: true, span: span{s, max(e, s+1)}}
	}
	n := 1
	if p.Start.kind == lineSpan {
		n = p.Start.n
	} else if p.End.kind == lineSpan {
		n = p.End.n
	}
	return resolvedLine{span: span{0, n}}
}

// occupancy tracks the cells taken by placed items. The
// secondary axis (rows in row flow) grows on demand.
type occupancy struct {
	width int
	cells [][]bool
}

func (o *occupancy) fits(p, s span) bool {
	if p.end > o.width {
		return false
	}
	for r := s.start; r < s.end && r < len(o.cells); r++ {
		for c := p.start; c < p.end; c++ {
			if o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) mark(p, s span) {
	if p.end > o.width {
		o.grow(p.end)
	}
	for len(o.cells) < s.end {
		o.cells = append(o.cells, make([]bool, o.width))
	}
	for r := s.start; r < s.end; r++ {
		for c := p.start; c < p.end; c++ {
			o.cells[r][c] = true
		}
	}
}

func (o *occupancy) grow(width int) {
	for i, row := range o.cells {
		o.cells[i] = append(row, make([]bool, width-len(row))...)
	}
	o.width = width
}

// place assigns a grid area to every item and returns the
// number of tracks per axis, explicit and implicit.
func place(c *Style, items []item) (counts [2]int) {
	flow := c.AutoFlow
	prim := flow.primary()
	sec := prim.other()
	explicit := [2]int{len(c.TemplateColumns), len(c.TemplateRows)}

	type pending struct {
		idx  int
		line [2]resolvedLine
	}
	all := make([]pending, len(items))
	// The primary axis is as wide as the explicit grid, the
	// widest definite placement or the largest auto span.
	width := explicit[prim]
	for i := range items {
		p := pending{idx: i}
		for _, a := range [2]axis{horizontal, vertical} {
			p.line[a] = items[i].style.placement(a).resolve(explicit[a])
		}
		width = max(width, p.line[prim].span.end)
		all[i] = p
	}
	occ := &occupancy{width: width}

	// Items locked to a secondary position, which in row flow is
	// a definite row, are placed first.
	cursors := make(map[int]int)
	var rest []pending
	for _, p := range all {
		ps, ss := p.line[prim], p.line[sec]
		switch {
		case ps.definite && ss.definite:
			occ.mark(ps.span, ss.span)
			items[p.idx].area[prim] = ps.span
			items[p.idx].area[sec] = ss.span
		case ss.definite:
			n := ps.span.len()
			start := 0
			if !flow.dense() {
				start = cursors[ss.span.start]
			}
			// Past the last track the grid grows implicitly.
			for start+n <= occ.width && !occ.fits(span{start, start + n}, ss.span) {
				start++
			}
			ps.span = span{start, start + n}
			occ.mark(ps.span, ss.span)
			cursors[ss.span.start] = ps.span.end
			items[p.idx].area[prim] = ps.span
			items[p.idx].area[sec] = ss.span
		default:
			rest = append(rest, p)
		}
	}

	// Then everything else, with an auto-placement cursor.
	curP, curS := 0, 0
	for _, p := range rest {
		ps, ss := p.line[prim], p.line[sec]
		if flow.dense() {
			curP, curS = 0, 0
		}
		ns := ss.span.len()
		if ps.definite {
			if ps.span.start < curP && !flow.dense() {
				curS++
			}
			curP = ps.span.start
			for !occ.fits(ps.span, span{curS, curS + ns}) {
				curS++
			}
		} else {
			np := ps.span.len()
		search:
			for {
				for ; curP+np <= occ.width; curP++ {
					if occ.fits(span{curP, curP + np}, span{curS, curS + ns}) {
						break search
					}
				}
				curS++
				curP = 0
			}
			ps.span = span{curP, curP + np}
		}
		ss.span = span{curS, curS + ns}
		occ.mark(ps.span, ss.span)
		items[p.idx].area[prim] = ps.span
		items[p.idx].area[sec] = ss.span
		if !ps.definite {
			curP = ps.span.end
		}
	}

	counts[prim] = max(explicit[prim], occ.width)
	counts[sec] = max(explicit[sec], len(occ.cells))
	for _, it := range items {
		counts[horizontal] = max(counts[horizontal], it.area[horizontal].end)
		counts[vertical] = max(counts[vertical], it.area[vertical].end)
	}
	return counts
}
