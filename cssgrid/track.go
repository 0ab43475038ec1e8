// SPDX-License-Identifier: Unlicense OR MIT

package cssgrid

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var inf = float32(math.Inf(1))

// epsilon bounds float drift in iterative distribution.
const epsilon = 1e-3

// clamp v to [lo, hi]. The minimum wins over the maximum.
func clamp[T constraints.Float](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// track is a grid track during sizing.
type track struct {
	Track
	base, limit float32
	// offset of the track start from the container border box.
	offset float32
}

func (t *track) flex() bool {
	return t.Max.Kind == SizingFr
}

func (t *track) factor() float32 {
	if !t.flex() {
		return 0
	}
	return max(0, t.Max.Value)
}

// effectiveLimit treats an infinite growth limit as the base
// size.
func (t *track) effectiveLimit() float32 {
	if t.limit == inf {
		return t.base
	}
	return t.limit
}

// growLimit raises a growth limit to v. An infinite limit is
// replaced.
func (t *track) growLimit(v float32) {
	if t.limit == inf || v > t.limit {
		t.limit = v
	}
}

func newTracks(c *Style, a axis, count int) []track {
	tmpl := c.template(a)
	auto := c.autoTracks(a)
	ts := make([]track, count)
	for i := range ts {
		switch {
		case i < len(tmpl):
			ts[i].Track = tmpl[i]
		case len(auto) > 0:
			ts[i].Track = auto[(i-len(tmpl))%len(auto)]
		}
	}
	return ts
}

// initTrack sets the initial base size and growth limit of t.
// Percentages of an indefinite basis behave as auto.
func initTrack(t *track, basis Option) {
	b, definite := basis.Get()
	if t.Min.Kind == SizingPercent && !definite {
		t.Min = Sizing{}
	}
	if t.Max.Kind == SizingPercent && !definite {
		t.Max = Sizing{}
	}
	switch t.Min.Kind {
	case SizingFixed:
		t.base = t.Min.Value
	case SizingPercent:
		t.base = t.Min.Value * b
	default:
		t.base = 0
	}
	switch t.Max.Kind {
	case SizingFixed:
		t.limit = t.Max.Value
	case SizingPercent:
		t.limit = t.Max.Value * b
	default:
		t.limit = inf
	}
	t.limit = max(t.limit, t.base)
}

func sumBase(ts []track, s span) float32 {
	var sum float32
	for i := s.start; i < s.end; i++ {
		sum += ts[i].base
	}
	return sum
}

func crossesFlex(ts []track, s span) bool {
	for i := s.start; i < s.end; i++ {
		if ts[i].flex() {
			return true
		}
	}
	return false
}

// sizeTracks runs the track sizing algorithm for axis a. For
// rows it relies on the columns being sized already.
func (s *solver) sizeTracks(a axis) {
	ts := s.tracks[a]
	room := s.room(a)
	space := s.avail.get(a)
	gap := s.gaps[a]

	// 1. Initialize track sizes.
	for i := range ts {
		initTrack(&ts[i], room)
	}

	// 2. Resolve intrinsic track sizes.
	// 2.1 Size tracks to fit non-spanning items.
	var spanning []*item
	for i := range s.items {
		it := &s.items[i]
		sp := it.area[a]
		switch {
		case sp.len() == 1:
			s.fitSingle(it, &ts[sp.start], a, space)
		case !crossesFlex(ts, sp):
			spanning = append(spanning, it)
		}
	}
	// 2.2 Increase sizes to accommodate spanning items, shortest
	// spans first.
	slices.SortStableFunc(spanning, func(x, y *item) int {
		return x.area[a].len() - y.area[a].len()
	})
	for _, it := range spanning {
		s.fitSpanning(it, ts, a, space)
	}
	// 2.3 Fix infinite growth limits.
	for i := range ts {
		t := &ts[i]
		if t.limit == inf {
			t.limit = t.base
		}
		if t.Max.Kind == SizingFitContent {
			t.limit = min(t.limit, t.Max.Value)
		}
		t.limit = max(t.limit, t.base)
	}

	// 3. Maximize tracks.
	gaps := gap * float32(max(0, len(ts)-1))
	if r, ok := room.Get(); ok {
		var grow []*track
		for i := range ts {
			if !ts[i].flex() {
				grow = append(grow, &ts[i])
			}
		}
		distribute(grow, r-gaps-sumBase(ts, span{0, len(ts)}), true)
	} else if space.IsMaxContent() {
		for i := range ts {
			if !ts[i].flex() {
				ts[i].base = ts[i].limit
			}
		}
	}

	// 4. Expand flexible tracks.
	s.expandFlex(ts, a, room, space)

	// 5. Stretch auto tracks. Only a container of known size has
	// space to stretch into.
	if r, ok := s.inner.get(a).Get(); ok {
		switch s.style.contentAlign(a) {
		case ContentNormal, ContentStretch:
			var autos []*track
			for i := range ts {
				if ts[i].Max.Kind == SizingAuto {
					autos = append(autos, &ts[i])
				}
			}
			distribute(autos, r-gaps-sumBase(ts, span{0, len(ts)}), false)
		}
	}
}

func (s *solver) fitSingle(it *item, t *track, a axis, space AvailableSpace) {
	if !t.Min.intrinsic() && !t.Max.intrinsic() {
		return
	}
	switch t.Min.Kind {
	case SizingMinContent:
		t.base = max(t.base, s.minContent(it, a))
	case SizingMaxContent:
		t.base = max(t.base, s.maxContent(it, a))
	case SizingAuto:
		if space.IsMaxContent() {
			t.base = max(t.base, s.maxContent(it, a))
		} else {
			t.base = max(t.base, s.minContent(it, a))
		}
	}
	switch t.Max.Kind {
	case SizingMinContent:
		t.growLimit(s.minContent(it, a))
	case SizingMaxContent, SizingAuto, SizingFitContent:
		t.growLimit(s.maxContent(it, a))
	}
	if t.limit != inf {
		t.limit = max(t.limit, t.base)
	}
}

func (s *solver) fitSpanning(it *item, ts []track, a axis, space AvailableSpace) {
	sp := it.area[a]
	gaps := s.gaps[a] * float32(sp.len()-1)

	// Base sizes of tracks with an intrinsic minimum.
	var need float32
	if space.IsMaxContent() {
		need = s.maxContent(it, a)
	} else {
		need = s.minContent(it, a)
	}
	var affected []*track
	for i := sp.start; i < sp.end; i++ {
		if ts[i].Min.intrinsic() {
			affected = append(affected, &ts[i])
		}
	}
	if extra := need - gaps - sumBase(ts, sp); extra > 0 && len(affected) > 0 {
		share := extra / float32(len(affected))
		for _, t := range affected {
			t.base += share
			if t.limit != inf {
				t.limit = max(t.limit, t.base)
			}
		}
	}

	// Growth limits of tracks with an intrinsic maximum.
	need = s.maxContent(it, a)
	affected = affected[:0]
	var limits float32
	for i := sp.start; i < sp.end; i++ {
		limits += ts[i].effectiveLimit()
		if ts[i].Max.intrinsic() {
			affected = append(affected, &ts[i])
		}
	}
	if extra := need - gaps - limits; extra > 0 && len(affected) > 0 {
		share := extra / float32(len(affected))
		for _, t := range affected {
			t.limit = t.effectiveLimit() + share
		}
	}
}

// distribute free space equally over the base sizes of ts. With
// capped set, tracks freeze at their growth limit.
func distribute(ts []*track, free float32, capped bool) {
	if len(ts) == 0 {
		return
	}
	if !capped {
		share := max(0, free) / float32(len(ts))
		for _, t := range ts {
			t.base += share
		}
		return
	}
	for free > epsilon {
		var open []*track
		for _, t := range ts {
			if t.limit-t.base > epsilon {
				open = append(open, t)
			}
		}
		if len(open) == 0 {
			return
		}
		share := free / float32(len(open))
		var used float32
		for _, t := range open {
			d := min(share, t.limit-t.base)
			t.base += d
			used += d
		}
		free -= used
	}
}

func (s *solver) expandFlex(ts []track, a axis, room Option, space AvailableSpace) {
	var flexible []*track
	for i := range ts {
		if ts[i].flex() {
			flexible = append(flexible, &ts[i])
		}
	}
	if len(flexible) == 0 {
		return
	}
	gap := s.gaps[a]
	var fr float32
	switch r, ok := room.Get(); {
	case ok:
		fr = findFrSize(ts, span{0, len(ts)}, r-gap*float32(len(ts)-1))
	case space.IsMinContent():
		fr = 0
	default:
		for _, t := range flexible {
			if f := t.factor(); f > 1 {
				fr = max(fr, t.base/f)
			} else {
				fr = max(fr, t.base)
			}
		}
		for i := range s.items {
			it := &s.items[i]
			sp := it.area[a]
			if !crossesFlex(ts, sp) {
				continue
			}
			need := s.maxContent(it, a) - gap*float32(sp.len()-1)
			fr = max(fr, findFrSize(ts, sp, need))
		}
	}
	for _, t := range flexible {
		t.base = max(t.base, fr*t.factor())
		t.limit = t.base
	}
}

// findFrSize returns the size of one flex fraction when the
// tracks of s fill space. Flexible tracks whose base size
// exceeds their share are treated as inflexible.
func findFrSize(ts []track, s span, space float32) float32 {
	rigid := make([]bool, s.len())
	for {
		left := space
		var factors float32
		for i := s.start; i < s.end; i++ {
			t := &ts[i]
			if t.flex() && !rigid[i-s.start] {
				factors += t.factor()
			} else {
				left -= t.base
			}
		}
		if factors == 0 {
			return 0
		}
		hyp := max(0, left) / max(1, factors)
		changed := false
		for i := s.start; i < s.end; i++ {
			t := &ts[i]
			if t.flex() && !rigid[i-s.start] && hyp*t.factor() < t.base {
				rigid[i-s.start] = true
				changed = true
			}
		}
		if !changed {
			return hyp
		}
	}
}

// alignTracks sets the offset of every track in axis a from
// the content alignment of the container. start is the offset
// of the content box and size its length.
func alignTracks(ts []track, gap, start, size float32, align ContentAlign) {
	var used float32
	for i := range ts {
		used += ts[i].base
	}
	used += gap * float32(max(0, len(ts)-1))
	free := size - used
	n := float32(len(ts))
	var lead, between float32
	switch align {
	case ContentEnd:
		lead = free
	case ContentCenter:
		lead = free / 2
	case ContentSpaceBetween:
		if free > 0 && n > 1 {
			between = free / (n - 1)
		}
	case ContentSpaceAround:
		if free > 0 && n > 0 {
			between = free / n
			lead = between / 2
		}
	case ContentSpaceEvenly:
		if free > 0 {
			between = free / (n + 1)
			lead = between
		}
	}
	pos := start + lead
	for i := range ts {
		ts[i].offset = pos
		pos += ts[i].base + gap + between
	}
}

// areaOf returns the start offset and length of the tracks in s.
func areaOf(ts []track, s span) (float32, float32) {
	if s.len() == 0 || s.end > len(ts) {
		return 0, 0
	}
	first, last := &ts[s.start], &ts[s.end-1]
	return first.offset, last.offset + last.base - first.offset
}
