// SPDX-License-Identifier: Unlicense OR MIT

package cssgrid

import (
	"fmt"
	"math"

	"gioui.org/grid/f32"
)

// Size is a width and height in pixels.
type Size struct {
	Width, Height float32
}

// Option is a length that may be undefined. The zero
// value is undefined.
type Option struct {
	v  float32
	ok bool
}

// None is the undefined Option.
var None Option

// Some returns a defined Option.
func Some(v float32) Option {
	return Option{v: v, ok: true}
}

// Get returns the value and whether it is defined.
func (o Option) Get() (float32, bool) {
	return o.v, o.ok
}

// IsSome reports whether o is defined.
func (o Option) IsSome() bool {
	return o.ok
}

// Or returns the value of o if defined, def otherwise.
func (o Option) Or(def float32) float32 {
	if o.ok {
		return o.v
	}
	return def
}

func (o Option) orOption(o2 Option) Option {
	if o.ok {
		return o
	}
	return o2
}

func (o Option) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("%g", o.v)
}

// KnownSize holds the dimensions of a node that are already
// fixed by its parent.
type KnownSize struct {
	Width, Height Option
}

// AvailableSpace is the space a node may use in one axis:
// a definite length, or a min-content or max-content
// constraint when the space is indefinite.
type AvailableSpace struct {
	kind spaceKind
	v    float32
}

type spaceKind uint8

const (
	spaceMaxContent spaceKind = iota
	spaceMinContent
	spaceDefinite
)

var (
	// MaxContentSpace is indefinite space in which a node
	// takes its max-content size. It is the zero value.
	MaxContentSpace = AvailableSpace{kind: spaceMaxContent}
	// MinContentSpace is indefinite space in which a node
	// takes its min-content size.
	MinContentSpace = AvailableSpace{kind: spaceMinContent}
)

// Definite returns definite available space of v pixels.
// Non-finite values are treated as max-content space.
func Definite(v float32) AvailableSpace {
	if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
		return MaxContentSpace
	}
	return AvailableSpace{kind: spaceDefinite, v: v}
}

// Value returns the length of definite space.
func (s AvailableSpace) Value() (float32, bool) {
	return s.v, s.kind == spaceDefinite
}

// IsDefinite reports whether s is a definite length.
func (s AvailableSpace) IsDefinite() bool {
	return s.kind == spaceDefinite
}

// IsMinContent reports whether s is a min-content constraint.
func (s AvailableSpace) IsMinContent() bool {
	return s.kind == spaceMinContent
}

// IsMaxContent reports whether s is a max-content constraint.
func (s AvailableSpace) IsMaxContent() bool {
	return s.kind == spaceMaxContent
}

// sub returns definite space reduced by d. Indefinite space
// is unchanged.
func (s AvailableSpace) sub(d float32) AvailableSpace {
	if s.kind != spaceDefinite {
		return s
	}
	return AvailableSpace{kind: spaceDefinite, v: max(0, s.v-d)}
}

func (s AvailableSpace) option() Option {
	if s.kind != spaceDefinite {
		return None
	}
	return Some(s.v)
}

func (s AvailableSpace) String() string {
	switch s.kind {
	case spaceDefinite:
		return fmt.Sprintf("%g", s.v)
	case spaceMinContent:
		return "min-content"
	default:
		return "max-content"
	}
}

// AvailableSize is the available space in both axes.
type AvailableSize struct {
	Width, Height AvailableSpace
}

// Layout is the resolved box of a node: its size, its location
// relative to the container's border box and its paint order.
type Layout struct {
	Order    uint32
	Size     Size
	Location f32.Point
}

// Rect returns the box of l.
func (l Layout) Rect() f32.Rectangle {
	return f32.Rectangle{
		Min: l.Location,
		Max: l.Location.Add(f32.Pt(l.Size.Width, l.Size.Height)),
	}
}

// Rounded returns l with the location and size rounded to whole
// pixels. The far edge is rounded rather than the size so that
// adjacent boxes stay adjacent.
func (l Layout) Rounded() Layout {
	r := l.Rect().Round()
	return Layout{
		Order:    l.Order,
		Location: f32.FPt(r.Min),
		Size:     Size{Width: float32(r.Dx()), Height: float32(r.Dy())},
	}
}

// axis selects the horizontal (inline) or vertical (block)
// dimension.
type axis uint8

const (
	horizontal axis = iota
	vertical
)

func (a axis) other() axis {
	return 1 - a
}

func (s Size) get(a axis) float32 {
	if a == horizontal {
		return s.Width
	}
	return s.Height
}

func (k KnownSize) get(a axis) Option {
	if a == horizontal {
		return k.Width
	}
	return k.Height
}

func (k *KnownSize) set(a axis, o Option) {
	if a == horizontal {
		k.Width = o
	} else {
		k.Height = o
	}
}

func (s AvailableSize) get(a axis) AvailableSpace {
	if a == horizontal {
		return s.Width
	}
	return s.Height
}

func (s *AvailableSize) set(a axis, v AvailableSpace) {
	if a == horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
}
