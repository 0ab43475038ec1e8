// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle.

The coordinate space has the origin in the top left
corner with the axes extending right and down. The grid
algorithm positions boxes in this space; Round converts
the result to device pixels.
*/
package f32

import (
	"image"
	"math"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// FPt converts an integer point to a Point.
func FPt(p image.Point) Point {
	return Point{X: float32(p.X), Y: float32(p.Y)}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Round returns the integer point nearest to p. Halfway
// values round away from zero.
func (p Point) Round() image.Point {
	return image.Point{
		X: int(math.Round(float64(p.X))),
		Y: int(math.Round(float64(p.Y))),
	}
}

// In reports whether p is in r.
func (p Point) In(r Rectangle) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Round returns the integer rectangle nearest to r. The
// corners are rounded independently so that adjacent
// rectangles stay adjacent after rounding.
func (r Rectangle) Round() image.Rectangle {
	return image.Rectangle{Min: r.Min.Round(), Max: r.Max.Round()}
}
