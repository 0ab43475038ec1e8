// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Element sizes given in dp are converted
to pixels with the Metric of the layout.Context before they reach the
constraints.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Pixels are the unit of layout.Constraints and of every box produced by
layout.
*/
package unit

import (
	"math"
)

// Metric converts device independent values to pixels.
// The zero value converts at one pixel per dp and sp.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
	// PxPerSp is the device pixels per sp.
	PxPerSp float32
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float32
	// Sp is like Dp but for font sizes.
	Sp float32
)

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

// Sp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Sp(v Sp) int {
	return int(math.Round(float64(nonZero(c.PxPerSp)) * float64(v)))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
