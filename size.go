// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"fmt"
	"math"
)

// Measurer reports the current rendered box of the surface in CSS pixels.
// Values may be fractional; they are quantized by SampleSize.
type Measurer interface {
	Measure() (width, height float64)
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func() (width, height float64)

// Measure implements Measurer.
func (f MeasureFunc) Measure() (width, height float64) { return f() }

// Size is a rendered box quantized to whole pixels.
type Size struct {
	Width  int
	Height int
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// MaxExtent is the largest accepted box dimension in pixels.
const MaxExtent = math.MaxInt32

// SampleSize rounds a measured box to the nearest whole pixel.
// Sub-pixel jitter during layout therefore never changes the result.
//
// ok is false when either dimension rounds to zero (or is negative or NaN)
// or exceeds MaxExtent; callers must abort the cycle without touching any
// state.
func SampleSize(width, height float64) (s Size, ok bool) {
	w := math.Round(width)
	h := math.Round(height)
	if !(w > 0) || !(h > 0) || w > MaxExtent || h > MaxExtent {
		return Size{}, false
	}
	return Size{Width: int(w), Height: int(h)}, true
}
