// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"strconv"
	"strings"
)

// CacheKey identifies the parameters that require the displacement filter
// to be regenerated. Blur is deliberately absent: it is published on its own
// and never invalidates the filter.
//
// CacheKey is comparable; two keys are equal exactly when all five fields are.
type CacheKey struct {
	Width               int
	Height              int
	Depth               float64
	Strength            float64
	ChromaticAberration float64
}

// KeyOf extracts the cache key from resolved parameters.
func KeyOf(p Parameters) CacheKey {
	return CacheKey{
		Width:               p.Width,
		Height:              p.Height,
		Depth:               canonZero(p.Depth),
		Strength:            canonZero(p.Strength),
		ChromaticAberration: canonZero(p.ChromaticAberration),
	}
}

// canonZero folds -0 into +0 so that == and String agree.
func canonZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// String returns the canonical text form, e.g. "200x100/d10/s100/c0".
// Floats use the shortest representation that round-trips, so distinct keys
// never share a string.
func (k CacheKey) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(k.Width))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(k.Height))
	b.WriteString("/d")
	b.WriteString(strconv.FormatFloat(k.Depth, 'g', -1, 64))
	b.WriteString("/s")
	b.WriteString(strconv.FormatFloat(k.Strength, 'g', -1, 64))
	b.WriteString("/c")
	b.WriteString(strconv.FormatFloat(k.ChromaticAberration, 'g', -1, 64))
	return b.String()
}

// changeDetector remembers the key of the last regeneration.
type changeDetector struct {
	last  CacheKey
	valid bool
}

// changed reports whether key requires regeneration. force always does.
func (d *changeDetector) changed(key CacheKey, force bool) bool {
	return force || !d.valid || d.last != key
}

func (d *changeDetector) remember(key CacheKey) {
	d.last = key
	d.valid = true
}

func (d *changeDetector) reset() {
	*d = changeDetector{}
}
