// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Attribute names read by ResolveParameters.
const (
	AttrStrength            = "strength"
	AttrDepth               = "depth"
	AttrBlur                = "blur"
	AttrChromaticAberration = "chromaticAberration"
)

// Default effect parameters.
const (
	DefaultDepth               = 10.0
	DefaultStrength            = 100.0
	DefaultChromaticAberration = 0.0
	DefaultBlur                = 2.0

	// CornerRadius is the fixed radius of the displacement mask.
	// It is not configurable through attributes.
	CornerRadius = 16.0
)

// Attributes gives read access to the surface's current attribute values.
type Attributes interface {
	Lookup(name string) (value string, ok bool)
}

// MapAttributes is a map-backed Attributes. Lookups are case-insensitive,
// matching HTML attribute semantics ("chromaticaberration" finds
// "chromaticAberration").
type MapAttributes map[string]string

// Lookup implements Attributes.
func (m MapAttributes) Lookup(name string) (string, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	fold := cases.Fold()
	want := fold.String(name)
	for k, v := range m {
		if fold.String(k) == want {
			return v, true
		}
	}
	return "", false
}

// Parameters are the resolved inputs of one update cycle.
type Parameters struct {
	Width               int
	Height              int
	CornerRadius        float64
	Depth               float64
	Strength            float64
	ChromaticAberration float64
	Blur                float64
}

// ResolveParameters combines a sampled size with the surface attributes.
// Missing or malformed values fall back to their defaults; it never fails.
// A nil attrs resolves every value to its default.
func ResolveParameters(size Size, attrs Attributes) Parameters {
	return Parameters{
		Width:               size.Width,
		Height:              size.Height,
		CornerRadius:        CornerRadius,
		Depth:               number(attrs, AttrDepth, DefaultDepth),
		Strength:            number(attrs, AttrStrength, DefaultStrength),
		ChromaticAberration: number(attrs, AttrChromaticAberration, DefaultChromaticAberration),
		Blur:                number(attrs, AttrBlur, DefaultBlur),
	}
}

func number(attrs Attributes, name string, def float64) float64 {
	if attrs == nil {
		return def
	}
	raw, ok := attrs.Lookup(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		Logger().Debug("glass: malformed attribute, using default",
			"name", name, "value", raw, "default", def)
		return def
	}
	return v
}
