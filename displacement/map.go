// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package displacement

import (
	"bytes"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// edgeFactor scales depth/extent into the gradient inset, in percent.
const edgeFactor = 15

// maxInset bounds the inset so extreme depths still yield finite stops.
const maxInset = 1e6

// GroupBlur is the blur, in pixels, applied to the combined gradients and
// mask so the transition into the flat interior stays smooth.
const GroupBlur = 2.0

// Spec describes the surface a map is built for.
type Spec struct {
	// ID prefixes every element id in the generated document. Use the
	// owning instance's stable identifier.
	ID string

	Width  int
	Height int

	// Radius is the corner radius of the flat interior.
	Radius float64

	// Depth is the thickness of the displacement band along the border.
	Depth float64
}

// Inset is a gradient start/stop pair in percent of the axis extent.
type Inset struct {
	Lead  float64
	Trail float64
}

// Insets returns the gradient inset for one axis: the ramp starts at
// ceil(depth/extent*15)% and ends at floor(100 - depth/extent*15)%.
// A non-positive extent yields the full 0..100 range.
func Insets(depth float64, extent int) Inset {
	if extent <= 0 {
		return Inset{Lead: 0, Trail: 100}
	}
	// Multiply first so whole-percent results stay exact.
	f := depth * edgeFactor / float64(extent)
	if math.IsNaN(f) {
		f = 0
	}
	f = min(max(f, -maxInset), maxInset)
	return Inset{
		Lead:  math.Ceil(f),
		Trail: math.Floor(100 - f),
	}
}

// Map is a generated displacement map.
type Map struct {
	Spec

	// X is the horizontal gradient inset, Y the vertical one.
	X Inset
	Y Inset

	svg []byte
}

// Build synthesizes the map for s.
func Build(s Spec) *Map {
	m := &Map{
		Spec: s,
		X:    Insets(s.Depth, s.Width),
		Y:    Insets(s.Depth, s.Height),
	}
	m.svg = m.encode()
	return m
}

// ElementID returns the document id of a named element, prefixed with the
// map's ID so documents from different instances never collide.
func (m *Map) ElementID(name string) string {
	if m.ID == "" {
		return name
	}
	return m.ID + "-" + name
}

// SVG returns the SVG document. The returned slice must not be modified.
func (m *Map) SVG() []byte {
	return m.svg
}

// DataURI returns the document as a percent-escaped data URI.
func (m *Map) DataURI() string {
	return "data:image/svg+xml," + url.PathEscape(string(m.svg))
}

func (m *Map) encode() []byte {
	w, h := m.Width, m.Height
	inner := func(extent int) float64 { return math.Max(0, float64(extent)-2*m.Depth) }

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h)
	b.WriteString(`<defs>`)
	fmt.Fprintf(&b, `<linearGradient id="%s" x1="0" x2="0" y1="%s%%" y2="%s%%">`,
		m.ElementID("y"), num(m.Y.Lead), num(m.Y.Trail))
	b.WriteString(`<stop offset="0%" stop-color="#0F0"/><stop offset="100%" stop-color="#000"/>`)
	b.WriteString(`</linearGradient>`)
	fmt.Fprintf(&b, `<linearGradient id="%s" x1="%s%%" x2="%s%%" y1="0" y2="0">`,
		m.ElementID("x"), num(m.X.Lead), num(m.X.Trail))
	b.WriteString(`<stop offset="0%" stop-color="#F00"/><stop offset="100%" stop-color="#000"/>`)
	b.WriteString(`</linearGradient>`)
	b.WriteString(`</defs>`)

	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#808080"/>`, w, h)
	fmt.Fprintf(&b, `<g filter="blur(%spx)">`, num(GroupBlur))
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#000080"/>`, w, h)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="url(#%s)" style="mix-blend-mode:screen"/>`,
		w, h, m.ElementID("y"))
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="url(#%s)" style="mix-blend-mode:screen"/>`,
		w, h, m.ElementID("x"))
	fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="#808080" filter="blur(%spx)"/>`,
		num(m.Depth), num(m.Depth), num(inner(w)), num(inner(h)),
		num(m.Radius), num(m.Radius), num(m.Depth))
	b.WriteString(`</g></svg>`)
	return b.Bytes()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
