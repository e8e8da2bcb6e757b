// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package filter assembles a displacement map into a chromatic-aberration
// displacement filter.
//
// The filter samples the map, displaces its source three times with
// increasing scale, keeps one color channel of each result and screens the
// three channels back together. Where the map is neutral the three copies
// coincide and the image is unchanged; near the edges the channels drift
// apart, imitating lens dispersion.
//
// The same graph is available as an SVG filter document (Filter.SVG,
// Filter.Reference) and as a CPU evaluation (Filter.Apply).
package filter

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gogpu/glass/displacement"
)

// Pass is one displacement step followed by channel isolation.
type Pass struct {
	Scale   float64
	Channel Channel
	Matrix  ColorMatrix
	Result  string
}

// Filter is an assembled displacement filter.
type Filter struct {
	// ID is the fragment identifier of the filter element.
	ID string

	Width  int
	Height int

	// Map is the displacement source.
	Map *displacement.Map

	// Passes are ordered red, green, blue.
	Passes [3]Pass

	Blend BlendMode

	svg []byte
}

// Assemble builds the filter for map m. The red pass is displaced by
// strength+2*chromaticAberration, green by strength+chromaticAberration and
// blue by strength.
//
// ok is false when both strength and chromaticAberration are non-positive:
// there is nothing to displace and the caller should present no filter.
func Assemble(id string, m *displacement.Map, strength, chromaticAberration float64) (f *Filter, ok bool) {
	if m == nil || (strength <= 0 && chromaticAberration <= 0) {
		return nil, false
	}
	f = &Filter{
		ID:     id,
		Width:  m.Width,
		Height: m.Height,
		Map:    m,
		Blend:  Screen,
	}
	scales := [3]float64{
		strength + 2*chromaticAberration,
		strength + chromaticAberration,
		strength,
	}
	for i, ch := range [3]Channel{Red, Green, Blue} {
		f.Passes[i] = Pass{
			Scale:   scales[i],
			Channel: ch,
			Matrix:  IsolateChannel(ch),
			Result:  f.elementID("displaced-" + ch.String()),
		}
	}
	f.svg = f.encode()
	return f, true
}

func (f *Filter) elementID(name string) string {
	if f.ID == "" {
		return name
	}
	return f.ID + "-" + name
}

// SVG returns the filter document. The returned slice must not be modified.
func (f *Filter) SVG() []byte {
	return f.svg
}

// Reference returns a CSS url() that points at the filter element inside a
// self-contained data URI.
func (f *Filter) Reference() string {
	return `url("data:image/svg+xml,` + url.PathEscape(string(f.svg)) + "#" + f.ID + `")`
}

func (f *Filter) encode() []byte {
	mapResult := f.elementID("map")

	var b bytes.Buffer
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg">`)
	fmt.Fprintf(&b, `<filter id="%s" x="0" y="0" width="%d" height="%d" filterUnits="userSpaceOnUse" color-interpolation-filters="sRGB">`,
		f.ID, f.Width, f.Height)
	fmt.Fprintf(&b, `<feImage x="0" y="0" width="%d" height="%d" href="%s" result="%s"/>`,
		f.Width, f.Height, f.Map.DataURI(), mapResult)
	for _, p := range f.Passes {
		fmt.Fprintf(&b, `<feDisplacementMap in="SourceGraphic" in2="%s" scale="%s" xChannelSelector="R" yChannelSelector="G"/>`,
			mapResult, strconv.FormatFloat(p.Scale, 'f', -1, 64))
		fmt.Fprintf(&b, `<feColorMatrix type="matrix" values="%s" result="%s"/>`,
			p.Matrix.Values(), p.Result)
	}
	fmt.Fprintf(&b, `<feBlend in="%s" in2="%s" mode="%s" result="%s"/>`,
		f.Passes[0].Result, f.Passes[1].Result, f.Blend, f.elementID("rg"))
	fmt.Fprintf(&b, `<feBlend in="%s" in2="%s" mode="%s"/>`,
		f.elementID("rg"), f.Passes[2].Result, f.Blend)
	b.WriteString(`</filter></svg>`)
	return b.Bytes()
}
