// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package displacement

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"github.com/gogpu/glass/internal/blur"
)

// neutral is #80 as a unit value: the "no displacement" level.
const neutral = 128.0 / 255

// kappa places cubic control points for a quarter-circle arc.
const kappa = 0.5522847498

// Neutral is the color of pixels that receive no displacement.
var Neutral = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Rasterize renders the map on the CPU. It evaluates the same composition as
// the SVG document: gradients combined with screen, the blurred interior mask
// drawn over them, the group blurred and laid over a neutral background.
func (m *Map) Rasterize() *image.RGBA {
	w, h := m.Width, m.Height
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 {
		return dst
	}

	mask := m.interiorMask()
	blur.Gaussian(mask, max(m.Depth, 0))

	// Premultiplied group planes. The group is opaque before blurring.
	r, g, b, a := blur.NewPlane(w, h), blur.NewPlane(w, h), blur.NewPlane(w, h), blur.NewPlane(w, h)
	for y := 0; y < h; y++ {
		gy := ramp(y, h, m.Y)
		for x := 0; x < w; x++ {
			i := y*w + x
			rx := ramp(x, w, m.X)
			cov := clamp01(mask.Pix[i])
			// Base #000080 screened with the red and green ramps yields
			// (rx, gy, neutral); the gray mask is then composited over it.
			r.Pix[i] = rx*(1-cov) + neutral*cov
			g.Pix[i] = gy*(1-cov) + neutral*cov
			b.Pix[i] = neutral
			a.Pix[i] = 1
		}
	}
	blur.GaussianAll(GroupBlur, r, g, b, a)

	for i := 0; i < w*h; i++ {
		bg := neutral * (1 - clamp01(a.Pix[i]))
		dst.Pix[i*4+0] = unit8(r.Pix[i] + bg)
		dst.Pix[i*4+1] = unit8(g.Pix[i] + bg)
		dst.Pix[i*4+2] = unit8(b.Pix[i] + bg)
		dst.Pix[i*4+3] = 255
	}
	return dst
}

// interiorMask rasterizes the rounded rectangle inset by Depth into a
// coverage plane.
func (m *Map) interiorMask() blur.Plane {
	w, h := m.Width, m.Height
	plane := blur.NewPlane(w, h)

	d := max(m.Depth, 0)
	x0, y0 := float32(d), float32(d)
	x1, y1 := float32(float64(w)-d), float32(float64(h)-d)
	if x1 <= x0 || y1 <= y0 {
		return plane
	}
	rad := float32(max(m.Radius, 0))
	rad = min(rad, (x1-x0)/2, (y1-y0)/2)
	k := rad * kappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(x0+rad, y0)
	z.LineTo(x1-rad, y0)
	z.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	z.LineTo(x1, y1-rad)
	z.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	z.LineTo(x0+rad, y1)
	z.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	z.LineTo(x0, y0+rad)
	z.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	z.ClosePath()

	cov := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

	for i, v := range cov.Pix {
		plane.Pix[i] = float32(v) / 255
	}
	return plane
}

// ramp evaluates a two-stop gradient (full channel at Lead, zero at Trail)
// at the center of pixel p along an axis of the given extent. Values before
// Lead and after Trail are padded.
func ramp(p, extent int, in Inset) float32 {
	span := in.Trail - in.Lead
	if span == 0 {
		// Degenerate gradient: painted with the last stop.
		return 0
	}
	pct := (float64(p) + 0.5) / float64(extent) * 100
	t := (pct - in.Lead) / span
	return float32(1 - min(max(t, 0), 1))
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

func unit8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
