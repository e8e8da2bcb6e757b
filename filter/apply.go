// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"
	"image/draw"
	"math"
)

// Apply evaluates the filter on the CPU. src is the graphic being distorted;
// dmap is the displacement map (usually f.Map.Rasterize()). Both are read in
// their own bounds, anchored at their top-left corners. The result has the
// bounds of src translated to the origin.
//
// Each pass follows the SVG displacement formula
//
//	P'(x,y) = P(x + scale*(R(x,y) - 0.5), y + scale*(G(x,y) - 0.5))
//
// with nearest-pixel sampling; samples outside src are transparent.
func (f *Filter) Apply(src, dmap image.Image) *image.RGBA {
	in := toRGBA(src)
	dm := toRGBA(dmap)
	w, h := in.Rect.Dx(), in.Rect.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := 0.0, 0.0
			if x < dm.Rect.Dx() && y < dm.Rect.Dy() {
				mi := y*dm.Stride + x*4
				dx = float64(dm.Pix[mi+0])/255 - 0.5
				dy = float64(dm.Pix[mi+1])/255 - 0.5
			}

			var acc [4]float32
			for i, p := range f.Passes {
				sx := x + int(math.Round(p.Scale*dx))
				sy := y + int(math.Round(p.Scale*dy))
				px := sample(in, sx, sy)
				r, g, b, a := p.Matrix.TransformPremultiplied(px[0], px[1], px[2], px[3])
				layer := [4]float32{r, g, b, a}
				if i == 0 {
					acc = layer
					continue
				}
				acc = f.Blend.blend(layer, acc)
			}

			oi := y*out.Stride + x*4
			for c := range 4 {
				out.Pix[oi+c] = uint8(acc[c]*255 + 0.5)
			}
		}
	}
	return out
}

// sample returns the premultiplied unit color at (x, y), transparent outside.
func sample(img *image.RGBA, x, y int) [4]float32 {
	if x < 0 || y < 0 || x >= img.Rect.Dx() || y >= img.Rect.Dy() {
		return [4]float32{}
	}
	i := y*img.Stride + x*4
	return [4]float32{
		float32(img.Pix[i+0]) / 255,
		float32(img.Pix[i+1]) / 255,
		float32(img.Pix[i+2]) / 255,
		float32(img.Pix[i+3]) / 255,
	}
}

// toRGBA returns img as an origin-anchored *image.RGBA, converting if needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}
