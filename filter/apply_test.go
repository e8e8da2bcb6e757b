// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/glass/displacement"
)

// stripes returns an opaque image whose channels vary along x.
func stripes(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(255 - x*4), B: uint8(x * 2), A: 255})
		}
	}
	return img
}

func uniformMap(w, h int, r, g uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: 128, A: 255})
		}
	}
	return img
}

func TestApply_NeutralMapIsIdentity(t *testing.T) {
	m := displacement.Build(displacement.Spec{ID: "g", Width: 40, Height: 20, Radius: 16, Depth: 10})
	f, _ := Assemble("g", m, 100, 10)

	src := stripes(40, 20)
	out := f.Apply(src, uniformMap(40, 20, 128, 128))

	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if got, want := out.RGBAAt(x, y), src.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestApply_ChromaticSeparation(t *testing.T) {
	m := displacement.Build(displacement.Spec{ID: "g", Width: 60, Height: 10, Radius: 16, Depth: 10})
	// Full positive horizontal shift: dx = 0.5.
	f, _ := Assemble("g", m, 10, 4)

	src := stripes(60, 10)
	out := f.Apply(src, uniformMap(60, 10, 255, 128))

	const x, y = 10, 5
	got := out.RGBAAt(x, y)
	// red scale 18 -> +9, green 14 -> +7, blue 10 -> +5
	if want := src.RGBAAt(x+9, y).R; got.R != want {
		t.Errorf("red = %d, want %d (shifted by 9)", got.R, want)
	}
	if want := src.RGBAAt(x+7, y).G; got.G != want {
		t.Errorf("green = %d, want %d (shifted by 7)", got.G, want)
	}
	if want := src.RGBAAt(x+5, y).B; got.B != want {
		t.Errorf("blue = %d, want %d (shifted by 5)", got.B, want)
	}
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
}

func TestApply_OutsideIsTransparent(t *testing.T) {
	m := displacement.Build(displacement.Spec{ID: "g", Width: 20, Height: 4, Radius: 16, Depth: 10})
	f, _ := Assemble("g", m, 40, 0)

	out := f.Apply(stripes(20, 4), uniformMap(20, 4, 255, 128))
	// Every pass reaches 20 pixels to the right, past the edge.
	if got := out.RGBAAt(19, 1); got.A != 0 {
		t.Errorf("pixel sampled outside source = %v, want transparent", got)
	}
}

func TestApply_OffsetBounds(t *testing.T) {
	m := displacement.Build(displacement.Spec{ID: "g", Width: 8, Height: 8, Radius: 16, Depth: 2})
	f, _ := Assemble("g", m, 10, 0)

	src := image.NewRGBA(image.Rect(5, 5, 13, 13))
	for y := 5; y < 13; y++ {
		for x := 5; x < 13; x++ {
			src.SetRGBA(x, y, color.RGBA{200, 200, 200, 255})
		}
	}
	out := f.Apply(src, uniformMap(8, 8, 128, 128))
	if got := out.Bounds(); got != image.Rect(0, 0, 8, 8) {
		t.Fatalf("Bounds() = %v, want origin-anchored 8x8", got)
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("pixel (0,0) = %v, want {200 200 200 255}", got)
	}
}
