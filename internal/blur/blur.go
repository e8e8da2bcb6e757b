// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blur implements a separable Gaussian blur over float planes.
//
// Samples outside the plane are transparent (zero), which matches the
// behavior of a blur filter applied to a bounded graphic: edges fade out
// instead of being extended.
package blur

import "sync"

// Plane is a single-channel image, row-major, Width*Height values.
type Plane struct {
	Width  int
	Height int
	Pix    []float32
}

// NewPlane allocates a zeroed plane.
func NewPlane(width, height int) Plane {
	return Plane{Width: width, Height: height, Pix: make([]float32, width*height)}
}

// Fill sets every sample to v.
func (p Plane) Fill(v float32) {
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// At returns the sample at (x, y), or 0 outside the plane.
func (p Plane) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0
	}
	return p.Pix[y*p.Width+x]
}

// Gaussian blurs p in place with standard deviation sigma.
// A non-positive sigma leaves p unchanged. Sigma is capped at the larger
// plane dimension; wider kernels only reach samples outside the plane.
func Gaussian(p Plane, sigma float64) {
	if !(sigma > 0) || p.Width == 0 || p.Height == 0 {
		return
	}
	sigma = min(sigma, MaxSigma(p))
	kernel := CachedKernel(sigma)

	temp := getTemp(len(p.Pix))
	defer putTemp(temp)

	horizontal(p, temp.data, kernel)
	vertical(temp.data, p, kernel)
}

// MaxSigma returns the largest sigma Gaussian uses for p.
func MaxSigma(p Plane) float64 {
	return float64(max(p.Width, p.Height))
}

// GaussianAll blurs every plane with the same sigma.
func GaussianAll(sigma float64, planes ...Plane) {
	for _, p := range planes {
		Gaussian(p, sigma)
	}
}

// horizontal convolves each row of src into dst.
func horizontal(src Plane, dst []float32, kernel []float32) {
	half := len(kernel) / 2
	w := src.Width
	for y := 0; y < src.Height; y++ {
		row := src.Pix[y*w : (y+1)*w]
		out := dst[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				sx := x + k - half
				if sx < 0 || sx >= w {
					continue
				}
				sum += row[sx] * weight
			}
			out[x] = sum
		}
	}
}

// vertical convolves each column of src into dst.
func vertical(src []float32, dst Plane, kernel []float32) {
	half := len(kernel) / 2
	w, h := dst.Width, dst.Height
	for y := 0; y < h; y++ {
		out := dst.Pix[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				sy := y + k - half
				if sy < 0 || sy >= h {
					continue
				}
				sum += src[sy*w+x] * weight
			}
			out[x] = sum
		}
	}
}

type floatBuffer struct {
	data []float32
}

var tempPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 256*256)}
	},
}

func getTemp(n int) *floatBuffer {
	b := tempPool.Get().(*floatBuffer)
	if cap(b.data) < n {
		b.data = make([]float32, n)
	}
	b.data = b.data[:n]
	return b
}

func putTemp(b *floatBuffer) {
	// 4096x4096 is the largest buffer worth keeping around.
	if cap(b.data) <= 4096*4096 {
		tempPool.Put(b)
	}
}
