// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blur

import (
	"math"
	"testing"
)

func TestGaussianKernel_Normalized(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 2, 10} {
		k := GaussianKernel(sigma)
		if len(k)%2 != 1 {
			t.Errorf("GaussianKernel(%v) has even length %d", sigma, len(k))
		}
		var sum float64
		for _, v := range k {
			sum += float64(v)
		}
		if math.Abs(sum-1) > 1e-4 {
			t.Errorf("GaussianKernel(%v) sums to %v, want 1", sigma, sum)
		}
		mid := len(k) / 2
		for i := 0; i < mid; i++ {
			if k[i] != k[len(k)-1-i] {
				t.Errorf("GaussianKernel(%v) not symmetric at %d", sigma, i)
				break
			}
		}
	}
}

func TestGaussianKernel_Identity(t *testing.T) {
	k := GaussianKernel(0)
	if len(k) != 1 || k[0] != 1 {
		t.Errorf("GaussianKernel(0) = %v, want [1]", k)
	}
}

func TestCachedKernel_Shared(t *testing.T) {
	a := CachedKernel(3)
	b := CachedKernel(3)
	if &a[0] != &b[0] {
		t.Error("CachedKernel(3) returned different slices for the same sigma")
	}
}

func TestGaussian_InteriorPreserved(t *testing.T) {
	p := NewPlane(64, 64)
	p.Fill(1)
	Gaussian(p, 2)

	if got := p.At(32, 32); math.Abs(float64(got)-1) > 1e-4 {
		t.Errorf("interior = %v, want 1", got)
	}
	// Transparent padding pulls edges down.
	if got := p.At(0, 32); got > 0.7 || got < 0.4 {
		t.Errorf("edge = %v, want about 0.5", got)
	}
	if got := p.At(0, 0); got >= p.At(0, 32) {
		t.Errorf("corner %v should be darker than edge %v", got, p.At(0, 32))
	}
}

func TestGaussian_ZeroSigmaNoop(t *testing.T) {
	p := NewPlane(4, 4)
	p.Pix[5] = 1
	Gaussian(p, 0)
	if p.Pix[5] != 1 || p.Pix[6] != 0 {
		t.Errorf("Gaussian(0) modified the plane: %v", p.Pix)
	}
}

func TestGaussian_Spreads(t *testing.T) {
	p := NewPlane(21, 21)
	p.Pix[10*21+10] = 1
	Gaussian(p, 1.5)

	center := p.At(10, 10)
	if center >= 1 || center <= 0 {
		t.Fatalf("center = %v, want in (0, 1)", center)
	}
	if p.At(11, 10) <= 0 || p.At(11, 10) >= center {
		t.Errorf("neighbor = %v, want in (0, center=%v)", p.At(11, 10), center)
	}
	if p.At(11, 10) != p.At(10, 11) {
		t.Errorf("blur not isotropic: %v vs %v", p.At(11, 10), p.At(10, 11))
	}
}

func TestGaussianHugeSigmaCapped(t *testing.T) {
	p := NewPlane(8, 4)
	p.Fill(1)
	// Uncapped, this sigma would need a kernel of billions of taps.
	Gaussian(p, 1e9)

	capped := NewPlane(8, 4)
	capped.Fill(1)
	Gaussian(capped, MaxSigma(capped))

	for i := range p.Pix {
		if p.Pix[i] != capped.Pix[i] {
			t.Fatalf("Pix[%d] = %v, want %v (same as sigma %v)", i, p.Pix[i], capped.Pix[i], MaxSigma(capped))
		}
	}
	if n := len(CachedKernel(MaxSigma(p))); n != 2*24+1 {
		t.Errorf("capped kernel has %d taps, want %d", n, 2*24+1)
	}
}
