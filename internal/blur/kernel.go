// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blur

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel with standard
// deviation sigma. The kernel spans 2*ceil(3*sigma)+1 taps, which covers
// 99.7% of the distribution.
//
// For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache caches kernels by sigma quantized to 0.01.
// Depth values repeat across resizes, so the hit rate is high.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int][]float32
	maxLen  int
}

var defaultKernels = &kernelCache{kernels: make(map[int][]float32), maxLen: 64}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	k, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.kernels) >= c.maxLen {
		clear(c.kernels)
	}
	c.kernels[key] = k
	c.mu.Unlock()
	return k
}

// CachedKernel returns a shared Gaussian kernel for sigma.
// The returned slice must not be modified.
func CachedKernel(sigma float64) []float32 {
	return defaultKernels.get(sigma)
}
