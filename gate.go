// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"fmt"
	"sync"
)

// Probe reports whether the rendering environment can apply a displacement
// filter referenced from a backdrop style property.
// An error is treated the same as an unsupported environment.
type Probe func() (bool, error)

// SoftwareProbe reports the CPU filter path in package filter, which is
// always available.
func SoftwareProbe() (bool, error) { return true, nil }

// Gate memoizes a Probe. The probe runs at most once, on the first call to
// Supported; the result never changes afterwards.
type Gate struct {
	once   sync.Once
	probe  Probe
	result bool
}

// NewGate returns a gate backed by probe. A nil probe reports false.
func NewGate(probe Probe) *Gate {
	return &Gate{probe: probe}
}

// Supported reports the memoized probe result.
// Probe errors and panics resolve to false; they are logged, never returned.
func (g *Gate) Supported() bool {
	g.once.Do(func() {
		g.result = runProbe(g.probe)
	})
	return g.result
}

func runProbe(p Probe) (ok bool) {
	if p == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("glass: capability probe panicked", "panic", fmt.Sprint(r))
			ok = false
		}
	}()
	supported, err := p()
	if err != nil {
		Logger().Warn("glass: capability probe failed", "err", err)
		return false
	}
	return supported
}

var (
	gateMu      sync.Mutex
	defaultProb Probe = SoftwareProbe
	defaultGate *Gate
)

// RegisterProbe installs the probe used by DefaultGate. It only has an effect
// when called before the first DefaultGate call, typically from an init
// function of a backend package:
//
//	func init() {
//	    glass.RegisterProbe(gpu.Probe(provider))
//	}
func RegisterProbe(p Probe) {
	gateMu.Lock()
	defer gateMu.Unlock()
	if defaultGate != nil {
		Logger().Warn("glass: RegisterProbe after first capability check is ignored")
		return
	}
	defaultProb = p
}

// DefaultGate returns the process-wide gate shared by every Effect that was
// not given its own gate via WithGate.
func DefaultGate() *Gate {
	gateMu.Lock()
	defer gateMu.Unlock()
	if defaultGate == nil {
		defaultGate = NewGate(defaultProb)
	}
	return defaultGate
}
