// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package gpu provides the capability probe for gogpu devices.
//
// The probe reports whether a device can run the chromatic displacement
// filter: the provider must expose a device and queue, present a color
// format the filter can write, and the displacement shader must compile.
//
// Usage:
//
//	glass.RegisterProbe(gpu.Probe(provider))
//
// Register before the first Effect runs. If any check fails, glass falls
// back to blur only.
package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/glass"
)

//go:embed shaders/displace.wgsl
var displaceShaderWGSL string

var (
	// ErrNilProvider is returned when the probe has no provider.
	ErrNilProvider = errors.New("gpu: nil device provider")

	// ErrNoDevice is returned when the provider exposes no device or queue.
	ErrNoDevice = errors.New("gpu: provider has no device")

	// ErrUnsupportedFormat is returned for surface formats the filter
	// cannot write.
	ErrUnsupportedFormat = errors.New("gpu: unsupported surface format")

	// ErrInvalidSPIRV is returned when compiled shader output is not a
	// whole number of SPIR-V words.
	ErrInvalidSPIRV = errors.New("gpu: invalid SPIR-V output")
)

// SupportsFormat reports whether the filter output can be presented in f.
func SupportsFormat(f gputypes.TextureFormat) bool {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return true
	}
	return false
}

// Check runs the capability checks against provider. A nil error means the
// filter is supported.
func Check(provider gpucontext.DeviceProvider) error {
	if provider == nil {
		return ErrNilProvider
	}
	if provider.Device() == nil || provider.Queue() == nil {
		return ErrNoDevice
	}
	if f := provider.SurfaceFormat(); !SupportsFormat(f) {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if _, err := CompileShader(); err != nil {
		return err
	}
	return nil
}

// CompileShader compiles the displacement shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(displaceShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile displacement shader: %w", err)
	}
	if len(spirvBytes) == 0 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(spirvBytes))
	}

	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// Probe returns a glass.Probe backed by provider. Failed checks other than
// an unsupported environment are reported as errors, which the gate logs
// and treats as unsupported.
func Probe(provider gpucontext.DeviceProvider) glass.Probe {
	return func() (bool, error) {
		err := Check(provider)
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, ErrNilProvider), errors.Is(err, ErrNoDevice), errors.Is(err, ErrUnsupportedFormat):
			glass.Logger().Debug("gpu: glass filter unavailable", "reason", err)
			return false, nil
		default:
			return false, err
		}
	}
}
