// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glass"
)

type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

type mockProvider struct {
	device  gpucontext.Device
	queue   gpucontext.Queue
	adapter gpucontext.Adapter
	format  gputypes.TextureFormat
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		device:  &mockDevice{},
		queue:   &mockQueue{},
		adapter: &mockAdapter{},
		format:  gputypes.TextureFormatBGRA8Unorm,
	}
}

func (m *mockProvider) Device() gpucontext.Device             { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue               { return m.queue }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return m.adapter }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

func TestCheck_Unavailable(t *testing.T) {
	noDevice := newMockProvider()
	noDevice.device = nil
	noQueue := newMockProvider()
	noQueue.queue = nil
	badFormat := newMockProvider()
	badFormat.format = gputypes.TextureFormatR8Unorm

	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		want     error
	}{
		{"nil provider", nil, ErrNilProvider},
		{"no device", noDevice, ErrNoDevice},
		{"no queue", noQueue, ErrNoDevice},
		{"format", badFormat, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Check(tt.provider); !errors.Is(err, tt.want) {
				t.Errorf("Check() = %v, want %v", err, tt.want)
			}

			ok, err := Probe(tt.provider)()
			if ok || err != nil {
				t.Errorf("Probe() = %v, %v; want false, nil", ok, err)
			}
			if glass.NewGate(Probe(tt.provider)).Supported() {
				t.Error("gate reports supported")
			}
		})
	}
}

func TestSupportsFormat(t *testing.T) {
	for _, f := range []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm} {
		if !SupportsFormat(f) {
			t.Errorf("SupportsFormat(%v) = false", f)
		}
	}
	if SupportsFormat(gputypes.TextureFormatR8Unorm) {
		t.Error("single-channel format reported supported")
	}
}

func TestProbe_MatchesCompile(t *testing.T) {
	// Compiler support varies between naga releases; the probe must agree
	// with CompileShader either way.
	_, compileErr := CompileShader()
	ok, err := Probe(newMockProvider())()
	if compileErr == nil {
		if !ok || err != nil {
			t.Errorf("Probe() = %v, %v; want true, nil", ok, err)
		}
		return
	}
	if ok || err == nil {
		t.Errorf("Probe() = %v, %v; want false with error", ok, err)
	}
}

func TestShaderEmbedded(t *testing.T) {
	for _, want := range []string{"@compute", "fn main", "texture_storage_2d"} {
		if !strings.Contains(displaceShaderWGSL, want) {
			t.Errorf("shader missing %q", want)
		}
	}
}
