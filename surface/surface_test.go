// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestVariants(t *testing.T) {
	opts := Options{Width: 120.5, Height: 40}
	tests := []struct {
		s        Surface
		kind     string
		keepsRef bool
	}{
		{NewLink(opts), KindLink, true},
		{NewContainer(opts), KindContainer, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if tt.s.Kind() != tt.kind {
				t.Errorf("Kind() = %q, want %q", tt.s.Kind(), tt.kind)
			}
			if w, h := tt.s.Measure(); w != 120.5 || h != 40 {
				t.Errorf("Measure() = %v, %v", w, h)
			}
			tt.s.SetLink("/docs")
			if got := tt.s.Link() == "/docs"; got != tt.keepsRef {
				t.Errorf("Link() = %q", tt.s.Link())
			}

			tt.s.MountContent(Node{Name: "label", Text: "Open"})
			tt.s.MountContent(Node{Name: "icon"})
			content := tt.s.Content()
			if len(content) != 2 || content[0].Text != "Open" {
				t.Errorf("Content() = %v", content)
			}
			content[0].Text = "mutated"
			if tt.s.Content()[0].Text != "Open" {
				t.Error("Content() returned an alias")
			}

			tt.s.Clear()
			if len(tt.s.Content()) != 0 {
				t.Error("Clear() left content")
			}
		})
	}
}

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry()
	if got := r.Kinds(); !slices.Equal(got, []string{KindContainer, KindLink}) {
		t.Errorf("Kinds() = %v", got)
	}
	s, err := r.New(KindLink, Options{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("New(link) error = %v", err)
	}
	if _, ok := s.(*Link); !ok {
		t.Errorf("New(link) = %T, want *Link", s)
	}
}

func TestRegistry_Errors(t *testing.T) {
	r := NewRegistry()

	_, err := r.New("button", Options{})
	var nf *KindNotFoundError
	if !errors.As(err, &nf) || nf.Kind != "button" {
		t.Errorf("New(button) error = %v, want KindNotFoundError", err)
	}

	for _, opts := range []Options{{Width: -1}, {Height: math.NaN()}, {Width: math.Inf(1)}} {
		if _, err := r.New(KindContainer, opts); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%+v) error = %v, want ErrInvalidSize", opts, err)
		}
	}

	r.Register("broken", func(Options) (Surface, error) { return nil, nil })
	if _, err := r.New("broken", Options{}); !errors.Is(err, ErrNilSurface) {
		t.Errorf("New(broken) error = %v, want ErrNilSurface", err)
	}

	boom := errors.New("boom")
	r.Register("failing", func(Options) (Surface, error) { return nil, boom })
	if _, err := r.New("failing", Options{}); !errors.Is(err, boom) {
		t.Errorf("New(failing) error = %v, want factory error", err)
	}
}

func TestRegistry_RegisterUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("card", func(opts Options) (Surface, error) { return NewContainer(opts), nil })
	if !slices.Contains(r.Kinds(), "card") {
		t.Fatal("card not registered")
	}
	r.Unregister("card")
	if slices.Contains(r.Kinds(), "card") {
		t.Error("card still registered")
	}
	r.Register(KindLink, nil)
	if slices.Contains(r.Kinds(), KindLink) {
		t.Error("nil factory did not unregister")
	}
}

func TestGlobalRegistry(t *testing.T) {
	Register("test-global", func(opts Options) (Surface, error) { return NewContainer(opts), nil })
	t.Cleanup(func() { Unregister("test-global") })

	if !slices.Contains(Kinds(), "test-global") {
		t.Error("Kinds() missing test-global")
	}
	if _, err := New("test-global", Options{Width: 1, Height: 1}); err != nil {
		t.Errorf("New() error = %v", err)
	}
}
