// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"
)

func TestHost_StartsAsContainer(t *testing.T) {
	h, err := NewHostWithRegistry(NewRegistry(), Options{Width: 200, Height: 80})
	if err != nil {
		t.Fatalf("NewHost() error = %v", err)
	}
	if h.Kind() != KindContainer {
		t.Errorf("Kind() = %q, want %q", h.Kind(), KindContainer)
	}
	if w, ht := h.Measure(); w != 200 || ht != 80 {
		t.Errorf("Measure() = %v, %v", w, ht)
	}
}

func TestHost_SwapMovesContent(t *testing.T) {
	h, _ := NewHostWithRegistry(NewRegistry(), Options{Width: 200, Height: 80})
	h.Mount(Node{Name: "label", Text: "Docs"})
	before := h.Surface()

	swaps := 0
	h.Observe(func() { swaps++ })

	if err := h.SetHref("/docs"); err != nil {
		t.Fatalf("SetHref() error = %v", err)
	}
	if h.Kind() != KindLink || h.Surface().Link() != "/docs" {
		t.Fatalf("after href: kind %q link %q", h.Kind(), h.Surface().Link())
	}
	if c := h.Surface().Content(); len(c) != 1 || c[0].Text != "Docs" {
		t.Errorf("content not moved: %v", c)
	}
	if len(before.Content()) != 0 {
		t.Error("old variant still holds content")
	}
	if w, ht := h.Measure(); w != 200 || ht != 80 {
		t.Errorf("box not moved: %v, %v", w, ht)
	}

	// Changing the target keeps the variant.
	link := h.Surface()
	if err := h.SetHref("/blog"); err != nil {
		t.Fatal(err)
	}
	if h.Surface() != link || link.Link() != "/blog" {
		t.Error("href change on a link swapped the variant")
	}

	if err := h.SetHref(""); err != nil {
		t.Fatal(err)
	}
	if h.Kind() != KindContainer {
		t.Errorf("Kind() = %q after clearing href", h.Kind())
	}
	if c := h.Surface().Content(); len(c) != 1 {
		t.Errorf("content lost on swap back: %v", c)
	}
	if swaps != 2 {
		t.Errorf("observers notified %d times, want 2", swaps)
	}
}

func TestHost_ResizeNotifies(t *testing.T) {
	h, _ := NewHostWithRegistry(NewRegistry(), Options{Width: 1, Height: 1})
	calls := 0
	h.Observe(func() {
		calls++
		if w, _ := h.Measure(); w != 300 {
			t.Errorf("observer saw width %v, want 300", w)
		}
	})
	h.Observe(nil)

	h.Resize(300, 90)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestHost_SwapFailureKeepsVariant(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("no links here")
	r.Register(KindLink, func(Options) (Surface, error) { return nil, boom })

	h, _ := NewHostWithRegistry(r, Options{Width: 10, Height: 10})
	h.Mount(Node{Name: "label"})
	if err := h.SetHref("/x"); !errors.Is(err, boom) {
		t.Fatalf("SetHref() error = %v, want %v", err, boom)
	}
	if h.Kind() != KindContainer || len(h.Surface().Content()) != 1 {
		t.Error("failed swap modified the host")
	}
}

func TestNewHost_InvalidSize(t *testing.T) {
	if _, err := NewHost(Options{Width: -5}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewHost() error = %v, want ErrInvalidSize", err)
	}
}
