// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "sync"

// Host owns the current surface variant of one element.
//
// Setting a non-empty href turns the element into a Link; clearing it turns
// it back into a Container. Content and box move to the new variant, so
// callers holding the Host never observe the swap.
type Host struct {
	registry *Registry

	mu        sync.Mutex
	current   Surface
	observers []func()
}

// NewHost creates a Host backed by the global registry, starting as a
// Container.
func NewHost(opts Options) (*Host, error) {
	return NewHostWithRegistry(globalRegistry, opts)
}

// NewHostWithRegistry creates a Host that builds variants from reg.
func NewHostWithRegistry(reg *Registry, opts Options) (*Host, error) {
	s, err := reg.New(KindContainer, opts)
	if err != nil {
		return nil, err
	}
	return &Host{registry: reg, current: s}, nil
}

// Surface returns the current variant.
func (h *Host) Surface() Surface {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Kind returns the kind of the current variant.
func (h *Host) Kind() string {
	return h.Surface().Kind()
}

// Measure returns the box of the current variant.
func (h *Host) Measure() (width, height float64) {
	return h.Surface().Measure()
}

// Mount appends nodes to the current variant.
func (h *Host) Mount(nodes ...Node) {
	h.Surface().MountContent(nodes...)
}

// Observe registers fn to be called after every resize and variant swap.
func (h *Host) Observe(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.observers = append(h.observers, fn)
	h.mu.Unlock()
}

// Resize sets the box and notifies observers.
func (h *Host) Resize(width, height float64) {
	h.Surface().Resize(width, height)
	h.notify()
}

// SetHref sets the navigation target, swapping the variant when the
// element gains or loses its href.
func (h *Host) SetHref(href string) error {
	want := KindContainer
	if href != "" {
		want = KindLink
	}

	h.mu.Lock()
	cur := h.current
	if cur.Kind() == want {
		cur.SetLink(href)
		h.mu.Unlock()
		return nil
	}

	w, ht := cur.Measure()
	next, err := h.registry.New(want, Options{Width: w, Height: ht})
	if err != nil {
		h.mu.Unlock()
		return err
	}
	next.SetLink(href)
	next.MountContent(cur.Content()...)
	cur.Clear()
	h.current = next
	h.mu.Unlock()

	h.notify()
	return nil
}

func (h *Host) notify() {
	h.mu.Lock()
	observers := append([]func(){}, h.observers...)
	h.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}
