// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"sync"

	"github.com/gogpu/glass/frame"
	"github.com/gogpu/glass/resource"
)

// box is a mutable Measurer.
type box struct {
	mu   sync.Mutex
	w, h float64
}

func fixedBox(w, h float64) *box { return &box{w: w, h: h} }

func (b *box) Measure() (float64, float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.w, b.h
}

func (b *box) set(w, h float64) {
	b.mu.Lock()
	b.w, b.h = w, h
	b.mu.Unlock()
}

type write struct {
	name, value string
}

// recordingSink records every property write.
type recordingSink struct {
	mu     sync.Mutex
	writes []write
}

func (s *recordingSink) SetProperty(name, value string) {
	s.mu.Lock()
	s.writes = append(s.writes, write{name, value})
	s.mu.Unlock()
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

// last returns the most recent value written to name.
func (s *recordingSink) last(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.writes) - 1; i >= 0; i-- {
		if s.writes[i].name == name {
			return s.writes[i].value, true
		}
	}
	return "", false
}

func newTestLoop() *frame.Loop { return frame.NewLoop(0) }

func newTestStore() *resource.Store[*Resource] { return resource.NewStore[*Resource]() }

// newTestEffect builds an Effect isolated from process-wide state.
func newTestEffect(b *box, attrs Attributes, opts ...Option) (*Effect, *recordingSink, *frame.Loop) {
	sink := &recordingSink{}
	loop := newTestLoop()
	base := []Option{
		WithGate(NewGate(SoftwareProbe)),
		WithScheduler(loop),
		WithStore(newTestStore()),
	}
	return New(b, attrs, sink, append(base, opts...)...), sink, loop
}
