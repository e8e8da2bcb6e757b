// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frame provides the rendering-frame clock that glass uses to
// coalesce resize notifications.
//
// A Scheduler runs requested callbacks on its next frame. Loop is the
// ticker-driven implementation; tests drive it by calling Tick directly.
package frame

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the frame period of the default loop (~60 FPS).
const DefaultInterval = 16 * time.Millisecond

// Scheduler defers work to the next rendering frame.
type Scheduler interface {
	// RequestFrame queues fn to run once on the next frame.
	RequestFrame(fn func())
}

// Loop is a frame clock. Callbacks requested between two ticks run together,
// in request order, on the next tick. Callbacks requested while a tick is
// running are deferred to the following tick.
//
// Loop is safe for concurrent use. Callbacks run on the goroutine that
// calls Tick (the Run goroutine when the loop is running).
type Loop struct {
	interval time.Duration

	mu      sync.Mutex
	queue   []func()
	spare   []func()
	frames  uint64
	running bool
}

// NewLoop creates a stopped loop. A non-positive interval uses DefaultInterval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{interval: interval}
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Frames returns the number of ticks executed so far.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Tick runs one frame: every callback queued before the call, exactly once.
// It returns the number of callbacks run. Tick must not be called
// concurrently with itself or with Run.
func (l *Loop) Tick() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = l.spare[:0]
	l.frames++
	l.mu.Unlock()

	for i, fn := range batch {
		fn()
		batch[i] = nil
	}

	l.mu.Lock()
	l.spare = batch[:0]
	l.mu.Unlock()
	return len(batch)
}

// Run ticks every interval until ctx is done. It returns ctx.Err().
// Only one Run may be active at a time; a second call returns immediately
// with a nil error.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return nil
	}
	l.running = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}

var (
	defaultOnce sync.Once
	defaultLoop *Loop
)

// Default returns the process-wide loop, started on first use with
// DefaultInterval. It runs for the lifetime of the process.
func Default() *Loop {
	defaultOnce.Do(func() {
		defaultLoop = NewLoop(DefaultInterval)
		go func() { _ = defaultLoop.Run(context.Background()) }()
	})
	return defaultLoop
}
