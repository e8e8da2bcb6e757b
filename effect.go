// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/glass/displacement"
	"github.com/gogpu/glass/filter"
	"github.com/gogpu/glass/frame"
	"github.com/gogpu/glass/resource"
)

// Resource is the filter resource generated for one Effect.
// A new Resource replaces the previous one under the same ID on every
// regeneration.
type Resource struct {
	// ID is the owning Effect's stable identifier.
	ID string

	// Key is the cache key the resource was generated for.
	Key CacheKey

	// Generation counts regenerations of the owning Effect, starting at 1.
	Generation uint64

	Map    *displacement.Map
	Filter *filter.Filter
}

var defaultStore = resource.NewStore[*Resource]()

// Resources returns the process-wide resource store.
func Resources() *resource.Store[*Resource] {
	return defaultStore
}

var nextID atomic.Uint64

// Stats contains Effect counters.
type Stats struct {
	// Runs is the number of pipeline runs that passed size sampling.
	Runs uint64

	// Aborts is the number of runs stopped by a degenerate size. It is a
	// diagnostics counter only: an aborted run changes nothing else and
	// writes no properties.
	Aborts uint64

	// Generations is the number of filter regenerations.
	Generations uint64

	// Skips is the number of runs that found the cache key unchanged.
	Skips uint64

	// Coalesced is the number of resize signals dropped because a frame
	// was already pending.
	Coalesced uint64
}

// Effect drives the glass effect of one surface.
//
// An Effect is safe for concurrent use: resize callbacks arrive on the frame
// scheduler's goroutine while attribute edits arrive on the caller's, and
// each pipeline run is serialized and complete before the next starts.
type Effect struct {
	id    string
	src   Measurer
	attrs Attributes
	gate  *Gate
	store *resource.Store[*Resource]
	log   *slog.Logger
	sink  StyleSink

	resize *coalescer

	mu       sync.Mutex
	detector changeDetector
	pub      publisher
	stats    Stats
	closed   bool
	flushing bool
}

// New creates an Effect for the surface measured by src, reading attrs and
// publishing to sink. Nothing runs until the first trigger; call Update to
// perform the initial render.
func New(src Measurer, attrs Attributes, sink StyleSink, opts ...Option) *Effect {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = frame.Default()
	}
	if o.gate == nil {
		o.gate = DefaultGate()
	}
	if o.store == nil {
		o.store = defaultStore
	}

	e := &Effect{
		id:    "glass-" + strconv.FormatUint(nextID.Add(1), 10),
		src:   src,
		attrs: attrs,
		gate:  o.gate,
		store: o.store,
		log:   o.logger,
		sink:  sink,
	}
	e.resize = newCoalescer(o.scheduler, func() { e.run(false) })
	return e
}

// ID returns the stable identifier assigned at construction. It is also the
// fragment identifier of every filter reference the Effect publishes.
func (e *Effect) ID() string {
	return e.id
}

// Update runs the pipeline now, regenerating only if the cache key changed.
func (e *Effect) Update() {
	e.run(false)
}

// Refresh runs the pipeline now and regenerates unconditionally.
func (e *Effect) Refresh() {
	e.run(true)
}

// Resized notifies the Effect that the surface box changed. Any number of
// calls within one frame result in a single run on the next frame.
func (e *Effect) Resized() {
	e.resize.signal()
}

// AttributeChanged notifies the Effect that an attribute was edited.
// Attribute edits are discrete, so the pipeline runs immediately.
func (e *Effect) AttributeChanged(name string) {
	e.logger().Debug("glass: attribute changed", "id", e.id, "name", name)
	e.run(false)
}

// Generation returns the number of filter regenerations so far.
func (e *Effect) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.Generations
}

// Resource returns the current filter resource, if one is published.
func (e *Effect) Resource() (*Resource, bool) {
	return e.store.Get(e.id)
}

// Stats returns a snapshot of the Effect counters.
func (e *Effect) Stats() Stats {
	e.mu.Lock()
	s := e.stats
	e.mu.Unlock()
	s.Coalesced = e.resize.dropped.Load()
	return s
}

// Close releases the Effect's resource. Pending frame callbacks and later
// triggers become no-ops.
func (e *Effect) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.pub.take()
	e.store.Release(e.id)
	e.detector.reset()
}

func (e *Effect) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return Logger()
}

// run is one complete pipeline pass followed by delivery of its writes.
func (e *Effect) run(force bool) {
	e.mu.Lock()
	e.step(force)
	if e.flushing {
		// A sink callback up the stack, or another goroutine, is
		// delivering; it picks these writes up after its current batch.
		e.mu.Unlock()
		return
	}
	e.flushing = true
	for {
		batch := e.pub.take()
		if len(batch) == 0 {
			break
		}
		e.mu.Unlock()
		for _, p := range batch {
			e.sink.SetProperty(p.name, p.value)
		}
		e.mu.Lock()
	}
	e.flushing = false
	e.mu.Unlock()
}

// step computes one pipeline pass and queues its writes. e.mu must be held.
func (e *Effect) step(force bool) {
	if e.closed {
		return
	}
	log := e.logger()

	size, ok := SampleSize(e.src.Measure())
	if !ok {
		e.stats.Aborts++
		log.Debug("glass: degenerate size, skipping update", "id", e.id)
		return
	}
	e.stats.Runs++

	params := ResolveParameters(size, e.attrs)
	e.pub.publishBlur(params.Blur)

	if !e.gate.Supported() {
		e.pub.publishFilter(FilterNone)
		return
	}

	key := KeyOf(params)
	if !e.detector.changed(key, force) {
		e.stats.Skips++
		log.Debug("glass: parameters unchanged", "id", e.id, "key", key.String())
		return
	}
	e.regenerate(params, key)
	e.detector.remember(key)
}

func (e *Effect) regenerate(p Parameters, key CacheKey) {
	e.stats.Generations++

	m := displacement.Build(displacement.Spec{
		ID:     e.id,
		Width:  p.Width,
		Height: p.Height,
		Radius: p.CornerRadius,
		Depth:  p.Depth,
	})
	f, ok := filter.Assemble(e.id, m, p.Strength, p.ChromaticAberration)
	if !ok {
		e.store.Release(e.id)
		e.pub.publishFilter(FilterNone)
		e.logger().Debug("glass: no displacement, presenting flat blur", "id", e.id, "key", key.String())
		return
	}

	e.store.Put(e.id, &Resource{
		ID:         e.id,
		Key:        key,
		Generation: e.stats.Generations,
		Map:        m,
		Filter:     f,
	})
	e.pub.publishFilter(f.Reference())
	e.logger().Info("glass: filter regenerated", "id", e.id, "key", key.String(),
		"generation", e.stats.Generations)
}
