// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import "strconv"

// Style properties written by an Effect.
const (
	// PropertyBlur carries the backdrop blur length, e.g. "2px".
	PropertyBlur = "--glass-blur"

	// PropertyFilter carries the displacement filter reference or FilterNone.
	PropertyFilter = "--glass-filter"

	// FilterNone is published when no displacement filter applies and the
	// presentation layer should fall back to a flat blur.
	FilterNone = "none"
)

// StyleSink receives style property writes. It is usually backed by the
// presentation layer's custom properties.
//
// Writes are delivered after the Effect releases its lock, so a sink may
// call back into the Effect. Writes made by such a nested call are
// delivered after the current batch, in order.
type StyleSink interface {
	SetProperty(name, value string)
}

// StyleSinkFunc adapts a plain function to the StyleSink interface.
type StyleSinkFunc func(name, value string)

// SetProperty implements StyleSink.
func (f StyleSinkFunc) SetProperty(name, value string) { f(name, value) }

type property struct {
	name, value string
}

// publisher queues property writes, dropping writes that repeat the last
// published value of the same property.
type publisher struct {
	blur    string
	filter  string
	pending []property
}

func (p *publisher) publishBlur(blur float64) {
	v := strconv.FormatFloat(blur, 'f', -1, 64) + "px"
	if v == p.blur {
		return
	}
	p.blur = v
	p.pending = append(p.pending, property{PropertyBlur, v})
}

func (p *publisher) publishFilter(ref string) {
	if ref == p.filter {
		return
	}
	p.filter = ref
	p.pending = append(p.pending, property{PropertyFilter, ref})
}

// take returns the queued writes and empties the queue.
func (p *publisher) take() []property {
	out := p.pending
	p.pending = nil
	return out
}
