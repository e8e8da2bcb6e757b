// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"log/slog"

	"github.com/gogpu/glass/frame"
	"github.com/gogpu/glass/resource"
)

// Option configures an Effect during creation.
//
// Example:
//
//	loop := frame.NewLoop(0)
//	e := glass.New(host, attrs, sink, glass.WithScheduler(loop))
type Option func(*options)

type options struct {
	scheduler frame.Scheduler
	gate      *Gate
	store     *resource.Store[*Resource]
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{}
}

// WithScheduler sets the frame scheduler used to coalesce resize signals.
// The default is frame.Default(), a process-wide loop started on first use.
func WithScheduler(s frame.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithGate sets the capability gate. The default is DefaultGate(), shared
// by every Effect in the process.
func WithGate(g *Gate) Option {
	return func(o *options) {
		o.gate = g
	}
}

// WithStore sets the store that generated resources are published to.
// The default is Resources().
func WithStore(s *resource.Store[*Resource]) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithLogger overrides the package logger for one Effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
