// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"sync/atomic"

	"github.com/gogpu/glass/frame"
)

// coalescer turns a stream of resize signals into at most one run per frame.
type coalescer struct {
	sched   frame.Scheduler
	run     func()
	pending atomic.Bool
	dropped atomic.Uint64
}

func newCoalescer(sched frame.Scheduler, run func()) *coalescer {
	return &coalescer{sched: sched, run: run}
}

// signal schedules run for the next frame unless it is already scheduled.
func (c *coalescer) signal() {
	if !c.pending.CompareAndSwap(false, true) {
		c.dropped.Add(1)
		return
	}
	c.sched.RequestFrame(c.fire)
}

func (c *coalescer) fire() {
	c.pending.Store(false)
	c.run()
}
