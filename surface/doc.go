// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface models the element a glass effect is drawn over.
//
// A surface is either a Link (it navigates somewhere) or a plain Container.
// Which one is used depends only on whether an href is set, so callers work
// with the Surface interface and a Host that swaps the concrete variant when
// the href appears or disappears, moving mounted content across.
//
// Variants are created through a Registry keyed by kind. The built-in kinds
// are KindLink and KindContainer; others can be registered:
//
//	surface.Register("button", func(opts surface.Options) (surface.Surface, error) {
//	    return newButton(opts), nil
//	})
//
// Host implements the Measure method expected by glass.Measurer and
// notifies observers on resize and on variant swaps:
//
//	h, _ := surface.NewHost(surface.Options{Width: 320, Height: 120})
//	e := glass.New(h, attrs, sink)
//	h.Observe(e.Resized)
package surface
