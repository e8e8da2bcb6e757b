// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glass renders a refracting "glass" effect over a surface whose box
// changes at runtime.
//
// For the surface's exact current size, glass synthesizes a displacement
// map (package displacement), wraps it in a chromatic-aberration
// displacement filter (package filter) and publishes a reference to it,
// together with a backdrop blur length, as style properties. When the
// rendering environment cannot apply the filter, only the blur is
// published and the filter property reads "none".
//
// # Overview
//
// An Effect owns the pipeline for one surface:
//
//	sink := glass.StyleSinkFunc(func(name, value string) {
//	    el.Style().SetProperty(name, value)
//	})
//	e := glass.New(host, glass.MapAttributes{"strength": "80"}, sink)
//	e.Update()            // initial render
//	e.Resized()           // from a resize observer; coalesced per frame
//	e.AttributeChanged("depth") // runs immediately
//	e.Refresh()           // forced regeneration
//
// Every run samples the box (rounded to whole pixels; zero-size boxes abort
// with no side effects), resolves parameters with defaults and compares the
// cache key of the regeneration-relevant parameters with the previous run.
// Only a changed key (or Refresh) rebuilds the map and filter.
//
// # Capability gate
//
// Whether the filter is used at all is decided once per process by
// DefaultGate. Backends install their probe with RegisterProbe before the
// first Effect runs; package gpu provides one for gogpu devices.
//
// # Resources
//
// Each Effect has a stable identifier (ID) assigned at construction. Its
// current Resource lives in a resource.Store under that identifier, and
// every published filter reference uses it as fragment, so regenerations
// never produce dangling references.
//
// # Logging
//
// glass is silent by default. See SetLogger.
package glass
