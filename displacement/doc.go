// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package displacement synthesizes displacement maps for rounded-rectangle
// glass surfaces.
//
// A map encodes horizontal displacement in the red channel and vertical
// displacement in the green channel, with 50% gray meaning "no shift". The
// interior of the rounded rectangle is flat gray; a band of roughly depth
// pixels along the border ramps to full displacement at the edges.
//
// The map is produced as a self-contained SVG document (Map.SVG, Map.DataURI)
// for presentation layers that evaluate SVG filters, and can be rendered on
// the CPU (Map.Rasterize) for everything else.
//
// Basic usage:
//
//	m := displacement.Build(displacement.Spec{
//	    ID:     "glass-1",
//	    Width:  200,
//	    Height: 100,
//	    Radius: 16,
//	    Depth:  10,
//	})
//	href := m.DataURI()
//	img := m.Rasterize()
package displacement
