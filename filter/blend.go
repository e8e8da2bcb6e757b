// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

// BlendMode selects how the per-channel passes are recombined.
// Both modes only ever lighten, so isolated channels add back up to the
// full color.
type BlendMode int

const (
	// Screen: B(Cb, Cs) = Cb + Cs - Cb*Cs.
	Screen BlendMode = iota

	// Lighten: B(Cb, Cs) = max(Cb, Cs).
	Lighten
)

// String returns the SVG name of the mode.
func (m BlendMode) String() string {
	if m == Lighten {
		return "lighten"
	}
	return "screen"
}

// blend composites premultiplied source s over backdrop d with mode.
// Color: Cs*(1-ab) + Cb*(1-as) + as*ab*B(cb, cs), the separable blend
// formula on unpremultiplied cb, cs.
func (m BlendMode) blend(s, d [4]float32) [4]float32 {
	sa, da := s[3], d[3]
	var out [4]float32
	for i := range 3 {
		var cs, cb float32
		if sa > 0 {
			cs = s[i] / sa
		}
		if da > 0 {
			cb = d[i] / da
		}
		var mixed float32
		switch m {
		case Lighten:
			mixed = max(cs, cb)
		default:
			mixed = cs + cb - cs*cb
		}
		out[i] = clamp01(s[i]*(1-da) + d[i]*(1-sa) + sa*da*mixed)
	}
	out[3] = clamp01(sa + da - sa*da)
	return out
}
