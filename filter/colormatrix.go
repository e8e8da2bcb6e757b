// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"strconv"
	"strings"
)

// Channel selects one color channel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "Channel(" + strconv.Itoa(int(c)) + ")"
	}
}

// ColorMatrix is a 4x5 color transformation in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Colors are straight-alpha unit values; the fifth column is a bias.
type ColorMatrix [20]float32

// Identity returns the pass-through matrix.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// IsolateChannel returns a matrix that keeps channel c and alpha and zeroes
// the other two color channels.
func IsolateChannel(c Channel) ColorMatrix {
	var m ColorMatrix
	if c >= Red && c <= Blue {
		m[int(c)*5+int(c)] = 1
	}
	m[18] = 1
	return m
}

// Transform applies the matrix to a straight-alpha color.
func (m *ColorMatrix) Transform(r, g, b, a float32) (float32, float32, float32, float32) {
	return m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4],
		m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9],
		m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14],
		m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]
}

// TransformPremultiplied applies the matrix to a premultiplied color and
// returns a premultiplied, clamped result.
func (m *ColorMatrix) TransformPremultiplied(pr, pg, pb, pa float32) (float32, float32, float32, float32) {
	var r, g, b float32
	if pa > 0 {
		r, g, b = pr/pa, pg/pa, pb/pa
	}
	r, g, b, a := m.Transform(r, g, b, pa)
	a = clamp01(a)
	return clamp01(r) * a, clamp01(g) * a, clamp01(b) * a, a
}

// Values formats the matrix as a space-separated list, row by row.
func (m *ColorMatrix) Values() string {
	var sb strings.Builder
	for i, v := range m {
		if i > 0 {
			if i%5 == 0 {
				sb.WriteString("  ")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	return sb.String()
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
