// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package anthropometry

import (
	"math"
	"sort"
)

// lEpsilon is the |L| below which the Box-Cox transform degenerates to its
// logarithmic limit.
const lEpsilon = 1e-7

// Interpolate resolves the LMS parameters at x from points sorted ascending by
// At. A tabulated x returns its row unchanged; x outside the table is clamped
// to the nearest end row; anything else is linearly interpolated between the
// bracketing rows. points must not be empty.
func Interpolate(points []LMSRecord, x float64) LMSRecord {
	first, last := points[0], points[len(points)-1]
	// Written negated so a NaN x lands on the first row.
	if !(x > first.At) {
		return first
	}
	if x >= last.At {
		return last
	}

	// Index of the first row with At >= x; 0 < i < len(points) after clamping.
	i := sort.Search(len(points), func(i int) bool { return points[i].At >= x })
	next := points[i]
	if next.At == x {
		return next
	}
	prev := points[i-1]

	frac := (x - prev.At) / (next.At - prev.At)
	return LMSRecord{
		At: x,
		L:  lerp(prev.L, next.L, frac),
		M:  lerp(prev.M, next.M, frac),
		S:  lerp(prev.S, next.S, frac),
	}
}

func lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}

// ZScore converts measurement y to a standard score with the WHO LMS method.
// y must be positive; M and S are positive by construction of the tables.
func ZScore(y float64, p LMSRecord) float64 {
	if math.Abs(p.L) < lEpsilon {
		return math.Log(y/p.M) / p.S
	}
	return (math.Pow(y/p.M, p.L) - 1) / (p.L * p.S)
}
