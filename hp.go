// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import "math"

// An hp is a double-double: the unevaluated sum val+off of two float64s,
// giving roughly 106 bits of precision. After [hp.normalize], |off| is at
// most half an ulp of val. hp values are small and are always passed and
// returned by value; none of the arithmetic here allocates.
type hp struct {
	val float64
	off float64
}

// normalize folds off back into val, keeping the exact sum val+off but
// moving as much of it as possible into the leading term.
func (h hp) normalize() hp {
	newval := h.val + h.off
	newoff := h.off + (h.val - newval)
	return hp{newval, newoff}
}

// mul10 returns h*10, computed so that the rounding error introduced by
// the multiplication is folded back into off rather than discarded.
// It exploits that 10x = 8x + 2x, and that x*8 and x*2 are each exact
// (a power-of-two scaling never rounds, barring overflow).
func (h hp) mul10() hp {
	v2 := h.val * 10
	o2 := h.off * 10
	t := v2 - h.val*8 - h.val*2
	o2 -= t
	return hp{v2, o2}.normalize()
}

// div10 returns h/10, the divide-by-10 analog of mul10.
func (h hp) div10() hp {
	v2 := h.val / 10
	o2 := h.off / 10
	t := h.val - v2*8 - v2*2
	o2 += t / 10
	return hp{v2, o2}.normalize()
}

// splitMask clears the low 27 bits of a double's mantissa, isolating its
// high half for the Dekker/Veltkamp split used by product.
const splitMask = 0xFFFFFFFFF8000000

// split divides d into a high part containing its top 26 mantissa bits
// and a low part holding the exact remainder, hi+lo == d, with both
// halves small enough that their pairwise products below are exact.
func split(d float64) (hi, lo float64) {
	hi = math.Float64frombits(math.Float64bits(d) & splitMask)
	lo = d - hi
	return hi, lo
}

// product returns h*d as an hp, using the Dekker/Veltkamp split to
// recover the rounding error of the val*d multiplication exactly.
func (h hp) product(d float64) hp {
	hi, lo := split(h.val)
	hi2, lo2 := split(d)
	p := h.val * d
	e := ((hi*hi2 - p) + lo*hi2 + hi*lo2) + lo*lo2
	return hp{p, h.off*d + e}
}

// gt10 reports whether h, read lexicographically as (val, off), is at or
// above the decade boundary 10.0 — that is, val > 10, or val == 10 with
// off on the nonnegative side of the tie.
func (h hp) gt10() bool {
	return h.val > 10.0 || (h.val == 10.0 && h.off >= 0.0)
}

// lt1 is the symmetric test for the lower decade boundary.
func (h hp) lt1() bool {
	return h.val < 1.0 || (h.val == 1.0 && h.off < 0.0)
}
