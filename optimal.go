// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import "math"

// errol1Epsilon is the boundary margin errol1_dtoa uses in
// original_source/lib/errol.c: it computes two interval pairs around the
// same midpoint, one tightened by (2+epsilon) and one loosened by
// (2-epsilon), and calls the output optimal only while both pairs keep
// agreeing on every emitted digit.
const errol1Epsilon = 8.77e-15

// ConvertOptimal implements the Errol1 algorithm: like floatConvert, it
// runs the digit-generation loop over a table-seeded hp midpoint, but it
// additionally tracks a second, looser interval and reports whether the
// two intervals ever disagree on a digit. When the returned bool is true,
// the digit string is guaranteed the shortest round-trip representation;
// when false, it round-trips but may not be shortest, and a caller with
// stricter requirements should fall back to an oracle algorithm (spec.md
// §7). Unlike ConvertShortest, ConvertOptimal never consults the
// correction table — its guarantee comes from the shadow-interval check,
// not from a precomputed patch list.
//
// v must be finite, positive, and not in the integer or fixed fast-path
// ranges (use ConvertShortest, which routes those ranges itself, for a
// general-purpose entry point).
func ConvertOptimal(v float64, buf []byte) (n, exp int, optimal bool) {
	_, e := math.Frexp(v)
	k := minTableIndex
	if idx := 307 + int(float64(e)*log10Of2); idx > k {
		k = idx
	}
	if k > maxTableIndex {
		k = maxTableIndex
	}

	mid := powersOfTen[k].product(v)
	lten := powersOfTen[k].val
	exp = k - 307
	ten := 1.0

	for mid.gt10() {
		exp++
		mid = mid.div10()
		ten /= 10.0
	}
	for mid.lt1() {
		exp--
		mid = mid.mul10()
		ten *= 10.0
	}

	nxt := math.Nextafter(v, math.Inf(1))
	prv := math.Nextafter(v, math.Inf(-1))
	var hidiff float64
	if math.IsInf(nxt, 1) {
		hidiff = v - prv
	} else {
		hidiff = nxt - v
	}
	lodiff := prv - v

	inHi := hp{mid.val, mid.off + hidiff*lten*ten/(2.0 + errol1Epsilon)}.normalize()
	inLo := hp{mid.val, mid.off + lodiff*lten*ten/(2.0 + errol1Epsilon)}.normalize()
	outHi := hp{mid.val, mid.off + hidiff*lten*ten/(2.0 - errol1Epsilon)}.normalize()
	outLo := hp{mid.val, mid.off + lodiff*lten*ten/(2.0 - errol1Epsilon)}.normalize()

	for inHi.gt10() {
		exp++
		inHi, inLo, outHi, outLo = inHi.div10(), inLo.div10(), outHi.div10(), outLo.div10()
	}
	for inHi.lt1() {
		exp--
		inHi, inLo, outHi, outLo = inHi.mul10(), inLo.mul10(), outHi.mul10(), outLo.mul10()
	}

	optimal = true
	n = 0
	for inHi.val != 0.0 || inHi.off != 0.0 {
		hdig, hrest := digit(inHi)
		ldig, lrest := digit(inLo)

		if ldig != hdig {
			break
		}

		buf[n] = byte('0' + hdig)
		n++

		ohdig, ohrest := digit(outHi)
		oldig, olrest := digit(outLo)
		if oldig != ohdig {
			optimal = false
		}

		inHi, inLo = hrest.mul10(), lrest.mul10()
		outHi, outLo = ohrest.mul10(), olrest.mul10()
	}

	avg := (inHi.val + inLo.val) / 2.0
	avgFloor := math.Floor(avg)
	fdig := int(math.Floor(avg + 0.5))
	if avg-avgFloor == 0.5 && fdig%2 == 1 {
		fdig--
	}
	buf[n] = byte('0' + fdig)
	n++

	return n, exp + 1, optimal
}
