// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import "math"

// log10Of2 approximates log10(2) to the precision used by the original
// algorithm; it only needs to be accurate enough to pick a starting
// index within a digit or two of the table entry we actually want —
// the scale-to-unit-range loops in both floatConvert and
// ConvertOptimal correct any remaining error.
const log10Of2 = 0.30103

// minTableIndex and maxTableIndex bound the index floatConvert derives
// from v's binary exponent before indexing into powersOfTen.
// maxTableIndex is the entry for 10^-307, the smallest power in the table
// that is a normal float64; the entries after it are subnormal and too
// imprecise to seed the midpoint.
const (
	minTableIndex = 20
	maxTableIndex = 614
)

// floatConvert implements the Errol3 uncorrected digit-generation
// algorithm: it seeds an hp midpoint from the decimal-power table,
// computes high/low hp boundaries from the neighboring doubles, and
// emits the shortest digit sequence common to both boundaries followed
// by a single rounded final digit. Its output round-trips for all but
// a small, precomputed set of inputs (see correctionLookup); callers
// that need a guarantee should consult the correction table first.
//
// v must be finite, positive, and have a binary exponent such that it
// does not fall in the integer or fixed fast-path ranges; the caller
// (ConvertShortest) is responsible for routing those ranges elsewhere.
func floatConvert(v float64, buf []byte) (n int, exp int) {
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

	high := hp{mid.val, mid.off + hidiff*lten*ten/2.0}.normalize()
	low := hp{mid.val, mid.off + lodiff*lten*ten/2.0}.normalize()

	for high.gt10() {
		exp++
		high = high.div10()
		low = low.div10()
	}
	for high.lt1() {
		exp--
		high = high.mul10()
		low = low.mul10()
	}

	n = genDigits(buf, high, low)
	return n, exp + 1
}

// embeddedConvert implements the Errol0 algorithm: it is table-free,
// scaling the midpoint into [1,10) from scratch via repeated mul10 and
// div10, and it narrows both boundaries slightly (dividing the half-gaps
// by 2+errol0Epsilon instead of 2) to absorb the extra imprecision of
// scaling without a table seed. The result
// always round-trips, but unlike floatConvert it may land one digit
// longer than the true shortest representation. This is the variant
// intended for targets too constrained to carry the 630-entry
// powersOfTen table.
func embeddedConvert(v float64, buf []byte) (n int, exp int) {
	const errol0Epsilon = 0.0000001

	mid := hp{v, 0.0}
	exp = 1
	ten := 1.0

	for mid.gt10() && exp < 308 {
		exp++
		mid = mid.div10()
		ten /= 10.0
	}
	for mid.lt1() && exp > -307 {
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

	high := hp{mid.val, mid.off + hidiff*ten/(2.0+errol0Epsilon)}.normalize()
	low := hp{mid.val, mid.off + lodiff*ten/(2.0+errol0Epsilon)}.normalize()

	for high.gt10() {
		exp++
		high = high.div10()
		low = low.div10()
	}
	for high.lt1() {
		exp--
		high = high.mul10()
		low = low.mul10()
	}

	n = genDigitsNoRound(buf, high, low)
	return n, exp
}

// digit splits off the integer digit of an hp's leading term, applying
// the correction for the case where the term is exactly on a digit
// boundary but off indicates the true sum sits just below it.
func digit(h hp) (d int, rest hp) {
	d = int(h.val)
	h.val -= float64(d)
	if h.val == 0.0 && h.off < 0 {
		d--
		h.val += 1.0
	}
	return d, h
}

// genDigits runs the shared digit-generation loop (spec step 6) and
// appends the final rounded digit (step 7), used by the table-seeded
// path where the boundaries are tight enough to make that rounding
// step meaningful.
func genDigits(buf []byte, high, low hp) int {
	n := 0
	for {
		hdig, hrest := digit(high)
		ldig, lrest := digit(low)
		if ldig != hdig {
			break
		}
		buf[n] = byte('0' + hdig)
		n++
		high = hrest.mul10()
		low = lrest.mul10()
	}

	avg := (high.val + low.val) / 2.0
	avgFloor := math.Floor(avg)
	fdig := int(avgFloor)
	if avg-avgFloor == 0.5 {
		fdig++
		if fdig%2 == 1 {
			fdig--
		}
	} else {
		fdig = int(math.Floor(avg + 0.5))
	}
	buf[n] = byte('0' + fdig)
	n++
	return n
}

// genDigitsNoRound runs the digit-generation loop without a trailing
// rounded digit: it simply stops at the point where high and low
// diverge, which is what makes Errol0 occasionally one digit longer
// than the true shortest form.
func genDigitsNoRound(buf []byte, high, low hp) int {
	n := 0
	for high.val != 0.0 || high.off != 0.0 {
		hdig, hrest := digit(high)
		ldig, lrest := digit(low)
		buf[n] = byte('0' + hdig)
		n++
		if ldig != hdig {
			break
		}
		high = hrest.mul10()
		low = lrest.mul10()
	}
	return n
}
