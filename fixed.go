// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"strconv"
)

// fixedConvert implements the fixed-point conversion path (spec.md §4.4)
// for v in [fixedLo, intLo): v has an exact integer part representable in a
// uint64 (it is in double's integer range) but also carries a fractional
// part, so it is cheaper to split the two than to run them both through the
// general hp machinery in floatConvert. The digit-extraction and
// round-half-to-even tie-break mirror the plain-float (non-hp) loops used
// by errol0_dtoa and errol2_dtoa in original_source/lib/errol.c, applied
// here to the fractional remainder instead of an hp pair.
//
// v must satisfy fixedLo <= v < intLo.
func fixedConvert(v float64, buf []byte) (n int, exp int) {
	n0 := uint64(v)
	n = len(strconv.AppendUint(buf[:0], n0, 10))
	exp = n

	mid := v - float64(n0)
	if mid == 0 {
		for n > 1 && buf[n-1] == '0' {
			n--
		}
		return n, exp
	}

	nxt := math.Nextafter(v, math.Inf(1))
	prv := math.Nextafter(v, math.Inf(-1))
	lo := ((prv - float64(n0)) + mid) / 2.0
	hi := ((nxt - float64(n0)) + mid) / 2.0

	const maxFracDigits = 50
	for i := 0; i < maxFracDigits; i++ {
		lo *= 10
		mid *= 10
		hi *= 10

		ldig := math.Floor(lo)
		mdig := math.Floor(mid)
		hdig := math.Floor(hi)

		lo -= ldig
		mid -= mdig
		hi -= hdig

		buf[n] = byte('0' + int(mdig))
		n++

		if int(hdig) != int(ldig) {
			break
		}
	}

	// Round the last emitted digit (spec.md §4.4 step 5): increment on
	// mid > 0.5, and on an exact tie (mid == 0.5) only if that would make
	// the last digit even, i.e. round-half-to-even.
	roundLastUp := mid > 0.5 || (mid == 0.5 && (buf[n-1]-'0')%2 == 1)
	if roundLastUp && roundUp(buf, &n) {
		exp++
	}

	return n, exp
}

// roundUp increments the decimal digit string buf[:*n] by one, propagating
// carry leftward. It reports whether the carry propagated past the leading
// digit (e.g. "999" -> "1000"), in which case the digit count grew by one
// and the caller's decimal exponent must also move up by one to match.
func roundUp(buf []byte, n *int) bool {
	for i := *n - 1; i >= 0; i-- {
		if buf[i] != '9' {
			buf[i]++
			return false
		}
		buf[i] = '0'
	}
	copy(buf[1:*n+1], buf[:*n])
	buf[0] = '1'
	*n = *n + 1
	return true
}
