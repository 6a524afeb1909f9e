// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"math/bits"
)

// A uint128 is an unsigned 128-bit integer, stored as two uint64 halves.
// It is the minimal operation set spec.md §9 calls for: add, subtract,
// divmod by a small divisor, divmod by 1e19, compare, and cast from/to
// uint64. The original C source uses the compiler's __uint128_t for this;
// Go has no native 128-bit integer, so this mirrors the (hi, lo uint64)
// representation already used for the power-of-ten mantissas in
// rsc.io/tmp/ftoa/ftoa.go.
type uint128 struct {
	hi, lo uint64
}

// uint128FromUint64 widens a uint64 into a uint128.
func uint128FromUint64(v uint64) uint128 {
	return uint128{0, v}
}

// uint128FromFloat64 truncates a non-negative float64 with magnitude below
// 2^128 to a uint128, the same way converting a double to a __uint128_t
// truncates toward zero in C.
func uint128FromFloat64(f float64) uint128 {
	if f < 1 {
		return uint128{}
	}
	hi := uint64(f / (1 << 64))
	lo := uint64(f - float64(hi)*(1<<64))
	return uint128{hi, lo}
}

// add returns u+v, wrapping modulo 2^128.
func (u uint128) add(v uint128) uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi, lo}
}

// sub returns u-v, wrapping modulo 2^128.
func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi, lo}
}

// addUint64 returns u+v for a uint64 v.
func (u uint128) addUint64(v uint64) uint128 {
	return u.add(uint128FromUint64(v))
}

// subUint64 returns u-v for a uint64 v.
func (u uint128) subUint64(v uint64) uint128 {
	return u.sub(uint128FromUint64(v))
}

// cmp compares u and v, returning -1, 0, or 1.
func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi != v.hi:
		if u.hi < v.hi {
			return -1
		}
		return 1
	case u.lo != v.lo:
		if u.lo < v.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (u uint128) isZero() bool {
	return u.hi == 0 && u.lo == 0
}

// pow19 is 10^19, the largest power of ten that fits in a uint64; chunking
// divisions by this power lets divmodPow19 do 128-bit/64-bit division with
// only 64-bit hardware division, same as errol2_dtoa's use of pow19 in
// original_source/lib/errol.c.
const pow19 uint64 = 1e19

// divmodPow19 returns (u/1e19, u%1e19).
func (u uint128) divmodPow19() (q uint128, r uint64) {
	hiQ, hiR := bits.Div64(0, u.hi, pow19)
	loQ, loR := bits.Div64(hiR, u.lo, pow19)
	return uint128{hiQ, loQ}, loR
}

// intConvert implements the 128-bit integer fast path (spec.md §4.3),
// directly translating errol2_dtoa from original_source/lib/errol.c: it
// widens v's round-half-to-even neighborhood into a 128-bit [low, high]
// interval, excludes the boundary that ties favor per IEEE round-to-even,
// chunks both endpoints into base-1e19 "digit strings" via divmodPow19, and
// scans for the highest digit position at which low and high diverge.
//
// v must satisfy intLo <= v < intHi.
func intConvert(v float64, buf []byte) (n int, exp int) {
	nxt := math.Nextafter(v, math.Inf(1))
	prv := math.Nextafter(v, math.Inf(-1))

	mid := uint128FromFloat64(v)
	low := mid.sub(uint128FromFloat64((nxt - v) / 2.0))
	high := mid.add(uint128FromFloat64((v - prv) / 2.0))

	// Odd significand: v sits on the open side of both neighboring ties,
	// so narrow both ends by one. Even significand: v sits on the closed
	// side of both, so the base low/high already exclude the right point
	// and nothing changes here (errol2_dtoa: `if(bits.i & 0x1) low++, high--;`).
	if math.Float64bits(v)&1 != 0 {
		low = low.addUint64(1)
		high = high.subUint64(1)
	}

	// Chunk low and high into base-1e19 digit strings, most-significant
	// chunk first, exactly as errol2_dtoa does with lstr/hstr. Index 40 is
	// left at its zero value as the '\0' sentinel errol2_dtoa relies on;
	// digits occupy indices [0,39].
	var lstr, hstr [41]byte
	i := 39
	for !high.isZero() {
		var l64, h64 uint64
		low, l64 = low.divmodPow19()
		high, h64 = high.divmodPow19()

		for j := 0; (!high.isZero() && j < 19) || (high.isZero() && h64 != 0); j++ {
			lstr[i] = byte('0' + l64%10)
			hstr[i] = byte('0' + h64%10)
			l64 /= 10
			h64 /= 10
			i--
		}
	}

	exp = 39 - i
	i++

	// Copy the common prefix of hstr and lstr (a do-while in the original:
	// always emit hstr[i] once, then keep emitting while the next digit is
	// still shared with lstr).
	n = 0
	buf[n] = hstr[i]
	n++
	i++
	for hstr[i] != 0 && hstr[i] == lstr[i] {
		buf[n] = hstr[i]
		n++
		i++
	}

	if allZero(lstr[i:]) || allZero(hstr[i:]) {
		for n > 1 && buf[n-1] == '0' {
			n--
		}
	} else {
		buf[n] = hstr[i]
		n++
	}

	return n, exp
}

// allZero reports whether every byte of a base-1e19 digit-string suffix is
// either absent (the zero value) or the ASCII digit '0', mirroring the
// original's allzero() helper applied to the tail of lstr/hstr.
func allZero(s []byte) bool {
	for _, c := range s {
		if c != 0 && c != '0' {
			return false
		}
	}
	return true
}
