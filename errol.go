// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import "math"

// ConvertShortest writes the shortest decimal digit string that round-trips
// back to v into buf, and returns the decimal exponent: the value equals
// 0.d1d2...dn x 10^exp, where d1..dn are the digits written to buf[:n].
//
// ConvertShortest picks the fastest conversion path for v's magnitude (the
// 128-bit integer path, the fixed-point path, or the general hp-based
// float path), and for the float path it probes the correction table
// first. This makes its result the Errol4 variant: corrected, and by
// construction always the true shortest representation (spec.md §4.5,
// §7) — provided correctionBits/correctionEntries have actually been
// populated by cmd/errolgen.
//
// KNOWN LIMITATION: correctiondata.go currently ships with both tables
// empty (see that file's header and DESIGN.md), because building them
// requires running cmd/errolgen against a live Go toolchain, which this
// tree has not done. Until correctiondata.go is regenerated, every float-
// path call falls through to the uncorrected Errol3 floatConvert, so the
// "always shortest" guarantee above is not yet realized at runtime for
// any input whose uncorrected digit happens to be wrong; such inputs,
// when they exist, behave like ConvertEmbedded's weaker guarantee
// (round-trips, but not provably shortest) instead.
//
// v must be finite, positive, and at least [MinNormal]; buf must have
// length at least 32. Violating either precondition panics, per spec.md
// §4.7 (out-of-range input is a programming error, not a data error).
func ConvertShortest(v float64, buf []byte) (n, exp int) {
	checkInput(v, buf)

	switch {
	case v >= intLo && v < intHi:
		return intConvert(v, buf)
	case v >= fixedLo && v < intLo:
		return fixedConvert(v, buf)
	}

	if e, ok := correctionLookup(math.Float64bits(v)); ok {
		n = copy(buf, e.Digits)
		return n, e.Exp
	}
	return floatConvert(v, buf)
}

// UncorrectedFloat runs the Errol3 digit-generation loop without
// consulting the correction table. It is exported only so cmd/errolgen
// can compare its output against an oracle while building that table;
// runtime callers wanting a guaranteed-shortest result should call
// [ConvertShortest] instead.
func UncorrectedFloat(v float64, buf []byte) (n, exp int) {
	return floatConvert(v, buf)
}

// ConvertEmbedded writes a decimal digit string that round-trips back to v
// into buf, using the Errol0 algorithm: table-free, suitable for targets
// too constrained to carry the 630-entry powersOfTen table. The result is
// always correct (it round-trips) but may occasionally be one digit longer
// than the true shortest form (spec.md §7).
//
// The same preconditions as [ConvertShortest] apply.
func ConvertEmbedded(v float64, buf []byte) (n, exp int) {
	checkInput(v, buf)
	return embeddedConvert(v, buf)
}

// minBufLen is the minimum caller-supplied buffer size spec.md §5
// guarantees is sufficient: 17 significant digits plus headroom.
const minBufLen = 32

// checkInput enforces the shared preconditions for both entry points:
// v must be finite, positive, and normal-or-larger; buf must be large
// enough to hold any possible result. These are asserted, not handled,
// per spec.md §4.7 — out-of-range input is undefined behavior in the
// original, rendered here as a panic so misuse is loud rather than silent.
func checkInput(v float64, buf []byte) {
	if len(buf) < minBufLen {
		panic("errol: buffer too small")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic("errol: value must be finite and positive")
	}
	if v < MinNormal {
		panic("errol: subnormal input out of scope")
	}
}
