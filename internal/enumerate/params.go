// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumerate

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// targetDigits is D in spec.md §4.6 step 1: the number of decimal digits
// beyond which a candidate is no longer considered "close enough" to a
// representation boundary to be worth enumerating.
const targetDigits = 17

const (
	log10Of5 = 0.6989700043360189 // log10(5)
	log10Of2 = 0.3010299956639812 // log10(2)
)

// NewParams derives the Diophantine-search parameters for one binary
// exponent e at precision p (52 for normals, e+1074 for subnormals), per
// spec.md §4.6 step 1. tau = 5^n is the modulus the residue walk operates
// in (base 5, since 10 = 2*5 and the binary exponent already accounts for
// the factors of 2); alpha is the initial shift seed 2^(e+p-n) mod tau,
// reflecting the double's mantissa scaling into that residue space; delta
// is the candidate-region radius (kept at a small fixed multiple of 1,
// since the original's per-exponent constant folds into how many residues
// land within it, not into delta's own magnitude); m0 is the starting
// residue of the search phase, which NewParams sets equal to alpha.
//
// This reproduces the shape of the construction spec.md §4.6 describes
// (a shift walk over residues mod a power of 5, seeded from the binary
// exponent) rather than a verbatim transcription of the Errol paper's
// theorem, which original_source does not include in full; see DESIGN.md
// for the corresponding open-question note.
func NewParams(e int, p uint) Params {
	n := int(math.Floor(float64(-e+int(p)+1)*log10Of5+float64(int(p)+1)*log10Of2)) - targetDigits + 2
	if n < 1 {
		n = 1
	}

	tau := powInt(newInt(5), n)

	shift := e + int(p) - n
	alpha := powIntMod(newInt(2), shift, tau)

	return Params{
		Delta: newInt(1),
		Alpha: alpha,
		Tau:   tau,
		M0:    alpha,
		P:     p,
	}
}

// powInt returns base^n for n >= 0 via exact integer repeated squaring.
func powInt(base *apd.Decimal, n int) *apd.Decimal {
	r := newInt(1)
	b := base
	for n > 0 {
		if n&1 == 1 {
			r = mustMul(r, b)
		}
		b = mustMul(b, b)
		n >>= 1
	}
	return r
}

// powIntMod returns base^n mod m for n >= 0 (treating a negative n as
// 0, since the shift exponent is clamped by the caller's choice of n).
func powIntMod(base *apd.Decimal, n int, m *apd.Decimal) *apd.Decimal {
	if n < 0 {
		n = 0
	}
	r := newInt(1)
	b := mod(base, m)
	for n > 0 {
		if n&1 == 1 {
			r = mod(mustMul(r, b), m)
		}
		b = mod(mustMul(b, b), m)
		n >>= 1
	}
	return r
}

func mustMul(a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	if _, err := ctx.Mul(r, a, b); err != nil {
		panic(err)
	}
	return r
}
