// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"math/big"
	"testing"
)

func (u uint128) big() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(u.lo))
	return b
}

func TestUint128Arithmetic(t *testing.T) {
	a := uint128{hi: 0x1, lo: 0xFFFFFFFFFFFFFFFF}
	b := uint128FromUint64(1)

	sum := a.add(b)
	wantSum := new(big.Int).Add(a.big(), b.big())
	if sum.big().Cmp(wantSum) != 0 {
		t.Errorf("add: got %v, want %v", sum.big(), wantSum)
	}

	diff := sum.sub(b)
	if diff.cmp(a) != 0 {
		t.Errorf("sub: got %v, want %v", diff.big(), a.big())
	}

	if a.cmp(b) != 1 || b.cmp(a) != -1 || a.cmp(a) != 0 {
		t.Errorf("cmp: inconsistent ordering for %v, %v", a.big(), b.big())
	}
}

func TestUint128DivmodPow19(t *testing.T) {
	big19 := new(big.Int).Exp(big.NewInt(10), big.NewInt(19), nil)

	cases := []uint128{
		uint128FromUint64(0),
		uint128FromUint64(1e18),
		{hi: 1, lo: 0},
		{hi: 0xFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF},
	}
	for _, u := range cases {
		q, r := u.divmodPow19()

		wantQ, wantR := new(big.Int).DivMod(u.big(), big19, new(big.Int))
		if q.big().Cmp(wantQ) != 0 {
			t.Errorf("divmodPow19(%v) quotient = %v, want %v", u.big(), q.big(), wantQ)
		}
		if new(big.Int).SetUint64(r).Cmp(wantR) != 0 {
			t.Errorf("divmodPow19(%v) remainder = %v, want %v", u.big(), r, wantR)
		}
	}
}

func TestIntConvertEdgeCase(t *testing.T) {
	// spec.md §8 edge scenario 5.
	var buf [40]byte
	n, exp := intConvert(9007199254740992.0, buf[:])
	got := string(buf[:n])
	if got != "9007199254740992" || exp != 16 {
		t.Errorf("intConvert(2^53) = %q, %d, want %q, %d", got, exp, "9007199254740992", 16)
	}
}

func TestIntConvertRoundTrips(t *testing.T) {
	for _, v := range []float64{
		intLo,
		intLo + 1024,
		1e20,
		1e30,
		math.Nextafter(intHi, math.Inf(-1)),
		1.2345678901234567e25,
	} {
		var buf [40]byte
		n, exp := intConvert(v, buf[:])
		got := string(buf[:n])
		if !roundTrips(got, exp, v) {
			t.Errorf("intConvert(%v) = %q, %d does not round-trip", v, got, exp)
		}
	}
}
