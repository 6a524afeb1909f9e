// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumerate

import "testing"

func TestModNonNegative(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{0, 5, 0},
		{-1, 5, 4},
	}
	for _, c := range cases {
		got := mod(newInt(c.a), newInt(c.b))
		if want := newInt(c.want); got.Cmp(want) != 0 {
			t.Errorf("mod(%d, %d) = %v, want %v", c.a, c.b, got, want)
		}
	}
}

func TestPowInt(t *testing.T) {
	got := powInt(newInt(5), 6)
	want := newInt(15625)
	if got.Cmp(want) != 0 {
		t.Errorf("powInt(5, 6) = %v, want %v", got, want)
	}
	if got := powInt(newInt(5), 0); got.Cmp(newInt(1)) != 0 {
		t.Errorf("powInt(5, 0) = %v, want 1", got)
	}
}

func TestPowIntMod(t *testing.T) {
	// 2^10 mod 1000 = 24.
	got := powIntMod(newInt(2), 10, newInt(1000))
	if want := newInt(24); got.Cmp(want) != 0 {
		t.Errorf("powIntMod(2, 10, 1000) = %v, want %v", got, want)
	}
}

func TestShiftListSmallerAtmost(t *testing.T) {
	l := &shiftList{}
	// Descending by |val|, as Enumerate's construction phase maintains.
	l.add(1, newInt(-50))
	l.add(2, newInt(30))
	l.add(3, newInt(-10))
	l.add(4, newInt(5))

	sh, ok := l.smaller(newInt(10))
	if !ok || sh.idx != 4 {
		t.Errorf("smaller(10) = %+v, %v, want idx 4", sh, ok)
	}

	sh, ok = l.atmost(newInt(10))
	if !ok || sh.idx != 3 {
		t.Errorf("atmost(10) = %+v, %v, want idx 3", sh, ok)
	}
}

// TestNewParamsProducesValidModulus checks the structural invariants
// NewParams must hold regardless of the exact Diophantine derivation
// (see the open-question note in params.go and DESIGN.md): tau is
// positive, and alpha is a valid residue mod tau.
func TestNewParamsProducesValidModulus(t *testing.T) {
	for _, tc := range []struct {
		e int
		p uint
	}{
		{0, 52},
		{128, 52},
		{1023, 52},
		{-1074, 1},
	} {
		params := NewParams(tc.e, tc.p)
		if params.Tau.Sign() <= 0 {
			t.Errorf("NewParams(%d, %d).Tau = %v, want positive", tc.e, tc.p, params.Tau)
		}
		if params.Alpha.Sign() < 0 || cmpAbs(params.Alpha, params.Tau) >= 0 {
			t.Errorf("NewParams(%d, %d).Alpha = %v is not a residue mod Tau = %v", tc.e, tc.p, params.Alpha, params.Tau)
		}
	}
}

// TestEnumerateSmallSmoke exercises Enumerate end-to-end at a tiny index
// space (P small enough to terminate quickly) to confirm the three phases
// wire together without error; it does not assert a specific index set,
// since the enumerated candidates are a function of the Diophantine
// derivation this package documents as a best-effort reconstruction.
func TestEnumerateSmallSmoke(t *testing.T) {
	params := NewParams(0, 8)
	indices, err := Enumerate(params)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	limit := uint64(1) << params.P
	for _, idx := range indices {
		if idx >= limit {
			t.Errorf("Enumerate returned index %d >= limit %d", idx, limit)
		}
	}
}
