// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"math/rand"
	"testing"
)

func TestHPNormalizePreservesSum(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		h := hp{val: r.NormFloat64() * math.Pow(10, float64(r.Intn(40)-20)), off: r.NormFloat64()}
		n := h.normalize()
		if n.val+n.off != h.val+h.off {
			t.Fatalf("normalize(%v) = %v changed the represented sum", h, n)
		}
		if math.Abs(n.off) > math.Abs(n.val)*math.Ldexp(1, -52) && n.val != 0 {
			t.Errorf("normalize(%v) = %v: off not within half an ulp of val", h, n)
		}
	}
}

func TestHPMul10Div10RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		h := hp{val: r.NormFloat64(), off: r.NormFloat64() * 1e-16}
		got := h.mul10().div10()
		want := h.normalize()
		if got.val != want.val {
			t.Errorf("mul10().div10() round trip: val = %v, want %v", got.val, want.val)
		}
	}
}

// TestHPProductIdentity checks that product's leading term equals the plain
// float64 product x*y. The recovered error term in off is not checked here.
func TestHPProductIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		x := r.NormFloat64() * math.Pow(2, float64(r.Intn(1000)-500))
		y := r.NormFloat64() * math.Pow(2, float64(r.Intn(1000)-500))
		if x == 0 || y == 0 {
			continue
		}

		h := hp{val: x, off: 0}.product(y)
		approx := x * y
		if h.val != approx {
			t.Errorf("product(%v, %v).val = %v, want %v (the plain float64 product)", x, y, h.val, approx)
		}
	}
}

func TestSplitExactSum(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		d := r.NormFloat64() * math.Pow(2, float64(r.Intn(200)-100))
		hi, lo := split(d)
		if hi+lo != d {
			t.Errorf("split(%v) = %v, %v; hi+lo != d", d, hi, lo)
		}
	}
}

func TestGt10Lt1(t *testing.T) {
	cases := []struct {
		h          hp
		gt10, lt1 bool
	}{
		{hp{10, 0}, true, false},
		{hp{10, 1}, true, false},
		{hp{10, -1}, false, false},
		{hp{10.0000001, 0}, true, false},
		{hp{1, 0}, false, false},
		{hp{1, -1}, false, true},
		{hp{1, 1}, false, false},
		{hp{0.999999, 0}, false, true},
	}
	for _, c := range cases {
		if got := c.h.gt10(); got != c.gt10 {
			t.Errorf("%v.gt10() = %v, want %v", c.h, got, c.gt10)
		}
		if got := c.h.lt1(); got != c.lt1 {
			t.Errorf("%v.lt1() = %v, want %v", c.h, got, c.lt1)
		}
	}
}
