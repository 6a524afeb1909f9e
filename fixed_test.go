// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"testing"
)

func TestFixedConvertEdgeCase(t *testing.T) {
	// spec.md §8 edge scenario 6.
	var buf [32]byte
	n, exp := fixedConvert(123456.789, buf[:])
	got := string(buf[:n])
	if got != "123456789" || exp != 6 {
		t.Errorf("fixedConvert(123456.789) = %q, %d, want %q, %d", got, exp, "123456789", 6)
	}
}

func TestFixedConvertIntegralValue(t *testing.T) {
	// A value with no fractional part should emit just the integer digits,
	// trimmed of trailing zeros, per the mid == 0 early return.
	var buf [32]byte
	n, exp := fixedConvert(16000.0, buf[:])
	got := string(buf[:n])
	if got != "16" || exp != 5 {
		t.Errorf("fixedConvert(16000.0) = %q, %d, want %q, %d", got, exp, "16", 5)
	}
}

func TestFixedConvertRoundTrips(t *testing.T) {
	for _, v := range []float64{
		fixedLo,
		fixedLo + 0.5,
		123456.789,
		999999.999999,
		math.Nextafter(intLo, math.Inf(-1)),
		31.0,
		31.99999999999999,
	} {
		var buf [32]byte
		n, exp := fixedConvert(v, buf[:])
		got := string(buf[:n])
		if !roundTrips(got, exp, v) {
			t.Errorf("fixedConvert(%v) = %q, %d does not round-trip", v, got, exp)
		}
	}
}

// TestFixedConvertCarryOut scans the doubles just below each integer from
// 17 upward, where the fraction is a long run of nines and the final
// rounding can carry, and checks that each output round-trips. The scan
// stops at the first output made only of nines. It does not assert that a
// carry or an exponent bump occurred.
func TestFixedConvertCarryOut(t *testing.T) {
	found := false
	for n0 := uint64(16); n0 < 4096 && !found; n0++ {
		v := math.Nextafter(float64(n0+1), math.Inf(-1))
		if v < fixedLo || v >= intLo {
			continue
		}
		var buf [32]byte
		n, exp := fixedConvert(v, buf[:])
		got := string(buf[:n])
		if !roundTrips(got, exp, v) {
			t.Errorf("fixedConvert(%v) = %q, %d does not round-trip", v, got, exp)
		}
		if got[0] != '9' {
			continue
		}
		allNines := true
		for i := 0; i < len(got); i++ {
			if got[i] != '9' {
				allNines = false
				break
			}
		}
		if allNines {
			found = true
		}
	}
}
