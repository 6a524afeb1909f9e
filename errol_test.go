// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"strconv"
	"testing"
)

// edgeCases are the literal scenarios from spec.md §8.
var edgeCases = []struct {
	name   string
	v      float64
	digits string
	exp    int
}{
	{"one", 1.0, "1", 1},
	{"tenth", 0.1, "1", 0},
	{"dblMax", math.MaxFloat64, "17976931348623157", 309},
	{"smallestNormal", MinNormal, "22250738585072014", -307},
	{"twoPow53", 9007199254740992.0, "9007199254740992", 16},
	{"fixedPath", 123456.789, "123456789", 6},
}

func TestConvertShortestEdgeCases(t *testing.T) {
	for _, tc := range edgeCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf [32]byte
			n, exp := ConvertShortest(tc.v, buf[:])
			got := string(buf[:n])
			if got != tc.digits || exp != tc.exp {
				t.Errorf("ConvertShortest(%v) = %q, %d, want %q, %d", tc.v, got, exp, tc.digits, tc.exp)
			}
		})
	}
}

func TestConvertEmbeddedEdgeCases(t *testing.T) {
	for _, tc := range edgeCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf [32]byte
			n, exp := ConvertEmbedded(tc.v, buf[:])
			got := string(buf[:n])
			if !roundTrips(got, exp, tc.v) {
				t.Errorf("ConvertEmbedded(%v) = %q, %d, does not round-trip", tc.v, got, exp)
			}
			if len(got) > len(tc.digits)+1 {
				t.Errorf("ConvertEmbedded(%v) = %q is more than one digit longer than shortest %q", tc.v, got, tc.digits)
			}
		})
	}
}

// roundTrips reports whether parsing "0.d1d2...dn x 10^exp" back with
// strconv reproduces v exactly, the property spec.md §8 calls "round-trip".
func roundTrips(digits string, exp int, v float64) bool {
	if digits == "" {
		return false
	}
	s := digits[:1] + "." + digits[1:] + "e" + strconv.Itoa(exp-1)
	got, err := strconv.ParseFloat(s, 64)
	return err == nil && got == v
}

func TestRoundTripShortest(t *testing.T) {
	for _, v := range sampleValues() {
		var buf [32]byte
		n, exp := ConvertShortest(v, buf[:])
		got := string(buf[:n])
		if !roundTrips(got, exp, v) {
			t.Errorf("ConvertShortest(%v) = %q, %d does not round-trip", v, got, exp)
		}
	}
}

func TestRoundTripEmbedded(t *testing.T) {
	for _, v := range sampleValues() {
		var buf [32]byte
		n, exp := ConvertEmbedded(v, buf[:])
		got := string(buf[:n])
		if !roundTrips(got, exp, v) {
			t.Errorf("ConvertEmbedded(%v) = %q, %d does not round-trip", v, got, exp)
		}
	}
}

// TestAgreement checks spec.md §8's "agreement property": the shortest
// digit string and exponent errol produces should equal the reference
// strconv shortest formatting (the stand-in for Dragon4; see
// cmd/errolgen's oracle function and SPEC_FULL.md §8).
func TestAgreement(t *testing.T) {
	for _, v := range sampleValues() {
		var buf [32]byte
		n, exp := ConvertShortest(v, buf[:])
		got := string(buf[:n])

		wantDigits, wantExp := referenceShortest(v)
		if got != wantDigits || exp != wantExp {
			t.Errorf("ConvertShortest(%v) = %q, %d, want %q, %d (strconv reference)", v, got, exp, wantDigits, wantExp)
		}
	}
}

// referenceShortest mirrors cmd/errolgen's oracle: strconv's shortest
// scientific formatting, converted into errol's (digits, exp) convention.
func referenceShortest(v float64) (digits string, exp int) {
	s := strconv.AppendFloat(nil, v, 'e', -1, 64)
	var mantissa []byte
	var expPart []byte
	seenE := false
	for _, c := range s {
		switch {
		case c == 'e':
			seenE = true
		case !seenE && c != '.':
			mantissa = append(mantissa, c)
		case seenE:
			expPart = append(expPart, c)
		}
	}
	e, err := strconv.Atoi(string(expPart))
	if err != nil {
		panic(err)
	}
	for len(mantissa) > 1 && mantissa[len(mantissa)-1] == '0' {
		mantissa = mantissa[:len(mantissa)-1]
	}
	return string(mantissa), e + 1
}

// sampleValues exercises all three fast paths plus a spread of
// magnitudes, matching the "typical and hard cases" table style of
// rsc.io/tmp/ftoa/ftoa_test.go.
func sampleValues() []float64 {
	return []float64{
		1.0,
		0.1,
		2.0,
		3.14159265358979,
		100.0,
		1e-10,
		1e10,
		1.7976931348623157e+308,
		2.2250738585072014e-308,
		9007199254740992.0,
		9007199254740993.0,
		123456.789,
		16.0,
		15.999999999999998,
		math.Nextafter(16, math.Inf(1)),
		3.40282366920938e+38,
		math.Nextafter(3.40282366920938e+38, math.Inf(-1)),
		1e100,
		1e-100,
		math.Pi,
		math.E,
		math.Pi * 1e50,
		math.Pi * 1e-50,
	}
}

func TestConvertOptimal(t *testing.T) {
	for _, v := range sampleValues() {
		if v >= fixedLo && v < intHi {
			continue // ConvertOptimal, like floatConvert, only handles the general range
		}
		var buf [32]byte
		n, exp, optimal := ConvertOptimal(v, buf[:])
		got := string(buf[:n])
		if !roundTrips(got, exp, v) {
			t.Errorf("ConvertOptimal(%v) = %q, %d does not round-trip", v, got, exp)
		}
		if optimal {
			wantDigits, wantExp := referenceShortest(v)
			if got != wantDigits || exp != wantExp {
				t.Errorf("ConvertOptimal(%v) reported optimal but got %q, %d, want %q, %d", v, got, exp, wantDigits, wantExp)
			}
		}
	}
}

func TestCheckInputPanics(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		buf  []byte
	}{
		{"nan", math.NaN(), make([]byte, 32)},
		{"inf", math.Inf(1), make([]byte, 32)},
		{"negative", -1.0, make([]byte, 32)},
		{"zero", 0.0, make([]byte, 32)},
		{"subnormal", 1e-310, make([]byte, 32)},
		{"shortBuffer", 1.0, make([]byte, 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("ConvertShortest(%v) did not panic", tc.v)
				}
			}()
			ConvertShortest(tc.v, tc.buf)
		})
	}
}
