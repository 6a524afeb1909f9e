// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Errolgen drives the offline proof enumerator over every binary exponent
// in scope (spec.md §4.6), compares the uncorrected Errol3 float path
// against an oracle for each enumerated candidate, and writes the
// resulting correction table as Go source to stdout, in the level-order
// layout the runtime lookup expects (spec.md §4.5).
//
// Usage:
//
//	go run ./cmd/errolgen > correctiondata.go
//
// This command is build-time tooling, not part of the library's runtime
// surface (spec.md §1 lists table generation as out of scope for the
// online path); it exists so the checked-in correctiondata.go can be
// regenerated rather than hand-edited.
package main

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strconv"

	"rsc.io/tmp/errol"
	"rsc.io/tmp/errol/internal/enumerate"
	"rsc.io/tmp/errol/internal/leveltable"
)

// exponents is the set of binary exponents spec.md §4.6 scopes the
// enumeration to: the low range [-1074, 4] (subnormal and small normal
// exponents) and the high range [128, 1023]. The mid-magnitude range is skipped deliberately — it is
// covered by the integer and fixed fast paths (spec.md §4.3-4.4), which do
// not consult the correction table at all.
func exponents() []int {
	var es []int
	for e := -1074; e <= 4; e++ {
		es = append(es, e)
	}
	for e := 128; e <= 1023; e++ {
		es = append(es, e)
	}
	return es
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("errolgen: ")

	var bits []uint64
	var entries []leveltable.Entry

	for _, e := range exponents() {
		p := uint(52)
		if e < -1022 {
			p = uint(e + 1074)
		}
		params := enumerate.NewParams(e, p)

		indices, err := enumerate.Enumerate(params)
		if err != nil {
			log.Fatalf("exponent %d: %v", e, err)
		}

		for _, v := range enumerate.Candidates(e, indices) {
			if v <= 0 || v < errol.MinNormal {
				continue
			}
			b, ent, mismatch := check(v)
			if mismatch {
				bits = append(bits, b)
				entries = append(entries, ent)
			}
		}
	}

	sortByBits(bits, entries)
	levelBits, levelEntries := leveltable.Build(bits, entries)

	if err := write(os.Stdout, levelBits, levelEntries); err != nil {
		log.Fatal(err)
	}
}

// check runs the uncorrected float path and the oracle for v, and reports
// whether they disagree; on a mismatch it returns the oracle's (correct)
// digit string and exponent as the table entry to install for v's bit
// pattern.
func check(v float64) (bits uint64, entry leveltable.Entry, mismatch bool) {
	var buf [32]byte
	n, exp := errol.UncorrectedFloat(v, buf[:])
	got := string(buf[:n])

	wantDigits, wantExp := oracle(v)

	if got == wantDigits && exp == wantExp {
		return 0, leveltable.Entry{}, false
	}
	return math.Float64bits(v), leveltable.Entry{Digits: wantDigits, Exp: wantExp}, true
}

// oracle returns the shortest correctly-rounded decimal digits and
// exponent for v, using strconv's shortest 'e' formatting as the
// correctly-rounded reference spec.md §9 calls for ("if the oracle
// disagrees with a future IEEE definition of shortest, the table is
// stale — treat the oracle as part of the build-time specification").
// strconv.AppendFloat's shortest mode is itself a correctly-rounded
// shortest-decimal implementation, standing in for Dragon4.
func oracle(v float64) (digits string, exp int) {
	s := strconv.AppendFloat(nil, v, 'e', -1, 64)
	mantissa, e, ok := bytes.Cut(s, []byte("e"))
	if !ok {
		panic("errolgen: malformed strconv output " + string(s))
	}
	exp10, err := strconv.Atoi(string(e))
	if err != nil {
		panic(err)
	}

	digitBytes := make([]byte, 0, len(mantissa))
	for _, c := range mantissa {
		if c == '.' {
			continue
		}
		digitBytes = append(digitBytes, c)
	}
	for len(digitBytes) > 1 && digitBytes[len(digitBytes)-1] == '0' {
		digitBytes = digitBytes[:len(digitBytes)-1]
	}
	return string(digitBytes), exp10 + 1
}

func sortByBits(bits []uint64, entries []leveltable.Entry) {
	idx := make([]int, len(bits))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return bits[idx[i]] < bits[idx[j]] })

	sortedBits := make([]uint64, len(bits))
	sortedEntries := make([]leveltable.Entry, len(entries))
	for i, j := range idx {
		sortedBits[i] = bits[j]
		sortedEntries[i] = entries[j]
	}
	copy(bits, sortedBits)
	copy(entries, sortedEntries)
}

func write(w *os.File, bits []uint64, entries []leveltable.Entry) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by cmd/errolgen. DO NOT EDIT by hand.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package errol")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, `import "rsc.io/tmp/errol/internal/leveltable"`)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "var correctionBits = []uint64{\n")
	for _, b := range bits {
		fmt.Fprintf(&buf, "\t0x%016x,\n", b)
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "var correctionEntries = []leveltable.Entry{\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t{Digits: %q, Exp: %d},\n", e.Digits, e.Exp)
	}
	fmt.Fprintln(&buf, "}")

	_, err := w.Write(buf.Bytes())
	return err
}
