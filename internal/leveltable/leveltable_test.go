// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leveltable

import "testing"

func TestBuildLookupRoundTrip(t *testing.T) {
	var bits []uint64
	var entries []Entry
	for i := uint64(0); i < 37; i++ {
		bits = append(bits, i*3+1)
		entries = append(entries, Entry{Digits: "x", Exp: int(i)})
	}

	levelBits, levelEntries := Build(bits, entries)
	if len(levelBits) != len(bits) || len(levelEntries) != len(entries) {
		t.Fatalf("Build changed element count: got %d bits, %d entries, want %d", len(levelBits), len(levelEntries), len(bits))
	}

	for i, key := range bits {
		e, ok := Lookup(levelBits, levelEntries, key)
		if !ok {
			t.Fatalf("Lookup(%d) not found", key)
		}
		if e.Exp != entries[i].Exp {
			t.Errorf("Lookup(%d) = %+v, want Exp %d", key, e, entries[i].Exp)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	bits := []uint64{10, 20, 30, 40, 50}
	entries := []Entry{{Exp: 1}, {Exp: 2}, {Exp: 3}, {Exp: 4}, {Exp: 5}}
	levelBits, levelEntries := Build(bits, entries)

	for _, key := range []uint64{0, 15, 25, 35, 45, 60} {
		if _, ok := Lookup(levelBits, levelEntries, key); ok {
			t.Errorf("Lookup(%d) reported found for a key absent from the table", key)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	levelBits, levelEntries := Build(nil, nil)
	if len(levelBits) != 0 || len(levelEntries) != 0 {
		t.Fatalf("Build(nil, nil) = %v, %v, want empty slices", levelBits, levelEntries)
	}
	if _, ok := Lookup(levelBits, levelEntries, 5); ok {
		t.Errorf("Lookup against an empty table reported found")
	}
}

// TestLayoutIsLevelOrder spot-checks that Build's output actually places
// each parent's two children at 2*pos+1 and 2*pos+2 within the bounds
// implied by the recursive split, by confirming a small table's root sits
// where the spec.md §3 formula predicts (h = 2^floor(log2 N) - 1 for a
// a perfectly-sized run).
func TestLayoutIsLevelOrder(t *testing.T) {
	var bits []uint64
	var entries []Entry
	for i := uint64(0); i < 7; i++ {
		bits = append(bits, i)
		entries = append(entries, Entry{Exp: int(i)})
	}
	levelBits, _ := Build(bits, entries)
	// N=7 is an exact power-of-two-minus-one run: floorPow2(7)=4, root=3,
	// so the sorted middle element (index 3, value 3) lands at position 0.
	if levelBits[0] != 3 {
		t.Errorf("root of a 7-element run = %d, want 3", levelBits[0])
	}
}
