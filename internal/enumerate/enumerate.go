// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enumerate implements the offline proof-enumeration procedure
// (spec.md §4.6): for a given binary exponent, it enumerates the finite
// set of doubles whose nearest decimal sits close enough to a
// representation boundary that an approximate shortest-decimal algorithm
// might get the last digit wrong. It is pure rational/big-integer
// arithmetic, built on github.com/cockroachdb/apd/v3's arbitrary-precision
// Decimal in place of the original's GMP mpz_t (original_source/test/proof.c),
// since apd is the arbitrary-precision numeric library available in this
// module's dependency stack.
//
// This package is offline-only: it allocates freely, is not reentrant-safe
// by any stronger guarantee than "don't share a *Params across goroutines
// without synchronization", and is never called from the runtime
// conversion paths in the errol package. It exists to drive cmd/errolgen.
package enumerate

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/apd/v3"
)

// prec is the working precision for every Decimal in this package. The
// quantities involved (residues mod tau, for p up to 52) fit comfortably
// within a few hundred decimal digits; this is generous headroom so that
// Add/Sub/Mul never round (Context.Add et al. on integers with Exponent 0
// are exact as long as the result's digit count stays under Precision).
const prec = 4096

// ctx is the exact-integer context every operation in this package uses:
// no traps, precision wide enough that integer add/sub/mul/quo never
// round, matching GMP mpz_t's "arithmetic doesn't round" semantics for
// the magnitudes this procedure deals with.
var ctx = apd.BaseContext.WithPrecision(prec)

// newInt builds an exact-integer Decimal from an int64.
func newInt(v int64) *apd.Decimal {
	return apd.New(v, 0)
}

func add(a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	if _, err := ctx.Add(r, a, b); err != nil {
		panic(err)
	}
	return r
}

func sub(a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	if _, err := ctx.Sub(r, a, b); err != nil {
		panic(err)
	}
	return r
}

func mulInt(a *apd.Decimal, k int64) *apd.Decimal {
	r := new(apd.Decimal)
	if _, err := ctx.Mul(r, a, newInt(k)); err != nil {
		panic(err)
	}
	return r
}

// mod returns a mod b in [0, |b|), using exact integer Rem and shifting a
// negative remainder up by |b|, the way mpz_mod keeps a non-negative residue.
func mod(a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	if _, err := ctx.Rem(r, a, b); err != nil {
		panic(err)
	}
	if r.Sign() < 0 {
		r = add(r, absDecimal(b))
	}
	return r
}

func absDecimal(a *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = ctx.Abs(r, a)
	return r
}

func cmpAbs(a, b *apd.Decimal) int {
	return absDecimal(a).Cmp(absDecimal(b))
}

// shift is a (index, value) pair in one of the up/down shift lists;
// list_t's struct shift_t in proof.c.
type shift struct {
	idx uint64
	val *apd.Decimal
}

// shiftList is a sorted-by-|val| append-only list of shifts; list_t in
// proof.c, minus the manual malloc/realloc bookkeeping.
type shiftList struct {
	items []shift
}

func (l *shiftList) add(idx uint64, val *apd.Decimal) {
	l.items = append(l.items, shift{idx, val})
}

func (l *shiftList) last() shift {
	return l.items[len(l.items)-1]
}

// smaller returns the first entry whose |val| is strictly less than
// |val|, binary-searching the descending-by-magnitude list; list_smaller
// in proof.c.
func (l *shiftList) smaller(val *apd.Decimal) (shift, bool) {
	lo, hi := 0, len(l.items)-1
	for lo <= hi {
		m := (lo + hi) / 2
		c := cmpAbs(l.items[m].val, val)
		switch {
		case c > 0:
			lo = m + 1
		case c < 0:
			hi = m - 1
		default:
			if m < len(l.items)-1 {
				return l.items[m+1], true
			}
			return shift{}, false
		}
	}
	if lo < len(l.items) {
		return l.items[lo], true
	}
	return shift{}, false
}

// atmost returns the first entry whose |val| is at most |val|; list_atmost
// in proof.c (the same search as smaller, except that an exact match is
// itself returned).
func (l *shiftList) atmost(val *apd.Decimal) (shift, bool) {
	lo, hi := 0, len(l.items)-1
	for lo <= hi {
		m := (lo + hi) / 2
		c := cmpAbs(l.items[m].val, val)
		switch {
		case c > 0:
			lo = m + 1
		case c < 0:
			hi = m - 1
		default:
			return l.items[m], true
		}
	}
	if lo < len(l.items) {
		return l.items[lo], true
	}
	return shift{}, false
}

// Params bundles the Diophantine-search parameters spec.md §4.6 step 1
// derives per binary exponent: delta is the candidate-region radius,
// alpha/tau/m0 parametrize the residue walk, and p bounds the index space
// to 2^p.
type Params struct {
	Delta *apd.Decimal
	Alpha *apd.Decimal
	Tau   *apd.Decimal
	M0    *apd.Decimal
	P     uint
}

// Enumerate runs the three phases of spec.md §4.6 (optimal list
// construction, search, exhaustive enumeration) and returns the sorted set
// of candidate indices, mirroring proof_enum in original_source/test/proof.c.
func Enumerate(p Params) ([]uint64, error) {
	up := &shiftList{}
	down := &shiftList{}

	t := mod(p.Alpha, p.Tau)
	up.add(1, t)
	down.add(1, sub(t, p.Tau))

	limit := uint64(1) << p.P
	var idx uint64
	var t2 *apd.Decimal
	for {
		var from, other *shiftList
		if up.last().idx <= down.last().idx {
			from, other = up, down
		} else {
			from, other = down, up
		}

		diff := sub(other.last().val, from.last().val)
		sh, ok := other.smaller(diff)
		if !ok {
			return nil, fmt.Errorf("enumerate: shift list exhausted during construction")
		}

		idx = from.last().idx + sh.idx
		t2 = add(from.last().val, sh.val)

		if t2.Sign() >= 0 {
			up.add(idx, t2)
		}
		if t2.Sign() <= 0 {
			down.add(idx, t2)
		}

		if idx >= limit || t2.Sign() == 0 {
			break
		}
	}

	// Search phase: walk the residue toward zero using the up/down shift
	// lists until it lands within delta of a representation boundary.
	idx = 0
	v := mod(p.M0, p.Tau)
	if alt := sub(v, p.Tau); cmpAbs(alt, v) < 0 {
		v = alt
	}

	var lastShiftOK bool
	for {
		if cmpAbs(v, p.Delta) <= 0 || idx >= limit {
			break
		}

		double := mulInt(v, 2)
		var sh shift
		var ok bool
		if v.Sign() < 0 {
			sh, ok = up.atmost(double)
		} else {
			sh, ok = down.atmost(double)
		}
		if !ok {
			lastShiftOK = false
			break
		}
		lastShiftOK = true

		idx += sh.idx
		v = add(v, sh.val)
	}

	var result []uint64
	if idx < limit && lastShiftOK {
		result = exhaust(up, down, idx, v, p.Delta, limit)
	}
	return result, nil
}

// exhaust performs the final recursive sweep of spec.md §4.6 step 4: from
// the search's landing point, apply every up/down shift whose magnitude
// keeps the residue within delta, visiting each reachable index once.
// This mirrors the set-growing loop in proof_enum (the `set_t` bookkeeping
// in proof.c), but returns only the sorted index list since that is all
// cmd/errolgen needs to materialize candidate doubles.
func exhaust(up, down *shiftList, idx0 uint64, v0 *apd.Decimal, delta *apd.Decimal, limit uint64) []uint64 {
	type point struct {
		idx uint64
		val *apd.Decimal
	}
	seen := map[uint64]bool{idx0: true}
	points := []point{{idx0, v0}}

	for i := 0; i < len(points); i++ {
		cur := points[i]

		for j := len(up.items) - 1; j >= 0; j-- {
			idx := cur.idx + up.items[j].idx
			if idx >= limit {
				continue
			}
			v := add(cur.val, up.items[j].val)
			if cmpAbs(v, delta) > 0 {
				break
			}
			if !seen[idx] {
				seen[idx] = true
				points = append(points, point{idx, v})
			}
		}

		for j := len(down.items) - 1; j >= 0; j-- {
			idx := cur.idx + down.items[j].idx
			if idx >= limit {
				continue
			}
			v := add(cur.val, down.items[j].val)
			if cmpAbs(v, delta) > 0 {
				break
			}
			if !seen[idx] {
				seen[idx] = true
				points = append(points, point{idx, v})
			}
		}
	}

	out := make([]uint64, len(points))
	for i, pt := range points {
		out[i] = pt.idx
	}
	slices.Sort(out)
	return out
}
