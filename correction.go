// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import "rsc.io/tmp/errol/internal/leveltable"

// correctionLookup searches the level-order correction table for v's bit
// pattern and reports the correct (digits, exp) pair on a hit. It mirrors
// err_search/the bsearch call in errol3_dtoa from
// original_source/lib/errol.c, but walks the implicit level-order tree
// described in spec.md §4.5 via internal/leveltable instead of a plain
// sorted-array binary search, since correctionBits is stored in
// level-order (Eytzinger) layout rather than sorted order.
func correctionLookup(bits uint64) (leveltable.Entry, bool) {
	return leveltable.Lookup(correctionBits, correctionEntries, bits)
}
