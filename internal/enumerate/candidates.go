// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumerate

import "math"

// Candidates reconstructs the enumerated indices for binary exponent e
// back into the doubles they represent, per spec.md §4.6 step 5: each
// index idx becomes 2^e + idx*2^(e-52), together with its immediate
// successor idx+1 (the original notes both the candidate and "the
// adjacent double" are reconstructed, since a boundary failure can belong
// to either neighbor of the representation it's closest to).
func Candidates(e int, indices []uint64) []float64 {
	base := math.Ldexp(1, e)
	ulp := math.Ldexp(1, e-52)

	out := make([]float64, 0, 2*len(indices))
	seen := make(map[float64]bool, 2*len(indices))
	add := func(v float64) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, idx := range indices {
		add(base + float64(idx)*ulp)
		add(base + float64(idx+1)*ulp)
	}
	return out
}
