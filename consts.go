// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

// MinNormal is the smallest positive normal float64, 2^-1022. Inputs below
// this (subnormals) are out of scope for the core conversion routines; see
// the package doc comment.
const MinNormal = 2.2250738585072014e-308

// Magnitude thresholds separating the three conversion paths. These are
// exact binary floats, not decimal approximations: intLo is exactly 2^53,
// intHi is exactly 2^128, and fixedLo is exactly 16. The decimal literals
// 1.80143985094820e+16 and 3.40282366920938e+38 of the original C source
// do not round to these values (the first is near 2^54, the second lies a
// few ulps below 2^128), so they are not used here.
const (
	fixedLo = 16.0                   // 2^4: below this, floatConvert handles it directly
	intLo   = 9.007199254740992e+15  // 2^53: fixedConvert's upper bound, intConvert's lower bound
	intHi   = 0x1p128                // 2^128: intConvert's upper bound
)
