// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errol converts an IEEE-754 double to the shortest decimal digit
// string that round-trips back to the same binary value, using the Errol
// family of algorithms (Tolf & Persson).
//
// The entry points are [ConvertShortest], which uses a precomputed
// correction table to guarantee the output is the shortest possible
// round-trip representation, and [ConvertEmbedded], a simpler
// table-free variant for constrained targets that is always correct
// (it round-trips) but may occasionally be one digit longer than
// shortest. [ConvertOptimal] is a third entry point that, like
// ConvertEmbedded, does not use the correction table, and that reports via its third
// result whether its output is guaranteed shortest so a caller can
// fall back to an oracle algorithm when it isn't.
//
// All three functions require v to be a positive, finite, non-NaN
// double with v >= [MinNormal]. Callers are expected to strip the
// sign, special-case zero, and reject NaN/Inf/subnormal inputs before
// calling in; see the package-level preconditions on each function
// for details.
//
// The digit-generation algorithms assume IEEE-754 round-to-nearest-even
// arithmetic and the platform's default floating-point exception
// behavior; they do not run correctly under a non-default rounding mode.
package errol
