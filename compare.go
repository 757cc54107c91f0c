// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package precision

import "math"

// DefaultRelativeTolerance is a relative tolerance suited to comparing
// values that went through a 16-bit round trip.
const DefaultRelativeTolerance float32 = 1e-3

// IsClose reports whether a and b are numerically indistinguishable
// within the given tolerances.
//
// Exactly equal values compare close, including signed zeros and two
// infinities of the same sign. If either value is NaN, or the values are
// infinities of opposite sign, the result is false. Everything else goes
// through the inequality |a-b| <= max(relative*max(|a|, |b|), absolute),
// so an infinity and a finite value compare close whenever the relative
// tolerance is non-zero.
func IsClose(a, b, relative, absolute float32) bool {
	if a == b {
		return true
	}
	if isNaN32(a) || isNaN32(b) {
		return false
	}
	if isInf32(a) && isInf32(b) { // opposite signs, same-sign pairs are equal
		return false
	}
	return abs32(a-b) <= max32(relative*max32(abs32(a), abs32(b)), absolute)
}

// IsCloseDigits reports whether a and b agree to the given number of
// significant digits. It is IsClose with a relative tolerance of
// 10^-digits and an absolute tolerance of zero.
func IsCloseDigits(a, b float32, digits int) bool {
	return IsClose(a, b, float32(math.Pow(10, -float64(digits))), 0)
}
