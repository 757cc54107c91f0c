// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package precision

import (
	"math"

	"github.com/alt-ml/precision/floatbits"
)

// abs32 returns the absolute value of x by clearing the sign bit.
func abs32(x float32) float32 {
	return floatbits.Decode(floatbits.Encode(x) &^ (1 << 31))
}

// max32 returns the larger of a and b.
func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// isNaN32 reports whether x is a not-a-number value.
func isNaN32(x float32) bool {
	return x != x
}

// isInf32 reports whether x is positive or negative infinity.
func isInf32(x float32) bool {
	return x > math.MaxFloat32 || x < -math.MaxFloat32
}
