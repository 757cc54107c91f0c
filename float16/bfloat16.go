// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import "github.com/alt-ml/precision/floatbits"

// BF16 is a brain floating-point value, represented as raw bits.
//
// Layout: 1 sign bit, 8 exponent bits (bias 127), 7 mantissa bits — the
// high half of a binary32 pattern, so it covers the full float32 exponent
// range with reduced precision.
type BF16 uint16

const (
	// quietBitBF16 is the quiet bit of a truncated NaN: the most
	// significant of the 7 kept mantissa bits.
	quietBitBF16 = 0x0040

	exponentMask32 = 0x7F800000
)

// BF16FromFloat32 converts value to brain float.
//
// The result is the high 16 bits of the binary32 pattern, rounded to
// nearest with ties to even over the 16 discarded bits. NaN inputs keep
// their sign and are forced quiet by setting the kept mantissa's top bit.
// Subnormal inputs flush to zero with the sign preserved; brain float
// subnormals are never produced.
func BF16FromFloat32(value float32) BF16 {
	bits := floatbits.Encode(value)

	if bits&^uint32(signMask32) > exponentMask32 { // NaN
		return BF16(bits>>16) | quietBitBF16
	}
	if bits&exponentMask32 == 0 { // zero or subnormal
		return BF16(bits >> 16 & 0x8000)
	}

	// Round to nearest even: adding 0x7FFF rounds up when the discarded
	// bits exceed the halfway point, and adding the kept mantissa's low
	// bit on top breaks exact ties toward the even neighbor. A carry out
	// of the exponent saturates to infinity.
	rounding := uint32(0x7FFF) + (bits >> 16 & 1)
	return BF16((bits + rounding) >> 16)
}

// BF16FromBits returns the brain float value corresponding to the raw bit
// pattern bits. BF16FromBits(x).Bits() == x for every x.
func BF16FromBits(bits uint16) BF16 {
	return BF16(bits)
}

// Float32 converts the brain float value to float32 by shifting it into
// the high half of a binary32 pattern. Infinities and NaNs decode to the
// corresponding float32 values. Patterns with an all-zero exponent field
// decode to signed zero.
func (b BF16) Float32() float32 {
	w := uint32(b) << 16
	if w&exponentMask32 == 0 {
		return floatbits.Decode(w & signMask32)
	}
	return floatbits.Decode(w)
}

// Bits returns the raw brain float bit pattern.
func (b BF16) Bits() uint16 {
	return uint16(b)
}

// IsNaN reports whether b is a brain float not-a-number value.
func (b BF16) IsNaN() bool {
	return b&0x7F80 == 0x7F80 && b&0x007F != 0
}

// IsInf reports whether b is a brain float positive or negative infinity.
func (b BF16) IsInf() bool {
	return b&0x7FFF == 0x7F80
}
