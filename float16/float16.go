// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package float16 implements conversions between float32 and the two
// 16-bit floating-point formats: IEEE-754 binary16 half precision (F16)
// and brain float (BF16).
package float16

import "github.com/alt-ml/precision/floatbits"

// F16 is an IEEE-754 binary16 half-precision value, represented as raw bits.
//
// Layout: 1 sign bit, 5 exponent bits (bias 15), 10 mantissa bits.
type F16 uint16

const (
	// scaleToInf is 0x1p+112 as binary32 bits. Multiplying |x| by it moves
	// the exponent up by 112, so any magnitude above the largest binary16
	// finite value (65504 = 0x1.ffcp+15) lands beyond the binary32 overflow
	// threshold and saturates to infinity in hardware.
	scaleToInf = 0x77800000
	// scaleToZero is 0x1p-110 as binary32 bits. The second multiplication
	// moves the exponent back down by 110, leaving a net shift of +2.
	// Magnitudes below the smallest binary16 subnormal (0x1p-24) underflow
	// here, and the hardware keeps the correctly rounded sticky bits.
	scaleToZero = 0x08800000

	// expClamp is the left-shifted-by-one exponent field of the smallest
	// magnitude that still rounds into a binary16 normal. Anything below
	// it is clamped so the rebias addition performs gradual underflow.
	expClamp = 0x71000000
	// expRebias shifts the clamped exponent into the position where adding
	// the scaled magnitude performs binary16 rounding: the sum's low bits
	// end up holding the rounded half-precision mantissa.
	expRebias = 0x07800000

	// quietNaN16 is the canonical binary16 quiet NaN magnitude.
	quietNaN16 = 0x7E00

	signMask32 = 0x80000000
)

// F16FromFloat32 converts value to binary16 with round-to-nearest-even.
//
// Magnitudes above the largest binary16 finite value saturate to infinity
// and magnitudes below the smallest binary16 subnormal flush to zero, both
// preserving the sign. Values between the normal and subnormal thresholds
// denormalize gradually. Any NaN input maps to the canonical quiet NaN
// magnitude 0x7E00 with the input's sign.
//
// Rounding happens in hardware: the magnitude is rescaled so that a single
// float32 addition of a rebiased exponent constant drops exactly the bits
// binary16 cannot hold, with IEEE round-to-nearest-even.
func F16FromFloat32(value float32) F16 {
	w := floatbits.Encode(value)
	shl1W := w + w
	sign := w & signMask32

	base := floatbits.Decode(w &^ signMask32) * floatbits.Decode(scaleToInf)
	base *= floatbits.Decode(scaleToZero)

	bias := shl1W & 0xFF000000
	if bias < expClamp {
		bias = expClamp
	}

	base = floatbits.Decode((bias>>1)+expRebias) + base
	bits := floatbits.Encode(base)
	expBits := (bits >> 13) & 0x00007C00
	mantissaBits := bits & 0x00000FFF
	nonSign := expBits + mantissaBits

	if shl1W > 0xFF000000 { // NaN input: exponent all ones, mantissa non-zero
		return F16(sign>>16 | quietNaN16)
	}
	return F16(sign>>16 | nonSign)
}

// F16FromBits returns the binary16 value corresponding to the raw bit
// pattern bits. F16FromBits(x).Bits() == x for every x.
func F16FromBits(bits uint16) F16 {
	return F16(bits)
}

// Float32 converts the binary16 value to float32. The conversion is exact:
// every binary16 value, including subnormals, infinities and NaNs, is
// representable in binary32.
func (f F16) Float32() float32 {
	w := uint32(f) << 16
	sign := w & signMask32
	shl1W := w + w

	// Normal path: shift the binary16 exponent and mantissa into binary32
	// position, then multiply by 0x1p-112 to undo the 0xE0 exponent offset
	// (224 added, 112 removed, for a net rebias of 127-15).
	const expOffset = uint32(0xE0) << 23
	expScale := floatbits.Decode(0x07800000) // 0x1p-112
	normalizedValue := floatbits.Decode((shl1W>>4)+expOffset) * expScale

	// Subnormal path: OR the mantissa bits into the float 0.5 and subtract
	// 0.5, so the hardware normalizes the result without an explicit
	// shift-and-count loop.
	const magicMask = uint32(126) << 23
	const magicBias = 0.5
	denormalizedValue := floatbits.Decode((shl1W>>17)|magicMask) - magicBias

	// Left-shifted-by-one patterns below 0x1p27 hold a binary16 zero or
	// subnormal; everything at or above is normal, infinity or NaN.
	const denormalizedCutoff = uint32(1) << 27
	var result uint32
	if shl1W < denormalizedCutoff {
		result = sign | floatbits.Encode(denormalizedValue)
	} else {
		result = sign | floatbits.Encode(normalizedValue)
	}
	return floatbits.Decode(result)
}

// Bits returns the raw binary16 bit pattern.
func (f F16) Bits() uint16 {
	return uint16(f)
}

// IsNaN reports whether f is a binary16 not-a-number value.
func (f F16) IsNaN() bool {
	return f&0x7C00 == 0x7C00 && f&0x03FF != 0
}

// IsInf reports whether f is a binary16 positive or negative infinity.
func (f F16) IsInf() bool {
	return f&0x7FFF == 0x7C00
}
