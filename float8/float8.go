// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package float8 implements conversions between float32 and an extended
// 8-bit floating-point format.
//
// Layout: 1 sign bit, 4 exponent bits (bias 7), 3 mantissa bits.
// An all-ones exponent field encodes infinity (mantissa zero) or NaN
// (mantissa non-zero); an all-zero exponent field encodes zero (mantissa
// zero) or a subnormal (mantissa non-zero). The largest finite magnitude
// is 240 = 0x1.ep+7, the smallest normal 0x1p-6 and the smallest
// subnormal 0x1p-9.
package float8

import "github.com/alt-ml/precision/floatbits"

// F8 is an extended 8-bit floating-point value, represented as raw bits.
type F8 uint8

const (
	signMask8     = 0x80
	exponentMask8 = 0x78
	mantissaMask8 = 0x07
	exponentBias8 = 7

	// infBits8 is the positive infinity magnitude: exponent all ones,
	// mantissa zero.
	infBits8 = 0x78
	// quietNaN8 is the canonical quiet NaN magnitude: exponent all ones,
	// top mantissa bit set.
	quietNaN8 = 0x7C

	signMask32     = 0x80000000
	exponentMask32 = 0x7F800000
	mantissaMask32 = 0x007FFFFF

	// The binary32 mantissa keeps its top 3 bits (shifted down by 20);
	// bit 19 is the rounding bit and bits 0-18 are sticky.
	mantissaShift8 = 20
	roundBit8      = 1 << 19
	keptLowBit8    = 1 << 20
	stickyMask8    = keptLowBit8 | (roundBit8 - 1)
)

// FromFloat32 converts value to the 8-bit format with round-to-nearest-even.
//
// Magnitudes above the largest finite value (240) saturate to infinity and
// magnitudes below half the smallest subnormal flush to zero, both
// preserving the sign. Values below the normal threshold are denormalized:
// the implicit leading bit is restored and the mantissa shifted right by
// the exponent deficit. NaN inputs map to the canonical quiet NaN
// magnitude 0x7C with the input's sign.
func FromFloat32(value float32) F8 {
	bits := floatbits.Encode(value)
	sign := uint8(bits >> 24 & signMask8)

	if bits&exponentMask32 == exponentMask32 { // infinity or NaN
		if bits&mantissaMask32 != 0 {
			return F8(sign | quietNaN8)
		}
		return F8(sign | infBits8)
	}

	exp := int(bits>>23&0xFF) - 127 + exponentBias8
	mantissa := bits & mantissaMask32

	if exp >= 15 { // above the finite exponent range
		return F8(sign | infBits8)
	}

	if exp <= 0 {
		if exp < -3 { // rounds to zero even from the subnormal ULP below
			return F8(sign)
		}
		// Gradual underflow: restore the implicit bit, shift by the
		// exponent deficit, then round to nearest even. The bits shifted
		// out stay sticky.
		shift := uint(1 - exp)
		mantissa |= 0x800000
		sticky := mantissa & (1<<shift - 1)
		mantissa >>= shift
		if mantissa&roundBit8 != 0 && (mantissa&stickyMask8 != 0 || sticky != 0) {
			mantissa += keptLowBit8
		}
		return F8(sign | uint8(mantissa>>mantissaShift8))
	}

	if mantissa&roundBit8 != 0 && mantissa&stickyMask8 != 0 {
		mantissa += keptLowBit8
		if mantissa&0x800000 != 0 { // carry into the exponent
			mantissa = 0
			exp++
			if exp >= 15 {
				return F8(sign | infBits8)
			}
		}
	}
	return F8(sign | uint8(exp)<<3 | uint8(mantissa>>mantissaShift8))
}

// FromBits returns the 8-bit float corresponding to the raw bit pattern
// bits. FromBits(x).Bits() == x for every x.
func FromBits(bits uint8) F8 {
	return F8(bits)
}

// Float32 converts the 8-bit float to float32. The conversion is exact:
// every 8-bit value, including subnormals, infinities and NaNs, is
// representable in binary32.
func (f F8) Float32() float32 {
	sign := uint32(f&signMask8) << 24
	exp := int(f >> 3 & 0x0F)
	mantissa := uint32(f & mantissaMask8)

	switch {
	case exp == 0x0F: // infinity or NaN
		if mantissa != 0 {
			return floatbits.Decode(sign | 0x7FC00000 | mantissa<<mantissaShift8)
		}
		return floatbits.Decode(sign | exponentMask32)
	case exp == 0:
		if mantissa == 0 {
			return floatbits.Decode(sign)
		}
		// Normalize the subnormal: shift until the implicit bit surfaces.
		exp = 1
		for mantissa&0x08 == 0 {
			mantissa <<= 1
			exp--
		}
		mantissa &= mantissaMask8
		exp += 127 - exponentBias8
	default:
		exp += 127 - exponentBias8
	}
	return floatbits.Decode(sign | uint32(exp)<<23 | mantissa<<mantissaShift8)
}

// Bits returns the raw 8-bit float pattern.
func (f F8) Bits() uint8 {
	return uint8(f)
}

// IsNaN reports whether f is an 8-bit float not-a-number value.
func (f F8) IsNaN() bool {
	return f&exponentMask8 == exponentMask8 && f&mantissaMask8 != 0
}

// IsInf reports whether f is an 8-bit float positive or negative infinity.
func (f F8) IsInf() bool {
	return f&0x7F == infBits8
}
