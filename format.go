// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package precision

import "fmt"

// Format describes the bit layout and range of a floating-point data type.
//
// For every format, an all-ones exponent field encodes infinity (mantissa
// zero) or NaN (mantissa non-zero), and an all-zero exponent field encodes
// zero (mantissa zero) or a subnormal (mantissa non-zero).
type Format struct {
	// SignBits is the number of sign bits (always 1).
	SignBits int
	// ExponentBits is the width of the exponent field.
	ExponentBits int
	// MantissaBits is the width of the stored mantissa, excluding the
	// implicit leading bit.
	MantissaBits int
	// ExponentBias is the offset added to the true exponent so it can be
	// stored as an unsigned field.
	ExponentBias int
	// MinExponent is the smallest unbiased exponent of a normal value.
	MinExponent int
	// MaxExponent is the largest unbiased exponent of a finite value.
	MaxExponent int
	// MaxFinite is the largest finite magnitude.
	MaxFinite float32
	// MinPositive is the smallest positive magnitude the codec produces.
	// For BF16 this is the smallest normal, since the codec flushes
	// subnormals to zero; for all other types it is the smallest
	// subnormal.
	MinPositive float32
}

var dataTypeToFormat = [...]Format{
	F32: {
		SignBits:     1,
		ExponentBits: 8,
		MantissaBits: 23,
		ExponentBias: 127,
		MinExponent:  -126,
		MaxExponent:  127,
		MaxFinite:    0x1.fffffep+127,
		MinPositive:  0x1p-149,
	},
	F16: {
		SignBits:     1,
		ExponentBits: 5,
		MantissaBits: 10,
		ExponentBias: 15,
		MinExponent:  -14,
		MaxExponent:  15,
		MaxFinite:    65504,
		MinPositive:  0x1p-24,
	},
	BF16: {
		SignBits:     1,
		ExponentBits: 8,
		MantissaBits: 7,
		ExponentBias: 127,
		MinExponent:  -126,
		MaxExponent:  127,
		MaxFinite:    0x1.fep+127,
		MinPositive:  0x1p-126,
	},
	F8: {
		SignBits:     1,
		ExponentBits: 4,
		MantissaBits: 3,
		ExponentBias: 7,
		MinExponent:  -6,
		MaxExponent:  7,
		MaxFinite:    240,
		MinPositive:  0x1p-9,
	},
}

// FormatOf returns the Format describing the given data type.
// It panics if the DataType value is invalid.
func FormatOf(dt DataType) Format {
	if dt >= DataType(len(dataTypeToFormat)) {
		panic(fmt.Errorf("cannot get format of invalid DataType %d", dt))
	}
	return dataTypeToFormat[dt]
}
