// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatbits provides the bit-level reinterpretation between float32
// values and their IEEE-754 binary32 representation.
//
// Every reduced-precision codec in this module routes through these two
// functions, keeping the float-to-bits transmute in a single place.
package floatbits

import "math"

// Encode returns the IEEE-754 binary32 bit pattern of value.
// The 32 bits are reinterpreted with no numeric transformation: NaN
// payloads, signed zeros, infinities and subnormals all pass through
// unchanged.
func Encode(value float32) uint32 {
	return math.Float32bits(value)
}

// Decode returns the float32 value represented by the IEEE-754 binary32
// bit pattern bits. It is the exact inverse of Encode:
// Decode(Encode(x)) == x bit-for-bit for every x.
func Decode(bits uint32) float32 {
	return math.Float32frombits(bits)
}
