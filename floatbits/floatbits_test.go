// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatbits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var roundTripBits = []struct {
	name string
	bits uint32
}{
	{"positive zero", 0x00000000},
	{"negative zero", 0x80000000},
	{"one", 0x3F800000},
	{"negative two", 0xC0000000},
	{"smallest subnormal", 0x00000001},
	{"largest subnormal", 0x007FFFFF},
	{"smallest normal", 0x00800000},
	{"largest finite", 0x7F7FFFFF},
	{"positive infinity", 0x7F800000},
	{"negative infinity", 0xFF800000},
	{"quiet NaN", 0x7FC00000},
	{"quiet NaN with payload", 0x7FC00123},
	{"signaling NaN pattern", 0x7F800001},
	{"negative NaN", 0xFFC00456},
}

func TestEncode(t *testing.T) {
	assert.Equal(t, uint32(0x3F800000), Encode(1))
	assert.Equal(t, uint32(0xC0000000), Encode(-2))
	assert.Equal(t, uint32(0x7F800000), Encode(float32(math.Inf(1))))
	assert.Equal(t, uint32(0xFF800000), Encode(float32(math.Inf(-1))))
	assert.Equal(t, uint32(0x80000000), Encode(float32(math.Copysign(0, -1))))
}

func TestDecode(t *testing.T) {
	assert.Equal(t, float32(1), Decode(0x3F800000))
	assert.Equal(t, float32(-2), Decode(0xC0000000))
	assert.True(t, math.IsInf(float64(Decode(0x7F800000)), 1))
	assert.True(t, math.IsInf(float64(Decode(0xFF800000)), -1))
	assert.True(t, math.IsNaN(float64(Decode(0x7FC00000))))
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range roundTripBits {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.bits, Encode(Decode(tc.bits)))
		})
	}
}

func TestRoundTripValues(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, 1e-45, 3.4028235e38, 1e10, -1e-10}
	for _, v := range values {
		assert.Equal(t, v, Decode(Encode(v)))
	}
}
