// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package precision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var isCloseTests = []struct {
	name               string
	a, b               float32
	relative, absolute float32
	want               bool
}{
	{"equal values", 1.5, 1.5, 0, 0, true},
	{"signed zeros", 0, float32(math.Copysign(0, -1)), 0, 0, true},
	{"within relative tolerance", 1.0, 1.0001, 1e-3, 0, true},
	{"outside relative tolerance", 1.0, 1.1, 1e-3, 0, false},
	{"within absolute tolerance", 0, 1e-6, 0, 1e-5, true},
	{"outside absolute tolerance", 0, 1e-4, 0, 1e-5, false},
	{"relative scales with magnitude", 1000, 1000.5, 1e-3, 0, true},
	{"zero tolerances", 1.0, 1.0000001, 0, 0, false},
	{"same positive infinity", float32(math.Inf(1)), float32(math.Inf(1)), 1e-3, 0, true},
	{"same negative infinity", float32(math.Inf(-1)), float32(math.Inf(-1)), 1e-3, 0, true},
	{"opposite infinities", float32(math.Inf(1)), float32(math.Inf(-1)), 1e-3, 0, false},
	{"infinity vs finite", float32(math.Inf(1)), 3.4028235e38, 1e-3, 0, true},
	{"infinity vs finite, zero relative", float32(math.Inf(1)), 3.4028235e38, 0, 1e6, false},
	{"NaN left", float32(math.NaN()), 1, 1e-3, 1e3, false},
	{"NaN right", 1, float32(math.NaN()), 1e-3, 1e3, false},
	{"NaN both", float32(math.NaN()), float32(math.NaN()), 1e-3, 1e3, false},
}

func TestIsClose(t *testing.T) {
	for _, tc := range isCloseTests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsClose(tc.a, tc.b, tc.relative, tc.absolute))
		})
	}
}

func TestIsClose_Symmetry(t *testing.T) {
	for _, tc := range isCloseTests {
		assert.Equal(t,
			IsClose(tc.a, tc.b, tc.relative, tc.absolute),
			IsClose(tc.b, tc.a, tc.relative, tc.absolute),
			"a=%v b=%v", tc.a, tc.b)
	}
}

// Values surviving a half-precision round trip must compare close under
// the default tolerance.
func TestIsClose_HalfPrecisionRoundTrip(t *testing.T) {
	values := []float32{1, -1, 0.1, 3.14159, 1000, -6.25e-3}
	for _, v := range values {
		got, err := DecodeSlice(F16, EncodeSlice(F16, []float32{v}))
		assert.NoError(t, err)
		assert.True(t, IsClose(v, got[0], DefaultRelativeTolerance, 0), "value %v", v)
	}
}

func TestIsCloseDigits(t *testing.T) {
	assert.True(t, IsCloseDigits(1.0, 1.0001, 3))
	assert.False(t, IsCloseDigits(1.0, 1.1, 3))
	assert.True(t, IsCloseDigits(1.0, 1.1, 0))
	assert.False(t, IsCloseDigits(1.0, 1.0001, 6))
	assert.False(t, IsCloseDigits(float32(math.NaN()), float32(math.NaN()), 1))
}
