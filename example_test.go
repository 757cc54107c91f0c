// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package precision_test

import (
	"fmt"

	"github.com/alt-ml/precision"
	"github.com/alt-ml/precision/float16"
)

func ExampleIsClose() {
	fmt.Println(precision.IsClose(1.0, 1.0001, 1e-3, 0))
	fmt.Println(precision.IsClose(1.0, 1.1, 1e-3, 0))

	// Output:
	// true
	// false
}

func ExampleEncodeSlice() {
	weights := []float32{1, -2, 0.5}

	data := precision.EncodeSlice(precision.F16, weights)
	fmt.Printf("% X\n", data)

	restored, err := precision.DecodeSlice(precision.F16, data)
	if err != nil {
		panic(err)
	}
	fmt.Println(restored)

	// Output:
	// 00 3C 00 C0 00 38
	// [1 -2 0.5]
}

func Example_halfPrecision() {
	h := float16.F16FromFloat32(1.0)
	fmt.Printf("0x%04X\n", h.Bits())
	fmt.Println(h.Float32())

	// Output:
	// 0x3C00
	// 1
}

func ExampleFormatOf() {
	f := precision.FormatOf(precision.F8)
	fmt.Println(f.ExponentBits, f.MantissaBits, f.ExponentBias)
	fmt.Println(f.MaxFinite)

	// Output:
	// 4 3 7
	// 240
}
