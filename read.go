// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package precision

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/alt-ml/precision/float16"
	"github.com/alt-ml/precision/float8"
	"github.com/alt-ml/precision/floatbits"
)

// Read reads n values encoded as dt from r, decoding each one to float32.
// Values are expected packed back to back in little-endian byte order, as
// produced by Write.
func Read(r io.Reader, dt DataType, n int) ([]float32, error) {
	switch dt {
	case F32, F16, BF16, F8:
	default:
		return nil, fmt.Errorf("invalid or unsupported DataType %d", dt)
	}

	br := bufio.NewReader(io.LimitReader(r, int64(n)*int64(dt.Size())))
	switch dt {
	case F16:
		return readF16Data(br, n)
	case BF16:
		return readBF16Data(br, n)
	case F8:
		return readF8Data(br, n)
	}
	return readF32Data(br, n)
}

// DecodeSlice decodes data, a packed little-endian buffer of values
// encoded as dt, to float32 values.
func DecodeSlice(dt DataType, data []byte) ([]float32, error) {
	switch dt {
	case F32, F16, BF16, F8:
	default:
		return nil, fmt.Errorf("invalid or unsupported DataType %d", dt)
	}
	size := dt.Size()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%s data length %d is not a multiple of %d", dt, len(data), size)
	}

	out := make([]float32, len(data)/size)
	switch dt {
	case F16:
		for i := range out {
			out[i] = float16.F16FromBits(binary.LittleEndian.Uint16(data[i*2:])).Float32()
		}
	case BF16:
		for i := range out {
			out[i] = float16.BF16FromBits(binary.LittleEndian.Uint16(data[i*2:])).Float32()
		}
	case F8:
		for i := range out {
			out[i] = float8.FromBits(data[i]).Float32()
		}
	default:
		for i := range out {
			out[i] = floatbits.Decode(binary.LittleEndian.Uint32(data[i*4:]))
		}
	}
	return out, nil
}

func readF32Data(r io.Reader, n int) ([]float32, error) {
	var arr [4]byte
	buf := arr[:]

	out := make([]float32, n)
	for i := range out {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("failed to read F32 data: %w", err)
		}
		out[i] = floatbits.Decode(binary.LittleEndian.Uint32(buf))
	}
	return out, nil
}

func readF16Data(r io.Reader, n int) ([]float32, error) {
	var arr [2]byte
	buf := arr[:]

	out := make([]float32, n)
	for i := range out {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("failed to read F16 data: %w", err)
		}
		out[i] = float16.F16FromBits(binary.LittleEndian.Uint16(buf)).Float32()
	}
	return out, nil
}

func readBF16Data(r io.Reader, n int) ([]float32, error) {
	var arr [2]byte
	buf := arr[:]

	out := make([]float32, n)
	for i := range out {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("failed to read BF16 data: %w", err)
		}
		out[i] = float16.BF16FromBits(binary.LittleEndian.Uint16(buf)).Float32()
	}
	return out, nil
}

func readF8Data(r io.Reader, n int) ([]float32, error) {
	var arr [1]byte
	buf := arr[:]

	out := make([]float32, n)
	for i := range out {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("failed to read F8 data: %w", err)
		}
		out[i] = float8.FromBits(arr[0]).Float32()
	}
	return out, nil
}
