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

// Write encodes each value of src as dt and writes the packed
// little-endian result to w.
func Write(w io.Writer, dt DataType, src []float32) error {
	bw := bufio.NewWriter(w)

	var err error
	switch dt {
	case F32:
		err = writeF32Data(bw, src)
	case F16:
		err = writeF16Data(bw, src)
	case BF16:
		err = writeBF16Data(bw, src)
	case F8:
		err = writeF8Data(bw, src)
	default:
		return fmt.Errorf("invalid or unsupported DataType %d", dt)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s data: %w", dt, err)
	}
	return bw.Flush()
}

// EncodeSlice encodes src as dt, returning the packed little-endian bytes.
// It panics if the DataType value is invalid.
func EncodeSlice(dt DataType, src []float32) []byte {
	out := make([]byte, 0, len(src)*dt.Size())
	switch dt {
	case F16:
		for _, v := range src {
			out = binary.LittleEndian.AppendUint16(out, float16.F16FromFloat32(v).Bits())
		}
	case BF16:
		for _, v := range src {
			out = binary.LittleEndian.AppendUint16(out, float16.BF16FromFloat32(v).Bits())
		}
	case F8:
		for _, v := range src {
			out = append(out, float8.FromFloat32(v).Bits())
		}
	default:
		for _, v := range src {
			out = binary.LittleEndian.AppendUint32(out, floatbits.Encode(v))
		}
	}
	return out
}

func writeF32Data(w io.Writer, src []float32) error {
	var arr [4]byte
	buf := arr[:]

	for _, v := range src {
		binary.LittleEndian.PutUint32(buf, floatbits.Encode(v))
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func writeF16Data(w io.Writer, src []float32) error {
	var arr [2]byte
	buf := arr[:]

	for _, v := range src {
		binary.LittleEndian.PutUint16(buf, float16.F16FromFloat32(v).Bits())
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func writeBF16Data(w io.Writer, src []float32) error {
	var arr [2]byte
	buf := arr[:]

	for _, v := range src {
		binary.LittleEndian.PutUint16(buf, float16.BF16FromFloat32(v).Bits())
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func writeF8Data(w io.Writer, src []float32) error {
	var arr [1]byte
	buf := arr[:]

	for _, v := range src {
		arr[0] = float8.FromFloat32(v).Bits()
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
