// Copyright 2024 The Alt-ML Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package precision

import "fmt"

// DataType identifies a floating-point data type.
type DataType uint8

const (
	// F32 represents the IEEE-754 binary32 single-precision type.
	F32 DataType = iota
	// F16 represents the IEEE-754 binary16 half-precision type.
	F16
	// BF16 represents the brain (16-bit) floating point type.
	BF16
	// F8 represents the extended 8-bit floating point type.
	F8
)

var (
	dataTypeToSize = [...]int{
		F32:  4,
		F16:  2,
		BF16: 2,
		F8:   1,
	}
	dataTypeToString = [...]string{
		F32:  "F32",
		F16:  "F16",
		BF16: "BF16",
		F8:   "F8",
	}
	dataTypeToJSON = [...][]byte{
		F32:  []byte(`"F32"`),
		F16:  []byte(`"F16"`),
		BF16: []byte(`"BF16"`),
		F8:   []byte(`"F8"`),
	}
	stringToDataType = map[string]DataType{
		"F32":  F32,
		"F16":  F16,
		"BF16": BF16,
		"F8":   F8,
	}
)

// Size returns the size in bytes of one encoded value of this data type.
// It panics if the DataType value is invalid.
func (dt DataType) Size() int {
	if dt >= DataType(len(dataTypeToSize)) {
		panic(fmt.Errorf("cannot get size of invalid DataType %d", dt))
	}
	return dataTypeToSize[dt]
}

// Bits returns the width in bits of one encoded value of this data type.
// It panics if the DataType value is invalid.
func (dt DataType) Bits() int {
	return dt.Size() * 8
}

// String representation of a DataType.
func (dt DataType) String() string {
	if dt >= DataType(len(dataTypeToString)) {
		panic(fmt.Errorf("cannot get string representation of invalid DataType %d", dt))
	}
	return dataTypeToString[dt]
}

func (dt DataType) MarshalJSON() ([]byte, error) {
	if dt >= DataType(len(dataTypeToJSON)) {
		return nil, fmt.Errorf("cannot get JSON string representation of invalid DataType %d", dt)
	}
	return dataTypeToJSON[dt], nil
}

// ParseDataType attempts to parse a DataType value from string.
func ParseDataType(s string) (DataType, error) {
	dt, ok := stringToDataType[s]
	if !ok {
		return 0, fmt.Errorf("invalid DataType string value %q", s)
	}
	return dt, nil
}
