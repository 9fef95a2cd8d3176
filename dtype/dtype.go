// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dtype defines the element types of annotated arrays,
// how they promote to each other and how abstract families expand.
package dtype

import (
	"github.com/pkg/errors"
)

// DType is an element type of an array.
// It is either a concrete data type or an abstract family of data types.
type DType uint8

// Concrete data types.
const (
	Invalid DType = iota

	Bool

	Int2
	Int4
	Int8
	Int16
	Int32
	Int64

	UInt2
	UInt4
	UInt8
	UInt16
	UInt32
	UInt64

	Float8e4m3b11fnuz
	Float8e4m3fn
	Float8e4m3fnuz
	Float8e5m2
	Float8e5m2fnuz
	BFloat16
	Float16
	Float32
	Float64

	Complex64
	Complex128

	// Key is a pseudo-random number generator key.
	Key

	// firstFamily is the first abstract family.
	firstFamily
)

// Abstract families of data types.
const (
	UInt DType = iota + firstFamily
	Int
	Integer
	Float
	Complex
	Inexact
	Real
	Num
	// Shaped is any data type.
	Shaped

	maxDType
)

var names = [...]string{
	Invalid:           "Invalid",
	Bool:              "Bool",
	Int2:              "Int2",
	Int4:              "Int4",
	Int8:              "Int8",
	Int16:             "Int16",
	Int32:             "Int32",
	Int64:             "Int64",
	UInt2:             "UInt2",
	UInt4:             "UInt4",
	UInt8:             "UInt8",
	UInt16:            "UInt16",
	UInt32:            "UInt32",
	UInt64:            "UInt64",
	Float8e4m3b11fnuz: "Float8e4m3b11fnuz",
	Float8e4m3fn:      "Float8e4m3fn",
	Float8e4m3fnuz:    "Float8e4m3fnuz",
	Float8e5m2:        "Float8e5m2",
	Float8e5m2fnuz:    "Float8e5m2fnuz",
	BFloat16:          "BFloat16",
	Float16:           "Float16",
	Float32:           "Float32",
	Float64:           "Float64",
	Complex64:         "Complex64",
	Complex128:        "Complex128",
	Key:               "Key",
	UInt:              "UInt",
	Int:               "Int",
	Integer:           "Integer",
	Float:             "Float",
	Complex:           "Complex",
	Inexact:           "Inexact",
	Real:              "Real",
	Num:               "Num",
	Shaped:            "Shaped",
}

var byName = func() map[string]DType {
	m := make(map[string]DType, len(names))
	for dt := Bool; dt < maxDType; dt++ {
		m[names[dt]] = dt
	}
	return m
}()

// Parse returns the data type given its annotation name, e.g. "Float32" or "Integer".
func Parse(name string) (DType, error) {
	dt, ok := byName[name]
	if !ok {
		return Invalid, errors.Errorf("unknown data type %q", name)
	}
	return dt, nil
}

// String returns the annotation name of the data type.
func (dt DType) String() string {
	if dt >= maxDType {
		return "Invalid"
	}
	return names[dt]
}

// IsValid returns true if the data type is a known concrete type or family.
func (dt DType) IsValid() bool {
	return dt > Invalid && dt < maxDType
}

// IsFamily returns true if the data type is an abstract family.
func (dt DType) IsFamily() bool {
	return dt >= firstFamily && dt < maxDType
}

// Concrete returns all the concrete data types.
func Concrete() []DType {
	all := make([]DType, 0, firstFamily-Bool)
	for dt := Bool; dt < firstFamily; dt++ {
		all = append(all, dt)
	}
	return all
}
