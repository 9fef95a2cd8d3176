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

package dtype

import "github.com/gx-org/shaping/fmterr"

// Promotion is the result of comparing two data types.
type Promotion int

const (
	// Incompatible data types cannot be combined.
	Incompatible Promotion = iota
	// Same data types.
	Same
	// ToX means that the second data type promotes to the first one.
	ToX
	// ToY means that the first data type promotes to the second one.
	ToY
)

// String returns a description of the promotion.
func (p Promotion) String() string {
	switch p {
	case Same:
		return "same"
	case ToX:
		return "promote to x"
	case ToY:
		return "promote to y"
	}
	return "incompatible"
}

// ladder orders the data types that can be implicitly widened.
// Complex, 8-bit floats and keys are not on the ladder.
var ladder = []DType{
	Bool,
	Int2, UInt2,
	Int4, UInt4,
	Int8, UInt8,
	Int16, UInt16,
	Int32, UInt32,
	Int64, UInt64,
	BFloat16, Float16,
	Float32,
	Float64,
}

var ranks = func() map[DType]int {
	m := make(map[DType]int, len(ladder))
	for i, dt := range ladder {
		m[dt] = i
	}
	return m
}()

// Rank returns the position of a data type in the promotion order.
// Returns false if the data type is not ordered.
func Rank(dt DType) (int, bool) {
	r, ok := ranks[dt]
	return r, ok
}

// Compare two data types.
func Compare(x, y DType) Promotion {
	rx, xOk := Rank(x)
	ry, yOk := Rank(y)
	if !xOk || !yOk {
		if x == y && x.IsValid() {
			return Same
		}
		return Incompatible
	}
	switch {
	case rx < ry:
		return ToY
	case rx > ry:
		return ToX
	}
	return Same
}

// Promote returns the data type two operands promote to.
func Promote(x, y DType) (DType, error) {
	switch Compare(x, y) {
	case Same, ToX:
		return x, nil
	case ToY:
		return y, nil
	}
	return Invalid, &fmterr.Incompatible{
		Stage: fmterr.DtypeMismatch,
		X:     x.String(),
		Y:     y.String(),
	}
}
