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

package shape

import (
	"slices"

	"github.com/gx-org/shaping/base/stringseq"
)

// Shape is an ordered list of axes.
// A shape has at most one variadic axis.
type Shape []Dim

// String returns the canonical representation of the shape.
func (s Shape) String() string {
	return stringseq.Join(slices.Values(s), " ")
}

// Serialize returns the canonical representation of a shape.
func Serialize(s Shape) string {
	return s.String()
}

// VariadicIndex returns the position of the variadic axis or -1 if the shape has none.
func (s Shape) VariadicIndex() int {
	for i, d := range s {
		if d.Variadic() {
			return i
		}
	}
	return -1
}

// Equal returns true if both shapes have the same axes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, d := range s {
		if d != other[i] {
			return false
		}
	}
	return true
}

// Sizes returns the length of all the axes.
// Returns false if one axis is not fixed.
func (s Shape) Sizes() ([]int, bool) {
	sizes := make([]int, len(s))
	for i, d := range s {
		fixed, ok := d.(Fixed)
		if !ok {
			return nil, false
		}
		sizes[i] = fixed.Size
	}
	return sizes, true
}

// FromSizes returns a shape with fixed axes.
func FromSizes(sizes ...int) Shape {
	s := make(Shape, len(sizes))
	for i, size := range sizes {
		s[i] = Fixed{Size: size}
	}
	return s
}
