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

// Package annotation reads annotated array types, e.g. Float32[Tensor, "3 224 224"],
// and computes the types resulting from operations between them.
package annotation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gx-org/shaping/base/stringseq"
	"github.com/gx-org/shaping/dtype"
	"github.com/gx-org/shaping/shape"
	"github.com/pkg/errors"
)

// DefaultBackend is the backend of arrays created by tensor constructors.
const DefaultBackend = "Tensor"

// Type is an annotated array type: a data type, a backend and a shape.
type Type struct {
	DType   dtype.DType
	Backend string
	Shape   shape.Shape
}

// Unknown is returned when a type cannot be determined.
// Subsequent analysis should not report errors for unknown types.
var Unknown = Type{}

// New returns a new annotated type given a shape specification.
func New(dt dtype.DType, backend, spec string) (Type, error) {
	if !dt.IsValid() {
		return Unknown, errors.Errorf("invalid data type")
	}
	if backend == "" {
		return Unknown, errors.Errorf("missing backend")
	}
	s, err := shape.Parse(spec)
	if err != nil {
		return Unknown, err
	}
	return Type{DType: dt, Backend: backend, Shape: s}, nil
}

// IsUnknown returns true if the type could not be determined.
func (t Type) IsUnknown() bool {
	return !t.DType.IsValid()
}

// Equal returns true if both types are the same.
func (t Type) Equal(other Type) bool {
	return t.DType == other.DType && t.Backend == other.Backend && t.Shape.Equal(other.Shape)
}

// String representation of the type, e.g. Float32[Tensor, '3 224 224'].
func (t Type) String() string {
	if t.IsUnknown() {
		return "unknown"
	}
	return fmt.Sprintf("%s[%s, '%s']", t.DType, t.Backend, t.Shape)
}

// Parse an annotation of the form Dtype[Backend, "shape"].
// The shape can be quoted with single or double quotes.
func Parse(text string) (Type, error) {
	text = strings.TrimSpace(text)
	open := strings.IndexByte(text, '[')
	if open < 0 || !strings.HasSuffix(text, "]") {
		return Unknown, errors.Errorf("invalid annotation %q: want Dtype[Backend, \"shape\"]", text)
	}
	dt, err := dtype.Parse(strings.TrimSpace(text[:open]))
	if err != nil {
		return Unknown, errors.Wrapf(err, "invalid annotation %q", text)
	}
	backend, spec, ok := strings.Cut(text[open+1:len(text)-1], ",")
	if !ok {
		return Unknown, errors.Errorf("invalid annotation %q: missing shape", text)
	}
	backend = strings.TrimSpace(backend)
	spec, err = unquote(strings.TrimSpace(spec))
	if err != nil {
		return Unknown, errors.Wrapf(err, "invalid annotation %q", text)
	}
	return New(dt, backend, spec)
}

func unquote(s string) (string, error) {
	if len(s) < 2 {
		return "", errors.Errorf("shape %s is not quoted", s)
	}
	quote := s[0]
	if (quote != '"' && quote != '\'') || s[len(s)-1] != quote {
		return "", errors.Errorf("shape %s is not quoted", s)
	}
	return s[1 : len(s)-1], nil
}

// Instantiate returns the types of an array with the given data type, backend and shape.
// A concrete data type returns a single type. A family returns the union of
// the types of all its concrete members.
func Instantiate(dt dtype.DType, backend string, s shape.Shape) ([]Type, error) {
	leaves, err := dtype.Expand(dt)
	if err != nil {
		return nil, err
	}
	types := make([]Type, len(leaves))
	for i, leaf := range leaves {
		types[i] = Type{DType: leaf, Backend: backend, Shape: s}
	}
	return types, nil
}

// Union returns the string representation of a union of types.
func Union(types []Type) string {
	return stringseq.Join(slices.Values(types), " | ")
}
