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

package annotation

import (
	"fmt"

	"github.com/gx-org/shaping/dtype"
	"github.com/gx-org/shaping/fmterr"
	"github.com/gx-org/shaping/shape"
	"github.com/pkg/errors"
)

// OpKind groups binary operators by how they compute their result type.
type OpKind int

const (
	// Arithmetic operators promote their operands to a common data type.
	Arithmetic OpKind = iota + 1
	// Comparison operators return booleans.
	Comparison
	// InPlace operators update their left operand.
	InPlace
)

// Op is a binary operator identified by its method name, e.g. "__add__".
type Op struct {
	Name string
	Kind OpKind
}

var ops = func() map[string]Op {
	m := make(map[string]Op)
	add := func(kind OpKind, names ...string) {
		for _, name := range names {
			m[name] = Op{Name: name, Kind: kind}
		}
	}
	add(Arithmetic,
		"__add__", "__radd__",
		"__sub__", "__rsub__",
		"__mul__", "__rmul__",
		"__pow__",
		"__div__", "__rdiv__",
	)
	add(Comparison, "__eq__", "__ne__", "__lt__", "__le__", "__gt__", "__ge__")
	add(InPlace, "__iadd__", "__isub__", "__imul__", "__ipow__", "__idiv__")
	return m
}()

// LookupOp returns the operator given its method name.
func LookupOp(name string) (Op, bool) {
	op, ok := ops[name]
	return op, ok
}

// Result of a binary operation.
type Result struct {
	// Types of the result. More than one type is a union.
	// Empty if the operation is invalid.
	Types []Type
	// Notes are informational messages, e.g. about implicit conversions.
	Notes []string
	// Err is the reason the operation is invalid.
	Err error
}

// Type returns the type of the result or Unknown if the result is not a single type.
func (r Result) Type() Type {
	if len(r.Types) != 1 {
		return Unknown
	}
	return r.Types[0]
}

func (r Result) fail(stage fmterr.Stage, x, y Type) Result {
	r.Types = nil
	r.Err = &fmterr.Incompatible{Stage: stage, X: x.String(), Y: y.String()}
	return r
}

func (r *Result) notef(format string, a ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, a...))
}

// Binary computes the type of `x op y`.
// Checks stop at the first mismatch: backend, then data type, then shape.
func Binary(op Op, x, y Type) Result {
	var r Result
	if x.IsUnknown() || y.IsUnknown() {
		return r
	}
	if x.Backend != y.Backend {
		// TODO: some backends can be mixed, e.g. torch and numpy.
		return r.fail(fmterr.BackendMismatch, x, y)
	}
	promotion := dtype.Compare(x.DType, y.DType)
	if promotion == dtype.Incompatible {
		return r.fail(fmterr.DtypeMismatch, x, y)
	}
	var z dtype.DType
	switch op.Kind {
	case Arithmetic:
		z = x.DType
		if promotion == dtype.ToY {
			z = y.DType
		}
		if x.DType != z {
			r.notef("Implicit dtype conversion of self: %s -> %s", x.DType, z)
		}
		if y.DType != z {
			r.notef("Implicit dtype conversion of other: %s -> %s", y.DType, z)
		}
	case Comparison:
		z = dtype.Bool
	case InPlace:
		if promotion == dtype.ToY {
			// The left operand cannot change its data type.
			return r.fail(fmterr.DtypeMismatch, x, y)
		}
		if promotion == dtype.ToX {
			r.notef("Implicit dtype conversion in update: other: %s -> self: %s", y.DType, x.DType)
		}
		z = x.DType
	default:
		r.Err = fmterr.Internalf("operator %q has no kind", op.Name)
		return r
	}
	zs, ok := shape.Check(x.Shape, y.Shape, true)
	if !ok {
		return r.fail(fmterr.ShapeMismatch, x, y)
	}
	if op.Kind == InPlace && !zs.Equal(x.Shape) {
		return r.fail(fmterr.ShapeMismatch, x, y)
	}
	types, err := Instantiate(z, x.Backend, zs)
	if err != nil {
		r.Err = err
		return r
	}
	r.Types = types
	return r
}

// BinaryByName computes the type of a binary operation given the operator method name.
func BinaryByName(name string, x, y Type) Result {
	op, ok := LookupOp(name)
	if !ok {
		return Result{Err: errors.Errorf("unknown binary operator %q", name)}
	}
	return Binary(op, x, y)
}
