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

import "github.com/gx-org/shaping/fmterr"

// Check returns the shape resulting from combining two shapes.
// When allowBroadcast is true, the shorter shape is aligned on the trailing axes
// of the longer one and axes of length 1 broadcast to the axis they face.
// Returns false if the shapes are incompatible.
func Check(xs, ys Shape, allowBroadcast bool) (Shape, bool) {
	if len(ys) > len(xs) {
		xs, ys = ys, xs
	}
	if len(xs) != len(ys) {
		if !allowBroadcast {
			return nil, false
		}
		ys = padLeft(ys, len(xs))
	}
	u := unifier{
		broadcast: allowBroadcast,
		xVariadic: xs.VariadicIndex(),
		yVariadic: ys.VariadicIndex(),
	}
	zs := make(Shape, len(xs))
	for i, x := range xs {
		z, ok := u.unify(x, ys[i])
		if !ok {
			return nil, false
		}
		zs[i] = z
	}
	return zs, true
}

// Unify returns the shape resulting from combining two shapes
// or an error describing the mismatch.
func Unify(xs, ys Shape, allowBroadcast bool) (Shape, error) {
	zs, ok := Check(xs, ys, allowBroadcast)
	if !ok {
		return nil, &fmterr.Incompatible{
			Stage: fmterr.ShapeMismatch,
			X:     xs.String(),
			Y:     ys.String(),
		}
	}
	return zs, nil
}

func padLeft(s Shape, n int) Shape {
	padded := make(Shape, 0, n)
	for range n - len(s) {
		padded = append(padded, Fixed{Size: 1})
	}
	return append(padded, s...)
}

type unifier struct {
	broadcast bool
	// Position of the variadic axis in each shape after padding, -1 if none.
	xVariadic, yVariadic int
}

// isOne returns true if the axis has length 1 and broadcasting is enabled.
func (u unifier) isOne(d Dim) bool {
	fixed, ok := d.(Fixed)
	return ok && u.broadcast && fixed.Size == 1
}

// unify two axes facing each other.
// x is an axis of the longer shape, y is the facing axis of the other shape.
func (u unifier) unify(x, y Dim) (Dim, bool) {
	switch xT := x.(type) {
	case Anonymous:
		return u.unifyAnonymous(y)
	case AnonymousVariadic:
		if _, ok := y.(AnonymousVariadic); ok {
			return x, true
		}
		return nil, false
	case Named:
		return u.unifyNamed(xT, y)
	case NamedVariadic:
		return u.unifyNamedVariadic(xT, y)
	case Fixed:
		if u.isOne(xT) {
			return u.unifyOne(y)
		}
		return u.unifyFixed(xT, y)
	case Symbolic:
		return u.unifySymbolic(xT, y)
	}
	return nil, false
}

func (u unifier) unifyAnonymous(y Dim) (Dim, bool) {
	if _, ok := y.(Anonymous); ok {
		return Anonymous{}, true
	}
	if u.isOne(y) {
		return Anonymous{}, true
	}
	return nil, false
}

func (u unifier) unifyNamed(x Named, y Dim) (Dim, bool) {
	switch yT := y.(type) {
	case Anonymous:
		return Anonymous{}, true
	case Named:
		if x.Name != yT.Name {
			return nil, false
		}
		return x, true
	}
	if u.isOne(y) {
		return x, true
	}
	return nil, false
}

func (u unifier) unifyNamedVariadic(x NamedVariadic, y Dim) (Dim, bool) {
	if yT, ok := y.(NamedVariadic); ok {
		if x.Name != yT.Name {
			return nil, false
		}
		return x, true
	}
	if u.isOne(y) && u.xVariadic == 0 {
		return x, true
	}
	return nil, false
}

// unifyOne unifies an axis of length 1 with broadcasting enabled.
func (u unifier) unifyOne(y Dim) (Dim, bool) {
	switch yT := y.(type) {
	case Anonymous:
		return Anonymous{}, true
	case AnonymousVariadic, NamedVariadic:
		// Only a leading variadic axis can absorb a broadcast axis.
		if u.yVariadic != 0 {
			return nil, false
		}
		return y, true
	case Named:
		return y, true
	case Fixed:
		return yT, true
	}
	return nil, false
}

func (u unifier) unifyFixed(x Fixed, y Dim) (Dim, bool) {
	switch yT := y.(type) {
	case Anonymous:
		return Anonymous{}, true
	case Fixed:
		if u.isOne(yT) || x.Size == yT.Size {
			return x, true
		}
	}
	return nil, false
}

func (u unifier) unifySymbolic(x Symbolic, y Dim) (Dim, bool) {
	switch yT := y.(type) {
	case Anonymous:
		return Anonymous{}, true
	case Symbolic:
		if x.Expr != yT.Expr {
			return nil, false
		}
		return x, true
	}
	if u.isOne(y) {
		return x, true
	}
	return nil, false
}
