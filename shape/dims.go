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

// Package shape parses, compares and prints array shape annotations.
//
// A shape annotation is a space separated list of axes, for example:
//
//	"batch #channels 224 224"
//	"*batch _ 3"
//	"... rows=3 cols=4"
package shape

import "strconv"

// Dim is an axis of a shape.
// The set of implementations is closed: Fixed, Named, Anonymous,
// NamedVariadic, AnonymousVariadic and Symbolic.
type Dim interface {
	dim()

	// Variadic returns true if the axis binds to zero or more axes.
	Variadic() bool

	// String returns the canonical representation of the axis.
	String() string
}

type (
	// Fixed is an axis with a known length, e.g. "224".
	Fixed struct {
		Size int
	}

	// Named is an axis identified by its name, e.g. "batch" or "#batch".
	Named struct {
		Name          string
		Broadcastable bool
	}

	// Anonymous is an axis of any length, e.g. "_" or "_batch".
	Anonymous struct{}

	// NamedVariadic binds a name to zero or more axes, e.g. "*batch".
	NamedVariadic struct {
		Name          string
		Broadcastable bool
	}

	// AnonymousVariadic matches zero or more axes, e.g. "..." or "*_".
	AnonymousVariadic struct{}

	// Symbolic is an axis computed from an expression, e.g. "dim-1".
	// It is not supported by the parser.
	Symbolic struct {
		Expr          string
		Broadcastable bool
	}
)

var (
	_ Dim = Fixed{}
	_ Dim = Named{}
	_ Dim = Anonymous{}
	_ Dim = NamedVariadic{}
	_ Dim = AnonymousVariadic{}
	_ Dim = Symbolic{}
)

func (Fixed) dim()             {}
func (Named) dim()             {}
func (Anonymous) dim()         {}
func (NamedVariadic) dim()     {}
func (AnonymousVariadic) dim() {}
func (Symbolic) dim()          {}

// Variadic returns false.
func (Fixed) Variadic() bool { return false }

// Variadic returns false.
func (Named) Variadic() bool { return false }

// Variadic returns false.
func (Anonymous) Variadic() bool { return false }

// Variadic returns true.
func (NamedVariadic) Variadic() bool { return true }

// Variadic returns true.
func (AnonymousVariadic) Variadic() bool { return true }

// Variadic returns false.
func (Symbolic) Variadic() bool { return false }

func (d Fixed) String() string {
	return strconv.Itoa(d.Size)
}

func (d Named) String() string {
	if d.Broadcastable {
		return "#" + d.Name
	}
	return d.Name
}

func (Anonymous) String() string {
	return "_"
}

// String returns the name prefixed with "*".
// Broadcastability is not printed.
func (d NamedVariadic) String() string {
	return "*" + d.Name
}

func (AnonymousVariadic) String() string {
	return "..."
}

func (d Symbolic) String() string {
	if d.Broadcastable {
		return "#" + d.Expr
	}
	return d.Expr
}
