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

package fmterr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Reason explains why a shape specification could not be parsed.
type Reason int

// Reasons for a parse error.
const (
	// CommaSeparator is reported when axes are separated with commas instead of spaces.
	CommaSeparator Reason = iota + 1
	// LegacyBroadcast is reported for the old `foo#` broadcast syntax.
	LegacyBroadcast
	// DuplicateModifier is reported when a modifier appears twice in an axis, e.g. `##foo`.
	DuplicateModifier
	// FixedModifier is reported when a fixed axis is marked anonymous or variadic.
	FixedModifier
	// SymbolicModifier is reported when a symbolic axis is marked anonymous or variadic.
	SymbolicModifier
	// AnonymousBroadcast is reported for an axis both anonymous and broadcastable, e.g. `#_`.
	AnonymousBroadcast
	// MultipleVariadic is reported when more than one axis of a shape is variadic.
	MultipleVariadic
	// MalformedEllipsis is reported when `...` is not used on its own.
	MalformedEllipsis
	// MalformedAlias is reported for an invalid `name=value` axis.
	MalformedAlias
	// SizeOverflow is reported when a fixed size does not fit in an int.
	SizeOverflow
)

// String returns a description of the reason.
func (r Reason) String() string {
	switch r {
	case CommaSeparator:
		return "axes should be separated with spaces, not commas"
	case LegacyBroadcast:
		return "broadcastable axes are denoted with a # at the start, rather than at the end"
	case DuplicateModifier:
		return "modifier used twice in the same axis"
	case FixedModifier:
		return "a fixed axis cannot be anonymous, variadic or depend on a tree path"
	case SymbolicModifier:
		return "a symbolic axis cannot be anonymous, variadic or depend on a tree path"
	case AnonymousBroadcast:
		return "an axis cannot be both anonymous and broadcastable"
	case MultipleVariadic:
		return "cannot use variadic specifiers (`*name` or `...`) more than once"
	case MalformedEllipsis:
		return "anonymous multiple axes '...' must be used on its own"
	case MalformedAlias:
		return "an axis alias must be written name=value"
	case SizeOverflow:
		return "axis length is too large"
	}
	return "invalid reason"
}

// ParseError is returned when a shape specification is malformed.
type ParseError struct {
	// Spec is the full shape specification.
	Spec string
	// Index of the offending token in the specification.
	Index int
	// Token is the offending token.
	Token string
	// Reason the token has been rejected.
	Reason Reason
	// Modifier is the modifier at fault, if any.
	Modifier rune

	err error
}

// NewParseError returns a new parse error recording the stack of the caller.
func NewParseError(spec string, index int, token string, reason Reason) *ParseError {
	return &ParseError{
		Spec:   spec,
		Index:  index,
		Token:  token,
		Reason: reason,
		err:    errors.New(reason.String()),
	}
}

// WithModifier sets the modifier at fault.
func (err *ParseError) WithModifier(mod rune) *ParseError {
	err.Modifier = mod
	return err
}

// Error returns a string description of the error.
func (err *ParseError) Error() string {
	var s strings.Builder
	fmt.Fprintf(&s, "invalid shape %q: axis %d %q: %s", err.Spec, err.Index, err.Token, err.Reason)
	if err.Modifier != 0 {
		fmt.Fprintf(&s, " (modifier %q)", err.Modifier)
	}
	return s.String()
}

// Unwrap returns the error carrying the stack trace.
func (err *ParseError) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
func (err *ParseError) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}

// Feature not supported by the parser.
type Feature int

// Features recognised by the grammar but not supported.
const (
	// SymbolicAxis is an axis given by an expression, e.g. `dim-1`.
	SymbolicAxis Feature = iota + 1
	// TreePath is an axis depending on its location in a tree, e.g. `?foo`.
	TreePath
	// MixedVariadic is a shape combining `...` with `*name`.
	MixedVariadic
)

// String returns a description of the feature.
func (f Feature) String() string {
	switch f {
	case SymbolicAxis:
		return "symbolic axes are not supported"
	case TreePath:
		return "tree path dependence is not supported"
	case MixedVariadic:
		return "combining `...` with `*name` is not supported"
	}
	return "invalid feature"
}

// UnsupportedError is returned when a shape specification uses a feature
// that is part of the grammar but is not implemented.
type UnsupportedError struct {
	Spec    string
	Index   int
	Token   string
	Feature Feature

	err error
}

// NewUnsupportedError returns a new error for an unsupported feature.
func NewUnsupportedError(spec string, index int, token string, feature Feature) *UnsupportedError {
	return &UnsupportedError{
		Spec:    spec,
		Index:   index,
		Token:   token,
		Feature: feature,
		err:     errors.New(feature.String()),
	}
}

// Error returns a string description of the error.
func (err *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported shape %q: axis %d %q: %s", err.Spec, err.Index, err.Token, err.Feature)
}

// Unwrap returns the error carrying the stack trace.
func (err *UnsupportedError) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
func (err *UnsupportedError) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}
