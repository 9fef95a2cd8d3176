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

	"github.com/pkg/errors"
)

// Stage of the binary operation pipeline at which two operands mismatched.
type Stage int

// Stages of the pipeline, in the order in which they are checked.
const (
	BackendMismatch Stage = iota + 1
	DtypeMismatch
	ShapeMismatch
)

// String returns a capitalised name of the stage.
func (s Stage) String() string {
	switch s {
	case BackendMismatch:
		return "Backend"
	case DtypeMismatch:
		return "Type"
	case ShapeMismatch:
		return "Shape"
	}
	return "Unknown"
}

// Incompatible reports that two operands cannot be combined.
// It is an expected outcome and is returned as a value.
type Incompatible struct {
	Stage Stage
	// X and Y are the string representations of the operands.
	X, Y string
}

// Error returns a string description of the error.
func (err *Incompatible) Error() string {
	return fmt.Sprintf("%s mismatch. self: %s vs other: %s", err.Stage, err.X, err.Y)
}

// IsStage returns true if the error is an incompatibility at the given stage.
func IsStage(err error, stage Stage) bool {
	var inc *Incompatible
	if !errors.As(err, &inc) {
		return false
	}
	return inc.Stage == stage
}
