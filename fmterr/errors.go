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

	"go.uber.org/multierr"
)

type contextError struct {
	f    func(error) error
	errs error
}

// Errors accumulates errors, possibly within nested contexts.
type Errors struct {
	stack []contextError
	errs  error
}

// Push a new context in the error stack.
// Errors appended until the next call to Pop are transformed by f.
func (errs *Errors) Push(f func(error) error) {
	errs.stack = append(errs.stack, contextError{f: f})
}

// Pop removes the last context from the stack.
func (errs *Errors) Pop() {
	last := errs.stack[len(errs.stack)-1]
	errs.stack = errs.stack[:len(errs.stack)-1]
	for _, err := range multierr.Errors(last.errs) {
		errs.Append(last.f(err))
	}
}

// Append an error to the set. A nil error is ignored.
// Always returns false so that a failing function can return the result of Append.
func (errs *Errors) Append(err error) bool {
	if err == nil {
		return false
	}
	if len(errs.stack) == 0 {
		errs.errs = multierr.Append(errs.errs, err)
	} else {
		last := &errs.stack[len(errs.stack)-1]
		last.errs = multierr.Append(last.errs, err)
	}
	return false
}

// Empty returns true if no error has been appended.
func (errs *Errors) Empty() bool {
	if errs.errs != nil {
		return false
	}
	for _, st := range errs.stack {
		if st.errs != nil {
			return false
		}
	}
	return true
}

// Errors returns all the errors, including those of contexts that have not been popped.
func (errs *Errors) Errors() []error {
	all := multierr.Errors(errs.errs)
	for _, st := range errs.stack {
		for _, err := range multierr.Errors(st.errs) {
			all = append(all, st.f(err))
		}
	}
	return all
}

// ToError returns the errors as a single error or nil if no error has been appended.
func (errs *Errors) ToError() error {
	if errs == nil || errs.Empty() {
		return nil
	}
	return multierr.Combine(errs.Errors()...)
}

// Error returns all the errors, one per line.
func (errs *Errors) Error() string {
	var ss []string
	for _, err := range errs.Errors() {
		ss = append(ss, err.Error())
	}
	return strings.Join(ss, "\n")
}

// Format writes all the errors into the state of the formatter.
func (errs *Errors) Format(s fmt.State, verb rune) {
	flag := ""
	if s.Flag('+') {
		flag = "+"
	}
	for _, e := range errs.Errors() {
		format := fmt.Sprintf("%%%s%s\n", flag, string(verb))
		fmt.Fprintf(s, format, e)
	}
}

// String representation of the errors.
func (errs *Errors) String() string {
	return errs.Error()
}
