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

// Package fmterr defines the errors reported when reading shape and dtype annotations.
package fmterr

import (
	"fmt"
)

// Internal marks an error as internal, potentially adding additional information.
func Internal(err error) error {
	return fmt.Errorf("shaping internal error. This is a bug. Please report it. Error:\n%+v", err)
}

// Internalf returns a formatted internal error.
func Internalf(format string, a ...any) error {
	return Internal(ToStackTraceError(fmt.Errorf(format, a...)))
}

// PrefixWith returns a function prefixing errors with a formatted string.
func PrefixWith(s string, o ...any) func(err error) error {
	return func(err error) error {
		return fmt.Errorf("%s%w", fmt.Sprintf(s, o...), err)
	}
}
