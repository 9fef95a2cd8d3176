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
	"strings"

	"github.com/gx-org/shaping/fmterr"
)

// Lint parses a list of annotations, one per line.
// Empty lines and lines starting with "//" are skipped.
// Returns all the errors found, each prefixed with its line number.
func Lint(lines []string) ([]Type, error) {
	var errs fmterr.Errors
	var types []Type
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		errs.Push(fmterr.PrefixWith("line %d: ", i+1))
		t, err := Parse(line)
		errs.Append(err)
		errs.Pop()
		if err == nil {
			types = append(types, t)
		}
	}
	return types, errs.ToError()
}
