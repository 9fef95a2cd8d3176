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

// Package stringseq joins sequences of values into strings.
package stringseq

import (
	"fmt"
	"iter"
	"strings"
)

// Join concatenates the string representations of the elements of a sequence.
// sep is placed between elements.
func Join[T fmt.Stringer](seq iter.Seq[T], sep string) string {
	var b strings.Builder
	n := 0
	for item := range seq {
		if n > 0 {
			b.WriteString(sep)
		}
		b.WriteString(item.String())
		n++
	}
	return b.String()
}
