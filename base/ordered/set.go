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

// Package ordered provides collections keeping the insertion order.
package ordered

import (
	"iter"
	"slices"
)

// Set of comparable elements iterated in insertion order.
type Set[T comparable] struct {
	in    map[T]bool
	elems []T
}

// NewSet returns a set with the given elements.
func NewSet[T comparable](elems ...T) *Set[T] {
	s := &Set[T]{in: make(map[T]bool)}
	for _, el := range elems {
		s.Add(el)
	}
	return s
}

// Add an element to the set.
// Returns false if the element was already in the set.
func (s *Set[T]) Add(el T) bool {
	if s.in[el] {
		return false
	}
	s.in[el] = true
	s.elems = append(s.elems, el)
	return true
}

// All returns an iterator over the elements in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, el := range s.elems {
			if !yield(el) {
				break
			}
		}
	}
}

// Slice returns a copy of the elements in insertion order.
func (s *Set[T]) Slice() []T {
	return slices.Collect(s.All())
}
