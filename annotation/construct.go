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
	"slices"

	"github.com/gx-org/shaping/dtype"
	"github.com/gx-org/shaping/shape"
	"github.com/pkg/errors"
)

// Cast returns the type of x after calling a conversion method, e.g. x.half().
func Cast(method string, x Type) ([]Type, error) {
	target, ok := dtype.CastTarget(method)
	if !ok {
		return nil, errors.Errorf("unknown conversion method %q: want one of %v", method, dtype.CastMethods())
	}
	if x.IsUnknown() {
		return nil, errors.Errorf("cannot convert an array of unknown type")
	}
	return Instantiate(target, x.Backend, x.Shape)
}

var constructors = []string{
	"empty",
	"full",
	"ones",
	"rand",
	"randint",
	"randn",
	"zeros",
}

// IsConstructor returns true if name is a function creating an array from its sizes, e.g. "randn".
func IsConstructor(name string) bool {
	_, found := slices.BinarySearch(constructors, name)
	return found
}

// FromSizes returns the type of an array created by a constructor given the length
// of its axes and, optionally, the name of its torch data type.
// The data type defaults to Float32.
func FromSizes(sizes []int, torchDType string) ([]Type, error) {
	for i, size := range sizes {
		if size < 0 {
			return nil, errors.Errorf("axis %d has a negative length %d", i, size)
		}
	}
	dt := dtype.Float32
	if torchDType != "" {
		var err error
		if dt, err = dtype.FromTorch(torchDType); err != nil {
			return nil, err
		}
	}
	return Instantiate(dt, DefaultBackend, shape.FromSizes(sizes...))
}
