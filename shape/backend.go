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

import (
	bdtype "github.com/gx-org/backend/dtype"
	bshape "github.com/gx-org/backend/shape"
	"github.com/pkg/errors"
)

// ToBackend returns the backend shape of an array with a given data type.
// All the axes of the shape need to be fixed.
func ToBackend(dt bdtype.DataType, s Shape) (*bshape.Shape, error) {
	sizes, ok := s.Sizes()
	if !ok {
		return nil, errors.Errorf("cannot materialise shape %q: all axes need to have a fixed length", s.String())
	}
	return &bshape.Shape{
		DType:       dt,
		AxisLengths: sizes,
	}, nil
}
