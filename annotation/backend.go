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
	bshape "github.com/gx-org/backend/shape"
	"github.com/gx-org/shaping/dtype"
	"github.com/gx-org/shaping/shape"
	"github.com/pkg/errors"
)

// Materialise returns the backend shape of an annotated type.
// The type needs a concrete data type supported by the backend and fixed axes.
func Materialise(t Type) (*bshape.Shape, error) {
	dt, err := dtype.ToBackend(t.DType)
	if err != nil {
		return nil, errors.WithMessagef(err, "cannot materialise %s", t)
	}
	return shape.ToBackend(dt, t.Shape)
}
