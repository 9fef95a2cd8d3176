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

package dtype

import (
	backend "github.com/gx-org/backend/dtype"
	"github.com/pkg/errors"
)

var toBackend = map[DType]backend.DataType{
	Bool:     backend.Bool,
	Int32:    backend.Int32,
	Int64:    backend.Int64,
	UInt32:   backend.Uint32,
	UInt64:   backend.Uint64,
	BFloat16: backend.Bfloat16,
	Float32:  backend.Float32,
	Float64:  backend.Float64,
}

// ToBackend converts a concrete data type into a backend data type.
// Returns an error if the backend does not support the data type.
func ToBackend(dt DType) (backend.DataType, error) {
	if dt.IsFamily() {
		return backend.Invalid, errors.Errorf("cannot convert family %s to a backend data type: a concrete data type is required", dt)
	}
	bdt, ok := toBackend[dt]
	if !ok {
		return backend.Invalid, errors.Errorf("data type %s not supported by the backend", dt)
	}
	return bdt, nil
}
