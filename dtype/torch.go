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
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// torchNames maps the names of torch data types to data types.
var torchNames = map[string]DType{
	"float32":    Float32,
	"float":      Float32,
	"float64":    Float64,
	"double":     Float64,
	"complex64":  Complex64,
	"cfloat":     Complex64,
	"complex128": Complex128,
	"cdouble":    Complex128,
	"float16":    Float16,
	"half":       Float16,
	"bfloat16":   BFloat16,
	"uint8":      UInt8,
	"int8":       Int8,
	"int16":      Int16,
	"short":      Int16,
	"int32":      Int32,
	"int":        Int32,
	"int64":      Int64,
	"long":       Int64,
	"bool":       Bool,
}

// FromTorch returns the data type given the name of a torch data type, e.g. "float64".
func FromTorch(name string) (DType, error) {
	dt, ok := torchNames[name]
	if !ok {
		return Invalid, errors.Errorf("unsupported torch data type %q", name)
	}
	return dt, nil
}

// TorchNames returns the sorted names of the supported torch data types.
func TorchNames() []string {
	names := maps.Keys(torchNames)
	slices.Sort(names)
	return names
}

// castMethods maps tensor conversion methods, e.g. x.half(), to their target data type.
var castMethods = map[string]DType{
	"half":     Float16,
	"bfloat16": BFloat16,
	"float":    Float32,
	"double":   Float64,
	"short":    Int16,
	"int":      Int32,
	"long":     Int64,
}

// CastTarget returns the data type a conversion method converts to.
func CastTarget(method string) (DType, bool) {
	dt, ok := castMethods[method]
	return dt, ok
}

// CastMethods returns the sorted names of the conversion methods.
func CastMethods() []string {
	methods := maps.Keys(castMethods)
	slices.Sort(methods)
	return methods
}
