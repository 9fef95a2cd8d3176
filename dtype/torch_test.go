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

package dtype_test

import (
	"slices"
	"testing"

	"github.com/gx-org/shaping/dtype"
)

func TestFromTorch(t *testing.T) {
	tests := map[string]dtype.DType{
		"float":   dtype.Float32,
		"double":  dtype.Float64,
		"cdouble": dtype.Complex128,
		"half":    dtype.Float16,
		"long":    dtype.Int64,
		"bool":    dtype.Bool,
		"uint8":   dtype.UInt8,
	}
	for name, want := range tests {
		got, err := dtype.FromTorch(name)
		if err != nil {
			t.Errorf("FromTorch(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("FromTorch(%q) = %s but want %s", name, got, want)
		}
	}
	if _, err := dtype.FromTorch("quint8"); err == nil {
		t.Errorf("FromTorch(quint8): expected an error")
	}
	names := dtype.TorchNames()
	if !slices.IsSorted(names) || !slices.Contains(names, "bfloat16") {
		t.Errorf("unexpected torch names: %v", names)
	}
}

func TestCastTarget(t *testing.T) {
	for _, method := range dtype.CastMethods() {
		if _, ok := dtype.CastTarget(method); !ok {
			t.Errorf("no target for cast method %s", method)
		}
	}
	if got, _ := dtype.CastTarget("long"); got != dtype.Int64 {
		t.Errorf("CastTarget(long) = %s but want Int64", got)
	}
	if _, ok := dtype.CastTarget("cfloat"); ok {
		t.Errorf("cfloat is not a cast method")
	}
}

func TestToBackend(t *testing.T) {
	for _, dt := range []dtype.DType{dtype.Bool, dtype.Int32, dtype.Int64, dtype.UInt32, dtype.UInt64, dtype.BFloat16, dtype.Float32, dtype.Float64} {
		if _, err := dtype.ToBackend(dt); err != nil {
			t.Errorf("ToBackend(%s): %v", dt, err)
		}
	}
	for _, dt := range []dtype.DType{dtype.Int4, dtype.Complex64, dtype.Float, dtype.Key} {
		if _, err := dtype.ToBackend(dt); err == nil {
			t.Errorf("ToBackend(%s): expected an error", dt)
		}
	}
}
