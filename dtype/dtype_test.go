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
	"testing"

	"github.com/gx-org/shaping/dtype"
)

func TestParse(t *testing.T) {
	for _, dt := range append(dtype.Concrete(), dtype.Families()...) {
		got, err := dtype.Parse(dt.String())
		if err != nil {
			t.Errorf("cannot parse %s: %v", dt, err)
			continue
		}
		if got != dt {
			t.Errorf("Parse(%q) = %s but want %s", dt.String(), got, dt)
		}
	}
	for _, name := range []string{"", "float32", "Int3", "Invalid"} {
		if _, err := dtype.Parse(name); err == nil {
			t.Errorf("Parse(%q): expected an error", name)
		}
	}
}

func TestIsFamily(t *testing.T) {
	tests := []struct {
		dt     dtype.DType
		family bool
	}{
		{dt: dtype.Bool},
		{dt: dtype.Int64},
		{dt: dtype.Complex128},
		{dt: dtype.Key},
		{dt: dtype.UInt, family: true},
		{dt: dtype.Integer, family: true},
		{dt: dtype.Shaped, family: true},
	}
	for _, test := range tests {
		if got := test.dt.IsFamily(); got != test.family {
			t.Errorf("%s.IsFamily() = %t but want %t", test.dt, got, test.family)
		}
	}
	if dtype.Invalid.IsValid() {
		t.Errorf("Invalid.IsValid() = true")
	}
}
