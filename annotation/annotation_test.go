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

package annotation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/shaping/annotation"
	"github.com/gx-org/shaping/dtype"
	"github.com/gx-org/shaping/fmterr"
	"github.com/gx-org/shaping/shape"
	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want annotation.Type
	}{
		{
			text: `Float64[Tensor, "3 224 224"]`,
			want: annotation.Type{
				DType:   dtype.Float64,
				Backend: "Tensor",
				Shape:   shape.FromSizes(3, 224, 224),
			},
		},
		{
			text: `  Integer[Array,'batch _']  `,
			want: annotation.Type{
				DType:   dtype.Integer,
				Backend: "Array",
				Shape:   shape.Shape{shape.Named{Name: "batch"}, shape.Anonymous{}},
			},
		},
		{
			text: `Bool[Tensor, ""]`,
			want: annotation.Type{
				DType:   dtype.Bool,
				Backend: "Tensor",
				Shape:   shape.Shape{},
			},
		},
	}
	for _, test := range tests {
		got, err := annotation.Parse(test.text)
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.text, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("unexpected type for %q (-want +got):\n%s", test.text, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"Float32",
		`Float32[Tensor]`,
		`Float33[Tensor, "3"]`,
		`Float32[Tensor, 3]`,
		`Float32[Tensor, "3']`,
		`Float32[, "3"]`,
		`Float32[Tensor, "a,b"]`,
	} {
		if _, err := annotation.Parse(text); err == nil {
			t.Errorf("%q: expected an error", text)
		}
	}
}

func TestString(t *testing.T) {
	typ, err := annotation.New(dtype.Float32, "Tensor", "#b  3")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := typ.String(), "Float32[Tensor, '#b 3']"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
	if got := annotation.Unknown.String(); got != "unknown" {
		t.Errorf("got %q but want unknown", got)
	}
	again, err := annotation.Parse(typ.String())
	if err != nil {
		t.Fatal(err)
	}
	if !again.Equal(typ) {
		t.Errorf("round trip: got %s but want %s", again, typ)
	}
}

func TestInstantiate(t *testing.T) {
	s := shape.FromSizes(2)
	got, err := annotation.Instantiate(dtype.Complex, "Tensor", s)
	if err != nil {
		t.Fatal(err)
	}
	want := []annotation.Type{
		{DType: dtype.Complex64, Backend: "Tensor", Shape: s},
		{DType: dtype.Complex128, Backend: "Tensor", Shape: s},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected union (-want +got):\n%s", diff)
	}
	if got, want := annotation.Union(got), "Complex64[Tensor, '2'] | Complex128[Tensor, '2']"; got != want {
		t.Errorf("got union %q but want %q", got, want)
	}
	single, err := annotation.Instantiate(dtype.Int8, "Tensor", s)
	if err != nil {
		t.Fatal(err)
	}
	if len(single) != 1 || single[0].DType != dtype.Int8 {
		t.Errorf("unexpected instantiation of a concrete type: %v", single)
	}
}

func TestParseErrorKeepsShapeText(t *testing.T) {
	tests := []struct {
		text string
		spec string
	}{
		{text: `Float32[Tensor, "batch  3, 4"]`, spec: "batch  3, 4"},
		{text: `Int64[Tensor, '99999999999999999999']`, spec: "99999999999999999999"},
	}
	for i, test := range tests {
		_, err := annotation.Parse(test.text)
		var parseErr *fmterr.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("test %d: got error %v but want a parse error", i, err)
			continue
		}
		if parseErr.Spec != test.spec {
			t.Errorf("test %d: got shape text %q but want %q", i, parseErr.Spec, test.spec)
		}
	}
}
