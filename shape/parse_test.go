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

package shape_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/shaping/fmterr"
	"github.com/gx-org/shaping/shape"
	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want shape.Shape
	}{
		{
			spec: "",
			want: shape.Shape{},
		},
		{
			spec: "3 224 224",
			want: shape.Shape{shape.Fixed{Size: 3}, shape.Fixed{Size: 224}, shape.Fixed{Size: 224}},
		},
		{
			spec: "#foo _ *bar",
			want: shape.Shape{
				shape.Named{Name: "foo", Broadcastable: true},
				shape.Anonymous{},
				shape.NamedVariadic{Name: "bar"},
			},
		},
		{
			spec: "rows=3 cols=4",
			want: shape.Shape{shape.Fixed{Size: 3}, shape.Fixed{Size: 4}},
		},
		{
			spec: "  batch\t_channels  0 ",
			want: shape.Shape{shape.Named{Name: "batch"}, shape.Anonymous{}, shape.Fixed{Size: 0}},
		},
		{
			spec: "... h w",
			want: shape.Shape{shape.AnonymousVariadic{}, shape.Named{Name: "h"}, shape.Named{Name: "w"}},
		},
		{
			spec: "*_ c",
			want: shape.Shape{shape.AnonymousVariadic{}, shape.Named{Name: "c"}},
		},
		{
			spec: "#*batch x_1",
			want: shape.Shape{shape.NamedVariadic{Name: "batch", Broadcastable: true}, shape.Named{Name: "x_1"}},
		},
		{
			spec: "*#batch",
			want: shape.Shape{shape.NamedVariadic{Name: "batch", Broadcastable: true}},
		},
		{
			spec: "dim=#n",
			want: shape.Shape{shape.Named{Name: "n", Broadcastable: true}},
		},
		{
			spec: "#3",
			want: shape.Shape{shape.Fixed{Size: 3}},
		},
	}
	for _, test := range tests {
		got, err := shape.Parse(test.spec)
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.spec, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("unexpected shape for %q (-want +got):\n%s", test.spec, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec     string
		reason   fmterr.Reason
		index    int
		modifier rune
	}{
		{spec: "a,b", reason: fmterr.CommaSeparator},
		{spec: "3 a,b", reason: fmterr.CommaSeparator, index: 1},
		{spec: "foo#", reason: fmterr.LegacyBroadcast},
		{spec: "*a *b", reason: fmterr.MultipleVariadic, index: 1},
		{spec: "... ...", reason: fmterr.MultipleVariadic, index: 1},
		{spec: "##foo", reason: fmterr.DuplicateModifier, modifier: '#'},
		{spec: "**foo", reason: fmterr.DuplicateModifier, modifier: '*'},
		{spec: "__foo", reason: fmterr.DuplicateModifier, modifier: '_'},
		{spec: "*4", reason: fmterr.FixedModifier, modifier: '*'},
		{spec: "_4", reason: fmterr.FixedModifier, modifier: '_'},
		{spec: "_a+b", reason: fmterr.SymbolicModifier, modifier: '_'},
		{spec: "*a+b", reason: fmterr.SymbolicModifier, modifier: '*'},
		{spec: "#_", reason: fmterr.AnonymousBroadcast},
		{spec: "a...", reason: fmterr.MalformedEllipsis},
		{spec: "=3", reason: fmterr.MalformedAlias},
		{spec: "rows=", reason: fmterr.MalformedAlias},
		{spec: "a=b=c", reason: fmterr.MalformedAlias},
		{spec: "99999999999999999999", reason: fmterr.SizeOverflow},
		{spec: "batch #99999999999999999999", reason: fmterr.SizeOverflow, index: 1},
		{spec: "rows=99999999999999999999", reason: fmterr.SizeOverflow},
	}
	for _, test := range tests {
		_, err := shape.Parse(test.spec)
		if err == nil {
			t.Errorf("%q: expected an error", test.spec)
			continue
		}
		var parseErr *fmterr.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("%q: got error %v of type %T but want a parse error", test.spec, err, err)
			continue
		}
		if parseErr.Reason != test.reason {
			t.Errorf("%q: got reason %q but want %q", test.spec, parseErr.Reason, test.reason)
		}
		if parseErr.Index != test.index {
			t.Errorf("%q: got index %d but want %d", test.spec, parseErr.Index, test.index)
		}
		if parseErr.Modifier != test.modifier {
			t.Errorf("%q: got modifier %q but want %q", test.spec, parseErr.Modifier, test.modifier)
		}
	}
}

func TestParseUnsupported(t *testing.T) {
	tests := []struct {
		spec    string
		feature fmterr.Feature
	}{
		{spec: "a+b", feature: fmterr.SymbolicAxis},
		{spec: "min(a,b)", feature: fmterr.SymbolicAxis},
		{spec: "-3", feature: fmterr.SymbolicAxis},
		{spec: "?foo", feature: fmterr.TreePath},
		{spec: "foo?", feature: fmterr.TreePath},
		{spec: "... *b", feature: fmterr.MixedVariadic},
		{spec: "*b ...", feature: fmterr.MixedVariadic},
	}
	for _, test := range tests {
		_, err := shape.Parse(test.spec)
		var unsupported *fmterr.UnsupportedError
		if !errors.As(err, &unsupported) {
			t.Errorf("%q: got error %v but want an unsupported feature error", test.spec, err)
			continue
		}
		if unsupported.Feature != test.feature {
			t.Errorf("%q: got feature %q but want %q", test.spec, unsupported.Feature, test.feature)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse did not panic on an invalid specification")
		}
	}()
	shape.MustParse("a,b")
}
