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

	"github.com/gx-org/shaping/base/ordered"
	"github.com/gx-org/shaping/fmterr"
	"golang.org/x/exp/maps"
)

type familyTable map[DType][]DType

var families = familyTable{
	UInt:    {UInt2, UInt4, UInt8, UInt16, UInt32, UInt64},
	Int:     {Int2, Int4, Int8, Int16, Int32, Int64},
	Integer: {Int, UInt},
	Float: {
		Float8e4m3b11fnuz, Float8e4m3fn, Float8e4m3fnuz, Float8e5m2, Float8e5m2fnuz,
		BFloat16, Float16, Float32, Float64,
	},
	Complex: {Complex64, Complex128},
	Inexact: {Float, Complex},
	Real:    {Float, UInt, Int},
	Num:     {Float, Complex, UInt, Int},
	Shaped:  {Bool, Num, Key},
}

// Families returns all the abstract families, in declaration order.
func Families() []DType {
	keys := maps.Keys(families)
	slices.Sort(keys)
	return keys
}

// Members returns the direct members of a family.
// Members may be families themselves.
func Members(dt DType) []DType {
	return slices.Clone(families[dt])
}

// Expand a data type into the set of concrete data types it stands for.
// A concrete data type expands to itself.
func Expand(dt DType) ([]DType, error) {
	leaves := ordered.NewSet[DType]()
	if err := families.expand(leaves, nil, dt); err != nil {
		return nil, err
	}
	return leaves.Slice(), nil
}

// ExpandName parses a data type name and expands it.
func ExpandName(name string) ([]DType, error) {
	dt, err := Parse(name)
	if err != nil {
		return nil, err
	}
	return Expand(dt)
}

func (table familyTable) expand(leaves *ordered.Set[DType], path []DType, dt DType) error {
	if !dt.IsValid() {
		return fmterr.Internalf("cannot expand invalid data type %d", dt)
	}
	if !dt.IsFamily() {
		leaves.Add(dt)
		return nil
	}
	if slices.Contains(path, dt) {
		return fmterr.Internalf("cycle in data type families: %v", append(path, dt))
	}
	members, ok := table[dt]
	if !ok || len(members) == 0 {
		return fmterr.Internalf("family %s has no members", dt)
	}
	path = append(path, dt)
	for _, member := range members {
		if err := table.expand(leaves, path, member); err != nil {
			return err
		}
	}
	return nil
}
