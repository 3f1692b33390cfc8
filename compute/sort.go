// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compute

import (
	"cmp"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/array"
	"github.com/sinhrks/go-nullvec/kernels"
)

// SortOptions controls the order produced by SortIndices. By default values
// are sorted ascending with nulls placed last.
type SortOptions struct {
	Descending bool
	NullsFirst bool
}

func DefaultSortOptions() *SortOptions { return &SortOptions{} }

// SortIndices returns the positions of v in sorted order. The sort is stable,
// so equal values and nulls keep their relative order.
func SortIndices[T nullvec.Ordered](v *array.NullVec[T], opts *SortOptions) []int {
	if opts == nil {
		opts = DefaultSortOptions()
	}

	valid := make([]int, 0, v.Len()-v.NullN())
	nulls := make([]int, 0, v.NullN())
	for i := 0; i < v.Len(); i++ {
		if v.IsNullAt(i) {
			nulls = append(nulls, i)
		} else {
			valid = append(valid, i)
		}
	}

	data := v.Raw()
	valid = kernels.SortBy(valid, func(a, b int) int {
		if opts.Descending {
			return cmp.Compare(data[b], data[a])
		}
		return cmp.Compare(data[a], data[b])
	})

	if opts.NullsFirst {
		return append(nulls, valid...)
	}
	return append(valid, nulls...)
}

// Sort returns the elements of v in the order given by SortIndices.
func Sort[T nullvec.Ordered](v *array.NullVec[T], opts *SortOptions) *array.NullVec[T] {
	return v.IlocsUnchecked(SortIndices(v, opts))
}
