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

package array

import (
	"fmt"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/bitutil"
	"github.com/sinhrks/go-nullvec/internal/debug"
	"github.com/sinhrks/go-nullvec/kernels"
)

// Iloc returns the element at position i, failing with ErrIndexOutOfBounds
// when i is not in [0, Len).
func (v *NullVec[T]) Iloc(i int) (nullvec.Nullable[T], error) {
	if i < 0 || i >= len(v.data) {
		return nullvec.Null[T](), fmt.Errorf("%w: index %d for length %d", nullvec.ErrIndexOutOfBounds, i, len(v.data))
	}
	return v.IlocUnchecked(i), nil
}

// IlocUnchecked returns the element at position i, which must be in range.
func (v *NullVec[T]) IlocUnchecked(i int) nullvec.Nullable[T] {
	if v.nulls != nil && bitutil.BitIsSet(v.nulls, i) {
		return nullvec.Null[T]()
	}
	return nullvec.Value(v.data[i])
}

// Ilocs gathers the elements at locs, in the order of locs. Positions may
// repeat. Any position out of range fails the whole call with
// ErrIndexOutOfBounds.
func (v *NullVec[T]) Ilocs(locs []int) (*NullVec[T], error) {
	if err := kernels.CheckBounds(locs, len(v.data)); err != nil {
		return nil, err
	}
	return v.IlocsUnchecked(locs), nil
}

// IlocsUnchecked is Ilocs without the bounds check. Every position must be in
// range.
func (v *NullVec[T]) IlocsUnchecked(locs []int) *NullVec[T] {
	return build(kernels.TakeUnchecked(v.data, locs), v.takeNulls(locs))
}

// IlocsForced gathers the elements at locs, producing a null for every
// position which is out of range.
func (v *NullVec[T]) IlocsForced(locs []int) *NullVec[T] {
	var traits nullvec.NullTraits[T]
	data, filled := kernels.TakeForced(v.data, locs, traits.Placeholder())
	if len(filled) > 0 {
		debug.Log(func() string {
			return fmt.Sprintf("IlocsForced: %d of %d locations out of range for length %d", len(filled), len(locs), len(v.data))
		})
	}
	if v.nulls == nil && len(filled) == 0 {
		return &NullVec[T]{data: data}
	}

	nulls := make([]byte, bitutil.BytesForBits(len(locs)))
	for i, l := range locs {
		if l >= 0 && l < len(v.data) && v.IsNullAt(l) {
			bitutil.SetBit(nulls, i)
		}
	}
	for _, i := range filled {
		bitutil.SetBit(nulls, i)
	}
	return build(data, nulls)
}

// Blocs keeps the elements whose flag is true. flags must have one entry per
// element, otherwise the call fails with ErrLengthMismatch.
func (v *NullVec[T]) Blocs(flags []bool) (*NullVec[T], error) {
	if len(flags) != len(v.data) {
		return nil, fmt.Errorf("%w: %d flags for length %d", nullvec.ErrLengthMismatch, len(flags), len(v.data))
	}
	return v.IlocsUnchecked(kernels.FilterIndices(flags)), nil
}

func (v *NullVec[T]) takeNulls(locs []int) []byte {
	if v.nulls == nil {
		return nil
	}
	out := make([]byte, bitutil.BytesForBits(len(locs)))
	for i, l := range locs {
		if bitutil.BitIsSet(v.nulls, l) {
			bitutil.SetBit(out, i)
		}
	}
	return out
}
