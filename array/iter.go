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
	"iter"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/bitutil"
)

// All yields each position with its element.
func (v *NullVec[T]) All() iter.Seq2[int, nullvec.Nullable[T]] {
	return func(yield func(int, nullvec.Nullable[T]) bool) {
		for i := range v.data {
			if !yield(i, v.IlocUnchecked(i)) {
				return
			}
		}
	}
}

// NotNullSeq yields the position and value of each element which is not null.
func (v *NullVec[T]) NotNullSeq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if v.nulls != nil && bitutil.BitIsSet(v.nulls, i) {
				continue
			}
			if !yield(i, x) {
				return
			}
		}
	}
}

// RawSeq yields, for each element, whether it is null and the stored value.
// The value of a null element carries no meaning.
func (v *NullVec[T]) RawSeq() iter.Seq2[bool, T] {
	return func(yield func(bool, T) bool) {
		rdr := bitutil.NewBitmapReader(v.nulls, 0, len(v.data))
		for _, x := range v.data {
			null := v.nulls != nil && rdr.Set()
			rdr.Next()
			if !yield(null, x) {
				return
			}
		}
	}
}

// Collect builds a vector from the values of seq, folding NaN.
func Collect[T nullvec.Storable](seq iter.Seq[T]) *NullVec[T] {
	var data []T
	for x := range seq {
		data = append(data, x)
	}
	return New(data)
}

// CollectNullables builds a vector from the elements of seq.
func CollectNullables[T nullvec.Storable](seq iter.Seq[nullvec.Nullable[T]]) *NullVec[T] {
	var vals []nullvec.Nullable[T]
	for n := range seq {
		vals = append(vals, n)
	}
	return FromNullables(vals)
}
