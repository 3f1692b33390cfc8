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
	"strings"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/bitutil"
	"github.com/sinhrks/go-nullvec/internal/debug"
	"golang.org/x/exp/slices"
)

// NullVec is an immutable sequence of T paired with an optional null mask.
type NullVec[T nullvec.Storable] struct {
	data  []T
	nulls []byte
	nullN int
}

// New returns a vector over values, folding floating point NaN into the mask.
// The vector takes ownership of values; it is copied only when a NaN has to be
// replaced.
func New[T nullvec.Storable](values []T) *NullVec[T] {
	return build(values, nil)
}

// NewWithMask returns a vector over values whose null mask is the union of mask
// and the NaN positions of values. A nil mask marks nothing as null.
func NewWithMask[T nullvec.Storable](values []T, mask []bool) (*NullVec[T], error) {
	if mask == nil {
		return New(values), nil
	}
	if len(mask) != len(values) {
		return nil, fmt.Errorf("%w: %d values and mask of %d", nullvec.ErrLengthMismatch, len(values), len(mask))
	}
	nulls, _ := bitutil.FromBools(mask)
	return build(values, nulls), nil
}

// NewWithNullBitmap returns a vector over values whose packed null bitmap, bit
// set for null, is bitmap. The vector takes ownership of both slices. A nil
// bitmap marks nothing; otherwise it must hold at least one bit per value or
// the call fails with ErrLengthMismatch.
func NewWithNullBitmap[T nullvec.Storable](values []T, bitmap []byte) (*NullVec[T], error) {
	if bitmap != nil && len(bitmap) < bitutil.BytesForBits(len(values)) {
		return nil, fmt.Errorf("%w: %d values and null bitmap of %d bytes", nullvec.ErrLengthMismatch, len(values), len(bitmap))
	}
	return build(values, bitmap), nil
}

// FromNullables returns a vector holding vals in order. Null entries store the
// placeholder value of T.
func FromNullables[T nullvec.Storable](vals []nullvec.Nullable[T]) *NullVec[T] {
	var (
		data  = make([]T, len(vals))
		nulls []byte
	)
	for i, n := range vals {
		v, ok := n.Get()
		if ok {
			data[i] = v
			continue
		}
		if nulls == nil {
			nulls = make([]byte, bitutil.BytesForBits(len(vals)))
		}
		bitutil.SetBit(nulls, i)
	}
	return build(data, nulls)
}

// build takes ownership of values and nulls, folds NaN into nulls and drops
// a bitmap with no bit set.
func build[T nullvec.Storable](values []T, nulls []byte) *NullVec[T] {
	var traits nullvec.NullTraits[T]
	if traits.CanFoldNull() {
		copied := false
		for i, v := range values {
			if !traits.IsNullValue(v) {
				continue
			}
			if !copied {
				values, copied = slices.Clone(values), true
			}
			if nulls == nil {
				nulls = make([]byte, bitutil.BytesForBits(len(values)))
			}
			values[i] = traits.Placeholder()
			bitutil.SetBit(nulls, i)
		}
	}

	out := &NullVec[T]{data: values}
	if nulls != nil {
		if n := bitutil.CountSetBits(nulls, len(values)); n > 0 {
			out.nulls, out.nullN = nulls, n
		}
	}
	debug.Assert(out.nulls == nil || len(out.nulls) >= bitutil.BytesForBits(len(out.data)), "null bitmap shorter than data")
	return out
}

// Len returns the number of elements, nulls included.
func (v *NullVec[T]) Len() int { return len(v.data) }

// Kind returns the kind tag of T.
func (v *NullVec[T]) Kind() nullvec.Kind { return nullvec.KindOf[T]() }

// HasNull reports whether at least one element is null.
func (v *NullVec[T]) HasNull() bool { return v.nullN > 0 }

// NullN returns the number of null elements.
func (v *NullVec[T]) NullN() int { return v.nullN }

// NullBitmapBytes returns the packed null bitmap, nil when no element is null.
func (v *NullVec[T]) NullBitmapBytes() []byte { return v.nulls }

// IsNullAt reports whether the element at i is null. i must be in range.
func (v *NullVec[T]) IsNullAt(i int) bool {
	return v.nulls != nil && bitutil.BitIsSet(v.nulls, i)
}

// IsNull returns, for each element, whether it is null.
func (v *NullVec[T]) IsNull() []bool { return bitutil.ToBools(v.nulls, len(v.data)) }

// NotNull returns, for each element, whether it holds a value.
func (v *NullVec[T]) NotNull() []bool {
	out := v.IsNull()
	for i := range out {
		out[i] = !out[i]
	}
	return out
}

// NotNullValues returns the values which are not null, in order.
func (v *NullVec[T]) NotNullValues() []T {
	if v.nulls == nil {
		return slices.Clone(v.data)
	}
	out := make([]T, 0, len(v.data)-v.nullN)
	for i, x := range v.data {
		if bitutil.BitIsNotSet(v.nulls, i) {
			out = append(out, x)
		}
	}
	return out
}

// AsNull returns a vector of the same length whose elements are all null. An
// empty vector stays without a mask.
func (v *NullVec[T]) AsNull() *NullVec[T] {
	return build(v.data, bitutil.SetAll(len(v.data)))
}

// DropNull returns a vector of the elements which are not null.
func (v *NullVec[T]) DropNull() *NullVec[T] {
	if v.nulls == nil {
		return v
	}
	return &NullVec[T]{data: v.NotNullValues()}
}

// FillNull returns a vector with every null replaced by value. Filling a
// floating point vector with NaN leaves the nulls in place.
func (v *NullVec[T]) FillNull(value T) *NullVec[T] {
	if v.nulls == nil {
		return v
	}
	data := slices.Clone(v.data)
	for i := range data {
		if bitutil.BitIsSet(v.nulls, i) {
			data[i] = value
		}
	}
	return build(data, nil)
}

// Append returns the concatenation of v and other. Each element keeps the null
// state it had in its source vector.
func (v *NullVec[T]) Append(other *NullVec[T]) *NullVec[T] {
	n := len(v.data) + len(other.data)
	data := make([]T, 0, n)
	data = append(append(data, v.data...), other.data...)

	if v.nulls == nil && other.nulls == nil {
		return &NullVec[T]{data: data}
	}

	nulls := make([]byte, bitutil.BytesForBits(n))
	if v.nulls != nil {
		bitutil.CopyBitmap(v.nulls, 0, len(v.data), nulls, 0)
	}
	if other.nulls != nil {
		bitutil.CopyBitmap(other.nulls, 0, len(other.data), nulls, len(v.data))
	}
	return build(data, nulls)
}

// Values returns the stored values. It fails with ErrHasNulls when any element
// is null; use Raw to read the placeholders anyway.
func (v *NullVec[T]) Values() ([]T, error) {
	if v.nulls != nil {
		return nil, fmt.Errorf("%w: %d of %d values", nullvec.ErrHasNulls, v.nullN, len(v.data))
	}
	return v.data, nil
}

// Raw returns the stored values with null slots holding whatever value they
// were constructed with, the placeholder for folded NaN and Nullable nulls.
func (v *NullVec[T]) Raw() []T { return v.data }

// Nullables returns every element as a Nullable.
func (v *NullVec[T]) Nullables() []nullvec.Nullable[T] {
	out := make([]nullvec.Nullable[T], len(v.data))
	for i := range v.data {
		out[i] = v.IlocUnchecked(i)
	}
	return out
}

// Strings renders every element, nulls as "Null".
func (v *NullVec[T]) Strings() []string {
	out := make([]string, len(v.data))
	for i := range v.data {
		out[i] = v.IlocUnchecked(i).String()
	}
	return out
}

func (v *NullVec[T]) String() string {
	return "[" + strings.Join(v.Strings(), " ") + "]"
}

// Equal reports whether v and other have the same length, the same null
// positions and equal values at every other position.
func (v *NullVec[T]) Equal(other *NullVec[T]) bool {
	if len(v.data) != len(other.data) || v.nullN != other.nullN {
		return false
	}
	for i := range v.data {
		if v.IlocUnchecked(i) != other.IlocUnchecked(i) {
			return false
		}
	}
	return true
}
