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
	"github.com/sinhrks/go-nullvec/kernels"
	"github.com/sinhrks/go-nullvec/scalar"
)

// Array is a NullVec whose element kind is only known at runtime. It wraps
// exactly one *NullVec[T] for one of the storable types and forwards every
// operation to it, exchanging single elements as scalar.Scalar.
//
// The zero Array is not usable; build one with NewArray, ArrayOf or
// FromScalars.
type Array struct {
	vec vector
}

// vector is the kind erased view of a *NullVec[T].
type vector interface {
	Kind() nullvec.Kind
	Len() int
	HasNull() bool
	NullN() int
	IsNull() []bool
	NotNull() []bool
	Strings() []string
	String() string
	MarshalJSON() ([]byte, error)

	scalarAt(i int) scalar.Scalar
	take(locs []int) vector
	takeForced(locs []int) vector
	asNull() vector
	dropNull() vector
	fillNull(s scalar.Scalar) (vector, error)
	appendVec(other vector) vector
	equal(other vector) bool
}

type typed[T nullvec.Storable] struct {
	*NullVec[T]
}

func (t typed[T]) scalarAt(i int) scalar.Scalar { return scalar.FromNullable(t.IlocUnchecked(i)) }
func (t typed[T]) take(locs []int) vector       { return typed[T]{t.IlocsUnchecked(locs)} }
func (t typed[T]) takeForced(locs []int) vector { return typed[T]{t.IlocsForced(locs)} }
func (t typed[T]) asNull() vector               { return typed[T]{t.AsNull()} }
func (t typed[T]) dropNull() vector             { return typed[T]{t.DropNull()} }
func (t typed[T]) appendVec(other vector) vector {
	return typed[T]{t.Append(other.(typed[T]).NullVec)}
}

func (t typed[T]) fillNull(s scalar.Scalar) (vector, error) {
	n, err := scalar.As[T](s)
	if err != nil {
		return nil, err
	}
	v, ok := n.Get()
	if !ok {
		return t, nil
	}
	return typed[T]{t.FillNull(v)}, nil
}

func (t typed[T]) equal(other vector) bool {
	o, ok := other.(typed[T])
	return ok && t.Equal(o.NullVec)
}

// NewArray returns an Array over values, folding floating point NaN to null.
func NewArray[T nullvec.Storable](values []T) Array { return ArrayOf(New(values)) }

// ArrayOf wraps v as an Array.
func ArrayOf[T nullvec.Storable](v *NullVec[T]) Array { return Array{typed[T]{v}} }

// AsNullVec returns the vector wrapped by a when its element type is T, and
// ErrTypeMismatch otherwise.
func AsNullVec[T nullvec.Storable](a Array) (*NullVec[T], error) {
	t, ok := a.vec.(typed[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s array is not %s", nullvec.ErrTypeMismatch, a.Kind(), nullvec.KindOf[T]())
	}
	return t.NullVec, nil
}

// FromScalars builds an Array whose kind is that of the first element which is
// not Null, so leading Null elements are accepted and become nulls. Every
// element is coerced to that kind with scalar.As. There is nothing to infer the
// kind from when vals is empty or all Null, and the call fails with
// ErrEmptyInput.
func FromScalars(vals []scalar.Scalar) (Array, error) {
	if len(vals) == 0 {
		return Array{}, fmt.Errorf("%w: cannot infer kind from no scalars", nullvec.ErrEmptyInput)
	}

	kind := nullvec.NULL
	for _, s := range vals {
		if s.IsValid() {
			kind = s.Kind()
			break
		}
	}
	if kind == nullvec.NULL {
		return Array{}, fmt.Errorf("%w: cannot infer kind from %d null scalars", nullvec.ErrEmptyInput, len(vals))
	}

	vec, err := factoryFor(kind).fromScalars(vals)
	if err != nil {
		return Array{}, err
	}
	return Array{vec}, nil
}

// Kind returns the element kind.
func (a Array) Kind() nullvec.Kind { return a.vec.Kind() }

// DType returns the dtype tag of the element kind, e.g. "i64".
func (a Array) DType() string { return a.vec.Kind().String() }

// IsNumeric reports whether the element kind is an integer or floating point
// kind.
func (a Array) IsNumeric() bool { return a.vec.Kind().IsNumeric() }

func (a Array) Len() int          { return a.vec.Len() }
func (a Array) HasNull() bool     { return a.vec.HasNull() }
func (a Array) NullN() int        { return a.vec.NullN() }
func (a Array) IsNull() []bool    { return a.vec.IsNull() }
func (a Array) NotNull() []bool   { return a.vec.NotNull() }
func (a Array) Strings() []string { return a.vec.Strings() }
func (a Array) String() string    { return a.vec.String() }

// MarshalJSON encodes the elements as a JSON array.
func (a Array) MarshalJSON() ([]byte, error) { return a.vec.MarshalJSON() }

// Scalars returns every element as a Scalar, with nulls as scalar.ScalarNull.
func (a Array) Scalars() []scalar.Scalar {
	out := make([]scalar.Scalar, a.vec.Len())
	for i := range out {
		out[i] = a.vec.scalarAt(i)
	}
	return out
}

// Iloc returns the element at position i, failing with ErrIndexOutOfBounds
// when i is not in [0, Len).
func (a Array) Iloc(i int) (scalar.Scalar, error) {
	if i < 0 || i >= a.vec.Len() {
		return nil, fmt.Errorf("%w: index %d for length %d", nullvec.ErrIndexOutOfBounds, i, a.vec.Len())
	}
	return a.vec.scalarAt(i), nil
}

// IlocUnchecked returns the element at position i, which must be in range.
func (a Array) IlocUnchecked(i int) scalar.Scalar { return a.vec.scalarAt(i) }

// Ilocs gathers the elements at locs. See NullVec.Ilocs.
func (a Array) Ilocs(locs []int) (Array, error) {
	if err := kernels.CheckBounds(locs, a.vec.Len()); err != nil {
		return Array{}, err
	}
	return Array{a.vec.take(locs)}, nil
}

// IlocsUnchecked gathers the elements at locs, which must all be in range.
func (a Array) IlocsUnchecked(locs []int) Array { return Array{a.vec.take(locs)} }

// IlocsForced gathers the elements at locs with null for positions out of
// range.
func (a Array) IlocsForced(locs []int) Array { return Array{a.vec.takeForced(locs)} }

// Blocs keeps the elements whose flag is true. See NullVec.Blocs.
func (a Array) Blocs(flags []bool) (Array, error) {
	if len(flags) != a.vec.Len() {
		return Array{}, fmt.Errorf("%w: %d flags for length %d", nullvec.ErrLengthMismatch, len(flags), a.vec.Len())
	}
	return Array{a.vec.take(kernels.FilterIndices(flags))}, nil
}

// AsNull returns an Array of the same kind and length with every element null.
func (a Array) AsNull() Array { return Array{a.vec.asNull()} }

// DropNull returns an Array of the elements which are not null.
func (a Array) DropNull() Array { return Array{a.vec.dropNull()} }

// FillNull replaces every null with s coerced to the element kind. Filling
// with ScalarNull returns a unchanged. A scalar which cannot be coerced fails
// with ErrCoercion.
func (a Array) FillNull(s scalar.Scalar) (Array, error) {
	vec, err := a.vec.fillNull(s)
	if err != nil {
		return Array{}, err
	}
	return Array{vec}, nil
}

// Append concatenates a and other, which must have the same kind or the call
// fails with ErrTypeMismatch.
func (a Array) Append(other Array) (Array, error) {
	if a.Kind() != other.Kind() {
		return Array{}, fmt.Errorf("%w: cannot append %s array to %s array", nullvec.ErrTypeMismatch, other.Kind(), a.Kind())
	}
	return Array{a.vec.appendVec(other.vec)}, nil
}

// Equal reports whether a and other have the same kind and equal elements.
func (a Array) Equal(other Array) bool { return a.vec.equal(other.vec) }
