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

package nullvec

import "fmt"

// Nullable is a single value of T which is either present or null. It is the
// value-level view of one NullVec slot, independent of how the vector stores it.
//
// The zero Nullable is null. Two Nullables compare equal with == when both are
// null or both hold equal values.
type Nullable[T Storable] struct {
	value T
	valid bool
}

// Value returns a present Nullable holding v. No NaN folding is performed.
func Value[T Storable](v T) Nullable[T] { return Nullable[T]{value: v, valid: true} }

// Null returns a null Nullable of T.
func Null[T Storable]() Nullable[T] { return Nullable[T]{} }

// NewNullable returns v as a Nullable, folding the in-band null of T (NaN for
// floating point kinds) to Null.
func NewNullable[T Storable](v T) Nullable[T] {
	if (NullTraits[T]{}).IsNullValue(v) {
		return Null[T]()
	}
	return Value(v)
}

// IsNull reports whether n is null.
func (n Nullable[T]) IsNull() bool { return !n.valid }

// IsValid reports whether n holds a value.
func (n Nullable[T]) IsValid() bool { return n.valid }

// Get returns the held value and whether it is present. A null Nullable
// returns the placeholder value of T.
func (n Nullable[T]) Get() (T, bool) { return n.value, n.valid }

// ValueOr returns the held value, or def if n is null.
func (n Nullable[T]) ValueOr(def T) T {
	if n.valid {
		return n.value
	}
	return def
}

// Kind returns the kind tag of T.
func (n Nullable[T]) Kind() Kind { return KindOf[T]() }

func (n Nullable[T]) String() string {
	if !n.valid {
		return "Null"
	}
	return fmt.Sprint(n.value)
}

// Map applies fn to the held value. Null maps to Null and a result equal to the
// in-band null of R folds to Null.
func Map[T, R Storable](n Nullable[T], fn func(T) R) Nullable[R] {
	if !n.valid {
		return Null[R]()
	}
	return NewNullable(fn(n.value))
}

// Combine applies fn to the values of a and b. If either side is null the
// result is null, and a result equal to the in-band null of R folds to Null.
func Combine[T, V, R Storable](a Nullable[T], b Nullable[V], fn func(T, V) R) Nullable[R] {
	if !a.valid || !b.valid {
		return Null[R]()
	}
	return NewNullable(fn(a.value, b.value))
}
