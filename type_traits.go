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

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Storable is the closed set of Go types a NullVec can hold. The set has no ~
// approximations: every instantiation maps onto exactly one Kind.
type Storable interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64 | bool | string
}

// Integer is the subset of Storable made of signed and unsigned integers.
type Integer interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint
}

// Float is the subset of Storable made of floating point types.
type Float interface {
	float32 | float64
}

// Numeric is the subset of Storable supporting arithmetic.
type Numeric interface {
	Integer | Float
}

// Ordered is the subset of Storable supporting < and >.
type Ordered interface {
	Numeric | string
}

// Bitwise is the subset of Storable supporting &, | and ^ through
// the bitwise kernels.
type Bitwise interface {
	Integer | bool
}

// NullTraits describes how null is represented for the element type T.
//
// Only the floating point kinds can fold null into an in-band value (NaN);
// every other kind needs the out-of-band mask.
type NullTraits[T Storable] struct{}

// CanFoldNull reports whether T has an in-band null value.
func (NullTraits[T]) CanFoldNull() bool {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return true
	}
	return false
}

// IsNullValue reports whether v is the in-band null of T. It is always false
// for kinds which cannot fold null.
func (NullTraits[T]) IsNullValue(v T) bool {
	switch v := any(v).(type) {
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}
	return false
}

// Placeholder returns the value stored in slots that are masked as null.
func (NullTraits[T]) Placeholder() T {
	var z T
	return z
}

// KindOf returns the Kind tag of T.
func KindOf[T Storable]() Kind {
	var z T
	switch any(z).(type) {
	case int8:
		return INT8
	case int16:
		return INT16
	case int32:
		return INT32
	case int64:
		return INT64
	case int:
		return INT
	case uint8:
		return UINT8
	case uint16:
		return UINT16
	case uint32:
		return UINT32
	case uint64:
		return UINT64
	case uint:
		return UINT
	case float32:
		return FLOAT32
	case float64:
		return FLOAT64
	case bool:
		return BOOL
	case string:
		return STRING
	}
	panic("unreachable")
}

// SizeOf returns the width in bytes of an integer type. The expression is
// simple enough for the compiler to fold into a constant.
func SizeOf[T constraints.Integer]() uint {
	x := uint16(1 << 8)
	y := uint32(2 << 16)
	z := uint64(4 << 32)
	return 1 + uint(T(x))>>8 + uint(T(y))>>16 + uint(T(z))>>32
}

// MinOf returns the smallest value of the integer type T.
func MinOf[T constraints.Integer]() T {
	if ones := ^T(0); ones < 0 {
		return ones << (8*SizeOf[T]() - 1)
	}
	return 0
}

// MaxOf returns the largest value of the integer type T.
func MaxOf[T constraints.Integer]() T {
	ones := ^T(0)
	if ones < 0 {
		return ones ^ (ones << (8*SizeOf[T]() - 1))
	}
	return ones
}
