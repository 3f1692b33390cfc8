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

// Package scalar provides Scalar, a single dynamically typed value which is
// either one of the fourteen storable kinds or the typeless Null.
package scalar

import (
	"fmt"

	nullvec "github.com/sinhrks/go-nullvec"
)

// Scalar is a single value tagged with its kind. The set of implementations is
// closed: Primitive instantiations over the storable types, and Null.
type Scalar interface {
	fmt.Stringer

	// Kind returns the kind tag, NULL for the typeless null.
	Kind() nullvec.Kind
	// IsValid is false only for Null.
	IsValid() bool

	value() interface{}
	equals(Scalar) bool
}

// Primitive is a present value of one storable type.
type Primitive[T nullvec.Storable] struct {
	Value T
}

type (
	Int8    = Primitive[int8]
	Int16   = Primitive[int16]
	Int32   = Primitive[int32]
	Int64   = Primitive[int64]
	Int     = Primitive[int]
	Uint8   = Primitive[uint8]
	Uint16  = Primitive[uint16]
	Uint32  = Primitive[uint32]
	Uint64  = Primitive[uint64]
	Uint    = Primitive[uint]
	Float32 = Primitive[float32]
	Float64 = Primitive[float64]
	Boolean = Primitive[bool]
	String  = Primitive[string]
)

func (Primitive[T]) Kind() nullvec.Kind   { return nullvec.KindOf[T]() }
func (Primitive[T]) IsValid() bool        { return true }
func (s Primitive[T]) value() interface{} { return s.Value }
func (s Primitive[T]) String() string     { return fmt.Sprint(s.Value) }
func (s Primitive[T]) equals(rhs Scalar) bool {
	return s.Value == rhs.(Primitive[T]).Value
}

// Null is the typeless missing value.
type Null struct{}

// ScalarNull is the Null scalar.
var ScalarNull Scalar = Null{}

func (Null) Kind() nullvec.Kind     { return nullvec.NULL }
func (Null) IsValid() bool          { return false }
func (Null) value() interface{}     { return nil }
func (Null) String() string         { return "Null" }
func (Null) equals(rhs Scalar) bool { return !rhs.IsValid() }

// NewScalar wraps v as a Scalar of its kind. No NaN folding is performed.
func NewScalar[T nullvec.Storable](v T) Scalar { return Primitive[T]{Value: v} }

func NewInt8Scalar(v int8) Int8          { return Int8{v} }
func NewInt16Scalar(v int16) Int16       { return Int16{v} }
func NewInt32Scalar(v int32) Int32       { return Int32{v} }
func NewInt64Scalar(v int64) Int64       { return Int64{v} }
func NewIntScalar(v int) Int             { return Int{v} }
func NewUint8Scalar(v uint8) Uint8       { return Uint8{v} }
func NewUint16Scalar(v uint16) Uint16    { return Uint16{v} }
func NewUint32Scalar(v uint32) Uint32    { return Uint32{v} }
func NewUint64Scalar(v uint64) Uint64    { return Uint64{v} }
func NewUintScalar(v uint) Uint          { return Uint{v} }
func NewFloat32Scalar(v float32) Float32 { return Float32{v} }
func NewFloat64Scalar(v float64) Float64 { return Float64{v} }
func NewBooleanScalar(v bool) Boolean    { return Boolean{v} }
func NewStringScalar(v string) String    { return String{v} }

// FromNullable converts n to a Scalar, mapping a null to ScalarNull.
func FromNullable[T nullvec.Storable](n nullvec.Nullable[T]) Scalar {
	v, ok := n.Get()
	if !ok {
		return ScalarNull
	}
	return Primitive[T]{Value: v}
}
