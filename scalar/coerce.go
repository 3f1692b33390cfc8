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

package scalar

import (
	"fmt"

	nullvec "github.com/sinhrks/go-nullvec"
)

// As converts s to a Nullable of K. Null converts to a null of any kind.
// Numeric kinds convert between each other with Go conversion semantics, so
// narrowing truncates and floating point values are truncated toward zero.
// Booleans and strings only convert to their own kind; any other pairing fails
// with ErrCoercion. A NaN result folds to null.
func As[K nullvec.Storable](s Scalar) (nullvec.Nullable[K], error) {
	var (
		out interface{}
		err error
	)
	switch any(*new(K)).(type) {
	case int8:
		out, err = AsInt8(s)
	case int16:
		out, err = AsInt16(s)
	case int32:
		out, err = AsInt32(s)
	case int64:
		out, err = AsInt64(s)
	case int:
		out, err = AsInt(s)
	case uint8:
		out, err = AsUint8(s)
	case uint16:
		out, err = AsUint16(s)
	case uint32:
		out, err = AsUint32(s)
	case uint64:
		out, err = AsUint64(s)
	case uint:
		out, err = AsUint(s)
	case float32:
		out, err = AsFloat32(s)
	case float64:
		out, err = AsFloat64(s)
	case bool:
		out, err = AsBool(s)
	case string:
		out, err = AsString(s)
	}
	return out.(nullvec.Nullable[K]), err
}

func AsInt8(s Scalar) (nullvec.Nullable[int8], error)       { return asNumeric[int8](s) }
func AsInt16(s Scalar) (nullvec.Nullable[int16], error)     { return asNumeric[int16](s) }
func AsInt32(s Scalar) (nullvec.Nullable[int32], error)     { return asNumeric[int32](s) }
func AsInt64(s Scalar) (nullvec.Nullable[int64], error)     { return asNumeric[int64](s) }
func AsInt(s Scalar) (nullvec.Nullable[int], error)         { return asNumeric[int](s) }
func AsUint8(s Scalar) (nullvec.Nullable[uint8], error)     { return asNumeric[uint8](s) }
func AsUint16(s Scalar) (nullvec.Nullable[uint16], error)   { return asNumeric[uint16](s) }
func AsUint32(s Scalar) (nullvec.Nullable[uint32], error)   { return asNumeric[uint32](s) }
func AsUint64(s Scalar) (nullvec.Nullable[uint64], error)   { return asNumeric[uint64](s) }
func AsUint(s Scalar) (nullvec.Nullable[uint], error)       { return asNumeric[uint](s) }
func AsFloat32(s Scalar) (nullvec.Nullable[float32], error) { return asNumeric[float32](s) }
func AsFloat64(s Scalar) (nullvec.Nullable[float64], error) { return asNumeric[float64](s) }

// AsBool succeeds only for Boolean and Null.
func AsBool(s Scalar) (nullvec.Nullable[bool], error) { return asExact[bool](s) }

// AsString succeeds only for String and Null.
func AsString(s Scalar) (nullvec.Nullable[string], error) { return asExact[string](s) }

func coercionError(s Scalar, to nullvec.Kind) error {
	return fmt.Errorf("%w: %s scalar %s to %s", nullvec.ErrCoercion, s.Kind(), s, to)
}

func asExact[K bool | string](s Scalar) (nullvec.Nullable[K], error) {
	if !s.IsValid() {
		return nullvec.Null[K](), nil
	}
	v, ok := s.value().(K)
	if !ok {
		return nullvec.Null[K](), coercionError(s, nullvec.KindOf[K]())
	}
	return nullvec.Value(v), nil
}

func asNumeric[K nullvec.Numeric](s Scalar) (nullvec.Nullable[K], error) {
	if !s.IsValid() {
		return nullvec.Null[K](), nil
	}
	out, ok := castNumeric[K](s.value())
	if !ok {
		return nullvec.Null[K](), coercionError(s, nullvec.KindOf[K]())
	}
	return nullvec.NewNullable(out), nil
}

func castNumeric[K nullvec.Numeric](v interface{}) (K, bool) {
	switch v := v.(type) {
	case int8:
		return K(v), true
	case int16:
		return K(v), true
	case int32:
		return K(v), true
	case int64:
		return K(v), true
	case int:
		return K(v), true
	case uint8:
		return K(v), true
	case uint16:
		return K(v), true
	case uint32:
		return K(v), true
	case uint64:
		return K(v), true
	case uint:
		return K(v), true
	case float32:
		return K(v), true
	case float64:
		return K(v), true
	}
	return 0, false
}
