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
	"strconv"

	nullvec "github.com/sinhrks/go-nullvec"
	"golang.org/x/xerrors"
)

// MakeScalar wraps a Go value of one of the storable types. nil becomes
// ScalarNull and a Scalar is returned unchanged.
func MakeScalar(val interface{}) (Scalar, error) {
	switch v := val.(type) {
	case nil:
		return ScalarNull, nil
	case Scalar:
		return v, nil
	case bool:
		return NewBooleanScalar(v), nil
	case int8:
		return NewInt8Scalar(v), nil
	case uint8:
		return NewUint8Scalar(v), nil
	case int16:
		return NewInt16Scalar(v), nil
	case uint16:
		return NewUint16Scalar(v), nil
	case int32:
		return NewInt32Scalar(v), nil
	case uint32:
		return NewUint32Scalar(v), nil
	case int64:
		return NewInt64Scalar(v), nil
	case uint64:
		return NewUint64Scalar(v), nil
	case int:
		return NewIntScalar(v), nil
	case uint:
		return NewUintScalar(v), nil
	case float32:
		return NewFloat32Scalar(v), nil
	case float64:
		return NewFloat64Scalar(v), nil
	case string:
		return NewStringScalar(v), nil
	}

	return nil, xerrors.Errorf("makescalar not implemented for type value %#v: %w", val, nullvec.ErrTypeMismatch)
}

// MakeIntegerScalar returns v as a signed integer scalar of the given bit width.
func MakeIntegerScalar(v int64, bitsize int) (Scalar, error) {
	switch bitsize {
	case 8:
		return NewInt8Scalar(int8(v)), nil
	case 16:
		return NewInt16Scalar(int16(v)), nil
	case 32:
		return NewInt32Scalar(int32(v)), nil
	case 64:
		return NewInt64Scalar(v), nil
	}
	return nil, xerrors.Errorf("invalid bitsize for integer scalar: %d: %w", bitsize, nullvec.ErrInvalid)
}

// MakeUnsignedIntegerScalar returns v as an unsigned integer scalar of the
// given bit width.
func MakeUnsignedIntegerScalar(v uint64, bitsize int) (Scalar, error) {
	switch bitsize {
	case 8:
		return NewUint8Scalar(uint8(v)), nil
	case 16:
		return NewUint16Scalar(uint16(v)), nil
	case 32:
		return NewUint32Scalar(uint32(v)), nil
	case 64:
		return NewUint64Scalar(v), nil
	}
	return nil, xerrors.Errorf("invalid bitsize for uint scalar: %d: %w", bitsize, nullvec.ErrInvalid)
}

var bitWidths = map[nullvec.Kind]int{
	nullvec.INT8: 8, nullvec.INT16: 16, nullvec.INT32: 32, nullvec.INT64: 64, nullvec.INT: strconv.IntSize,
	nullvec.UINT8: 8, nullvec.UINT16: 16, nullvec.UINT32: 32, nullvec.UINT64: 64, nullvec.UINT: strconv.IntSize,
	nullvec.FLOAT32: 32, nullvec.FLOAT64: 64,
}

// IsNullText reports whether val is one of the spellings of a missing value.
func IsNullText(val string) bool { return val == "Null" || val == "null" }

// ParseScalar parses val as a scalar of the given kind. The kind is never
// guessed from the text. "Null" and "null" parse to ScalarNull for every kind.
// Integers accept the base prefixes understood by strconv.ParseInt.
func ParseScalar(kind nullvec.Kind, val string) (Scalar, error) {
	if IsNullText(val) {
		return ScalarNull, nil
	}

	switch {
	case kind == nullvec.STRING:
		return NewStringScalar(val), nil
	case kind == nullvec.BOOL:
		v, err := strconv.ParseBool(val)
		if err != nil {
			return nil, parseError(kind, val, err)
		}
		return NewBooleanScalar(v), nil
	case kind.IsSigned():
		v, err := strconv.ParseInt(val, 0, bitWidths[kind])
		if err != nil {
			return nil, parseError(kind, val, err)
		}
		if kind == nullvec.INT {
			return NewIntScalar(int(v)), nil
		}
		return MakeIntegerScalar(v, bitWidths[kind])
	case kind.IsInteger():
		v, err := strconv.ParseUint(val, 0, bitWidths[kind])
		if err != nil {
			return nil, parseError(kind, val, err)
		}
		if kind == nullvec.UINT {
			return NewUintScalar(uint(v)), nil
		}
		return MakeUnsignedIntegerScalar(v, bitWidths[kind])
	case kind.IsFloating():
		v, err := strconv.ParseFloat(val, bitWidths[kind])
		if err != nil {
			return nil, parseError(kind, val, err)
		}
		if kind == nullvec.FLOAT32 {
			return NewFloat32Scalar(float32(v)), nil
		}
		return NewFloat64Scalar(v), nil
	}

	return nil, xerrors.Errorf("parsing of scalar for kind %s not implemented: %w", kind, nullvec.ErrTypeMismatch)
}

func parseError(kind nullvec.Kind, val string, err error) error {
	return xerrors.Errorf("cannot parse %q as %s (%v): %w", val, kind, err, nullvec.ErrCoercion)
}
