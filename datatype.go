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

import "strconv"

// Kind is the tag naming the element kind of a vector or scalar.
type Kind int8

const (
	// NULL is the kind of the typeless null scalar. No vector has this kind.
	NULL Kind = iota

	// INT8 is a signed 8-bit integer
	INT8

	// INT16 is a signed 16-bit integer
	INT16

	// INT32 is a signed 32-bit integer
	INT32

	// INT64 is a signed 64-bit integer
	INT64

	// INT is a signed pointer-sized integer
	INT

	// UINT8 is an unsigned 8-bit integer
	UINT8

	// UINT16 is an unsigned 16-bit integer
	UINT16

	// UINT32 is an unsigned 32-bit integer
	UINT32

	// UINT64 is an unsigned 64-bit integer
	UINT64

	// UINT is an unsigned pointer-sized integer
	UINT

	// FLOAT32 is a 4-byte floating point value
	FLOAT32

	// FLOAT64 is an 8-byte floating point value
	FLOAT64

	// BOOL is a boolean value
	BOOL

	// STRING is a UTF8 string
	STRING
)

var kindNames = [...]string{
	NULL:    "null",
	INT8:    "i8",
	INT16:   "i16",
	INT32:   "i32",
	INT64:   "i64",
	INT:     "isize",
	UINT8:   "u8",
	UINT16:  "u16",
	UINT32:  "u32",
	UINT64:  "u64",
	UINT:    "usize",
	FLOAT32: "f32",
	FLOAT64: "f64",
	BOOL:    "bool",
	STRING:  "str",
}

// String returns the stable dtype tag of the kind, e.g. "i64" or "str".
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= NULL && int(k) < len(kindNames) }

// IsNumeric reports whether k is an integer or floating point kind.
func (k Kind) IsNumeric() bool { return k >= INT8 && k <= FLOAT64 }

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool { return k >= INT8 && k <= UINT }

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool { return k >= INT8 && k <= INT }

// IsFloating reports whether k is a floating point kind.
func (k Kind) IsFloating() bool { return k == FLOAT32 || k == FLOAT64 }

// ParseKind returns the kind whose dtype tag is s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return NULL, errorf(ErrInvalid, "unknown kind %q", s)
}

// Kinds lists every kind a vector can hold, in declaration order.
var Kinds = []Kind{INT8, INT16, INT32, INT64, INT, UINT8, UINT16, UINT32, UINT64, UINT, FLOAT32, FLOAT64, BOOL, STRING}
