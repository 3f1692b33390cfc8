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
	"errors"
	"fmt"
)

var (
	ErrInvalid = errors.New("invalid")

	// ErrIndexOutOfBounds is returned by checked positional access when an
	// index is negative or not less than the length.
	ErrIndexOutOfBounds = fmt.Errorf("%w: index out of bounds", ErrInvalid)
	// ErrLengthMismatch is returned when two inputs that are combined
	// position by position have different lengths.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalid)
	// ErrTypeMismatch is returned by operations over two dynamically typed
	// values whose kinds differ, or by an operation the kind does not support.
	ErrTypeMismatch = fmt.Errorf("%w: type mismatch", ErrInvalid)
	// ErrCoercion is returned when a scalar cannot be converted to the
	// requested kind.
	ErrCoercion = fmt.Errorf("%w: cannot coerce", ErrInvalid)
	// ErrEmptyInput is returned when a kind has to be inferred from a
	// sequence with nothing to sample.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrInvalid)

	ErrHasNulls     = fmt.Errorf("%w: contains nulls", ErrInvalid)
	ErrDivideByZero = fmt.Errorf("%w: divide by zero", ErrInvalid)
	ErrOverflow     = fmt.Errorf("%w: overflow", ErrInvalid)
)

func errorf(base error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))
}
