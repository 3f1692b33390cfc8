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

package compute

import (
	"fmt"
	"math"

	"github.com/JohnCGriffin/overflow"
	nullvec "github.com/sinhrks/go-nullvec"
)

type ArithmeticOp int8

const (
	OpAdd ArithmeticOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
)

var opNames = [...]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
	OpRem: "rem",
}

func (op ArithmeticOp) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("ArithmeticOp(%d)", int8(op))
}

// ArithmeticOptions specifies whether or not to check for overflows. Integer
// arithmetic wraps around when CheckOverflow is false and fails with
// ErrOverflow when it is true. Floating point arithmetic is never checked.
type ArithmeticOptions struct {
	CheckOverflow bool
}

// binaryOp is a kernel over a pair of not null values. A failure is reported
// through e and the returned value is then ignored.
type binaryOp[T any] func(a, b T, e *error) T

type checkedOp[T any] func(a, b T) (T, bool)

func getArithmeticOp[T nullvec.Numeric](op ArithmeticOp, opts ArithmeticOptions) (binaryOp[T], error) {
	if op < OpAdd || op > OpRem {
		return nil, fmt.Errorf("%w: unknown arithmetic op %s", nullvec.ErrInvalid, op)
	}

	var fn interface{}
	switch any(*new(T)).(type) {
	case float32:
		fn = getGoArithmeticOpFloating[float32](op)
	case float64:
		fn = getGoArithmeticOpFloating[float64](op)
	case int8:
		fn = getGoArithmeticOpIntegral[int8](op, opts, overflow.Add8, overflow.Sub8, overflow.Mul8, divSigned[int8])
	case int16:
		fn = getGoArithmeticOpIntegral[int16](op, opts, overflow.Add16, overflow.Sub16, overflow.Mul16, divSigned[int16])
	case int32:
		fn = getGoArithmeticOpIntegral[int32](op, opts, overflow.Add32, overflow.Sub32, overflow.Mul32, divSigned[int32])
	case int64:
		fn = getGoArithmeticOpIntegral[int64](op, opts, overflow.Add64, overflow.Sub64, overflow.Mul64, divSigned[int64])
	case int:
		fn = getGoArithmeticOpIntegral[int](op, opts, overflow.Add, overflow.Sub, overflow.Mul, divSigned[int])
	case uint8:
		fn = getGoArithmeticOpUnsigned[uint8](op, opts)
	case uint16:
		fn = getGoArithmeticOpUnsigned[uint16](op, opts)
	case uint32:
		fn = getGoArithmeticOpUnsigned[uint32](op, opts)
	case uint64:
		fn = getGoArithmeticOpUnsigned[uint64](op, opts)
	case uint:
		fn = getGoArithmeticOpUnsigned[uint](op, opts)
	}
	return fn.(binaryOp[T]), nil
}

func getGoArithmeticOpFloating[T nullvec.Float](op ArithmeticOp) binaryOp[T] {
	return map[ArithmeticOp]binaryOp[T]{
		OpAdd: func(a, b T, _ *error) T { return a + b },
		OpSub: func(a, b T, _ *error) T { return a - b },
		OpMul: func(a, b T, _ *error) T { return a * b },
		OpDiv: func(a, b T, _ *error) T { return a / b },
		OpRem: func(a, b T, _ *error) T { return T(math.Mod(float64(a), float64(b))) },
	}[op]
}

func getGoArithmeticOpUnsigned[T uint8 | uint16 | uint32 | uint64 | uint](op ArithmeticOp, opts ArithmeticOptions) binaryOp[T] {
	return getGoArithmeticOpIntegral[T](op, opts,
		func(a, b T) (T, bool) {
			r := a + b
			return r, r >= a
		},
		func(a, b T) (T, bool) { return a - b, a >= b },
		func(a, b T) (T, bool) {
			if a == 0 || b == 0 {
				return 0, true
			}
			r := a * b
			return r, r/b == a
		},
		func(a, b T) (T, bool) { return a / b, true })
}

// divSigned only overflows for the smallest value divided by -1. overflow.Div
// also rejects exact quotients that truncate to zero, such as 1 / -2.
func divSigned[T int8 | int16 | int32 | int64 | int](a, b T) (T, bool) {
	return a / b, !(b == -1 && a == nullvec.MinOf[T]())
}

func getGoArithmeticOpIntegral[T nullvec.Integer](op ArithmeticOp, opts ArithmeticOptions, add, sub, mul, div checkedOp[T]) binaryOp[T] {
	checked := func(fn checkedOp[T]) binaryOp[T] {
		return func(a, b T, e *error) T {
			out, ok := fn(a, b)
			if !ok {
				*e = fmt.Errorf("%w: %v %s %v", nullvec.ErrOverflow, a, op, b)
			}
			return out
		}
	}

	switch op {
	case OpAdd:
		if opts.CheckOverflow {
			return checked(add)
		}
		return func(a, b T, _ *error) T { return a + b }
	case OpSub:
		if opts.CheckOverflow {
			return checked(sub)
		}
		return func(a, b T, _ *error) T { return a - b }
	case OpMul:
		if opts.CheckOverflow {
			return checked(mul)
		}
		return func(a, b T, _ *error) T { return a * b }
	case OpDiv:
		divChecked := checked(div)
		return func(a, b T, e *error) T {
			if b == 0 {
				*e = fmt.Errorf("%w: %v %s %v", nullvec.ErrDivideByZero, a, op, b)
				return 0
			}
			if opts.CheckOverflow {
				return divChecked(a, b, e)
			}
			return a / b
		}
	case OpRem:
		return func(a, b T, e *error) T {
			if b == 0 {
				*e = fmt.Errorf("%w: %v %s %v", nullvec.ErrDivideByZero, a, op, b)
				return 0
			}
			return a % b
		}
	}
	return nil
}

type BitwiseOp int8

const (
	OpBitAnd BitwiseOp = iota
	OpBitOr
	OpBitXor
)

func getBitwiseOp[T nullvec.Bitwise](op BitwiseOp) (binaryOp[T], error) {
	if op < OpBitAnd || op > OpBitXor {
		return nil, fmt.Errorf("%w: unknown bitwise op %d", nullvec.ErrInvalid, op)
	}

	var fn interface{}
	switch any(*new(T)).(type) {
	case bool:
		fn = map[BitwiseOp]binaryOp[bool]{
			OpBitAnd: func(a, b bool, _ *error) bool { return a && b },
			OpBitOr:  func(a, b bool, _ *error) bool { return a || b },
			OpBitXor: func(a, b bool, _ *error) bool { return a != b },
		}[op]
	case int8:
		fn = getGoBitwiseOpIntegral[int8](op)
	case int16:
		fn = getGoBitwiseOpIntegral[int16](op)
	case int32:
		fn = getGoBitwiseOpIntegral[int32](op)
	case int64:
		fn = getGoBitwiseOpIntegral[int64](op)
	case int:
		fn = getGoBitwiseOpIntegral[int](op)
	case uint8:
		fn = getGoBitwiseOpIntegral[uint8](op)
	case uint16:
		fn = getGoBitwiseOpIntegral[uint16](op)
	case uint32:
		fn = getGoBitwiseOpIntegral[uint32](op)
	case uint64:
		fn = getGoBitwiseOpIntegral[uint64](op)
	case uint:
		fn = getGoBitwiseOpIntegral[uint](op)
	}
	return fn.(binaryOp[T]), nil
}

func getGoBitwiseOpIntegral[T nullvec.Integer](op BitwiseOp) binaryOp[T] {
	return map[BitwiseOp]binaryOp[T]{
		OpBitAnd: func(a, b T, _ *error) T { return a & b },
		OpBitOr:  func(a, b T, _ *error) T { return a | b },
		OpBitXor: func(a, b T, _ *error) T { return a ^ b },
	}[op]
}
