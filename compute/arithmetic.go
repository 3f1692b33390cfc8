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

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/array"
	"github.com/sinhrks/go-nullvec/bitutil"
	"github.com/sinhrks/go-nullvec/kernels"
	"golang.org/x/exp/slices"
)

// Arithmetic combines lhs and rhs position by position with op. A position is
// null in the result when it is null on either side, and a floating point
// result of NaN is folded to null. Null positions are evaluated over their
// stored placeholder values, and a kernel error raised at a null position is
// ignored.
//
// Vectors of different lengths fail with ErrLengthMismatch. Integer division
// or remainder by zero fails with ErrDivideByZero, and when opts.CheckOverflow
// is set an integer overflow fails with ErrOverflow.
func Arithmetic[T nullvec.Numeric](op ArithmeticOp, opts ArithmeticOptions, lhs, rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	fn, err := getArithmeticOp[T](op, opts)
	if err != nil {
		return nil, err
	}
	return binary(fn, lhs, rhs)
}

// ArithmeticScalar applies op to every element of lhs paired with rhs. A null
// rhs makes every element null.
func ArithmeticScalar[T nullvec.Numeric](op ArithmeticOp, opts ArithmeticOptions, lhs *array.NullVec[T], rhs nullvec.Nullable[T]) (*array.NullVec[T], error) {
	fn, err := getArithmeticOp[T](op, opts)
	if err != nil {
		return nil, err
	}
	return broadcast(fn, lhs, rhs, false)
}

// ScalarArithmetic is ArithmeticScalar with the scalar on the left hand side,
// computing lhs op rhs[i] for every i.
func ScalarArithmetic[T nullvec.Numeric](op ArithmeticOp, opts ArithmeticOptions, lhs nullvec.Nullable[T], rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	fn, err := getArithmeticOp[T](op, opts)
	if err != nil {
		return nil, err
	}
	return broadcast(fn, rhs, lhs, true)
}

// NullableArithmetic applies op to a pair of Nullable values. The result is
// null when either input is null or the result is NaN.
func NullableArithmetic[T nullvec.Numeric](op ArithmeticOp, opts ArithmeticOptions, lhs, rhs nullvec.Nullable[T]) (nullvec.Nullable[T], error) {
	fn, err := getArithmeticOp[T](op, opts)
	if err != nil {
		return nullvec.Null[T](), err
	}

	a, aok := lhs.Get()
	b, bok := rhs.Get()
	if !aok || !bok {
		return nullvec.Null[T](), nil
	}
	out := fn(a, b, &err)
	if err != nil {
		return nullvec.Null[T](), err
	}
	return nullvec.NewNullable(out), nil
}

// Add returns lhs + rhs position by position. See Arithmetic.
func Add[T nullvec.Numeric](opts ArithmeticOptions, lhs, rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	return Arithmetic(OpAdd, opts, lhs, rhs)
}

// Subtract returns lhs - rhs position by position. See Arithmetic.
func Subtract[T nullvec.Numeric](opts ArithmeticOptions, lhs, rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	return Arithmetic(OpSub, opts, lhs, rhs)
}

// Multiply returns lhs * rhs position by position. See Arithmetic.
func Multiply[T nullvec.Numeric](opts ArithmeticOptions, lhs, rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	return Arithmetic(OpMul, opts, lhs, rhs)
}

// Divide performs integer or floating point division depending on T. Integer
// division by zero at a position that is not null fails with ErrDivideByZero,
// while floating point division by zero follows IEEE 754.
func Divide[T nullvec.Numeric](opts ArithmeticOptions, lhs, rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	return Arithmetic(OpDiv, opts, lhs, rhs)
}

// Remainder computes the remainder of truncated division, with the sign of lhs.
func Remainder[T nullvec.Numeric](opts ArithmeticOptions, lhs, rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	return Arithmetic(OpRem, opts, lhs, rhs)
}

// Bitwise combines lhs and rhs position by position with a bitwise op. For
// bool vectors the ops are the logical and, or and exclusive or.
func Bitwise[T nullvec.Bitwise](op BitwiseOp, lhs, rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	fn, err := getBitwiseOp[T](op)
	if err != nil {
		return nil, err
	}
	return binary(fn, lhs, rhs)
}

// BitwiseScalar applies a bitwise op to every element of lhs paired with rhs.
func BitwiseScalar[T nullvec.Bitwise](op BitwiseOp, lhs *array.NullVec[T], rhs nullvec.Nullable[T]) (*array.NullVec[T], error) {
	fn, err := getBitwiseOp[T](op)
	if err != nil {
		return nil, err
	}
	return broadcast(fn, lhs, rhs, false)
}

func binary[T nullvec.Storable](fn binaryOp[T], lhs, rhs *array.NullVec[T]) (*array.NullVec[T], error) {
	if lhs.Len() != rhs.Len() {
		return nil, fmt.Errorf("%w: lhs has %d values, rhs has %d", nullvec.ErrLengthMismatch, lhs.Len(), rhs.Len())
	}

	var nulls []byte
	if lhs.HasNull() || rhs.HasNull() {
		nulls, _ = bitutil.Or(lhs.NullBitmapBytes(), rhs.NullBitmapBytes(), lhs.Len())
	}

	out, err := kernels.ElemwiseErr[T, T, T](lhs.Raw(), rhs.Raw(), nulls, fn)
	if err != nil {
		return nil, err
	}
	return array.NewWithNullBitmap(out, nulls)
}

func broadcast[T nullvec.Storable](fn binaryOp[T], vec *array.NullVec[T], scalar nullvec.Nullable[T], reversed bool) (*array.NullVec[T], error) {
	s, ok := scalar.Get()
	if !ok {
		return vec.AsNull(), nil
	}

	kernel := fn
	if reversed {
		kernel = func(a, b T, e *error) T { return fn(b, a, e) }
	}

	// the result may gain folded NaN bits, so it gets its own bitmap
	nulls := vec.NullBitmapBytes()
	out, err := kernels.BroadcastErr[T, T, T](vec.Raw(), s, nulls, kernel)
	if err != nil {
		return nil, err
	}
	return array.NewWithNullBitmap(out, slices.Clone(nulls))
}
