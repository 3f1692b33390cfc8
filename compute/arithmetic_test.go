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

package compute_test

import (
	"math"
	"testing"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/array"
	"github.com/sinhrks/go-nullvec/compute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nan       = math.NaN()
	unchecked = compute.ArithmeticOptions{}
	checked   = compute.ArithmeticOptions{CheckOverflow: true}
)

func masked[T nullvec.Storable](t *testing.T, values []T, mask []bool) *array.NullVec[T] {
	t.Helper()
	v, err := array.NewWithMask(values, mask)
	require.NoError(t, err)
	return v
}

func TestArithmeticNaNPropagation(t *testing.T) {
	lhs := array.New([]float64{1, nan, 3})
	rhs := array.New([]float64{1, 2, 3})

	out, err := compute.Add(unchecked, lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, out.IsNull())
	assert.Equal(t, []float64{2, 2, 6}, out.Raw())
	assert.Equal(t, []nullvec.Nullable[float64]{
		nullvec.Value(2.0), nullvec.Null[float64](), nullvec.Value(6.0),
	}, out.Nullables())

	// the inputs keep their own masks
	assert.Equal(t, 1, lhs.NullN())
	assert.False(t, rhs.HasNull())
}

func TestArithmeticMaskUnion(t *testing.T) {
	lhs := masked(t, []int64{1, 2, 3, 4}, []bool{false, true, false, false})
	rhs := masked(t, []int64{10, 20, 30, 40}, []bool{false, false, true, false})

	out, err := compute.Subtract(unchecked, lhs, rhs)
	require.NoError(t, err)
	assert.Equal(t, []nullvec.Nullable[int64]{
		nullvec.Value[int64](-9), nullvec.Null[int64](), nullvec.Null[int64](), nullvec.Value[int64](-36),
	}, out.Nullables())
	assert.Equal(t, 2, out.NullN())
}

func TestArithmeticNoNulls(t *testing.T) {
	tests := []struct {
		name string
		fn   func(compute.ArithmeticOptions, *array.NullVec[int32], *array.NullVec[int32]) (*array.NullVec[int32], error)
		want []int32
	}{
		{"add", compute.Add[int32], []int32{8, 4, 3}},
		{"sub", compute.Subtract[int32], []int32{6, -2, -3}},
		{"mul", compute.Multiply[int32], []int32{7, 3, 0}},
		{"div", compute.Divide[int32], []int32{7, 0, 0}},
		{"rem", compute.Remainder[int32], []int32{0, 1, 0}},
	}

	lhs := array.New([]int32{7, 1, 0})
	rhs := array.New([]int32{1, 3, 3})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.fn(checked, lhs, rhs)
			require.NoError(t, err)
			assert.False(t, out.HasNull())
			vals, err := out.Values()
			require.NoError(t, err)
			assert.Equal(t, tt.want, vals)
		})
	}
}

func TestArithmeticLengthMismatch(t *testing.T) {
	_, err := compute.Add(unchecked, array.New([]int{1, 2}), array.New([]int{1}))
	assert.ErrorIs(t, err, nullvec.ErrLengthMismatch)

	_, err = compute.Add(unchecked, array.New([]float64{nan, 2}), array.New([]float64{1}))
	assert.ErrorIs(t, err, nullvec.ErrLengthMismatch)
}

func TestIntegerDivideByZero(t *testing.T) {
	_, err := compute.Divide(unchecked, array.New([]int64{4, 2}), array.New([]int64{2, 0}))
	assert.ErrorIs(t, err, nullvec.ErrDivideByZero)

	_, err = compute.Remainder(unchecked, array.New([]uint8{4}), array.New([]uint8{0}))
	assert.ErrorIs(t, err, nullvec.ErrDivideByZero)

	// a zero divisor behind a null does not fail
	out, err := compute.Divide(unchecked, array.New([]int64{4, 2}), masked(t, []int64{2, 0}, []bool{false, true}))
	require.NoError(t, err)
	assert.Equal(t, []nullvec.Nullable[int64]{nullvec.Value[int64](2), nullvec.Null[int64]()}, out.Nullables())
}

func TestFloatDivideByZero(t *testing.T) {
	out, err := compute.Divide(unchecked, array.New([]float64{1, 0}), array.New([]float64{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, out.IsNull())
	assert.True(t, math.IsInf(out.Raw()[0], 1))
}

func TestFloatRemainder(t *testing.T) {
	out, err := compute.Remainder(unchecked, array.New([]float32{7.5, -7.5}), array.New([]float32{2, 2}))
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -1.5}, out.Raw())
}

func TestArithmeticOverflow(t *testing.T) {
	t.Run("signed add", func(t *testing.T) {
		lhs, rhs := array.New([]int8{127}), array.New([]int8{1})
		out, err := compute.Add(unchecked, lhs, rhs)
		require.NoError(t, err)
		assert.Equal(t, []int8{-128}, out.Raw())

		_, err = compute.Add(checked, lhs, rhs)
		assert.ErrorIs(t, err, nullvec.ErrOverflow)
	})

	t.Run("unsigned sub", func(t *testing.T) {
		lhs, rhs := array.New([]uint8{0}), array.New([]uint8{1})
		out, err := compute.Subtract(unchecked, lhs, rhs)
		require.NoError(t, err)
		assert.Equal(t, []uint8{255}, out.Raw())

		_, err = compute.Subtract(checked, lhs, rhs)
		assert.ErrorIs(t, err, nullvec.ErrOverflow)
	})

	t.Run("unsigned add and mul", func(t *testing.T) {
		_, err := compute.Add(checked, array.New([]uint16{math.MaxUint16}), array.New([]uint16{1}))
		assert.ErrorIs(t, err, nullvec.ErrOverflow)
		_, err = compute.Multiply(checked, array.New([]uint8{16}), array.New([]uint8{16}))
		assert.ErrorIs(t, err, nullvec.ErrOverflow)

		out, err := compute.Multiply(checked, array.New([]uint8{15, 0}), array.New([]uint8{17, 200}))
		require.NoError(t, err)
		assert.Equal(t, []uint8{255, 0}, out.Raw())
	})

	t.Run("signed mul", func(t *testing.T) {
		_, err := compute.Multiply(checked, array.New([]int64{math.MaxInt64}), array.New([]int64{2}))
		assert.ErrorIs(t, err, nullvec.ErrOverflow)
	})

	t.Run("signed div", func(t *testing.T) {
		lhs, rhs := array.New([]int8{-128}), array.New([]int8{-1})
		out, err := compute.Divide(unchecked, lhs, rhs)
		require.NoError(t, err)
		assert.Equal(t, []int8{-128}, out.Raw())

		_, err = compute.Divide(checked, lhs, rhs)
		assert.ErrorIs(t, err, nullvec.ErrOverflow)

		out, err = compute.Divide(checked, array.New([]int8{1, 0, -7}), array.New([]int8{-2, -5, 2}))
		require.NoError(t, err)
		assert.Equal(t, []int8{0, 0, -3}, out.Raw())
	})

	t.Run("overflow behind null", func(t *testing.T) {
		out, err := compute.Add(checked, masked(t, []int8{127, 1}, []bool{true, false}), array.New([]int8{1, 1}))
		require.NoError(t, err)
		assert.Equal(t, []nullvec.Nullable[int8]{nullvec.Null[int8](), nullvec.Value[int8](2)}, out.Nullables())

		out, err = compute.Add(checked, masked(t, []int8{1, 2}, []bool{true, false}), array.New([]int8{1, 1}))
		require.NoError(t, err)
		assert.Equal(t, []int8{2, 3}, out.Raw())
	})
}

func TestArithmeticUnknownOp(t *testing.T) {
	_, err := compute.Arithmetic(compute.ArithmeticOp(42), unchecked, array.New([]int{1}), array.New([]int{1}))
	assert.ErrorIs(t, err, nullvec.ErrInvalid)
	assert.Equal(t, "ArithmeticOp(42)", compute.ArithmeticOp(42).String())
	assert.Equal(t, "rem", compute.OpRem.String())
}

func TestArithmeticScalar(t *testing.T) {
	lhs := masked(t, []int{1, 2, 3}, []bool{false, false, true})

	out, err := compute.ArithmeticScalar(compute.OpAdd, unchecked, lhs, nullvec.Value(10))
	require.NoError(t, err)
	assert.Equal(t, []nullvec.Nullable[int]{nullvec.Value(11), nullvec.Value(12), nullvec.Null[int]()}, out.Nullables())

	out, err = compute.ArithmeticScalar(compute.OpAdd, unchecked, lhs, nullvec.Null[int]())
	require.NoError(t, err)
	assert.Equal(t, 3, out.NullN())

	out, err = compute.ScalarArithmetic(compute.OpSub, unchecked, nullvec.Value(10), lhs)
	require.NoError(t, err)
	assert.Equal(t, []nullvec.Nullable[int]{nullvec.Value(9), nullvec.Value(8), nullvec.Null[int]()}, out.Nullables())

	_, err = compute.ScalarArithmetic(compute.OpDiv, unchecked, nullvec.Value(10), array.New([]int{0}))
	assert.ErrorIs(t, err, nullvec.ErrDivideByZero)
}

func TestArithmeticScalarFoldsNaN(t *testing.T) {
	lhs := array.New([]float64{0, nan, 1})
	out, err := compute.ArithmeticScalar(compute.OpMul, unchecked, lhs, nullvec.Value(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, out.IsNull())
	assert.True(t, math.IsInf(out.Raw()[2], 1))

	assert.Equal(t, []bool{false, true, false}, lhs.IsNull())
}

func TestNullableArithmetic(t *testing.T) {
	out, err := compute.NullableArithmetic(compute.OpAdd, unchecked, nullvec.Value(1), nullvec.Value(2))
	require.NoError(t, err)
	assert.Equal(t, nullvec.Value(3), out)

	out, err = compute.NullableArithmetic(compute.OpAdd, unchecked, nullvec.Value(1), nullvec.Null[int]())
	require.NoError(t, err)
	assert.True(t, out.IsNull())

	_, err = compute.NullableArithmetic(compute.OpDiv, unchecked, nullvec.Value(1), nullvec.Value(0))
	assert.ErrorIs(t, err, nullvec.ErrDivideByZero)

	f, err := compute.NullableArithmetic(compute.OpDiv, unchecked, nullvec.Value(0.0), nullvec.Value(0.0))
	require.NoError(t, err)
	assert.True(t, f.IsNull())
}

func TestBitwise(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		lhs := array.New([]bool{true, true, false, false})
		rhs := array.New([]bool{true, false, true, false})
		for op, want := range map[compute.BitwiseOp][]bool{
			compute.OpBitAnd: {true, false, false, false},
			compute.OpBitOr:  {true, true, true, false},
			compute.OpBitXor: {false, true, true, false},
		} {
			out, err := compute.Bitwise(op, lhs, rhs)
			require.NoError(t, err)
			assert.Equal(t, want, out.Raw())
		}
	})

	t.Run("integer", func(t *testing.T) {
		lhs := masked(t, []uint8{0b1100, 0b1111}, []bool{false, true})
		rhs := array.New([]uint8{0b1010, 0b0001})
		out, err := compute.Bitwise(compute.OpBitXor, lhs, rhs)
		require.NoError(t, err)
		assert.Equal(t, []nullvec.Nullable[uint8]{nullvec.Value[uint8](0b0110), nullvec.Null[uint8]()}, out.Nullables())

		out16, err := compute.BitwiseScalar(compute.OpBitAnd, array.New([]int16{6, 5}), nullvec.Value[int16](3))
		require.NoError(t, err)
		assert.Equal(t, []int16{2, 1}, out16.Raw())
	})

	_, err := compute.Bitwise(compute.BitwiseOp(9), array.New([]bool{true}), array.New([]bool{true}))
	assert.ErrorIs(t, err, nullvec.ErrInvalid)
}
