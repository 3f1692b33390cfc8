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
	"github.com/sinhrks/go-nullvec/scalar"
)

type (
	scalarAggFunc func(array.Array) scalar.Scalar
	floatAggFunc  func(array.Array) nullvec.Nullable[float64]
)

// aggregators holds the kernels a kind supports. A nil kernel means the
// aggregation is not defined for the kind.
type aggregators struct {
	sum, min, max                    scalarAggFunc
	mean, vr, unbiasedVar, std, uStd floatAggFunc
}

func vecOf[T nullvec.Storable](a array.Array) *array.NullVec[T] {
	v, err := array.AsNullVec[T](a)
	if err != nil {
		panic(err)
	}
	return v
}

func scalarAgg[T, R nullvec.Storable](fn func(*array.NullVec[T]) nullvec.Nullable[R]) scalarAggFunc {
	return func(a array.Array) scalar.Scalar { return scalar.FromNullable(fn(vecOf[T](a))) }
}

func floatAgg[T nullvec.Storable](fn func(*array.NullVec[T]) nullvec.Nullable[float64]) floatAggFunc {
	return func(a array.Array) nullvec.Nullable[float64] { return fn(vecOf[T](a)) }
}

func numericAggregators[T nullvec.Numeric]() aggregators {
	return aggregators{
		sum:         scalarAgg(Sum[T]),
		min:         scalarAgg(Min[T]),
		max:         scalarAgg(Max[T]),
		mean:        floatAgg(Mean[T]),
		vr:          floatAgg(Var[T]),
		unbiasedVar: floatAgg(UnbiasedVar[T]),
		std:         floatAgg(Std[T]),
		uStd:        floatAgg(UnbiasedStd[T]),
	}
}

var aggregatorTable = [...]aggregators{
	nullvec.INT8:    numericAggregators[int8](),
	nullvec.INT16:   numericAggregators[int16](),
	nullvec.INT32:   numericAggregators[int32](),
	nullvec.INT64:   numericAggregators[int64](),
	nullvec.INT:     numericAggregators[int](),
	nullvec.UINT8:   numericAggregators[uint8](),
	nullvec.UINT16:  numericAggregators[uint16](),
	nullvec.UINT32:  numericAggregators[uint32](),
	nullvec.UINT64:  numericAggregators[uint64](),
	nullvec.UINT:    numericAggregators[uint](),
	nullvec.FLOAT32: numericAggregators[float32](),
	nullvec.FLOAT64: numericAggregators[float64](),
	nullvec.BOOL:    {},
	nullvec.STRING: {
		min: scalarAgg(Min[string]),
		max: scalarAgg(Max[string]),
	},
}

func kernelsFor(a array.Array) *aggregators {
	if k := a.Kind(); k > nullvec.NULL && int(k) < len(aggregatorTable) {
		return &aggregatorTable[k]
	}
	return &aggregators{}
}

func undefinedFor(a array.Array, name string) error {
	return fmt.Errorf("%w: %s is not defined for %s", nullvec.ErrTypeMismatch, name, a.DType())
}

func applyScalar(a array.Array, name string, pick func(*aggregators) scalarAggFunc) (scalar.Scalar, error) {
	fn := pick(kernelsFor(a))
	if fn == nil {
		return nil, undefinedFor(a, name)
	}
	return fn(a), nil
}

func applyFloat(a array.Array, name string, pick func(*aggregators) floatAggFunc) (nullvec.Nullable[float64], error) {
	fn := pick(kernelsFor(a))
	if fn == nil {
		return nullvec.Null[float64](), undefinedFor(a, name)
	}
	return fn(a), nil
}

// SumArray is Sum over an Array of any numeric kind. The result has the kind
// of the array, or is the Null scalar.
func SumArray(a array.Array) (scalar.Scalar, error) {
	return applyScalar(a, "sum", func(f *aggregators) scalarAggFunc { return f.sum })
}

// CountArray is Count over an Array of any kind.
func CountArray(a array.Array) int { return a.Len() - a.NullN() }

// MinArray is Min over an Array of a numeric or string kind.
func MinArray(a array.Array) (scalar.Scalar, error) {
	return applyScalar(a, "min", func(f *aggregators) scalarAggFunc { return f.min })
}

// MaxArray is Max over an Array of a numeric or string kind.
func MaxArray(a array.Array) (scalar.Scalar, error) {
	return applyScalar(a, "max", func(f *aggregators) scalarAggFunc { return f.max })
}

// MeanArray is Mean over an Array of any numeric kind.
func MeanArray(a array.Array) (nullvec.Nullable[float64], error) {
	return applyFloat(a, "mean", func(f *aggregators) floatAggFunc { return f.mean })
}

// VarArray is Var over an Array of any numeric kind.
func VarArray(a array.Array) (nullvec.Nullable[float64], error) {
	return applyFloat(a, "var", func(f *aggregators) floatAggFunc { return f.vr })
}

// UnbiasedVarArray is UnbiasedVar over an Array of any numeric kind.
func UnbiasedVarArray(a array.Array) (nullvec.Nullable[float64], error) {
	return applyFloat(a, "unbiased_var", func(f *aggregators) floatAggFunc { return f.unbiasedVar })
}

// StdArray is Std over an Array of any numeric kind.
func StdArray(a array.Array) (nullvec.Nullable[float64], error) {
	return applyFloat(a, "std", func(f *aggregators) floatAggFunc { return f.std })
}

// UnbiasedStdArray is UnbiasedStd over an Array of any numeric kind.
func UnbiasedStdArray(a array.Array) (nullvec.Nullable[float64], error) {
	return applyFloat(a, "unbiased_std", func(f *aggregators) floatAggFunc { return f.uStd })
}
