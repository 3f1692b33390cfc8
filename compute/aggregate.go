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

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/array"
	"gonum.org/v1/gonum/stat"
)

// Sum adds up the elements which are not null, starting from zero. An empty
// vector sums to Value(0) while a vector holding only nulls sums to Null.
// Integer sums wrap around on overflow; see SumChecked.
func Sum[T nullvec.Numeric](v *array.NullVec[T]) nullvec.Nullable[T] {
	if v.Len() > 0 && v.NullN() == v.Len() {
		return nullvec.Null[T]()
	}

	var sum T
	for _, x := range v.NotNullSeq() {
		sum += x
	}
	return nullvec.Value(sum)
}

// SumChecked is Sum failing with ErrOverflow when the running total leaves the
// range of T.
func SumChecked[T nullvec.Integer](v *array.NullVec[T]) (nullvec.Nullable[T], error) {
	if v.Len() > 0 && v.NullN() == v.Len() {
		return nullvec.Null[T](), nil
	}

	add, err := getArithmeticOp[T](OpAdd, ArithmeticOptions{CheckOverflow: true})
	if err != nil {
		return nullvec.Null[T](), err
	}

	var sum T
	for i, x := range v.NotNullSeq() {
		if sum = add(sum, x, &err); err != nil {
			return nullvec.Null[T](), fmt.Errorf("summing element %d: %w", i, err)
		}
	}
	return nullvec.Value(sum), nil
}

// Count returns the number of elements which are not null.
func Count[T nullvec.Storable](v *array.NullVec[T]) int { return v.Len() - v.NullN() }

// Mean returns the sum of the elements which are not null divided by their
// count, or Null when there are none.
func Mean[T nullvec.Numeric](v *array.NullVec[T]) nullvec.Nullable[float64] {
	n := Count(v)
	if n == 0 {
		return nullvec.Null[float64]()
	}
	sum, _ := Sum(v).Get()
	return nullvec.Value(float64(sum) / float64(n))
}

// Var returns the population variance of the elements which are not null, or
// Null when there are none.
func Var[T nullvec.Numeric](v *array.NullVec[T]) nullvec.Nullable[float64] {
	ssd, n := sumSquaredDeviations(v)
	if n == 0 {
		return nullvec.Null[float64]()
	}
	return nullvec.Value(ssd / float64(n))
}

// UnbiasedVar returns the sample variance of the elements which are not null,
// or Null when there are none. A single element divides by zero and yields
// Value(NaN).
func UnbiasedVar[T nullvec.Numeric](v *array.NullVec[T]) nullvec.Nullable[float64] {
	ssd, n := sumSquaredDeviations(v)
	if n == 0 {
		return nullvec.Null[float64]()
	}
	return nullvec.Value(ssd / float64(n-1))
}

// Std is the square root of Var.
func Std[T nullvec.Numeric](v *array.NullVec[T]) nullvec.Nullable[float64] {
	return sqrt(Var(v))
}

// UnbiasedStd is the square root of UnbiasedVar.
func UnbiasedStd[T nullvec.Numeric](v *array.NullVec[T]) nullvec.Nullable[float64] {
	return sqrt(UnbiasedVar(v))
}

// Min returns the smallest element which is not null, or Null when there are
// none. Of several equal smallest elements the first one is returned.
func Min[T nullvec.Ordered](v *array.NullVec[T]) nullvec.Nullable[T] {
	return extremum(v, func(a, b T) bool { return a < b })
}

// Max returns the largest element which is not null, or Null when there are
// none. Of several equal largest elements the first one is returned.
func Max[T nullvec.Ordered](v *array.NullVec[T]) nullvec.Nullable[T] {
	return extremum(v, func(a, b T) bool { return a > b })
}

func extremum[T nullvec.Ordered](v *array.NullVec[T], better func(a, b T) bool) nullvec.Nullable[T] {
	out := nullvec.Null[T]()
	for _, x := range v.NotNullSeq() {
		if cur, ok := out.Get(); !ok || better(x, cur) {
			out = nullvec.Value(x)
		}
	}
	return out
}

// sumSquaredDeviations makes two passes over the elements which are not null:
// the first computes their mean, the second sums the squared deviations from
// it.
func sumSquaredDeviations[T nullvec.Numeric](v *array.NullVec[T]) (float64, int) {
	vals := make([]float64, 0, Count(v))
	for _, x := range v.NotNullSeq() {
		vals = append(vals, float64(x))
	}
	if len(vals) == 0 {
		return 0, 0
	}

	mean := stat.Mean(vals, nil)
	var ssd float64
	for _, x := range vals {
		d := x - mean
		ssd += d * d
	}
	return ssd, len(vals)
}

// sqrt keeps NaN as a value, the way UnbiasedVar reports it.
func sqrt(n nullvec.Nullable[float64]) nullvec.Nullable[float64] {
	v, ok := n.Get()
	if !ok {
		return n
	}
	return nullvec.Value(math.Sqrt(v))
}
