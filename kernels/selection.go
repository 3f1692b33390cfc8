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

package kernels

import (
	"fmt"

	nullvec "github.com/sinhrks/go-nullvec"
)

// TakeOptions controls how Take treats positions outside the input.
type TakeOptions struct {
	BoundsCheck bool
}

// DefaultTakeOptions checks every position before gathering.
func DefaultTakeOptions() TakeOptions { return TakeOptions{BoundsCheck: true} }

// CheckBounds returns ErrIndexOutOfBounds for the first position in locs which
// is negative or not less than n.
func CheckBounds(locs []int, n int) error {
	for _, l := range locs {
		if l < 0 || l >= n {
			return fmt.Errorf("%w: index %d for length %d", nullvec.ErrIndexOutOfBounds, l, n)
		}
	}
	return nil
}

// Take gathers values at locs into a new slice, in the order of locs.
// Repeated positions are allowed.
func Take[T any](values []T, locs []int) ([]T, error) {
	return TakeWithOptions(values, locs, DefaultTakeOptions())
}

// TakeWithOptions is Take with the bounds check made optional. With the check
// disabled an out of range position panics with a runtime bounds error.
func TakeWithOptions[T any](values []T, locs []int, opts TakeOptions) ([]T, error) {
	if opts.BoundsCheck {
		if err := CheckBounds(locs, len(values)); err != nil {
			return nil, err
		}
	}
	return TakeUnchecked(values, locs), nil
}

// TakeUnchecked gathers values at locs without checking them. Every position
// must be in range.
func TakeUnchecked[T any](values []T, locs []int) []T {
	out := make([]T, len(locs))
	for i, l := range locs {
		out[i] = values[l]
	}
	return out
}

// TakeForced gathers values at locs, writing fill for every position outside
// the input. The returned slice lists the output positions that were filled.
func TakeForced[T any](values []T, locs []int, fill T) ([]T, []int) {
	var (
		out    = make([]T, len(locs))
		filled []int
	)
	for i, l := range locs {
		if l < 0 || l >= len(values) {
			out[i] = fill
			filled = append(filled, i)
			continue
		}
		out[i] = values[l]
	}
	return out, filled
}

// Filter keeps the values whose flag is true, preserving order.
func Filter[T any](values []T, flags []bool) ([]T, error) {
	if len(values) != len(flags) {
		return nil, fmt.Errorf("%w: %d values and %d flags", nullvec.ErrLengthMismatch, len(values), len(flags))
	}
	out := make([]T, 0, countTrue(flags))
	for i, keep := range flags {
		if keep {
			out = append(out, values[i])
		}
	}
	return out, nil
}

// FilterIndices returns the positions whose flag is true.
func FilterIndices(flags []bool) []int {
	out := make([]int, 0, countTrue(flags))
	for i, keep := range flags {
		if keep {
			out = append(out, i)
		}
	}
	return out
}

func countTrue(flags []bool) (n int) {
	for _, f := range flags {
		if f {
			n++
		}
	}
	return
}
