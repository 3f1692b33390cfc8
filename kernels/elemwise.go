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
	"github.com/sinhrks/go-nullvec/bitutil"
)

// Broadcast applies fn to every value paired with rhs, returning a new slice.
// The input is left untouched.
func Broadcast[T, U, R any](values []T, rhs U, fn func(T, U) R) []R {
	out := make([]R, len(values))
	for i, v := range values {
		out[i] = fn(v, rhs)
	}
	return out
}

// BroadcastInto applies fn to every value paired with rhs, overwriting values
// in place. The caller hands ownership of values over and receives it back.
func BroadcastInto[T, U any](values []T, rhs U, fn func(T, U) T) []T {
	for i, v := range values {
		values[i] = fn(v, rhs)
	}
	return values
}

// Elemwise applies fn to each pair of values at the same position, returning a
// new slice. Inputs of different lengths yield ErrLengthMismatch.
func Elemwise[T, U, R any](lhs []T, rhs []U, fn func(T, U) R) ([]R, error) {
	if err := checkLengths(len(lhs), len(rhs)); err != nil {
		return nil, err
	}
	out := make([]R, len(lhs))
	for i := range lhs {
		out[i] = fn(lhs[i], rhs[i])
	}
	return out, nil
}

// ElemwiseInto is Elemwise writing the results over lhs.
func ElemwiseInto[T, U any](lhs []T, rhs []U, fn func(T, U) T) ([]T, error) {
	if err := checkLengths(len(lhs), len(rhs)); err != nil {
		return nil, err
	}
	for i := range lhs {
		lhs[i] = fn(lhs[i], rhs[i])
	}
	return lhs, nil
}

// BroadcastErr is Broadcast for fallible operations. Every slot is evaluated.
// An error reported through fn at a slot whose bit is set in skip is dropped
// and the slot receives the zero value of R; a nil skip drops nothing. The
// first error at any other slot is returned.
func BroadcastErr[T, U, R any](values []T, rhs U, skip []byte, fn func(T, U, *error) R) ([]R, error) {
	out := make([]R, len(values))
	for i, v := range values {
		var err error
		if out[i], err = apply(fn, v, rhs, skip, i); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ElemwiseErr is Elemwise for fallible operations, dropping errors at skipped
// slots the same way BroadcastErr does.
func ElemwiseErr[T, U, R any](lhs []T, rhs []U, skip []byte, fn func(T, U, *error) R) ([]R, error) {
	if err := checkLengths(len(lhs), len(rhs)); err != nil {
		return nil, err
	}

	out := make([]R, len(lhs))
	for i := range lhs {
		var err error
		if out[i], err = apply(fn, lhs[i], rhs[i], skip, i); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func apply[T, U, R any](fn func(T, U, *error) R, a T, b U, skip []byte, i int) (R, error) {
	var err error
	out := fn(a, b, &err)
	if err == nil {
		return out, nil
	}
	var zero R
	if skip != nil && bitutil.BitIsSet(skip, i) {
		return zero, nil
	}
	return zero, err
}

func checkLengths(l, r int) error {
	if l != r {
		return fmt.Errorf("%w: lhs has %d values, rhs has %d", nullvec.ErrLengthMismatch, l, r)
	}
	return nil
}
