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
	"cmp"

	nullvec "github.com/sinhrks/go-nullvec"
	"golang.org/x/exp/slices"
)

// Sort returns a sorted copy of values in ascending order.
func Sort[T nullvec.Ordered](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

// ArgSort returns the positions that would sort values in ascending order.
// Equal values keep their original relative order.
func ArgSort[T nullvec.Ordered](values []T) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})
	return idx
}

// SortBy returns a copy of values stably sorted with the comparison fn, which
// returns a negative number when a sorts before b, zero when they are equal
// and a positive number otherwise.
func SortBy[T any](values []T, fn func(a, b T) int) []T {
	out := slices.Clone(values)
	slices.SortStableFunc(out, fn)
	return out
}
