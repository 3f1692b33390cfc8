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

package kernels_test

import (
	"errors"
	"strconv"
	"testing"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/bitutil"
	"github.com/sinhrks/go-nullvec/kernels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(a, b int64) int64 { return a + b }

func TestBroadcast(t *testing.T) {
	values := []int64{1, 2, 3}

	out := kernels.Broadcast(values, 10, add)
	assert.Equal(t, []int64{11, 12, 13}, out)
	assert.Equal(t, []int64{1, 2, 3}, values)

	strs := kernels.Broadcast(values, "x", func(v int64, s string) string {
		return s + strconv.FormatInt(v, 10)
	})
	assert.Equal(t, []string{"x1", "x2", "x3"}, strs)

	owned := kernels.BroadcastInto(values, 1, add)
	assert.Equal(t, []int64{2, 3, 4}, owned)
	assert.Equal(t, []int64{2, 3, 4}, values)
}

func TestElemwise(t *testing.T) {
	lhs := []int64{1, 2, 3}
	rhs := []int64{4, 5, 6}

	out, err := kernels.Elemwise(lhs, rhs, add)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 7, 9}, out)
	assert.Equal(t, []int64{1, 2, 3}, lhs)

	gt, err := kernels.Elemwise(lhs, rhs, func(a, b int64) bool { return a > b })
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, gt)

	_, err = kernels.Elemwise(lhs, rhs[:2], add)
	assert.ErrorIs(t, err, nullvec.ErrLengthMismatch)

	owned, err := kernels.ElemwiseInto(lhs, rhs, add)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 7, 9}, owned)
	assert.Equal(t, []int64{5, 7, 9}, lhs)

	_, err = kernels.ElemwiseInto(lhs, rhs[:1], add)
	assert.ErrorIs(t, err, nullvec.ErrLengthMismatch)
}

var errZero = errors.New("zero")

func div(a, b int64, e *error) int64 {
	if b == 0 {
		*e = errZero
		return 0
	}
	return a / b
}

func TestElemwiseErr(t *testing.T) {
	lhs := []int64{10, 20, 30}
	rhs := []int64{2, 0, 3}

	_, err := kernels.ElemwiseErr(lhs, rhs, nil, div)
	assert.ErrorIs(t, err, errZero)

	skip, _ := bitutil.FromBools([]bool{false, true, false})
	out, err := kernels.ElemwiseErr(lhs, rhs, skip, div)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 0, 10}, out)

	// skipped slots are still evaluated
	skip, _ = bitutil.FromBools([]bool{true, false, false})
	out, err = kernels.ElemwiseErr(lhs, []int64{2, 4, 3}, skip, div)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 5, 10}, out)

	_, err = kernels.ElemwiseErr(lhs, rhs[:1], nil, div)
	assert.ErrorIs(t, err, nullvec.ErrLengthMismatch)
}

func TestBroadcastErr(t *testing.T) {
	out, err := kernels.BroadcastErr([]int64{10, 20}, 5, nil, div)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, out)

	_, err = kernels.BroadcastErr([]int64{10, 20}, 0, nil, div)
	assert.ErrorIs(t, err, errZero)

	skip, _ := bitutil.FromBools([]bool{true, true})
	out, err = kernels.BroadcastErr([]int64{10, 20}, 0, skip, div)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, out)

	skip, _ = bitutil.FromBools([]bool{false, true})
	out, err = kernels.BroadcastErr([]int64{10, 20}, 5, skip, div)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, out)
}
