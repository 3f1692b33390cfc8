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
	"testing"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/kernels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name  string
		locs  []int
		n     int
		valid bool
	}{
		{"empty", nil, 0, true},
		{"in range", []int{0, 2, 1, 2}, 3, true},
		{"negative", []int{0, -1}, 3, false},
		{"at length", []int{3}, 3, false},
		{"empty source", []int{0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := kernels.CheckBounds(tt.locs, tt.n)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, nullvec.ErrIndexOutOfBounds)
			assert.ErrorIs(t, err, nullvec.ErrInvalid)
		})
	}
}

func TestTake(t *testing.T) {
	values := []string{"a", "b", "c"}

	out, err := kernels.Take(values, []int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "c"}, out)

	_, err = kernels.Take(values, []int{3})
	assert.ErrorIs(t, err, nullvec.ErrIndexOutOfBounds)

	out, err = kernels.TakeWithOptions(values, []int{1}, kernels.TakeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, out)

	assert.Equal(t, []string{"b", "b"}, kernels.TakeUnchecked(values, []int{1, 1}))
	assert.Panics(t, func() { kernels.TakeUnchecked(values, []int{5}) })
	assert.Empty(t, kernels.TakeUnchecked(values, nil))
}

func TestTakeForced(t *testing.T) {
	out, filled := kernels.TakeForced([]int64{10, 20, 30}, []int{1, 5, -1, 0}, 0)
	assert.Equal(t, []int64{20, 0, 0, 10}, out)
	assert.Equal(t, []int{1, 2}, filled)

	out, filled = kernels.TakeForced([]int64{10, 20}, []int{0, 1}, 0)
	assert.Equal(t, []int64{10, 20}, out)
	assert.Nil(t, filled)

	out, filled = kernels.TakeForced([]int64{}, []int{0, 1}, -1)
	assert.Equal(t, []int64{-1, -1}, out)
	assert.Equal(t, []int{0, 1}, filled)
}

func TestFilter(t *testing.T) {
	out, err := kernels.Filter([]int{1, 2, 3}, []bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, out)

	out, err = kernels.Filter([]int{1, 2, 3}, []bool{false, false, false})
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = kernels.Filter([]int{1, 2, 3}, []bool{true})
	assert.ErrorIs(t, err, nullvec.ErrLengthMismatch)

	assert.Equal(t, []int{0, 2}, kernels.FilterIndices([]bool{true, false, true}))
}
