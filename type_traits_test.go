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

package nullvec_test

import (
	"math"
	"testing"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/stretchr/testify/assert"
)

func TestNullTraits(t *testing.T) {
	assert.True(t, nullvec.NullTraits[float64]{}.CanFoldNull())
	assert.True(t, nullvec.NullTraits[float32]{}.CanFoldNull())
	assert.False(t, nullvec.NullTraits[int64]{}.CanFoldNull())
	assert.False(t, nullvec.NullTraits[bool]{}.CanFoldNull())
	assert.False(t, nullvec.NullTraits[string]{}.CanFoldNull())

	assert.True(t, nullvec.NullTraits[float64]{}.IsNullValue(math.NaN()))
	assert.True(t, nullvec.NullTraits[float32]{}.IsNullValue(float32(math.NaN())))
	assert.False(t, nullvec.NullTraits[float64]{}.IsNullValue(math.Inf(1)))
	assert.False(t, nullvec.NullTraits[int]{}.IsNullValue(0))

	assert.Zero(t, nullvec.NullTraits[float64]{}.Placeholder())
	assert.Equal(t, "", nullvec.NullTraits[string]{}.Placeholder())
	assert.False(t, nullvec.NullTraits[bool]{}.Placeholder())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, nullvec.INT8, nullvec.KindOf[int8]())
	assert.Equal(t, nullvec.INT, nullvec.KindOf[int]())
	assert.Equal(t, nullvec.UINT16, nullvec.KindOf[uint16]())
	assert.Equal(t, nullvec.UINT, nullvec.KindOf[uint]())
	assert.Equal(t, nullvec.FLOAT32, nullvec.KindOf[float32]())
	assert.Equal(t, nullvec.BOOL, nullvec.KindOf[bool]())
	assert.Equal(t, nullvec.STRING, nullvec.KindOf[string]())
}

func TestIntegerLimits(t *testing.T) {
	assert.Equal(t, uint(1), nullvec.SizeOf[int8]())
	assert.Equal(t, uint(2), nullvec.SizeOf[uint16]())
	assert.Equal(t, uint(4), nullvec.SizeOf[int32]())
	assert.Equal(t, uint(8), nullvec.SizeOf[uint64]())

	assert.Equal(t, int8(math.MinInt8), nullvec.MinOf[int8]())
	assert.Equal(t, int8(math.MaxInt8), nullvec.MaxOf[int8]())
	assert.Equal(t, int64(math.MinInt64), nullvec.MinOf[int64]())
	assert.Equal(t, uint32(0), nullvec.MinOf[uint32]())
	assert.Equal(t, uint32(math.MaxUint32), nullvec.MaxOf[uint32]())
}
