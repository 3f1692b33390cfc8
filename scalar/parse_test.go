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

package scalar_test

import (
	"errors"
	"math"
	"testing"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeScalar(t *testing.T) {
	tests := []struct {
		in   interface{}
		want scalar.Scalar
	}{
		{nil, scalar.ScalarNull},
		{int8(1), scalar.NewInt8Scalar(1)},
		{int(2), scalar.NewIntScalar(2)},
		{uint(3), scalar.NewUintScalar(3)},
		{float32(1.5), scalar.NewFloat32Scalar(1.5)},
		{true, scalar.NewBooleanScalar(true)},
		{"s", scalar.NewStringScalar("s")},
		{scalar.NewInt16Scalar(4), scalar.NewInt16Scalar(4)},
	}

	for _, tt := range tests {
		got, err := scalar.MakeScalar(tt.in)
		require.NoError(t, err)
		assert.True(t, scalar.Equals(tt.want, got), "%v", tt.in)
	}

	_, err := scalar.MakeScalar([]int{1})
	assert.ErrorIs(t, err, nullvec.ErrTypeMismatch)
}

func TestMakeIntegerScalar(t *testing.T) {
	s, err := scalar.MakeIntegerScalar(-5, 16)
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(scalar.NewInt16Scalar(-5)), s)

	s, err = scalar.MakeUnsignedIntegerScalar(5, 32)
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(scalar.NewUint32Scalar(5)), s)

	_, err = scalar.MakeIntegerScalar(1, 12)
	assert.ErrorIs(t, err, nullvec.ErrInvalid)
	_, err = scalar.MakeUnsignedIntegerScalar(1, 7)
	assert.ErrorIs(t, err, nullvec.ErrInvalid)
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		kind nullvec.Kind
		text string
		want scalar.Scalar
	}{
		{nullvec.INT8, "-12", scalar.NewInt8Scalar(-12)},
		{nullvec.INT16, "0x10", scalar.NewInt16Scalar(16)},
		{nullvec.INT32, "7", scalar.NewInt32Scalar(7)},
		{nullvec.INT64, "-9000000000", scalar.NewInt64Scalar(-9000000000)},
		{nullvec.INT, "3", scalar.NewIntScalar(3)},
		{nullvec.UINT8, "255", scalar.NewUint8Scalar(255)},
		{nullvec.UINT16, "1", scalar.NewUint16Scalar(1)},
		{nullvec.UINT32, "2", scalar.NewUint32Scalar(2)},
		{nullvec.UINT64, "18446744073709551615", scalar.NewUint64Scalar(math.MaxUint64)},
		{nullvec.UINT, "4", scalar.NewUintScalar(4)},
		{nullvec.FLOAT32, "1.25", scalar.NewFloat32Scalar(1.25)},
		{nullvec.FLOAT64, "-0.5", scalar.NewFloat64Scalar(-0.5)},
		{nullvec.BOOL, "true", scalar.NewBooleanScalar(true)},
		{nullvec.STRING, "hello", scalar.NewStringScalar("hello")},
		{nullvec.INT64, "null", scalar.ScalarNull},
		{nullvec.STRING, "Null", scalar.ScalarNull},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.text, func(t *testing.T) {
			got, err := scalar.ParseScalar(tt.kind, tt.text)
			require.NoError(t, err)
			assert.True(t, scalar.Equals(tt.want, got), "got %s", got)
		})
	}
}

func TestParseScalarErrors(t *testing.T) {
	tests := []struct {
		kind nullvec.Kind
		text string
		want error
	}{
		{nullvec.INT8, "128", nullvec.ErrCoercion},
		{nullvec.UINT8, "-1", nullvec.ErrCoercion},
		{nullvec.FLOAT64, "abc", nullvec.ErrCoercion},
		{nullvec.BOOL, "maybe", nullvec.ErrCoercion},
		{nullvec.NULL, "1", nullvec.ErrTypeMismatch},
	}

	for _, tt := range tests {
		_, err := scalar.ParseScalar(tt.kind, tt.text)
		assert.True(t, errors.Is(err, tt.want), "%s %q: %v", tt.kind, tt.text, err)
		assert.ErrorIs(t, err, nullvec.ErrInvalid)
	}
}
