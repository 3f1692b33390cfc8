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

package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDescriber(kind nullvec.Kind) describer {
	return describer{kind: kind, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestDescribeIntegers(t *testing.T) {
	sum, err := newDescriber(nullvec.INT64).describe([]string{"1", "null", "2", "3"})
	require.NoError(t, err)

	assert.Equal(t, "i64", sum.Kind)
	assert.Equal(t, 4, sum.Len)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 1, sum.Nulls)
	assert.Equal(t, "6", sum.Sum.String())
	assert.Equal(t, "1", sum.Min.String())
	assert.Equal(t, "3", sum.Max.String())
	require.NotNil(t, sum.Mean)
	assert.Equal(t, 2.0, *sum.Mean)
	require.NotNil(t, sum.Var)
	assert.InDelta(t, 2.0/3.0, *sum.Var, 1e-12)
	require.NotNil(t, sum.Std)
}

func TestDescribeStrings(t *testing.T) {
	sum, err := newDescriber(nullvec.STRING).describe([]string{"b", "a", "Null"})
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Count)
	assert.Nil(t, sum.Sum)
	assert.Nil(t, sum.Mean)
	assert.Equal(t, "a", sum.Min.String())
	assert.Equal(t, "b", sum.Max.String())
}

func TestDescribeAllNull(t *testing.T) {
	sum, err := newDescriber(nullvec.FLOAT32).describe([]string{"null", "null"})
	require.NoError(t, err)

	assert.Equal(t, "f32", sum.Kind)
	assert.Equal(t, 2, sum.Len)
	assert.Equal(t, 2, sum.Nulls)
	assert.Zero(t, sum.Count)
	assert.Equal(t, nullvec.NULL, sum.Sum.Kind())
	assert.Nil(t, sum.Mean)
}

func TestDescribeParseError(t *testing.T) {
	_, err := newDescriber(nullvec.UINT8).describe([]string{"1", "x"})
	assert.ErrorIs(t, err, nullvec.ErrCoercion)
	assert.ErrorContains(t, err, "value 1")
}

func TestWriteOutput(t *testing.T) {
	sum, err := newDescriber(nullvec.BOOL).describe([]string{"true", "null"})
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, sum.writeText(&text))
	assert.Contains(t, text.String(), "count  1\n")
	assert.Contains(t, text.String(), "mean   -\n")

	var js bytes.Buffer
	require.NoError(t, sum.writeJSON(&js))
	assert.JSONEq(t, `{"kind": "bool", "len": 2, "count": 1, "nulls": 1}`, js.String())
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("1\n\n  null \n3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "null", "3"}, lines)
}
