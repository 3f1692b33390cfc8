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

// Package gen provides seeded random vectors for tests.
package gen

import (
	"strconv"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/array"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomVecGenerator is a struct used for constructing random vectors for use
// with testing. The same seed always produces the same sequence of vectors.
type RandomVecGenerator struct {
	seed     uint64
	extra    uint64
	seedRand *rand.Rand
}

// NewRandomVecGenerator constructs a new generator with the requested seed.
func NewRandomVecGenerator(seed uint64) *RandomVecGenerator {
	return &RandomVecGenerator{seed, 0, rand.New(rand.NewSource(seed))}
}

// Mask returns n flags, each true with probability prob.
func (r *RandomVecGenerator) Mask(n int, prob float64) []bool {
	r.extra++

	// the bernoulli distribution yields 1 with probability P
	dist := distuv.Bernoulli{P: prob, Src: rand.NewSource(r.seed + r.extra)}
	out := make([]bool, n)
	for i := range out {
		out[i] = dist.Rand() != 0
	}
	return out
}

// Locs returns n positions drawn uniformly from [lo, hi).
func (r *RandomVecGenerator) Locs(n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + r.seedRand.Intn(hi-lo)
	}
	return out
}

// Values returns size random values of T. Integers fall in [-50, 50] for
// signed kinds and [0, 100] for unsigned kinds, floats in [-100, 100) and
// strings are short decimal numbers.
func Values[T nullvec.Storable](r *RandomVecGenerator, size int) []T {
	r.extra++
	dist := rand.New(rand.NewSource(r.seed + r.extra))
	out := make([]T, size)
	for i := range out {
		out[i] = randomValue[T](dist)
	}
	return out
}

// Vec returns a vector of size random values where each element is null with
// probability nullProb.
func Vec[T nullvec.Storable](r *RandomVecGenerator, size int, nullProb float64) *array.NullVec[T] {
	values := Values[T](r, size)
	if nullProb <= 0 {
		return array.New(values)
	}
	out, err := array.NewWithMask(values, r.Mask(size, nullProb))
	if err != nil {
		panic(err)
	}
	return out
}

func (r *RandomVecGenerator) Int64(size int, nullProb float64) *array.NullVec[int64] {
	return Vec[int64](r, size, nullProb)
}

func (r *RandomVecGenerator) Float64(size int, nullProb float64) *array.NullVec[float64] {
	return Vec[float64](r, size, nullProb)
}

func (r *RandomVecGenerator) Boolean(size int, nullProb float64) *array.NullVec[bool] {
	return Vec[bool](r, size, nullProb)
}

func (r *RandomVecGenerator) String(size int, nullProb float64) *array.NullVec[string] {
	return Vec[string](r, size, nullProb)
}

// Array returns a random Array of the given kind.
func (r *RandomVecGenerator) Array(kind nullvec.Kind, size int, nullProb float64) array.Array {
	switch kind {
	case nullvec.INT8:
		return array.ArrayOf(Vec[int8](r, size, nullProb))
	case nullvec.INT16:
		return array.ArrayOf(Vec[int16](r, size, nullProb))
	case nullvec.INT32:
		return array.ArrayOf(Vec[int32](r, size, nullProb))
	case nullvec.INT64:
		return array.ArrayOf(Vec[int64](r, size, nullProb))
	case nullvec.INT:
		return array.ArrayOf(Vec[int](r, size, nullProb))
	case nullvec.UINT8:
		return array.ArrayOf(Vec[uint8](r, size, nullProb))
	case nullvec.UINT16:
		return array.ArrayOf(Vec[uint16](r, size, nullProb))
	case nullvec.UINT32:
		return array.ArrayOf(Vec[uint32](r, size, nullProb))
	case nullvec.UINT64:
		return array.ArrayOf(Vec[uint64](r, size, nullProb))
	case nullvec.UINT:
		return array.ArrayOf(Vec[uint](r, size, nullProb))
	case nullvec.FLOAT32:
		return array.ArrayOf(Vec[float32](r, size, nullProb))
	case nullvec.FLOAT64:
		return array.ArrayOf(Vec[float64](r, size, nullProb))
	case nullvec.BOOL:
		return array.ArrayOf(Vec[bool](r, size, nullProb))
	case nullvec.STRING:
		return array.ArrayOf(Vec[string](r, size, nullProb))
	}
	panic("gen: no array of kind " + kind.String())
}

func randomValue[T nullvec.Storable](dist *rand.Rand) T {
	var out T
	signed := dist.Intn(101) - 50
	unsigned := dist.Intn(101)
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(signed)
	case *int16:
		*p = int16(signed)
	case *int32:
		*p = int32(signed)
	case *int64:
		*p = int64(signed)
	case *int:
		*p = signed
	case *uint8:
		*p = uint8(unsigned)
	case *uint16:
		*p = uint16(unsigned)
	case *uint32:
		*p = uint32(unsigned)
	case *uint64:
		*p = uint64(unsigned)
	case *uint:
		*p = uint(unsigned)
	case *float32:
		*p = float32(dist.Float64()*200 - 100)
	case *float64:
		*p = dist.Float64()*200 - 100
	case *bool:
		*p = unsigned%2 == 0
	case *string:
		*p = strconv.Itoa(signed)
	}
	return out
}
