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

package array

import (
	"fmt"

	"github.com/goccy/go-json"
	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/scalar"
)

// factory builds kind erased vectors for one element type.
type factory interface {
	fromScalars(vals []scalar.Scalar) (vector, error)
	fromJSON(data []byte) (vector, error)
	empty() vector
}

type factoryOf[T nullvec.Storable] struct{}

func (factoryOf[T]) fromScalars(vals []scalar.Scalar) (vector, error) {
	out := make([]nullvec.Nullable[T], len(vals))
	for i, s := range vals {
		n, err := scalar.As[T](s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = n
	}
	return typed[T]{FromNullables(out)}, nil
}

func (factoryOf[T]) fromJSON(data []byte) (vector, error) {
	v := new(NullVec[T])
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return typed[T]{v}, nil
}

func (factoryOf[T]) empty() vector { return typed[T]{New([]T{})} }

var factories = [...]factory{
	nullvec.INT8:    factoryOf[int8]{},
	nullvec.INT16:   factoryOf[int16]{},
	nullvec.INT32:   factoryOf[int32]{},
	nullvec.INT64:   factoryOf[int64]{},
	nullvec.INT:     factoryOf[int]{},
	nullvec.UINT8:   factoryOf[uint8]{},
	nullvec.UINT16:  factoryOf[uint16]{},
	nullvec.UINT32:  factoryOf[uint32]{},
	nullvec.UINT64:  factoryOf[uint64]{},
	nullvec.UINT:    factoryOf[uint]{},
	nullvec.FLOAT32: factoryOf[float32]{},
	nullvec.FLOAT64: factoryOf[float64]{},
	nullvec.BOOL:    factoryOf[bool]{},
	nullvec.STRING:  factoryOf[string]{},
}

// factoryFor returns nil for NULL and invalid kinds.
func factoryFor(kind nullvec.Kind) factory {
	if kind <= nullvec.NULL || int(kind) >= len(factories) {
		return nil
	}
	return factories[kind]
}

// FromJSON decodes a JSON array as an Array of the given kind, with JSON null
// elements becoming nulls.
func FromJSON(kind nullvec.Kind, data []byte) (Array, error) {
	f := factoryFor(kind)
	if f == nil {
		return Array{}, fmt.Errorf("%w: no array of kind %s", nullvec.ErrTypeMismatch, kind)
	}
	vec, err := f.fromJSON(data)
	if err != nil {
		return Array{}, err
	}
	return Array{vec}, nil
}

// Empty returns an empty Array of the given kind.
func Empty(kind nullvec.Kind) (Array, error) {
	f := factoryFor(kind)
	if f == nil {
		return Array{}, fmt.Errorf("%w: no array of kind %s", nullvec.ErrTypeMismatch, kind)
	}
	return Array{f.empty()}, nil
}
