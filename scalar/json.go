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

package scalar

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
	nullvec "github.com/sinhrks/go-nullvec"
)

// MarshalJSON encodes the held value. Floating point NaN and infinities,
// which JSON cannot represent, encode as null.
func (s Primitive[T]) MarshalJSON() ([]byte, error) {
	switch v := any(s.Value).(type) {
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return []byte("null"), nil
		}
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return []byte("null"), nil
		}
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON decodes a JSON value of T into s.
func (s *Primitive[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.Value)
}

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// FromJSON decodes one JSON value as a scalar of the given kind. A JSON null
// decodes to ScalarNull.
func FromJSON(kind nullvec.Kind, data []byte) (Scalar, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return ScalarNull, nil
	}

	switch kind {
	case nullvec.INT8:
		return decode[int8](data)
	case nullvec.INT16:
		return decode[int16](data)
	case nullvec.INT32:
		return decode[int32](data)
	case nullvec.INT64:
		return decode[int64](data)
	case nullvec.INT:
		return decode[int](data)
	case nullvec.UINT8:
		return decode[uint8](data)
	case nullvec.UINT16:
		return decode[uint16](data)
	case nullvec.UINT32:
		return decode[uint32](data)
	case nullvec.UINT64:
		return decode[uint64](data)
	case nullvec.UINT:
		return decode[uint](data)
	case nullvec.FLOAT32:
		return decode[float32](data)
	case nullvec.FLOAT64:
		return decode[float64](data)
	case nullvec.BOOL:
		return decode[bool](data)
	case nullvec.STRING:
		return decode[string](data)
	}
	return nil, fmt.Errorf("%w: cannot decode json as %s", nullvec.ErrTypeMismatch, kind)
}

func decode[T nullvec.Storable](data []byte) (Scalar, error) {
	var out Primitive[T]
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s", nullvec.ErrCoercion, err)
	}
	return out, nil
}
