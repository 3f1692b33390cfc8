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
)

// MarshalJSON encodes the vector as a JSON array with null for each null
// element.
func (v *NullVec[T]) MarshalJSON() ([]byte, error) {
	out := make([]interface{}, len(v.data))
	for i, x := range v.data {
		if v.IsNullAt(i) {
			continue
		}
		out[i] = x
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces the contents of v with a JSON array of T, where a
// JSON null becomes a null element.
func (v *NullVec[T]) UnmarshalJSON(data []byte) error {
	var vals []*T
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("%w: decoding %s vector: %s", nullvec.ErrInvalid, nullvec.KindOf[T](), err)
	}

	out := make([]nullvec.Nullable[T], len(vals))
	for i, p := range vals {
		if p != nil {
			out[i] = nullvec.Value(*p)
		}
	}
	*v = *FromNullables(out)
	return nil
}
