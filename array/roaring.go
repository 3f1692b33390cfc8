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

	"github.com/RoaringBitmap/roaring/v2"
	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/bitutil"
)

// NewWithNullPositions returns a vector over values with the positions in
// nulls marked as null, in addition to folded NaN. A position beyond the end of
// values fails with ErrIndexOutOfBounds. A nil bitmap marks nothing.
func NewWithNullPositions[T nullvec.Storable](values []T, nulls *roaring.Bitmap) (*NullVec[T], error) {
	if nulls == nil || nulls.IsEmpty() {
		return New(values), nil
	}
	if last := int(nulls.Maximum()); last >= len(values) {
		return nil, fmt.Errorf("%w: null position %d for length %d", nullvec.ErrIndexOutOfBounds, last, len(values))
	}

	buf := make([]byte, bitutil.BytesForBits(len(values)))
	it := nulls.Iterator()
	for it.HasNext() {
		bitutil.SetBit(buf, int(it.Next()))
	}
	return build(values, buf), nil
}

// NullPositions returns the positions of the null elements as a roaring bitmap.
// The bitmap is empty when the vector has no nulls.
func (v *NullVec[T]) NullPositions() *roaring.Bitmap {
	out := roaring.New()
	if v.nulls == nil {
		return out
	}
	rdr := bitutil.NewBitmapReader(v.nulls, 0, len(v.data))
	for i := range v.data {
		if rdr.Set() {
			out.Add(uint32(i))
		}
		rdr.Next()
	}
	return out
}
