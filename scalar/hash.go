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
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// NullHash is the hash of every null value regardless of seed.
const NullHash uint64 = 0x9e3779b97f4a7c15

// Hash returns the xxh3 hash of the value held by s. The kind is not part of
// the hash, so equal values of different kinds may collide. Every Null hashes
// to NullHash.
func Hash(seed uint64, s Scalar) uint64 {
	var buf [8]byte
	switch v := s.value().(type) {
	case nil:
		return NullHash
	case string:
		return xxh3.HashStringSeed(v, seed)
	case bool:
		if v {
			buf[0] = 1
		}
		return xxh3.HashSeed(buf[:1], seed)
	case float32:
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(v))
		return xxh3.HashSeed(buf[:4], seed)
	case float64:
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		return xxh3.HashSeed(buf[:], seed)
	case int8:
		return hashUint(seed, uint64(v), 1)
	case uint8:
		return hashUint(seed, uint64(v), 1)
	case int16:
		return hashUint(seed, uint64(v), 2)
	case uint16:
		return hashUint(seed, uint64(v), 2)
	case int32:
		return hashUint(seed, uint64(v), 4)
	case uint32:
		return hashUint(seed, uint64(v), 4)
	case int64:
		return hashUint(seed, uint64(v), 8)
	case uint64:
		return hashUint(seed, v, 8)
	case int:
		return hashUint(seed, uint64(v), 8)
	case uint:
		return hashUint(seed, uint64(v), 8)
	}
	panic("unreachable")
}

func hashUint(seed, v uint64, width int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxh3.HashSeed(buf[:width], seed)
}
