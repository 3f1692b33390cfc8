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

// Package bitutil provides the packed bitmaps backing the null masks of the
// nullable vectors. Bits are numbered least significant first within each byte.
package bitutil

import (
	"encoding/binary"
	"math/bits"
)

var (
	BitMask        = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}
	FlippedBitMask = [8]byte{254, 253, 251, 247, 239, 223, 191, 127}
)

// BytesForBits returns the number of bytes needed to hold n bits.
func BytesForBits(n int) int { return (n + 7) >> 3 }

// CeilByte rounds size to the next multiple of 8.
func CeilByte(size int) int { return (size + 7) &^ 7 }

// BitIsSet returns true if the bit at index i in buf is set (1).
func BitIsSet(buf []byte, i int) bool { return (buf[uint(i)/8] & BitMask[byte(i)%8]) != 0 }

// BitIsNotSet returns true if the bit at index i in buf is not set (0).
func BitIsNotSet(buf []byte, i int) bool { return (buf[uint(i)/8] & BitMask[byte(i)%8]) == 0 }

// SetBit sets the bit at index i in buf to 1.
func SetBit(buf []byte, i int) { buf[uint(i)/8] |= BitMask[byte(i)%8] }

// ClearBit sets the bit at index i in buf to 0.
func ClearBit(buf []byte, i int) { buf[uint(i)/8] &= FlippedBitMask[byte(i)%8] }

// SetBitTo sets the bit at index i in buf to val.
func SetBitTo(buf []byte, i int, val bool) {
	if val {
		SetBit(buf, i)
	} else {
		ClearBit(buf, i)
	}
}

// CountSetBits counts the number of 1's in buf up to n bits.
func CountSetBits(buf []byte, n int) int {
	count := 0

	words := n / 64
	for i := 0; i < words; i++ {
		count += bits.OnesCount64(binary.LittleEndian.Uint64(buf[i*8:]))
	}

	for _, v := range buf[words*8 : n/8] {
		count += bits.OnesCount8(v)
	}

	// tail bits
	for i := n &^ 0x7; i < n; i++ {
		if BitIsSet(buf, i) {
			count++
		}
	}

	return count
}

// SetAll returns a new bitmap of n bits which are all set. Bits past n in the
// final byte are left clear.
func SetAll(n int) []byte {
	buf := make([]byte, BytesForBits(n))
	for i := range buf {
		buf[i] = 0xFF
	}
	if tail := n % 8; tail != 0 {
		buf[len(buf)-1] = byte(1<<tail) - 1
	}
	return buf
}

// FromBools packs vals into a new bitmap, returning it with the number of set
// bits.
func FromBools(vals []bool) ([]byte, int) {
	buf := make([]byte, BytesForBits(len(vals)))
	n := 0
	for i, v := range vals {
		if v {
			SetBit(buf, i)
			n++
		}
	}
	return buf, n
}

// ToBools unpacks the first n bits of buf. A nil buf is treated as all clear.
func ToBools(buf []byte, n int) []bool {
	out := make([]bool, n)
	if buf == nil {
		return out
	}
	for i := range out {
		out[i] = BitIsSet(buf, i)
	}
	return out
}

// Or writes the union of the first n bits of a and b into a new bitmap and
// returns it with the number of set bits. Either input may be nil, which reads
// as all clear.
func Or(a, b []byte, n int) ([]byte, int) {
	nbytes := BytesForBits(n)
	out := make([]byte, nbytes)
	if a != nil {
		copy(out, a[:nbytes])
	}
	if b != nil {
		for i, v := range b[:nbytes] {
			out[i] |= v
		}
	}
	if tail := n % 8; tail != 0 && nbytes > 0 {
		out[nbytes-1] &= byte(1<<tail) - 1
	}
	return out, CountSetBits(out, n)
}

// CopyBitmap copies length bits from src starting at bit srcOffset into dst
// starting at bit dstOffset, preserving the surrounding bits of dst.
func CopyBitmap(src []byte, srcOffset, length int, dst []byte, dstOffset int) {
	if length == 0 {
		return
	}

	if srcOffset%8 == 0 && dstOffset%8 == 0 && length%8 == 0 {
		copy(dst[dstOffset/8:], src[srcOffset/8:(srcOffset+length)/8])
		return
	}

	rdr := NewBitmapReader(src, srcOffset, length)
	wr := NewBitmapWriter(dst, dstOffset, length)
	for i := 0; i < length; i++ {
		if rdr.Set() {
			wr.Set()
		} else {
			wr.Clear()
		}
		rdr.Next()
		wr.Next()
	}
	wr.Finish()
}
