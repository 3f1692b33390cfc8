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

/*
Package array provides NullVec, a homogeneous one-dimensional sequence of values
with a null mask, and Array, its dynamically typed counterpart.

The null mask is a packed bitmap in which a set bit marks a null slot. A vector
without nulls carries no bitmap at all, and every constructor and operation
drops a bitmap which has no bit set, so HasNull is a constant time check.

Floating point NaN is never used as a null inside a vector: constructors fold
NaN into the mask and store the zero value in its place.

Vectors are immutable. Slices handed to constructors become owned by the vector
and slices returned by accessors must not be modified.
*/
package array
