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
Package nullvec provides the type system shared by the nullable vector packages.

A NullVec is a homogeneous one-dimensional sequence of values paired with an
optional null mask. The mask is tracked independently of the stored values, so
every supported kind, including integers, booleans and strings, can represent
missing data. Floating point NaN values are folded into the mask when a vector is
constructed and are never used as an in-band null afterwards.

Basics

The fundamental pieces are:

  - Kind, a closed tag naming one of the fourteen supported element kinds.
  - Storable, the generic constraint listing the same fourteen Go types.
  - Nullable[T], a single value which is either present or null.
  - NullTraits[T], describing whether null can be folded into an in-band value.

The array package builds NullVec[T] and the dynamically typed Array on top of
these, the scalar package provides the dynamically typed Scalar, and the compute
package provides null-aware arithmetic and aggregations.

Errors

Every fallible operation reports one of the sentinel errors declared in this
package, wrapped with additional context. Use errors.Is to test for them.
*/
package nullvec
