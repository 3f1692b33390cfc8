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

package compute_test

import (
	"fmt"
	"math"

	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/array"
	"github.com/sinhrks/go-nullvec/compute"
)

func ExampleAdd() {
	lhs := array.New([]float64{1, math.NaN(), 3})
	rhs := array.New([]float64{1, 2, 3})

	out, err := compute.Add(compute.ArithmeticOptions{}, lhs, rhs)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	fmt.Println(out.IsNull())
	// Output:
	// [2 Null 6]
	// [false true false]
}

func ExampleMean() {
	v, err := array.NewWithMask([]int64{1, 2, 3}, []bool{true, false, false})
	if err != nil {
		panic(err)
	}
	fmt.Println(compute.Sum(v), compute.Count(v), compute.Mean(v))
	fmt.Println(compute.Mean(array.New([]int64{})))
	// Output:
	// 5 2 2.5
	// Null
}

func ExampleArithmeticScalar() {
	v := array.New([]int{10, 20, 30})
	out, err := compute.ArithmeticScalar(compute.OpDiv, compute.ArithmeticOptions{CheckOverflow: true}, v, nullvec.Value(10))
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// [1 2 3]
}
