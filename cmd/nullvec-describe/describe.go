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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/goccy/go-json"
	nullvec "github.com/sinhrks/go-nullvec"
	"github.com/sinhrks/go-nullvec/array"
	"github.com/sinhrks/go-nullvec/compute"
	"github.com/sinhrks/go-nullvec/scalar"
)

type describer struct {
	kind   nullvec.Kind
	logger *slog.Logger
}

type summary struct {
	Kind  string        `json:"kind"`
	Len   int           `json:"len"`
	Count int           `json:"count"`
	Nulls int           `json:"nulls"`
	Sum   scalar.Scalar `json:"sum,omitempty"`
	Mean  *float64      `json:"mean,omitempty"`
	Var   *float64      `json:"var,omitempty"`
	Std   *float64      `json:"std,omitempty"`
	Min   scalar.Scalar `json:"min,omitempty"`
	Max   scalar.Scalar `json:"max,omitempty"`
}

// parse builds an array of d.kind from text values.
func (d describer) parse(values []string) (array.Array, error) {
	scalars := make([]scalar.Scalar, len(values))
	for i, v := range values {
		s, err := scalar.ParseScalar(d.kind, v)
		if err != nil {
			return array.Array{}, fmt.Errorf("value %d: %w", i, err)
		}
		scalars[i] = s
	}

	arr, err := array.FromScalars(scalars)
	if errors.Is(err, nullvec.ErrEmptyInput) {
		// nothing to infer from, every value is missing
		empty, err := array.Empty(d.kind)
		if err != nil {
			return array.Array{}, err
		}
		locs := make([]int, len(values))
		for i := range locs {
			locs[i] = i
		}
		return empty.IlocsForced(locs), nil
	}
	return arr, err
}

func (d describer) describe(values []string) (*summary, error) {
	arr, err := d.parse(values)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("parsed values", "kind", arr.DType(), "len", arr.Len(), "nulls", arr.NullN())

	out := &summary{
		Kind:  arr.DType(),
		Len:   arr.Len(),
		Count: compute.CountArray(arr),
		Nulls: arr.NullN(),
	}

	scalars := []struct {
		name string
		fn   func(array.Array) (scalar.Scalar, error)
		dst  *scalar.Scalar
	}{
		{"sum", compute.SumArray, &out.Sum},
		{"min", compute.MinArray, &out.Min},
		{"max", compute.MaxArray, &out.Max},
	}
	for _, agg := range scalars {
		res, err := agg.fn(arr)
		if err != nil {
			if err = d.skip(agg.name, err); err != nil {
				return nil, err
			}
			continue
		}
		*agg.dst = res
	}

	floats := []struct {
		name string
		fn   func(array.Array) (nullvec.Nullable[float64], error)
		dst  **float64
	}{
		{"mean", compute.MeanArray, &out.Mean},
		{"var", compute.VarArray, &out.Var},
		{"std", compute.StdArray, &out.Std},
	}
	for _, agg := range floats {
		res, err := agg.fn(arr)
		if err != nil {
			if err = d.skip(agg.name, err); err != nil {
				return nil, err
			}
			continue
		}
		if v, ok := res.Get(); ok && !math.IsNaN(v) {
			*agg.dst = &v
		}
	}
	return out, nil
}

// skip swallows the error of an aggregation the kind does not support.
func (d describer) skip(name string, err error) error {
	if !errors.Is(err, nullvec.ErrTypeMismatch) {
		return err
	}
	d.logger.Debug("skipping aggregation", "agg", name, "kind", d.kind)
	return nil
}

func (s *summary) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func (s *summary) writeText(w io.Writer) error {
	rows := []struct {
		name string
		val  interface{}
	}{
		{"kind", s.Kind},
		{"len", s.Len},
		{"count", s.Count},
		{"nulls", s.Nulls},
		{"sum", s.Sum},
		{"mean", s.Mean},
		{"var", s.Var},
		{"std", s.Std},
		{"min", s.Min},
		{"max", s.Max},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-6s %s\n", r.name, format(r.val)); err != nil {
			return err
		}
	}
	return nil
}

func format(v interface{}) string {
	switch v := v.(type) {
	case *float64:
		if v == nil {
			return "-"
		}
		return fmt.Sprint(*v)
	case scalar.Scalar:
		return v.String()
	case nil:
		return "-"
	}
	return fmt.Sprint(v)
}
