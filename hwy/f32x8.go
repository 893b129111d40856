// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// Float32x8Lanes is the number of lanes in a Float32x8.
const Float32x8Lanes = 8

// LowestFloat32 is the most negative finite float32. It is strictly below
// every finite float32 other than itself, including -0 and the negative
// denormals, which makes it the identity element for a running maximum over
// finite inputs.
const LowestFloat32 = -math.MaxFloat32

// Float32x8 is the portable 8-lane float32 vector.
//
// The method set mirrors archsimd.Float32x8 (LoadFloat32x8Slice,
// BroadcastFloat32x8, Add, Max, Div, StoreSlice). It is a plain value
// type: every operation returns a new vector and never allocates.
type Float32x8 [Float32x8Lanes]float32

// LoadFloat32x8Slice loads the first 8 elements of s.
// It panics if len(s) < 8.
func LoadFloat32x8Slice(s []float32) Float32x8 {
	return Float32x8(s[:Float32x8Lanes])
}

// BroadcastFloat32x8 returns a vector with all lanes set to x.
func BroadcastFloat32x8(x float32) Float32x8 {
	return Float32x8{x, x, x, x, x, x, x, x}
}

// StoreSlice writes the 8 lanes of v to the beginning of s.
// It panics if len(s) < 8.
func (v Float32x8) StoreSlice(s []float32) {
	*(*[Float32x8Lanes]float32)(s) = v
}

// Add returns the lane-wise sum v + y.
func (v Float32x8) Add(y Float32x8) Float32x8 {
	for i := range v {
		v[i] += y[i]
	}
	return v
}

// Div returns the lane-wise quotient v / y.
func (v Float32x8) Div(y Float32x8) Float32x8 {
	for i := range v {
		v[i] /= y[i]
	}
	return v
}

// Max returns the lane-wise maximum of v and y.
//
// A lane keeps v's value unless y's value compares greater, so a NaN in y is
// ignored and a NaN in v is kept. Hardware targets order NaN operands
// differently; callers must not depend on NaN propagation.
func (v Float32x8) Max(y Float32x8) Float32x8 {
	for i := range v {
		if y[i] > v[i] {
			v[i] = y[i]
		}
	}
	return v
}
