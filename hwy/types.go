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

// Package hwy provides the vector types and CPU dispatch information used by
// the pooling kernels.
//
// Kernels are written against an 8-lane float32 vector. When the module is
// built with GOEXPERIMENT=simd on amd64, the AVX2 kernels use
// simd/archsimd.Float32x8 directly. Everywhere else the portable Float32x8
// defined here is used; it has the same method set, so both kernel families
// are emitted from one template by cmd/poolgen.
//
// CurrentLevel is the single source of truth for kernel selection: packages
// bind their AVX2 kernels when CurrentLevel().SupportsAVX2() holds, so an
// AVX-512 machine reports level avx512 and runs the AVX2 kernels. Setting
// HWY_NO_SIMD forces the scalar level and with it the portable kernels.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-hwypool/hwy"
//
//	a := hwy.LoadFloat32x8Slice(data1)
//	b := hwy.LoadFloat32x8Slice(data2)
//	a.Max(b).StoreSlice(output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
