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

// Package pooling provides SIMD 2-D pooling kernels over channel-blocked
// (NCHWc) float32 tensors.
//
// # Layout
//
// Channels are grouped into blocks of BlockSize (8) lanes. A tensor of shape
// [N, C, H, W] is stored as [N, ceil(C/8), H, W, 8]; one spatial position of
// one channel block is a single 8-lane vector. ReorderToNCHWc and
// ReorderFromNCHWc convert from and to plain NCHW.
//
// # Kernels
//
// The hot path is the pooling block kernel: one call reduces a pooling window
// into 1, 2 or 3 adjacent output blocks for one pooling Kind. Each of the nine
// (Kind × count) combinations is a separate function generated by
// cmd/poolgen, so no branch on the kind or count is taken inside the window
// loop. The driver selects a variant once with Kernel and calls it
// repeatedly:
//
//	kern := pooling.Kernel(pooling.Maximum, 3)
//	out = kern(in[off:], &w, out) // writes 24 floats, returns out[24:]
//
// Kernels do not validate their preconditions (see KernelFunc). Build with
// -tags pooldebug to turn on assertions.
//
// # Driver
//
// Pool2D is a complete NCHWc pooling operator built on the kernels: it does
// the padding arithmetic, batches interior output positions three at a time
// and spreads output rows over a workerpool.Pool.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	outShape, err := pooling.Pool2D(pool, pooling.AverageExcludePad, params, in, inShape, out)
//
// # Dispatch
//
// With GOEXPERIMENT=simd on an AVX2 machine the archsimd variants are bound;
// otherwise, or when HWY_NO_SIMD is set, the portable variants built on
// hwy.Float32x8 are used. KernelTarget reports which set is active.
package pooling

//go:generate go run ../../../cmd/poolgen -output . -targets all
