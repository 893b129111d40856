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

package pooling

import (
	"fmt"

	"github.com/ajroetker/go-hwypool/hwy"
)

const (
	// BlockSize is the number of channels in one NCHWc block, and the number
	// of float32 lanes every kernel processes per output block.
	BlockSize = hwy.Float32x8Lanes

	// MaxOutputCount is the largest number of adjacent output blocks a
	// single kernel call produces.
	MaxOutputCount = 3
)

// Window describes the samples a kernel call reduces. All strides are in
// float32 elements and are multiples of BlockSize for NCHWc data.
//
// For output position i (0 <= i < count) the call reads the blocks at
//
//	in[i*PositionStride + r*RowStride + c*ColStride:]
//
// for every 0 <= r < Rows and 0 <= c < Cols. Only positions that lie inside
// the input are described; padding is never presented.
type Window struct {
	// Rows and Cols are the extent of the presented (non-padding) window.
	Rows, Cols int

	// RowStride is the distance between presented window rows.
	RowStride int

	// ColStride is the distance between presented window columns.
	ColStride int

	// PositionStride is the distance between the windows of two adjacent
	// output positions.
	PositionStride int

	// WindowSize is the nominal window size KernelH*KernelW, the
	// AverageIncludePad denominator.
	WindowSize int

	// NonPadCount is the shared number of presented samples, the
	// AverageExcludePad denominator when more than one block is requested.
	// Single-block calls count samples instead.
	NonPadCount int
}

// Samples returns the number of samples presented per output position.
func (w *Window) Samples() int {
	return w.Rows * w.Cols
}

// KernelFunc reduces one window per output position into count adjacent
// output blocks, writes them to the start of out and returns out advanced by
// count*BlockSize elements.
//
// Preconditions, enforced by the caller and only checked with the pooldebug
// build tag:
//   - w.Rows >= 1 and w.Cols >= 1.
//   - every block addressed through in is inside in and holds input data.
//   - len(out) >= count*BlockSize.
//   - AverageIncludePad: w.WindowSize >= 1.
//   - AverageExcludePad with count > 1: w.NonPadCount equals the number of
//     presented samples, identical for all count windows.
//
// Violations produce wrong numbers (or an index panic), not errors.
// Calls share no state and may run concurrently on disjoint outputs.
type KernelFunc func(in []float32, w *Window, out []float32) []float32

// kernelTable holds the bound variants, indexed by [Kind][count-1].
// It is written once by init in the dispatch files.
var kernelTable [numKinds][MaxOutputCount]KernelFunc

// kernelTarget names the variant set in kernelTable.
var kernelTarget string

// Kernel returns the variant that reduces count adjacent output blocks for
// the given kind. Look it up once per batch of calls; the returned function
// contains no branch on kind or count.
//
// Kernel panics if kind is not defined or count is outside [1, MaxOutputCount].
func Kernel(kind Kind, count int) KernelFunc {
	if !kind.Valid() {
		panic(fmt.Sprintf("pooling: invalid kind %v", kind))
	}
	if count < 1 || count > MaxOutputCount {
		panic(fmt.Sprintf("pooling: output count %d out of range [1, %d]", count, MaxOutputCount))
	}
	return kernelTable[kind][count-1]
}

// KernelTarget returns the name of the bound kernel set: "avx2" or "fallback".
func KernelTarget() string {
	return kernelTarget
}

// PoolBlock looks up the variant for (kind, count) and runs it once.
// Loops should hoist the Kernel lookup instead.
func PoolBlock(kind Kind, count int, in []float32, w *Window, out []float32) []float32 {
	return Kernel(kind, count)(in, w, out)
}
