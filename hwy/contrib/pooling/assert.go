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

import "fmt"

// validateCall checks the KernelFunc preconditions for a call with the given
// buffer lengths. It backs the pooldebug assertions and the tests.
func validateCall(kind Kind, count, inLen int, w *Window, outLen int) error {
	switch {
	case !kind.Valid():
		return fmt.Errorf("invalid kind %d", int(kind))
	case count < 1 || count > MaxOutputCount:
		return fmt.Errorf("output count %d out of range [1, %d]", count, MaxOutputCount)
	case w == nil:
		return fmt.Errorf("nil window")
	case w.Rows < 1 || w.Cols < 1:
		return fmt.Errorf("empty window %dx%d", w.Rows, w.Cols)
	case w.RowStride < 0 || w.ColStride < 0 || w.PositionStride < 0:
		return fmt.Errorf("negative stride (row %d, col %d, position %d)", w.RowStride, w.ColStride, w.PositionStride)
	case kind == AverageIncludePad && w.WindowSize < 1:
		return fmt.Errorf("window size %d < 1", w.WindowSize)
	case kind == AverageIncludePad && w.WindowSize < w.Samples():
		return fmt.Errorf("window size %d below presented samples %d", w.WindowSize, w.Samples())
	case kind == AverageExcludePad && count > 1 && w.NonPadCount != w.Samples():
		return fmt.Errorf("non-padding count %d does not match presented samples %d", w.NonPadCount, w.Samples())
	}

	last := (w.Rows-1)*w.RowStride + (w.Cols-1)*w.ColStride + (count-1)*w.PositionStride + BlockSize
	if last > inLen {
		return fmt.Errorf("window reads %d elements, input has %d", last, inLen)
	}
	if need := count * BlockSize; outLen < need {
		return fmt.Errorf("output has %d elements, need %d", outLen, need)
	}
	return nil
}
