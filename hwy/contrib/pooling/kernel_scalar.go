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

import "github.com/ajroetker/go-hwypool/hwy"

// PoolBlockScalar is the scalar reference for the kernel family. It follows
// the same initialize, accumulate and finalize steps lane by lane, in the same
// order, so its results are bit-identical to the vector variants for
// non-NaN inputs.
func PoolBlockScalar(kind Kind, count int, in []float32, w *Window, out []float32) []float32 {
	checkCall(kind, count, in, w, out)

	var acc [MaxOutputCount][BlockSize]float32
	if kind == Maximum {
		for i := range count {
			for l := range BlockSize {
				acc[i][l] = hwy.LowestFloat32
			}
		}
	}

	n := 0
	for r := range w.Rows {
		for c := range w.Cols {
			off := r*w.RowStride + c*w.ColStride
			for i := range count {
				base := off + i*w.PositionStride
				for l := range BlockSize {
					x := in[base+l]
					if kind == Maximum {
						if x > acc[i][l] {
							acc[i][l] = x
						}
					} else {
						acc[i][l] += x
					}
				}
			}
			n++
		}
	}

	var div float32
	switch {
	case kind == AverageIncludePad:
		div = float32(w.WindowSize)
	case kind == AverageExcludePad && count == 1:
		div = float32(n)
	case kind == AverageExcludePad:
		div = float32(w.NonPadCount)
	}

	for i := range count {
		dst := out[i*BlockSize : (i+1)*BlockSize]
		for l := range BlockSize {
			if kind == Maximum {
				dst[l] = acc[i][l]
			} else {
				dst[l] = acc[i][l] / div
			}
		}
	}
	return out[count*BlockSize:]
}
