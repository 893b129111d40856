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

// Pool2DScalar is a direct reference implementation of Pool2D. It walks
// every tap of every window and skips taps that fall in the padding, with
// no batching and no kernels. Samples are accumulated in the same order as
// the kernels, so for non-NaN inputs the results match Pool2D exactly.
func Pool2DScalar(kind Kind, p Params, in []float32, inShape Shape, out []float32) (Shape, error) {
	p, err := prepare(kind, p, in, inShape)
	if err != nil {
		return Shape{}, err
	}
	outShape := p.OutputShape(inShape)
	if outShape.H < 1 || outShape.W < 1 {
		return Shape{}, fmt.Errorf("%w: input %v too small for %dx%d kernel", ErrShape, inShape, p.KernelH, p.KernelW)
	}
	if need := outShape.BlockedLen(); len(out) < need {
		return Shape{}, fmt.Errorf("%w: output has %d elements, %v needs %d", ErrShape, len(out), outShape, need)
	}

	planes := inShape.N * inShape.ChannelBlocks()
	for plane := range planes {
		src := in[plane*inShape.H*inShape.W*BlockSize:]
		dst := out[plane*outShape.H*outShape.W*BlockSize:]
		for oh := range outShape.H {
			for ow := range outShape.W {
				var acc [BlockSize]float32
				if kind == Maximum {
					for l := range acc {
						acc[l] = hwy.LowestFloat32
					}
				}
				n := 0
				for kh := range p.KernelH {
					ih := oh*p.StrideH - p.PadTop + kh*p.DilationH
					if ih < 0 || ih >= inShape.H {
						continue
					}
					for kw := range p.KernelW {
						iw := ow*p.StrideW - p.PadLeft + kw*p.DilationW
						if iw < 0 || iw >= inShape.W {
							continue
						}
						x := src[(ih*inShape.W+iw)*BlockSize:][:BlockSize]
						for l := range acc {
							if kind != Maximum {
								acc[l] += x[l]
							} else if x[l] > acc[l] {
								acc[l] = x[l]
							}
						}
						n++
					}
				}
				if n == 0 {
					return Shape{}, fmt.Errorf("%w: output (%d, %d)", ErrEmptyWindow, oh, ow)
				}

				y := dst[(oh*outShape.W+ow)*BlockSize:][:BlockSize]
				switch kind {
				case Maximum:
					copy(y, acc[:])
				case AverageIncludePad:
					for l := range acc {
						y[l] = acc[l] / float32(p.WindowSize())
					}
				case AverageExcludePad:
					for l := range acc {
						y[l] = acc[l] / float32(n)
					}
				}
			}
		}
	}
	return outShape, nil
}
