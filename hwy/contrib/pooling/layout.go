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

// ReorderToNCHWc converts a plain NCHW tensor of shape s into NCHWc layout.
// Lanes of the last channel block beyond C are zero.
func ReorderToNCHWc[T hwy.Floats](src []T, s Shape) []T {
	if len(src) < s.Len() {
		panic("pooling: src slice too short")
	}
	dst := make([]T, s.BlockedLen())
	hw := s.H * s.W
	cb := s.ChannelBlocks()
	for n := range s.N {
		for c := range s.C {
			plane := src[(n*s.C+c)*hw:][:hw]
			block, lane := c/BlockSize, c%BlockSize
			out := dst[(n*cb+block)*hw*BlockSize:]
			for i, x := range plane {
				out[i*BlockSize+lane] = x
			}
		}
	}
	return dst
}

// ReorderFromNCHWc converts an NCHWc tensor of shape s back to plain NCHW,
// dropping the padding lanes of the last channel block.
func ReorderFromNCHWc[T hwy.Floats](src []T, s Shape) []T {
	if len(src) < s.BlockedLen() {
		panic("pooling: src slice too short")
	}
	dst := make([]T, s.Len())
	hw := s.H * s.W
	cb := s.ChannelBlocks()
	for n := range s.N {
		for c := range s.C {
			plane := dst[(n*s.C+c)*hw:][:hw]
			block, lane := c/BlockSize, c%BlockSize
			in := src[(n*cb+block)*hw*BlockSize:]
			for i := range plane {
				plane[i] = in[i*BlockSize+lane]
			}
		}
	}
	return dst
}
