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
	"errors"
	"testing"
)

func TestParamsOutputSize(t *testing.T) {
	tests := []struct {
		name   string
		p      Params
		h, w   int
		oh, ow int
	}{
		{"2x2s2", Params{KernelH: 2, KernelW: 2, StrideH: 2, StrideW: 2}, 8, 8, 4, 4},
		{"odd floor", Params{KernelH: 2, KernelW: 2, StrideH: 2, StrideW: 2}, 7, 7, 3, 3},
		{"odd ceil", Params{KernelH: 2, KernelW: 2, StrideH: 2, StrideW: 2, CeilMode: true}, 7, 7, 4, 4},
		{"same padding", Params{KernelH: 3, KernelW: 3, PadTop: 1, PadLeft: 1, PadBottom: 1, PadRight: 1}, 5, 6, 5, 6},
		{"dilated", Params{KernelH: 3, KernelW: 3, DilationH: 2, DilationW: 3}, 10, 10, 6, 4},
		{"too small", Params{KernelH: 4, KernelW: 4}, 3, 8, 0, 5},
		{"zero stride means one", Params{KernelH: 1, KernelW: 1}, 4, 5, 4, 5},
		// The last window would start in the end padding and is dropped.
		{"ceil drops padding-only window", Params{KernelH: 2, KernelW: 2, StrideH: 2, StrideW: 2, PadBottom: 1, PadRight: 1, CeilMode: true}, 4, 4, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oh, ow := tt.p.OutputSize(tt.h, tt.w)
			if oh != tt.oh || ow != tt.ow {
				t.Errorf("OutputSize(%d, %d) = (%d, %d), want (%d, %d)", tt.h, tt.w, oh, ow, tt.oh, tt.ow)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		valid bool
	}{
		{"ok", Params{KernelH: 3, KernelW: 3, PadTop: 2, PadLeft: 2}, true},
		{"zero kernel", Params{KernelH: 0, KernelW: 3}, false},
		{"negative stride", Params{KernelH: 2, KernelW: 2, StrideW: -2}, false},
		{"negative dilation", Params{KernelH: 2, KernelW: 2, DilationH: -1}, false},
		{"negative padding", Params{KernelH: 2, KernelW: 2, PadRight: -1}, false},
		{"padding equals kernel", Params{KernelH: 2, KernelW: 2, PadLeft: 2}, false},
		{"padding within dilated kernel", Params{KernelH: 2, KernelW: 2, DilationW: 3, PadLeft: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err == nil) != tt.valid {
				t.Fatalf("Validate() = %v, valid %v", err, tt.valid)
			}
			if err != nil && !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestAxisWindow(t *testing.T) {
	// Kernel 3, dilation 2, stride 1, one-pixel padding, 6 inputs.
	a := axis{in: 6, kernel: 3, stride: 1, dilation: 2, padBegin: 1, padEnd: 1}
	tests := []struct {
		o    int
		want taps
	}{
		{0, taps{k0: 1, k1: 3, first: 1}}, // taps at -1, 1, 3
		{1, taps{k0: 0, k1: 3, first: 0}}, // 0, 2, 4
		{2, taps{k0: 0, k1: 3, first: 1}}, // 1, 3, 5
		{3, taps{k0: 0, k1: 2, first: 2}}, // 2, 4, 6
	}
	if got := a.outSize(); got != 4 {
		t.Fatalf("outSize() = %d, want 4", got)
	}
	for _, tt := range tests {
		if got := a.window(tt.o); got != tt.want {
			t.Errorf("window(%d) = %+v, want %+v", tt.o, got, tt.want)
		}
	}
}

func TestShape(t *testing.T) {
	s := Shape{N: 2, C: 9, H: 3, W: 4}
	if got := s.ChannelBlocks(); got != 2 {
		t.Errorf("ChannelBlocks() = %d, want 2", got)
	}
	if got := s.Len(); got != 2*9*3*4 {
		t.Errorf("Len() = %d, want %d", got, 2*9*3*4)
	}
	if got := s.BlockedLen(); got != 2*2*3*4*BlockSize {
		t.Errorf("BlockedLen() = %d, want %d", got, 2*2*3*4*BlockSize)
	}
	if got := s.String(); got != "[2 9 3 4]" {
		t.Errorf("String() = %q", got)
	}
	if err := (Shape{N: 1, C: 1, H: 0, W: 1}).validate(); !errors.Is(err, ErrShape) {
		t.Errorf("validate() = %v, want ErrShape", err)
	}
}

func TestOutputShape(t *testing.T) {
	p := Params{KernelH: 3, KernelW: 3, StrideH: 2, StrideW: 2}
	got := p.OutputShape(Shape{N: 2, C: 20, H: 9, W: 11})
	want := Shape{N: 2, C: 20, H: 4, W: 5}
	if got != want {
		t.Errorf("OutputShape() = %v, want %v", got, want)
	}
}
