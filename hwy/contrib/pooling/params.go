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
	"fmt"
)

var (
	// ErrInvalidParams is returned when pooling parameters are out of range.
	ErrInvalidParams = errors.New("pooling: invalid parameters")

	// ErrShape is returned when a shape or buffer length does not match.
	ErrShape = errors.New("pooling: shape mismatch")

	// ErrEmptyWindow is returned when some output window would contain no
	// input sample at all, which the kernels cannot reduce.
	ErrEmptyWindow = errors.New("pooling: window without input samples")
)

// Params holds the 2-D pooling hyper-parameters. Zero strides and dilations
// mean 1.
type Params struct {
	KernelH, KernelW     int
	StrideH, StrideW     int
	PadTop, PadLeft      int
	PadBottom, PadRight  int
	DilationH, DilationW int

	// CeilMode rounds the output size up instead of down. A trailing window
	// that would start inside the end padding is dropped.
	CeilMode bool
}

// withDefaults returns p with zero strides and dilations replaced by 1.
func (p Params) withDefaults() Params {
	if p.StrideH == 0 {
		p.StrideH = 1
	}
	if p.StrideW == 0 {
		p.StrideW = 1
	}
	if p.DilationH == 0 {
		p.DilationH = 1
	}
	if p.DilationW == 0 {
		p.DilationW = 1
	}
	return p
}

// WindowSize returns the nominal number of taps KernelH*KernelW.
func (p Params) WindowSize() int {
	return p.KernelH * p.KernelW
}

// Validate checks that the parameters describe a usable pooling. Every
// padding must be smaller than the dilated kernel extent along its axis, so
// that no window lies entirely in padding.
func (p Params) Validate() error {
	p = p.withDefaults()
	switch {
	case p.KernelH < 1 || p.KernelW < 1:
		return fmt.Errorf("%w: kernel %dx%d", ErrInvalidParams, p.KernelH, p.KernelW)
	case p.StrideH < 1 || p.StrideW < 1:
		return fmt.Errorf("%w: stride %dx%d", ErrInvalidParams, p.StrideH, p.StrideW)
	case p.DilationH < 1 || p.DilationW < 1:
		return fmt.Errorf("%w: dilation %dx%d", ErrInvalidParams, p.DilationH, p.DilationW)
	case p.PadTop < 0 || p.PadLeft < 0 || p.PadBottom < 0 || p.PadRight < 0:
		return fmt.Errorf("%w: negative padding (%d, %d, %d, %d)", ErrInvalidParams, p.PadTop, p.PadLeft, p.PadBottom, p.PadRight)
	}
	h, w := p.axes(0, 0)
	if ext := h.extent(); p.PadTop >= ext || p.PadBottom >= ext {
		return fmt.Errorf("%w: vertical padding (%d, %d) not below kernel extent %d", ErrInvalidParams, p.PadTop, p.PadBottom, ext)
	}
	if ext := w.extent(); p.PadLeft >= ext || p.PadRight >= ext {
		return fmt.Errorf("%w: horizontal padding (%d, %d) not below kernel extent %d", ErrInvalidParams, p.PadLeft, p.PadRight, ext)
	}
	return nil
}

// OutputSize returns the output height and width for an input of h×w.
// Either is 0 when the padded input is smaller than the dilated kernel.
func (p Params) OutputSize(h, w int) (oh, ow int) {
	ah, aw := p.withDefaults().axes(h, w)
	return ah.outSize(), aw.outSize()
}

func (p Params) axes(h, w int) (axis, axis) {
	ah := axis{in: h, kernel: p.KernelH, stride: p.StrideH, dilation: p.DilationH, padBegin: p.PadTop, padEnd: p.PadBottom, ceil: p.CeilMode}
	aw := axis{in: w, kernel: p.KernelW, stride: p.StrideW, dilation: p.DilationW, padBegin: p.PadLeft, padEnd: p.PadRight, ceil: p.CeilMode}
	return ah, aw
}

// axis is the pooling geometry along one spatial dimension.
type axis struct {
	in, kernel, stride, dilation int
	padBegin, padEnd             int
	ceil                         bool
}

// extent is the span of the dilated kernel.
func (a axis) extent() int {
	return (a.kernel-1)*a.dilation + 1
}

func (a axis) outSize() int {
	span := a.in + a.padBegin + a.padEnd - a.extent()
	if span < 0 {
		return 0
	}
	if !a.ceil {
		return span/a.stride + 1
	}
	o := (span+a.stride-1)/a.stride + 1
	if (o-1)*a.stride >= a.in+a.padBegin {
		o--
	}
	return o
}

// taps is the contiguous range [k0, k1) of kernel taps of one output
// position that land inside the input; first is the input index of tap k0.
type taps struct {
	k0, k1, first int
}

func (t taps) count() int {
	return t.k1 - t.k0
}

// window returns the taps of output position o.
func (a axis) window(o int) taps {
	start := o*a.stride - a.padBegin
	t := taps{k1: a.kernel}
	if start < 0 {
		t.k0 = (-start + a.dilation - 1) / a.dilation
	}
	if rem := a.in - start; rem <= 0 {
		t.k1 = 0
	} else {
		t.k1 = min(t.k1, (rem+a.dilation-1)/a.dilation)
	}
	t.k1 = max(t.k1, t.k0)
	t.first = start + t.k0*a.dilation
	return t
}

// Shape is the logical NCHW shape of a tensor stored in NCHWc layout.
type Shape struct {
	N, C, H, W int
}

// ChannelBlocks returns the number of BlockSize channel blocks, ceil(C/8).
func (s Shape) ChannelBlocks() int {
	return (s.C + BlockSize - 1) / BlockSize
}

// Len returns the number of elements of the plain NCHW tensor.
func (s Shape) Len() int {
	return s.N * s.C * s.H * s.W
}

// BlockedLen returns the number of elements of the NCHWc tensor, including
// the zero lanes that pad the last channel block.
func (s Shape) BlockedLen() int {
	return s.N * s.ChannelBlocks() * s.H * s.W * BlockSize
}

// String formats the shape as [N C H W].
func (s Shape) String() string {
	return fmt.Sprintf("[%d %d %d %d]", s.N, s.C, s.H, s.W)
}

func (s Shape) validate() error {
	if s.N < 1 || s.C < 1 || s.H < 1 || s.W < 1 {
		return fmt.Errorf("%w: non-positive dimension in %v", ErrShape, s)
	}
	return nil
}
