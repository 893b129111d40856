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
	"context"
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-hwypool/hwy"
	"github.com/ajroetker/go-hwypool/hwy/contrib/workerpool"
)

// rowBatch is the number of output rows a worker claims at a time.
const rowBatch = 4

// segment is a run of count adjacent output columns starting at ow that one
// kernel call computes.
type segment struct {
	ow, count int
}

// plan is the padding arithmetic of one Pool2D call. It depends only on the
// shapes and parameters, so it is computed once and shared by all rows.
type plan struct {
	kind     Kind
	in, out  Shape
	rows     []taps // per output row
	cols     []taps // per output column
	segments []segment
	kernels  [MaxOutputCount]KernelFunc
	window   Window // fields shared by every call
}

func newPlan(kind Kind, p Params, in Shape) (*plan, error) {
	ah, aw := p.axes(in.H, in.W)
	oh, ow := ah.outSize(), aw.outSize()
	if oh < 1 || ow < 1 {
		return nil, fmt.Errorf("%w: input %v too small for %dx%d kernel with dilation %dx%d",
			ErrShape, in, p.KernelH, p.KernelW, p.DilationH, p.DilationW)
	}

	pl := &plan{
		kind: kind,
		in:   in,
		out:  Shape{N: in.N, C: in.C, H: oh, W: ow},
		rows: make([]taps, oh),
		cols: make([]taps, ow),
		window: Window{
			RowStride:      p.DilationH * in.W * BlockSize,
			ColStride:      p.DilationW * BlockSize,
			PositionStride: p.StrideW * BlockSize,
			WindowSize:     p.WindowSize(),
		},
	}
	for i := range pl.rows {
		if pl.rows[i] = ah.window(i); pl.rows[i].count() == 0 {
			return nil, fmt.Errorf("%w: output row %d", ErrEmptyWindow, i)
		}
	}
	for i := range pl.cols {
		if pl.cols[i] = aw.window(i); pl.cols[i].count() == 0 {
			return nil, fmt.Errorf("%w: output column %d", ErrEmptyWindow, i)
		}
	}

	// Adjacent columns can share a call only if they present the same taps:
	// then their first samples are exactly StrideW apart and, under
	// AverageExcludePad, their non-padding counts are equal.
	for o := 0; o < ow; {
		n := 1
		for n < MaxOutputCount && o+n < ow && pl.cols[o+n].k0 == pl.cols[o].k0 && pl.cols[o+n].k1 == pl.cols[o].k1 {
			n++
		}
		pl.segments = append(pl.segments, segment{ow: o, count: n})
		o += n
	}

	for i := range pl.kernels {
		pl.kernels[i] = Kernel(kind, i+1)
	}
	return pl, nil
}

// numRows is the number of (n, channel block, oh) output rows.
func (pl *plan) numRows() int {
	return pl.out.N * pl.out.ChannelBlocks() * pl.out.H
}

// run computes output rows [start, end).
func (pl *plan) run(in, out []float32, start, end int) {
	w := pl.window
	inRow := pl.in.W * BlockSize
	inPlane := pl.in.H * inRow
	outRow := pl.out.W * BlockSize

	for row := start; row < end; row++ {
		plane, oh := row/pl.out.H, row%pl.out.H
		rt := pl.rows[oh]
		base := plane*inPlane + rt.first*inRow
		w.Rows = rt.count()

		o := out[row*outRow : (row+1)*outRow]
		for _, seg := range pl.segments {
			ct := pl.cols[seg.ow]
			w.Cols = ct.count()
			w.NonPadCount = w.Rows * w.Cols
			o = pl.kernels[seg.count-1](in[base+ct.first*BlockSize:], &w, o)
		}
	}
}

// callCounts returns how many multi-block and single-block kernel calls
// one output row makes.
func (pl *plan) callCounts() (batched, single int) {
	for _, seg := range pl.segments {
		if seg.count > 1 {
			batched++
		} else {
			single++
		}
	}
	return batched, single
}

// prepare validates the arguments shared by Pool2D and Pool2DScalar and
// returns p with defaults applied.
func prepare(kind Kind, p Params, in []float32, inShape Shape) (Params, error) {
	if !kind.Valid() {
		return p, fmt.Errorf("%w: kind %v", ErrInvalidParams, kind)
	}
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return p, err
	}
	if err := inShape.validate(); err != nil {
		return p, err
	}
	if len(in) < inShape.BlockedLen() {
		return p, fmt.Errorf("%w: input has %d elements, %v needs %d", ErrShape, len(in), inShape, inShape.BlockedLen())
	}
	return p, nil
}

// Pool2D pools an NCHWc tensor. in holds inShape in NCHWc layout and out
// receives the result, also in NCHWc layout; it must hold at least
// OutputShape(inShape).BlockedLen() elements. The output shape is returned.
//
// Output rows are spread over pool; a nil pool runs on the calling
// goroutine. in must not be modified while Pool2D runs.
func Pool2D(pool *workerpool.Pool, kind Kind, p Params, in []float32, inShape Shape, out []float32) (Shape, error) {
	p, err := prepare(kind, p, in, inShape)
	if err != nil {
		return Shape{}, err
	}
	pl, err := newPlan(kind, p, inShape)
	if err != nil {
		return Shape{}, err
	}
	if need := pl.out.BlockedLen(); len(out) < need {
		return Shape{}, fmt.Errorf("%w: output has %d elements, %v needs %d", ErrShape, len(out), pl.out, need)
	}

	rows := pl.numRows()
	if pool == nil {
		pl.run(in, out, 0, rows)
	} else {
		pool.ParallelForAtomicBatched(rows, rowBatch, func(start, end int) {
			pl.run(in, out, start, end)
		})
	}

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		batched, single := pl.callCounts()
		log.Debug("pool2d",
			"kind", kind,
			"target", KernelTarget(),
			"level", hwy.CurrentName(),
			"in", inShape,
			"out", pl.out,
			"rows", rows,
			"batchedCallsPerRow", batched,
			"singleCallsPerRow", single)
	}
	return pl.out, nil
}

// OutputShape returns the shape Pool2D produces for inShape.
func (p Params) OutputShape(inShape Shape) Shape {
	oh, ow := p.OutputSize(inShape.H, inShape.W)
	return Shape{N: inShape.N, C: inShape.C, H: oh, W: ow}
}
