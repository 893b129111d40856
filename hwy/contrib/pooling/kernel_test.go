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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-hwypool/hwy"
)

// image is a single NCHWc channel block of h×w pixels.
type image struct {
	h, w int
	data []float32
}

func newImage(rng *rand.Rand, h, w int) image {
	img := image{h: h, w: w, data: make([]float32, h*w*BlockSize)}
	for i := range img.data {
		img.data[i] = rng.Float32()*20 - 10
	}
	return img
}

func (img image) at(y, x int) []float32 {
	return img.data[(y*img.w+x)*BlockSize:]
}

// window presents a rows×cols window at (y, x) with the given horizontal
// output stride.
func (img image) window(rows, cols, stride int) *Window {
	return &Window{
		Rows:           rows,
		Cols:           cols,
		RowStride:      img.w * BlockSize,
		ColStride:      BlockSize,
		PositionStride: stride * BlockSize,
		WindowSize:     rows * cols,
		NonPadCount:    rows * cols,
	}
}

// variants returns the kernel sets to check: the portable one always, and
// the bound one when it differs.
func variants() map[string][numKinds][MaxOutputCount]KernelFunc {
	sets := map[string][numKinds][MaxOutputCount]KernelFunc{"fallback": kernels_fallback}
	if KernelTarget() != "fallback" {
		sets[KernelTarget()] = kernelTable
	}
	return sets
}

func TestKernelConstantWindow(t *testing.T) {
	// 2x2 samples of 2.0 presented from a 2x3 kernel whose third column
	// lies in the padding.
	in := make([]float32, 4*BlockSize)
	for i := range in {
		in[i] = 2
	}
	w := &Window{Rows: 2, Cols: 2, RowStride: 2 * BlockSize, ColStride: BlockSize, WindowSize: 6, NonPadCount: 4}

	want := map[Kind]float32{
		Maximum:           2,
		AverageIncludePad: 8.0 / 6.0,
		AverageExcludePad: 2,
	}
	for name, set := range variants() {
		for _, kind := range Kinds {
			out := make([]float32, BlockSize)
			set[kind][0](in, w, out)
			for l, got := range out {
				if !cmp.Equal(got, want[kind], cmpopts.EquateApprox(0, 1e-6)) {
					t.Errorf("%s %v lane %d = %v, want %v", name, kind, l, got, want[kind])
				}
			}
		}
	}
}

func TestKernelMaximumSingleNegative(t *testing.T) {
	in := make([]float32, BlockSize)
	for i := range in {
		in[i] = -5
	}
	w := &Window{Rows: 1, Cols: 1, ColStride: BlockSize, RowStride: BlockSize, WindowSize: 1, NonPadCount: 1}

	for name, set := range variants() {
		out := make([]float32, BlockSize)
		set[Maximum][0](in, w, out)
		want := []float32{-5, -5, -5, -5, -5, -5, -5, -5}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("%s: max of one -5 block (-want +got):\n%s", name, diff)
		}
	}
}

func TestKernelMaximumIgnoresSentinel(t *testing.T) {
	// Inputs below zero, including -Inf, never surface anything smaller
	// than the running-maximum identity.
	in := []float32{
		-1, -2, -3, -4, -5, -6, -7, float32(math.Inf(-1)),
		-8, -1, -2, -3, -4, -5, -6, float32(math.Inf(-1)),
	}
	w := &Window{Rows: 1, Cols: 2, ColStride: BlockSize, RowStride: 2 * BlockSize, WindowSize: 2, NonPadCount: 2}
	for name, set := range variants() {
		out := make([]float32, BlockSize)
		set[Maximum][0](in, w, out)
		want := []float32{-1, -1, -2, -3, -4, -5, -6, hwy.LowestFloat32}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("%s (-want +got):\n%s", name, diff)
		}
	}
}

func TestKernelAdvancesOutput(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	img := newImage(rng, 4, 8)
	w := img.window(2, 2, 2)

	for name, set := range variants() {
		for _, kind := range Kinds {
			for count := 1; count <= MaxOutputCount; count++ {
				out := make([]float32, 4*BlockSize)
				for i := range out {
					out[i] = 42
				}
				rest := set[kind][count-1](img.data, w, out)
				if len(rest) != len(out)-count*BlockSize {
					t.Fatalf("%s %v x%d: returned %d elements, want %d", name, kind, count, len(rest), len(out)-count*BlockSize)
				}
				if &rest[0] != &out[count*BlockSize] {
					t.Errorf("%s %v x%d: returned slice does not start after the written blocks", name, kind, count)
				}
				for i, v := range out[count*BlockSize:] {
					if v != 42 {
						t.Errorf("%s %v x%d: out[%d] overwritten with %v", name, kind, count, count*BlockSize+i, v)
					}
				}
			}
		}
	}
}

func TestKernelBatchedMatchesSingle(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	img := newImage(rng, 7, 11)

	for name, set := range variants() {
		for _, kind := range Kinds {
			for _, stride := range []int{1, 2, 3} {
				w := img.window(3, 2, stride)
				for count := 2; count <= MaxOutputCount; count++ {
					batched := make([]float32, count*BlockSize)
					set[kind][count-1](img.data, w, batched)

					single := make([]float32, count*BlockSize)
					rest := single
					for i := range count {
						rest = set[kind][0](img.data[i*w.PositionStride:], w, rest)
					}
					if diff := cmp.Diff(single, batched); diff != "" {
						t.Errorf("%s %v x%d stride %d: batched differs from single calls (-single +batched):\n%s",
							name, kind, count, stride, diff)
					}
				}
			}
		}
	}
}

func TestKernelMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	img := newImage(rng, 9, 13)

	windows := []struct{ rows, cols, stride int }{
		{1, 1, 1}, {2, 2, 2}, {3, 3, 1}, {3, 2, 2}, {1, 4, 3}, {5, 3, 1},
	}
	for name, set := range variants() {
		for _, kind := range Kinds {
			for _, win := range windows {
				w := img.window(win.rows, win.cols, win.stride)
				w.WindowSize += 3 // pretend some taps fell in the padding
				for count := 1; count <= MaxOutputCount; count++ {
					t.Run(fmt.Sprintf("%s/%v/%dx%d/s%d/x%d", name, kind, win.rows, win.cols, win.stride, count), func(t *testing.T) {
						got := make([]float32, count*BlockSize)
						set[kind][count-1](img.data, w, got)
						want := make([]float32, count*BlockSize)
						PoolBlockScalar(kind, count, img.data, w, want)
						for i := range want {
							if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
								t.Fatalf("element %d = %v, want %v", i, got[i], want[i])
							}
						}
					})
				}
			}
		}
	}
}

func TestKernelLanesIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	img := newImage(rng, 3, 3)
	w := img.window(3, 3, 1)

	for name, set := range variants() {
		for _, kind := range Kinds {
			base := make([]float32, BlockSize)
			set[kind][0](img.data, w, base)

			// Perturb lane 3 only; every other lane must be unchanged.
			perturbed := append([]float32(nil), img.data...)
			for i := 3; i < len(perturbed); i += BlockSize {
				perturbed[i] += 100
			}
			out := make([]float32, BlockSize)
			set[kind][0](perturbed, w, out)
			for l := range BlockSize {
				if l == 3 {
					if out[l] == base[l] {
						t.Errorf("%s %v: lane 3 did not change", name, kind)
					}
					continue
				}
				if out[l] != base[l] {
					t.Errorf("%s %v: lane %d changed from %v to %v", name, kind, l, base[l], out[l])
				}
			}
		}
	}
}

func TestKernelMaximumOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	img := newImage(rng, 1, 6)
	w := img.window(1, 6, 1)

	for name, set := range variants() {
		want := make([]float32, BlockSize)
		set[Maximum][0](img.data, w, want)

		for range 10 {
			shuffled := image{h: 1, w: 6, data: make([]float32, len(img.data))}
			for dst, src := range rng.Perm(6) {
				copy(shuffled.at(0, dst)[:BlockSize], img.at(0, src)[:BlockSize])
			}
			got := make([]float32, BlockSize)
			set[Maximum][0](shuffled.data, w, got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s: maximum depends on sample order (-want +got):\n%s", name, diff)
			}
		}
	}
}

func TestKernelReproducible(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	img := newImage(rng, 6, 6)
	w := img.window(4, 4, 1)

	for _, kind := range Kinds {
		for count := 1; count <= MaxOutputCount; count++ {
			first := make([]float32, count*BlockSize)
			Kernel(kind, count)(img.data, w, first)
			for range 3 {
				again := make([]float32, count*BlockSize)
				Kernel(kind, count)(img.data, w, again)
				for i := range first {
					if math.Float32bits(first[i]) != math.Float32bits(again[i]) {
						t.Fatalf("%v x%d: element %d = %v then %v", kind, count, i, first[i], again[i])
					}
				}
			}
		}
	}
}

func TestKernelExcludePadBatchedUsesNonPadCount(t *testing.T) {
	// Multi-block calls divide by the count the caller supplies, even when
	// it differs from the number of presented samples.
	in := make([]float32, 3*BlockSize)
	for i := range in {
		in[i] = 6
	}
	w := &Window{Rows: 1, Cols: 1, RowStride: BlockSize, ColStride: BlockSize, PositionStride: BlockSize, WindowSize: 9, NonPadCount: 2}

	for name, set := range variants() {
		for count := 2; count <= MaxOutputCount; count++ {
			out := make([]float32, count*BlockSize)
			set[AverageExcludePad][count-1](in, w, out)
			for i, v := range out {
				if v != 3 {
					t.Errorf("%s x%d: out[%d] = %v, want 3", name, count, i, v)
				}
			}
		}
	}
}

func TestKernelExcludePadSingleCountsSamples(t *testing.T) {
	// A row of three blocks holding 3, 6 and 9 averages to 6 whatever
	// NonPadCount says.
	in := make([]float32, 3*BlockSize)
	for c := range 3 {
		for l := range BlockSize {
			in[c*BlockSize+l] = float32(3 * (c + 1))
		}
	}
	for name, set := range variants() {
		for _, nonPad := range []int{0, 1, 3, 7} {
			w := &Window{Rows: 1, Cols: 3, RowStride: 3 * BlockSize, ColStride: BlockSize, WindowSize: 9, NonPadCount: nonPad}
			out := make([]float32, BlockSize)
			set[AverageExcludePad][0](in, w, out)
			for l, v := range out {
				if v != 6 {
					t.Errorf("%s NonPadCount=%d: lane %d = %v, want 6", name, nonPad, l, v)
				}
			}
		}
	}
}

func TestKernelIncludePadUsesWindowSize(t *testing.T) {
	in := make([]float32, BlockSize)
	for i := range in {
		in[i] = 6
	}
	w := &Window{Rows: 1, Cols: 1, RowStride: BlockSize, ColStride: BlockSize, WindowSize: 9, NonPadCount: 1}

	for name, set := range variants() {
		out := make([]float32, BlockSize)
		set[AverageIncludePad][0](in, w, out)
		for i, v := range out {
			if !cmp.Equal(v, float32(6.0/9.0), cmpopts.EquateApprox(0, 1e-6)) {
				t.Errorf("%s: out[%d] = %v, want %v", name, i, v, 6.0/9.0)
			}
		}
	}
}

func TestKernelPanicsOnBadArguments(t *testing.T) {
	tests := []struct {
		kind  Kind
		count int
	}{
		{Kind(-1), 1},
		{numKinds, 1},
		{Maximum, 0},
		{Maximum, MaxOutputCount + 1},
	}
	for _, tt := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Kernel(%v, %d) did not panic", tt.kind, tt.count)
				}
			}()
			Kernel(tt.kind, tt.count)
		}()
	}
}

func TestKernelTableComplete(t *testing.T) {
	for _, kind := range Kinds {
		for count := 1; count <= MaxOutputCount; count++ {
			if Kernel(kind, count) == nil {
				t.Errorf("Kernel(%v, %d) is nil for target %q", kind, count, KernelTarget())
			}
		}
	}
	want := "fallback"
	if hwy.CurrentLevel().SupportsAVX2() {
		want = "avx2"
	}
	if got := KernelTarget(); got != want {
		t.Errorf("KernelTarget() = %q at level %v, want %q", got, hwy.CurrentLevel(), want)
	}
}

func TestPoolBlock(t *testing.T) {
	in := []float32{1, 2, 3, 4, 5, 6, 7, 8, 8, 7, 6, 5, 4, 3, 2, 1}
	w := &Window{Rows: 1, Cols: 2, RowStride: 2 * BlockSize, ColStride: BlockSize, WindowSize: 2, NonPadCount: 2}
	out := make([]float32, BlockSize)
	PoolBlock(AverageExcludePad, 1, in, w, out)
	want := []float32{4.5, 4.5, 4.5, 4.5, 4.5, 4.5, 4.5, 4.5}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("PoolBlock (-want +got):\n%s", diff)
	}
}

func TestValidateCall(t *testing.T) {
	ok := Window{Rows: 2, Cols: 2, RowStride: 16, ColStride: 8, PositionStride: 8, WindowSize: 4, NonPadCount: 4}
	tests := []struct {
		name   string
		kind   Kind
		count  int
		inLen  int
		mutate func(w *Window)
		outLen int
		valid  bool
	}{
		{"ok", AverageExcludePad, 2, 40, nil, 16, true},
		{"bad kind", numKinds, 1, 40, nil, 8, false},
		{"bad count", Maximum, 4, 64, nil, 32, false},
		{"empty rows", Maximum, 1, 40, func(w *Window) { w.Rows = 0 }, 8, false},
		{"empty cols", Maximum, 1, 40, func(w *Window) { w.Cols = 0 }, 8, false},
		{"negative stride", Maximum, 1, 40, func(w *Window) { w.ColStride = -8 }, 8, false},
		{"include-pad zero size", AverageIncludePad, 1, 40, func(w *Window) { w.WindowSize = 0 }, 8, false},
		{"include-pad size below samples", AverageIncludePad, 1, 40, func(w *Window) { w.WindowSize = 3 }, 8, false},
		{"exclude-pad count mismatch", AverageExcludePad, 2, 40, func(w *Window) { w.NonPadCount = 3 }, 16, false},
		{"exclude-pad single ignores count", AverageExcludePad, 1, 40, func(w *Window) { w.NonPadCount = 0 }, 8, true},
		{"input too short", Maximum, 3, 40, nil, 24, false},
		{"output too short", Maximum, 2, 40, nil, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ok
			if tt.mutate != nil {
				tt.mutate(&w)
			}
			err := validateCall(tt.kind, tt.count, tt.inLen, &w, tt.outLen)
			if (err == nil) != tt.valid {
				t.Errorf("validateCall() error = %v, valid %v", err, tt.valid)
			}
		})
	}
	if validateCall(Maximum, 1, 8, nil, 8) == nil {
		t.Error("validateCall accepted a nil window")
	}
}

func TestCheckCallPanicsInDebugBuilds(t *testing.T) {
	if !debugChecks {
		t.Skip("kernel assertions need the pooldebug build tag")
	}
	defer func() {
		if recover() == nil {
			t.Error("empty window did not panic")
		}
	}()
	Kernel(Maximum, 1)(make([]float32, 8), &Window{}, make([]float32, 8))
}

func BenchmarkKernel(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	img := newImage(rng, 16, 64)
	w := img.window(3, 3, 1)
	for _, kind := range Kinds {
		for count := 1; count <= MaxOutputCount; count++ {
			fn := Kernel(kind, count)
			out := make([]float32, count*BlockSize)
			b.Run(fmt.Sprintf("%v/x%d", kind, count), func(b *testing.B) {
				b.SetBytes(int64(w.Samples() * count * BlockSize * 4))
				for b.Loop() {
					fn(img.data, w, out)
				}
			})
		}
	}
}
