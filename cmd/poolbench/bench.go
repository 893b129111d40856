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

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-hwypool/hwy/contrib/pooling"
	"github.com/ajroetker/go-hwypool/hwy/contrib/workerpool"
)

// result summarizes one benchmark run.
type result struct {
	kind     pooling.Kind
	in, out  pooling.Shape
	params   pooling.Params
	workers  int
	times    []time.Duration
	verified bool
	maxDiff  float32
}

func run(cfg *config) (*result, error) {
	p, err := cfg.params()
	if err != nil {
		return nil, err
	}
	inShape, err := cfg.inputShape()
	if err != nil {
		return nil, err
	}
	if cfg.iters < 1 {
		return nil, fmt.Errorf("--iters must be positive, got %d", cfg.iters)
	}

	kind := pooling.Kind(cfg.kind)
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
	plain := lo.Times(inShape.Len(), func(int) float32 { return rng.Float32()*2 - 1 })
	in := pooling.ReorderToNCHWc(plain, inShape)
	outShape := p.OutputShape(inShape)
	out := make([]float32, outShape.BlockedLen())

	var pool *workerpool.Pool
	if cfg.workers != 1 {
		pool = workerpool.New(cfg.workers)
		defer pool.Close()
	}

	res := &result{kind: kind, in: inShape, params: p, workers: 1}
	if pool != nil {
		res.workers = pool.NumWorkers()
	}

	// Warm up once so the timed runs do not include first-touch faults.
	if res.out, err = pooling.Pool2D(pool, kind, p, in, inShape, out); err != nil {
		return nil, err
	}
	for range cfg.iters {
		start := time.Now()
		if _, err := pooling.Pool2D(pool, kind, p, in, inShape, out); err != nil {
			return nil, err
		}
		res.times = append(res.times, time.Since(start))
	}

	if cfg.verify {
		want := make([]float32, outShape.BlockedLen())
		if _, err := pooling.Pool2DScalar(kind, p, in, inShape, want); err != nil {
			return nil, err
		}
		for i := range want {
			res.maxDiff = max(res.maxDiff, abs(out[i]-want[i]))
		}
		res.verified = true
		if res.maxDiff != 0 {
			return res, fmt.Errorf("kernels differ from the scalar reference by up to %g", res.maxDiff)
		}
	}
	return res, nil
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func (r *result) print(w io.Writer) {
	best := lo.Min(r.times)
	mean := lo.Sum(r.times) / time.Duration(len(r.times))
	bytes := float64(r.in.BlockedLen()+r.out.BlockedLen()) * 4

	fmt.Fprintf(w, "%v %v -> %v kernel %dx%d stride %dx%d, %d workers\n",
		r.kind, r.in, r.out, r.params.KernelH, r.params.KernelW, r.params.StrideH, r.params.StrideW, r.workers)
	fmt.Fprintf(w, "  best %v, mean %v over %d runs, %.2f GB/s\n",
		best, mean, len(r.times), bytes/best.Seconds()/1e9)
	if r.verified {
		fmt.Fprintf(w, "  matches scalar reference\n")
	}
}
