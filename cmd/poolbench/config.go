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
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ajroetker/go-hwypool/hwy/contrib/pooling"
)

// config is the benchmark configuration collected from the flags.
type config struct {
	kind    kindValue
	shape   []int
	kernel  []int
	stride  []int
	pad     []int
	dil     []int
	ceil    bool
	workers int
	iters   int
	seed    uint64
	verify  bool
	verbose bool
}

func defaultConfig() *config {
	return &config{
		kind:  kindValue(pooling.Maximum),
		iters: 20,
		seed:  1,
	}
}

func (c *config) bind(fs *pflag.FlagSet) {
	fs.VarP(&c.kind, "kind", "k", "pooling kind: max, avg-include-pad or avg-exclude-pad")
	fs.IntSliceVar(&c.shape, "shape", []int{1, 64, 56, 56}, "input shape N,C,H,W")
	fs.IntSliceVar(&c.kernel, "kernel", []int{3}, "kernel size H[,W]")
	fs.IntSliceVar(&c.stride, "stride", []int{2}, "stride H[,W]")
	fs.IntSliceVar(&c.pad, "pad", []int{1}, "padding P, H,W or top,left,bottom,right")
	fs.IntSliceVar(&c.dil, "dilation", []int{1}, "dilation H[,W]")
	fs.BoolVar(&c.ceil, "ceil", false, "round the output size up")
	fs.IntVarP(&c.workers, "workers", "j", 0, "worker goroutines, 0 for GOMAXPROCS, 1 to run inline")
	fs.IntVarP(&c.iters, "iters", "n", c.iters, "timed iterations")
	fs.Uint64Var(&c.seed, "seed", c.seed, "random seed for the input")
	fs.BoolVar(&c.verify, "verify", true, "compare against the scalar reference")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "log each Pool2D call")
}

// kindValue adapts pooling.Kind to pflag.Value.
type kindValue pooling.Kind

func (k *kindValue) String() string { return pooling.Kind(*k).String() }
func (k *kindValue) Type() string   { return "kind" }

func (k *kindValue) Set(s string) error {
	kind, err := pooling.ParseKind(s)
	if err != nil {
		return err
	}
	*k = kindValue(kind)
	return nil
}

// pair expands a one- or two-element flag into (h, w).
func pair(name string, v []int) (int, int, error) {
	switch len(v) {
	case 1:
		return v[0], v[0], nil
	case 2:
		return v[0], v[1], nil
	}
	return 0, 0, fmt.Errorf("--%s takes 1 or 2 values, got %d", name, len(v))
}

// params converts the geometry flags into pooling parameters.
func (c *config) params() (pooling.Params, error) {
	var p pooling.Params
	var err error
	if p.KernelH, p.KernelW, err = pair("kernel", c.kernel); err != nil {
		return p, err
	}
	if p.StrideH, p.StrideW, err = pair("stride", c.stride); err != nil {
		return p, err
	}
	if p.DilationH, p.DilationW, err = pair("dilation", c.dil); err != nil {
		return p, err
	}
	switch len(c.pad) {
	case 1:
		p.PadTop, p.PadLeft, p.PadBottom, p.PadRight = c.pad[0], c.pad[0], c.pad[0], c.pad[0]
	case 2:
		p.PadTop, p.PadLeft, p.PadBottom, p.PadRight = c.pad[0], c.pad[1], c.pad[0], c.pad[1]
	case 4:
		p.PadTop, p.PadLeft, p.PadBottom, p.PadRight = c.pad[0], c.pad[1], c.pad[2], c.pad[3]
	default:
		return p, fmt.Errorf("--pad takes 1, 2 or 4 values, got %d", len(c.pad))
	}
	p.CeilMode = c.ceil
	return p, p.Validate()
}

func (c *config) inputShape() (pooling.Shape, error) {
	if len(c.shape) != 4 {
		return pooling.Shape{}, fmt.Errorf("--shape takes N,C,H,W, got %s", formatInts(c.shape))
	}
	return pooling.Shape{N: c.shape[0], C: c.shape[1], H: c.shape[2], W: c.shape[3]}, nil
}

func formatInts(v []int) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, ",")
}
