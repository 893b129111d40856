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

// Command poolbench times Pool2D on random NCHWc data and checks the
// result against the scalar reference.
//
// Usage:
//
//	poolbench --kind max --shape 1,64,112,112 --kernel 3 --stride 2 --pad 1
//	HWY_NO_SIMD=1 poolbench --kind avg-exclude-pad --workers 1
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwypool/hwy"
	"github.com/ajroetker/go-hwypool/hwy/contrib/pooling"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:          "poolbench",
		Short:        "Benchmark the NCHWc pooling kernels",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.verbose {
				pooling.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
				defer pooling.SetLogger(nil)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SIMD Level: %s, kernels: %s, AVX2 CPU: %v\n",
				hwy.CurrentName(), pooling.KernelTarget(), hwy.HasAVX2())

			res, err := run(cfg)
			if err != nil {
				return err
			}
			res.print(cmd.OutOrStdout())
			return nil
		},
	}
	cfg.bind(cmd.Flags())
	return cmd
}
