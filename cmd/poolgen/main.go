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

// Command poolgen generates the specialized pooling block kernels.
//
// Usage:
//
//	poolgen -output hwy/contrib/pooling -targets avx2,fallback
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/poolgen -output . -targets all
//
// For every target the generator emits one file holding nine functions, one
// per (pooling kind × output count) combination, plus a table indexing them.
// It also emits the dispatch files that bind a table at init time:
//  1. <prefix>_<target>.gen.go for each target
//  2. dispatch_amd64.gen.go (binds by hwy.CurrentLevel) and dispatch_other.gen.go
//
// Each generated function is straight-line code for its combination, so no
// branch on kind or count is taken inside the window loop.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	prefix     = flag.String("prefix", "kernel", "Output file prefix for the per-target kernel files")
	packageOut = flag.String("pkg", "pooling", "Output package name")
	targets    = flag.String("targets", "avx2,fallback", "Comma-separated targets ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	targetList := parseTargets(*targets)
	if len(targetList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid targets specified\n")
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		Prefix:     *prefix,
		PackageOut: *packageOut,
		Targets:    targetList,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated pooling kernels for targets: %s\n", strings.Join(targetList, ", "))
}

func parseTargets(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return AvailableTargets()
	}
	return result
}
