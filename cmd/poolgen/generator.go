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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// poolingKinds lists the pooling kinds in the order of the pooling.Kind
// constants. The generated tables are indexed by that order.
var poolingKinds = []string{"Maximum", "AverageIncludePad", "AverageExcludePad"}

const (
	maxOutputCount = 3
	blockSize      = 8
)

// Generator orchestrates the code generation process.
type Generator struct {
	OutputDir  string   // Output directory
	Prefix     string   // Kernel file prefix, e.g. "kernel" -> kernel_avx2.gen.go
	PackageOut string   // Output package name
	Targets    []string // Target names, e.g. "avx2", "fallback"
}

// position is one output block computed by a variant.
type position struct {
	Index  int
	In     string // input offset expression
	Out    string // output slice expression
	Stride string // offset of this position relative to position 0
}

// variant is one specialized (kind, count) kernel.
type variant struct {
	Kind      string
	Count     int
	Positions []position
}

func newVariant(kind string, count int) variant {
	v := variant{Kind: kind, Count: count}
	for i := range count {
		p := position{Index: i, In: "off", Out: "out"}
		if i > 0 {
			p.In = fmt.Sprintf("off+p%d", i)
			p.Out = fmt.Sprintf("out[%d:]", i*blockSize)
			p.Stride = "w.PositionStride"
			if i > 1 {
				p.Stride = fmt.Sprintf("%d * w.PositionStride", i)
			}
		}
		v.Positions = append(v.Positions, p)
	}
	return v
}

// Rest returns the positions after the first one.
func (v variant) Rest() []position { return v.Positions[1:] }

// IsMax reports whether the variant reduces with a maximum.
func (v variant) IsMax() bool { return v.Kind == "Maximum" }

// Op is the Float32x8 method that folds one sample into an accumulator.
func (v variant) Op() string {
	if v.IsMax() {
		return "Max"
	}
	return "Add"
}

// CountsSamples reports whether the variant divides by the number of
// samples it actually accumulated.
func (v variant) CountsSamples() bool {
	return v.Kind == "AverageExcludePad" && v.Count == 1
}

// Denominator is the Window field the sums are divided by, if it is fixed
// for the whole call.
func (v variant) Denominator() string {
	switch {
	case v.Kind == "AverageIncludePad":
		return "w.WindowSize"
	case v.Kind == "AverageExcludePad" && v.Count > 1:
		return "w.NonPadCount"
	}
	return ""
}

// Advance is the number of output elements the variant writes.
func (v variant) Advance() int { return v.Count * blockSize }

type kindGroup struct {
	Name     string
	Variants []variant
}

func kindGroups() []kindGroup {
	return lo.Map(poolingKinds, func(kind string, _ int) kindGroup {
		g := kindGroup{Name: kind}
		for count := 1; count <= maxOutputCount; count++ {
			g.Variants = append(g.Variants, newVariant(kind, count))
		}
		return g
	})
}

type kernelFileData struct {
	Package string
	Target  Target
	Suffix  string
	Vec     string
	Kinds   []kindGroup
}

// Variants returns every variant of the file, grouped by kind.
func (d kernelFileData) Variants() []variant {
	return lo.FlatMap(d.Kinds, func(g kindGroup, _ int) []variant { return g.Variants })
}

type dispatchFileData struct {
	Package     string
	BuildTag    string
	ArchTargets []Target
	Fallback    Target
}

// Run generates all files.
func (g *Generator) Run() error {
	names := lo.Uniq(g.Targets)
	var targets []Target
	for _, name := range names {
		t, err := GetTarget(name)
		if err != nil {
			return err
		}
		targets = append(targets, t)
	}
	fallback, ok := lo.Find(targets, func(t Target) bool { return t.Name == "Fallback" })
	if !ok {
		return fmt.Errorf("the fallback target is required, got %s", strings.Join(names, ","))
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var eg errgroup.Group
	for _, t := range targets {
		eg.Go(func() error {
			data := kernelFileData{
				Package: g.PackageOut,
				Target:  t,
				Suffix:  t.Suffix(),
				Vec:     t.VecPackage,
				Kinds:   kindGroups(),
			}
			name := fmt.Sprintf("%s_%s.gen.go", g.Prefix, t.Suffix())
			return g.render(kernelTemplate, name, data)
		})
	}

	archTargets := lo.Filter(targets, func(t Target, _ int) bool { return t.Arch != "" })
	for arch, archGroup := range lo.GroupBy(archTargets, func(t Target) string { return t.Arch }) {
		eg.Go(func() error {
			data := dispatchFileData{
				Package:     g.PackageOut,
				BuildTag:    strings.Join(buildTags(archGroup), " || "),
				ArchTargets: archGroup,
				Fallback:    fallback,
			}
			return g.render(dispatchTemplate, fmt.Sprintf("dispatch_%s.gen.go", arch), data)
		})
	}

	eg.Go(func() error {
		data := dispatchFileData{
			Package:  g.PackageOut,
			Fallback: fallback,
		}
		if tags := buildTags(archTargets); len(tags) > 0 {
			data.BuildTag = "!(" + strings.Join(tags, " || ") + ")"
		}
		return g.render(dispatchOtherTemplate, "dispatch_other.gen.go", data)
	})

	return eg.Wait()
}

func buildTags(targets []Target) []string {
	return lo.Uniq(lo.FilterMap(targets, func(t Target, _ int) (string, bool) {
		return t.BuildTag, t.BuildTag != ""
	}))
}

// render executes tmpl with data, formats the result and writes it to
// name inside the output directory.
func (g *Generator) render(tmpl *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	filename := filepath.Join(g.OutputDir, name)
	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting %s failed: %v\n", name, err)
		formatted = buf.Bytes()
	}

	if err := os.WriteFile(filename, formatted, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
