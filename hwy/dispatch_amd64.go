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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd there are no archsimd kernels to run, so the
// dispatch level stays Scalar even on AVX2 hardware. HasAVX2 still reports
// what the CPU could do if the module were rebuilt with the experiment.

func init() {
	setScalarMode()
}

// HasAVX2 reports whether the CPU implements AVX2 and the OS saves the
// YMM state.
func HasAVX2() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasAVX
}
