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

//go:build !pooldebug

package pooling

// debugChecks reports whether kernel preconditions are asserted.
const debugChecks = false

// checkCall is a no-op without the pooldebug build tag and is inlined away.
func checkCall(kind Kind, count int, in []float32, w *Window, out []float32) {}
