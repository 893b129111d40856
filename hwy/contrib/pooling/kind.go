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
	"strings"
)

// Kind selects the reduction a pooling kernel performs over a window.
type Kind int

const (
	// Maximum takes the lane-wise maximum over the window.
	Maximum Kind = iota

	// AverageIncludePad divides the window sum by the nominal window size
	// KernelH*KernelW, so padding positions count as zeros.
	AverageIncludePad

	// AverageExcludePad divides the window sum by the number of samples
	// that fall inside the input.
	AverageExcludePad

	numKinds
)

// Kinds lists every pooling kind in declaration order.
var Kinds = [numKinds]Kind{Maximum, AverageIncludePad, AverageExcludePad}

// String returns the name of the pooling kind.
func (k Kind) String() string {
	switch k {
	case Maximum:
		return "Maximum"
	case AverageIncludePad:
		return "AverageIncludePad"
	case AverageExcludePad:
		return "AverageExcludePad"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// ParseKind parses a pooling kind name. It accepts the String form as well as
// the short names "max", "avg-include-pad" and "avg-exclude-pad" (also with
// underscores), case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "max", "maximum", "maxpool":
		return Maximum, nil
	case "avg-include-pad", "averageincludepad", "avg-include":
		return AverageIncludePad, nil
	case "avg-exclude-pad", "averageexcludepad", "avg-exclude", "avg", "average":
		return AverageExcludePad, nil
	}
	return 0, fmt.Errorf("pooling: unknown kind %q (valid: max, avg-include-pad, avg-exclude-pad)", s)
}
