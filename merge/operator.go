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

package merge

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
)

// Operator selects the per-sample combining function.
type Operator int

const (
	// Average computes round(weight*a + (1-weight)*b).
	Average Operator = iota

	// Max takes the larger sample; the weight is ignored.
	Max
)

// String returns the canonical name of op.
func (op Operator) String() string {
	switch op {
	case Average:
		return "average"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("operator(%d)", int(op))
	}
}

// ParseOperator maps "average" (or "avg") and "max" to an Operator.
func ParseOperator(name string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "average", "avg":
		return Average, nil
	case "max", "maximum":
		return Max, nil
	default:
		return 0, fmt.Errorf("%w: operator %q (want average or max)", ErrUnknown, name)
	}
}

// Set implements pflag.Value.
func (op *Operator) Set(name string) error {
	v, err := ParseOperator(name)
	if err != nil {
		return err
	}
	*op = v
	return nil
}

// Type implements pflag.Value.
func (op *Operator) Type() string {
	return "operator"
}

var _ pflag.Value = (*Operator)(nil)

// AverageSample blends one pair of samples. The result is rounded half up
// and saturated to [0, 255].
func AverageSample(a, b byte, weight float64) byte {
	v := math.Floor(weight*float64(a) + (1-weight)*float64(b) + 0.5)
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return byte(v)
}

// MaxSample returns the larger of a and b.
func MaxSample(a, b byte) byte {
	return max(a, b)
}

// kernel combines a[i] and b[i] into dst[i] for every i in dst.
// a and b are at least as long as dst.
type kernel func(dst, a, b []byte)

func (op Operator) kernel(weight float64) (kernel, error) {
	switch op {
	case Average:
		return func(dst, a, b []byte) {
			a, b = a[:len(dst)], b[:len(dst)]
			for i := range dst {
				dst[i] = AverageSample(a[i], b[i], weight)
			}
		}, nil
	case Max:
		return func(dst, a, b []byte) {
			a, b = a[:len(dst)], b[:len(dst)]
			for i := range dst {
				dst[i] = MaxSample(a[i], b[i])
			}
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknown, op)
	}
}
