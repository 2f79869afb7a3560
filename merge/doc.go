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

// Package merge blends the pixel payloads of two same-sized bitmaps.
//
// The blend math is defined once per Operator; a Strategy only decides how
// the samples are visited:
//
//	Sequential     one pass over the flat buffer, index 0..N-1
//	CacheReshaped  rows view, row by row then column by column, flattened back
//	Parallel       disjoint index ranges processed by a bounded worker pool
//	Optimized      reserved for vectorized kernels, returns ErrNotImplemented
//
// Every implemented strategy produces byte-identical output for the same
// inputs, operator and weight.
//
// # Usage
//
//	eng := merge.New(merge.WithWorkers(8))
//	defer eng.Close()
//
//	out, err := eng.Blend(merge.Parallel, merge.Average, a, b, 0.5)
//	if errors.Is(err, merge.ErrDimensionMismatch) {
//	    // nothing was written
//	}
//
// # Rounding
//
// Average computes weight*a + (1-weight)*b in float64, rounds half up and
// saturates to [0, 255]. Weights outside [0, 1] extrapolate; validating the
// range is the caller's job. Truncation toward zero is not used: it turns
// exact results such as 0.53*100 into 52 with float32 sums, and 0.29*100 into
// 28 with float64 ones.
package merge
