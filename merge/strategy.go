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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// Strategy selects how the blend visits samples. It never changes results.
type Strategy int

const (
	// Sequential makes a single pass over the flat buffer.
	Sequential Strategy = iota

	// CacheReshaped reshapes the buffers into rows before combining them and
	// flattens the result back.
	CacheReshaped

	// Parallel partitions the buffer into disjoint ranges handled by a
	// worker pool.
	Parallel

	// Optimized is reserved for vectorized kernels.
	Optimized
)

var strategyNames = map[Strategy]string{
	Sequential:    "sequential",
	CacheReshaped: "cache",
	Parallel:      "parallel",
	Optimized:     "optimized",
}

var strategyAliases = map[string]Strategy{
	"seq":            Sequential,
	"cache-reshaped": CacheReshaped,
	"openmp":         Parallel,
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Sequential, CacheReshaped, Parallel, Optimized}
}

// Implemented returns the strategies that produce output.
func Implemented() []Strategy {
	return lo.Filter(Strategies(), func(s Strategy, _ int) bool {
		return s.Implemented()
	})
}

// StrategyNames returns the canonical names of all strategies.
func StrategyNames() []string {
	return lo.Map(Strategies(), func(s Strategy, _ int) string {
		return s.String()
	})
}

// Implemented reports whether s produces output rather than ErrNotImplemented.
func (s Strategy) Implemented() bool {
	return s == Sequential || s == CacheReshaped || s == Parallel
}

// String returns the canonical name of s.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a name or alias, case-insensitively, to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	if s, ok := strategyAliases[name]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: strategy %q (want one of %s)", ErrUnknown, name, strings.Join(StrategyNames(), ", "))
}

// Set implements pflag.Value.
func (s *Strategy) Set(name string) error {
	v, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Type implements pflag.Value.
func (s *Strategy) Type() string {
	return "strategy"
}

var _ pflag.Value = (*Strategy)(nil)
