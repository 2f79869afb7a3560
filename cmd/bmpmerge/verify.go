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
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-bmpmerge/bmp"
	"github.com/ajroetker/go-bmpmerge/merge"
	"github.com/ajroetker/go-bmpmerge/pixel"
)

// errStrategiesDiffer is returned by verify when two strategies disagree.
var errStrategiesDiffer = errors.New("strategies produced different output")

type verifyResult struct {
	strategy merge.Strategy
	elapsed  time.Duration
	digest   uint64
	err      error
}

func newVerifyCmd(root *rootOptions) *cobra.Command {
	var flags blendFlags
	cmd := &cobra.Command{
		Use:   "verify <first.bmp> <second.bmp>",
		Short: "Blend with every strategy and check the outputs are identical",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			codec := bmp.NewCodec(bmp.WithLogger(root.logger))
			a, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, err := codec.ReadFile(args[1])
			if err != nil {
				return err
			}

			eng := root.newEngine()
			defer eng.Close()
			results, err := runAll(eng, flags, a, b)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STRATEGY\tELAPSED\tDIGEST")
			for _, r := range results {
				if r.err != nil {
					fmt.Fprintf(tw, "%s\t-\t%v\n", r.strategy, r.err)
					continue
				}
				fmt.Fprintf(tw, "%s\t%v\t%016x\n", r.strategy, r.elapsed, r.digest)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return compareDigests(results)
		},
	}
	flags.register(cmd)
	return cmd
}

// runAll blends a and b once per strategy, concurrently. Inputs are already
// decoded, so only compute overlaps. A reserved strategy is reported in its
// result rather than failing the group.
func runAll(eng *merge.Engine, flags blendFlags, a, b bmp.Image) ([]verifyResult, error) {
	if err := merge.CheckDimensions(a, b); err != nil {
		return nil, err
	}
	strategies := merge.Strategies()
	results := make([]verifyResult, len(strategies))

	var g errgroup.Group
	for i, s := range strategies {
		g.Go(func() error {
			start := time.Now()
			out, err := eng.Blend(s, flags.operator, a, b, flags.weight)
			results[i] = verifyResult{strategy: s, elapsed: time.Since(start), err: err}
			switch {
			case errors.Is(err, merge.ErrNotImplemented):
				return nil
			case err != nil:
				return fmt.Errorf("%s: %w", s, err)
			}
			results[i].digest = pixel.Digest(out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func compareDigests(results []verifyResult) error {
	var (
		ref  uint64
		seen bool
	)
	for _, r := range results {
		if r.err != nil {
			continue
		}
		if !seen {
			ref, seen = r.digest, true
			continue
		}
		if r.digest != ref {
			return fmt.Errorf("%w: %s digest %016x, want %016x", errStrategiesDiffer, r.strategy, r.digest, ref)
		}
	}
	return nil
}
