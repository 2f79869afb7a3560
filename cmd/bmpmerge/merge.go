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
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bmpmerge/merge"
	"github.com/ajroetker/go-bmpmerge/merger"
)

func newMergeCmd(root *rootOptions) *cobra.Command {
	var (
		flags    blendFlags
		strategy = merge.Sequential
	)
	cmd := &cobra.Command{
		Use:   "merge <first.bmp> <second.bmp> <out.bmp>",
		Short: "Blend two bitmaps and write the result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}

			eng := root.newEngine()
			defer eng.Close()
			svc := merger.New(merger.WithEngine(eng), merger.WithLogger(root.logger))
			defer svc.Close()

			start := time.Now()
			out, err := svc.Merge(strategy, flags.operator, args[0], args[1], args[2], flags.weight)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}
			root.logger.Info("merge finished", "strategy", strategy, "elapsed", elapsed)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().VarP(&strategy, "strategy", "s",
		"execution strategy: "+strings.Join(merge.StrategyNames(), ", "))
	return cmd
}
