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
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bmpmerge/merge"
)

// workersEnv overrides the worker count when --workers is not given.
const workersEnv = "BMPMERGE_WORKERS"

type rootOptions struct {
	verbose bool
	workers int
	logger  *slog.Logger
}

func (o *rootOptions) newEngine() *merge.Engine {
	return merge.New(merge.WithWorkers(o.workers), merge.WithLogger(o.logger))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "bmpmerge",
		Short:        "Blend two uncompressed bitmaps sample by sample",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if !cmd.Flags().Changed("workers") {
				if val := os.Getenv(workersEnv); val != "" {
					n, err := strconv.Atoi(val)
					if err != nil {
						return fmt.Errorf("%s: %w", workersEnv, err)
					}
					opts.workers = n
				}
			}
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every stage at debug level")
	cmd.PersistentFlags().IntVar(&opts.workers, "workers", 0, "workers for the parallel strategy (0 = GOMAXPROCS)")

	cmd.AddCommand(newMergeCmd(opts), newVerifyCmd(opts), newInfoCmd(opts))
	return cmd
}

// blendFlags are shared by merge and verify.
type blendFlags struct {
	operator merge.Operator
	weight   float64
}

func (f *blendFlags) register(cmd *cobra.Command) {
	f.operator = merge.Average
	f.weight = 0.5
	cmd.Flags().VarP(&f.operator, "operator", "o", "blend operator: average or max")
	cmd.Flags().Float64VarP(&f.weight, "weight", "w", f.weight, "weight of the first image, in [0, 1]")
}

func (f *blendFlags) validate() error {
	if !(f.weight >= 0 && f.weight <= 1) {
		return fmt.Errorf("weight %v outside [0, 1]", f.weight)
	}
	return nil
}
