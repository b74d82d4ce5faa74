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

// Command matbench times the naive, vec4 and winograd integer matmul kernels
// over a fixed list of square sizes and prints one line of microsecond
// timings per kernel.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matbench/internal/bench"
)

func newRootCmd(cfg bench.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matbench",
		Short: "Benchmark naive, vectorized and Winograd integer matrix multiplication",
		Long: `matbench multiplies pairs of random square matrices with three kernels
and prints the elapsed microseconds of every call: one line per kernel
(naive, vec4, winograd), one value per size.

Set HWY_NO_SIMD=1 to force the scalar fallback of the vector kernel.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := bench.Run(cfg)
			if err != nil {
				return err
			}
			return res.Format(cmd.OutOrStdout())
		},
	}
	cmd.AddCommand(newCPUInfoCmd())
	return cmd
}

func main() {
	if err := newRootCmd(bench.Config{}).Execute(); err != nil {
		os.Exit(1)
	}
}
