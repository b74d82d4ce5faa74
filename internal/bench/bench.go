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

// Package bench runs the timing sweep over the matmul kernels.
//
// For every configured size s it draws two independent random s x s
// matrices, runs each kernel once on them in order, and records the wall
// clock time of each call in microseconds. The samples for one kernel form a
// sequence aligned index by index with the size list.
package bench

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ajroetker/go-matbench/hwy/contrib/matmul"
)

var defaultSizes = [...]int{30, 40, 50, 60, 70, 80, 90, 100, 150, 200, 250, 300, 350, 400, 450, 500}

// DefaultSizes returns the fixed list of square sizes the sweep covers. The
// slice is a fresh copy on every call.
func DefaultSizes() []int {
	return slices.Clone(defaultSizes[:])
}

// DefaultKernels returns the kernels reported by the sweep, in output order:
// naive, vec4, winograd.
func DefaultKernels() []matmul.Kernel {
	return []matmul.Kernel{matmul.Naive, matmul.Vec4, matmul.Winograd}
}

var (
	// ErrBadSize is returned for a non-positive size in Config.Sizes.
	ErrBadSize = errors.New("bench: size must be > 0")

	// ErrNoKernels is returned when Config.Kernels is explicitly empty.
	ErrNoKernels = errors.New("bench: no kernels")
)

// Config controls a sweep. The zero value runs DefaultKernels over
// DefaultSizes with the process-wide random source and the system clock.
type Config struct {
	// Sizes lists the square dimensions to run, in order.
	Sizes []int

	// Kernels lists the kernels to time, in order. A nil slice means
	// DefaultKernels; a non-nil empty slice is an error.
	Kernels []matmul.Kernel

	// Rand, if set, is used instead of the process-wide source so a sweep
	// can be reproduced.
	Rand *rand.Rand

	// Now, if set, replaces time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Sizes == nil {
		c.Sizes = DefaultSizes()
	}
	if c.Kernels == nil {
		c.Kernels = DefaultKernels()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

func (c Config) validate() error {
	if len(c.Kernels) == 0 {
		return ErrNoKernels
	}
	for i, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("sizes[%d] = %d: %w", i, s, ErrBadSize)
		}
	}
	return nil
}

func (c Config) random(rows, cols int) matmul.Matrix {
	if c.Rand != nil {
		return matmul.RandomFrom(c.Rand, rows, cols)
	}
	return matmul.Random(rows, cols)
}

// Results holds the samples of one sweep.
type Results struct {
	// Sizes is the size list the sweep ran.
	Sizes []int

	// Kernels holds the kernel names in the order they ran.
	Kernels []string

	// Micros[k][i] is the elapsed time of Kernels[k] at Sizes[i], in
	// microseconds.
	Micros [][]int64
}

// Samples returns the timing sequence for the named kernel, or nil.
func (r *Results) Samples(kernel string) []int64 {
	for k, name := range r.Kernels {
		if name == kernel {
			return r.Micros[k]
		}
	}
	return nil
}

// Format writes one line per kernel: its samples, in size order, separated
// by ", ".
func (r *Results) Format(w io.Writer) error {
	for _, samples := range r.Micros {
		parts := make([]string, len(samples))
		for i, us := range samples {
			parts[i] = strconv.FormatInt(us, 10)
		}
		if _, err := io.WriteString(w, strings.Join(parts, ", ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the sweep. It stops at the first error; no partial results
// are returned.
func Run(cfg Config) (*Results, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	res := &Results{
		Sizes:   slices.Clone(cfg.Sizes),
		Kernels: make([]string, len(cfg.Kernels)),
		Micros:  make([][]int64, len(cfg.Kernels)),
	}
	for k, kernel := range cfg.Kernels {
		res.Kernels[k] = kernel.Name
		res.Micros[k] = make([]int64, 0, len(cfg.Sizes))
	}

	for _, size := range cfg.Sizes {
		a := cfg.random(size, size)
		b := cfg.random(size, size)
		if err := matmul.CheckShapes(a, b); err != nil {
			return nil, fmt.Errorf("bench: size %d: %w", size, err)
		}

		for k, kernel := range cfg.Kernels {
			res.Micros[k] = append(res.Micros[k], timeKernel(cfg.Now, kernel.Fn, a, b))
		}
	}
	return res, nil
}

// timeKernel returns the elapsed microseconds of one call. time.Now carries a
// monotonic reading, so the difference is immune to wall clock steps.
func timeKernel(now func() time.Time, fn matmul.Func, a, b matmul.Matrix) int64 {
	start := now()
	_ = fn(a, b)
	return now().Sub(start).Microseconds()
}
