package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-matbench/hwy"
	"github.com/ajroetker/go-matbench/hwy/contrib/matmul"
	"github.com/ajroetker/go-matbench/internal/bench"
)

func execute(t *testing.T, cfg bench.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootPrintsThreeLines(t *testing.T) {
	out, err := execute(t, bench.Config{Sizes: []int{3, 4, 5, 6}, Rand: matmul.NewRand(1)})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Len(t, strings.Split(line, ", "), 4, "line %q", line)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, bench.Config{Sizes: []int{2}}, "extra")
	require.Error(t, err)
}

func TestRootReportsConfigError(t *testing.T) {
	_, err := execute(t, bench.Config{Sizes: []int{-1}})
	require.ErrorIs(t, err, bench.ErrBadSize)
}

func TestCPUInfo(t *testing.T) {
	out, err := execute(t, bench.Config{}, "cpuinfo")
	require.NoError(t, err)
	require.Contains(t, out, "Highway dispatch name: "+hwy.CurrentName())
	require.Contains(t, out, "Kernels: Naive, Vec4, Winograd, Vec4t")
}
