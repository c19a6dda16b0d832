// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/snapshot"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(append(args, "--log-level", "error"))

	return root.Execute()
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(logConfig{Level: "debug", Encoding: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = newLogger(logConfig{Level: "loud", Encoding: "json"})
	require.Error(t, err)

	_, err = newLogger(logConfig{Level: "info", Encoding: "xml"})
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := []config{
		{Rows: -1},
		{Density: 1.5},
		{Workers: -2},
		{Threshold: -1},
		{Rounds: -1},
		{Kind: "ragged"},
	}
	for _, c := range cases {
		assert.ErrorIs(t, c.validate(), errBadConfig, "%+v", c)
	}
	assert.NoError(t, config{Rows: 2, Cols: 2, Density: 0.5, Kind: "Dense"}.validate())
}

func TestGenThenInspect(t *testing.T) {
	for _, kind := range []string{"dense", "sparse"} {
		t.Run(kind, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "m.lvu")
			require.NoError(t, execute(t, "gen", "--rows", "6", "--cols", "6", "--density", "0.5", "--kind", kind, path))

			s, err := snapshot.Read(path)
			require.NoError(t, err)
			assert.Equal(t, kind, s.Kind().String())
			assert.Equal(t, 6, s.Rows())
			assert.Equal(t, 6, s.Cols())

			require.NoError(t, execute(t, "inspect", path))
		})
	}
}

func TestGenIsDeterministicPerSeed(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.lvu"), filepath.Join(dir, "b.lvu")
	require.NoError(t, execute(t, "gen", "--rows", "5", "--cols", "4", "--seed", "42", a))
	require.NoError(t, execute(t, "gen", "--rows", "5", "--cols", "4", "--seed", "42", b))

	x, err := os.ReadFile(a)
	require.NoError(t, err)
	y, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, x, y)
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lvunits.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rows: 4\ncols: 9\nkind: dense\n"), 0o600))
	t.Setenv("LVUNITS_COLS", "7")

	path := filepath.Join(dir, "m.lvu")
	require.NoError(t, execute(t, "gen", "--config", cfgPath, "--density", "1", path))

	s, err := snapshot.Read(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Rows(), "file value")
	assert.Equal(t, 7, s.Cols(), "env beats file")
	assert.True(t, s.IsDense(), "file beats flag default")
	assert.Equal(t, 28, s.Cardinality())
}

func TestBench(t *testing.T) {
	require.NoError(t, execute(t, "bench", "--rows", "8", "--cols", "8", "--rounds", "1", "--threshold", "0", "--workers", "2"))
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, execute(t, "inspect", filepath.Join(dir, "missing.lvu")))
	require.ErrorIs(t, execute(t, "gen", "--density", "2", filepath.Join(dir, "x.lvu")), errBadConfig)
	require.Error(t, execute(t, "gen"))
	require.Error(t, execute(t, "inspect", filepath.Join(dir, "x.lvu"), "--config", filepath.Join(dir, "nope.yaml")))
}
