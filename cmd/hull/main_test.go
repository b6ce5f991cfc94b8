package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/hull"
	"github.com/osuushi/hull/advanced"
	"github.com/osuushi/hull/pointio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareInput = "0 3\n2 2\n1 1\n2 1\n3 0\n0 0\n3 3\n"

func runHull(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	for _, name := range []string{hull.KirkpatrickSeidelName, hull.JarvisMarchName} {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, err := runHull(t, squareInput, "--algorithm", name)
			require.NoError(t, err)
			assert.Equal(t, "0 0\n3 0\n3 3\n0 3\n", stdout)
			assert.Contains(t, stderr, "Read 7 points, "+name+" found 4 hull vertices")
		})
	}

	t.Run("options", func(t *testing.T) {
		stdout, _, err := runHull(t, squareInput, "--pivot", "exact", "--parallel-cutoff", "2")
		require.NoError(t, err)
		assert.Equal(t, "0 0\n3 0\n3 3\n0 3\n", stdout)
	})

	t.Run("input file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "square.svg")
		require.NoError(t, os.WriteFile(path, []byte(`<svg>
  <circle cx="0" cy="0" />
  <circle cx="2" cy="0" />
  <circle cx="1" cy="1" />
  <circle cx="1" cy="0.5" />
</svg>`), 0o644))
		stdout, _, err := runHull(t, "", path)
		require.NoError(t, err)
		assert.Equal(t, "0 0\n2 0\n1 1\n", stdout)
	})

	t.Run("bad input", func(t *testing.T) {
		_, _, err := runHull(t, "1 2\nthree 4\n")
		assert.EqualError(t, err, `reading stdin: line 2: invalid coordinate "three": strconv.ParseFloat: parsing "three": invalid syntax`)

		_, _, err = runHull(t, "", filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorContains(t, err, "opening input")
	})

	t.Run("bad flags", func(t *testing.T) {
		_, _, err := runHull(t, squareInput, "--algorithm", "graham-scan")
		assert.Error(t, err)

		_, _, err = runHull(t, squareInput, "--parallel-cutoff=-1")
		assert.EqualError(t, err, "parallel cutoff must not be negative, got -1")
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("HULL_ALGORITHM", hull.JarvisMarchName)
		_, stderr, err := runHull(t, squareInput)
		require.NoError(t, err)
		assert.Contains(t, stderr, hull.JarvisMarchName)
	})
}

func TestRunOutputs(t *testing.T) {
	dir := t.TempDir()

	t.Run("trace", func(t *testing.T) {
		_, stderr, err := runHull(t, squareInput, "--trace")
		require.NoError(t, err)
		assert.Contains(t, stderr, "step 1\n")
		assert.Contains(t, stderr, "Kirkpatrick–Seidel is complete with 4 vertices")
	})

	t.Run("svg", func(t *testing.T) {
		path := filepath.Join(dir, "square.svg")
		_, _, err := runHull(t, squareInput, "--svg", path)
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		points, err := pointio.ReadSVG(f)
		require.NoError(t, err)
		// Seven points, then the four hull vertices.
		assert.Len(t, points, 11)
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "square.png")
		_, _, err := runHull(t, squareInput, "--png", path, "--size", "64")
		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	})

	t.Run("verbose", func(t *testing.T) {
		_, stderr, err := runHull(t, squareInput, "--verbose")
		require.NoError(t, err)
		assert.Contains(t, stderr, "found bridge")
		assert.False(t, advanced.Logger().Enabled(context.Background(), slog.LevelDebug), "logger is reset afterwards")
	})
}
