package pointio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		input := "# scenario one\n0 3\n2 2\n\n1,1\n  2\t1  \n3, 0\n-0.5 1e2\n"
		points, err := ReadPoints(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []hull.Point{{0, 3}, {2, 2}, {1, 1}, {2, 1}, {3, 0}, {-0.5, 100}}, points)
	})

	t.Run("empty", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, points)
	})

	t.Run("errors name the line", func(t *testing.T) {
		_, err := ReadPoints(strings.NewReader("1 2\n3\n"))
		assert.EqualError(t, err, `line 2: expected two coordinates, found 1 in "3"`)

		_, err = ReadPoints(strings.NewReader("1 2\n\n3 four\n"))
		assert.ErrorContains(t, err, `line 3: invalid coordinate "four"`)

		_, err = ReadPoints(strings.NewReader("NaN 1\n"))
		assert.EqualError(t, err, `line 1: coordinate "NaN" is not finite`)

		_, err = ReadPoints(strings.NewReader("1 -Inf\n"))
		assert.EqualError(t, err, `line 1: coordinate "-Inf" is not finite`)
	})
}

func TestReadSVG(t *testing.T) {
	t.Run("circles and polygons", func(t *testing.T) {
		input := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <circle cx="1" cy="2" r="0.1" />
  <g>
    <circle cx="3.5" cy="-4" r="0.1" />
  </g>
  <polygon points="0,0 4,0 4,3" />
  <polyline points="7 7, 8 8" />
</svg>`
		points, err := ReadSVG(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []hull.Point{{1, 2}, {3.5, -4}, {0, 0}, {4, 0}, {4, 3}, {7, 7}, {8, 8}}, points)
	})

	t.Run("bad coordinates", func(t *testing.T) {
		_, err := ReadSVG(strings.NewReader(`<svg><circle cx="x" cy="1" /></svg>`))
		assert.ErrorContains(t, err, `circle cx: invalid coordinate "x"`)

		_, err = ReadSVG(strings.NewReader(`<svg><polygon points="1,2 3" /></svg>`))
		assert.ErrorContains(t, err, "polygon points: odd number of coordinates")
	})
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, SVG, FormatOf("points.svg"))
	assert.Equal(t, SVG, FormatOf("/tmp/POINTS.SVG"))
	assert.Equal(t, Plain, FormatOf("points.txt"))
	assert.Equal(t, Plain, FormatOf("-"))
	assert.Equal(t, "svg", SVG.String())
	assert.Equal(t, "plain", Plain.String())
}

func TestWriteHull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHull(&buf, hull.Hull{{0, 0}, {3, 0}, {3, 3.25}, {-1e-7, 3}}))
	assert.Equal(t, "0 0\n3 0\n3 3.25\n-1e-07 3\n", buf.String())

	points, err := ReadPoints(&buf)
	require.NoError(t, err)
	assert.Equal(t, []hull.Point{{0, 0}, {3, 0}, {3, 3.25}, {-1e-7, 3}}, points)
}

func TestWriteSVG(t *testing.T) {
	points := []hull.Point{{0, 3}, {2, 2}, {1, 1}, {3, 0}, {0, 0}, {3, 3}}
	h := hull.Hull{{0, 0}, {3, 0}, {3, 3}, {0, 3}}

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, points, h))
	assert.Contains(t, buf.String(), `<polygon points="0,0 3,0 3,3 0,3"`)

	// Circles are read before polygons, so the hull comes back last.
	read, err := Read(&buf, SVG)
	require.NoError(t, err)
	assert.Equal(t, append(append([]hull.Point{}, points...), h...), read)
}
