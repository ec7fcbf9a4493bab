package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoclip/internal/planar"
)

const notchedWKT = "POLYGON((3 1, 8 2, 11 1, 11 7, 9 3, 7 5, 4 3, 5 6, 3 7, 2 4, 3 1))"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseBBox(t *testing.T) {
	box, err := parseBBox("1, 4,5,8")
	require.NoError(t, err)
	assert.Equal(t, planar.MustBoundingBox(planar.Coordinate{X: 1, Y: 4}, planar.Coordinate{X: 5, Y: 8}), box)

	_, err = parseBBox("1,2,3")
	assert.Error(t, err)
	_, err = parseBBox("1,2,x,4")
	assert.Error(t, err)
	_, err = parseBBox("5,4,1,8")
	assert.True(t, errors.Is(err, planar.ErrInvalidCoordinates))
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("2.5,-1")
	require.NoError(t, err)
	assert.Equal(t, planar.Coordinate{X: 2.5, Y: -1}, p)
	_, err = parsePoint("2.5")
	assert.Error(t, err)
}

func TestClipCommand(t *testing.T) {
	path := writeFile(t, "p.wkt", notchedWKT)

	out, err := run(t, "clip", "--bbox", "1,4,5,8", path)
	require.NoError(t, err)
	assert.Contains(t, out, "POLYGON((2 4,3 7,5 6,4.33")

	out, err = run(t, "clip", "--bbox", "1,4,5,8", "--format", "geojson", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"FeatureCollection"`)
	assert.Contains(t, out, `"Polygon"`)

	_, err = run(t, "clip", "--bbox", "1,4,5,8", "--format", "shp", path)
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "clip", path)
	assert.Error(t, err, "--bbox is required")
}

func TestClipCommandConfig(t *testing.T) {
	path := writeFile(t, "p.wkt", notchedWKT)
	cfg := writeFile(t, "geoclip.yaml", "clip:\n  format: geojson\n  keep_contained: false\n")

	out, err := run(t, "--config", cfg, "clip", "--bbox", "0,0,20,20", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"features":[]`, "contained polygon dropped")

	out, err = run(t, "--config", cfg, "clip", "--bbox", "0,0,20,20", "--keep-contained", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"Polygon"`)
}

func TestContainsCommand(t *testing.T) {
	path := writeFile(t, "p.wkt", "POLYGON((0 0, 0 10, 10 10, 10 0, 0 0),(2 2, 2 4, 4 4, 4 2, 2 2))")

	out, err := run(t, "contains", "--point", "3,3", path)
	require.NoError(t, err)
	assert.Equal(t, "polygon 0 ring 0 (outer): true\npolygon 0 ring 1 (hole): true\n", out)

	out, err = run(t, "contains", "--point", "7,7", path)
	require.NoError(t, err)
	assert.Equal(t, "polygon 0 ring 0 (outer): true\npolygon 0 ring 1 (hole): false\n", out)
}

func TestProjectCommand(t *testing.T) {
	out, err := run(t, "project", "--lat=45")
	require.NoError(t, err)
	assert.Contains(t, out, "50.498986")

	out, err = run(t, "project", "--lat=180", "--inverse")
	require.NoError(t, err)
	assert.Contains(t, out, "85.051128")
}

func TestLogLevelFlag(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "project", "--lat=1")
	assert.ErrorContains(t, err, "level")

	_, err = run(t, "--log-level", "debug", "project", "--lat=1")
	assert.NoError(t, err)
}
