package polyhedron

import (
	"bytes"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"domainmesh/src/geometry"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataDir = "../../data"

func TestReadOFF(t *testing.T) {
	src := `OFF
# a unit tetrahedron
4 4 6

0 0 0
1 0 0 # trailing comment
0 1 0 0.5 0.5 0.5
0 0 1
3 0 2 1
3 0 1 3 255 0 0
3 1 2 3
3 0 3 2
`
	p, err := ReadOFF(strings.NewReader(src))
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, 4, p.SizeOfVertices())
	assert.Equal(t, 4, p.SizeOfFacets())
	assert.Equal(t, 6, p.NumberOfEdges())
	assert.Equal(t, geometry.NewPoint3(0, 1, 0), p.Vertices[2])
	assert.Equal(t, []int{0, 1, 3}, p.Facets[1])
	assert.InDelta(t, 1.0/6, p.Volume(), 1e-12)
}

func TestReadOFFInlineCounts(t *testing.T) {
	p, err := ReadOFF(strings.NewReader("OFF 3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, p.SizeOfVertices())
	assert.Len(t, p.FacetTriangles(), 1)
	assert.InDelta(t, 0.5, p.SurfaceArea(), 1e-12)
}

func TestReadOFFErrors(t *testing.T) {
	for idx, tc := range []struct {
		name, src string
	}{
		{"empty", ""},
		{"header", "PLY\n3 1 0\n"},
		{"counts", "OFF\n3\n"},
		{"negative", "OFF\n-3 1 0\n"},
		{"truncated vertices", "OFF\n3 1 0\n0 0 0\n"},
		{"short vertex", "OFF\n1 0 0\n0 0\n"},
		{"bad coordinate", "OFF\n1 0 0\n0 x 0\n"},
		{"two corners", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n2 0 1\n"},
		{"missing index", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1\n"},
		{"index range", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 3\n"},
		{"truncated facets", "OFF\n3 2 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			_, err := ReadOFF(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedOFF), "%v", err)
		})
	}
}

func TestWriteOFF(t *testing.T) {
	p, err := LoadOFF(filepath.Join(dataDir, "cube.off"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.WriteOFF(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "OFF\n8 6 12\n-1 -1 -1\n"))

	q, err := ReadOFF(&buf)
	require.NoError(t, err)
	assert.Equal(t, p, q)

	path := filepath.Join(t.TempDir(), "cube.off")
	require.NoError(t, p.SaveOFF(path))
	r, err := LoadOFF(path)
	require.NoError(t, err)
	assert.Equal(t, p, r)
}

func TestLoadOFFSampleData(t *testing.T) {
	for idx, tc := range []struct {
		file             string
		vertices, facets int
	}{
		{"cube.off", 8, 6},
		{"triangle.off", 3, 1},
		{"sphere.off", 42, 80},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.file), func(t *testing.T) {
			p, err := LoadOFF(filepath.Join(dataDir, tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, p.SizeOfVertices())
			assert.Equal(t, tc.facets, p.SizeOfFacets())
			assert.Len(t, p.Points(), tc.vertices)
			require.NoError(t, p.Validate())
		})
	}

	_, err := LoadOFF(filepath.Join(dataDir, "missing.off"))
	assert.Error(t, err)
}

func TestPolyhedronCube(t *testing.T) {
	p, err := LoadOFF(filepath.Join(dataDir, "cube.off"))
	require.NoError(t, err)

	assert.InDelta(t, 8.0, p.Volume(), 1e-12)
	assert.InDelta(t, 24.0, p.SurfaceArea(), 1e-12)
	assert.Len(t, p.FacetTriangles(), 12)
	assert.True(t, p.IsConvex(1e-9))
	assert.True(t, p.Contains(geometry.NewPoint3(0.5, -0.5, 0.9), 0))
	assert.False(t, p.Contains(geometry.NewPoint3(1.5, 0, 0), 0))
	assert.True(t, p.Contains(geometry.NewPoint3(1.05, 0, 0), 0.1))

	b := p.Bounds()
	assert.Equal(t, geometry.NewPoint3(-1, -1, -1), b.Min)
	assert.Equal(t, geometry.NewPoint3(1, 1, 1), b.Max)

	var empty *Polyhedron
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, empty.Points())
}

func TestConvexHull(t *testing.T) {
	cube, err := LoadOFF(filepath.Join(dataDir, "cube.off"))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	points := cube.Points()
	for i := 0; i < 50; i++ {
		points = append(points, geometry.NewPoint3(rng.Float64()*1.8-0.9, rng.Float64()*1.8-0.9, rng.Float64()*1.8-0.9))
	}
	rng.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })

	hull, err := ConvexHull(points)
	require.NoError(t, err)
	require.NoError(t, hull.Validate())
	assert.Len(t, hull.Vertices, 8)
	assert.ElementsMatch(t, cube.Vertices, hull.Vertices)
	assert.Len(t, hull.Facets, 2*len(hull.Vertices)-4)
	assert.InDelta(t, 8.0, hull.Volume(), 1e-9)
	assert.True(t, hull.IsConvex(1e-9))
	for _, p := range points {
		assert.True(t, hull.Contains(p, 1e-9), "%v outside hull", p)
	}
}

func TestConvexHullSphere(t *testing.T) {
	sphere, err := LoadOFF(filepath.Join(dataDir, "sphere.off"))
	require.NoError(t, err)

	hull, err := ConvexHull(sphere.Points())
	require.NoError(t, err)
	assert.Len(t, hull.Vertices, 42)
	assert.Len(t, hull.Facets, 80)
	assert.InDelta(t, sphere.Volume(), hull.Volume(), 1e-6)
}

func TestConvexHullDegenerate(t *testing.T) {
	for idx, pts := range [][]geometry.Point3{
		nil,
		{geometry.NewPoint3(0, 0, 0), geometry.NewPoint3(1, 0, 0), geometry.NewPoint3(0, 1, 0)},
		{geometry.NewPoint3(0, 0, 0), geometry.NewPoint3(1, 0, 0), geometry.NewPoint3(0, 1, 0), geometry.NewPoint3(1, 1, 0)},
		{geometry.NewPoint3(0, 0, 0), geometry.NewPoint3(1, 1, 1), geometry.NewPoint3(2, 2, 2), geometry.NewPoint3(3, 3, 3)},
		{geometry.NewPoint3(0, 0, 0), geometry.NewPoint3(0, 0, 0), geometry.NewPoint3(0, 0, 0), geometry.NewPoint3(0, 0, 0)},
	} {
		t.Run(fmt.Sprintf("%d/n=%d", idx, len(pts)), func(t *testing.T) {
			_, err := ConvexHull(pts)
			assert.True(t, errors.Is(err, ErrEmptyPointSet))
		})
	}
}
