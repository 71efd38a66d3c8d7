package plot

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"domainmesh/src/delaunay3"
	"domainmesh/src/domain"
	"domainmesh/src/geometry"
	"domainmesh/src/polyhedron"
	"domainmesh/src/triangulation"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func squares(t *testing.T) (*triangulation.Triangulation, *domain.FaceInfo) {
	t.Helper()
	cdt := triangulation.New()
	for _, poly := range [][]geometry.Point{
		{geometry.NewPoint(0, 0), geometry.NewPoint(2, 0), geometry.NewPoint(2, 2), geometry.NewPoint(0, 2)},
		{geometry.NewPoint(0.5, 0.5), geometry.NewPoint(1.5, 0.5), geometry.NewPoint(1.5, 1.5), geometry.NewPoint(0.5, 1.5)},
	} {
		_, err := cdt.InsertPolygon(poly)
		require.NoError(t, err)
	}
	return cdt, domain.MarkDomain(cdt, nil)
}

func cubeTriangulation(t *testing.T) *delaunay3.Triangulation {
	t.Helper()
	var pts []geometry.Point3
	for i := 0; i < 8; i++ {
		pts = append(pts, geometry.NewPoint3(float64(i&1)*2-1, float64(i>>1&1)*2-1, float64(i>>2&1)*2-1))
	}
	dt, err := delaunay3.New(pts)
	require.NoError(t, err)
	return dt
}

func TestParseFormat(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want Format
		err  bool
	}{
		{"png", FormatPNG, false},
		{".SVG", FormatSVG, false},
		{"pdf", FormatPDF, false},
		{"gif", "", true},
		{"", "", true},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			f, err := ParseFormat(tc.in)
			if tc.err {
				require.True(t, errors.Is(err, ErrUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, f)
		})
	}

	f, err := FormatOf("out/figure.pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
}

func TestAxes2DLimits(t *testing.T) {
	ax := NewFigure(100, 100).Axes2D()
	_, set := ax.Limits()
	assert.False(t, set)
	ax.Rescale(2)
	_, set = ax.Limits()
	assert.False(t, set)

	ax.Segment(geometry.NewPoint(0, 0), geometry.NewPoint(2, 1), Style{Stroke: Red})
	ax.Segment(geometry.NewPoint(1, -1), geometry.NewPoint(1, 3), Style{Stroke: Blue})
	b, set := ax.Limits()
	require.True(t, set)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, -1}, Max: orb.Point{2, 3}}, b)

	ax.Rescale(1.5)
	b, _ = ax.Limits()
	assert.InDelta(t, -0.5, b.Min[0], 1e-12)
	assert.InDelta(t, 2.5, b.Max[0], 1e-12)
	assert.InDelta(t, -2, b.Min[1], 1e-12)
	assert.InDelta(t, 4, b.Max[1], 1e-12)
}

func TestPlotTriangulatedPolygon(t *testing.T) {
	cdt, fi := squares(t)
	fig := NewFigure(200, 200)
	ax := fig.Axes2D()
	PlotTriangulatedPolygon(ax, cdt, fi, 1.1)

	// 8 constrained sides plus the 8 diagonals of the ring.
	assert.Equal(t, 16, ax.Len())
	b, _ := ax.Limits()
	assert.InDelta(t, -0.1, b.Min[0], 1e-12)
	assert.InDelta(t, 2.1, b.Max[1], 1e-12)

	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf, FormatSVG))
	svg := buf.String()
	assert.Equal(t, 16, strings.Count(svg, "<line"))
	assert.Contains(t, svg, "stroke:#ff0000")
	assert.Contains(t, svg, "stroke:#0000ff")
}

func TestAxes3DLimits(t *testing.T) {
	ax := NewFigure(100, 100).Axes3D()
	assert.Equal(t, float64(DefaultElevation), ax.Elevation)
	assert.Equal(t, float64(DefaultAzimuth), ax.Azimuth)
	assert.True(t, ax.Limits().IsEmpty())

	ax.ExtendLimits(geometry.NewPoint3(1, 2, 3))
	ax.ExtendLimits(geometry.NewPoint3(-1, 0, 5))
	assert.Equal(t, geometry.NewPoint3(-1, 0, 3), ax.Limits().Min)
	assert.Equal(t, geometry.NewPoint3(1, 2, 5), ax.Limits().Max)

	ax.SetXLim(-1.1, 1.1)
	ax.SetYLim(-1.1, 1.1)
	ax.SetZLim(-1.1, 1.1)
	assert.Equal(t, geometry.NewPoint3(-1.1, -1.1, -1.1), ax.Limits().Min)
	assert.Equal(t, geometry.NewPoint3(1.1, 1.1, 1.1), ax.Limits().Max)
}

func TestPlotTriangulatedPolyhedron(t *testing.T) {
	dt := cubeTriangulation(t)
	fig := NewFigure(300, 300)
	ax := fig.Axes3D()
	PlotTriangulatedPolyhedron(ax, dt)

	assert.Equal(t, len(dt.FiniteFacets()), ax.Len())
	assert.Equal(t, geometry.NewPoint3(-1, -1, -1), ax.Limits().Min)
	assert.Equal(t, geometry.NewPoint3(1, 1, 1), ax.Limits().Max)

	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf, FormatSVG))
	assert.Equal(t, ax.Len(), strings.Count(buf.String(), "<polygon"))
	assert.Equal(t, 12, strings.Count(buf.String(), "<line"))
	assert.Contains(t, buf.String(), "fill:#808080;stroke:#000000")
}

func TestPlotFacetsKeepsLimits(t *testing.T) {
	dt := cubeTriangulation(t)
	ax := NewFigure(100, 100).Axes3D()
	PlotFacets(ax, dt, Style{Fill: Red})
	assert.True(t, ax.Limits().IsEmpty())
	assert.Len(t, ax.project(newSVGCanvas(100, 100)), ax.Len())
}

func TestPlotPolyhedronVertices(t *testing.T) {
	p := &polyhedron.Polyhedron{Vertices: []geometry.Point3{
		geometry.NewPoint3(0, 0, 0),
		geometry.NewPoint3(1, 0, 0),
		geometry.NewPoint3(0, 1, 0.5),
	}}
	ax := NewFigure(100, 100).Axes3D()
	PlotPolyhedronVertices(ax, p, 0.01)
	assert.Equal(t, 1, ax.Len())
	assert.Equal(t, geometry.NewPoint3(-0.01, -0.01, -0.01), ax.Limits().Min)
	assert.Equal(t, geometry.NewPoint3(1.01, 1.01, 1.01), ax.Limits().Max)

	empty := NewFigure(100, 100).Axes3D()
	PlotPolyhedronVertices(empty, &polyhedron.Polyhedron{}, 0.01)
	assert.Equal(t, 0, empty.Len())
}

func TestProjectionDepthOrder(t *testing.T) {
	cam := NewCamera(DefaultElevation, DefaultAzimuth)
	_, near := cam.Project(mgl64.Vec3{0.5, -0.87, 0.5})
	_, far := cam.Project(mgl64.Vec3{-0.5, 0.87, -0.5})
	assert.Greater(t, near, far)

	centre, _ := cam.Project(mgl64.Vec3{})
	assert.InDelta(t, 0, centre.X(), 1e-12)
	assert.InDelta(t, 0, centre.Y(), 1e-12)

	// z points up on screen.
	top, _ := cam.Project(mgl64.Vec3{0, 0, 1})
	assert.Greater(t, top.Y(), 0.0)
}

func TestRenderFormats(t *testing.T) {
	dt := cubeTriangulation(t)
	fig := NewFigure(120, 80)
	ax := fig.Axes3D()
	ax.SetLimits(geometry.Bounds3{Min: geometry.NewPoint3(-1.1, -1.1, -1.1), Max: geometry.NewPoint3(1.1, 1.1, 1.1)})
	PlotFacets(ax, dt, Style{Fill: Red})

	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf, FormatPNG))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
	red := 0
	for y := 0; y < 80; y++ {
		for x := 0; x < 120; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r == 0xffff && g == 0 && b == 0 {
				red++
			}
		}
	}
	assert.Greater(t, red, 1000, "cube facets are painted red")
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "corner is background")

	buf.Reset()
	require.NoError(t, fig.Render(&buf, FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Equal(t, 1, pdfPageCount(buf.Bytes()))
	assert.True(t, bytes.HasSuffix(bytes.TrimSpace(buf.Bytes()), []byte("%%EOF")))

	buf.Reset()
	err = fig.Render(&buf, Format("gif"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

// pdfPageCount counts page objects, leaving out the page tree node.
func pdfPageCount(doc []byte) int {
	return len(regexp.MustCompile(`/Type\s*/Page\b`).FindAll(doc, -1))
}

func TestSavePDF(t *testing.T) {
	fig := NewFigure(200, 100)
	ax := fig.Axes2D()
	cdt, fi := squares(t)
	PlotTriangulatedPolygon(ax, cdt, fi, 1.1)

	path := filepath.Join(t.TempDir(), "domain.pdf")
	require.NoError(t, fig.Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, 1, pdfPageCount(data))
}

func TestSaveAndShow(t *testing.T) {
	dir := t.TempDir()
	fig := NewFigure(50, 50)
	fig.Axes2D().Segment(geometry.NewPoint(0, 0), geometry.NewPoint(1, 1), Style{Stroke: Black})

	path := filepath.Join(dir, "figure.svg")
	require.NoError(t, fig.Show(path, zaptest.NewLogger(t)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	bad := filepath.Join(dir, "figure.bmp")
	err = fig.Save(bad)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	_, statErr := os.Stat(bad)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSVGStyleOpacity(t *testing.T) {
	for idx, tc := range []struct {
		style Style
		want  []string
		not   []string
	}{
		{Style{Fill: Red}, []string{"fill:#ff0000", "stroke:none"}, []string{"opacity"}},
		{Style{Fill: color.NRGBA{R: 0xff, A: 0x80}}, []string{"fill:#ff0000", "fill-opacity:0.502"}, []string{"stroke-opacity"}},
		{Style{Stroke: color.RGBA{B: 0x40, A: 0x40}}, []string{"stroke:#0000ff", "stroke-opacity:0.251"}, []string{"fill-opacity"}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			css := svgStyle(tc.style)
			for _, w := range tc.want {
				assert.Contains(t, css, w)
			}
			for _, n := range tc.not {
				assert.NotContains(t, css, n)
			}
		})
	}
}

type panicCanvas struct{ svgCanvas }

func (panicCanvas) Polygon([]Vec2, Style) { panic("backend exploded") }

func TestCheckError(t *testing.T) {
	render := func() (err error) {
		defer checkError(&err)
		var c Canvas = &panicCanvas{}
		c.Polygon(nil, Style{})
		return nil
	}
	err := render()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend exploded")
}
