// Command polygondomain triangulates two nested squares, classifies the
// faces by nesting level and plots the domain. It also renders the
// triangulated unit cube.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"domainmesh/src/config"
	"domainmesh/src/delaunay3"
	"domainmesh/src/domain"
	"domainmesh/src/geometry"
	"domainmesh/src/plot"
	"domainmesh/src/triangulation"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	format := flag.String("format", "", "figure format (png, svg, pdf); overrides the config")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Resolve(*configPath, os.LookupEnv)
	if err != nil {
		panic(err)
	}
	if *format != "" {
		cfg.Format = *format
	}
	log, err := config.NewLogger(*verbose || cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("polygondomain failed", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	cdt := triangulation.New(triangulation.WithLogger(log))
	for _, square := range [][]geometry.Point{
		{geometry.NewPoint(0, 0), geometry.NewPoint(2, 0), geometry.NewPoint(2, 2), geometry.NewPoint(0, 2)},
		{geometry.NewPoint(0.5, 0.5), geometry.NewPoint(1.5, 0.5), geometry.NewPoint(1.5, 1.5), geometry.NewPoint(0.5, 1.5)},
	} {
		if _, err := cdt.InsertPolygon(square); err != nil {
			return errors.Wrap(err, "insert square")
		}
	}
	fi := domain.MarkDomain(cdt, log)
	log.Info("domain marked",
		zap.Int("faces", cdt.NumberOfFaces()),
		zap.Any("levels", fi.Histogram()),
		zap.Float64("area", domain.DomainArea(cdt, fi)))

	geo := filepath.Join(cfg.OutputDir, "domain.geojson")
	if err := writeGeoJSON(geo, cdt, fi); err != nil {
		return err
	}
	log.Info("faces exported", zap.String("path", geo))

	fig := plot.NewFigure(cfg.Width, cfg.Height)
	plot.PlotTriangulatedPolygon(fig.Axes2D(), cdt, fi, cfg.Scale)
	if err := show(fig, cfg.OutputFile("domain"), log); err != nil {
		return err
	}

	var corners []geometry.Point3
	for i := 0; i < 8; i++ {
		corners = append(corners, geometry.NewPoint3(float64(i&1)*2-1, float64(i>>1&1)*2-1, float64(i>>2&1)*2-1))
	}
	dt, err := delaunay3.New(corners, delaunay3.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "triangulate cube")
	}
	cube := plot.NewFigure(cfg.Width, cfg.Height)
	ax := cube.Axes3D()
	ax.SetXLim(-1.1, 1.1)
	ax.SetYLim(-1.1, 1.1)
	ax.SetZLim(-1.1, 1.1)
	plot.PlotFacets(ax, dt, plot.Style{Fill: plot.Red})
	return show(cube, cfg.OutputFile("cube"), log)
}

func writeGeoJSON(path string, cdt *triangulation.Triangulation, fi *domain.FaceInfo) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create geojson")
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = errors.Wrap(cerr, "close geojson")
		}
	}()
	return domain.WriteGeoJSON(out, cdt, fi)
}

// show renders fig, skipping it with a warning when the format has no
// canvas.
func show(fig *plot.Figure, path string, log *zap.Logger) error {
	err := fig.Show(path, log)
	if errors.Is(err, plot.ErrUnsupportedFormat) {
		log.Warn("plotting not supported", zap.String("path", path), zap.Error(err))
		return nil
	}
	return err
}
