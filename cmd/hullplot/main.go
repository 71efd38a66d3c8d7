// Command hullplot reads an OFF file, computes its convex hull, builds the 3D
// Delaunay triangulation of the hull vertices and plots its facets.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"domainmesh/src/config"
	"domainmesh/src/delaunay3"
	"domainmesh/src/plot"
	"domainmesh/src/polyhedron"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	input := flag.String("in", "sphere.off", "OFF file, relative to the data directory")
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

	if err := run(cfg, *input, log); err != nil {
		log.Fatal("hullplot failed", zap.Error(err))
	}
}

func run(cfg config.Config, input string, log *zap.Logger) error {
	path := cfg.DataFile(input)
	p, err := polyhedron.LoadOFF(path)
	if err != nil {
		return err
	}
	log.Info("polyhedron loaded",
		zap.String("path", path),
		zap.Int("vertices", p.SizeOfVertices()),
		zap.Int("facets", p.SizeOfFacets()))

	hull, err := polyhedron.ConvexHull(p.Points())
	if err != nil {
		return err
	}
	inside := 0
	for _, v := range p.Vertices {
		if hull.Contains(v, 1e-9) {
			inside++
		}
	}
	log.Info("convex hull",
		zap.Int("vertices", hull.SizeOfVertices()),
		zap.Int("facets", hull.SizeOfFacets()),
		zap.Int("contained", inside),
		zap.Float64("volume", hull.Volume()))

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + "_hull"
	hullPath := filepath.Join(cfg.OutputDir, base+".off")
	if err := hull.SaveOFF(hullPath); err != nil {
		return err
	}
	log.Info("hull written", zap.String("path", hullPath))

	dt, err := delaunay3.New(hull.Points(), delaunay3.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "triangulate hull")
	}
	log.Info("delaunay triangulation",
		zap.Int("cells", dt.NumberOfFiniteCells()),
		zap.Int("facets", len(dt.FiniteFacets())))

	fig := plot.NewFigure(cfg.Width, cfg.Height)
	plot.PlotTriangulatedPolyhedron(fig.Axes3D(), dt)
	out := cfg.OutputFile(base)
	err = fig.Show(out, log)
	if errors.Is(err, plot.ErrUnsupportedFormat) {
		log.Warn("plotting not supported", zap.String("path", out), zap.Error(err))
		return nil
	}
	return err
}
