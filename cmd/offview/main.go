// Command offview plots the vertices of an OFF file as a single polygon with
// equal axis limits.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"domainmesh/src/config"
	"domainmesh/src/plot"
	"domainmesh/src/polyhedron"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	input := flag.String("in", "triangle.off", "OFF file, relative to the data directory")
	margin := flag.Float64("margin", 0.01, "padding around the vertices")
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

	if err := run(cfg, *input, *margin, log); err != nil {
		log.Fatal("offview failed", zap.Error(err))
	}
}

func run(cfg config.Config, input string, margin float64, log *zap.Logger) error {
	path := cfg.DataFile(input)
	p, err := polyhedron.LoadOFF(path)
	if err != nil {
		return err
	}
	log.Info("polyhedron loaded",
		zap.String("path", path),
		zap.Int("vertices", p.SizeOfVertices()),
		zap.Int("facets", p.SizeOfFacets()))

	fig := plot.NewFigure(cfg.Width, cfg.Height)
	plot.PlotPolyhedronVertices(fig.Axes3D(), p, margin)
	out := cfg.OutputFile(strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)))
	err = fig.Show(out, log)
	if errors.Is(err, plot.ErrUnsupportedFormat) {
		log.Warn("plotting not supported", zap.String("path", out), zap.Error(err))
		return nil
	}
	return err
}
