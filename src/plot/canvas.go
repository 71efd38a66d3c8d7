// Package plot renders 2D segment plots and 3D polygon collections to PNG,
// SVG or PDF.
package plot

import (
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Vec2 is a position on the canvas in pixels, y pointing down.
type Vec2 struct {
	X, Y float64
}

// Style describes how a shape is painted. A nil colour is not painted.
type Style struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
}

var (
	Red   = color.RGBA{R: 0xff, A: 0xff}
	Blue  = color.RGBA{B: 0xff, A: 0xff}
	Grey  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Black = color.RGBA{A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Frame = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)

// Canvas is a drawing backend. Shapes are painted in call order.
type Canvas interface {
	Size() (width, height float64)
	Polygon(points []Vec2, style Style)
	Line(a, b Vec2, style Style)
	// Finish encodes the drawing to w. The canvas must not be used
	// afterwards.
	Finish(w io.Writer) error
}

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// ParseFormat accepts a format name or file extension, with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatPNG, FormatSVG, FormatPDF:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

func newCanvas(format Format, width, height int) (Canvas, error) {
	switch format {
	case FormatPNG:
		return newPNGCanvas(width, height), nil
	case FormatSVG:
		return newSVGCanvas(width, height), nil
	case FormatPDF:
		return newPDFCanvas(width, height), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", string(format))
}
