package plot

import (
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
	"github.com/llgcode/draw2d/draw2dpdf"
	"github.com/pkg/errors"
)

// A4 portrait in points.
const (
	pdfPageWidth  = 595.28
	pdfPageHeight = 841.89
)

// pdfCanvas draws in pixel units scaled to fit an A4 page. Coordinates are
// scaled here rather than through the graphic context transform, which gofpdf
// only accepts inside a TransformBegin/TransformEnd pair.
type pdfCanvas struct {
	dest          *gofpdf.Fpdf
	gc            *draw2dpdf.GraphicContext
	width, height float64
	scale         float64
}

func newPDFCanvas(width, height int) *pdfCanvas {
	dest := draw2dpdf.NewPdf("P", "pt", "A4")
	c := &pdfCanvas{
		dest:   dest,
		gc:     draw2dpdf.NewGraphicContext(dest),
		width:  float64(width),
		height: float64(height),
	}
	c.scale = math.Min(pdfPageWidth/c.width, pdfPageHeight/c.height)
	return c
}

func (c *pdfCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *pdfCanvas) moveTo(p Vec2) {
	c.gc.MoveTo(p.X*c.scale, p.Y*c.scale)
}

func (c *pdfCanvas) lineTo(p Vec2) {
	c.gc.LineTo(p.X*c.scale, p.Y*c.scale)
}

func (c *pdfCanvas) Polygon(points []Vec2, style Style) {
	if len(points) < 2 {
		return
	}
	c.gc.BeginPath()
	c.moveTo(points[0])
	for _, p := range points[1:] {
		c.lineTo(p)
	}
	c.gc.Close()
	c.gc.SetLineWidth(lineWidth(style) * c.scale)
	switch {
	case style.Fill != nil && style.Stroke != nil:
		c.gc.SetFillColor(style.Fill)
		c.gc.SetStrokeColor(style.Stroke)
		c.gc.FillStroke()
	case style.Fill != nil:
		c.gc.SetFillColor(style.Fill)
		c.gc.Fill()
	case style.Stroke != nil:
		c.gc.SetStrokeColor(style.Stroke)
		c.gc.Stroke()
	}
}

func (c *pdfCanvas) Line(a, b Vec2, style Style) {
	if style.Stroke == nil {
		return
	}
	c.gc.BeginPath()
	c.gc.SetStrokeColor(style.Stroke)
	c.gc.SetLineWidth(lineWidth(style) * c.scale)
	c.moveTo(a)
	c.lineTo(b)
	c.gc.Stroke()
}

func (c *pdfCanvas) Finish(w io.Writer) error {
	return errors.Wrap(c.dest.Output(w), "write pdf")
}
