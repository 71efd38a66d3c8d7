package plot

import (
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

type pngCanvas struct {
	dc *gg.Context
}

func newPNGCanvas(width, height int) *pngCanvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(White)
	dc.Clear()
	return &pngCanvas{dc: dc}
}

func (c *pngCanvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

func (c *pngCanvas) Polygon(points []Vec2, style Style) {
	if len(points) < 2 {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	if style.Fill != nil {
		c.dc.SetColor(style.Fill)
		c.dc.FillPreserve()
	}
	if style.Stroke != nil {
		c.dc.SetColor(style.Stroke)
		c.dc.SetLineWidth(lineWidth(style))
		c.dc.StrokePreserve()
	}
	c.dc.ClearPath()
}

func (c *pngCanvas) Line(a, b Vec2, style Style) {
	if style.Stroke == nil {
		return
	}
	c.dc.SetColor(style.Stroke)
	c.dc.SetLineWidth(lineWidth(style))
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.Stroke()
}

func (c *pngCanvas) Finish(w io.Writer) error {
	return errors.Wrap(c.dc.EncodePNG(w), "encode png")
}

func lineWidth(style Style) float64 {
	if style.LineWidth > 0 {
		return style.LineWidth
	}
	return 1
}
