package plot

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/pkg/errors"
)

type svgCanvas struct {
	buf           bytes.Buffer
	s             *svg.SVG
	width, height float64
}

func newSVGCanvas(width, height int) *svgCanvas {
	c := &svgCanvas{width: float64(width), height: float64(height)}
	c.s = svg.New(&c.buf)
	c.s.Start(c.width, c.height)
	c.s.Rect(0, 0, c.width, c.height, "fill:white;stroke:none")
	return c
}

func (c *svgCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *svgCanvas) Polygon(points []Vec2, style Style) {
	if len(points) < 2 {
		return
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	c.s.Polygon(xs, ys, svgStyle(style))
}

func (c *svgCanvas) Line(a, b Vec2, style Style) {
	if style.Stroke == nil {
		return
	}
	c.s.Line(a.X, a.Y, b.X, b.Y, svgStyle(Style{Stroke: style.Stroke, LineWidth: style.LineWidth}))
}

func (c *svgCanvas) Finish(w io.Writer) error {
	c.s.End()
	_, err := c.buf.WriteTo(w)
	return errors.Wrap(err, "write svg")
}

func svgStyle(style Style) string {
	fill, fillOpacity := svgColor(style.Fill)
	stroke, strokeOpacity := svgColor(style.Stroke)
	css := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", fill, stroke, lineWidth(style))
	if fillOpacity < 1 {
		css += fmt.Sprintf(";fill-opacity:%.3g", fillOpacity)
	}
	if strokeOpacity < 1 {
		css += fmt.Sprintf(";stroke-opacity:%.3g", strokeOpacity)
	}
	return css
}

// svgColor returns the straight (non premultiplied) colour and its opacity.
func svgColor(c color.Color) (string, float64) {
	if c == nil {
		return "none", 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 0xff
}
