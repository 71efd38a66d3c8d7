package plot

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type drawer interface {
	draw(c Canvas)
}

// Figure holds a single set of axes and renders it on demand.
type Figure struct {
	Width, Height int
	axes          drawer
}

func NewFigure(width, height int) *Figure {
	return &Figure{Width: width, Height: height}
}

// Axes2D returns the 2D axes of the figure, replacing any 3D axes.
func (f *Figure) Axes2D() *Axes2D {
	if ax, ok := f.axes.(*Axes2D); ok {
		return ax
	}
	ax := newAxes2D()
	f.axes = ax
	return ax
}

// Axes3D returns the 3D axes of the figure, replacing any 2D axes.
func (f *Figure) Axes3D() *Axes3D {
	if ax, ok := f.axes.(*Axes3D); ok {
		return ax
	}
	ax := newAxes3D()
	f.axes = ax
	return ax
}

// Render draws the figure once and encodes it to w.
func (f *Figure) Render(w io.Writer, format Format) (err error) {
	defer checkError(&err)
	c, err := newCanvas(format, f.Width, f.Height)
	if err != nil {
		return err
	}
	if f.axes != nil {
		f.axes.draw(c)
	}
	return c.Finish(w)
}

// Save renders the figure to path in the format given by its extension.
func (f *Figure) Save(path string) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create figure file")
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = errors.Wrap(cerr, "close figure file")
		}
	}()
	return f.Render(out, format)
}

// Show saves the figure to path and logs where it went.
func (f *Figure) Show(path string, log *zap.Logger) error {
	if err := f.Save(path); err != nil {
		return errors.Wrapf(err, "show %s", path)
	}
	log.Info("figure written", zap.String("path", path), zap.Int("width", f.Width), zap.Int("height", f.Height))
	return nil
}
