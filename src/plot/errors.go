package plot

import (
	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("plot: unsupported output format")

// checkError turns a panic raised by a drawing backend into an error.
func checkError(err *error) {
	if v := recover(); v != nil {
		*err = errors.Errorf("plot: render failed: %+v", v)
	}
}
