package triangulation

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidPoint            = errors.New("triangulation: point coordinates must be finite")
	ErrInvalidVertex           = errors.New("triangulation: unknown vertex")
	ErrIntersectingConstraints = errors.New("triangulation: constraints intersect")
	ErrDegenerateConstraint    = errors.New("triangulation: constraint endpoints coincide")
)
