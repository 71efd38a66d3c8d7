package triangulation

import (
	"domainmesh/src/geometry"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// InsertPolygon inserts the points in order and constrains every pair of
// consecutive vertices, closing the ring from the last point back to the
// first. An empty sequence is a no-op.
func (t *Triangulation) InsertPolygon(points []geometry.Point) ([]Vertex, error) {
	if len(points) == 0 {
		return nil, nil
	}
	vs, err := t.InsertPoints(points...)
	if err != nil {
		return vs, errors.Wrap(err, "insert polygon points")
	}
	for i := range vs {
		a, b := vs[i], vs[(i+1)%len(vs)]
		if a == b {
			continue
		}
		if err := t.InsertConstraint(a, b); err != nil {
			return vs, errors.Wrapf(err, "insert polygon side %d", i)
		}
	}
	t.log.Debug("inserted polygon",
		zap.Int("points", len(points)),
		zap.Int("vertices", t.NumberOfVertices()),
		zap.Int("faces", t.NumberOfFaces()))
	return vs, nil
}
