// Package domain classifies the faces of a constrained triangulation into
// nested layers separated by constrained edges.
package domain

import (
	"domainmesh/src/triangulation"

	"go.uber.org/zap"
)

// FaceGraph is the face adjacency view of a triangulation needed by the
// classifier.
type FaceGraph interface {
	AllFaces() []triangulation.Face
	InfiniteFace() triangulation.Face
	Neighbor(f triangulation.Face, i int) triangulation.Face
	IsConstrained(f triangulation.Face, i int) bool
}

// FaceInfo records the nesting level of each face. A face without an entry
// has not been classified.
type FaceInfo struct {
	levels map[triangulation.Face]int
}

func NewFaceInfo() *FaceInfo {
	return &FaceInfo{levels: make(map[triangulation.Face]int)}
}

// Level returns the nesting level of f and whether it is set.
func (fi *FaceInfo) Level(f triangulation.Face) (int, bool) {
	l, ok := fi.levels[f]
	return l, ok
}

// InDomain reports whether f lies inside the polygon domain: its level is
// even. Unset faces are outside.
func (fi *FaceInfo) InDomain(f triangulation.Face) bool {
	l, ok := fi.levels[f]
	return ok && l%2 != 1
}

func (fi *FaceInfo) Len() int {
	return len(fi.levels)
}

// Histogram counts the faces per level.
func (fi *FaceInfo) Histogram() map[int]int {
	h := make(map[int]int)
	for _, l := range fi.levels {
		h[l]++
	}
	return h
}

func (fi *FaceInfo) set(f triangulation.Face, level int) bool {
	if _, ok := fi.levels[f]; ok {
		return false
	}
	fi.levels[f] = level
	return true
}

type border struct {
	face  triangulation.Face
	index int
}

// MarkDomain classifies every face of g reachable from its infinite face.
func MarkDomain(g FaceGraph, log *zap.Logger) *FaceInfo {
	fi := NewFaceInfo()
	MarkDomainInto(g, fi, log)
	return fi
}

// MarkDomainInto classifies the faces of g into fi. The infinite face
// seeds level 1; crossing a constrained edge increments the level. Faces
// that already have a level keep it, so running it twice changes nothing.
func MarkDomainInto(g FaceGraph, fi *FaceInfo, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	start := g.InfiniteFace()
	if start == triangulation.NoFace {
		log.Debug("nothing to classify")
		return
	}

	var borders []border
	fill(g, fi, start, 1, &borders)
	for len(borders) > 0 {
		e := borders[0]
		borders = borders[1:]
		n := g.Neighbor(e.face, e.index)
		if _, ok := fi.Level(n); ok {
			continue
		}
		l, _ := fi.Level(e.face)
		fill(g, fi, n, l+1, &borders)
	}

	if ce := log.Check(zap.DebugLevel, "classified faces"); ce != nil {
		ce.Write(
			zap.Int("faces", len(g.AllFaces())),
			zap.Int("classified", fi.Len()),
			zap.Any("levels", fi.Histogram()))
	}
}

// fill floods level over unconstrained edges from start, queueing the
// constrained edges it meets on borders.
func fill(g FaceGraph, fi *FaceInfo, start triangulation.Face, level int, borders *[]border) {
	if !fi.set(start, level) {
		return
	}
	queue := []triangulation.Face{start}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for i := 0; i < 3; i++ {
			n := g.Neighbor(f, i)
			if _, ok := fi.Level(n); ok {
				continue
			}
			if g.IsConstrained(f, i) {
				*borders = append(*borders, border{face: f, index: i})
				continue
			}
			fi.set(n, level)
			queue = append(queue, n)
		}
	}
}
