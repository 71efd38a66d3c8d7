package delaunay3

import (
	"sort"

	"github.com/pkg/errors"
)

// Cell is a stable handle to a tetrahedron.
type Cell int

const NoCell Cell = -1

// Facet is the triangle of Cell opposite to its vertex Index.
type Facet struct {
	Cell  Cell
	Index int
}

// cell vertices are positively oriented; n[i] is the neighbour across the
// facet opposite v[i].
type cell struct {
	v     [4]Vertex
	n     [4]Cell
	alive bool
}

// outward lists, for each facet, its vertex indices ordered
// counter-clockwise as seen from outside the cell.
var outward = [4][3]int{{1, 2, 3}, {2, 0, 3}, {3, 0, 1}, {0, 2, 1}}

func (c *cell) index(v Vertex) int {
	for i := 0; i < 4; i++ {
		if c.v[i] == v {
			return i
		}
	}
	return -1
}

func (c *cell) infinite() bool {
	return c.index(InfiniteVertex) >= 0
}

type facetKey [3]Vertex

func keyOf(v [4]Vertex, i int) facetKey {
	var k facetKey
	j := 0
	for m := 0; m < 4; m++ {
		if m != i {
			k[j] = v[m]
			j++
		}
	}
	sort.Slice(k[:], func(a, b int) bool { return k[a] < k[b] })
	return k
}

func (t *Triangulation) newCell() Cell {
	if n := len(t.free); n > 0 {
		c := t.free[n-1]
		t.free = t.free[:n-1]
		return c
	}
	t.cells = append(t.cells, cell{})
	return Cell(len(t.cells) - 1)
}

func (t *Triangulation) mirrorIndex(c Cell, i int) int {
	d := t.cells[c].n[i]
	for k := 0; k < 4; k++ {
		if t.cells[d].n[k] == c {
			return k
		}
	}
	panic(errors.Errorf("delaunay3: cells %d and %d are not neighbours", c, d))
}

type facetRef struct {
	cell  Cell
	index int
}

// rebuild replaces the dead cells by the given positively oriented cells,
// which must fill the same region.
func (t *Triangulation) rebuild(dead []Cell, cells [][4]Vertex) []Cell {
	isDead := make(map[Cell]bool, len(dead))
	for _, c := range dead {
		isDead[c] = true
	}
	outer := make(map[facetKey]facetRef)
	for _, c := range dead {
		r := &t.cells[c]
		for i := 0; i < 4; i++ {
			if isDead[r.n[i]] {
				continue
			}
			outer[keyOf(r.v, i)] = facetRef{cell: r.n[i], index: t.mirrorIndex(c, i)}
		}
	}
	for _, c := range dead {
		t.cells[c] = cell{}
		t.free = append(t.free, c)
	}

	created := make([]Cell, len(cells))
	open := make(map[facetKey]facetRef, 2*len(cells))
	for k, vs := range cells {
		c := t.newCell()
		created[k] = c
		t.cells[c] = cell{v: vs, n: [4]Cell{NoCell, NoCell, NoCell, NoCell}, alive: true}
		for i := 0; i < 4; i++ {
			key := keyOf(vs, i)
			if o, ok := open[key]; ok {
				t.cells[c].n[i] = o.cell
				t.cells[o.cell].n[o.index] = c
				delete(open, key)
				continue
			}
			open[key] = facetRef{cell: c, index: i}
		}
	}
	for key, f := range open {
		o, ok := outer[key]
		if !ok {
			panic(errors.Errorf("delaunay3: facet %v left open", key))
		}
		t.cells[f.cell].n[f.index] = o.cell
		t.cells[o.cell].n[o.index] = f.cell
	}
	return created
}
