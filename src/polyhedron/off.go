package polyhedron

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"domainmesh/src/geometry"

	"github.com/pkg/errors"
)

type offScanner struct {
	s    *bufio.Scanner
	line int
}

// next returns the fields of the next line holding data, skipping blank
// lines and # comments.
func (o *offScanner) next() ([]string, error) {
	for o.s.Scan() {
		o.line++
		text := o.s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := o.s.Err(); err != nil {
		return nil, errors.Wrap(err, "read OFF")
	}
	return nil, errors.Wrapf(ErrMalformedOFF, "line %d: unexpected end of data", o.line)
}

func (o *offScanner) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedOFF, "line %d: %s", o.line, fmt.Sprintf(format, args...))
}

func (o *offScanner) ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, o.errorf("bad integer %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// ReadOFF parses an Object File Format surface. Vertex colours and facet
// colours after the indices are ignored.
func ReadOFF(r io.Reader) (*Polyhedron, error) {
	o := &offScanner{s: bufio.NewScanner(r)}
	fields, err := o.next()
	if err != nil {
		return nil, err
	}
	if fields[0] != "OFF" {
		return nil, o.errorf("missing OFF header, got %q", fields[0])
	}
	counts := fields[1:]
	if len(counts) == 0 {
		if counts, err = o.next(); err != nil {
			return nil, err
		}
	}
	if len(counts) < 2 {
		return nil, o.errorf("expected vertex and facet counts")
	}
	n, err := o.ints(counts[:2])
	if err != nil {
		return nil, err
	}
	nv, nf := n[0], n[1]
	if nv < 0 || nf < 0 {
		return nil, o.errorf("negative counts %d %d", nv, nf)
	}

	p := &Polyhedron{
		Vertices: make([]geometry.Point3, 0, nv),
		Facets:   make([][]int, 0, nf),
	}
	for i := 0; i < nv; i++ {
		fields, err := o.next()
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, o.errorf("vertex %d has %d coordinates", i, len(fields))
		}
		var c [3]float64
		for k := range c {
			if c[k], err = strconv.ParseFloat(fields[k], 64); err != nil {
				return nil, o.errorf("bad coordinate %q", fields[k])
			}
		}
		p.Vertices = append(p.Vertices, geometry.NewPoint3(c[0], c[1], c[2]))
	}
	for i := 0; i < nf; i++ {
		fields, err := o.next()
		if err != nil {
			return nil, err
		}
		head, err := o.ints(fields[:1])
		if err != nil {
			return nil, err
		}
		k := head[0]
		if k < 3 || len(fields) < k+1 {
			return nil, o.errorf("facet %d declares %d corners, has %d", i, k, len(fields)-1)
		}
		idx, err := o.ints(fields[1 : k+1])
		if err != nil {
			return nil, err
		}
		for _, v := range idx {
			if v < 0 || v >= nv {
				return nil, o.errorf("facet %d references vertex %d of %d", i, v, nv)
			}
		}
		p.Facets = append(p.Facets, idx)
	}
	return p, nil
}

// LoadOFF reads the OFF file at path.
func LoadOFF(path string) (*Polyhedron, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open polyhedron")
	}
	defer f.Close()

	p, err := ReadOFF(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return p, nil
}

// WriteOFF writes p in Object File Format.
func (p *Polyhedron) WriteOFF(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OFF\n%d %d %d\n", len(p.Vertices), len(p.Facets), p.NumberOfEdges())
	for _, v := range p.Vertices {
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	for _, f := range p.Facets {
		bw.WriteString(strconv.Itoa(len(f)))
		for _, v := range f {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write OFF")
}

// SaveOFF writes p to path.
func (p *Polyhedron) SaveOFF(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create polyhedron file")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrap(cerr, "close polyhedron file")
		}
	}()
	return p.WriteOFF(f)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
