// Package plot3d reads the ASCII multi-block PLOT3D grid format and
// exposes it as the mesh package's CoordinateSupplier, so the mesh
// assembler can place the node positions the NMF topology describes
// without knowing anything about PLOT3D's own block and array layout.
package plot3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/notargets/gridglue/gridglueerr"
	"github.com/notargets/gridglue/nmf"
)

// Grid is a parsed multi-block ASCII PLOT3D file: the (x,y,z) coordinate
// arrays of every block, indexed the same way the block package indexes
// lattice points.
type Grid struct {
	blocks map[int]*blockCoords
}

type blockCoords struct {
	ni, nj, nk int
	x, y, z    []float64
}

func (b *blockCoords) index(i, j, k int) int {
	return (i - 1) + (j-1)*b.ni + (k-1)*b.ni*b.nj
}

// At returns the position of lattice point (i,j,k) of block id. It
// implements mesh.CoordinateSupplier.
func (g *Grid) At(id, i, j, k int) (x, y, z float64) {
	b := g.blocks[id]
	idx := b.index(i, j, k)
	return b.x[idx], b.y[idx], b.z[idx]
}

// ReadFile opens path and parses it as an ASCII multi-block PLOT3D grid,
// checking its block count and dimensions against dims.
func ReadFile(path string, dims []nmf.BlockDim) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, dims)
}

// Read parses r as an ASCII multi-block PLOT3D grid: a block count, one
// "NI NJ NK" header per block, then each block's X array in full
// (k,j,i)-major order, followed by its Y array and its Z array.
func Read(r io.Reader, dims []nmf.BlockDim) (*Grid, error) {
	s := newTokenScanner(r)

	nblocks, err := s.int()
	if err != nil {
		return nil, fmt.Errorf("reading PLOT3D block count: %w", err)
	}
	if nblocks != len(dims) {
		return nil, gridglueerr.Newf(gridglueerr.DimensionInconsistent,
			"PLOT3D declares %d blocks, NMF declares %d", nblocks, len(dims))
	}

	headers := make([]blockCoords, nblocks)
	for i := range headers {
		ni, err := s.int()
		if err != nil {
			return nil, fmt.Errorf("reading PLOT3D block %d header: %w", i+1, err)
		}
		nj, err := s.int()
		if err != nil {
			return nil, fmt.Errorf("reading PLOT3D block %d header: %w", i+1, err)
		}
		nk, err := s.int()
		if err != nil {
			return nil, fmt.Errorf("reading PLOT3D block %d header: %w", i+1, err)
		}
		headers[i] = blockCoords{ni: ni, nj: nj, nk: nk}

		d := dims[i]
		if ni != d.NI || nj != d.NJ || nk != d.NK {
			return nil, gridglueerr.Newf(gridglueerr.DimensionInconsistent,
				"PLOT3D block %d is %dx%dx%d, NMF block %d declares %dx%dx%d",
				i+1, ni, nj, nk, d.ID, d.NI, d.NJ, d.NK)
		}
	}

	g := &Grid{blocks: make(map[int]*blockCoords, nblocks)}
	for i, h := range headers {
		n := h.ni * h.nj * h.nk
		h.x = make([]float64, n)
		h.y = make([]float64, n)
		h.z = make([]float64, n)
		if err := s.floats(h.x); err != nil {
			return nil, fmt.Errorf("reading PLOT3D block %d X array: %w", i+1, err)
		}
		if err := s.floats(h.y); err != nil {
			return nil, fmt.Errorf("reading PLOT3D block %d Y array: %w", i+1, err)
		}
		if err := s.floats(h.z); err != nil {
			return nil, fmt.Errorf("reading PLOT3D block %d Z array: %w", i+1, err)
		}
		block := h
		g.blocks[dims[i].ID] = &block
	}
	return g, nil
}

// tokenScanner pulls whitespace-delimited numeric tokens across line
// boundaries, the way ASCII PLOT3D files are laid out in practice (a
// block's coordinate array is not required to be one value per line).
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenScanner{sc: sc}
}

func (t *tokenScanner) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return t.sc.Text(), nil
}

func (t *tokenScanner) int() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func (t *tokenScanner) floats(dst []float64) error {
	for i := range dst {
		tok, err := t.next()
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("parsing %q as float: %w", tok, err)
		}
		dst[i] = v
	}
	return nil
}
