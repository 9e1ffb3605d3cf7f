package mesh

import "github.com/james-bowman/sparse"

// CellAdjacencyMatrix builds the cell-to-cell adjacency graph implied by
// the mesh's faces: two cells are adjacent iff they are the LeftCell and
// RightCell of some internal face. The result is symmetric with a zero
// diagonal, stored as a DOK matrix sized NumCells x NumCells, cheap to
// build here and convert to CSR for a downstream partitioner.
func (m *Mesh) CellAdjacencyMatrix() *sparse.DOK {
	n := len(m.Cells)
	adj := sparse.NewDOK(n, n)
	for _, f := range m.Faces {
		if f.LeftCell == 0 || f.RightCell == 0 {
			continue
		}
		l, r := f.LeftCell-1, f.RightCell-1
		adj.Set(l, r, 1)
		adj.Set(r, l, 1)
	}
	return adj
}
