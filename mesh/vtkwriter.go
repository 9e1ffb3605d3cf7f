package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/notargets/gridglue/gridglueerr"
)

// vtkHexahedron is the VTK legacy cell-type code for an 8-node hex.
const vtkHexahedron = 12

// WriteVTKFile emits m to path as a legacy ASCII VTK UnstructuredGrid,
// the CLI's vendor-neutral stand-in for the downstream mesh writer the
// conversion otherwise treats as an external collaborator.
func (m *Mesh) WriteVTKFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return gridglueerr.Wrap(gridglueerr.IOError, path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := m.WriteVTK(w); err != nil {
		return gridglueerr.Wrap(gridglueerr.IOError, path, err)
	}
	if err := w.Flush(); err != nil {
		return gridglueerr.Wrap(gridglueerr.IOError, path, err)
	}
	return nil
}

// WriteVTK emits m to w as a legacy ASCII VTK UnstructuredGrid: a
// POINTS section, then CELLS/CELL_TYPES describing every hex by its
// 8 global node ids in VTK's own corner ordering.
func (m *Mesh) WriteVTK(w io.Writer) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
		defer bw.Flush()
	}

	fmt.Fprintln(bw, "# vtk DataFile Version 3.0")
	fmt.Fprintln(bw, "gridglue mesh")
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET UNSTRUCTURED_GRID")

	fmt.Fprintf(bw, "POINTS %d double\n", len(m.Nodes))
	for _, n := range m.Nodes {
		fmt.Fprintf(bw, "%.10g %.10g %.10g\n", n.X, n.Y, n.Z)
	}

	fmt.Fprintf(bw, "CELLS %d %d\n", len(m.Cells), 9*len(m.Cells))
	for _, c := range m.Cells {
		// VTK's hex corner order (0=(0,0,0)...6=(1,1,1),7=(0,1,1)) matches
		// this package's own 1..8 canonical ordering one-for-one.
		fmt.Fprintf(bw, "8 %d %d %d %d %d %d %d %d\n",
			c.Nodes[0]-1, c.Nodes[1]-1, c.Nodes[2]-1, c.Nodes[3]-1,
			c.Nodes[4]-1, c.Nodes[5]-1, c.Nodes[6]-1, c.Nodes[7]-1)
	}

	fmt.Fprintf(bw, "CELL_TYPES %d\n", len(m.Cells))
	for range m.Cells {
		fmt.Fprintln(bw, vtkHexahedron)
	}
	return nil
}
