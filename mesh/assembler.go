package mesh

import (
	"github.com/notargets/gridglue/block"
	"github.com/notargets/gridglue/gridglueerr"
	"github.com/notargets/gridglue/nmf"
	"github.com/notargets/gridglue/numbering"
	"github.com/notargets/gridglue/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

// CoordinateSupplier gives the (x,y,z) position of one lattice point of
// one block. The plot3d package's Grid is the production implementation;
// tests supply small literal grids.
type CoordinateSupplier interface {
	At(blockID, i, j, k int) (x, y, z float64)
}

// Assemble walks a numbered block arena once and produces the frozen
// Node/Face/Cell records of the output mesh.
func Assemble(blocks *block.Set, resolver *topology.Resolver, num *numbering.Numbering, coords CoordinateSupplier) (*Mesh, error) {
	m := &Mesh{
		Nodes: make([]Node, num.NumNodes),
		Faces: make([]Face, num.NumFaces),
		Cells: make([]Cell, num.NumCells),
	}

	assembleNodes(blocks, num, coords, m)
	assembleCells(blocks, num, m)
	if err := assembleFaces(blocks, resolver, num, m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func assembleNodes(blocks *block.Set, num *numbering.Numbering, coords CoordinateSupplier, m *Mesh) {
	for _, id := range blocks.IDs() {
		b := blocks.Get(id)
		for k := 1; k <= b.NK; k++ {
			for j := 1; j <= b.NJ; j++ {
				for i := 1; i <= b.NI; i++ {
					gid := num.NodeIDAt(id, i, j, k)
					x, y, z := coords.At(id, i, j, k)
					m.Nodes[gid-1] = Node{ID: gid, X: x, Y: y, Z: z}
				}
			}
		}
	}
}

// hexLocalNode returns the (i,j,k) offset of the cell's local node 1..8,
// in the canonical ordering fixed by block.CornerIJK: 1=(0,0,0),
// 2=(1,0,0), 3=(1,1,0), 4=(0,1,0), 5=(0,0,1), 6=(1,0,1), 7=(1,1,1),
// 8=(0,1,1), relative to the cell's own lower corner (i,j,k).
var hexLocalNode = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

func assembleCells(blocks *block.Set, num *numbering.Numbering, m *Mesh) {
	for _, id := range blocks.IDs() {
		b := blocks.Get(id)
		for k := 1; k <= b.NK-1; k++ {
			for j := 1; j <= b.NJ-1; j++ {
				for i := 1; i <= b.NI-1; i++ {
					gid := num.CellIDAt(id, i, j, k)
					cell := Cell{ID: gid, Kind: Hex}
					for n, off := range hexLocalNode {
						cell.Nodes[n] = num.NodeIDAt(id, i+off[0], j+off[1], k+off[2])
					}
					addrs := [6]numbering.FaceAddr{
						{Block: id, Axis: block.AxisI, At: i, P: j, Q: k},
						{Block: id, Axis: block.AxisI, At: i + 1, P: j, Q: k},
						{Block: id, Axis: block.AxisJ, At: j, P: i, Q: k},
						{Block: id, Axis: block.AxisJ, At: j + 1, P: i, Q: k},
						{Block: id, Axis: block.AxisK, At: k, P: i, Q: j},
						{Block: id, Axis: block.AxisK, At: k + 1, P: i, Q: j},
					}
					for n, a := range addrs {
						cell.Faces[n] = num.FaceID[a]
					}
					m.Cells[gid-1] = cell
				}
			}
		}
	}
}

// faceNodeIJKs returns the four corner lattice points of the face at
// addr, in right-hand order. The row is picked purely by the face's
// geometric position along addr.Axis -- atMax true for the single
// layer of faces at the block's top index, false for every other
// layer (interior faces and the bottom/MIN boundary share a row) --
// never by which cell ends up recorded as RightCell or LeftCell.
func faceNodeIJKs(addr numbering.FaceAddr, atMax bool) [4][3]int {
	switch addr.Axis {
	case block.AxisI:
		i, j, k := addr.At, addr.P, addr.Q
		if atMax {
			return [4][3]int{{i, j, k}, {i, j + 1, k}, {i, j + 1, k + 1}, {i, j, k + 1}}
		}
		return [4][3]int{{i, j, k}, {i, j, k + 1}, {i, j + 1, k + 1}, {i, j + 1, k}}
	case block.AxisJ:
		j, i, k := addr.At, addr.P, addr.Q
		if atMax {
			return [4][3]int{{i + 1, j, k}, {i, j, k}, {i, j, k + 1}, {i + 1, j, k + 1}}
		}
		return [4][3]int{{i + 1, j, k + 1}, {i, j, k + 1}, {i, j, k}, {i + 1, j, k}}
	default:
		k, i, j := addr.At, addr.P, addr.Q
		if atMax {
			return [4][3]int{{i, j + 1, k}, {i, j, k}, {i + 1, j, k}, {i + 1, j + 1, k}}
		}
		return [4][3]int{{i, j + 1, k}, {i + 1, j + 1, k}, {i + 1, j, k}, {i, j, k}}
	}
}

// adjacentCells returns the (rightCell, leftCell) global ids bounding the
// face at addr: rightCell is the cell at index At along addr.Axis (0 if
// At is past the block's last cell index), leftCell is the cell at
// index At-1 (0 if At is 1).
func adjacentCells(b *block.Block, num *numbering.Numbering, addr numbering.FaceAddr) (right, left int) {
	cellAt := func(at int) int {
		switch addr.Axis {
		case block.AxisI:
			return num.CellIDAt(addr.Block, at, addr.P, addr.Q)
		case block.AxisJ:
			return num.CellIDAt(addr.Block, addr.P, at, addr.Q)
		default:
			return num.CellIDAt(addr.Block, addr.P, addr.Q, at)
		}
	}
	if addr.At <= b.Dim(addr.Axis)-1 {
		right = cellAt(addr.At)
	}
	if addr.At >= 2 {
		left = cellAt(addr.At - 1)
	}
	return
}

func assembleFaces(blocks *block.Set, resolver *topology.Resolver, num *numbering.Numbering, m *Mesh) error {
	seen := make([]bool, num.NumFaces+1)
	for _, id := range blocks.IDs() {
		b := blocks.Get(id)
		for k := 1; k <= b.NK-1; k++ {
			for j := 1; j <= b.NJ-1; j++ {
				for i := 1; i <= b.NI-1; i++ {
					for _, addr := range [6]numbering.FaceAddr{
						{Block: id, Axis: block.AxisI, At: i, P: j, Q: k},
						{Block: id, Axis: block.AxisI, At: i + 1, P: j, Q: k},
						{Block: id, Axis: block.AxisJ, At: j, P: i, Q: k},
						{Block: id, Axis: block.AxisJ, At: j + 1, P: i, Q: k},
						{Block: id, Axis: block.AxisK, At: k, P: i, Q: j},
						{Block: id, Axis: block.AxisK, At: k + 1, P: i, Q: j},
					} {
						gid := num.FaceID[addr]
						if gid == 0 || seen[gid] {
							continue
						}
						seen[gid] = true
						f, err := buildFace(blocks, resolver, num, gid, addr)
						if err != nil {
							return err
						}
						m.Faces[gid-1] = f
					}
				}
			}
		}
	}
	return nil
}

func buildFace(blocks *block.Set, resolver *topology.Resolver, num *numbering.Numbering, gid int, addr numbering.FaceAddr) (Face, error) {
	b := blocks.Get(addr.Block)
	dim := b.Dim(addr.Axis)
	atMax := addr.At == dim
	right, left := adjacentCells(b, num, addr)

	f := Face{ID: gid, Kind: Quad, RightCell: right, LeftCell: left}

	if right == 0 || left == 0 {
		// one-sided face: the single local cell owns it and always
		// becomes RightCell, MIN or MAX alike -- fill in LeftCell from
		// the interface counterpart if this surface is glued, else mark
		// it as a true boundary.
		owning := right
		if owning == 0 {
			owning = left
		}
		f.RightCell, f.LeftCell = owning, 0

		if addr.At == 1 || atMax {
			surf := b.Surface(block.SurfaceForAxis(addr.Axis, atMax))
			if surf.Neighbour != nil && surf.ContainsInInterface(addr.P, addr.Q) {
				np, ns := surf.MapToNeighbour(addr.P, addr.Q)
				nb := surf.Neighbour
				nbRight, nbLeft := adjacentCells(nb.Block, num, numbering.FaceAddr{Block: nb.Block.ID, Axis: nb.Axis(), At: nb.FixedValue(), P: np, Q: ns})
				nbOwning := nbRight
				if nbOwning == 0 {
					nbOwning = nbLeft
				}
				f.LeftCell = nbOwning
				if f.LeftCell == f.RightCell {
					return Face{}, gridglueerr.Newf(gridglueerr.NonManifold, "assembling face %d: interface counterpart resolved to the same cell on both sides", gid)
				}
			} else {
				marker, ok := findBoundaryMarker(resolver, block.Key{BlockID: addr.Block, Local: surf.Local}, addr.P, addr.Q)
				if ok {
					f.Marker = marker
					f.HasMarker = true
				}
			}
		}
	}

	for n, p := range faceNodeIJKs(addr, atMax) {
		f.Nodes[n] = num.NodeIDAt(addr.Block, p[0], p[1], p[2])
	}
	return f, nil
}

func findBoundaryMarker(resolver *topology.Resolver, key block.Key, p, s int) (nmf.BCKind, bool) {
	for _, patch := range resolver.Boundaries[key] {
		if rangeContains(patch.Range, p, s) {
			return patch.BC, true
		}
	}
	return 0, false
}

func rangeContains(r nmf.SideRange, p, s int) bool {
	lo1, hi1 := minmax(r.S1, r.E1)
	lo2, hi2 := minmax(r.S2, r.E2)
	return p >= lo1 && p <= hi1 && s >= lo2 && s <= hi2
}

func minmax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

// Validate checks the universally-quantified invariants a correctly
// assembled mesh must satisfy. It is the last step of Assemble, so any
// violation it reports is an internal assembler defect rather than a
// problem with the input NMF/PLOT3D data -- those are caught earlier,
// at parse and resolve time, with their own error kinds.
func (m *Mesh) Validate() error {
	for _, f := range m.Faces {
		if f.LeftCell == f.RightCell {
			return gridglueerr.Newf(gridglueerr.NonManifold,
				"face %d: leftCell and rightCell are both %d", f.ID, f.LeftCell)
		}
		if f.LeftCell == 0 && f.RightCell == 0 {
			return gridglueerr.Newf(gridglueerr.NonManifold,
				"face %d: both leftCell and rightCell are 0", f.ID)
		}
		if err := m.validateFaceNormal(f); err != nil {
			return err
		}
	}

	for _, n := range m.Nodes {
		if n.ID < 1 || n.ID > len(m.Nodes) {
			return gridglueerr.Newf(gridglueerr.IndexCollision,
				"node table entry has out-of-range id %d (table length %d)", n.ID, len(m.Nodes))
		}
	}

	faceOwnsCell := func(fid, cid int) bool {
		f := m.Faces[fid-1]
		return f.LeftCell == cid || f.RightCell == cid
	}
	for _, c := range m.Cells {
		for _, nid := range c.Nodes {
			if nid < 1 || nid > len(m.Nodes) {
				return gridglueerr.Newf(gridglueerr.IndexCollision, "cell %d: references undefined node %d", c.ID, nid)
			}
		}
		for _, fid := range c.Faces {
			if fid < 1 || fid > len(m.Faces) {
				return gridglueerr.Newf(gridglueerr.IndexCollision, "cell %d: references undefined face %d", c.ID, fid)
			}
			if !faceOwnsCell(fid, c.ID) {
				return gridglueerr.Newf(gridglueerr.NonManifold,
					"cell %d: face %d does not list it as leftCell or rightCell", c.ID, fid)
			}
		}
	}
	return nil
}

// nodeVec returns a node's position as an r3.Vec for use with the
// package's quad/triangle geometry primitives.
func (m *Mesh) nodeVec(nodeID int) r3.Vec {
	n := m.Nodes[nodeID-1]
	return r3.Vec{X: n.X, Y: n.Y, Z: n.Z}
}

// cellCentroid averages a hex cell's eight corner positions.
func (m *Mesh) cellCentroid(cellID int) r3.Vec {
	c := m.Cells[cellID-1]
	var sum r3.Vec
	for _, nid := range c.Nodes {
		sum = r3.Add(sum, m.nodeVec(nid))
	}
	return r3.Scale(1.0/8.0, sum)
}

// degenerateAreaTolerance bounds how small a face's area can be before
// Validate treats it as a collapsed quad rather than a real one.
const degenerateAreaTolerance = 1e-12

// validateFaceNormal checks the winding invariant: the normal formed by
// a face's node order, via QuadNormal, must point away from RightCell,
// which always holds the owning cell -- whether the face is interior,
// a one-sided boundary, or patched in from a ONE_TO_ONE interface. It
// also rejects a collapsed (zero-area) face, which QuadNormal alone
// can't distinguish from a correctly-wound one.
func (m *Mesh) validateFaceNormal(f Face) error {
	n0 := m.nodeVec(f.Nodes[0])
	n1 := m.nodeVec(f.Nodes[1])
	n2 := m.nodeVec(f.Nodes[2])
	n3 := m.nodeVec(f.Nodes[3])
	normal := QuadNormal(n0, n1, n2, n3)
	centroid := QuadCentroid(n0, n1, n2, n3)

	if QuadArea(n0, n1, n2, n3) < degenerateAreaTolerance {
		return gridglueerr.Newf(gridglueerr.NonManifold, "face %d: collapsed to zero area", f.ID)
	}

	if !PointsOutward(centroid, m.cellCentroid(f.RightCell), normal) {
		return gridglueerr.Newf(gridglueerr.NonManifold,
			"face %d: normal does not point away from its owning cell %d", f.ID, f.RightCell)
	}
	return nil
}
