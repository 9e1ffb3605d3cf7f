// Package mesh assembles the final connectivity-complete unstructured
// mesh -- Node, Face and Cell records with left/right cell adjacency
// and boundary markers -- from a resolved, numbered block arena and a
// coordinate supplier, and drives the explicit
// parse/resolve/number/assemble phase state machine for the conversion
// as a whole.
package mesh

import "github.com/notargets/gridglue/nmf"

// CellKind tags a Cell's topology; only Hex is produced by this
// converter, but the type stays open in case a future collaborator adds
// degenerate cells from COLLAPSED/POLE interfaces.
type CellKind int

const (
	Hex CellKind = iota
)

// FaceKind tags a Face's polygon shape; only Quad is produced here.
type FaceKind int

const (
	Quad FaceKind = iota
)

// Node is one globally-numbered mesh vertex.
type Node struct {
	ID      int
	X, Y, Z float64
}

// Face is one globally-numbered quadrilateral face, with its four
// corner node ids listed in right-hand order such that the normal
// points away from RightCell, the cell that always owns the face: the
// cell on the far side of an interior face, the sole cell of a
// one-sided boundary face, or the first-visited block's cell at a
// ONE_TO_ONE interface. LeftCell is 0 for a true boundary face and
// holds the neighbouring cell otherwise.
type Face struct {
	ID        int
	Kind      FaceKind
	Nodes     [4]int
	LeftCell  int
	RightCell int
	Marker    nmf.BCKind
	HasMarker bool
}

// Cell is one globally-numbered hexahedral cell, in the canonical
// 8-node and 6-face ordering described in the mesh assembler design.
type Cell struct {
	ID    int
	Kind  CellKind
	Nodes [8]int
	Faces [6]int
}

// Mesh is the frozen, connectivity-complete output of a conversion.
type Mesh struct {
	Nodes []Node
	Faces []Face
	Cells []Cell
}

// NodeByID returns the node with the given global id, or ok=false.
func (m *Mesh) NodeByID(id int) (Node, bool) {
	if id < 1 || id > len(m.Nodes) {
		return Node{}, false
	}
	return m.Nodes[id-1], true
}
