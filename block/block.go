// Package block implements the per-block grid model: nodes, hex cells,
// the six canonically-indexed surfaces and twelve canonically-indexed
// edges of a structured block, and the fixed surface<->edge wiring
// table from which edge and surface back-pointers are derived.
//
// Blocks live in a contiguous arena (Set) keyed by block id; every
// cross-reference used elsewhere (the topology resolver, the numbering
// sweeps) is a stable (blockID, localID) pair rather than an owning
// pointer, per the arena design in the originating specification.
package block

import "fmt"

// Axis identifies one of a block's three index directions.
type Axis int

const (
	AxisI Axis = iota
	AxisJ
	AxisK
)

// Block is one logically rectilinear hexahedral block: its dimensions
// and its six Surfaces/twelve Edges, wired together at construction
// time per the canonical NMF convention.
type Block struct {
	ID         int
	NI, NJ, NK int

	Edges    [12]Edge
	Surfaces [6]Surface
}

// NewBlock allocates a Block with the given 1-based id and dimensions
// and wires its Surfaces and Edges together. Dimensions must already
// be validated (>=2); that is the parser's job.
func NewBlock(id, ni, nj, nk int) *Block {
	b := &Block{ID: id, NI: ni, NJ: nj, NK: nk}

	for i := 0; i < 12; i++ {
		b.Edges[i] = Edge{Block: b, Local: i + 1}
	}
	for i := 0; i < 6; i++ {
		b.Surfaces[i] = Surface{Block: b, Local: i + 1}
	}

	for s := 1; s <= 6; s++ {
		surf := b.Surface(s)
		for slot, edgeLocal := range surfaceEdges[s] {
			surf.Edges[slot] = b.Edge(edgeLocal)
		}
	}
	for e := 1; e <= 12; e++ {
		edge := b.Edge(e)
		dep := edgeSurfaces[e]
		edge.Surfaces[0] = b.Surface(dep[0])
		edge.Surfaces[1] = b.Surface(dep[1])
	}

	return b
}

// Edge returns the edge at the given 1-based index; -1 means the last
// edge (12), -2 the second-to-last, and so on, per the spec's negative
// 1-based indexing convention.
func (b *Block) Edge(n int) *Edge {
	idx := resolveIndex(n, 12)
	return &b.Edges[idx]
}

// Surface returns the surface at the given 1-based index, with the
// same negative-indexing convention as Edge.
func (b *Block) Surface(n int) *Surface {
	idx := resolveIndex(n, 6)
	return &b.Surfaces[idx]
}

func resolveIndex(n, count int) int {
	if n >= 1 && n <= count {
		return n - 1
	}
	if n <= -1 && n >= -count {
		return count + n
	}
	panic(fmt.Sprintf("%d is not a valid 1-based index into %d entries", n, count))
}

// NodeCount returns the total number of nodes in the block.
func (b *Block) NodeCount() int { return b.NI * b.NJ * b.NK }

// CellCount returns the total number of hex cells in the block.
func (b *Block) CellCount() int { return (b.NI - 1) * (b.NJ - 1) * (b.NK - 1) }

// FaceCount returns the total number of quad faces (internal and
// boundary) owned by the block, before any shared-interface dedup. An
// axis-normal face exists at every node position along that axis (its
// two boundary positions included), each spanning a (dim-1)x(dim-1)
// grid of quads in the other two axes.
func (b *Block) FaceCount() int {
	return b.NI*(b.NJ-1)*(b.NK-1) + b.NJ*(b.NI-1)*(b.NK-1) + b.NK*(b.NI-1)*(b.NJ-1)
}

// Dim returns the node-count dimension along the given axis.
func (b *Block) Dim(a Axis) int {
	switch a {
	case AxisI:
		return b.NI
	case AxisJ:
		return b.NJ
	default:
		return b.NK
	}
}

// surfaceEdges gives, for each 1-based surface index, the four bounding
// edges in the canonical order fixed by the NMF specification.
var surfaceEdges = map[int][4]int{
	1: {5, 9, 8, 12},
	2: {6, 11, 7, 10},
	3: {1, 10, 4, 9},
	4: {2, 12, 3, 11},
	5: {1, 5, 2, 6},
	6: {3, 8, 4, 7},
}

// edgeSurfaces is the inverse of surfaceEdges: for each 1-based edge
// index, the two surfaces it bounds.
var edgeSurfaces = map[int][2]int{
	1:  {3, 5},
	2:  {5, 4},
	3:  {4, 6},
	4:  {6, 3},
	5:  {1, 5},
	6:  {5, 2},
	7:  {2, 6},
	8:  {6, 1},
	9:  {1, 3},
	10: {3, 2},
	11: {2, 4},
	12: {4, 1},
}
