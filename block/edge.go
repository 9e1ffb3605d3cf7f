package block

// Edge is one of a block's twelve frame edges, indexed 1..12 per the
// canonical NMF convention. Each edge runs along exactly one axis with
// the other two held at one of the block's extremes, and is bounded by
// exactly two of the block's six surfaces.
type Edge struct {
	Block *Block
	Local int

	Surfaces [2]*Surface

	// GlobalIndex is assigned by the numbering package for reporting
	// purposes (edges themselves are not part of the output mesh, but
	// spec.md calls for edge-level equivalence classes to be visible
	// for diagnostics). 0 means unassigned.
	GlobalIndex int

	// EquivalenceKey is the union-find root this edge belongs to
	// after the connectivity resolver's Step C, expressed as the
	// canonical (blockID, localID) representative.
	EquivalenceKey Key
}

// Key is a stable cross-reference into the block arena: a block id
// paired with a local edge, surface or corner index. Union-find
// classes and all resolver/numbering bookkeeping are keyed on Key
// rather than on pointers, so they remain valid across copies.
type Key struct {
	BlockID int
	Local   int
}

// edgeGeom fixes, for each 1-based edge index, the axis the edge runs
// along and the fixed coordinates of the other two axes (1 for min,
// -1 meaning "block's max dimension along that axis", encoded as a
// bool pair below).
type edgeGeom struct {
	VaryAxis    Axis
	FixedAxisA  Axis
	FixedAAtMax bool
	FixedAxisB  Axis
	FixedBAtMax bool
}

var edgeGeoms = map[int]edgeGeom{
	1:  {VaryAxis: AxisI, FixedAxisA: AxisJ, FixedAAtMax: false, FixedAxisB: AxisK, FixedBAtMax: false},
	2:  {VaryAxis: AxisI, FixedAxisA: AxisJ, FixedAAtMax: true, FixedAxisB: AxisK, FixedBAtMax: false},
	3:  {VaryAxis: AxisI, FixedAxisA: AxisJ, FixedAAtMax: true, FixedAxisB: AxisK, FixedBAtMax: true},
	4:  {VaryAxis: AxisI, FixedAxisA: AxisJ, FixedAAtMax: false, FixedAxisB: AxisK, FixedBAtMax: true},
	5:  {VaryAxis: AxisJ, FixedAxisA: AxisI, FixedAAtMax: false, FixedAxisB: AxisK, FixedBAtMax: false},
	6:  {VaryAxis: AxisJ, FixedAxisA: AxisI, FixedAAtMax: true, FixedAxisB: AxisK, FixedBAtMax: false},
	7:  {VaryAxis: AxisJ, FixedAxisA: AxisI, FixedAAtMax: true, FixedAxisB: AxisK, FixedBAtMax: true},
	8:  {VaryAxis: AxisJ, FixedAxisA: AxisI, FixedAAtMax: false, FixedAxisB: AxisK, FixedBAtMax: true},
	9:  {VaryAxis: AxisK, FixedAxisA: AxisI, FixedAAtMax: false, FixedAxisB: AxisJ, FixedBAtMax: false},
	10: {VaryAxis: AxisK, FixedAxisA: AxisI, FixedAAtMax: true, FixedAxisB: AxisJ, FixedBAtMax: false},
	11: {VaryAxis: AxisK, FixedAxisA: AxisI, FixedAAtMax: true, FixedAxisB: AxisJ, FixedBAtMax: true},
	12: {VaryAxis: AxisK, FixedAxisA: AxisI, FixedAAtMax: false, FixedAxisB: AxisJ, FixedBAtMax: true},
}

// NodeCount returns how many nodes lie on this edge.
func (e *Edge) NodeCount() int {
	g := edgeGeoms[e.Local]
	return e.Block.Dim(g.VaryAxis)
}

// NodeAt returns the (i,j,k) of the t-th node (1-based) along the edge.
func (e *Edge) NodeAt(t int) (i, j, k int) {
	g := edgeGeoms[e.Local]
	coord := [3]int{}
	coord[g.FixedAxisA] = fixedCoord(e.Block, g.FixedAxisA, g.FixedAAtMax)
	coord[g.FixedAxisB] = fixedCoord(e.Block, g.FixedAxisB, g.FixedBAtMax)
	coord[g.VaryAxis] = t
	return coord[AxisI], coord[AxisJ], coord[AxisK]
}

func fixedCoord(b *Block, a Axis, atMax bool) int {
	if atMax {
		return b.Dim(a)
	}
	return 1
}

// EdgeAt returns the edge and 1-based position t along it that the given
// full-block point lies on, for a point with exactly two of its three
// coordinates at a block extreme (the third, varying coordinate is t).
// Corners (all three extreme) are ambiguous between three edges and are
// not valid input; callers must check for the corner case first.
func EdgeAt(b *Block, i, j, k int) (edge *Edge, t int, ok bool) {
	coord := [3]int{i, j, k}
	for e := 1; e <= 12; e++ {
		g := edgeGeoms[e]
		if coord[g.FixedAxisA] == fixedCoord(b, g.FixedAxisA, g.FixedAAtMax) &&
			coord[g.FixedAxisB] == fixedCoord(b, g.FixedAxisB, g.FixedBAtMax) {
			return b.Edge(e), coord[g.VaryAxis], true
		}
	}
	return nil, 0, false
}

// EndpointCorners returns the two corner indices (1..8) at the start
// (t=1) and end (t=NodeCount) of the edge.
func (e *Edge) EndpointCorners() (start, end int) {
	i1, j1, k1 := e.NodeAt(1)
	i2, j2, k2 := e.NodeAt(e.NodeCount())
	return CornerIndexAt(e.Block, i1, j1, k1), CornerIndexAt(e.Block, i2, j2, k2)
}

// CornerIJK gives the canonical 1..8 hex corner numbering, matching
// the cell-local node ordering used by the mesh assembler: corner 1 is
// (1,1,1), 2 is (NI,1,1), 3 is (NI,NJ,1), 4 is (1,NJ,1), 5 is (1,1,NK),
// 6 is (NI,1,NK), 7 is (NI,NJ,NK), 8 is (1,NJ,NK).
func CornerIJK(b *Block, corner int) (i, j, k int) {
	switch corner {
	case 1:
		return 1, 1, 1
	case 2:
		return b.NI, 1, 1
	case 3:
		return b.NI, b.NJ, 1
	case 4:
		return 1, b.NJ, 1
	case 5:
		return 1, 1, b.NK
	case 6:
		return b.NI, 1, b.NK
	case 7:
		return b.NI, b.NJ, b.NK
	case 8:
		return 1, b.NJ, b.NK
	default:
		panic("corner index must be in 1..8")
	}
}

// CornerIndexAt returns the 1..8 corner index of the given (i,j,k),
// which must be one of the block's eight extreme points.
func CornerIndexAt(b *Block, i, j, k int) int {
	for c := 1; c <= 8; c++ {
		ci, cj, ck := CornerIJK(b, c)
		if ci == i && cj == j && ck == k {
			return c
		}
	}
	panic("point is not a block corner")
}
