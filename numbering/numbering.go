// Package numbering implements the three global-id sweeps described by
// the conversion's numbering phase: cells (dense, block-major K-J-I),
// nodes (equivalence-class coloring across shared corners, edges and
// surfaces), and faces (per-block canonical enumeration with
// counterpart reuse on shared surfaces).
//
// Rather than the source's partial BFS, every node and face is reduced
// to a canonical representative key purely algebraically, via the
// block package's corner/edge/surface orientation machinery and the
// topology resolver's equivalence classes; two lattice points are
// equivalent exactly when they reduce to the same canonical key. Dense
// ids are then handed out in first-seen order while walking the arena,
// which reproduces the "visited bitset" behaviour the spec describes
// without needing an explicit queue.
package numbering

import (
	"github.com/notargets/gridglue/block"
	"github.com/notargets/gridglue/topology"
)

// NodeKey addresses one lattice point of one block.
type NodeKey struct {
	Block   int
	I, J, K int
}

// CellKey addresses one hex cell of one block by its lower-corner node
// index.
type CellKey struct {
	Block   int
	I, J, K int
}

// FaceAddr addresses one quad face of one block: the axis it is normal
// to, its position along that axis (1..dim(Axis), boundary positions
// included), and the cell-index coordinates (P,Q) of its two in-plane
// axes in canonical (I,J,K) order.
type FaceAddr struct {
	Block int
	Axis  block.Axis
	At    int
	P, Q  int
}

// Numbering holds the dense global ids assigned to every node, cell and
// face of a block arena.
type Numbering struct {
	Blocks   *block.Set
	Resolver *topology.Resolver

	NodeID map[NodeKey]int
	CellID map[CellKey]int
	FaceID map[FaceAddr]int

	NumNodes, NumCells, NumFaces, NumEdges int
}

// Number runs all three sweeps over blocks using the equivalence classes
// already computed by resolver.
func Number(blocks *block.Set, resolver *topology.Resolver) *Numbering {
	n := &Numbering{
		Blocks:   blocks,
		Resolver: resolver,
		NodeID:   map[NodeKey]int{},
		CellID:   map[CellKey]int{},
		FaceID:   map[FaceAddr]int{},
	}
	n.numberCells()
	n.numberNodes()
	n.numberFaces()
	n.numberEdges()
	return n
}

// numberEdges assigns dense, 1-based global ids to every edge
// equivalence class and stamps each member edge's GlobalIndex and
// EquivalenceKey in place. Edges are not part of the output mesh -- no
// downstream package reads these ids -- but spec.md calls for edge-level
// equivalence classes to remain visible for diagnostics, the same way
// §4.4's node/face sweeps are visible via NodeID/FaceID.
func (n *Numbering) numberEdges() {
	next := 1
	classID := map[block.Key]int{}
	for _, id := range n.Blocks.IDs() {
		b := n.Blocks.Get(id)
		for e := 1; e <= 12; e++ {
			edge := b.Edge(e)
			root, _ := n.Resolver.Edges.Find(block.Key{BlockID: id, Local: e})
			gid, ok := classID[root]
			if !ok {
				gid = next
				next++
				classID[root] = gid
			}
			edge.GlobalIndex = gid
			edge.EquivalenceKey = root
		}
	}
	n.NumEdges = next - 1
}

func (n *Numbering) numberCells() {
	next := 1
	for _, id := range n.Blocks.IDs() {
		b := n.Blocks.Get(id)
		for k := 1; k <= b.NK-1; k++ {
			for j := 1; j <= b.NJ-1; j++ {
				for i := 1; i <= b.NI-1; i++ {
					n.CellID[CellKey{id, i, j, k}] = next
					next++
				}
			}
		}
	}
	n.NumCells = next - 1
}

// CellIDAt returns the global id of the cell at (i,j,k) in block id, or
// 0 if out of range.
func (n *Numbering) CellIDAt(id, i, j, k int) int {
	return n.CellID[CellKey{id, i, j, k}]
}

func (n *Numbering) numberNodes() {
	canonID := map[NodeKey]int{}
	next := 1
	for _, id := range n.Blocks.IDs() {
		b := n.Blocks.Get(id)
		for k := 1; k <= b.NK; k++ {
			for j := 1; j <= b.NJ; j++ {
				for i := 1; i <= b.NI; i++ {
					canon := n.canonicalNode(id, i, j, k)
					gid, ok := canonID[canon]
					if !ok {
						gid = next
						next++
						canonID[canon] = gid
					}
					n.NodeID[NodeKey{id, i, j, k}] = gid
				}
			}
		}
	}
	n.NumNodes = next - 1
}

// NodeIDAt returns the global node id at (i,j,k) in block id.
func (n *Numbering) NodeIDAt(id, i, j, k int) int {
	return n.NodeID[NodeKey{id, i, j, k}]
}

// canonicalNode reduces a lattice point to the representative NodeKey
// shared by every lattice point equivalent to it: the same key for a
// whole corner class, the same key (up to reversal) for a whole edge
// class, and the lexicographically smaller of the two sides of a
// shared-surface pairing for surface-interior points.
func (n *Numbering) canonicalNode(id, i, j, k int) NodeKey {
	b := n.Blocks.Get(id)

	switch extremeCount(b, i, j, k) {
	case 3:
		corner := block.CornerIndexAt(b, i, j, k)
		root := n.Resolver.Corners.Find(block.Key{BlockID: id, Local: corner})
		rb := n.Blocks.Get(root.BlockID)
		ri, rj, rk := block.CornerIJK(rb, root.Local)
		return NodeKey{root.BlockID, ri, rj, rk}

	case 2:
		edge, t, ok := block.EdgeAt(b, i, j, k)
		if !ok {
			break
		}
		root, sign := n.Resolver.Edges.Find(block.Key{BlockID: id, Local: edge.Local})
		rootEdge := n.Blocks.Edge(root)
		rt := t
		if sign < 0 {
			rt = rootEdge.NodeCount() + 1 - t
		}
		ri, rj, rk := rootEdge.NodeAt(rt)
		return NodeKey{root.BlockID, ri, rj, rk}

	case 1:
		surf := surfaceAt(b, i, j, k)
		p, s := surf.FromIJK(i, j, k)
		if surf.Neighbour != nil && surf.ContainsInInterface(p, s) {
			np, ns := surf.MapToNeighbour(p, s)
			ni, nj, nk := surf.Neighbour.ToIJK(np, ns)
			self := NodeKey{id, i, j, k}
			other := NodeKey{surf.Neighbour.Block.ID, ni, nj, nk}
			return lexMinNode(self, other)
		}
	}
	return NodeKey{id, i, j, k}
}

func extremeCount(b *block.Block, i, j, k int) int {
	c := 0
	if i == 1 || i == b.NI {
		c++
	}
	if j == 1 || j == b.NJ {
		c++
	}
	if k == 1 || k == b.NK {
		c++
	}
	return c
}

// surfaceAt returns the single surface a point with exactly one extreme
// coordinate lies on.
func surfaceAt(b *block.Block, i, j, k int) *block.Surface {
	switch {
	case i == 1:
		return b.Surface(block.SurfaceForAxis(block.AxisI, false))
	case i == b.NI:
		return b.Surface(block.SurfaceForAxis(block.AxisI, true))
	case j == 1:
		return b.Surface(block.SurfaceForAxis(block.AxisJ, false))
	case j == b.NJ:
		return b.Surface(block.SurfaceForAxis(block.AxisJ, true))
	case k == 1:
		return b.Surface(block.SurfaceForAxis(block.AxisK, false))
	default:
		return b.Surface(block.SurfaceForAxis(block.AxisK, true))
	}
}

func lexMinNode(a, b NodeKey) NodeKey {
	if a.Block != b.Block {
		if a.Block < b.Block {
			return a
		}
		return b
	}
	if a.I != b.I {
		if a.I < b.I {
			return a
		}
		return b
	}
	if a.J != b.J {
		if a.J < b.J {
			return a
		}
		return b
	}
	if a.K <= b.K {
		return a
	}
	return b
}

func (n *Numbering) numberFaces() {
	next := 1
	canon := map[FaceAddr]int{}
	for _, id := range n.Blocks.IDs() {
		b := n.Blocks.Get(id)
		for k := 1; k <= b.NK-1; k++ {
			for j := 1; j <= b.NJ-1; j++ {
				for i := 1; i <= b.NI-1; i++ {
					for _, addr := range cellFaceAddrs(id, i, j, k) {
						c := n.canonicalFace(addr)
						gid, ok := canon[c]
						if !ok {
							gid = next
							next++
							canon[c] = gid
						}
						n.FaceID[addr] = gid
						n.stampSurfaceGlobalIndex(b, addr, gid)
					}
				}
			}
		}
	}
	n.NumFaces = next - 1
}

// cellFaceAddrs returns the six face addresses bounding cell (i,j,k).
func cellFaceAddrs(blockID, i, j, k int) [6]FaceAddr {
	return [6]FaceAddr{
		{blockID, block.AxisI, i, j, k},
		{blockID, block.AxisI, i + 1, j, k},
		{blockID, block.AxisJ, j, i, k},
		{blockID, block.AxisJ, j + 1, i, k},
		{blockID, block.AxisK, k, i, j},
		{blockID, block.AxisK, k + 1, i, j},
	}
}

// stampSurfaceGlobalIndex records a representative face id on the
// block surface addr lies on, the first time that surface is visited,
// for callers that want a face id to report against a whole surface
// rather than against a specific (p,s) position. Interior faces carry
// no surface and are skipped.
func (n *Numbering) stampSurfaceGlobalIndex(b *block.Block, addr FaceAddr, gid int) {
	dim := b.Dim(addr.Axis)
	if addr.At != 1 && addr.At != dim {
		return
	}
	surf := b.Surface(block.SurfaceForAxis(addr.Axis, addr.At == dim))
	if surf.GlobalIndex == 0 {
		surf.GlobalIndex = gid
	}
}

// canonicalFace reduces a face address to the representative shared by
// both sides of a counterpart pairing, or itself for interior and
// unshared-boundary faces.
func (n *Numbering) canonicalFace(addr FaceAddr) FaceAddr {
	b := n.Blocks.Get(addr.Block)
	dim := b.Dim(addr.Axis)
	if addr.At > 1 && addr.At < dim {
		return addr
	}
	atMax := addr.At == dim
	surf := b.Surface(block.SurfaceForAxis(addr.Axis, atMax))
	if surf.Neighbour == nil || !surf.ContainsInInterface(addr.P, addr.Q) {
		return addr
	}
	np, ns := surf.MapToNeighbour(addr.P, addr.Q)
	np2, ns2 := surf.MapToNeighbour(addr.P+1, addr.Q+1)
	lowP, lowS := np, ns
	if np2 < lowP {
		lowP = np2
	}
	if ns2 < lowS {
		lowS = ns2
	}
	nb := surf.Neighbour
	other := FaceAddr{
		Block: nb.Block.ID,
		Axis:  nb.Axis(),
		At:    nb.FixedValue(),
		P:     lowP,
		Q:     lowS,
	}
	return lexMinFace(addr, other)
}

func lexMinFace(a, b FaceAddr) FaceAddr {
	if a.Block != b.Block {
		if a.Block < b.Block {
			return a
		}
		return b
	}
	if a.Axis != b.Axis {
		if a.Axis < b.Axis {
			return a
		}
		return b
	}
	if a.At != b.At {
		if a.At < b.At {
			return a
		}
		return b
	}
	if a.P != b.P {
		if a.P < b.P {
			return a
		}
		return b
	}
	if a.Q <= b.Q {
		return a
	}
	return b
}
