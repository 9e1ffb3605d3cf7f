// Package topology implements the connectivity resolver: pairing the two
// surfaces of each ONE_TO_ONE interface, attaching the affine orientation
// map between them, and inducing edge and vertex equivalence classes
// across the whole block arena so that the numbering package can assign
// dense global ids with shared geometry deduplicated.
package topology

import (
	"fmt"

	"github.com/notargets/gridglue/block"
	"github.com/notargets/gridglue/gridglueerr"
	"github.com/notargets/gridglue/nmf"
)

// BoundaryPatch is one SingleSide NMF entry resolved against the block
// arena: a boundary-condition kind applying to a rectangle of one of a
// block's surfaces. Interior surfaces (paired by a ONE_TO_ONE entry)
// never appear here.
type BoundaryPatch struct {
	BC    nmf.BCKind
	Range nmf.SideRange
}

// Resolver holds the result of running Steps A-D of the connectivity
// resolver over a parsed Model against a block arena: every ONE_TO_ONE
// surface pair has its Orientation attached, every pair of equivalent
// edges and corners has been unioned, and every boundary-condition
// entry has been filed under the surface it applies to.
type Resolver struct {
	Blocks *block.Set

	// Corners is the plain equivalence classes of block corners (vertices).
	Corners *Set
	// Edges is the signed equivalence classes of block edges, tracking
	// relative traversal direction.
	Edges *SignedSet

	Boundaries map[block.Key][]BoundaryPatch
}

// Resolve runs the connectivity resolver over m against blocks, pairing
// every ONE_TO_ONE interface and inducing the edge/vertex equivalence
// classes the numbering package needs. It returns the first error
// encountered: DuplicateInterface if a surface is claimed by more than
// one ONE_TO_ONE entry, CounterpartNotFound if an entry names a block or
// face that does not exist or whose paired edges cannot be matched, or
// OrientationInconsistent if two ONE_TO_ONE declarations contradict each
// other's implied geometry.
func Resolve(blocks *block.Set, m *nmf.Model) (*Resolver, error) {
	r := &Resolver{
		Blocks:     blocks,
		Corners:    NewSet(),
		Edges:      NewSignedSet(),
		Boundaries: map[block.Key][]BoundaryPatch{},
	}
	for _, e := range m.Entries {
		if e.Kind == nmf.SingleSideKind {
			r.addBoundary(e)
			continue
		}
		if err := r.pairInterface(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Resolver) addBoundary(e nmf.Entry) {
	key := block.Key{BlockID: e.Side1.Block, Local: e.Side1.Face}
	r.Boundaries[key] = append(r.Boundaries[key], BoundaryPatch{BC: e.BC, Range: e.Side1})
}

// pairInterface implements Steps A and B: it pairs the two surfaces
// named by a DoubleSide entry, rejects a surface already claimed by an
// earlier ONE_TO_ONE entry, and attaches the Orientation both sides will
// use to map lattice points to their counterpart. Steps C and D (edge
// and vertex equivalence induction) run only when the interface spans
// the whole of both surfaces; sub-rectangle (patched) interfaces are
// joined at the surface level but left out of edge/vertex induction, per
// the open degeneracy-handling question.
func (r *Resolver) pairInterface(e nmf.Entry) error {
	context := fmt.Sprintf("ONE_TO_ONE block %d face %d <-> block %d face %d",
		e.Side1.Block, e.Side1.Face, e.Side2.Block, e.Side2.Face)

	a := r.Blocks.Surface(block.Key{BlockID: e.Side1.Block, Local: e.Side1.Face})
	b := r.Blocks.Surface(block.Key{BlockID: e.Side2.Block, Local: e.Side2.Face})
	if a == nil || b == nil {
		return gridglueerr.New(gridglueerr.CounterpartNotFound, context)
	}
	if a.Neighbour != nil || b.Neighbour != nil {
		return gridglueerr.New(gridglueerr.DuplicateInterface, context)
	}

	orientation := &block.Orientation{
		Side1: block.Range{S1: e.Side1.S1, E1: e.Side1.E1, S2: e.Side1.S2, E2: e.Side1.E2},
		Side2: block.Range{S1: e.Side2.S1, E1: e.Side2.E1, S2: e.Side2.S2, E2: e.Side2.E2},
		Swap:  e.Swap,
	}
	a.Neighbour, a.Orientation, a.IsSide1 = b, orientation, true
	b.Neighbour, b.Orientation, b.IsSide1 = a, orientation, false

	if !orientation.Side1CoversSurface(a) || !orientation.Side2CoversSurface(b) {
		return nil
	}

	if err := r.induceEdges(a, b, orientation, context); err != nil {
		return err
	}
	return r.induceCorners(a, b, orientation, context)
}

// induceEdges implements Step C: each of a's four bounding edges has its
// two endpoints mapped through the orientation onto b's lattice; because
// the interface spans the whole surface, the mapped endpoints always
// land on one of b's own bounding edges, identified by its corners. The
// two edges are unioned with sign +1 if their endpoint order agrees,
// -1 if reversed.
func (r *Resolver) induceEdges(a, b *block.Surface, o *block.Orientation, context string) error {
	for _, edge := range a.Edges {
		i1, j1, k1 := edge.NodeAt(1)
		i2, j2, k2 := edge.NodeAt(edge.NodeCount())
		p1, s1 := a.FromIJK(i1, j1, k1)
		p2, s2 := a.FromIJK(i2, j2, k2)

		q1p, q1s := o.MapFrom1(p1, s1)
		q2p, q2s := o.MapFrom1(p2, s2)
		bi1, bj1, bk1 := b.ToIJK(q1p, q1s)
		bi2, bj2, bk2 := b.ToIJK(q2p, q2s)
		c1 := block.CornerIndexAt(b.Block, bi1, bj1, bk1)
		c2 := block.CornerIndexAt(b.Block, bi2, bj2, bk2)

		match, sign, found := findEdgeByCorners(b, c1, c2)
		if !found {
			return gridglueerr.Newf(gridglueerr.CounterpartNotFound,
				"%s: no counterpart edge for block %d edge %d", context, a.Block.ID, edge.Local)
		}
		err := r.Edges.Union(
			block.Key{BlockID: a.Block.ID, Local: edge.Local},
			block.Key{BlockID: b.Block.ID, Local: match.Local},
			sign, context)
		if err != nil {
			return err
		}
	}
	return nil
}

func findEdgeByCorners(surf *block.Surface, c1, c2 int) (edge *block.Edge, sign int, found bool) {
	for _, e := range surf.Edges {
		s, end := e.EndpointCorners()
		if s == c1 && end == c2 {
			return e, 1, true
		}
		if s == c2 && end == c1 {
			return e, -1, true
		}
	}
	return nil, 0, false
}

// induceCorners implements Step D: a's four surface corners are mapped
// through the orientation onto b's lattice and unioned with their
// counterpart. No sign is tracked -- a vertex has no direction.
func (r *Resolver) induceCorners(a, b *block.Surface, o *block.Orientation, context string) error {
	aCorners := a.Corners()
	primA, secA := a.Dims()
	extremes := [4][2]int{{1, 1}, {primA, 1}, {primA, secA}, {1, secA}}

	for idx, ext := range extremes {
		qp, qs := o.MapFrom1(ext[0], ext[1])
		bi, bj, bk := b.ToIJK(qp, qs)
		bCorner := block.CornerIndexAt(b.Block, bi, bj, bk)

		err := r.Corners.Union(
			block.Key{BlockID: a.Block.ID, Local: aCorners[idx]},
			block.Key{BlockID: b.Block.ID, Local: bCorner},
			context)
		if err != nil {
			return err
		}
	}
	return nil
}
