package block

// Surface is one of a block's six faces, indexed 1..6 in the order
// I-MIN, I-MAX, J-MIN, J-MAX, K-MIN, K-MAX. Each surface carries a
// 2D (primary, secondary) coordinate system derived from the block's
// own axes (faces 1/2 use J,K; 3/4 use I,K; 5/6 use I,J) and the four
// edges that bound it, in canonical order.
type Surface struct {
	Block *Block
	Local int

	Edges [4]*Edge

	// GlobalIndex is the face's global id, assigned by the numbering
	// package; 0 means unassigned. Surfaces do not carry their own
	// global face ids directly -- this field is reserved for callers
	// (e.g. reporting) that want to track a representative face id for
	// the surface as a whole; per-local-face ids live in the
	// numbering package's face table.
	GlobalIndex int

	// Neighbour is set by the topology resolver for surfaces that are
	// one side of a ONE_TO_ONE interface; nil means the surface is an
	// unshared (possibly boundary) surface.
	Neighbour *Surface

	// Orientation describes the map between this surface's (p,s)
	// lattice and Neighbour's, valid only when Neighbour != nil. It is
	// set by the topology resolver. IsSide1 records which of
	// Orientation's two sides this surface is, so MapToNeighbour can
	// pick MapFrom1 or MapFrom2 correctly.
	Orientation *Orientation
	IsSide1     bool
}

// MapToNeighbour maps a local (primary,secondary) lattice point on s
// to the corresponding point on s.Neighbour. Valid only when s has a
// Neighbour.
func (s *Surface) MapToNeighbour(p, sec int) (p2, s2 int) {
	if s.IsSide1 {
		return s.Orientation.MapFrom1(p, sec)
	}
	return s.Orientation.MapFrom2(p, sec)
}

// ContainsInInterface reports whether the given (primary,secondary)
// lattice point lies within the declared ONE_TO_ONE rectangle for this
// surface. Surfaces without a Neighbour, or points outside a
// sub-rectangle (patched) interface, return false.
func (s *Surface) ContainsInInterface(p, sec int) bool {
	if s.Orientation == nil {
		return false
	}
	if s.IsSide1 {
		return s.Orientation.Contains1(p, sec)
	}
	return s.Orientation.Contains2(p, sec)
}

// Axis returns the axis this surface is normal to (I for surfaces 1/2,
// J for 3/4, K for 5/6).
func (s *Surface) Axis() Axis {
	return surfaceGeoms[s.Local].FixedAxis
}

// SurfaceForAxis returns the 1-based surface local index normal to the
// given axis, at its min (atMax=false) or max (atMax=true) end.
func SurfaceForAxis(a Axis, atMax bool) int {
	for local, g := range surfaceGeoms {
		if g.FixedAxis == a && g.FixedAtMax == atMax {
			return local
		}
	}
	panic("unreachable: every (axis, atMax) pair has a surface")
}

// surfaceGeom fixes, for each 1-based surface index, which axis is
// held constant (and at which end: false=min/1, true=max/dim), which
// axis is primary and which is secondary, per spec faces 1/2 -> (J,K),
// 3/4 -> (I,K), 5/6 -> (I,J).
type surfaceGeom struct {
	FixedAxis     Axis
	FixedAtMax    bool
	PrimaryAxis   Axis
	SecondaryAxis Axis
}

var surfaceGeoms = map[int]surfaceGeom{
	1: {FixedAxis: AxisI, FixedAtMax: false, PrimaryAxis: AxisJ, SecondaryAxis: AxisK},
	2: {FixedAxis: AxisI, FixedAtMax: true, PrimaryAxis: AxisJ, SecondaryAxis: AxisK},
	3: {FixedAxis: AxisJ, FixedAtMax: false, PrimaryAxis: AxisI, SecondaryAxis: AxisK},
	4: {FixedAxis: AxisJ, FixedAtMax: true, PrimaryAxis: AxisI, SecondaryAxis: AxisK},
	5: {FixedAxis: AxisK, FixedAtMax: false, PrimaryAxis: AxisI, SecondaryAxis: AxisJ},
	6: {FixedAxis: AxisK, FixedAtMax: true, PrimaryAxis: AxisI, SecondaryAxis: AxisJ},
}

// Dims returns the (primary, secondary) node-count extent of the surface.
func (s *Surface) Dims() (prim, sec int) {
	g := surfaceGeoms[s.Local]
	return s.Block.Dim(g.PrimaryAxis), s.Block.Dim(g.SecondaryAxis)
}

// FixedValue returns the surface's fixed-axis coordinate (1 or the
// dimension along that axis).
func (s *Surface) FixedValue() int {
	g := surfaceGeoms[s.Local]
	if g.FixedAtMax {
		return s.Block.Dim(g.FixedAxis)
	}
	return 1
}

// ToIJK converts a surface-local (primary, secondary) lattice point to
// full block (i,j,k) coordinates.
func (s *Surface) ToIJK(p, sec int) (i, j, k int) {
	g := surfaceGeoms[s.Local]
	coord := [3]int{}
	coord[g.FixedAxis] = s.FixedValue()
	coord[g.PrimaryAxis] = p
	coord[g.SecondaryAxis] = sec
	return coord[AxisI], coord[AxisJ], coord[AxisK]
}

// FromIJK is the inverse of ToIJK: it extracts the (primary, secondary)
// coordinates of a block point known to already lie on this surface.
func (s *Surface) FromIJK(i, j, k int) (p, sec int) {
	g := surfaceGeoms[s.Local]
	coord := [3]int{i, j, k}
	return coord[g.PrimaryAxis], coord[g.SecondaryAxis]
}

// IsBoundary reports whether the surface has no ONE_TO_ONE neighbour.
func (s *Surface) IsBoundary() bool {
	return s.Neighbour == nil
}

// Corners returns the four corner indices (1..8, per the canonical hex
// corner numbering in package block's Corner table) that bound this
// surface, in the order (min,min) (max,min) (max,max) (min,max) of
// its own (primary,secondary) system.
func (s *Surface) Corners() [4]int {
	var out [4]int
	pMin, pMax := 1, func() int { d, _ := s.Dims(); return d }()
	sMin, sMax := 1, func() int { _, d := s.Dims(); return d }()
	corners := [4][2]int{{pMin, sMin}, {pMax, sMin}, {pMax, sMax}, {pMin, sMax}}
	for idx, c := range corners {
		i, j, k := s.ToIJK(c[0], c[1])
		out[idx] = CornerIndexAt(s.Block, i, j, k)
	}
	return out
}
