package block

// Orientation is the affine bijection T between the (primary,
// secondary) lattices of two interface surfaces A ("Side1") and B
// ("Side2"), represented as the pair of raw ranges plus the swap bit
// rather than as an opaque permutation+sign predicate, per the design
// note calling for a total, testable case analysis.
type Orientation struct {
	Side1 Range
	Side2 Range
	Swap  bool
}

// Range is an interface-local copy of an nmf.SideRange: a rectangle on
// one side of an interface, in that surface's own (primary, secondary)
// system. S/E may run in either direction; direction encodes traversal
// sign, per §4.3.
type Range struct {
	S1, E1 int
	S2, E2 int
}

func dirOf(s, e int) int {
	switch {
	case e > s:
		return 1
	case e < s:
		return -1
	default:
		return 0
	}
}

func stepsFrom(start, dir, value int) int {
	if dir == 0 {
		return 0
	}
	return (value - start) * dir
}

// MapFrom1 maps a lattice point on Side1 to its image on Side2.
func (o *Orientation) MapFrom1(p, s int) (p2, s2 int) {
	dir1p, dir1s := dirOf(o.Side1.S1, o.Side1.E1), dirOf(o.Side1.S2, o.Side1.E2)
	t1 := stepsFrom(o.Side1.S1, dir1p, p)
	t2 := stepsFrom(o.Side1.S2, dir1s, s)

	dir2p, dir2s := dirOf(o.Side2.S1, o.Side2.E1), dirOf(o.Side2.S2, o.Side2.E2)
	if !o.Swap {
		p2 = o.Side2.S1 + dir2p*t1
		s2 = o.Side2.S2 + dir2s*t2
	} else {
		p2 = o.Side2.S1 + dir2p*t2
		s2 = o.Side2.S2 + dir2s*t1
	}
	return
}

// MapFrom2 maps a lattice point on Side2 to its image on Side1; it is
// the inverse of MapFrom1, obtained by running the same step-counting
// logic with the two sides' roles exchanged.
func (o *Orientation) MapFrom2(p, s int) (p1, s1 int) {
	dir2p, dir2s := dirOf(o.Side2.S1, o.Side2.E1), dirOf(o.Side2.S2, o.Side2.E2)
	t1 := stepsFrom(o.Side2.S1, dir2p, p)
	t2 := stepsFrom(o.Side2.S2, dir2s, s)

	dir1p, dir1s := dirOf(o.Side1.S1, o.Side1.E1), dirOf(o.Side1.S2, o.Side1.E2)
	if !o.Swap {
		p1 = o.Side1.S1 + dir1p*t1
		s1 = o.Side1.S2 + dir1s*t2
	} else {
		p1 = o.Side1.S1 + dir1p*t2
		s1 = o.Side1.S2 + dir1s*t1
	}
	return
}

// coversFull reports whether r spans the whole surface extent.
func coversFull(r Range, primDim, secDim int) bool {
	lo1, hi1 := r.S1, r.E1
	if lo1 > hi1 {
		lo1, hi1 = hi1, lo1
	}
	lo2, hi2 := r.S2, r.E2
	if lo2 > hi2 {
		lo2, hi2 = hi2, lo2
	}
	return lo1 == 1 && hi1 == primDim && lo2 == 1 && hi2 == secDim
}

// Side1CoversSurface reports whether o.Side1 spans the whole of surf.
func (o *Orientation) Side1CoversSurface(surf *Surface) bool {
	prim, sec := surf.Dims()
	return coversFull(o.Side1, prim, sec)
}

// Side2CoversSurface reports whether o.Side2 spans the whole of surf.
func (o *Orientation) Side2CoversSurface(surf *Surface) bool {
	prim, sec := surf.Dims()
	return coversFull(o.Side2, prim, sec)
}

func minmax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

func inRange(r Range, p, s int) bool {
	lo1, hi1 := minmax(r.S1, r.E1)
	lo2, hi2 := minmax(r.S2, r.E2)
	return p >= lo1 && p <= hi1 && s >= lo2 && s <= hi2
}

// Contains1 reports whether (p,s) lies within o.Side1's declared rectangle.
func (o *Orientation) Contains1(p, s int) bool { return inRange(o.Side1, p, s) }

// Contains2 reports whether (p,s) lies within o.Side2's declared rectangle.
func (o *Orientation) Contains2(p, s int) bool { return inRange(o.Side2, p, s) }
