package nmf

// BlockDim is one block's declared dimensions, 1-based block id as written
// in the NMF header.
type BlockDim struct {
	ID         int
	NI, NJ, NK int
}

// SideRange is one face's local rectangle, in the surface's own
// (primary, secondary) coordinate system. S/E are written exactly as
// they appear in the file; a DoubleSide range may run S>E to express a
// reversed traversal direction relative to its counterpart, so callers
// must not assume S<=E.
type SideRange struct {
	Block    int
	Face     int
	S1, E1   int
	S2, E2   int
}

// PrimaryNodeCount returns the number of nodes spanned along the primary
// axis of this range, regardless of traversal direction.
func (r SideRange) PrimaryNodeCount() int {
	return abs(r.E1-r.S1) + 1
}

// SecondaryNodeCount returns the number of nodes spanned along the
// secondary axis of this range, regardless of traversal direction.
func (r SideRange) SecondaryNodeCount() int {
	return abs(r.E2-r.S2) + 1
}

// FaceCount returns the number of quad cells described by this rectangle.
func (r SideRange) FaceCount() int {
	return (r.PrimaryNodeCount() - 1) * (r.SecondaryNodeCount() - 1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// EntryKind tags an Entry as single-sided (a boundary condition) or
// double-sided (an internal ONE_TO_ONE interface). Using a tagged
// variant with exhaustive switches, rather than dynamic dispatch over
// an entry interface, keeps the resolver's case analysis total.
type EntryKind int

const (
	SingleSideKind EntryKind = iota
	DoubleSideKind
)

// Entry is one line of the NMF connectivity section. SingleSide entries
// populate only Side1 and BC; DoubleSide entries populate Side1, Side2
// and Swap, and BC is always ONE_TO_ONE.
type Entry struct {
	Kind  EntryKind
	BC    BCKind
	Side1 SideRange
	Side2 SideRange
	Swap  bool
}

// Range returns the common view of an entry's primary rectangle, useful
// to callers that only care about the range a given entry occupies on
// its first (or only) side.
func (e Entry) Range() SideRange {
	return e.Side1
}

// Model is the parsed, unresolved content of an NMF file: block
// dimensions and the raw list of connectivity/boundary entries. It
// carries no cross-references yet -- those are built by the block and
// topology packages.
type Model struct {
	Blocks  []BlockDim
	Entries []Entry
}

// BlockByID returns the BlockDim with the given 1-based id, or ok=false.
func (m *Model) BlockByID(id int) (BlockDim, bool) {
	for _, b := range m.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return BlockDim{}, false
}
