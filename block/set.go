package block

import "sort"

// Spec is the minimal description needed to construct a Block: its
// 1-based id and dimensions. Kept independent of the nmf package so
// that block has no dependency on how those numbers were obtained.
type Spec struct {
	ID         int
	NI, NJ, NK int
}

// Set is the block arena: every Block in a conversion, addressed by
// its 1-based id.
type Set struct {
	blocks map[int]*Block
	order  []int
}

// NewSet builds a Set from a list of block specs.
func NewSet(specs []Spec) *Set {
	s := &Set{blocks: make(map[int]*Block, len(specs))}
	for _, sp := range specs {
		s.blocks[sp.ID] = NewBlock(sp.ID, sp.NI, sp.NJ, sp.NK)
		s.order = append(s.order, sp.ID)
	}
	sort.Ints(s.order)
	return s
}

// Get returns the block with the given id, or nil if absent.
func (s *Set) Get(id int) *Block {
	return s.blocks[id]
}

// IDs returns the block ids in ascending order.
func (s *Set) IDs() []int {
	return s.order
}

// Len returns the number of blocks in the set.
func (s *Set) Len() int { return len(s.blocks) }

// Surface resolves a Key that names a surface to its *Surface.
func (s *Set) Surface(k Key) *Surface {
	b := s.Get(k.BlockID)
	if b == nil {
		return nil
	}
	return b.Surface(k.Local)
}

// Edge resolves a Key that names an edge to its *Edge.
func (s *Set) Edge(k Key) *Edge {
	b := s.Get(k.BlockID)
	if b == nil {
		return nil
	}
	return b.Edge(k.Local)
}
