package topology

import (
	"fmt"

	"github.com/notargets/gridglue/block"
	"github.com/notargets/gridglue/gridglueerr"
)

// byBlock tracks, for one equivalence class, the representative local
// index already claimed for each block id. Two different local
// indices of the *same* block ending up in one class is a geometric
// impossibility (a block's corner/edge cannot equal a different
// corner/edge of itself) and is the signature of a contradictory
// ONE_TO_ONE declaration.
type byBlock map[int]int

func mergeByBlock(a, b byBlock) (byBlock, error) {
	if len(a) < len(b) {
		a, b = b, a
	}
	for blk, local := range b {
		if existing, ok := a[blk]; ok && existing != local {
			return nil, fmt.Errorf("block %d local indices %d and %d were merged into one equivalence class", blk, existing, local)
		}
		a[blk] = local
	}
	return a, nil
}

// Set is a plain union-find over block.Key, used for corner (vertex)
// equivalence classes where no relative orientation needs tracking.
type Set struct {
	parent map[block.Key]block.Key
	blocks map[block.Key]byBlock
}

func NewSet() *Set {
	return &Set{parent: map[block.Key]block.Key{}, blocks: map[block.Key]byBlock{}}
}

func (s *Set) ensure(k block.Key) {
	if _, ok := s.parent[k]; !ok {
		s.parent[k] = k
		s.blocks[k] = byBlock{k.BlockID: k.Local}
	}
}

func (s *Set) Find(k block.Key) block.Key {
	s.ensure(k)
	for s.parent[k] != k {
		k = s.parent[k]
	}
	return k
}

// Union merges the classes of a and b. It returns OrientationInconsistent
// if the merge would place two different local indices of the same
// block into one class.
func (s *Set) Union(a, b block.Key, context string) error {
	s.ensure(a)
	s.ensure(b)
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return nil
	}
	merged, err := mergeByBlock(s.blocks[ra], s.blocks[rb])
	if err != nil {
		return gridglueerr.Wrap(gridglueerr.OrientationInconsistent, context, err)
	}
	s.parent[ra] = rb
	delete(s.blocks, ra)
	s.blocks[rb] = merged
	return nil
}

// Classes returns the equivalence classes as a map from class root to
// its members.
func (s *Set) Classes() map[block.Key][]block.Key {
	out := map[block.Key][]block.Key{}
	for k := range s.parent {
		r := s.Find(k)
		out[r] = append(out[r], k)
	}
	return out
}

// SignedSet is a union-find over block.Key that additionally tracks a
// relative +1/-1 sign between each key and its class root, used for
// edge equivalence classes where traversal direction matters: two
// edges unioned with sign=-1 are equivalent but run in opposite
// directions relative to each other.
type SignedSet struct {
	parent map[block.Key]block.Key
	sign   map[block.Key]int // sign of this key relative to parent
	blocks map[block.Key]byBlock
}

func NewSignedSet() *SignedSet {
	return &SignedSet{
		parent: map[block.Key]block.Key{},
		sign:   map[block.Key]int{},
		blocks: map[block.Key]byBlock{},
	}
}

func (s *SignedSet) ensure(k block.Key) {
	if _, ok := s.parent[k]; !ok {
		s.parent[k] = k
		s.sign[k] = 1
		s.blocks[k] = byBlock{k.BlockID: k.Local}
	}
}

// Find returns the class root of k and the accumulated sign of k
// relative to that root.
func (s *SignedSet) Find(k block.Key) (block.Key, int) {
	s.ensure(k)
	sign := 1
	for s.parent[k] != k {
		sign *= s.sign[k]
		k = s.parent[k]
	}
	return k, sign
}

// Union declares that a and b are equivalent with the given relative
// sign (+1: same traversal direction; -1: opposite). It returns
// OrientationInconsistent if a and b are already related with the
// opposite sign, or if the merge would conflate two different local
// indices of the same block.
func (s *SignedSet) Union(a, b block.Key, sign int, context string) error {
	s.ensure(a)
	s.ensure(b)
	ra, sa := s.Find(a)
	rb, sb := s.Find(b)
	if ra == rb {
		actual := sa * sb
		if actual != sign {
			return gridglueerr.Newf(gridglueerr.OrientationInconsistent,
				"%s: edge %v~%v already related with sign %d, contradicted by sign %d", context, a, b, actual, sign)
		}
		return nil
	}
	merged, err := mergeByBlock(s.blocks[ra], s.blocks[rb])
	if err != nil {
		return gridglueerr.Wrap(gridglueerr.OrientationInconsistent, context, err)
	}
	// We want rel(ra, rb) such that rel(a,b) == sign.
	// rel(a,b) = sa * rel(ra,rb) * sb  (signs are self-inverse)
	relRootToRoot := sign * sa * sb
	s.parent[ra] = rb
	s.sign[ra] = relRootToRoot
	delete(s.blocks, ra)
	s.blocks[rb] = merged
	return nil
}

// Classes returns the equivalence classes as a map from class root to
// its members, each with its sign relative to the root.
func (s *SignedSet) Classes() map[block.Key]map[block.Key]int {
	out := map[block.Key]map[block.Key]int{}
	for k := range s.parent {
		r, sign := s.Find(k)
		if out[r] == nil {
			out[r] = map[block.Key]int{}
		}
		out[r][k] = sign
	}
	return out
}
