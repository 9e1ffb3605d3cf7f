package numbering

import (
	"strings"
	"testing"

	"github.com/notargets/gridglue/block"
	"github.com/notargets/gridglue/nmf"
	"github.com/notargets/gridglue/topology"
	"github.com/stretchr/testify/assert"
)

func buildNumbering(t *testing.T, src string) (*block.Set, *topology.Resolver, *Numbering) {
	m, err := nmf.Parse(strings.NewReader(src), "test")
	assert.NoError(t, err)

	specs := make([]block.Spec, len(m.Blocks))
	for i, bd := range m.Blocks {
		specs[i] = block.Spec{ID: bd.ID, NI: bd.NI, NJ: bd.NJ, NK: bd.NK}
	}
	blocks := block.NewSet(specs)

	r, err := topology.Resolve(blocks, m)
	assert.NoError(t, err)

	return blocks, r, Number(blocks, r)
}

const singleCubeAllWalls = `
1
1 2 2 2
WALL 1 1 1 2 1 2
WALL 1 2 1 2 1 2
WALL 1 3 1 2 1 2
WALL 1 4 1 2 1 2
WALL 1 5 1 2 1 2
WALL 1 6 1 2 1 2
`

func TestNumberSingleCube(t *testing.T) {
	blocks, _, n := buildNumbering(t, singleCubeAllWalls)
	assert.Equal(t, 8, n.NumNodes)
	assert.Equal(t, 1, n.NumCells)
	assert.Equal(t, 6, n.NumFaces)
	assert.Equal(t, 12, n.NumEdges, "a single unshared block has no merged edges")

	b := blocks.Get(1)
	for e := 1; e <= 12; e++ {
		assert.NotZero(t, b.Edge(e).GlobalIndex)
	}
	for s := 1; s <= 6; s++ {
		assert.NotZero(t, b.Surface(s).GlobalIndex, "surface %d should carry a representative face id", s)
	}
}

const twoCubesAligned = `
2
1 2 2 2
2 2 2 2
ONE_TO_ONE 1 2 1 2 1 2 2 1 1 2 1 2 FALSE
WALL 1 1 1 2 1 2
WALL 1 3 1 2 1 2
WALL 1 4 1 2 1 2
WALL 1 5 1 2 1 2
WALL 1 6 1 2 1 2
WALL 2 2 1 2 1 2
WALL 2 3 1 2 1 2
WALL 2 4 1 2 1 2
WALL 2 5 1 2 1 2
WALL 2 6 1 2 1 2
`

func TestNumberTwoCubesAligned(t *testing.T) {
	blocks, _, n := buildNumbering(t, twoCubesAligned)
	assert.Equal(t, 12, n.NumNodes)
	assert.Equal(t, 2, n.NumCells)
	assert.Equal(t, 11, n.NumFaces)

	// the four shared-surface nodes get identical global ids on both sides
	assert.Equal(t, n.NodeIDAt(1, 2, 1, 1), n.NodeIDAt(2, 1, 1, 1))
	assert.Equal(t, n.NodeIDAt(1, 2, 2, 1), n.NodeIDAt(2, 1, 2, 1))
	assert.Equal(t, n.NodeIDAt(1, 2, 1, 2), n.NodeIDAt(2, 1, 1, 2))
	assert.Equal(t, n.NodeIDAt(1, 2, 2, 2), n.NodeIDAt(2, 1, 2, 2))

	// the interface face shares one id between the two blocks
	assert.Equal(t, n.FaceID[FaceAddr{1, block.AxisI, 2, 1, 1}], n.FaceID[FaceAddr{2, block.AxisI, 1, 1, 1}])

	// the interface surface (I-MAX of block1, I-MIN of block2) glues
	// exactly its four bounding edges together, so the arena's 24 local
	// edges collapse to 20 global ones.
	assert.Equal(t, 20, n.NumEdges)

	b1 := blocks.Get(1)
	b2 := blocks.Get(2)
	for _, pair := range [2][2]int{{10, 9}, {6, 5}} {
		e1 := b1.Edge(pair[0])
		e2 := b2.Edge(pair[1])
		assert.Equal(t, e1.GlobalIndex, e2.GlobalIndex, "block1 edge %d should merge with block2 edge %d", pair[0], pair[1])
	}

	// block1's I-MAX surface and block2's I-MIN surface sit on the same
	// interface, so they should carry matching representative face ids.
	assert.NotZero(t, b1.Surface(2).GlobalIndex)
	assert.Equal(t, b1.Surface(2).GlobalIndex, b2.Surface(1).GlobalIndex)
}

const swapJoinNMF = `
2
1 2 3 4
2 2 4 3
ONE_TO_ONE 1 2 1 3 1 4 2 1 1 4 1 3 TRUE
`

func TestNumberSwapJoinSharesTwelveNodes(t *testing.T) {
	_, _, n := buildNumbering(t, swapJoinNMF)
	// block 1 has 2*3*4=24 nodes, block 2 has 2*4*3=24 nodes, the
	// interface is a full 3x4 (12-node) rectangle -> 24+24-12 = 36.
	assert.Equal(t, 36, n.NumNodes)
}

const reversedSecondaryJoinNMF = `
2
1 2 2 2
2 2 2 2
ONE_TO_ONE 1 2 1 2 2 1 2 1 1 2 1 2 FALSE
`

func TestNumberReversedOrientationJoin(t *testing.T) {
	_, _, n := buildNumbering(t, reversedSecondaryJoinNMF)
	// this interface reverses the secondary (K) axis, so node id for
	// block1(i=2,j,k) must equal block2(i=1, j, nK+1-k).
	for j := 1; j <= 2; j++ {
		for k := 1; k <= 2; k++ {
			assert.Equal(t, n.NodeIDAt(1, 2, j, k), n.NodeIDAt(2, 1, j, 2+1-k))
		}
	}
}
