package topology

import (
	"strings"
	"testing"

	"github.com/notargets/gridglue/block"
	"github.com/notargets/gridglue/gridglueerr"
	"github.com/notargets/gridglue/nmf"
	"github.com/stretchr/testify/assert"
)

func specsFrom(m *nmf.Model) []block.Spec {
	specs := make([]block.Spec, len(m.Blocks))
	for i, bd := range m.Blocks {
		specs[i] = block.Spec{ID: bd.ID, NI: bd.NI, NJ: bd.NJ, NK: bd.NK}
	}
	return specs
}

func mustParse(t *testing.T, src string) *nmf.Model {
	m, err := nmf.Parse(strings.NewReader(src), "test")
	assert.NoError(t, err)
	return m
}

const twoCubesAligned = `
2
1 2 2 2
2 2 2 2
ONE_TO_ONE 1 2 1 2 1 2 2 1 1 2 1 2 FALSE
`

func TestResolveAlignedJoin(t *testing.T) {
	m := mustParse(t, twoCubesAligned)
	blocks := block.NewSet(specsFrom(m))
	r, err := Resolve(blocks, m)
	assert.NoError(t, err)

	a := blocks.Surface(block.Key{BlockID: 1, Local: 2})
	b := blocks.Surface(block.Key{BlockID: 2, Local: 1})
	assert.Same(t, b, a.Neighbour)
	assert.Same(t, a, b.Neighbour)
	assert.True(t, a.IsSide1)
	assert.False(t, b.IsSide1)

	for _, pair := range [][2]int{{2, 1}, {3, 4}, {6, 5}, {7, 8}} {
		ra := r.Corners.Find(block.Key{BlockID: 1, Local: pair[0]})
		rb := r.Corners.Find(block.Key{BlockID: 2, Local: pair[1]})
		assert.Equal(t, ra, rb, "corner %d(blk1) should equal corner %d(blk2)", pair[0], pair[1])
	}

	root1, sign1 := r.Edges.Find(block.Key{BlockID: 1, Local: 6})
	root2, sign2 := r.Edges.Find(block.Key{BlockID: 2, Local: 5})
	assert.Equal(t, root1, root2)
	assert.Equal(t, sign1, sign2)
}

const reversedSecondaryJoin = `
2
1 2 2 2
2 2 2 2
ONE_TO_ONE 1 2 1 2 2 1 2 1 1 2 1 2 FALSE
`

func TestResolveReversedOrientationJoin(t *testing.T) {
	m := mustParse(t, reversedSecondaryJoin)
	blocks := block.NewSet(specsFrom(m))
	r, err := Resolve(blocks, m)
	assert.NoError(t, err)

	// With the secondary axis reversed on side1, block1's corner 2 lines
	// up with block2's corner 5, not corner 1 as in the aligned case.
	ra := r.Corners.Find(block.Key{BlockID: 1, Local: 2})
	rb := r.Corners.Find(block.Key{BlockID: 2, Local: 5})
	assert.Equal(t, ra, rb)

	ra1 := r.Corners.Find(block.Key{BlockID: 1, Local: 1})
	rb1 := r.Corners.Find(block.Key{BlockID: 2, Local: 1})
	assert.NotEqual(t, ra1, rb1)
}

const swapJoin = `
2
1 2 3 4
2 2 4 3
ONE_TO_ONE 1 2 1 3 1 4 2 1 1 4 1 3 TRUE
`

func TestResolveSwapJoin(t *testing.T) {
	m := mustParse(t, swapJoin)
	blocks := block.NewSet(specsFrom(m))
	r, err := Resolve(blocks, m)
	assert.NoError(t, err)

	a := blocks.Surface(block.Key{BlockID: 1, Local: 2})
	b := blocks.Surface(block.Key{BlockID: 2, Local: 1})
	assert.Same(t, b, a.Neighbour)
	assert.NotNil(t, a.Orientation)
	assert.True(t, a.Orientation.Swap)

	ra := r.Corners.Find(block.Key{BlockID: 1, Local: 2})
	rb := r.Corners.Find(block.Key{BlockID: 2, Local: 1})
	assert.Equal(t, ra, rb)

	ra2 := r.Corners.Find(block.Key{BlockID: 1, Local: 3})
	rb2 := r.Corners.Find(block.Key{BlockID: 2, Local: 5})
	assert.Equal(t, ra2, rb2)
}

const duplicateInterfaceNMF = `
3
1 2 2 2
2 2 2 2
3 2 2 2
ONE_TO_ONE 1 2 1 2 1 2 2 1 1 2 1 2 FALSE
ONE_TO_ONE 1 2 1 2 1 2 3 1 1 2 1 2 FALSE
`

func TestResolveDuplicateInterface(t *testing.T) {
	m := mustParse(t, duplicateInterfaceNMF)
	blocks := block.NewSet(specsFrom(m))
	_, err := Resolve(blocks, m)
	assert.Error(t, err)
	ge, ok := err.(*gridglueerr.Error)
	assert.True(t, ok)
	assert.Equal(t, gridglueerr.DuplicateInterface, ge.Kind)
}

const selfGlueNMF = `
1
1 2 2 2
ONE_TO_ONE 1 2 1 2 1 2 1 1 1 2 1 2 FALSE
`

func TestResolveSelfJoinIsOrientationInconsistent(t *testing.T) {
	m := mustParse(t, selfGlueNMF)
	blocks := block.NewSet(specsFrom(m))
	_, err := Resolve(blocks, m)
	assert.Error(t, err)
	ge, ok := err.(*gridglueerr.Error)
	assert.True(t, ok)
	assert.Equal(t, gridglueerr.OrientationInconsistent, ge.Kind)
}

const boundaryOnlyNMF = `
1
1 2 2 2
WALL 1 1 1 2 1 2
INFLOW 1 2 1 2 1 2
`

func TestResolveFilesBoundaryPatches(t *testing.T) {
	m := mustParse(t, boundaryOnlyNMF)
	blocks := block.NewSet(specsFrom(m))
	r, err := Resolve(blocks, m)
	assert.NoError(t, err)

	wall := r.Boundaries[block.Key{BlockID: 1, Local: 1}]
	assert.Len(t, wall, 1)
	assert.Equal(t, nmf.WALL, wall[0].BC)

	inflow := r.Boundaries[block.Key{BlockID: 1, Local: 2}]
	assert.Len(t, inflow, 1)
	assert.Equal(t, nmf.INFLOW, inflow[0].BC)

	surf := blocks.Surface(block.Key{BlockID: 1, Local: 1})
	assert.True(t, surf.IsBoundary())
}
