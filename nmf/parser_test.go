package nmf

import (
	"strings"
	"testing"

	"github.com/notargets/gridglue/gridglueerr"
	"github.com/stretchr/testify/assert"
)

const singleCubeNMF = `
# single unit cube, all walls
1
1 2 2 2
WALL 1 1 1 2 1 2
WALL 1 2 1 2 1 2
WALL 1 3 1 2 1 2
WALL 1 4 1 2 1 2
WALL 1 5 1 2 1 2
WALL 1 6 1 2 1 2
`

func TestParseSingleCube(t *testing.T) {
	m, err := Parse(strings.NewReader(singleCubeNMF), "test")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(m.Blocks))
	assert.Equal(t, BlockDim{ID: 1, NI: 2, NJ: 2, NK: 2}, m.Blocks[0])
	assert.Equal(t, 6, len(m.Entries))
	for _, e := range m.Entries {
		assert.Equal(t, SingleSideKind, e.Kind)
		assert.Equal(t, WALL, e.BC)
	}
}

const twoCubesNMF = `
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

func TestParseTwoCubesOneToOne(t *testing.T) {
	m, err := Parse(strings.NewReader(twoCubesNMF), "test")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(m.Blocks))
	assert.Equal(t, 11, len(m.Entries))
	first := m.Entries[0]
	assert.Equal(t, DoubleSideKind, first.Kind)
	assert.Equal(t, ONE_TO_ONE, first.BC)
	assert.False(t, first.Swap)
	assert.Equal(t, 1, first.Side1.Block)
	assert.Equal(t, 2, first.Side2.Block)
}

func TestParseCaseInsensitiveAndDashUnderscore(t *testing.T) {
	src := "1\n1 2 2 2\nsym-x 1 1 1 2 1 2\n"
	m, err := Parse(strings.NewReader(src), "test")
	assert.NoError(t, err)
	assert.Equal(t, SYM_X, m.Entries[0].BC)
}

func TestParseSymmetryAlias(t *testing.T) {
	src := "1\n1 2 2 2\nSYMMETRY 1 1 1 2 1 2\n"
	m, err := Parse(strings.NewReader(src), "test")
	assert.NoError(t, err)
	assert.Equal(t, SYM, m.Entries[0].BC)
}

func TestParseUnknownBC(t *testing.T) {
	src := "1\n1 2 2 2\nFROBNICATE 1 1 1 2 1 2\n"
	_, err := Parse(strings.NewReader(src), "test")
	assert.Error(t, err)
	ge, ok := err.(*gridglueerr.Error)
	assert.True(t, ok)
	assert.Equal(t, gridglueerr.UnknownBC, ge.Kind)
}

func TestParseDimensionTooSmall(t *testing.T) {
	src := "1\n1 1 2 2\n"
	_, err := Parse(strings.NewReader(src), "test")
	assert.Error(t, err)
	ge := err.(*gridglueerr.Error)
	assert.Equal(t, gridglueerr.DimensionTooSmall, ge.Kind)
}

func TestParseBlockCountMismatch(t *testing.T) {
	src := "2\n1 2 2 2\n3 2 2 2\n"
	_, err := Parse(strings.NewReader(src), "test")
	assert.Error(t, err)
	ge := err.(*gridglueerr.Error)
	assert.Equal(t, gridglueerr.BlockCountMismatch, ge.Kind)
}

func TestParseRangeOutOfBounds(t *testing.T) {
	src := "1\n1 2 2 2\nWALL 1 1 1 3 1 2\n"
	_, err := Parse(strings.NewReader(src), "test")
	assert.Error(t, err)
	ge := err.(*gridglueerr.Error)
	assert.Equal(t, gridglueerr.RangeOutOfBounds, ge.Kind)
}

func TestParseAreaMismatch(t *testing.T) {
	// 2x3 rectangle on A vs 3x3 on B -> AreaMismatch
	src := "2\n1 4 4 4\n2 4 4 4\n" +
		"ONE_TO_ONE 1 2 1 2 1 3 2 1 1 3 1 3 FALSE\n"
	_, err := Parse(strings.NewReader(src), "test")
	assert.Error(t, err)
	ge := err.(*gridglueerr.Error)
	assert.Equal(t, gridglueerr.AreaMismatch, ge.Kind)
}

func TestParseCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "# a comment\n\n1\n# another\n1 2 2 2\n\nWALL 1 1 1 2 1 2\n"
	m, err := Parse(strings.NewReader(src), "test")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(m.Blocks))
	assert.Equal(t, 1, len(m.Entries))
}
