package plot3d

import (
	"strings"
	"testing"

	"github.com/notargets/gridglue/gridglueerr"
	"github.com/notargets/gridglue/nmf"
	"github.com/stretchr/testify/assert"
)

const singleCubeGrid = `
1
2 2 2
0 1 0 1 0 1 0 1
0 0 1 1 0 0 1 1
0 0 0 0 1 1 1 1
`

func TestReadSingleBlock(t *testing.T) {
	g, err := Read(strings.NewReader(singleCubeGrid), []nmf.BlockDim{{ID: 1, NI: 2, NJ: 2, NK: 2}})
	assert.NoError(t, err)

	x, y, z := g.At(1, 1, 1, 1)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, 0.0, z)

	x, y, z = g.At(1, 2, 2, 2)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)
	assert.Equal(t, 1.0, z)
}

func TestReadBlockCountMismatch(t *testing.T) {
	_, err := Read(strings.NewReader(singleCubeGrid), []nmf.BlockDim{
		{ID: 1, NI: 2, NJ: 2, NK: 2},
		{ID: 2, NI: 2, NJ: 2, NK: 2},
	})
	assert.Error(t, err)
	gerr, ok := err.(*gridglueerr.Error)
	assert.True(t, ok)
	assert.Equal(t, gridglueerr.DimensionInconsistent, gerr.Kind)
}

func TestReadDimensionMismatch(t *testing.T) {
	_, err := Read(strings.NewReader(singleCubeGrid), []nmf.BlockDim{{ID: 1, NI: 3, NJ: 2, NK: 2}})
	assert.Error(t, err)
	gerr, ok := err.(*gridglueerr.Error)
	assert.True(t, ok)
	assert.Equal(t, gridglueerr.DimensionInconsistent, gerr.Kind)
}
