package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceEdgeWiring(t *testing.T) {
	b := NewBlock(1, 3, 4, 5)

	cases := []struct {
		surface int
		edges   [4]int
	}{
		{1, [4]int{5, 9, 8, 12}},
		{2, [4]int{6, 11, 7, 10}},
		{3, [4]int{1, 10, 4, 9}},
		{4, [4]int{2, 12, 3, 11}},
		{5, [4]int{1, 5, 2, 6}},
		{6, [4]int{3, 8, 4, 7}},
	}
	for _, c := range cases {
		surf := b.Surface(c.surface)
		for i, edgeLocal := range c.edges {
			assert.Equal(t, edgeLocal, surf.Edges[i].Local, "surface %d slot %d", c.surface, i)
		}
	}
}

func TestEdgeHasTwoDependentSurfaces(t *testing.T) {
	b := NewBlock(1, 3, 4, 5)
	for e := 1; e <= 12; e++ {
		edge := b.Edge(e)
		assert.NotNil(t, edge.Surfaces[0])
		assert.NotNil(t, edge.Surfaces[1])
		assert.NotEqual(t, edge.Surfaces[0].Local, edge.Surfaces[1].Local)
	}
}

func TestNegativeIndexing(t *testing.T) {
	b := NewBlock(1, 3, 4, 5)
	assert.Equal(t, b.Surface(6), b.Surface(-1))
	assert.Equal(t, b.Edge(12), b.Edge(-1))
}

func TestCornerIJK(t *testing.T) {
	b := NewBlock(1, 3, 4, 5)
	i, j, k := CornerIJK(b, 7)
	assert.Equal(t, 3, i)
	assert.Equal(t, 4, j)
	assert.Equal(t, 5, k)
	assert.Equal(t, 7, CornerIndexAt(b, 3, 4, 5))
}

func TestSurfaceToFromIJK(t *testing.T) {
	b := NewBlock(1, 3, 4, 5)
	surf := b.Surface(5) // K-MIN, primary=I, secondary=J
	i, j, k := surf.ToIJK(2, 3)
	assert.Equal(t, 2, i)
	assert.Equal(t, 3, j)
	assert.Equal(t, 1, k)
	p, s := surf.FromIJK(i, j, k)
	assert.Equal(t, 2, p)
	assert.Equal(t, 3, s)
}

func TestEdgeNodeCountAndEndpoints(t *testing.T) {
	b := NewBlock(1, 3, 4, 5)
	e1 := b.Edge(1) // varies I, j=1,k=1
	assert.Equal(t, 3, e1.NodeCount())
	start, end := e1.EndpointCorners()
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, end)
}

func TestCellAndFaceCounts(t *testing.T) {
	b := NewBlock(1, 2, 2, 2)
	assert.Equal(t, 8, b.NodeCount())
	assert.Equal(t, 1, b.CellCount())
	assert.Equal(t, 6, b.FaceCount())
}
