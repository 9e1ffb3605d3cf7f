package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const convertTestNMF = `
1
1 2 2 2
WALL 1 1 1 2 1 2
WALL 1 2 1 2 1 2
WALL 1 3 1 2 1 2
WALL 1 4 1 2 1 2
WALL 1 5 1 2 1 2
WALL 1 6 1 2 1 2
`

const convertTestPlot3D = `
1
2 2 2
0 1 0 1 0 1 0 1
0 0 1 1 0 0 1 1
0 0 0 0 1 1 1 1
`

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunConvertSingleCube(t *testing.T) {
	dir := t.TempDir()
	nmfPath := writeTempFile(t, dir, "cube.nmf", convertTestNMF)
	p3dPath := writeTempFile(t, dir, "cube.p3d", convertTestPlot3D)
	outPath := filepath.Join(dir, "cube.vtk")

	mc := &ModelConvert{NMFFile: nmfPath, Plot3DFile: p3dPath, OutFile: outPath}
	assert.NoError(t, RunConvert(mc))

	out, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "DATASET UNSTRUCTURED_GRID")
	assert.Contains(t, string(out), "POINTS 8 double")
	assert.Contains(t, string(out), "CELLS 1 9")
}

func TestRunConvertMissingNMF(t *testing.T) {
	mc := &ModelConvert{NMFFile: "/no/such/file.nmf", Plot3DFile: "/no/such/file.p3d", OutFile: "/tmp/unused.vtk"}
	assert.Error(t, RunConvert(mc))
}
