/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
	"github.com/notargets/gridglue/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateTriAreaTolerance bounds how small a projected split triangle
// can be before previewMesh drops it rather than handing avs a sliver.
const degenerateTriAreaTolerance = 1e-12

// triArea2D is a thin adapter from (x,y) screen points to mesh.TriArea's
// r3.Vec corners, used to drop the occasional sliver a fixed-diagonal
// split produces out of a nearly-degenerate boundary quad.
func triArea2D(a, b, c graphics2D.Point) float64 {
	v := func(p graphics2D.Point) r3.Vec { return r3.Vec{X: float64(p.X[0]), Y: float64(p.X[1])} }
	return mesh.TriArea(v(a), v(b), v(c))
}

// previewMesh renders a quick X-Y projected wireframe of m's boundary
// faces, triangulating each quad with a fixed diagonal split (no
// Delaunay triangulator is needed for an already-convex quad). Mirrors
// the teacher's own PlotMesh pattern: build a graphics2D.TriMesh, open a
// chart2d.Chart2D sized to its bounding box, plot it in the background.
func previewMesh(m *mesh.Mesh) {
	var points []graphics2D.Point
	nodeIndex := make(map[int]int32, len(m.Nodes))
	for _, n := range m.Nodes {
		nodeIndex[n.ID] = int32(len(points))
		points = append(points, graphics2D.Point{X: [2]float32{float32(n.X), float32(n.Y)}})
	}

	var tris []graphics2D.Triangle
	for _, f := range m.Faces {
		if f.LeftCell != 0 && f.RightCell != 0 {
			continue // interior face, not part of the boundary outline
		}
		a, b, c, d := nodeIndex[f.Nodes[0]], nodeIndex[f.Nodes[1]], nodeIndex[f.Nodes[2]], nodeIndex[f.Nodes[3]]
		p0, p1, p2, p3 := points[a], points[b], points[c], points[d]
		if triArea2D(p0, p1, p2) > degenerateTriAreaTolerance {
			tris = append(tris, graphics2D.Triangle{Nodes: [3]int32{a, b, c}})
		}
		if triArea2D(p0, p2, p3) > degenerateTriAreaTolerance {
			tris = append(tris, graphics2D.Triangle{Nodes: [3]int32{a, c, d}})
		}
	}

	trimesh := graphics2D.TriMesh{
		Geometry:   points,
		Triangles:  tris,
		Attributes: make([][]float32, len(tris)),
	}

	box := graphics2D.NewBoundingBox(trimesh.Geometry)
	if box == nil {
		return
	}
	box = box.Scale(1.1)

	chart := chart2d.NewChart2D(1280, 1280, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	chart.AddColorMap(utils2.NewColorMap(0, 1, 1))
	go chart.Plot()

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if err := chart.AddTriMesh("Boundary", trimesh, chart2d.NoGlyph, chart2d.Solid, white); err != nil {
		panic(err)
	}
}
