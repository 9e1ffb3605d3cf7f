package mesh

import "gonum.org/v1/gonum/spatial/r3"

// QuadCentroid returns the average of a quad face's four corner points.
func QuadCentroid(n1, n2, n3, n4 r3.Vec) r3.Vec {
	sum := r3.Add(r3.Add(n1, n2), r3.Add(n3, n4))
	return r3.Scale(0.25, sum)
}

// QuadNormal returns the (non-unit) area-weighted normal of a
// quadrilateral with corners listed in right-hand order, computed as
// the cross product of its two diagonals -- robust for the mildly
// non-planar quads a structured-grid surface can produce.
func QuadNormal(n1, n2, n3, n4 r3.Vec) r3.Vec {
	d1 := r3.Sub(n3, n1)
	d2 := r3.Sub(n4, n2)
	return r3.Scale(0.5, r3.Cross(d1, d2))
}

// QuadArea returns the magnitude of QuadNormal.
func QuadArea(n1, n2, n3, n4 r3.Vec) float64 {
	return r3.Norm(QuadNormal(n1, n2, n3, n4))
}

// TriNormal returns the (non-unit) area-weighted normal of a triangle
// with corners listed in right-hand order.
func TriNormal(n1, n2, n3 r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Cross(r3.Sub(n2, n1), r3.Sub(n3, n1)))
}

// TriArea returns the magnitude of TriNormal.
func TriArea(n1, n2, n3 r3.Vec) float64 {
	return r3.Norm(TriNormal(n1, n2, n3))
}

// PointsOutward reports whether a quad's normal (from QuadNormal) points
// away from the interior point, used to sanity-check that a boundary
// face's node ordering is truly outward-facing relative to its owning
// cell's centroid.
func PointsOutward(faceCentroid, interior, normal r3.Vec) bool {
	return r3.Dot(r3.Sub(faceCentroid, interior), normal) > 0
}
