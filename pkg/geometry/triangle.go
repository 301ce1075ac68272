package geometry

import (
	"math"

	"github.com/df07/go-reference-pathtracer/pkg/core"
)

// Triangle represents a triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	normal     core.Vec3
}

// NewTriangle creates a new triangle. The normal follows the right-hand
// rule over the vertex order.
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return &Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		normal: edge1.Cross(edge2).Normalize(),
	}
}

// Intersect returns the ray parameter at which the ray meets the triangle,
// or 0 on a miss. Uses the Möller-Trumbore algorithm.
func (tr *Triangle) Intersect(ray core.Ray) float64 {
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray parallel to the triangle plane
	if math.Abs(a) < 1e-12 {
		return 0
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0
	}

	t := f * edge2.Dot(q)
	if t < epsilon {
		return 0
	}
	return t
}

// NormalAt returns the face normal, which is uniform across the surface
func (tr *Triangle) NormalAt(core.Vec3) core.Vec3 {
	return tr.normal
}
