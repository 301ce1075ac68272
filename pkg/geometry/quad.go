package geometry

import (
	"math"

	"github.com/df07/go-reference-pathtracer/pkg/core"
)

// Quad represents a rectangular surface defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3 // One corner of the quad
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // Normal vector (computed from U × V)
	D      float64   // Plane equation constant: ax + by + cz = d
	W      core.Vec3 // Cached cross product for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3) *Quad {
	normal := u.Cross(v).Normalize()
	d := normal.Dot(corner)

	// w = normal / (normal · (u × v)), cached for barycentric checks
	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		D:      d,
		W:      w,
	}
}

// Intersect returns the ray parameter at which the ray meets the quad, or 0
// on a miss
func (q *Quad) Intersect(ray core.Ray) float64 {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the quad
	if math.Abs(denominator) < 1e-8 {
		return 0
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < epsilon {
		return 0
	}

	// Check the hit point against the quad bounds in barycentric coordinates
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0
	}

	return t
}

// NormalAt returns the quad normal, which is uniform across the surface
func (q *Quad) NormalAt(core.Vec3) core.Vec3 {
	return q.Normal
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}

// SamplePoint returns a uniformly distributed point on the quad
func (q *Quad) SamplePoint(sampler core.Sampler) core.Vec3 {
	return q.Corner.
		Add(q.U.Multiply(sampler.Get1D())).
		Add(q.V.Multiply(sampler.Get1D()))
}
