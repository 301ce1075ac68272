package geometry

import (
	"math"

	"github.com/df07/go-reference-pathtracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector (should be normalized)
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// Intersect returns the ray parameter at which the ray meets the plane, or 0
// on a miss
func (p *Plane) Intersect(ray core.Ray) float64 {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return 0
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < epsilon {
		return 0
	}
	return t
}

// NormalAt returns the plane normal, which is uniform across the surface
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}
