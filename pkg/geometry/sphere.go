package geometry

import (
	"math"

	"github.com/df07/go-reference-pathtracer/pkg/core"
)

// epsilon rejects self-intersections when a ray restarts on a surface
const epsilon = 1e-3

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect returns the smallest ray parameter beyond epsilon at which the
// ray meets the sphere, or 0 on a miss
func (s *Sphere) Intersect(ray core.Ray) float64 {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < epsilon {
		root = (-halfB + sqrtD) / a
		if root < epsilon {
			return 0
		}
	}
	return root
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// Area returns the surface area of the sphere
func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// SamplePoint returns a uniformly distributed point on the sphere surface
func (s *Sphere) SamplePoint(sampler core.Sampler) core.Vec3 {
	return s.Center.Add(core.SampleOnUnitSphere(sampler).Multiply(s.Radius))
}
