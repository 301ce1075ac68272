package tracer

import (
	"github.com/df07/go-reference-pathtracer/pkg/core"
	"github.com/df07/go-reference-pathtracer/pkg/material"
)

// Part is one intersectable piece of a surface (a sphere, a wall of a box).
type Part interface {
	// Intersect returns the smallest positive ray parameter at which the
	// ray meets the part, or 0 on a miss.
	Intersect(ray core.Ray) float64
	// NormalAt returns the outward surface normal at a point on the part.
	NormalAt(point core.Vec3) core.Vec3
}

// Surface is anything the ray can hit. Background surfaces act as a far
// environment: a foreground hit always occludes them regardless of distance.
type Surface interface {
	IsBackground() bool
	Parts() []Part
}

// Thing is a non-emitting surface. Things are compared by identity: the
// medium stack uses a Thing as the key for the volume it encloses, so
// implementations must be pointer types.
type Thing interface {
	Surface
	// Color returns the surface albedo applied to the path throughput.
	Color() core.Vec3
	// RefractiveIndex returns the index of the medium the surface encloses.
	RefractiveIndex() float64
	// Interact draws the behavior this surface exhibits for one hit.
	Interact(sampler core.Sampler) material.Kind
}

// Light is an emitting surface. Hitting one terminates the path.
type Light interface {
	Surface
	Emission() core.Vec3
}

// Scene is the world the tracer queries. It is read-only during tracing.
type Scene interface {
	Things() []Thing
	Lights() []Light
	// Sky returns the radiance of a ray that misses every surface.
	Sky() core.Vec3
	// DirectLight estimates the emitter radiance directly visible from a
	// surface point with the given outward normal.
	DirectLight(point, normal core.Vec3, sampler core.Sampler) core.Vec3
}
