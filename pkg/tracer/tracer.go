package tracer

import (
	"fmt"
	"math"

	"github.com/df07/go-reference-pathtracer/pkg/core"
	"github.com/df07/go-reference-pathtracer/pkg/material"
)

// Config contains the termination parameters for a path
type Config struct {
	MaxDepth int     // Maximum number of bounces
	RRLimit  float64 // Russian roulette threshold in (0, 1]; lower kills less often
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 12,
		RRLimit:  0.25,
	}
}

// Ray is the state of one light path: the current vertex and outgoing
// direction, the accumulated throughput, the remaining bounce budget, the
// stack of volumes enclosing the ray, and the cached result of the most
// recent intersection query. A Ray belongs to a single goroutine from birth
// to termination.
type Ray struct {
	Origin    core.Vec3
	Direction core.Vec3
	Color     core.Vec3 // Throughput: starts white, tinted at each interaction
	Depth     int
	Inside    MediumStack

	scene   Scene
	sampler core.Sampler
	rrLimit float64

	lightHit  Light
	lightPart Part
	thingHit  Thing
	thingPart Part
}

// NewRay creates a path rooted at origin heading along direction, with white
// throughput and the configured bounce budget. Direction must be unit length.
func NewRay(scene Scene, origin, direction core.Vec3, cfg Config, sampler core.Sampler) *Ray {
	return &Ray{
		Origin:    origin,
		Direction: direction,
		Color:     core.White,
		Depth:     cfg.MaxDepth,
		scene:     scene,
		sampler:   sampler,
		rrLimit:   cfg.RRLimit,
	}
}

// HitLight returns the emitter struck by the last intersection query, if any
func (r *Ray) HitLight() Light { return r.lightHit }

// HitThing returns the non-emitter struck by the last intersection query, if any
func (r *Ray) HitThing() Thing { return r.thingHit }

// paint tints the throughput by a color
func (r *Ray) paint(color core.Vec3) {
	r.Color = r.Color.MultiplyVec(color)
}

// Trace returns the radiance accumulated along the path. The caller must
// have invoked TraceToNextIntersection once to resolve the primary hit.
//
// The path is walked iteratively: diffuse bounces add their direct light
// contribution to a running sum and every other outcome either tints the
// throughput and continues or terminates the walk.
func (r *Ray) Trace() core.Vec3 {
	accum := core.Black

	for {
		if r.Color.Equals(core.Black) || r.Depth < 0 {
			return accum
		}

		if r.lightHit != nil {
			// Hit a lightsource. This path ends here
			r.paint(r.lightHit.Emission())
			return accum.Add(r.Color)
		}
		if r.thingHit == nil {
			// Missed all surfaces. This path ends here
			r.paint(r.scene.Sky())
			return accum.Add(r.Color)
		}

		r.paint(r.thingHit.Color())
		r.Depth--

		// Decide what the surface will behave like this time
		switch kind := r.thingHit.Interact(r.sampler); kind {
		case material.Diffuse:
			done, contribution := r.bounceDiffuse()
			accum = accum.Add(contribution)
			if done {
				return accum
			}
		case material.Metallic:
			if done := r.bounceMetallic(); done {
				return accum
			}
		case material.Reflect:
			if done := r.bounceReflect(); done {
				return accum
			}
		case material.Refract:
			if done := r.bounceRefract(); done {
				return accum
			}
		default:
			panic(fmt.Sprintf("tracer: surface returned unknown material kind %d", kind))
		}
	}
}

// bounceDiffuse performs Lambertian scattering. It returns the direct light
// contribution gathered at this vertex and whether the path ends here.
func (r *Ray) bounceDiffuse() (done bool, contribution core.Vec3) {
	normal := r.thingPart.NormalAt(r.Origin)
	contribution = r.Color.MultiplyVec(r.scene.DirectLight(r.Origin, normal, r.sampler))
	if r.Depth < 1 || r.roulette() {
		return true, contribution
	}
	r.Direction = core.SampleHemisphere(normal, r.sampler)
	r.paint(core.White.Multiply(r.Direction.Dot(normal)))
	r.TraceToNextIntersection()
	return false, contribution
}

// bounceMetallic reflects the ray and tints it by the Fresnel reflectance
func (r *Ray) bounceMetallic() (done bool) {
	_, n1, n2 := r.interfaceIndices()
	normal := r.thingPart.NormalAt(r.Origin)
	r.Direction = reflect(r.Direction, normal)
	cosTheta := r.Direction.Dot(normal)
	r.paint(core.White.Multiply(Schlick(n1, n2, cosTheta)))
	if r.Depth < 1 || r.roulette() {
		return true
	}
	r.TraceToNextIntersection()
	return false
}

// bounceReflect performs ideal mirror reflection
func (r *Ray) bounceReflect() (done bool) {
	if r.Depth < 1 || r.roulette() {
		return true
	}
	normal := r.thingPart.NormalAt(r.Origin)
	r.Direction = reflect(r.Direction, normal)
	r.TraceToNextIntersection()
	return false
}

// bounceRefract transmits the ray through a dielectric interface per Snell's
// law, falling back to total internal reflection past the critical angle.
// The medium stack is updated only when transmission actually occurs.
func (r *Ray) bounceRefract() (done bool) {
	if r.Depth < 1 || r.roulette() {
		return true
	}

	entering, n1, n2 := r.interfaceIndices()
	eta := n1 / n2
	normal := r.thingPart.NormalAt(r.Origin)
	cosTheta1 := math.Abs(r.Direction.Dot(normal))
	sinTheta2Squared := eta * eta * (1.0 - cosTheta1*cosTheta1)

	if sinTheta2Squared > 1 {
		// Total internal reflection
		r.Direction = reflect(r.Direction, normal)
	} else {
		cosTheta2 := math.Sqrt(1.0 - sinTheta2Squared)
		sign := -1.0
		if r.Direction.Dot(normal) < 0 {
			sign = 1.0
		}
		r.Direction = r.Direction.Multiply(eta).
			Add(normal.Multiply((eta*cosTheta1 - cosTheta2) * sign))
		if entering {
			r.Inside.Push(r.thingHit)
		} else {
			r.Inside.Pop()
		}
	}

	r.TraceToNextIntersection()
	return false
}

// interfaceIndices resolves the refractive indices on both sides of the
// interface the ray is about to cross. The ray is entering the hit surface
// unless that surface is already the innermost enclosing volume. The medium
// stack is only probed, never modified.
func (r *Ray) interfaceIndices() (entering bool, n1, n2 float64) {
	entering = r.Inside.Empty() || r.Inside.Top() != r.thingHit

	if r.Inside.Empty() {
		n1 = 1.0 // Vacuum
	} else {
		n1 = r.Inside.Top().RefractiveIndex()
	}

	if entering {
		n2 = r.thingHit.RefractiveIndex()
	} else if below, ok := r.Inside.PeekBelowTop(); ok {
		n2 = below.RefractiveIndex()
	} else {
		n2 = 1.0 // Vacuum
	}
	return entering, n1, n2
}

// roulette stochastically kills dim paths. Paths brighter than the
// configured limit always survive; dimmer paths survive with probability
// proportional to their brightest channel and are compensated so the
// estimator stays unbiased.
func (r *Ray) roulette() bool {
	maxColor := r.Color.MaxComponent()
	if r.rrLimit <= maxColor {
		return false
	}
	if maxColor < r.sampler.Get1D()*r.rrLimit {
		return true
	}
	r.Color = r.Color.Multiply(r.rrLimit / maxColor)
	return false
}

// TraceToNextIntersection finds the nearest surface along the ray and
// advances the origin to the hit point. Foreground surfaces are checked
// first; background surfaces are only considered when every foreground
// surface misses. Within a pass the smallest positive parameter wins, and
// an emitter at the same distance as a non-emitter displaces it. On a total
// miss all hit slots are left nil and the origin does not move.
func (r *Ray) TraceToNextIntersection() {
	r.lightHit = nil
	r.lightPart = nil
	r.thingHit = nil
	r.thingPart = nil

	query := core.NewRay(r.Origin, r.Direction)
	nearestT := math.Inf(1)

	nearestT = r.scanThings(query, false, nearestT)
	nearestT = r.scanLights(query, false, nearestT)

	if r.thingHit == nil && r.lightHit == nil {
		nearestT = r.scanThings(query, true, nearestT)
		nearestT = r.scanLights(query, true, nearestT)
	}

	if r.thingHit != nil || r.lightHit != nil {
		r.Origin = query.At(nearestT)
	}
}

// scanThings records the nearest non-emitter hit in the requested
// visibility class, displacing any emitter recorded at a greater distance
func (r *Ray) scanThings(query core.Ray, background bool, nearestT float64) float64 {
	for _, thing := range r.scene.Things() {
		if thing.IsBackground() != background {
			continue
		}
		for _, part := range thing.Parts() {
			if t := part.Intersect(query); t > 0 && t < nearestT {
				nearestT = t
				r.thingHit = thing
				r.thingPart = part
				r.lightHit = nil
				r.lightPart = nil
			}
		}
	}
	return nearestT
}

// scanLights records the nearest emitter hit in the requested visibility
// class. An emitter exactly as near as a recorded non-emitter displaces it.
func (r *Ray) scanLights(query core.Ray, background bool, nearestT float64) float64 {
	for _, light := range r.scene.Lights() {
		if light.IsBackground() != background {
			continue
		}
		for _, part := range light.Parts() {
			if t := part.Intersect(query); t > 0 && t <= nearestT {
				nearestT = t
				r.lightHit = light
				r.lightPart = part
				r.thingHit = nil
				r.thingPart = nil
			}
		}
	}
	return nearestT
}

// Schlick approximates the Fresnel reflectance of an interface between
// media with refractive indices n1 and n2 at the given incidence cosine.
// Matched indices form no optical interface and reflect nothing.
func Schlick(n1, n2, cosTheta float64) float64 {
	if n1 == n2 {
		return 0
	}
	r0 := (n1 - n2) * (n1 - n2) / ((n1 + n2) * (n1 + n2))
	return r0 + (1.0-r0)*math.Pow(1.0-cosTheta, 5)
}

// reflect mirrors a direction about a surface normal
func reflect(direction, normal core.Vec3) core.Vec3 {
	return direction.Subtract(normal.Multiply(2 * direction.Dot(normal)))
}
