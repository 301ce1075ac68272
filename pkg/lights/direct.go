package lights

import (
	"math"

	"github.com/df07/go-reference-pathtracer/pkg/core"
	"github.com/df07/go-reference-pathtracer/pkg/tracer"
)

// SampleablePart is a surface part a shadow ray can be aimed at
type SampleablePart interface {
	tracer.Part
	Area() float64
	SamplePoint(sampler core.Sampler) core.Vec3
}

// Occluder answers shadow-ray visibility queries between two points
type Occluder interface {
	Occluded(from, to core.Vec3) bool
}

// Direct estimates the emitter radiance directly visible from a surface
// point with the given outward normal. Each sampleable emitter part
// contributes one area sample weighted by the geometric term and the
// Lambertian reflectance factor; occluded or back-facing samples contribute
// nothing. Background emitters act as environment and are skipped — their
// radiance arrives through the sky term instead.
func Direct(point, normal core.Vec3, lightList []tracer.Light, occluder Occluder, sampler core.Sampler) core.Vec3 {
	total := core.Black

	for _, light := range lightList {
		if light.IsBackground() {
			continue
		}
		for _, part := range light.Parts() {
			samplePart, ok := part.(SampleablePart)
			if !ok {
				continue
			}

			sample := samplePart.SamplePoint(sampler)
			toLight := sample.Subtract(point)
			distanceSquared := toLight.LengthSquared()
			if distanceSquared == 0 {
				continue
			}
			direction := toLight.Normalize()

			cosSurface := direction.Dot(normal)
			if cosSurface <= 0 {
				continue // Light is behind the surface
			}
			cosLight := direction.Negate().Dot(samplePart.NormalAt(sample))
			if cosLight <= 0 {
				continue // Sample faces away from the surface
			}
			if occluder.Occluded(point, sample) {
				continue
			}

			geometric := cosSurface * cosLight / distanceSquared
			weight := geometric * samplePart.Area() / math.Pi
			total = total.Add(light.Emission().Multiply(weight))
		}
	}

	return total
}
