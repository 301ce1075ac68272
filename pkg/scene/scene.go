package scene

import (
	"github.com/df07/go-reference-pathtracer/pkg/core"
	"github.com/df07/go-reference-pathtracer/pkg/lights"
	"github.com/df07/go-reference-pathtracer/pkg/material"
	"github.com/df07/go-reference-pathtracer/pkg/renderer"
	"github.com/df07/go-reference-pathtracer/pkg/tracer"
)

// shadowBias keeps shadow rays from re-hitting the emitter they are aimed at
const shadowBias = 1e-3

// Object is a non-emitting surface: a material mix and albedo shared by one
// or more geometric parts
type Object struct {
	parts           []tracer.Part
	color           core.Vec3
	refractiveIndex float64
	mix             material.Mix
	background      bool
}

// NewObject creates a surface from its parts
func NewObject(color core.Vec3, refractiveIndex float64, mix material.Mix, parts ...tracer.Part) *Object {
	return &Object{
		parts:           parts,
		color:           color,
		refractiveIndex: refractiveIndex,
		mix:             mix,
	}
}

// SetBackground marks the object as part of the far environment
func (o *Object) SetBackground(background bool) *Object {
	o.background = background
	return o
}

func (o *Object) IsBackground() bool       { return o.background }
func (o *Object) Parts() []tracer.Part     { return o.parts }
func (o *Object) Color() core.Vec3         { return o.color }
func (o *Object) RefractiveIndex() float64 { return o.refractiveIndex }

// Interact draws the behavior this surface exhibits for one hit
func (o *Object) Interact(sampler core.Sampler) material.Kind {
	return o.mix.Choose(sampler)
}

// LightSource is an emitting surface
type LightSource struct {
	parts      []tracer.Part
	emission   core.Vec3
	background bool
}

// NewLightSource creates an emitter from its parts
func NewLightSource(emission core.Vec3, parts ...tracer.Part) *LightSource {
	return &LightSource{parts: parts, emission: emission}
}

// SetBackground marks the emitter as part of the far environment
func (l *LightSource) SetBackground(background bool) *LightSource {
	l.background = background
	return l
}

func (l *LightSource) IsBackground() bool   { return l.background }
func (l *LightSource) Parts() []tracer.Part { return l.parts }
func (l *LightSource) Emission() core.Vec3  { return l.emission }

// Scene holds the surfaces and emitters of a world together with its sky
// and camera placement. It is read-only during tracing.
type Scene struct {
	CameraConfig renderer.CameraConfig

	things []tracer.Thing
	lights []tracer.Light
	sky    core.Vec3
}

// NewScene creates an empty scene with the given sky color
func NewScene(sky core.Vec3) *Scene {
	return &Scene{sky: sky}
}

// AddObject adds a non-emitting surface to the scene
func (s *Scene) AddObject(object *Object) {
	s.things = append(s.things, object)
}

// AddLight adds an emitting surface to the scene
func (s *Scene) AddLight(light *LightSource) {
	s.lights = append(s.lights, light)
}

func (s *Scene) Things() []tracer.Thing { return s.things }
func (s *Scene) Lights() []tracer.Light { return s.lights }
func (s *Scene) Sky() core.Vec3         { return s.sky }

// DirectLight estimates the emitter radiance directly visible from a
// surface point
func (s *Scene) DirectLight(point, normal core.Vec3, sampler core.Sampler) core.Vec3 {
	return lights.Direct(point, normal, s.lights, s, sampler)
}

// Occluded reports whether any non-emitting surface blocks the open segment
// between two points
func (s *Scene) Occluded(from, to core.Vec3) bool {
	segment := to.Subtract(from)
	distance := segment.Length()
	if distance == 0 {
		return false
	}
	shadowRay := core.NewRay(from, segment.Multiply(1.0/distance))

	for _, thing := range s.things {
		for _, part := range thing.Parts() {
			if t := part.Intersect(shadowRay); t > 0 && t < distance-shadowBias {
				return true
			}
		}
	}
	return false
}
