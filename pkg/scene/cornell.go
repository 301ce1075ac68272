package scene

import (
	"github.com/df07/go-reference-pathtracer/pkg/core"
	"github.com/df07/go-reference-pathtracer/pkg/geometry"
	"github.com/df07/go-reference-pathtracer/pkg/material"
	"github.com/df07/go-reference-pathtracer/pkg/renderer"
)

// NewCornellScene creates the classic enclosed box: colored side walls, a
// ceiling area light, a mirror sphere and a glass sphere. The box interior
// spans [0,1] on each axis and the camera looks in through the open front.
func NewCornellScene() *Scene {
	s := NewScene(core.Black)
	s.CameraConfig = renderer.CameraConfig{
		LookFrom: core.NewVec3(0.5, 0.5, 2.2),
		LookAt:   core.NewVec3(0.5, 0.5, 0.5),
		VUp:      core.NewVec3(0, 1, 0),
		VFov:     30,
	}

	white := core.NewVec3(0.73, 0.73, 0.73)
	red := core.NewVec3(0.65, 0.05, 0.05)
	green := core.NewVec3(0.12, 0.45, 0.15)

	// Walls are quads wound so their normals face into the box
	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0))
	ceiling := geometry.NewQuad(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	back := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	left := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1))
	right := geometry.NewQuad(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))

	s.AddObject(NewObject(white, 1.0, material.NewDiffuse(), floor, ceiling, back))
	s.AddObject(NewObject(red, 1.0, material.NewDiffuse(), left))
	s.AddObject(NewObject(green, 1.0, material.NewDiffuse(), right))

	// Mirror sphere left, glass sphere right
	s.AddObject(NewObject(white, 1.0, material.NewMirror(),
		geometry.NewSphere(core.NewVec3(0.3, 0.18, 0.35), 0.18)))
	s.AddObject(NewObject(core.White, 1.5, material.NewGlass(),
		geometry.NewSphere(core.NewVec3(0.7, 0.16, 0.6), 0.16)))

	// Area light slightly below the ceiling, facing down
	lamp := geometry.NewQuad(
		core.NewVec3(0.35, 0.999, 0.35),
		core.NewVec3(0.3, 0, 0),
		core.NewVec3(0, 0, 0.3),
	)
	s.AddLight(NewLightSource(core.NewVec3(15, 15, 15), lamp))

	return s
}
