package scene

import (
	"github.com/df07/go-reference-pathtracer/pkg/core"
	"github.com/df07/go-reference-pathtracer/pkg/geometry"
	"github.com/df07/go-reference-pathtracer/pkg/material"
	"github.com/df07/go-reference-pathtracer/pkg/renderer"
)

// NewDefaultScene creates an open-air arrangement: a gray ground plane,
// three spheres showing off the material behaviors, a sphere lamp and a
// blue sky
func NewDefaultScene() *Scene {
	s := NewScene(core.NewVec3(0.5, 0.7, 1.0))
	s.CameraConfig = renderer.CameraConfig{
		LookFrom: core.NewVec3(0, 1.2, 4),
		LookAt:   core.NewVec3(0, 0.6, 0),
		VUp:      core.NewVec3(0, 1, 0),
		VFov:     40,
	}

	ground := geometry.NewPlane(core.Zero, core.UnitY)
	s.AddObject(NewObject(core.NewVec3(0.5, 0.5, 0.5), 1.0, material.NewDiffuse(), ground))

	// Matte, polished metal, and glass
	s.AddObject(NewObject(core.NewVec3(0.7, 0.3, 0.3), 1.0, material.NewDiffuse(),
		geometry.NewSphere(core.NewVec3(-1.3, 0.6, 0), 0.6)))
	s.AddObject(NewObject(core.NewVec3(0.9, 0.9, 0.9), 2.5, material.Mix{Metallic: 0.8, Reflect: 0.2},
		geometry.NewSphere(core.NewVec3(0, 0.6, 0), 0.6)))
	s.AddObject(NewObject(core.White, 1.5, material.NewGlass(),
		geometry.NewSphere(core.NewVec3(1.3, 0.6, 0), 0.6)))

	s.AddLight(NewLightSource(core.NewVec3(12, 12, 12),
		geometry.NewSphere(core.NewVec3(0, 4, 2), 0.8)))

	return s
}

// ByName returns the builder registered under the given scene name
func ByName(name string) (*Scene, bool) {
	switch name {
	case "cornell":
		return NewCornellScene(), true
	case "default":
		return NewDefaultScene(), true
	}
	return nil, false
}

// Names lists the scenes available to CLI and web callers
func Names() []string {
	return []string{"default", "cornell"}
}
