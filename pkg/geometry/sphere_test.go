package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-reference-pathtracer/pkg/core"
)

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "Direct hit through center",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 4.0,
		},
		{
			name:      "Miss to the side",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "Tangent grazing hit",
			ray:       core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 5.0,
		},
		{
			name:      "Sphere behind ray",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
		{
			name:      "Origin inside sphere hits far wall",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphere.Intersect(tt.ray)
			if tt.expectHit {
				if got == 0 {
					t.Fatal("Expected a hit, got a miss")
				}
				if math.Abs(got-tt.expectedT) > 1e-9 {
					t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
				}
			} else if got != 0 {
				t.Errorf("Expected a miss, got t=%f", got)
			}
		})
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0)

	point := core.NewVec3(2, 0, 0)
	normal := sphere.NormalAt(point)
	if normal.Subtract(core.UnitX).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", core.UnitX, normal)
	}
	if math.Abs(normal.Length()-1.0) > 1e-12 {
		t.Errorf("Normal should be unit length, got %f", normal.Length())
	}
}

func TestSphere_SamplePoint(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		point := sphere.SamplePoint(sampler)
		distance := point.Subtract(sphere.Center).Length()
		if math.Abs(distance-sphere.Radius) > 1e-9 {
			t.Fatalf("Sampled point should lie on the sphere, distance %f", distance)
		}
	}
}

func TestSphere_Area(t *testing.T) {
	sphere := NewSphere(core.Zero, 2.0)
	expected := 16 * math.Pi
	if math.Abs(sphere.Area()-expected) > 1e-9 {
		t.Errorf("Expected area %f, got %f", expected, sphere.Area())
	}
}
