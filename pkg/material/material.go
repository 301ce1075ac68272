package material

import (
	"github.com/df07/go-reference-pathtracer/pkg/core"
)

// Kind identifies the behavior a surface exhibits for one interaction
type Kind int

const (
	// Diffuse is Lambertian scattering with a direct light contribution
	Diffuse Kind = iota
	// Metallic is Fresnel-modulated specular reflection (Schlick approximation)
	Metallic
	// Reflect is an ideal specular mirror
	Reflect
	// Refract is an ideal dielectric: refract or totally internally reflect
	Refract
)

// String returns the name of the material kind
func (k Kind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Metallic:
		return "metallic"
	case Reflect:
		return "reflect"
	case Refract:
		return "refract"
	}
	return "unknown"
}

// Mix holds the relative weights of the four surface behaviors. A surface
// draws one behavior per interaction with probability proportional to its
// weight. Weights need not sum to one; negative weights are treated as zero.
type Mix struct {
	Diffuse  float64
	Metallic float64
	Reflect  float64
	Refract  float64
}

// NewDiffuse returns a mix that always scatters diffusely
func NewDiffuse() Mix {
	return Mix{Diffuse: 1}
}

// NewMetallic returns a mix that always reflects with Fresnel modulation
func NewMetallic() Mix {
	return Mix{Metallic: 1}
}

// NewMirror returns a mix that always reflects ideally
func NewMirror() Mix {
	return Mix{Reflect: 1}
}

// NewGlass returns a mix that always refracts
func NewGlass() Mix {
	return Mix{Refract: 1}
}

// total returns the sum of the non-negative weights
func (m Mix) total() float64 {
	return max(m.Diffuse, 0) + max(m.Metallic, 0) + max(m.Reflect, 0) + max(m.Refract, 0)
}

// Choose draws one behavior from the mix. A mix with no positive weight
// always returns Diffuse.
func (m Mix) Choose(sampler core.Sampler) Kind {
	total := m.total()
	if total <= 0 {
		return Diffuse
	}

	u := sampler.Get1D() * total
	u -= max(m.Diffuse, 0)
	if u < 0 {
		return Diffuse
	}
	u -= max(m.Metallic, 0)
	if u < 0 {
		return Metallic
	}
	u -= max(m.Reflect, 0)
	if u < 0 {
		return Reflect
	}
	return Refract
}
