package renderer

import (
	"math"

	"github.com/df07/go-reference-pathtracer/pkg/core"
)

// CameraConfig describes a pinhole camera placement
type CameraConfig struct {
	LookFrom core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera is aimed at
	VUp      core.Vec3 // World up vector, typically (0,1,0)
	VFov     float64   // Vertical field of view in degrees
}

// Camera generates primary rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera for the given image dimensions
func NewCamera(config CameraConfig, width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis: w looks backward, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay generates a primary ray through screen coordinates (s, t), with
// 0 <= s,t <= 1 mapping the viewport left-to-right and bottom-to-top. The
// returned direction is unit length.
func (c *Camera) GetRay(s, t float64) (origin, direction core.Vec3) {
	direction = c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Normalize()
	return c.origin, direction
}
