package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a center plus radius, used for marbles and the player's
// camera bounding volume.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// NewSphere builds a sphere and panics on a non-positive radius.
// A degenerate sphere is a programming error, not a recoverable input.
func NewSphere(center mgl32.Vec3, radius float32) Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("geom: sphere radius must be positive, got %v", radius))
	}
	return Sphere{Center: center, Radius: radius}
}

// SphereOverlap reports whether a and b interpenetrate. Contact at exactly
// radius distance does not count (strict overlap). The returned normal is a
// unit vector from a's center toward b's center; when the centers coincide
// it falls back to +X so callers never see a zero-length normal.
func SphereOverlap(a, b Sphere) (bool, float32, mgl32.Vec3) {
	offset := b.Center.Sub(a.Center)
	dist := offset.Len()
	minDist := a.Radius + b.Radius

	if dist >= minDist {
		return false, 0, mgl32.Vec3{}
	}
	if dist < epsilon {
		// Coincident centers: direction is undefined, pick a fixed axis.
		return true, minDist, mgl32.Vec3{1, 0, 0}
	}
	return true, minDist - dist, offset.Mul(1 / dist)
}
