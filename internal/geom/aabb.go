package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// epsilon guards divisions by near-zero vector lengths.
const epsilon = 1e-4

// AABB is an axis-aligned box stored as min/max corners. Terrain blocks are
// axis-aligned and stationary, so interval overlap per axis is all we need.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB builds a box and panics if any min component exceeds its max.
// Inverted boxes only come from broken level data or broken code.
func NewAABB(min, max mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			panic(fmt.Sprintf("geom: inverted AABB on axis %d: min %v > max %v", i, min[i], max[i]))
		}
	}
	return AABB{Min: min, Max: max}
}

// AABBFromCenter creates a box from a center point and full size dimensions.
func AABBFromCenter(center, size mgl32.Vec3) AABB {
	half := size.Mul(0.5)
	return NewAABB(center.Sub(half), center.Add(half))
}

func (a AABB) Center() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) Size() mgl32.Vec3 {
	return a.Max.Sub(a.Min)
}

// Expand grows the box by r on every side, turning a sphere-vs-box test
// into a point-vs-inflated-box test.
func (a AABB) Expand(r float32) AABB {
	d := mgl32.Vec3{r, r, r}
	return AABB{Min: a.Min.Sub(d), Max: a.Max.Add(d)}
}

// ContainsPoint reports whether p lies within [min,max] on every axis, inclusive.
func (a AABB) ContainsPoint(p mgl32.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Intersects reports whether two boxes overlap on all three axes.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

// ClosestPoint clamps p per axis into the box's interval.
func (a AABB) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), a.Min.X(), a.Max.X()),
		mgl32.Clamp(p.Y(), a.Min.Y(), a.Max.Y()),
		mgl32.Clamp(p.Z(), a.Min.Z(), a.Max.Z()),
	}
}

// SphereAABB tests a sphere against a box. On overlap it returns the
// penetration depth, a unit normal pointing from the box toward the sphere,
// and the contact point on the box surface. Contact at exactly radius
// distance is not a hit (strict overlap, same convention as SphereOverlap).
//
// When the sphere center sits inside the box the closest-point normal is
// ill-defined, so we fall back to the axis where the center is nearest a
// face and push out through that face.
func SphereAABB(s Sphere, box AABB) (bool, float32, mgl32.Vec3, mgl32.Vec3) {
	// Cheap reject: the center must lie inside the radius-inflated box.
	if !box.Expand(s.Radius).ContainsPoint(s.Center) {
		return false, 0, mgl32.Vec3{}, mgl32.Vec3{}
	}

	closest := box.ClosestPoint(s.Center)
	diff := s.Center.Sub(closest)
	dist := diff.Len()

	if dist >= epsilon {
		if dist >= s.Radius {
			return false, 0, mgl32.Vec3{}, mgl32.Vec3{}
		}
		normal := diff.Mul(1 / dist)
		return true, s.Radius - dist, normal, closest
	}

	// Center inside the box: find the face with minimum separation.
	normal, faceDist := interiorFaceNormal(s.Center, box)
	point := s.Center.Sub(normal.Mul(faceDist))
	return true, s.Radius + faceDist, normal, point
}

// interiorFaceNormal returns the outward normal of the box face nearest to
// an interior point p, plus the distance from p to that face.
func interiorFaceNormal(p mgl32.Vec3, box AABB) (mgl32.Vec3, float32) {
	best := box.Max.X() - p.X()
	normal := mgl32.Vec3{1, 0, 0}

	if d := p.X() - box.Min.X(); d < best {
		best = d
		normal = mgl32.Vec3{-1, 0, 0}
	}
	if d := box.Max.Y() - p.Y(); d < best {
		best = d
		normal = mgl32.Vec3{0, 1, 0}
	}
	if d := p.Y() - box.Min.Y(); d < best {
		best = d
		normal = mgl32.Vec3{0, -1, 0}
	}
	if d := box.Max.Z() - p.Z(); d < best {
		best = d
		normal = mgl32.Vec3{0, 0, 1}
	}
	if d := p.Z() - box.Min.Z(); d < best {
		best = d
		normal = mgl32.Vec3{0, 0, -1}
	}
	return normal, best
}
