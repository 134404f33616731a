package geometry

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// Plane is an infinite plane through Point with unit Normal
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
}

// NewPlane creates a new plane from a point and a normal
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// NewPlaneFromPoints creates the plane supporting three points given in
// counterclockwise order
func NewPlaneFromPoints(p0, p1, p2 core.Vec3) *Plane {
	normal := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	return &Plane{Point: p0, Normal: normal}
}

// ClosestIntersection intersects the ray with the plane. There is no hit
// when the ray is parallel to the plane or the intersection lies behind
// the ray's origin.
func (p *Plane) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if core.ApproximatelyZero(denominator) {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < 0 {
		return nil, false
	}

	return &HitRecord{
		T:      t,
		Point:  ray.At(t),
		Normal: p.Normal,
	}, true
}

// TexCoords returns (0, 0); infinite planes have no finite parametrization
func (p *Plane) TexCoords(pt core.Vec3) (u, v float64) {
	return 0, 0
}
