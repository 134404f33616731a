package geometry

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// Disk is a circular disk: a plane hit bounded by distance from the center
type Disk struct {
	Center core.Vec3
	Normal core.Vec3
	Radius float64

	plane *Plane
	frame core.Frame // Local frame for texture coordinates
}

// NewDisk creates a new disk from center, normal and radius
func NewDisk(center, normal core.Vec3, radius float64) *Disk {
	n := normal.Normalize()
	return &Disk{
		Center: center,
		Normal: n,
		Radius: radius,
		plane:  NewPlane(center, n),
		frame:  core.NewFrameFromNormal(center, n),
	}
}

// ClosestIntersection computes the supporting plane's hit and rejects it
// when the intercept falls outside the disk's radius
func (d *Disk) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	hit, ok := d.plane.ClosestIntersection(ray)
	if !ok {
		return nil, false
	}
	if hit.Point.Subtract(d.Center).Length() > d.Radius {
		return nil, false
	}
	return hit, true
}

// TexCoords projects the surface point into the disk's local frame and
// normalizes by the radius
func (d *Disk) TexCoords(pt core.Vec3) (u, v float64) {
	local := d.frame.ToLocal(pt)
	u = core.Map(local.X, -d.Radius, d.Radius, 0, 1)
	v = 1.0 - core.Map(local.Y, -d.Radius, d.Radius, 0, 1)
	return u, v
}
