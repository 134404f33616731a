package geometry

import (
	"math"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// CylinderY is a finite open cylinder around the y axis through its center.
// The infinite quadric supplies the candidate roots; the length bound is a
// post-filter on the axial coordinate rather than a term of the quadric.
type CylinderY struct {
	QuadricSurface
	Radius float64
	Length float64
}

// NewCylinderY creates a new open cylinder around the y axis
func NewCylinderY(center core.Vec3, radius, length float64) *CylinderY {
	return &CylinderY{
		QuadricSurface: NewQuadricSurface(CylinderYParams(radius), center),
		Radius:         radius,
		Length:         length,
	}
}

// ClosestIntersection returns the nearest quadric root whose intercept lies
// within the cylinder's length bound. Roots are tried in ascending order,
// so a ray entering through the open end correctly hits the far wall.
func (c *CylinderY) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	halfLen := c.Length / 2
	for _, hit := range c.Intersections(ray) {
		if math.Abs(hit.Point.Y-c.Center.Y) < halfLen {
			return &hit, true
		}
	}
	return nil, false
}

// TexCoords maps a surface point by azimuth around the axis (u) and height
// along it (v), with v=0 at the top rim
func (c *CylinderY) TexCoords(pt core.Vec3) (u, v float64) {
	bottom := c.Center.Y - c.Length/2
	top := c.Center.Y + c.Length/2
	azimuth := core.DirectionInRadians(c.Center.X, c.Center.Z, pt.X, pt.Z)

	u = core.Map(azimuth, 0, 2*math.Pi, 0, 1)
	v = core.Map(pt.Y, bottom, top, 1, 0)
	return u, v
}

// CylinderX is a finite open cylinder around the x axis through its center
type CylinderX struct {
	QuadricSurface
	Radius float64
	Length float64
}

// NewCylinderX creates a new open cylinder around the x axis
func NewCylinderX(center core.Vec3, radius, length float64) *CylinderX {
	return &CylinderX{
		QuadricSurface: NewQuadricSurface(CylinderXParams(radius), center),
		Radius:         radius,
		Length:         length,
	}
}

// ClosestIntersection returns the nearest in-bound quadric root
func (c *CylinderX) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	halfLen := c.Length / 2
	for _, hit := range c.Intersections(ray) {
		if math.Abs(hit.Point.X-c.Center.X) < halfLen {
			return &hit, true
		}
	}
	return nil, false
}

// CylinderZ is a finite open cylinder around the z axis through its center
type CylinderZ struct {
	QuadricSurface
	Radius float64
	Length float64
}

// NewCylinderZ creates a new open cylinder around the z axis
func NewCylinderZ(center core.Vec3, radius, length float64) *CylinderZ {
	return &CylinderZ{
		QuadricSurface: NewQuadricSurface(CylinderZParams(radius), center),
		Radius:         radius,
		Length:         length,
	}
}

// ClosestIntersection returns the nearest in-bound quadric root
func (c *CylinderZ) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	halfLen := c.Length / 2
	for _, hit := range c.Intersections(ray) {
		if math.Abs(hit.Point.Z-c.Center.Z) < halfLen {
			return &hit, true
		}
	}
	return nil, false
}

// ClosedCylinderY is a y-axis cylinder closed by disk caps at both ends
type ClosedCylinderY struct {
	*CylinderY
	top    *Disk
	bottom *Disk
}

// NewClosedCylinderY creates a capped cylinder around the y axis
func NewClosedCylinderY(center core.Vec3, radius, length float64) *ClosedCylinderY {
	return &ClosedCylinderY{
		CylinderY: NewCylinderY(center, radius, length),
		top: NewDisk(
			core.NewVec3(center.X, center.Y+length/2, center.Z),
			core.NewVec3(0, 1, 0),
			radius,
		),
		bottom: NewDisk(
			core.NewVec3(center.X, center.Y-length/2, center.Z),
			core.NewVec3(0, -1, 0),
			radius,
		),
	}
}

// ClosestIntersection combines the tube and both caps by a three-way
// nearest-of comparison
func (c *ClosedCylinderY) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	var closest *HitRecord

	candidates := [3]Shape{c.CylinderY, c.top, c.bottom}
	for _, shape := range candidates {
		if hit, ok := shape.ClosestIntersection(ray); ok {
			if closest == nil || hit.T < closest.T {
				closest = hit
			}
		}
	}

	return closest, closest != nil
}

// TexCoords delegates to the cap or tube the point lies on. Cap intercepts
// lie exactly at the axial extremes, so the comparison carries a tolerance.
func (c *ClosedCylinderY) TexCoords(pt core.Vec3) (u, v float64) {
	if pt.Y >= c.Center.Y+c.Length/2-core.Tolerance {
		return c.top.TexCoords(pt)
	}
	if pt.Y <= c.Center.Y-c.Length/2+core.Tolerance {
		return c.bottom.TexCoords(pt)
	}
	return c.CylinderY.TexCoords(pt)
}
