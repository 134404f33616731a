package geometry

import (
	"math"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// Sphere is a quadric sphere given by center and radius
type Sphere struct {
	QuadricSurface
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		QuadricSurface: NewQuadricSurface(SphereParams(radius), center),
		Radius:         radius,
	}
}

// TexCoords maps a surface point to (u,v) by azimuth and elevation around
// the sphere's center
func (s *Sphere) TexCoords(pt core.Vec3) (u, v float64) {
	_, azimuth, elevation := core.AzimuthElevation(pt.Subtract(s.Center))
	u = core.Map(azimuth, -math.Pi, math.Pi, 0, 1)
	v = 1.0 - core.Map(elevation, -math.Pi/2, math.Pi/2, 0, 1)
	return u, v
}

// Ellipsoid is a quadric ellipsoid given by center and semi-axis sizes
type Ellipsoid struct {
	QuadricSurface
	Size core.Vec3
}

// NewEllipsoid creates a new axis-aligned ellipsoid
func NewEllipsoid(center, size core.Vec3) *Ellipsoid {
	return &Ellipsoid{
		QuadricSurface: NewQuadricSurface(EllipsoidParams(size), center),
		Size:           size,
	}
}
