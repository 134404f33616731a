package geometry

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// ConeY is a finite cone around the y axis with its apex at Center, opening
// upward to Radius at Height. There is no cap on the open end. The height
// bound is a post-filter on the quadric roots, which also discards the
// mirror half of the underlying double cone.
type ConeY struct {
	QuadricSurface
	Radius float64
	Height float64
}

// NewConeY creates a new cone around the y axis
func NewConeY(center core.Vec3, radius, height float64) *ConeY {
	return &ConeY{
		QuadricSurface: NewQuadricSurface(ConeYParams(radius, height), center),
		Radius:         radius,
		Height:         height,
	}
}

// ClosestIntersection returns the nearest quadric root between the apex and
// the open top. A ray parallel to the cone's axis produces a degenerate
// quadratic, handled by the solver's linear fallback.
func (c *ConeY) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	for _, hit := range c.Intersections(ray) {
		h := hit.Point.Y - c.Center.Y
		if h >= 0 && h <= c.Height {
			return &hit, true
		}
	}
	return nil, false
}
