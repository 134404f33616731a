package geometry

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// Triangle is a triangle with vertices given in counterclockwise order
type Triangle struct {
	A, B, C core.Vec3

	plane *Plane
	area  float64
}

// NewTriangle creates a new triangle
func NewTriangle(a, b, c core.Vec3) *Triangle {
	return &Triangle{
		A:     a,
		B:     b,
		C:     c,
		plane: NewPlaneFromPoints(a, b, c),
		area:  core.AreaOfTriangle(a, b, c),
	}
}

// ClosestIntersection computes the supporting plane's hit and rejects
// points outside the triangle
func (tr *Triangle) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	hit, ok := tr.plane.ClosestIntersection(ray)
	if !ok {
		return nil, false
	}
	if !tr.inside(hit.Point) {
		return nil, false
	}
	return hit, true
}

// inside reports whether a point on the supporting plane lies within the
// triangle: the three sub-triangle areas formed with the point must sum to
// the triangle's own area within floating tolerance
func (tr *Triangle) inside(pt core.Vec3) bool {
	sum := core.AreaOfTriangle(tr.A, tr.B, pt) +
		core.AreaOfTriangle(tr.A, pt, tr.C) +
		core.AreaOfTriangle(pt, tr.B, tr.C)
	return core.ApproximatelyEqual(tr.area, sum)
}

// TexCoords returns the two independent barycentric ratios of the point
func (tr *Triangle) TexCoords(pt core.Vec3) (u, v float64) {
	u = core.AreaOfTriangle(pt, tr.B, tr.C) / tr.area
	v = core.AreaOfTriangle(tr.A, pt, tr.C) / tr.area
	return u, v
}
