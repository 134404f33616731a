package geometry

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// QuadricParameters are the ten coefficients of the general quadric surface
// equation Ax² + By² + Cz² + Dxy + Exz + Fyz + Gx + Hy + Iz + J = 0,
// expressed relative to the shape's own center. Callers translate rays into
// shape-local space before solving.
type QuadricParameters struct {
	A, B, C, D, E, F, G, H, I, J float64
}

// SphereParams returns the coefficients of a sphere of radius r centered on
// the origin
func SphereParams(r float64) QuadricParameters {
	return QuadricParameters{A: 1, B: 1, C: 1, J: -r * r}
}

// CylinderXParams returns the coefficients of an infinite cylinder of
// radius r around the x axis
func CylinderXParams(r float64) QuadricParameters {
	r2 := r * r
	return QuadricParameters{B: 1 / r2, C: 1 / r2, J: -1}
}

// CylinderYParams returns the coefficients of an infinite cylinder of
// radius r around the y axis
func CylinderYParams(r float64) QuadricParameters {
	r2 := r * r
	return QuadricParameters{A: 1 / r2, C: 1 / r2, J: -1}
}

// CylinderZParams returns the coefficients of an infinite cylinder of
// radius r around the z axis
func CylinderZParams(r float64) QuadricParameters {
	r2 := r * r
	return QuadricParameters{A: 1 / r2, B: 1 / r2, J: -1}
}

// EllipsoidParams returns the coefficients of an axis-aligned ellipsoid
// with the given semi-axis sizes
func EllipsoidParams(size core.Vec3) QuadricParameters {
	return QuadricParameters{
		A: 1 / (size.X * size.X),
		B: 1 / (size.Y * size.Y),
		C: 1 / (size.Z * size.Z),
		J: -1,
	}
}

// ConeYParams returns the coefficients of a double cone around the y axis
// with apex at the origin, opening to radius r at height h
func ConeYParams(r, h float64) QuadricParameters {
	k := (h * h) / (r * r)
	return QuadricParameters{A: k, B: -1, C: k}
}

// QuadricSurface is an implicit quadric positioned at Center. Sphere,
// cylinder, cone and ellipsoid shapes are quadrics with specific
// coefficients plus, for the bounded variants, an axial post-filter.
type QuadricSurface struct {
	Params QuadricParameters
	Center core.Vec3
}

// NewQuadricSurface creates a quadric surface with the given coefficients
// and center
func NewQuadricSurface(params QuadricParameters, center core.Vec3) QuadricSurface {
	return QuadricSurface{Params: params, Center: center}
}

// coefficients substitutes the ray parametrization into the quadric
// equation, yielding the quadratic Aq·t² + Bq·t + Cq = 0. The ray origin is
// translated into shape-local space first.
func (q *QuadricSurface) coefficients(ray core.Ray) (aq, bq, cq float64) {
	ro := ray.Origin.Subtract(q.Center)
	rd := ray.Direction
	p := q.Params

	aq = p.A*rd.X*rd.X +
		p.B*rd.Y*rd.Y +
		p.C*rd.Z*rd.Z +
		p.D*rd.X*rd.Y +
		p.E*rd.X*rd.Z +
		p.F*rd.Y*rd.Z

	bq = 2*p.A*ro.X*rd.X +
		2*p.B*ro.Y*rd.Y +
		2*p.C*ro.Z*rd.Z +
		p.D*(ro.X*rd.Y+ro.Y*rd.X) +
		p.E*(ro.X*rd.Z+ro.Z*rd.X) +
		p.F*(ro.Y*rd.Z+ro.Z*rd.Y) +
		p.G*rd.X + p.H*rd.Y + p.I*rd.Z

	cq = p.A*ro.X*ro.X +
		p.B*ro.Y*ro.Y +
		p.C*ro.Z*ro.Z +
		p.D*ro.X*ro.Y +
		p.E*ro.X*ro.Z +
		p.F*ro.Y*ro.Z +
		p.G*ro.X + p.H*ro.Y + p.I*ro.Z + p.J

	return aq, bq, cq
}

// Intersections returns the intersections in front of the ray origin,
// sorted by distance. Non-positive roots are discarded. At most two
// intersections are possible.
func (q *QuadricSurface) Intersections(ray core.Ray) []HitRecord {
	aq, bq, cq := q.coefficients(ray)

	var hits []HitRecord
	for _, t := range core.QuadraticRoots(aq, bq, cq) {
		if t <= 0 {
			continue
		}
		point := ray.At(t)
		hits = append(hits, HitRecord{
			T:      t,
			Point:  point,
			Normal: q.NormalAt(point),
		})
	}
	return hits
}

// ClosestIntersection returns the nearest positive-t intersection
func (q *QuadricSurface) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	hits := q.Intersections(ray)
	if len(hits) == 0 {
		return nil, false
	}
	return &hits[0], true
}

// NormalAt returns the unit surface normal at a point on the quadric: the
// normalized gradient of the quadric scalar field. The normal is not
// flipped here; orienting it toward the viewer is the ray tracer's job.
func (q *QuadricSurface) NormalAt(point core.Vec3) core.Vec3 {
	pt := point.Subtract(q.Center)
	p := q.Params
	return core.NewVec3(
		2*p.A*pt.X+p.D*pt.Y+p.E*pt.Z+p.G,
		2*p.B*pt.Y+p.D*pt.X+p.F*pt.Z+p.H,
		2*p.C*pt.Z+p.E*pt.X+p.F*pt.Y+p.I,
	).Normalize()
}

// TexCoords returns (0, 0); specific quadrics override this where a
// meaningful surface parametrization exists
func (q *QuadricSurface) TexCoords(pt core.Vec3) (u, v float64) {
	return 0, 0
}
