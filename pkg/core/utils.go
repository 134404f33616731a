package core

import "math"

const (
	// Tolerance is the default tolerance for approximate float comparisons
	Tolerance = 1e-7

	// RayOffset is the distance secondary rays are pushed off a surface to
	// avoid re-intersecting it (surface acne)
	RayOffset = 1e-4
)

// ApproximatelyEqual reports whether a and b differ by less than Tolerance
func ApproximatelyEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// ApproximatelyZero reports whether a is within Tolerance of zero
func ApproximatelyZero(a float64) bool {
	return ApproximatelyEqual(a, 0)
}

// Deg2Rad converts degrees to radians
func Deg2Rad(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees
func Rad2Deg(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Map linearly remaps x from [xLow, xHigh] to [yLow, yHigh]
func Map(x, xLow, xHigh, yLow, yHigh float64) float64 {
	return (x-xLow)/(xHigh-xLow)*(yHigh-yLow) + yLow
}

// QuadraticRoots solves a*t² + b*t + c = 0 and returns the real roots in
// ascending order. A near-zero quadratic coefficient falls back to the
// linear solution rather than dividing by zero; a near-zero discriminant
// yields exactly one (tangent) root.
func QuadraticRoots(a, b, c float64) []float64 {
	if ApproximatelyZero(a) {
		if ApproximatelyZero(b) {
			return nil
		}
		return []float64{-c / b}
	}

	discriminant := b*b - 4*a*c
	if ApproximatelyZero(discriminant) {
		return []float64{-b / (2 * a)}
	}
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	r1 := (-b - sqrtD) / (2 * a)
	r2 := (-b + sqrtD) / (2 * a)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// DirectionInRadians returns the angle in [0, 2π) of the 2D vector from
// (refX, refY) to (targetX, targetY), measured counterclockwise from +x
func DirectionInRadians(refX, refY, targetX, targetY float64) float64 {
	angle := math.Atan2(targetY-refY, targetX-refX)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// AzimuthElevation converts a direction vector to spherical coordinates:
// radius, azimuth in [-π, π] around the y axis, and elevation in [-π/2, π/2]
func AzimuthElevation(v Vec3) (r, azimuth, elevation float64) {
	r = v.Length()
	if r == 0 {
		return 0, 0, 0
	}
	azimuth = math.Atan2(v.Z, v.X)
	elevation = math.Asin(v.Y / r)
	return r, azimuth, elevation
}

// AreaOfTriangle returns the area of the triangle with vertices a, b, c
func AreaOfTriangle(a, b, c Vec3) float64 {
	return 0.5 * b.Subtract(a).Cross(c.Subtract(a)).Length()
}
