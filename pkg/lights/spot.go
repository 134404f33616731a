package lights

import (
	"math"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/material"
)

// SpotLight is a positional light restricted to a cone: a point receives
// its diffuse and specular contribution only when the angle between the
// spot direction and the vector to the point is within half the field of
// view. Outside the cone only the ambient term survives, matching the
// treatment of shadowed points.
type SpotLight struct {
	PositionalLight
	Dir core.Vec3 // Unit cone direction
	FOV float64   // Full cone angle in radians
}

// NewSpotLight creates a world-tied spotlight that is on
func NewSpotLight(pos, dir core.Vec3, fov float64, color core.Vec3) *SpotLight {
	return &SpotLight{
		PositionalLight: *NewPositionalLight(pos, color),
		Dir:             dir.Normalize(),
		FOV:             fov,
	}
}

// SetDir updates the spotlight's cone direction, normalizing it
func (s *SpotLight) SetDir(dx, dy, dz float64) {
	s.Dir = core.NewVec3(dx, dy, dz).Normalize()
}

// InCone reports whether an intercept point falls within the spotlight's
// cone
func (s *SpotLight) InCone(eyeFrame core.Frame, intercept core.Vec3) bool {
	toPoint := intercept.Subtract(s.ActualPosition(eyeFrame))
	if core.ApproximatelyZero(toPoint.Length()) {
		return true
	}
	cosAngle := toPoint.Normalize().Dot(s.Dir)
	return cosAngle >= math.Cos(s.FOV/2)
}

// Illuminate shades the point like a positional light when it lies inside
// the cone, and keeps only the ambient term outside it
func (s *SpotLight) Illuminate(pt, normal core.Vec3, mat material.Material,
	eyeFrame core.Frame, inShadow bool) core.Vec3 {

	if !s.On {
		return core.Vec3{}
	}
	if !s.InCone(eyeFrame, pt) {
		return ambientColor(mat.Ambient, s.Color)
	}
	return s.PositionalLight.Illuminate(pt, normal, mat, eyeFrame, inShadow)
}
