package lights

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/geometry"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/material"
)

// PositionalLight is a point light. Its stored position is either an
// absolute world position or, when not tied to the world, a position in the
// camera's frame so that the light rig follows the camera.
type PositionalLight struct {
	Pos           core.Vec3
	Color         core.Vec3
	On            bool
	TiedToWorld   bool
	AttenuationOn bool
	Atten         AttenuationParams
}

// NewPositionalLight creates a world-tied point light that is on, with
// attenuation disabled
func NewPositionalLight(pos, color core.Vec3) *PositionalLight {
	return &PositionalLight{
		Pos:         pos,
		Color:       color,
		On:          true,
		TiedToWorld: true,
		Atten:       AttenuationParams{Constant: 1},
	}
}

// ActualPosition resolves the light's world position: the stored position
// when tied to the world, else the stored position interpreted in the
// camera's frame and transformed to world coordinates
func (l *PositionalLight) ActualPosition(eyeFrame core.Frame) core.Vec3 {
	if l.TiedToWorld {
		return l.Pos
	}
	return eyeFrame.ToGlobal(l.Pos)
}

// Illuminate computes the color this light produces at an intercept point.
// An off light contributes nothing; a shadowed point keeps only the ambient
// term.
func (l *PositionalLight) Illuminate(pt, normal core.Vec3, mat material.Material,
	eyeFrame core.Frame, inShadow bool) core.Vec3 {

	if !l.On {
		return core.Vec3{}
	}
	if inShadow {
		return ambientColor(mat.Ambient, l.Color)
	}

	viewVector := eyeFrame.Origin.Subtract(pt).Normalize()
	lightPos := l.ActualPosition(eyeFrame)

	return totalColor(mat, l.Color, viewVector, normal, lightPos, pt, l.AttenuationOn, l.Atten)
}

// PointIsInShadow casts a shadow feeler from the intercept toward the light
// and reports whether any scene object lies between the two. The feeler
// origin is pushed off the surface along the normal to avoid
// self-intersection.
func (l *PositionalLight) PointIsInShadow(pt, normal core.Vec3,
	objects []*geometry.VisibleObject, eyeFrame core.Frame) bool {

	lightPos := l.ActualPosition(eyeFrame)
	distToLight := lightPos.Subtract(pt).Length()

	feeler := core.NewRay(pt.Add(normal.Multiply(core.RayOffset)), lightPos.Subtract(pt))

	hit, ok := geometry.NearestHit(feeler, objects)
	if !ok {
		return false
	}
	return hit.T <= distToLight
}
