package lights

import (
	"math"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/geometry"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/material"
)

// Light is a scene light that can shade an intercept point and decide
// whether the point is shadowed from it
type Light interface {
	Illuminate(pt, normal core.Vec3, mat material.Material, eyeFrame core.Frame, inShadow bool) core.Vec3
	PointIsInShadow(pt, normal core.Vec3, objects []*geometry.VisibleObject, eyeFrame core.Frame) bool
}

// AttenuationParams are the constant, linear and quadratic factors of the
// distance attenuation formula 1/(k0 + k1·d + k2·d²)
type AttenuationParams struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// Factor returns the attenuation factor for a light at distance d
func (p AttenuationParams) Factor(d float64) float64 {
	return 1.0 / (p.Constant + p.Linear*d + p.Quadratic*d*d)
}

// ambientColor computes the ambient term produced by a single light
func ambientColor(matAmbient, lightColor core.Vec3) core.Vec3 {
	return matAmbient.MultiplyVec(lightColor)
}

// diffuseColor computes the diffuse term from the unit light vector l and
// the unit surface normal n
func diffuseColor(matDiffuse, lightColor, l, n core.Vec3) core.Vec3 {
	return matDiffuse.MultiplyVec(lightColor).Multiply(math.Max(l.Dot(n), 0))
}

// specularColor computes the specular term from the unit reflection vector
// r and the unit view vector v
func specularColor(matSpecular, lightColor core.Vec3, shininess float64, r, v core.Vec3) core.Vec3 {
	factor := math.Pow(math.Max(0, r.Dot(v)), shininess)
	return matSpecular.MultiplyVec(lightColor).Multiply(factor)
}

// totalColor sums the ambient, diffuse and specular terms produced by a
// single light at a single point, applying distance attenuation to the
// diffuse and specular parts when enabled. The result is clamped to [0,1].
func totalColor(mat material.Material, lightColor, v, n, lightPos, pt core.Vec3,
	attenuationOn bool, atParams AttenuationParams) core.Vec3 {

	lightVector := lightPos.Subtract(pt)
	l := lightVector.Normalize()
	r := core.Reflect(l.Negate(), n)

	ambient := ambientColor(mat.Ambient, lightColor)
	diffuse := diffuseColor(mat.Diffuse, lightColor, l, n)
	specular := specularColor(mat.Specular, lightColor, mat.Shininess, r, v)

	attenuation := 1.0
	if attenuationOn {
		attenuation = atParams.Factor(lightVector.Length())
	}

	return ambient.Add(diffuse.Add(specular).Multiply(attenuation)).Clamp(0, 1)
}
