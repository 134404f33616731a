package material

import "github.com/JacksonGuy/go-whitted-raytracer/pkg/core"

// Common colors
var (
	Black     = core.NewVec3(0, 0, 0)
	White     = core.NewVec3(1, 1, 1)
	Red       = core.NewVec3(1, 0, 0)
	Green     = core.NewVec3(0, 1, 0)
	Blue      = core.NewVec3(0, 0, 1)
	PaleGreen = core.NewVec3(0.596, 0.984, 0.596)
	Gray      = core.NewVec3(0.5, 0.5, 0.5)
)

// Named materials using the classic OpenGL material table values.
// Materials are shared by reference across visible objects and never
// mutated after scene construction.
var (
	Tin = NewMaterial(
		core.NewVec3(0.105882, 0.058824, 0.113725),
		core.NewVec3(0.427451, 0.470588, 0.541176),
		core.NewVec3(0.333333, 0.333333, 0.521569),
		9.84615,
	)

	Silver = NewMaterial(
		core.NewVec3(0.19225, 0.19225, 0.19225),
		core.NewVec3(0.50754, 0.50754, 0.50754),
		core.NewVec3(0.508273, 0.508273, 0.508273),
		51.2,
	)

	Gold = NewMaterial(
		core.NewVec3(0.24725, 0.1995, 0.0745),
		core.NewVec3(0.75164, 0.60648, 0.22648),
		core.NewVec3(0.628281, 0.555802, 0.366065),
		51.2,
	)

	Copper = NewMaterial(
		core.NewVec3(0.19125, 0.0735, 0.0225),
		core.NewVec3(0.7038, 0.27048, 0.0828),
		core.NewVec3(0.256777, 0.137622, 0.086014),
		12.8,
	)

	Brass = NewMaterial(
		core.NewVec3(0.329412, 0.223529, 0.027451),
		core.NewVec3(0.780392, 0.568627, 0.113725),
		core.NewVec3(0.992157, 0.941176, 0.807843),
		27.8974,
	)

	Bronze = NewMaterial(
		core.NewVec3(0.2125, 0.1275, 0.054),
		core.NewVec3(0.714, 0.4284, 0.18144),
		core.NewVec3(0.393548, 0.271906, 0.166721),
		25.6,
	)

	Pewter = NewMaterial(
		core.NewVec3(0.10588, 0.058824, 0.113725),
		core.NewVec3(0.427451, 0.470588, 0.541176),
		core.NewVec3(0.3333, 0.3333, 0.521569),
		9.84615,
	)

	RedPlastic = NewMaterial(
		core.NewVec3(0.3, 0.0, 0.0),
		core.NewVec3(0.6, 0.0, 0.0),
		core.NewVec3(0.8, 0.6, 0.6),
		32.0,
	)

	CyanPlastic = NewMaterial(
		core.NewVec3(0.0, 0.1, 0.06),
		core.NewVec3(0.0, 0.50980392, 0.50980392),
		core.NewVec3(0.50196078, 0.50196078, 0.50196078),
		32.0,
	)
)

// Mirror returns a glass-like dielectric with a typical index of refraction
func Mirror() Material {
	return NewDielectric(1.5)
}
