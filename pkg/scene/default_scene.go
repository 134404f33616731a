package scene

import (
	"sort"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/geometry"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/lights"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/material"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/renderer"
)

// Builder constructs a demo scene sized for the given image dimensions
type Builder func(width, height int) *Scene

var builders = map[string]Builder{
	"default": NewDefaultScene,
	"gallery": NewShapeGalleryScene,
}

// Names returns the registered demo scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named demo scene, or returns false if unknown
func Build(name string, width, height int) (*Scene, bool) {
	builder, ok := builders[name]
	if !ok {
		return nil, false
	}
	return builder(width, height), true
}

// NewDefaultScene builds the standard demo: a metal ground plane, a
// checkered sphere, a closed copper cylinder, a checkered open cylinder and
// a glass disk, lit by a white positional light and a downward spotlight.
func NewDefaultScene(width, height int) *Scene {
	camera := renderer.NewPerspectiveCamera(
		core.NewVec3(0, 6, 16),
		core.NewVec3(0, 2, 0),
		core.NewVec3(0, 1, 0),
		core.Deg2Rad(45),
		width, height,
	)
	s := NewScene(camera)

	ground := material.Tin
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		&ground,
	))

	sphereMat := material.NewMaterial(material.Gray.Multiply(0.3), material.Gray, material.White.Multiply(0.6), 32)
	s.AddObject(geometry.NewTexturedObject(
		geometry.NewSphere(core.NewVec3(-4.5, 3, 0), 3),
		&sphereMat,
		material.NewCheckerTexture(material.White, material.Blue, 16),
	))

	copper := material.Copper
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewClosedCylinderY(core.NewVec3(4.5, 2, 0), 2, 4),
		&copper,
	))

	tubeMat := material.NewMaterial(material.Gray.Multiply(0.3), material.Gray, material.White.Multiply(0.4), 16)
	s.AddObject(geometry.NewTexturedObject(
		geometry.NewCylinderY(core.NewVec3(0, 2, -6), 2, 4),
		&tubeMat,
		material.NewCheckerTexture(material.Red, material.White, 12),
	))

	glass := material.Mirror()
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewDisk(core.NewVec3(0, 5, -10), core.NewVec3(0, 0.3, 1).Normalize(), 4),
		&glass,
	))

	s.AddLight(lights.NewPositionalLight(core.NewVec3(15, 15, 15), material.White))

	spot := lights.NewSpotLight(
		core.NewVec3(-15, 5, 10),
		core.NewVec3(0, -1, 0),
		core.Deg2Rad(90),
		material.White,
	)
	s.AddLight(spot)

	return s
}

// NewShapeGalleryScene builds a scene exercising every primitive: an
// ellipsoid, a cone, a triangle, axis-aligned cylinders along X and Z, and
// a facing disk, on a plastic ground plane.
func NewShapeGalleryScene(width, height int) *Scene {
	camera := renderer.NewPerspectiveCamera(
		core.NewVec3(0, 8, 20),
		core.NewVec3(0, 2, 0),
		core.NewVec3(0, 1, 0),
		core.Deg2Rad(45),
		width, height,
	)
	s := NewScene(camera)

	ground := material.CyanPlastic
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		&ground,
	))

	gold := material.Gold
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewEllipsoid(core.NewVec3(-7, 2, 0), core.NewVec3(3, 2, 2)),
		&gold,
	))

	bronze := material.Bronze
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewConeY(core.NewVec3(0, 0, 2), 2, 4),
		&bronze,
	))

	redPlastic := material.RedPlastic
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewTriangle(
			core.NewVec3(4, 0, -2),
			core.NewVec3(9, 0, -2),
			core.NewVec3(6.5, 5, -2),
		),
		&redPlastic,
	))

	silver := material.Silver
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewCylinderX(core.NewVec3(-3, 1, 5), 1, 4),
		&silver,
	))

	brass := material.Brass
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewCylinderZ(core.NewVec3(3, 1, 5), 1, 4),
		&brass,
	))

	pewter := material.Pewter
	s.AddObject(geometry.NewVisibleObject(
		geometry.NewDisk(core.NewVec3(0, 6, -8), core.NewVec3(0, 0, 1), 3),
		&pewter,
	))

	s.AddLight(lights.NewPositionalLight(core.NewVec3(12, 18, 12), material.White))
	s.AddLight(lights.NewPositionalLight(core.NewVec3(-12, 10, 8), material.Gray))

	return s
}
