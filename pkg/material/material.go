package material

import "github.com/JacksonGuy/go-whitted-raytracer/pkg/core"

// Material holds the Phong shading properties of a surface plus the flags
// that select the tracer's recursion branch: opaque surfaces spawn
// reflection rays only, dielectrics split energy between reflection and
// refraction by the Fresnel equations.
type Material struct {
	Ambient   core.Vec3
	Diffuse   core.Vec3
	Specular  core.Vec3
	Shininess float64

	// Alpha is the surface opacity. Values below 1 make a non-dielectric
	// surface pass light straight through, blended by alpha.
	Alpha float64

	IsDielectric    bool
	RefractiveIndex float64
}

// NewMaterial creates an opaque material from Phong color triples
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Alpha:     1.0,
	}
}

// NewDielectric creates a glass-like material with the given index of
// refraction. The base Phong properties are dark so that local shading
// does not overwhelm the reflected and transmitted contributions.
func NewDielectric(refractiveIndex float64) Material {
	m := NewMaterial(
		core.NewVec3(0.1, 0.1, 0.1),
		core.NewVec3(0.2, 0.2, 0.3),
		core.NewVec3(1.0, 1.0, 1.0),
		128.0,
	)
	m.IsDielectric = true
	m.RefractiveIndex = refractiveIndex
	return m
}

// Texture is sampled at surface (u,v) coordinates in [0,1]². When a visible
// object carries a texture, the sample overrides the material's diffuse
// color at the hit point.
type Texture interface {
	SamplePixel(u, v float64) core.Vec3
}
