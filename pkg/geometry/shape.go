package geometry

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/material"
)

// HitRecord contains information about a ray-object intersection. T is the
// smallest positive root for the ray against the shape; intersections at or
// behind the ray origin are discarded by the shapes themselves.
type HitRecord struct {
	T         float64           // Parameter t along the ray
	Point     core.Vec3         // World-space intercept point
	Normal    core.Vec3         // Unit surface normal at the intercept
	FrontFace bool              // True when the ray arrived from outside the surface
	U, V      float64           // Surface texture coordinates, set only for textured objects
	Material  material.Material // Material snapshot of the hit object
	Texture   material.Texture  // Texture reference, nil for untextured objects
}

// TransparentHitRecord is the hit record variant for the transparent-surface
// pipeline. It adds the surface opacity at the intercept.
type TransparentHitRecord struct {
	HitRecord
	Alpha float64
}

// Shape is an implicit surface that can report its nearest positive-t
// intersection with a ray and the texture coordinates of a surface point.
type Shape interface {
	ClosestIntersection(ray core.Ray) (*HitRecord, bool)
	TexCoords(pt core.Vec3) (u, v float64)
}
