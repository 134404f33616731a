package geometry

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/material"
)

// VisibleObject pairs a shape with a material and an optional texture. The
// material and texture are shared, read-only references; the wrapper owns
// neither, and the texture may be nil.
type VisibleObject struct {
	Shape    Shape
	Material *material.Material
	Texture  material.Texture
}

// NewVisibleObject creates a visible object without a texture
func NewVisibleObject(shape Shape, mat *material.Material) *VisibleObject {
	return &VisibleObject{Shape: shape, Material: mat}
}

// NewTexturedObject creates a visible object whose diffuse color comes from
// a texture
func NewTexturedObject(shape Shape, mat *material.Material, texture material.Texture) *VisibleObject {
	return &VisibleObject{Shape: shape, Material: mat, Texture: texture}
}

// ClosestIntersection finds the object's nearest hit and completes the
// record: material snapshot, texture reference, (u,v) when textured, and
// the single central flip of the normal toward the incoming ray so that
// lighting always receives a viewer-facing normal.
func (o *VisibleObject) ClosestIntersection(ray core.Ray) (*HitRecord, bool) {
	hit, ok := o.Shape.ClosestIntersection(ray)
	if !ok {
		return nil, false
	}

	hit.Material = *o.Material
	hit.Texture = o.Texture
	if o.Texture != nil {
		hit.U, hit.V = o.Shape.TexCoords(hit.Point)
	}

	hit.FrontFace = ray.Direction.Dot(hit.Normal) <= 0
	if !hit.FrontFace {
		hit.Normal = hit.Normal.Negate()
	}

	return hit, true
}

// NearestHit returns the globally nearest positive-t hit over the object
// list by linear scan. When the winning object carries a texture, the
// sampled color overrides the material's diffuse color and the ambient
// color is set to 0.15 of the sample.
func NearestHit(ray core.Ray, objects []*VisibleObject) (*HitRecord, bool) {
	var closest *HitRecord

	for _, obj := range objects {
		if hit, ok := obj.ClosestIntersection(ray); ok {
			if closest == nil || hit.T < closest.T {
				closest = hit
			}
		}
	}

	if closest == nil {
		return nil, false
	}

	if closest.Texture != nil {
		sample := closest.Texture.SamplePixel(closest.U, closest.V)
		closest.Material.Diffuse = sample
		closest.Material.Ambient = sample.Multiply(0.15)
	}

	return closest, true
}
