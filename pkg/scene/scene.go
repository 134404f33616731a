// Package scene aggregates the visible objects, lights and camera that
// describe one renderable world.
package scene

import (
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/geometry"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/lights"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/renderer"
)

// Scene holds everything needed to render a frame. Objects are fixed after
// construction; lights may be toggled and moved between frames, and the
// camera is replaced per frame to track viewpoint and window size.
type Scene struct {
	Objects []*geometry.VisibleObject
	Lights  []lights.Light
	Camera  *renderer.PerspectiveCamera
}

// NewScene creates an empty scene with the given camera
func NewScene(camera *renderer.PerspectiveCamera) *Scene {
	return &Scene{Camera: camera}
}

// AddObject appends a visible object to the scene
func (s *Scene) AddObject(obj *geometry.VisibleObject) {
	s.Objects = append(s.Objects, obj)
}

// AddLight appends a light source to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

func (s *Scene) GetCamera() *renderer.PerspectiveCamera {
	return s.Camera
}

func (s *Scene) GetObjects() []*geometry.VisibleObject {
	return s.Objects
}

func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}
