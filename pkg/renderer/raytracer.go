package renderer

import (
	"math"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/geometry"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/lights"
)

// Scene provides the raytracer's view of a scene. Defined here as an
// interface to avoid circular imports with the scene package.
type Scene interface {
	GetCamera() *PerspectiveCamera
	GetObjects() []*geometry.VisibleObject
	GetLights() []lights.Light
}

// reflectionDamping scales reflected contributions on non-dielectric
// surfaces so glossy highlights do not overwhelm local shading.
const reflectionDamping = 0.25

// backgroundAttenuation dims the clear color for rays that miss after at
// least one bounce, so reflections of empty space read darker than the sky.
const backgroundAttenuation = 0.1

// transparencyPassBudget bounds the number of straight-through rays spawned
// for transparent surfaces. Those rays keep their recursion level, so
// without a separate budget a ray threading many transparent objects
// would recurse unboundedly.
const transparencyPassBudget = 64

// Raytracer renders scenes by recursive Whitted-style ray tracing.
type Raytracer struct {
	clearColor core.Vec3
	maxDepth   int
}

// NewRaytracer creates a raytracer. maxDepth is the number of reflection
// or refraction bounces allowed per primary ray; 0 disables recursion and
// produces local illumination only.
func NewRaytracer(clearColor core.Vec3, maxDepth int) *Raytracer {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &Raytracer{
		clearColor: clearColor,
		maxDepth:   maxDepth,
	}
}

// MaxDepth returns the recursion bound for primary rays
func (rt *Raytracer) MaxDepth() int {
	return rt.maxDepth
}

// SetMaxDepth changes the recursion bound for subsequent frames
func (rt *Raytracer) SetMaxDepth(depth int) {
	if depth < 0 {
		depth = 0
	}
	rt.maxDepth = depth
}

// TraceRay returns the color seen along ray. level is the number of
// remaining bounces; primary rays start at MaxDepth.
func (rt *Raytracer) TraceRay(ray core.Ray, sc Scene, level int) core.Vec3 {
	color, _ := rt.trace(ray, sc, level, transparencyPassBudget)
	return color
}

// trace returns the color along ray plus the depth of the nearest surface,
// +Inf on a miss. The depth is the primary intersection's t so callers can
// fill a depth buffer without intersecting the scene a second time.
func (rt *Raytracer) trace(ray core.Ray, sc Scene, level, passBudget int) (core.Vec3, float64) {
	hit, ok := geometry.NearestHit(ray, sc.GetObjects())
	if !ok {
		if level == rt.maxDepth {
			return rt.clearColor, math.Inf(1)
		}
		return rt.clearColor.Multiply(backgroundAttenuation), math.Inf(1)
	}

	normal := hit.Normal
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	eyeFrame := sc.GetCamera().GetFrame()
	result := core.Vec3{}
	for _, light := range sc.GetLights() {
		inShadow := light.PointIsInShadow(hit.Point, normal, sc.GetObjects(), eyeFrame)
		result = result.Add(light.Illuminate(hit.Point, normal, hit.Material, eyeFrame, inShadow))
	}

	if level > 0 {
		if hit.Material.IsDielectric {
			etaIncident, etaTransmit := 1.0, hit.Material.RefractiveIndex
			if !hit.FrontFace {
				etaIncident, etaTransmit = etaTransmit, etaIncident
			}

			kr := FresnelReflectance(ray.Direction, normal, etaIncident, etaTransmit)

			reflected := core.NewRay(
				hit.Point.Add(normal.Multiply(core.RayOffset)),
				core.Reflect(ray.Direction, normal),
			)
			reflColor, _ := rt.trace(reflected, sc, level-1, passBudget)
			result = result.Add(reflColor.Multiply(kr))

			if kr < 1 {
				refracted := core.NewRay(
					hit.Point.Subtract(normal.Multiply(core.RayOffset)),
					Refract(ray.Direction, normal, etaIncident/etaTransmit),
				)
				refrColor, _ := rt.trace(refracted, sc, level-1, passBudget)
				result = result.Add(refrColor.Multiply(1 - kr))
			}
		} else {
			reflected := core.NewRay(
				hit.Point.Add(normal.Multiply(core.RayOffset)),
				core.Reflect(ray.Direction, normal),
			)
			reflColor, _ := rt.trace(reflected, sc, level-1, passBudget)
			result = result.Add(reflColor.Multiply(reflectionDamping))

			if hit.Material.Alpha < 1 && passBudget > 0 {
				// The through ray keeps the current recursion level so a
				// transparent pane does not consume a bounce.
				through := core.NewRay(
					hit.Point.Add(ray.Direction.Multiply(core.RayOffset)),
					ray.Direction,
				)
				throughColor, _ := rt.trace(through, sc, level, passBudget-1)
				alpha := hit.Material.Alpha
				result = result.Multiply(1 - alpha).Add(throughColor.Multiply(alpha))
			}
		}
	}

	return result.Clamp(0, 1), hit.T
}

// RenderScene traces one primary ray per pixel into fb. The primary hit
// distances fill the depth buffer as a side effect of the same trace.
func (rt *Raytracer) RenderScene(fb *Framebuffer, sc Scene) {
	rt.renderRows(fb, sc, 0, fb.Height())
}

func (rt *Raytracer) renderRows(fb *Framebuffer, sc Scene, minY, maxY int) {
	camera := sc.GetCamera()
	for y := minY; y < maxY; y++ {
		for x := 0; x < fb.Width(); x++ {
			color, depth := rt.trace(camera.GetRay(x, y), sc, rt.maxDepth, transparencyPassBudget)
			fb.SetColor(x, y, color)
			fb.SetDepth(x, y, depth)
		}
	}
}

// FresnelReflectance returns the unpolarized Fresnel reflectance for a ray
// with the given incident direction hitting a surface with the given normal,
// crossing from a medium with index etaIncident into one with etaTransmit.
// Returns 1 under total internal reflection.
func FresnelReflectance(incident, normal core.Vec3, etaIncident, etaTransmit float64) float64 {
	cosIncident := incident.Negate().Dot(normal)
	cosIncident = math.Max(-1, math.Min(1, cosIncident))

	sinTransmit := etaIncident / etaTransmit * math.Sqrt(math.Max(0, 1-cosIncident*cosIncident))
	if sinTransmit >= 1 {
		return 1
	}

	cosTransmit := math.Sqrt(math.Max(0, 1-sinTransmit*sinTransmit))
	rs := (etaTransmit*cosIncident - etaIncident*cosTransmit) /
		(etaTransmit*cosIncident + etaIncident*cosTransmit)
	rp := (etaIncident*cosIncident - etaTransmit*cosTransmit) /
		(etaIncident*cosIncident + etaTransmit*cosTransmit)
	return (rs*rs + rp*rp) / 2
}

// Refract returns the refracted direction for an incident ray crossing a
// surface with the given normal. eta is the ratio of incident to transmitted
// refractive indices. Falls back to reflection under total internal
// reflection; callers gate on FresnelReflectance < 1 so that path is not
// normally taken.
func Refract(incident, normal core.Vec3, eta float64) core.Vec3 {
	cosIncident := incident.Negate().Dot(normal)
	cosIncident = math.Max(-1, math.Min(1, cosIncident))

	k := 1 - eta*eta*(1-cosIncident*cosIncident)
	if k < 0 {
		return core.Reflect(incident, normal)
	}
	return incident.Multiply(eta).
		Add(normal.Multiply(eta*cosIncident - math.Sqrt(k))).
		Normalize()
}
