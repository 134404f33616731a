package lights

import (
	"math"
	"testing"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/geometry"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/material"
)

// eyeAt returns a camera frame at the given origin looking down -z
func eyeAt(origin core.Vec3) core.Frame {
	return core.NewFrame(origin,
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	)
}

// flatWhite is a material with unit diffuse and no specular component,
// convenient for checking the diffuse term in isolation
var flatWhite = material.NewMaterial(
	core.NewVec3(0.1, 0.1, 0.1),
	core.NewVec3(1, 1, 1),
	core.NewVec3(0, 0, 0),
	1.0,
)

func TestPositionalLight_OffContributesNothing(t *testing.T) {
	light := NewPositionalLight(core.NewVec3(0, 10, 0), material.White)
	light.On = false

	got := light.Illuminate(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), flatWhite, eyeAt(core.NewVec3(0, 0, 5)), false)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black from an off light, got %v", got)
	}
}

func TestPositionalLight_ShadowKeepsAmbientOnly(t *testing.T) {
	light := NewPositionalLight(core.NewVec3(0, 10, 0), material.White)

	got := light.Illuminate(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), flatWhite, eyeAt(core.NewVec3(0, 0, 5)), true)
	expected := flatWhite.Ambient
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected ambient-only %v, got %v", expected, got)
	}
}

func TestPositionalLight_DiffuseFalloffWithAngle(t *testing.T) {
	pt := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)
	eye := eyeAt(core.NewVec3(0, 0, 5))

	tests := []struct {
		name     string
		lightPos core.Vec3
		expected float64 // Expected diffuse factor max(dot(l,n),0)
	}{
		{"overhead light full diffuse", core.NewVec3(0, 10, 0), 1.0},
		{"light at 45 degrees", core.NewVec3(10, 10, 0), math.Sqrt2 / 2},
		{"light below the horizon contributes no diffuse", core.NewVec3(0, -10, 0), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewPositionalLight(tt.lightPos, material.White)
			got := light.Illuminate(pt, normal, flatWhite, eye, false)
			expected := flatWhite.Ambient.Add(core.NewVec3(tt.expected, tt.expected, tt.expected)).Clamp(0, 1)
			if got.Subtract(expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", expected, got)
			}
		})
	}
}

func TestPositionalLight_SpecularHighlight(t *testing.T) {
	// Light straight up, viewer straight up: the reflection vector lines up
	// with the view vector, so the specular term is the full material color
	shiny := material.NewMaterial(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
		20.0,
	)
	light := NewPositionalLight(core.NewVec3(0, 10, 0), material.White)
	eye := eyeAt(core.NewVec3(0, 10, 0))

	got := light.Illuminate(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), shiny, eye, false)
	if got.Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-9 {
		t.Errorf("Expected full specular (1,1,1), got %v", got)
	}
}

func TestPositionalLight_Attenuation(t *testing.T) {
	light := NewPositionalLight(core.NewVec3(0, 2, 0), material.White)
	light.AttenuationOn = true
	light.Atten = AttenuationParams{Constant: 1, Linear: 1, Quadratic: 0}

	// Distance 2: attenuation 1/(1+2) = 1/3 applies to diffuse, not ambient
	got := light.Illuminate(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), flatWhite, eyeAt(core.NewVec3(0, 0, 5)), false)
	expected := flatWhite.Ambient.Add(core.NewVec3(1, 1, 1).Multiply(1.0 / 3.0))
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPositionalLight_CameraFramePosition(t *testing.T) {
	// A light not tied to the world resolves its position in the camera
	// frame
	light := NewPositionalLight(core.NewVec3(0, 0, -2), material.White)
	light.TiedToWorld = false

	eye := eyeAt(core.NewVec3(0, 0, 5))
	got := light.ActualPosition(eye)
	expected := core.NewVec3(0, 0, 3)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected camera-relative position %v, got %v", expected, got)
	}

	light.TiedToWorld = true
	if light.ActualPosition(eye) != light.Pos {
		t.Error("Expected world-tied light to use its raw position")
	}
}

func TestPointIsInShadow(t *testing.T) {
	mat := material.Tin
	occluder := geometry.NewVisibleObject(geometry.NewSphere(core.NewVec3(0, 5, 0), 1.0), &mat)
	light := NewPositionalLight(core.NewVec3(0, 10, 0), material.White)
	eye := eyeAt(core.NewVec3(0, 0, 5))

	pt := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	if !light.PointIsInShadow(pt, normal, []*geometry.VisibleObject{occluder}, eye) {
		t.Error("Expected shadow with an occluder between point and light")
	}

	if light.PointIsInShadow(pt, normal, nil, eye) {
		t.Error("Expected no shadow without occluders")
	}

	// An object beyond the light does not cast a shadow
	beyond := geometry.NewVisibleObject(geometry.NewSphere(core.NewVec3(0, 20, 0), 1.0), &mat)
	if light.PointIsInShadow(pt, normal, []*geometry.VisibleObject{beyond}, eye) {
		t.Error("Expected no shadow from an object beyond the light")
	}
}

func TestPointIsInShadow_NoSelfIntersection(t *testing.T) {
	// The surface the point lies on must not shadow itself
	mat := material.Tin
	ground := geometry.NewVisibleObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), &mat)
	light := NewPositionalLight(core.NewVec3(0, 10, 0), material.White)

	if light.PointIsInShadow(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), []*geometry.VisibleObject{ground}, eyeAt(core.NewVec3(0, 5, 5))) {
		t.Error("Expected no self-shadowing on the supporting surface")
	}
}

func TestSpotLight_ConeGate(t *testing.T) {
	spot := NewSpotLight(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), core.Deg2Rad(90), material.White)
	eye := eyeAt(core.NewVec3(0, 0, 5))

	tests := []struct {
		name     string
		pt       core.Vec3
		expected bool
	}{
		{"directly below is inside", core.NewVec3(0, 0, 0), true},
		{"within half angle", core.NewVec3(5, 0, 0), true},
		{"outside half angle", core.NewVec3(30, 0, 0), false},
		{"behind the cone", core.NewVec3(0, 20, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spot.InCone(eye, tt.pt); got != tt.expected {
				t.Errorf("Expected InCone=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestSpotLight_Illuminate(t *testing.T) {
	spot := NewSpotLight(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), core.Deg2Rad(90), material.White)
	eye := eyeAt(core.NewVec3(0, 0, 5))
	normal := core.NewVec3(0, 1, 0)

	// Inside the cone: identical to a positional light at the same spot
	positional := NewPositionalLight(core.NewVec3(0, 10, 0), material.White)
	inside := core.NewVec3(0, 0, 0)
	if got, want := spot.Illuminate(inside, normal, flatWhite, eye, false), positional.Illuminate(inside, normal, flatWhite, eye, false); got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Expected positional-light shading inside the cone, got %v want %v", got, want)
	}

	// Outside the cone only the ambient term survives
	outside := core.NewVec3(30, 0, 0)
	if got := spot.Illuminate(outside, normal, flatWhite, eye, false); got.Subtract(flatWhite.Ambient).Length() > 1e-9 {
		t.Errorf("Expected ambient-only outside the cone, got %v", got)
	}

	// An off spotlight contributes nothing anywhere
	spot.On = false
	if got := spot.Illuminate(inside, normal, flatWhite, eye, false); got != (core.Vec3{}) {
		t.Errorf("Expected black from an off spotlight, got %v", got)
	}
}

func TestAttenuationParams_Factor(t *testing.T) {
	p := AttenuationParams{Constant: 1, Linear: 2, Quadratic: 3}
	if got, want := p.Factor(2), 1.0/(1+4+12); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}
