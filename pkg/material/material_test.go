package material

import (
	"testing"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial(core.NewVec3(0.1, 0, 0), core.NewVec3(0.5, 0, 0), core.NewVec3(1, 1, 1), 32)

	if m.Alpha != 1.0 {
		t.Errorf("Expected fully opaque material, got alpha %v", m.Alpha)
	}
	if m.IsDielectric {
		t.Error("Expected a non-dielectric material")
	}
	if m.Shininess != 32 {
		t.Errorf("Expected shininess 32, got %v", m.Shininess)
	}
}

func TestNewDielectric(t *testing.T) {
	m := NewDielectric(1.5)

	if !m.IsDielectric {
		t.Error("Expected a dielectric material")
	}
	if m.RefractiveIndex != 1.5 {
		t.Errorf("Expected refractive index 1.5, got %v", m.RefractiveIndex)
	}
	if m.Alpha != 1.0 {
		t.Errorf("Expected alpha 1, got %v", m.Alpha)
	}
}

func TestMirrorIsGlass(t *testing.T) {
	m := Mirror()
	if !m.IsDielectric || m.RefractiveIndex != 1.5 {
		t.Errorf("Expected a 1.5-index dielectric, got %+v", m)
	}
}

func TestCheckerTexture(t *testing.T) {
	checker := NewCheckerTexture(White, Black, 2)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"origin square is even", 0.1, 0.1, White},
		{"next square along u is odd", 0.6, 0.1, Black},
		{"next square along v is odd", 0.1, 0.6, Black},
		{"diagonal square is even again", 0.6, 0.6, White},
		{"negative coordinates alternate consistently", -0.1, 0.1, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.SamplePixel(tt.u, tt.v)
			if got != tt.expected {
				t.Errorf("Expected %v at (%v,%v), got %v", tt.expected, tt.u, tt.v, got)
			}
		})
	}
}
