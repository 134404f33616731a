package loaders

import (
	"bufio"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

func TestDecodePPMText(t *testing.T) {
	ppm := `P3
# a 2x2 test image
2 2
255
255 0 0   0 255 0
0 0 255   255 255 255
`
	img, err := DecodePPM(bufio.NewReader(strings.NewReader(ppm)))
	if err != nil {
		t.Fatalf("Expected successful decode, got error: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("Expected 2x2 image, got %dx%d", img.Width, img.Height)
	}
	if img.Pixels[0] != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red first pixel, got %v", img.Pixels[0])
	}
	if img.Pixels[3] != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected white last pixel, got %v", img.Pixels[3])
	}
}

func TestDecodePPMBinary(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P6\n2 1\n255\n")
	buf.Write([]byte{255, 0, 0, 0, 0, 255})

	img, err := DecodePPM(bufio.NewReader(&buf))
	if err != nil {
		t.Fatalf("Expected successful decode, got error: %v", err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("Expected 2x1 image, got %dx%d", img.Width, img.Height)
	}
	if img.Pixels[0] != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red first pixel, got %v", img.Pixels[0])
	}
	if img.Pixels[1] != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected blue second pixel, got %v", img.Pixels[1])
	}
}

func TestDecodePPMErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"wrong magic number", "P5\n2 2\n255\n"},
		{"non-numeric width", "P3\nwide 2\n255\n"},
		{"zero dimensions", "P3\n0 0\n255\n"},
		{"truncated pixel data", "P3\n2 2\n255\n255 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePPM(bufio.NewReader(strings.NewReader(tt.data))); err == nil {
				t.Error("Expected a decode error")
			}
		})
	}
}

func TestLoadPPMFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ppm")
	if err := os.WriteFile(path, []byte("P3\n1 1\n255\n0 255 0\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	img, err := LoadPPM(path)
	if err != nil {
		t.Fatalf("Expected successful load, got error: %v", err)
	}
	if img.Pixels[0] != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected green pixel, got %v", img.Pixels[0])
	}
}

func TestLoadImagePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "test.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(file, src); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	file.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Expected successful load, got error: %v", err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("Expected 2x1 image, got %dx%d", img.Width, img.Height)
	}
	if img.Pixels[0].X < 0.99 || img.Pixels[0].Y > 0.01 {
		t.Errorf("Expected red first pixel, got %v", img.Pixels[0])
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestSamplePixel(t *testing.T) {
	// 2x2: top row red, green; bottom row blue, white.
	img := &ImageData{
		Width:  2,
		Height: 2,
		Pixels: []core.Vec3{
			core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
			core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
		},
	}

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom left is the last stored row", 0, 0, core.NewVec3(0, 0, 1)},
		{"top left is the first stored row", 0, 1, core.NewVec3(1, 0, 0)},
		{"top right", 1, 1, core.NewVec3(0, 1, 0)},
		{"bottom right", 1, 0, core.NewVec3(1, 1, 1)},
		{"u clamped below", -0.5, 0, core.NewVec3(0, 0, 1)},
		{"v clamped above", 0, 1.5, core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.SamplePixel(tt.u, tt.v)
			if got != tt.expected {
				t.Errorf("Expected %v at (%v,%v), got %v", tt.expected, tt.u, tt.v, got)
			}
		})
	}
}
