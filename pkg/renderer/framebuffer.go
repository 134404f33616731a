package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// Framebuffer holds per-pixel color and depth for one rendered frame.
// Pixel (0, 0) is the bottom-left corner; ToImage flips rows into the
// top-down convention of image.RGBA.
type Framebuffer struct {
	width  int
	height int

	clearColor core.Vec3
	colors     []core.Vec3
	depths     []float64
}

// NewFramebuffer creates a framebuffer cleared to clearColor with all
// depths set to +Inf.
func NewFramebuffer(width, height int, clearColor core.Vec3) *Framebuffer {
	fb := &Framebuffer{
		width:      width,
		height:     height,
		clearColor: clearColor,
		colors:     make([]core.Vec3, width*height),
		depths:     make([]float64, width*height),
	}
	fb.ClearColorBuffer()
	fb.ClearDepthBuffer()
	return fb
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// GetClearColor returns the color used for cleared pixels and ray misses
func (fb *Framebuffer) GetClearColor() core.Vec3 {
	return fb.clearColor
}

// SetClearColor changes the clear color without touching stored pixels
func (fb *Framebuffer) SetClearColor(c core.Vec3) {
	fb.clearColor = c
}

// ClearColorBuffer resets every pixel to the clear color
func (fb *Framebuffer) ClearColorBuffer() {
	for i := range fb.colors {
		fb.colors[i] = fb.clearColor
	}
}

// ClearDepthBuffer resets every depth to +Inf
func (fb *Framebuffer) ClearDepthBuffer() {
	for i := range fb.depths {
		fb.depths[i] = math.Inf(1)
	}
}

// SetColor stores a color at pixel (x, y). Coordinates outside the buffer
// are ignored.
func (fb *Framebuffer) SetColor(x, y int, c core.Vec3) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.colors[y*fb.width+x] = c
}

// GetColor returns the color at pixel (x, y)
func (fb *Framebuffer) GetColor(x, y int) core.Vec3 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return fb.clearColor
	}
	return fb.colors[y*fb.width+x]
}

// SetDepth stores a depth value at pixel (x, y)
func (fb *Framebuffer) SetDepth(x, y int, depth float64) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.depths[y*fb.width+x] = depth
}

// GetDepth returns the depth at pixel (x, y), +Inf where no hit was recorded
func (fb *Framebuffer) GetDepth(x, y int) float64 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return math.Inf(1)
	}
	return fb.depths[y*fb.width+x]
}

// ToImage converts the framebuffer to an image.RGBA, flipping rows so that
// the bottom row of the framebuffer becomes the bottom row of the image.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.colors[y*fb.width+x].Clamp(0, 1)
			img.Set(x, fb.height-1-y, color.RGBA{
				R: uint8(c.X * 255),
				G: uint8(c.Y * 255),
				B: uint8(c.Z * 255),
				A: 255,
			})
		}
	}
	return img
}
