package renderer

import (
	"math"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// PerspectiveCamera generates primary rays through pixel centers. It is
// replaced once per rendered frame to reflect the current viewpoint and
// window size, and is read-only during a frame.
type PerspectiveCamera struct {
	frame  core.Frame
	width  int
	height int

	halfWidth  float64 // Half extent of the view plane at unit distance
	halfHeight float64
}

// NewPerspectiveCamera creates a camera at eye looking at lookAt. fovY is
// the full vertical field of view in radians.
func NewPerspectiveCamera(eye, lookAt, up core.Vec3, fovY float64, width, height int) *PerspectiveCamera {
	w := eye.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	halfHeight := math.Tan(fovY / 2)
	halfWidth := halfHeight * float64(width) / float64(height)

	return &PerspectiveCamera{
		frame:      core.Frame{Origin: eye, U: u, V: v, W: w},
		width:      width,
		height:     height,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// GetRay returns the ray through the center of pixel (x, y). Row 0 is the
// bottom of the image.
func (c *PerspectiveCamera) GetRay(x, y int) core.Ray {
	px := core.Map(float64(x)+0.5, 0, float64(c.width), -c.halfWidth, c.halfWidth)
	py := core.Map(float64(y)+0.5, 0, float64(c.height), -c.halfHeight, c.halfHeight)

	direction := c.frame.U.Multiply(px).
		Add(c.frame.V.Multiply(py)).
		Subtract(c.frame.W)

	return core.NewRay(c.frame.Origin, direction)
}

// GetFrame returns the camera's eye frame, used for view vectors and for
// resolving camera-relative light positions
func (c *PerspectiveCamera) GetFrame() core.Frame {
	return c.frame
}

// Width returns the width in pixels of the camera's view plane
func (c *PerspectiveCamera) Width() int {
	return c.width
}

// Height returns the height in pixels of the camera's view plane
func (c *PerspectiveCamera) Height() int {
	return c.height
}
