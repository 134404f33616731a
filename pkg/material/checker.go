package material

import (
	"math"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// CheckerTexture is a procedural two-color checkerboard over UV space.
// Scale is the number of squares along each axis of the unit square.
type CheckerTexture struct {
	Even  core.Vec3
	Odd   core.Vec3
	Scale float64
}

// NewCheckerTexture creates a checkerboard with the given colors and scale
func NewCheckerTexture(even, odd core.Vec3, scale float64) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd, Scale: scale}
}

func (t *CheckerTexture) SamplePixel(u, v float64) core.Vec3 {
	iu := int(math.Floor(u * t.Scale))
	iv := int(math.Floor(v * t.Scale))
	if ((iu+iv)%2+2)%2 == 0 {
		return t.Even
	}
	return t.Odd
}
