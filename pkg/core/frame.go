package core

import "math"

// Frame is an orthonormal coordinate frame: an origin plus right-handed
// basis vectors U, V, W. The camera's eye frame and light rigs that follow
// the camera are both expressed as Frames.
type Frame struct {
	Origin  Vec3
	U, V, W Vec3
}

// NewFrame creates a frame from an origin and three basis vectors,
// normalizing the basis
func NewFrame(origin, u, v, w Vec3) Frame {
	return Frame{Origin: origin, U: u.Normalize(), V: v.Normalize(), W: w.Normalize()}
}

// NewFrameFromNormal builds an orthonormal basis whose W axis is the given
// normal. U and V span the plane perpendicular to the normal.
func NewFrameFromNormal(origin, normal Vec3) Frame {
	w := normal.Normalize()

	// Pick any vector not parallel to w to seed the basis
	var seed Vec3
	if math.Abs(w.X) > 0.9 {
		seed = NewVec3(0, 1, 0)
	} else {
		seed = NewVec3(1, 0, 0)
	}

	u := seed.Cross(w).Normalize()
	v := w.Cross(u)
	return Frame{Origin: origin, U: u, V: v, W: w}
}

// ToGlobal transforms a point from frame coordinates to world coordinates
func (f Frame) ToGlobal(p Vec3) Vec3 {
	return f.Origin.
		Add(f.U.Multiply(p.X)).
		Add(f.V.Multiply(p.Y)).
		Add(f.W.Multiply(p.Z))
}

// ToLocal transforms a world-coordinate point into frame coordinates
func (f Frame) ToLocal(p Vec3) Vec3 {
	d := p.Subtract(f.Origin)
	return NewVec3(d.Dot(f.U), d.Dot(f.V), d.Dot(f.W))
}
