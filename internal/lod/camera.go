package lod

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// The minimal capability the selector needs from a camera: its position in
// world space. Distance based error metrics only need this much.
type Camera interface {
	WorldPosition() r3.Vector
}

// A camera able to produce a combined view projection matrix. Frustum
// culling is only performed for cameras implementing this interface; any
// other Camera disables culling entirely.
type ViewProjector interface {
	ViewProjection() mgl64.Mat4
}

// A camera exposing nothing but its world position. Selection against it
// still ranks nodes by distance, but with no projection to extract a
// frustum from, culling degrades to a no-op.
type PositionCamera struct {
	Position r3.Vector
}

func (c *PositionCamera) WorldPosition() r3.Vector {
	return c.Position
}

// A perspective projection camera looking from Position towards Target
type PerspectiveCamera struct {
	Position r3.Vector
	Target   r3.Vector
	Up       r3.Vector // zero value defaults to +Y
	FovY     float64   // vertical field of view, degrees
	Aspect   float64
	Near     float64
	Far      float64
}

func (c *PerspectiveCamera) WorldPosition() r3.Vector {
	return c.Position
}

func (c *PerspectiveCamera) ViewProjection() mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
	return proj.Mul4(lookAt(c.Position, c.Target, c.Up))
}

// An orthographic projection camera looking from Position towards Target
type OrthographicCamera struct {
	Position r3.Vector
	Target   r3.Vector
	Up       r3.Vector // zero value defaults to +Y
	Left     float64
	Right    float64
	Bottom   float64
	Top      float64
	Near     float64
	Far      float64
}

func (c *OrthographicCamera) WorldPosition() r3.Vector {
	return c.Position
}

func (c *OrthographicCamera) ViewProjection() mgl64.Mat4 {
	proj := mgl64.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
	return proj.Mul4(lookAt(c.Position, c.Target, c.Up))
}

func lookAt(eye, target, up r3.Vector) mgl64.Mat4 {
	if up == (r3.Vector{}) {
		up = r3.Vector{Y: 1}
	}
	return mgl64.LookAtV(toVec3(eye), toVec3(target), toVec3(up))
}

func toVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
