package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// A half space in the form ax+by+cz+d >= 0
type Plane struct {
	A float64
	B float64
	C float64
	D float64
}

// A camera viewing volume described by its six bounding planes, all oriented
// with their normals pointing inward.
type Frustum struct {
	planes [6]Plane
}

// Extracts the six frustum planes from a combined view projection matrix.
// Rows of the matrix are summed with or subtracted from its last row, one
// pair per clip plane.
func NewFrustumFromMatrix(m mgl64.Mat4) *Frustum {
	row := func(i int) [4]float64 {
		return [4]float64{m.At(i, 0), m.At(i, 1), m.At(i, 2), m.At(i, 3)}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	f := &Frustum{}
	f.planes[0] = newPlane(r3[0]+r0[0], r3[1]+r0[1], r3[2]+r0[2], r3[3]+r0[3]) // left
	f.planes[1] = newPlane(r3[0]-r0[0], r3[1]-r0[1], r3[2]-r0[2], r3[3]-r0[3]) // right
	f.planes[2] = newPlane(r3[0]+r1[0], r3[1]+r1[1], r3[2]+r1[2], r3[3]+r1[3]) // bottom
	f.planes[3] = newPlane(r3[0]-r1[0], r3[1]-r1[1], r3[2]-r1[2], r3[3]-r1[3]) // top
	f.planes[4] = newPlane(r3[0]+r2[0], r3[1]+r2[1], r3[2]+r2[2], r3[3]+r2[3]) // near
	f.planes[5] = newPlane(r3[0]-r2[0], r3[1]-r2[1], r3[2]-r2[2], r3[3]-r2[3]) // far
	return f
}

func newPlane(a, b, c, d float64) Plane {
	length := math.Sqrt(a*a + b*b + c*c)
	if length > 0 {
		a, b, c, d = a/length, b/length, c/length, d/length
	}
	return Plane{A: a, B: b, C: c, D: d}
}

// Returns true unless the box lies entirely outside the frustum. For each
// plane only the box vertex most aligned with the plane normal is tested:
// if even that vertex is behind the plane the whole box is.
func (f *Frustum) IntersectsBox(b *BoundingBox) bool {
	for _, p := range f.planes {
		x := b.Xmax
		if p.A < 0 {
			x = b.Xmin
		}
		y := b.Ymax
		if p.B < 0 {
			y = b.Ymin
		}
		z := b.Zmax
		if p.C < 0 {
			z = b.Zmin
		}
		if p.A*x+p.B*y+p.C*z+p.D < 0 {
			return false
		}
	}
	return true
}
