package geometry

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
)

// Describes a bounding box of a tree node or of a whole point cloud
// through the coordinates of its extremes and of its middle planes.
type BoundingBox struct {
	Xmin float64
	Xmax float64
	Ymin float64
	Ymax float64
	Zmin float64
	Zmax float64
	Xmid float64
	Ymid float64
	Zmid float64
}

// Instantiates a new BoundingBox from the given extremes
func NewBoundingBox(xmin, xmax, ymin, ymax, zmin, zmax float64) *BoundingBox {
	return &BoundingBox{
		Xmin: xmin,
		Xmax: xmax,
		Ymin: ymin,
		Ymax: ymax,
		Zmin: zmin,
		Zmax: zmax,
		Xmid: (xmin + xmax) / 2,
		Ymid: (ymin + ymax) / 2,
		Zmid: (zmin + zmax) / 2,
	}
}

// Instantiates a cubic BoundingBox centered at the given point with the
// given half width
func NewBoundingBoxFromCenter(center r3.Vector, halfSize float64) *BoundingBox {
	return NewBoundingBox(
		center.X-halfSize, center.X+halfSize,
		center.Y-halfSize, center.Y+halfSize,
		center.Z-halfSize, center.Z+halfSize,
	)
}

// Computes the minimal BoundingBox enclosing all the finite points of a
// flat, triplet stride position buffer. Triplets carrying a NaN or infinite
// coordinate are ignored so they cannot blow the box up to an unbounded
// region. The buffer length must be a multiple of three and at least one
// triplet must be finite.
func NewBoundingBoxFromPositions(positions []float64) (*BoundingBox, error) {
	if len(positions) == 0 {
		return nil, errors.New("cannot compute the bounding box of an empty position buffer")
	}
	if len(positions)%3 != 0 {
		return nil, errors.New("position buffer length must be a multiple of three")
	}

	xmin, ymin, zmin := math.Inf(1), math.Inf(1), math.Inf(1)
	xmax, ymax, zmax := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	found := false
	for i := 0; i < len(positions); i += 3 {
		x, y, z := positions[i], positions[i+1], positions[i+2]
		if !isFinite(x) || !isFinite(y) || !isFinite(z) {
			continue
		}
		found = true
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
		if y < ymin {
			ymin = y
		}
		if y > ymax {
			ymax = y
		}
		if z < zmin {
			zmin = z
		}
		if z > zmax {
			zmax = z
		}
	}
	if !found {
		return nil, errors.New("position buffer holds no finite point")
	}

	return NewBoundingBox(xmin, xmax, ymin, ymax, zmin, zmax), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Returns the geometric center of the box
func (b *BoundingBox) Center() r3.Vector {
	return r3.Vector{X: b.Xmid, Y: b.Ymid, Z: b.Zmid}
}

// Returns the extent of the box along each axis
func (b *BoundingBox) Extent() r3.Vector {
	return r3.Vector{X: b.Xmax - b.Xmin, Y: b.Ymax - b.Ymin, Z: b.Zmax - b.Zmin}
}

// Returns true if the given point lies inside the box. Points lying exactly
// on a face are considered contained, so points on the shared plane between
// two sibling octants are never dropped by containment checks.
func (b *BoundingBox) Contains(p r3.Vector) bool {
	return p.X >= b.Xmin && p.X <= b.Xmax &&
		p.Y >= b.Ymin && p.Y <= b.Ymax &&
		p.Z >= b.Zmin && p.Z <= b.Zmax
}

// Returns the bounding box of the given octant of the box. Octant bit 0
// selects the x half, bit 1 the y half and bit 2 the z half, with a set bit
// picking the upper half.
func NewBoundingBoxFromParent(parent *BoundingBox, octant uint8) *BoundingBox {
	xmin, xmax := parent.Xmin, parent.Xmid
	if octant&1 != 0 {
		xmin, xmax = parent.Xmid, parent.Xmax
	}
	ymin, ymax := parent.Ymin, parent.Ymid
	if octant&2 != 0 {
		ymin, ymax = parent.Ymid, parent.Ymax
	}
	zmin, zmax := parent.Zmin, parent.Zmid
	if octant&4 != 0 {
		zmin, zmax = parent.Zmid, parent.Zmax
	}
	return NewBoundingBox(xmin, xmax, ymin, ymax, zmin, zmax)
}
