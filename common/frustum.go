package common

import (
	"github.com/chewxy/math32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   Vec3
	Distance float32
}

// SignedDistance returns the distance from p to the plane, positive on the normal's side.
func (p Plane) SignedDistance(point Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a view-projection matrix.
// The matrix should be the combined Projection * View matrix with WebGPU's [0, 1] clip depth.
// Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: 16 float32 values representing the view-projection matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj []float32) Frustum {
	var f Frustum

	// For column-major matrix M, element M[row][col] is at index col*4 + row.
	row := func(i int) Vec3 {
		return Vec3{viewProj[i], viewProj[4+i], viewProj[8+i]}
	}
	w := func(i int) float32 {
		return viewProj[12+i]
	}

	f.Planes[FrustumLeft] = Plane{Normal: row(3).Add(row(0)), Distance: w(3) + w(0)}
	f.Planes[FrustumRight] = Plane{Normal: row(3).Sub(row(0)), Distance: w(3) - w(0)}
	f.Planes[FrustumBottom] = Plane{Normal: row(3).Add(row(1)), Distance: w(3) + w(1)}
	f.Planes[FrustumTop] = Plane{Normal: row(3).Sub(row(1)), Distance: w(3) - w(1)}
	// Clip z is in [0, w], so the near plane is row2 alone.
	f.Planes[FrustumNear] = Plane{Normal: row(2), Distance: w(2)}
	f.Planes[FrustumFar] = Plane{Normal: row(3).Sub(row(2)), Distance: w(3) - w(2)}

	for i := range f.Planes {
		f.normalizePlane(i)
	}

	return f
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := math32.Sqrt(p.Normal.Dot(p.Normal))

	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Scale(invLen)
		p.Distance *= invLen
	}
}

// IsPointInside reports whether point is on the inner side of all six planes.
func (f *Frustum) IsPointInside(point Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].SignedDistance(point) < 0 {
			return false
		}
	}
	return true
}

// IsShapeInside reports whether a convex point set may intersect the frustum.
// The shape is rejected only when every point lies outside the same plane, so the test is
// conservative: shapes near frustum corners can pass without actually intersecting.
//
// Parameters:
//   - points: the corners of the bounding shape
//
// Returns:
//   - bool: false if some plane has all points on its outer side
func (f *Frustum) IsShapeInside(points []Vec3) bool {
	for i := range f.Planes {
		inside := false
		for _, p := range points {
			if f.Planes[i].SignedDistance(p) >= 0 {
				inside = true
				break
			}
		}
		if !inside {
			return false
		}
	}
	return true
}
