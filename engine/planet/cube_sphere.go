package planet

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/chewxy/math32"
)

// CubeToSphere maps a point on the planet's cube (edge length size, centered at the origin)
// onto the sphere of radius size.
//
// The per-axis correction spreads vertices evenly instead of bunching them toward the face
// centers the way a plain normalize does.
// Reference: http://mathproofs.blogspot.com/2005/07/mapping-cube-to-sphere.html
//
// Parameters:
//   - p: cube-space position
//   - size: cube edge length, also the output sphere radius
//
// Returns:
//   - common.Vec3: the sphere-space position
func CubeToSphere(p common.Vec3, size float32) common.Vec3 {
	c := p.Scale(2 / size)

	x2 := c[0] * c[0]
	y2 := c[1] * c[1]
	z2 := c[2] * c[2]

	corrected := common.Vec3{
		c[0] * math32.Sqrt(1-y2/2-z2/2+y2*z2/3),
		c[1] * math32.Sqrt(1-z2/2-x2/2+z2*x2/3),
		c[2] * math32.Sqrt(1-x2/2-y2/2+x2*y2/3),
	}

	return corrected.Normalize().Scale(size)
}
