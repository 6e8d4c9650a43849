package planet

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/chewxy/math32"
)

func TestFaceFramesPointOutward(t *testing.T) {
	for f := range FaceCount {
		frame := faceFrames[f]
		if got := frame.widthDir.Cross(frame.heightDir); got != frame.normal {
			t.Fatalf("%s: width x height = %v, want normal %v", Face(f), got, frame.normal)
		}
		// On the unit cube the face center is origin + width + height.
		if got := frame.origin.Add(frame.widthDir).Add(frame.heightDir); got != frame.normal {
			t.Fatalf("%s: face center = %v, want %v", Face(f), got, frame.normal)
		}
	}
}

func TestOrientationRotationIsInverse(t *testing.T) {
	for f := range FaceCount {
		for side := OrientationTop; side <= OrientationLeft; side++ {
			g := AdjacentFace(Face(f), side)
			forward := OrientationRotation(Face(f), g)
			backward := OrientationRotation(g, Face(f))
			if (forward+backward)%4 != 0 {
				t.Fatalf("%s<->%s: rotations %d and %d do not cancel", Face(f), g, forward, backward)
			}
		}
	}
}

func TestFaceAdjacencyIsReciprocal(t *testing.T) {
	for f := range FaceCount {
		for side := OrientationTop; side <= OrientationLeft; side++ {
			g := AdjacentFace(Face(f), side)
			back := side.Opposite().Rotate(OrientationRotation(Face(f), g))
			if got := AdjacentFace(g, back); got != Face(f) {
				t.Fatalf("%s %s -> %s, but %s %s -> %s", Face(f), side, g, g, back, got)
			}
		}
	}
}

// unitCorner returns corner c of a root on the unit cube (edge length 2).
func unitCorner(f Face, c Corner) common.Vec3 {
	frame := faceFrames[f]
	w := frame.widthDir.Scale(2)
	h := frame.heightDir.Scale(2)
	switch c {
	case CornerTopLeft:
		return frame.origin.Add(h)
	case CornerTopRight:
		return frame.origin.Add(w).Add(h)
	case CornerBottomRight:
		return frame.origin.Add(w)
	}
	return frame.origin
}

func TestFaceAdjacencySharesEdge(t *testing.T) {
	for f := range FaceCount {
		for side := OrientationTop; side <= OrientationLeft; side++ {
			g := AdjacentFace(Face(f), side)
			back := side.Opposite().Rotate(OrientationRotation(Face(f), g))

			a, b := sideCorners(side)
			ga, gb := sideCorners(back)
			// Both sides are walked clockwise, so the shared edge is traversed in opposite directions.
			if unitCorner(Face(f), a) != unitCorner(g, gb) || unitCorner(Face(f), b) != unitCorner(g, ga) {
				t.Fatalf("%s %s and %s %s do not share an edge: %v-%v vs %v-%v",
					Face(f), side, g, back,
					unitCorner(Face(f), a), unitCorner(Face(f), b),
					unitCorner(g, ga), unitCorner(g, gb))
			}
		}
	}
}

func TestMirrorCorner(t *testing.T) {
	tests := []struct {
		c    Corner
		o    Orientation
		want Corner
	}{
		{CornerTopLeft, OrientationTop, CornerBottomLeft},
		{CornerTopRight, OrientationTop, CornerBottomRight},
		{CornerTopRight, OrientationRight, CornerTopLeft},
		{CornerBottomRight, OrientationRight, CornerBottomLeft},
		{CornerBottomRight, OrientationBottom, CornerTopRight},
		{CornerBottomLeft, OrientationBottom, CornerTopLeft},
		{CornerBottomLeft, OrientationLeft, CornerBottomRight},
		{CornerTopLeft, OrientationLeft, CornerTopRight},
	}
	for _, tt := range tests {
		if got := mirrorCorner(tt.c, tt.o); got != tt.want {
			t.Fatalf("mirrorCorner(%d, %s) = %d, want %d", tt.c, tt.o, got, tt.want)
		}
	}
}

func TestCubeToSpherePreservesMagnitude(t *testing.T) {
	const size = 100
	const steps = 8
	half := float32(size) / 2

	for f := range FaceCount {
		frame := faceFrames[f]
		origin := frame.origin.Scale(half)
		for i := 0; i <= steps; i++ {
			for j := 0; j <= steps; j++ {
				u := float32(i) / steps * size
				v := float32(j) / steps * size
				p := origin.Add(frame.widthDir.Scale(u)).Add(frame.heightDir.Scale(v))

				got := CubeToSphere(p, size).Length()
				if math32.Abs(got-size) > 1e-3 {
					t.Fatalf("%s (%d,%d): |CubeToSphere(%v)| = %f, want %d", Face(f), i, j, p, got, size)
				}
			}
		}
	}
}

func TestCubeToSphereFixesFaceCenters(t *testing.T) {
	p := CubeToSphere(common.Vec3{0, 0, 50}, 100)
	if math32.Abs(p[0]) > 1e-5 || math32.Abs(p[1]) > 1e-5 || math32.Abs(p[2]-100) > 1e-3 {
		t.Fatalf("CubeToSphere(front center) = %v, want (0, 0, 100)", p)
	}
}
