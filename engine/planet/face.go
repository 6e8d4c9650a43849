package planet

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
)

// Face identifies one of the six cube faces tiling the planet's circumscribing cube.
type Face uint8

const (
	FaceLeft Face = iota
	FaceRight
	FaceFront
	FaceBack
	FaceTop
	FaceBottom
)

// FaceCount is the number of cube faces, and therefore of root nodes.
const FaceCount = 6

// String returns the face name.
func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "Left"
	case FaceRight:
		return "Right"
	case FaceFront:
		return "Front"
	case FaceBack:
		return "Back"
	case FaceTop:
		return "Top"
	case FaceBottom:
		return "Bottom"
	}
	return "Unknown"
}

// Orientation is a side of a patch expressed in its own face frame.
// Values are numbered clockwise so a quarter turn is (o + 1) % 4.
type Orientation uint8

const (
	OrientationTop Orientation = iota
	OrientationRight
	OrientationBottom
	OrientationLeft
)

// Opposite returns the side facing o.
func (o Orientation) Opposite() Orientation {
	return (o + 2) % 4
}

// Rotate returns o turned clockwise by the given number of quarter turns.
func (o Orientation) Rotate(quarterTurns int) Orientation {
	return Orientation((int(o) + quarterTurns) % 4)
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationTop:
		return "Top"
	case OrientationRight:
		return "Right"
	case OrientationBottom:
		return "Bottom"
	case OrientationLeft:
		return "Left"
	}
	return "Unknown"
}

// Corner is a quadrant of a patch, numbered clockwise from the top-left.
// Corner c sits between orientations c-1 and c, so corners rotate exactly like orientations.
type Corner uint8

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// Rotate returns c turned clockwise by the given number of quarter turns.
func (c Corner) Rotate(quarterTurns int) Corner {
	return Corner((int(c) + quarterTurns) % 4)
}

// sideCorners returns the two corners bordering side o, in clockwise order.
func sideCorners(o Orientation) (Corner, Corner) {
	return Corner(o), Corner((o + 1) % 4)
}

// mirrorCorner returns the quadrant of the neighbor across side o that touches quadrant c.
// Only meaningful when c borders o.
func mirrorCorner(c Corner, o Orientation) Corner {
	if c == Corner(o) {
		return Corner((o + 3) % 4)
	}
	return Corner((o + 2) % 4)
}

// faceFrame is the fixed placement of a root patch on the unit cube (half edge 1).
type faceFrame struct {
	origin    common.Vec3
	widthDir  common.Vec3
	heightDir common.Vec3
	normal    common.Vec3
}

// faceFrames places each root so width × height points outward.
var faceFrames = [FaceCount]faceFrame{
	FaceLeft: {
		origin:    common.Vec3{-1, -1, -1},
		widthDir:  common.Vec3{0, 0, 1},
		heightDir: common.Vec3{0, 1, 0},
		normal:    common.Vec3{-1, 0, 0},
	},
	FaceRight: {
		origin:    common.Vec3{1, -1, 1},
		widthDir:  common.Vec3{0, 0, -1},
		heightDir: common.Vec3{0, 1, 0},
		normal:    common.Vec3{1, 0, 0},
	},
	FaceFront: {
		origin:    common.Vec3{-1, -1, 1},
		widthDir:  common.Vec3{1, 0, 0},
		heightDir: common.Vec3{0, 1, 0},
		normal:    common.Vec3{0, 0, 1},
	},
	FaceBack: {
		origin:    common.Vec3{1, -1, -1},
		widthDir:  common.Vec3{-1, 0, 0},
		heightDir: common.Vec3{0, 1, 0},
		normal:    common.Vec3{0, 0, -1},
	},
	FaceTop: {
		origin:    common.Vec3{-1, 1, 1},
		widthDir:  common.Vec3{1, 0, 0},
		heightDir: common.Vec3{0, 0, -1},
		normal:    common.Vec3{0, 1, 0},
	},
	FaceBottom: {
		origin:    common.Vec3{-1, -1, -1},
		widthDir:  common.Vec3{1, 0, 0},
		heightDir: common.Vec3{0, 0, 1},
		normal:    common.Vec3{0, -1, 0},
	},
}

// faceAdjacency lists, per face, the face across each side indexed by Orientation.
var faceAdjacency = [FaceCount][4]Face{
	FaceLeft: {
		OrientationTop:    FaceTop,
		OrientationLeft:   FaceBack,
		OrientationRight:  FaceFront,
		OrientationBottom: FaceBottom,
	},
	FaceRight: {
		OrientationTop:    FaceTop,
		OrientationLeft:   FaceFront,
		OrientationRight:  FaceBack,
		OrientationBottom: FaceBottom,
	},
	FaceFront: {
		OrientationTop:    FaceTop,
		OrientationLeft:   FaceLeft,
		OrientationRight:  FaceRight,
		OrientationBottom: FaceBottom,
	},
	FaceBack: {
		OrientationTop:    FaceTop,
		OrientationLeft:   FaceRight,
		OrientationRight:  FaceLeft,
		OrientationBottom: FaceBottom,
	},
	FaceTop: {
		OrientationTop:    FaceBack,
		OrientationLeft:   FaceLeft,
		OrientationRight:  FaceRight,
		OrientationBottom: FaceFront,
	},
	FaceBottom: {
		OrientationTop:    FaceFront,
		OrientationLeft:   FaceLeft,
		OrientationRight:  FaceRight,
		OrientationBottom: FaceBack,
	},
}

// orientationRotations[from][to] is the number of clockwise quarter turns that carry a direction
// in from's frame into to's frame across their shared edge. Same and opposite faces are 0.
var orientationRotations = [FaceCount][FaceCount]int{
	//           Left Right Front Back Top Bottom
	FaceLeft:   {0, 0, 0, 0, 1, 3},
	FaceRight:  {0, 0, 0, 0, 3, 1},
	FaceFront:  {0, 0, 0, 0, 0, 0},
	FaceBack:   {0, 0, 0, 0, 2, 2},
	FaceTop:    {3, 1, 0, 2, 0, 0},
	FaceBottom: {1, 3, 0, 2, 0, 0},
}

// OrientationRotation returns the quarter turns needed to reinterpret a direction from the
// frame of face from in the frame of face to.
//
// Parameters:
//   - from: the face the direction is expressed in
//   - to: the neighboring face to translate into
//
// Returns:
//   - int: quarter turns in [0, 3]
func OrientationRotation(from, to Face) int {
	return orientationRotations[from][to]
}

// AdjacentFace returns the face across side o of face f.
//
// Parameters:
//   - f: the face
//   - o: the side of f
//
// Returns:
//   - Face: the adjacent face
func AdjacentFace(f Face, o Orientation) Face {
	return faceAdjacency[f][o]
}
