package planet

// childEmitOrder is the order children contribute their corners to the vertex stream.
var childEmitOrder = [4]Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight}

// cornerEmitOrder is the order a child's four corners are written.
var cornerEmitOrder = [4]Corner{CornerTopLeft, CornerBottomRight, CornerBottomLeft, CornerTopRight}

// childSlot and cornerSlot invert the emit orders so triangles can address a vertex by corner.
var (
	childSlot  = [4]uint32{CornerTopLeft: 0, CornerTopRight: 1, CornerBottomLeft: 2, CornerBottomRight: 3}
	cornerSlot = [4]uint32{CornerTopLeft: 0, CornerBottomRight: 1, CornerBottomLeft: 2, CornerTopRight: 3}
)

// addChildrenVertices appends this split node's 2x2 block of children to the mesh and
// recurses into split children.
//
// Each leaf child is drawn as a fan of half-triangles from the block center to its two outer
// sides. A half-triangle is only drawn when the child has a neighbor on that side; when both
// children along a block edge lack one, the coarser neighbor owns that edge unsubdivided and a
// single triangle spanning the whole edge is drawn instead, so no vertex sits mid-edge.
// Triangles wind counter-clockwise seen from outside the planet.
//
// Parameters:
//   - vertices: the frame's vertex scratch
//   - indices: the frame's index scratch
func (n *quadTree) addChildrenVertices(vertices *chunkedSlice[Vertex], indices *chunkedSlice[uint32]) {
	if !n.isSplit {
		return
	}

	base := uint32(vertices.count())
	for _, c := range childEmitOrder {
		child := n.children[c]
		for _, k := range cornerEmitOrder {
			vertices.push(child.corners[k].vertex())
		}
	}
	at := func(child, k Corner) uint32 {
		return base + childSlot[child]*4 + cornerSlot[k]
	}
	triangle := func(a, b, c uint32) {
		indices.push(a)
		indices.push(b)
		indices.push(c)
	}

	for c := CornerTopLeft; c <= CornerBottomLeft; c++ {
		child := n.children[c]
		if child.isSplit {
			continue
		}
		inner := at(c, c.Rotate(2))
		for _, side := range [2]Orientation{Orientation((c + 3) % 4), Orientation(c)} {
			if child.neighbors[side] == nil {
				continue
			}
			start, end := sideCorners(side)
			triangle(inner, at(c, end), at(c, start))
		}
	}

	center := at(CornerTopLeft, CornerBottomRight)
	for side := OrientationTop; side <= OrientationLeft; side++ {
		start, end := sideCorners(side)
		a, b := n.children[start], n.children[end]
		if a.isSplit || b.isSplit {
			continue
		}
		if a.neighbors[side] != nil || b.neighbors[side] != nil {
			continue
		}
		triangle(center, at(end, end), at(start, start))
	}

	for _, c := range childEmitOrder {
		if child := n.children[c]; child.isSplit {
			child.addChildrenVertices(vertices, indices)
		}
	}
}
