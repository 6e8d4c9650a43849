package planet

// linkChildren wires freshly created children to each other and to the bordering
// grandchildren of any split neighbor. A neighbor that is still a leaf is linked later,
// from its own split.
func (n *quadTree) linkChildren() {
	tl := n.children[CornerTopLeft]
	tr := n.children[CornerTopRight]
	br := n.children[CornerBottomRight]
	bl := n.children[CornerBottomLeft]

	tl.neighbors[OrientationRight], tr.neighbors[OrientationLeft] = tr, tl
	tl.neighbors[OrientationBottom], bl.neighbors[OrientationTop] = bl, tl
	tr.neighbors[OrientationBottom], br.neighbors[OrientationTop] = br, tr
	bl.neighbors[OrientationRight], br.neighbors[OrientationLeft] = br, bl

	for side := OrientationTop; side <= OrientationLeft; side++ {
		neighbor := n.neighbors[side]
		if neighbor == nil || !neighbor.isSplit {
			continue
		}

		rotation := OrientationRotation(n.face, neighbor.face)
		back := side.Opposite().Rotate(rotation)
		first, second := sideCorners(side)
		for _, c := range [2]Corner{first, second} {
			child := n.children[c]
			other := neighbor.getChild(mirrorCorner(c, side), rotation)

			child.neighbors[side] = other
			other.neighbors[back] = child
		}
	}
}

// unlinkChildren clears every backlink pointing at a child about to be released.
func (n *quadTree) unlinkChildren() {
	for _, child := range n.children {
		for side, neighbor := range child.neighbors {
			if neighbor == nil {
				continue
			}
			back := Orientation(side).Opposite().Rotate(OrientationRotation(child.face, neighbor.face))
			if neighbor.neighbors[back] == child {
				neighbor.neighbors[back] = nil
			}
			child.neighbors[side] = nil
		}
	}
}
