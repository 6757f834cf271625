package cube

// NetSize returns the dimensions of the unfolded net: four faces wide and
// three faces tall.
func (t Topology) NetSize() (w, h int) {
	return 4 * t.size, 3 * t.size
}

// NetPosition maps a pixel of the unfolded net to the cell drawn there. The
// middle row holds the ring (west, front, east, back); the top and bottom
// rows repeat the north and south faces, rotated so every copy lines up with
// the ring face beneath or above it. ok is false outside the net.
func (t Topology) NetPosition(nx, ny int) (Position, bool) {
	w, h := t.NetSize()
	if nx < 0 || ny < 0 || nx >= w || ny >= h {
		return Position{}, false
	}
	n, last := t.size, t.size-1
	col := nx / n
	fx, fy := nx%n, ny%n
	switch ny / n {
	case 0:
		switch col {
		case 0:
			return Position{FaceNorth, last - fy, fx}, true
		case 1:
			return Position{FaceNorth, fx, fy}, true
		case 2:
			return Position{FaceNorth, fy, last - fx}, true
		default:
			return Position{FaceNorth, last - fx, last - fy}, true
		}
	case 1:
		ring := [4]Face{FaceWest, FaceFront, FaceEast, FaceBack}
		return Position{ring[col], fx, fy}, true
	default:
		switch col {
		case 0:
			return Position{FaceSouth, fy, last - fx}, true
		case 1:
			return Position{FaceSouth, fx, fy}, true
		case 2:
			return Position{FaceSouth, last - fy, fx}, true
		default:
			return Position{FaceSouth, last - fx, last - fy}, true
		}
	}
}

// NetPixel is the inverse of NetPosition for the primary copy of each cell:
// ring faces map to their own column and the poles to the copies drawn above
// and below the front face.
func (t Topology) NetPixel(p Position) (nx, ny int) {
	n := t.size
	switch p.Face {
	case FaceNorth:
		return n + p.X, p.Y
	case FaceSouth:
		return n + p.X, 2*n + p.Y
	case FaceWest:
		return p.X, n + p.Y
	case FaceFront:
		return n + p.X, n + p.Y
	case FaceEast:
		return 2*n + p.X, n + p.Y
	default:
		return 3*n + p.X, n + p.Y
	}
}

// IntSource is the slice of a random source needed to pick positions.
type IntSource interface {
	IntN(n int) int
}

// RandomPosition samples a face and coordinates uniformly.
func (t Topology) RandomPosition(r IntSource) Position {
	x := r.IntN(t.size)
	y := r.IntN(t.size)
	return Position{Face: Face(r.IntN(FaceCount)), X: x, Y: y}
}
