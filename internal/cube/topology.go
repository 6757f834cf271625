package cube

// Adjacency selects how steps cross face boundaries.
type Adjacency uint8

const (
	// Cubical follows the folded net: every face keeps its own axes and
	// crossing an edge lands on the neighbouring face of the net.
	Cubical Adjacency = iota
	// Spherical treats the pole faces as rounded caps: directions on a pole
	// are relabelled by quadrant so Up and Down always point toward and away
	// from the pole and Left and Right walk around it.
	Spherical
)

func (a Adjacency) String() string {
	if a == Spherical {
		return "spherical"
	}
	return "cubical"
}

// Topology answers neighbour and latitude queries for a cube whose faces are
// size x size cells.
type Topology struct {
	size int
}

// New returns the topology for faces of the given edge length. Sizes below
// one are raised to one.
func New(size int) Topology {
	if size < 1 {
		size = 1
	}
	return Topology{size: size}
}

// Size returns the edge length of a face.
func (t Topology) Size() int { return t.size }

// CellCount returns the number of cells across all six faces.
func (t Topology) CellCount() int { return FaceCount * t.size * t.size }

// Contains reports whether p addresses a cell of this cube.
func (t Topology) Contains(p Position) bool {
	return p.Face.Valid() && p.X >= 0 && p.Y >= 0 && p.X < t.size && p.Y < t.size
}

// Index returns the row-major linear index of p, faces in Faces order.
func (t Topology) Index(p Position) int {
	return (int(p.Face)*t.size+p.Y)*t.size + p.X
}

// PositionAt is the inverse of Index.
func (t Topology) PositionAt(i int) Position {
	n := t.size
	face := i / (n * n)
	rem := i % (n * n)
	return Position{Face: Face(face), X: rem % n, Y: rem / n}
}

// Step moves p a single cell in direction d. It panics with a
// *TopologyError if the adjacency table has no entry for the crossed edge.
func (t Topology) Step(adj Adjacency, p Position, d Direction) Position {
	if adj == Spherical && p.Face.IsPolar() {
		d = relabelPolar(p.Face, quadrant(t.size, p.X, p.Y, d), d)
	}
	return t.stepCubical(p, d)
}

// StepBy applies off.X single steps left or right, then off.Y single steps
// up or down. The order matters: on the pole faces the path, not just the
// displacement, decides where the walk ends.
func (t Topology) StepBy(adj Adjacency, p Position, off Offset) Position {
	horizontal, vertical := Right, Down
	dx, dy := off.X, off.Y
	if dx < 0 {
		horizontal, dx = Left, -dx
	}
	if dy < 0 {
		vertical, dy = Up, -dy
	}
	for i := 0; i < dx; i++ {
		p = t.Step(adj, p, horizontal)
	}
	for i := 0; i < dy; i++ {
		p = t.Step(adj, p, vertical)
	}
	return p
}

// Neighbors returns the four orthogonal neighbours of p clockwise from Up.
func (t Topology) Neighbors(adj Adjacency, p Position) [4]Position {
	var out [4]Position
	for i, d := range Directions {
		out[i] = t.Step(adj, p, d)
	}
	return out
}

func (t Topology) stepCubical(p Position, d Direction) Position {
	last := t.size - 1
	atEdge := (d == Up && p.Y == 0) ||
		(d == Down && p.Y == last) ||
		(d == Left && p.X == 0) ||
		(d == Right && p.X == last)
	if !atEdge {
		if !p.Face.Valid() {
			panic(&TopologyError{Face: p.Face, Edge: d})
		}
		dx, dy := d.Delta()
		return Position{Face: p.Face, X: p.X + dx, Y: p.Y + dy}
	}
	c, err := lookupCrossing(p.Face, d)
	if err != nil {
		panic(err)
	}
	x, y := c.apply(last, p.X, p.Y)
	return Position{Face: c.to, X: x, Y: y}
}

// quadrant reports which triangle of a pole face (split along both
// diagonals) the cell lies in, named after the edge that triangle touches.
// Cells on a diagonal are assigned by the travel direction so that walking
// around the pole never stalls on the seam.
func quadrant(size, x, y int, d Direction) Direction {
	anti := size - 1 - y
	switch {
	case x > y:
		switch {
		case x > anti:
			return Right
		case x < anti:
			return Up
		case d == Left:
			return Right
		default:
			return Up
		}
	case x < y:
		switch {
		case x > anti:
			return Down
		case x < anti:
			return Left
		case d == Left:
			return Left
		default:
			return Down
		}
	default:
		switch {
		case x > anti:
			if d == Left {
				return Down
			}
			return Right
		case x < anti:
			if d == Left {
				return Up
			}
			return Left
		default:
			// exact centre of an odd-sized face
			return Right
		}
	}
}

// relabelPolar converts a geographic direction on a pole face into the
// face-local direction to walk, given the cell's quadrant. Up on the north
// face and Down on the south face head toward the pole; Right and Left
// circle it.
func relabelPolar(face Face, q, d Direction) Direction {
	switch d {
	case Right:
		return circle[q]
	case Left:
		return circle[q].Opposite()
	}
	toward := (face == FaceNorth && d == Up) || (face == FaceSouth && d == Down)
	if toward {
		return q.Opposite()
	}
	return q
}

// circle maps a quadrant to the face-local direction that walks around the
// pole in the Right sense.
var circle = [4]Direction{
	Up:    Left,
	Right: Up,
	Down:  Right,
	Left:  Down,
}
