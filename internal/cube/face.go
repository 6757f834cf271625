package cube

import "fmt"

// Face enumerates the six faces of the cube. North and South are the polar
// faces; East, West, Front and Back form the equatorial ring.
type Face uint8

const (
	FaceNorth Face = iota
	FaceSouth
	FaceEast
	FaceWest
	FaceFront
	FaceBack
)

// FaceCount is the number of faces on the cube.
const FaceCount = 6

// Faces lists every face in update order: both poles, then the ring.
var Faces = [FaceCount]Face{FaceNorth, FaceSouth, FaceEast, FaceWest, FaceFront, FaceBack}

// IsPolar reports whether f is one of the two pole faces.
func (f Face) IsPolar() bool { return f == FaceNorth || f == FaceSouth }

// Valid reports whether f names one of the six faces.
func (f Face) Valid() bool { return f < FaceCount }

func (f Face) String() string {
	switch f {
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceEast:
		return "east"
	case FaceWest:
		return "west"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	default:
		return fmt.Sprintf("face(%d)", uint8(f))
	}
}

// Direction is a single grid step in face-local coordinates. Up decreases y.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four orthogonal directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit coordinate change for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Hemisphere identifies which half of the planet a position lies in.
type Hemisphere uint8

const (
	HemisphereNorth Hemisphere = iota
	HemisphereSouth
)

func (h Hemisphere) String() string {
	if h == HemisphereNorth {
		return "north"
	}
	return "south"
}

// Position addresses a single cell: a face plus face-local coordinates.
// Positions are comparable and usable as map keys.
type Position struct {
	Face Face
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("%s(%d,%d)", p.Face, p.X, p.Y)
}

// Offset is a relative move applied with StepBy.
type Offset struct {
	X, Y int
}
