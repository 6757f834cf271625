package cube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ringFaces = []Face{FaceFront, FaceEast, FaceBack, FaceWest}

func allPositions(t Topology) []Position {
	out := make([]Position, 0, t.CellCount())
	for i := 0; i < t.CellCount(); i++ {
		out = append(out, t.PositionAt(i))
	}
	return out
}

func TestRingClosure(t *testing.T) {
	for _, size := range []int{1, 4, 5, 16} {
		topo := New(size)
		for _, adj := range []Adjacency{Cubical, Spherical} {
			for _, face := range ringFaces {
				for y := 0; y < size; y++ {
					for x := 0; x < size; x++ {
						start := Position{Face: face, X: x, Y: y}
						got := topo.StepBy(adj, start, Offset{X: 4 * size})
						require.Equal(t, start, got, "size %d %s", size, adj)

						got = topo.StepBy(adj, start, Offset{X: -4 * size})
						require.Equal(t, start, got, "size %d %s leftwards", size, adj)
					}
				}
			}
		}
	}
}

func TestRingFaceSequence(t *testing.T) {
	topo := New(6)
	start := Position{Face: FaceFront, X: 2, Y: 3}
	want := []Face{FaceEast, FaceBack, FaceWest, FaceFront}
	p := start
	for _, face := range want {
		p = topo.StepBy(Cubical, p, Offset{X: 6})
		assert.Equal(t, Position{Face: face, X: 2, Y: 3}, p)
	}
}

func TestCubicalNeighborsAreSymmetric(t *testing.T) {
	for _, size := range []int{2, 3, 8} {
		topo := New(size)
		for _, p := range allPositions(topo) {
			for _, q := range topo.Neighbors(Cubical, p) {
				require.True(t, topo.Contains(q), "%v stepped outside the cube to %v", p, q)
				back := topo.Neighbors(Cubical, q)
				assert.Contains(t, back[:], p, "size %d: %v is not a neighbour of its neighbour %v", size, p, q)
			}
		}
	}
}

func TestSphericalStepsStayOnCube(t *testing.T) {
	for _, size := range []int{1, 2, 5, 8} {
		topo := New(size)
		for _, p := range allPositions(topo) {
			for _, d := range Directions {
				q := topo.Step(Spherical, p, d)
				require.True(t, topo.Contains(q), "size %d: %v %s -> %v", size, p, d, q)
			}
		}
	}
}

func TestCrossingOntoPoles(t *testing.T) {
	topo := New(8)
	tests := []struct {
		from Position
		dir  Direction
		want Position
	}{
		{Position{FaceFront, 3, 0}, Up, Position{FaceNorth, 3, 7}},
		{Position{FaceEast, 3, 0}, Up, Position{FaceNorth, 7, 4}},
		{Position{FaceBack, 3, 0}, Up, Position{FaceNorth, 4, 0}},
		{Position{FaceWest, 3, 0}, Up, Position{FaceNorth, 0, 3}},
		{Position{FaceFront, 3, 7}, Down, Position{FaceSouth, 3, 0}},
		{Position{FaceEast, 3, 7}, Down, Position{FaceSouth, 7, 3}},
		{Position{FaceBack, 3, 7}, Down, Position{FaceSouth, 4, 7}},
		{Position{FaceWest, 3, 7}, Down, Position{FaceSouth, 0, 4}},
		{Position{FaceNorth, 7, 2}, Right, Position{FaceEast, 5, 0}},
		{Position{FaceSouth, 0, 2}, Left, Position{FaceWest, 5, 7}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, topo.Step(Cubical, tc.from, tc.dir), "%v %s", tc.from, tc.dir)
	}
}

func TestSphericalRelabelsDirectionsOnPoles(t *testing.T) {
	topo := New(8)

	// Top triangle of the north face: Right circles the pole, which is
	// face-local Left here, while the net keeps walking face-local Right.
	p := Position{Face: FaceNorth, X: 4, Y: 1}
	assert.Equal(t, Position{FaceNorth, 3, 1}, topo.Step(Spherical, p, Right))
	assert.Equal(t, Position{FaceNorth, 5, 1}, topo.Step(Cubical, p, Right))

	// Up heads for the pole centre from every quadrant.
	assert.Equal(t, Position{FaceNorth, 4, 2}, topo.Step(Spherical, p, Up))
	assert.Equal(t, Position{FaceNorth, 5, 4}, topo.Step(Spherical, Position{FaceNorth, 6, 4}, Up))

	// Down leaves the pole through the edge of the cell's own quadrant.
	assert.Equal(t, Position{FaceBack, 3, 0}, topo.Step(Spherical, Position{FaceNorth, 4, 0}, Down))
	assert.Equal(t, Position{FaceEast, 3, 0}, topo.Step(Spherical, Position{FaceNorth, 7, 4}, Down))

	// On the south pole Down is the inward direction.
	assert.Equal(t, Position{FaceSouth, 4, 5}, topo.Step(Spherical, Position{FaceSouth, 4, 6}, Down))
	assert.Equal(t, Position{FaceBack, 3, 7}, topo.Step(Spherical, Position{FaceSouth, 4, 7}, Up))
}

func TestSphericalOrbitAroundPole(t *testing.T) {
	topo := New(8)
	start := Position{Face: FaceNorth, X: 3, Y: 6}
	p := start
	seen := map[Position]bool{}
	for i := 0; i < 64 && (i == 0 || p != start); i++ {
		require.Equal(t, FaceNorth, p.Face)
		seen[p] = true
		p = topo.Step(Spherical, p, Right)
	}
	assert.Equal(t, start, p, "walking Right should circle back to the start")
	assert.Greater(t, len(seen), 8)
}

func TestStepByOrderIsHorizontalFirst(t *testing.T) {
	topo := New(8)
	start := Position{Face: FaceFront, X: 7, Y: 0}
	got := topo.StepBy(Cubical, start, Offset{X: 1, Y: -1})
	// Right onto the east face, then up onto the north pole.
	assert.Equal(t, topo.Step(Cubical, topo.Step(Cubical, start, Right), Up), got)
	assert.Equal(t, FaceNorth, got.Face)
	assert.NotEqual(t, topo.Step(Cubical, topo.Step(Cubical, start, Up), Right), got)
}

func TestQuadrantTieBreaks(t *testing.T) {
	tests := []struct {
		size, x, y int
		dir        Direction
		want       Direction
	}{
		{8, 5, 1, Right, Up},
		{8, 6, 4, Right, Right},
		{8, 3, 6, Right, Down},
		{8, 1, 4, Right, Left},
		{8, 6, 1, Left, Right},
		{8, 6, 1, Right, Up},
		{8, 1, 6, Left, Left},
		{8, 1, 6, Up, Down},
		{8, 6, 6, Left, Down},
		{8, 6, 6, Right, Right},
		{8, 1, 1, Left, Up},
		{8, 1, 1, Down, Left},
		{5, 2, 2, Left, Right},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, quadrant(tc.size, tc.x, tc.y, tc.dir), "(%d,%d) size %d %s", tc.x, tc.y, tc.size, tc.dir)
	}
}

func TestBrokenTableReportsTopologyError(t *testing.T) {
	topo := New(4)
	bogus := Position{Face: Face(9), X: 3, Y: 3}

	var got error
	func() {
		defer func() {
			if r := recover(); r != nil {
				got, _ = r.(error)
			}
		}()
		topo.Step(Cubical, bogus, Right)
	}()

	var topoErr *TopologyError
	require.True(t, errors.As(got, &topoErr), "expected *TopologyError, got %v", got)
	assert.Equal(t, Face(9), topoErr.Face)
	assert.Equal(t, Right, topoErr.Edge)

	_, err := NeighborFace(Face(9), Up)
	assert.ErrorAs(t, err, &topoErr)
}

func TestNeighborFaceRing(t *testing.T) {
	for i, face := range ringFaces {
		next, err := NeighborFace(face, Right)
		require.NoError(t, err)
		assert.Equal(t, ringFaces[(i+1)%len(ringFaces)], next)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	topo := New(5)
	for i := 0; i < topo.CellCount(); i++ {
		require.Equal(t, i, topo.Index(topo.PositionAt(i)))
	}
}
