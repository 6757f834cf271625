package cube

// crossing describes what happens when a step leaves a face through one of
// its edges: the destination face and the coordinate transform. apply is
// given last = size-1 and the coordinates on the source edge.
type crossing struct {
	to    Face
	apply func(last, x, y int) (int, int)
}

type edgeKey struct {
	face Face
	edge Direction
}

func toLeftColumn(last, x, y int) (int, int)  { return 0, y }
func toRightColumn(last, x, y int) (int, int) { return last, y }

// crossings holds one entry per face edge. The ring faces wrap into each other
// row for row; each ring face meets the poles with its own rotation.
var crossings = map[edgeKey]crossing{
	// Equatorial ring, east/west.
	{FaceFront, Right}: {FaceEast, toLeftColumn},
	{FaceFront, Left}:  {FaceWest, toRightColumn},
	{FaceEast, Right}:  {FaceBack, toLeftColumn},
	{FaceEast, Left}:   {FaceFront, toRightColumn},
	{FaceBack, Right}:  {FaceWest, toLeftColumn},
	{FaceBack, Left}:   {FaceEast, toRightColumn},
	{FaceWest, Right}:  {FaceFront, toLeftColumn},
	{FaceWest, Left}:   {FaceBack, toRightColumn},

	// Ring onto the north pole.
	{FaceFront, Up}: {FaceNorth, func(last, x, y int) (int, int) { return x, last }},
	{FaceEast, Up}:  {FaceNorth, func(last, x, y int) (int, int) { return last, last - x }},
	{FaceBack, Up}:  {FaceNorth, func(last, x, y int) (int, int) { return last - x, 0 }},
	{FaceWest, Up}:  {FaceNorth, func(last, x, y int) (int, int) { return 0, x }},

	// Ring onto the south pole.
	{FaceFront, Down}: {FaceSouth, func(last, x, y int) (int, int) { return x, 0 }},
	{FaceEast, Down}:  {FaceSouth, func(last, x, y int) (int, int) { return last, x }},
	{FaceBack, Down}:  {FaceSouth, func(last, x, y int) (int, int) { return last - x, last }},
	{FaceWest, Down}:  {FaceSouth, func(last, x, y int) (int, int) { return 0, last - x }},

	// North pole onto the ring.
	{FaceNorth, Right}: {FaceEast, func(last, x, y int) (int, int) { return last - y, 0 }},
	{FaceNorth, Left}:  {FaceWest, func(last, x, y int) (int, int) { return y, 0 }},
	{FaceNorth, Up}:    {FaceBack, func(last, x, y int) (int, int) { return last - x, 0 }},
	{FaceNorth, Down}:  {FaceFront, func(last, x, y int) (int, int) { return x, 0 }},

	// South pole onto the ring.
	{FaceSouth, Right}: {FaceEast, func(last, x, y int) (int, int) { return y, last }},
	{FaceSouth, Left}:  {FaceWest, func(last, x, y int) (int, int) { return last - y, last }},
	{FaceSouth, Up}:    {FaceFront, func(last, x, y int) (int, int) { return x, last }},
	{FaceSouth, Down}:  {FaceBack, func(last, x, y int) (int, int) { return last - x, last }},
}

func lookupCrossing(face Face, edge Direction) (crossing, error) {
	c, ok := crossings[edgeKey{face: face, edge: edge}]
	if !ok {
		return crossing{}, &TopologyError{Face: face, Edge: edge}
	}
	return c, nil
}

// NeighborFace returns the face reached by leaving face through edge.
func NeighborFace(face Face, edge Direction) (Face, error) {
	c, err := lookupCrossing(face, edge)
	if err != nil {
		return 0, err
	}
	return c.to, nil
}
