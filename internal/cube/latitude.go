package cube

import "math"

// PoleEdge is the distance, in cells, from a pole to the edge of its face
// measured along the face diagonal.
func (t Topology) PoleEdge() float64 {
	half := float64(t.size) / 2
	return math.Sqrt(half * half * 2)
}

// Latitude returns 0 on the equator rows and 1 at the pole-most cells. Pole
// faces use the square-ring distance from the centre stretched to the pole
// edge; ring faces add the row distance from the pole edge. Both feed the
// same normalisation, so values compare across face types.
func (t Topology) Latitude(p Position) float64 {
	edge := t.PoleEdge()
	rings := (t.size - 1) / 2
	span := edge + 1 + float64(rings)

	var fromPole float64
	if p.Face.IsPolar() {
		if rings > 0 {
			centre := float64(t.size-1) / 2
			cheb := math.Max(math.Abs(float64(p.X)-centre), math.Abs(float64(p.Y)-centre))
			cheb -= centre - math.Floor(centre)
			fromPole = cheb / float64(rings) * edge
		}
	} else {
		row := p.Y
		if mirrored := t.size - 1 - p.Y; mirrored < row {
			row = mirrored
		}
		if row > rings {
			row = rings
		}
		fromPole = edge + 1 + float64(row)
	}
	lat := 1 - fromPole/span
	return math.Min(1, math.Max(0, lat))
}

// Hemisphere returns the pole's own hemisphere on pole faces and the half
// holding the row on ring faces.
func (t Topology) Hemisphere(p Position) Hemisphere {
	switch p.Face {
	case FaceNorth:
		return HemisphereNorth
	case FaceSouth:
		return HemisphereSouth
	}
	if p.Y < t.size/2 {
		return HemisphereNorth
	}
	return HemisphereSouth
}
