package cube

import "fmt"

// TopologyError reports a face/edge combination missing from the adjacency
// table. It always indicates a programming error, never bad input data.
type TopologyError struct {
	Face Face
	Edge Direction
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("cube: no adjacency entry for %s edge of %s face", e.Edge, e.Face)
}
