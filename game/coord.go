package game

import "fmt"

// Coord identifies a cell by row and column, row 0 at the top.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Directions lists the 8 unit steps around a cell. The order is fixed since it decides
// the order in which legal moves are discovered.
var Directions = [8]Coord{
	{-1, -1}, {-1, 0}, {0, -1}, {1, -1},
	{-1, 1}, {0, 1}, {1, 0}, {1, 1},
}

func (c Coord) InBounds() bool {
	return min(c.Row, c.Col) >= 0 && max(c.Row, c.Col) < Size
}

func (c Coord) Add(other Coord) Coord {
	return Coord{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// To enumerates the cells from c (inclusive) to end (exclusive), moving by step.
// It fails with ErrMalformedRay when end cannot be reached from c along step.
func (c Coord) To(end Coord, step Coord) ([]Coord, error) {
	if step.Row == 0 && step.Col == 0 {
		return nil, fmt.Errorf("%w: zero step from %v to %v", ErrMalformedRay, c, end)
	}
	if (end.Row-c.Row)*step.Col != (end.Col-c.Col)*step.Row {
		return nil, fmt.Errorf("%w: %v and %v are not collinear along %v", ErrMalformedRay, c, end, step)
	}

	var ray []Coord
	for cur := c; cur != end; cur = cur.Add(step) {
		// A collinear end behind c, or one off the board, is never reached
		if !cur.InBounds() {
			return nil, fmt.Errorf("%w: %v not reachable from %v along %v", ErrMalformedRay, end, c, step)
		}
		ray = append(ray, cur)
	}
	return ray, nil
}
