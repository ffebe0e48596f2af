package game

// Term weights of the positional heuristic.
const (
	pieceWeight     = 10
	cornerWeight    = 801.724
	closenessWeight = 382.026
	mobilityWeight  = 78.922
	frontierWeight  = 74.396
	squareWeight    = 10
)

// squareValues is the static disk-square table.
var squareValues = [Size][Size]float64{
	{20, -3, 11, 8, 8, 11, -3, 20},
	{-3, -7, -4, 1, 1, -4, -7, -3},
	{11, -4, 2, 2, 2, 2, -4, 11},
	{8, 1, 2, -3, -3, 2, 1, 8},
	{8, 1, 2, -3, -3, 2, 1, 8},
	{11, -4, 2, 2, 2, 2, -4, 11},
	{-3, -7, -4, 1, 1, -4, -7, -3},
	{20, -3, 11, 8, 8, 11, -3, 20},
}

// corners maps every corner to the three cells around it.
var corners = []struct {
	corner    Coord
	adjacents [3]Coord
}{
	{Coord{0, 0}, [3]Coord{{0, 1}, {1, 1}, {1, 0}}},
	{Coord{0, 7}, [3]Coord{{0, 6}, {1, 6}, {1, 7}}},
	{Coord{7, 0}, [3]Coord{{7, 1}, {6, 1}, {6, 0}}},
	{Coord{7, 7}, [3]Coord{{6, 7}, {6, 6}, {7, 6}}},
}

// Terms holds the unweighted components of the positional heuristic.
type Terms struct {
	Pieces    float64 // p: disc count differential
	Frontier  float64 // f: frontier disc differential, positive when the opponent is more exposed
	Corners   float64 // c: corner occupancy
	Closeness float64 // l: discs next to empty corners, negative when mine
	Mobility  float64 // m: legal move differential
	Squares   float64 // d: disk-square table sum
}

// Score combines the terms with their weights.
func (t Terms) Score() float64 {
	return pieceWeight*t.Pieces +
		cornerWeight*t.Corners +
		closenessWeight*t.Closeness +
		mobilityWeight*t.Mobility +
		frontierWeight*t.Frontier +
		squareWeight*t.Squares
}

// EvaluatePosition scores b from the perspective of the given color using disc count,
// frontier exposure, corner occupancy, corner closeness, mobility and square values.
func EvaluatePosition(b Board, perspective Color) float64 {
	return EvaluateTerms(b, perspective).Score()
}

var _ Evaluate = EvaluatePosition

func EvaluateTerms(b Board, perspective Color) Terms {
	me := perspective
	opp := perspective.Opponent()

	var t Terms
	myTiles, oppTiles := 0, 0
	myFront, oppFront := 0, 0

	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			color := b.cells[i][j]
			switch color {
			case me:
				t.Squares += squareValues[i][j]
				myTiles++
			case opp:
				t.Squares -= squareValues[i][j]
				oppTiles++
			default:
				continue
			}

			if b.isFrontier(Coord{Row: i, Col: j}) {
				if color == me {
					myFront++
				} else {
					oppFront++
				}
			}
		}
	}

	t.Pieces = relative(myTiles, oppTiles)
	// More exposed discs is a liability
	t.Frontier = -relative(myFront, oppFront)

	myCorners, oppCorners := 0, 0
	myClose, oppClose := 0, 0
	for _, c := range corners {
		switch b.At(c.corner) {
		case me:
			myCorners++
		case opp:
			oppCorners++
		default:
			for _, adj := range c.adjacents {
				switch b.At(adj) {
				case me:
					myClose++
				case opp:
					oppClose++
				}
			}
		}
	}
	t.Corners = 25 * float64(myCorners-oppCorners)
	t.Closeness = -12.5 * float64(myClose-oppClose)

	t.Mobility = relative(len(b.LegalMoves(me)), len(b.LegalMoves(opp)))
	return t
}

// isFrontier reports whether the disc at c touches at least one empty cell.
func (b Board) isFrontier(c Coord) bool {
	for _, d := range Directions {
		if b.IsEmpty(c.Add(d)) {
			return true
		}
	}
	return false
}

// relative returns the share of the larger side in percent, signed towards mine.
// Ties, including 0/0, score 0.
func relative(mine, theirs int) float64 {
	total := float64(mine + theirs)
	switch {
	case mine > theirs:
		return 100 * float64(mine) / total
	case mine < theirs:
		return -100 * float64(theirs) / total
	default:
		return 0
	}
}
