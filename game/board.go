package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Grid is the plain 8x8 representation exchanged with the tournament driver.
type Grid [Size][Size]Color

// Board is an 8x8 Othello board. It is a value type: assigning or passing a Board
// copies all cells, so search branches never share mutable state.
type Board struct {
	cells Grid
}

// NewBoard returns the standard opening position.
func NewBoard() Board {
	var b Board
	b.cells[3][3] = White
	b.cells[4][4] = White
	b.cells[3][4] = Black
	b.cells[4][3] = Black
	return b
}

func BoardFromGrid(g Grid) Board {
	return Board{cells: g}
}

func (b Board) Grid() Grid {
	return b.cells
}

// At returns the color at c. Out of bounds cells read as Empty.
func (b Board) At(c Coord) Color {
	if !c.InBounds() {
		return Empty
	}
	return b.cells[c.Row][c.Col]
}

// Set overwrites a single cell. It bypasses the rules and is meant for building positions.
func (b *Board) Set(c Coord, color Color) {
	if !c.InBounds() {
		panic(fmt.Sprintf("coordinate %v out of bounds", c))
	}
	b.cells[c.Row][c.Col] = color
}

func (b Board) InBounds(c Coord) bool {
	return c.InBounds()
}

func (b Board) IsEnemy(c Coord, mover Color) bool {
	if !c.InBounds() {
		return false
	}
	color := b.cells[c.Row][c.Col]
	return color != Empty && color != mover
}

func (b Board) IsFriend(c Coord, mover Color) bool {
	return c.InBounds() && b.cells[c.Row][c.Col] == mover
}

func (b Board) IsEmpty(c Coord) bool {
	return c.InBounds() && b.cells[c.Row][c.Col] == Empty
}

// Fields returns the coordinates holding color in row-major order.
func (b Board) Fields(color Color) []Coord {
	var fields []Coord
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b.cells[i][j] == color {
				fields = append(fields, Coord{Row: i, Col: j})
			}
		}
	}
	return fields
}

func (b Board) Count(color Color) int {
	count := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b.cells[i][j] == color {
				count++
			}
		}
	}
	return count
}

// LegalMoves returns the empty cells where mover can place a disc. Starting from every
// disc of mover, each direction is walked over enemy discs; the first empty cell after
// at least one enemy disc is a destination. A destination reachable from several discs
// or directions is reported once, at its first discovery.
func (b Board) LegalMoves(mover Color) []Coord {
	var moves []Coord
	var seen [Size][Size]bool
	for _, origin := range b.Fields(mover) {
		for _, d := range Directions {
			c := origin.Add(d)
			if !b.IsEnemy(c, mover) {
				continue
			}
			for b.IsEnemy(c, mover) {
				c = c.Add(d)
			}
			if b.IsEmpty(c) && !seen[c.Row][c.Col] {
				seen[c.Row][c.Col] = true
				moves = append(moves, c)
			}
		}
	}
	return moves
}

func (b Board) IsLegal(mover Color, dest Coord) bool {
	for _, m := range b.LegalMoves(mover) {
		if m == dest {
			return true
		}
	}
	return false
}

// ApplyMove places a disc of mover on dest and flips every enemy line it closes.
// It returns the flipped coordinates. If dest is not legal the board is left untouched.
func (b *Board) ApplyMove(mover Color, dest Coord) ([]Coord, error) {
	if !b.IsLegal(mover, dest) {
		return nil, fmt.Errorf("%w: %v for %v", ErrInvalidMove, dest, mover)
	}

	var won []Coord
	for _, d := range Directions {
		end := dest.Add(d)
		for b.IsEnemy(end, mover) {
			end = end.Add(d)
		}
		if !b.IsFriend(end, mover) {
			continue
		}
		ray, err := dest.Add(d).To(end, d)
		if err != nil {
			panic(err)
		}
		won = append(won, ray...)
	}

	for _, c := range won {
		b.cells[c.Row][c.Col] = mover
	}
	b.cells[dest.Row][dest.Col] = mover
	return won, nil
}

// Play returns a copy of b with the move applied, leaving b unchanged.
func (b Board) Play(mover Color, dest Coord) (Board, error) {
	next := b
	if _, err := next.ApplyMove(mover, dest); err != nil {
		return b, err
	}
	return next, nil
}

func (b Board) Hash() StateHash {
	hasher := fnv.New64a()
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			binary.Write(hasher, binary.LittleEndian, uint8(b.cells[i][j]))
		}
	}
	return StateHash(hasher.Sum64())
}

func (b Board) String() string {
	var sb strings.Builder
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			sb.WriteByte(b.cells[i][j].symbol())
		}
		if i < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard reads the format produced by Board.String: 8 lines of 8 characters out of
// 'b', 'w' and '.'.
func ParseBoard(s string) (Board, error) {
	var b Board
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != Size {
		return b, fmt.Errorf("expected %d rows, got %d", Size, len(lines))
	}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Size {
			return b, fmt.Errorf("row %d: expected %d cells, got %d", i, Size, len(line))
		}
		for j := 0; j < Size; j++ {
			switch line[j] {
			case 'b':
				b.cells[i][j] = Black
			case 'w':
				b.cells[i][j] = White
			case '.':
				b.cells[i][j] = Empty
			default:
				return b, fmt.Errorf("row %d col %d: unexpected cell %q", i, j, line[j])
			}
		}
	}
	return b, nil
}
