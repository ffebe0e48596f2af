package game

import "errors"

// Size is the number of rows and columns of an Othello board.
const Size = 8

type Color int

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other disc color. Empty has no opponent and maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// symbol is the single character used by Board.String
func (c Color) symbol() byte {
	switch c {
	case Black:
		return 'b'
	case White:
		return 'w'
	default:
		return '.'
	}
}

type Outcome int

const (
	InProgress Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Terminal reports whether no further moves can be played.
func (o Outcome) Terminal() bool {
	return o != InProgress
}

var (
	// ErrInvalidMove is returned when a destination is not among the mover's legal moves.
	ErrInvalidMove = errors.New("invalid move")
	// ErrGameOver is returned when a move is played on a finished game.
	ErrGameOver = errors.New("game has already ended")
	// ErrMalformedRay is returned when a flip path is not a straight line.
	ErrMalformedRay = errors.New("malformed ray")
)

// Evaluate scores a board from the perspective of one color. Higher is better for that color.
type Evaluate func(b Board, perspective Color) float64

// StateHash identifies a disc arrangement, e.g. to match positions across recorded games.
type StateHash uint64
