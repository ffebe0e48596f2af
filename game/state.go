package game

import "fmt"

// GameState wraps a Board with the side to move, cached disc counts and the outcome.
// Play is the only operation that changes it.
type GameState struct {
	board      Board
	player     Color
	blackCount int
	whiteCount int
	outcome    Outcome
}

// NewGame returns the standard opening with Black to move.
func NewGame() *GameState {
	return NewGameFrom(NewBoard(), Black)
}

// NewGameFrom starts a game from an arbitrary position with player to move. If player
// cannot move the turn passes immediately, as it would after a move.
func NewGameFrom(board Board, player Color) *GameState {
	if player != Black && player != White {
		panic(fmt.Sprintf("unexpected player color %v", player))
	}
	gs := &GameState{
		board:  board,
		player: player,
	}
	gs.recount()
	gs.outcome = gs.evaluateOutcome()
	return gs
}

func (gs *GameState) Copy() *GameState {
	cp := *gs
	return &cp
}

func (gs *GameState) Board() Board {
	return gs.board
}

func (gs *GameState) Player() Color {
	return gs.player
}

func (gs *GameState) Outcome() Outcome {
	return gs.outcome
}

// Counts returns the number of black and white discs.
func (gs *GameState) Counts() (black, white int) {
	return gs.blackCount, gs.whiteCount
}

func (gs *GameState) LegalMoves() []Coord {
	if gs.outcome.Terminal() {
		return nil
	}
	return gs.board.LegalMoves(gs.player)
}

// Winner returns the winning color, Empty for a draw or an unfinished game.
func (gs *GameState) Winner() Color {
	switch gs.outcome {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	default:
		return Empty
	}
}

// Play places a disc for the side to move at c.
func (gs *GameState) Play(c Coord) error {
	if gs.outcome.Terminal() {
		return ErrGameOver
	}
	if _, err := gs.board.ApplyMove(gs.player, c); err != nil {
		return err
	}
	gs.recount()
	gs.player = gs.player.Opponent()
	gs.outcome = gs.evaluateOutcome()
	return nil
}

func (gs *GameState) recount() {
	gs.blackCount = gs.board.Count(Black)
	gs.whiteCount = gs.board.Count(White)
}

// evaluateOutcome passes the turn when the side to move is stuck, and ends the game
// when the opponent is stuck as well.
func (gs *GameState) evaluateOutcome() Outcome {
	if len(gs.board.LegalMoves(gs.player)) > 0 {
		return InProgress
	}
	gs.player = gs.player.Opponent()
	if len(gs.board.LegalMoves(gs.player)) > 0 {
		return InProgress
	}

	switch {
	case gs.blackCount > gs.whiteCount:
		return BlackWins
	case gs.blackCount < gs.whiteCount:
		return WhiteWins
	default:
		return Draw
	}
}
