package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// WinLines are checked in order: row i then column i for each i, then the main
// diagonal and the anti-diagonal. The first uniform line decides the winner.
var WinLines = [][3]entity.Cell{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// MoveResult tells the caller whether the move was taken and what it led to.
// A rejected move leaves the game untouched and is not an error.
type MoveResult struct {
	Accepted bool
	Outcome  entity.Outcome
}

// NewGame returns an empty board with X to move.
func NewGame() entity.Game {
	return entity.Game{
		Board: entity.Board{},
		Turn:  entity.PlayerX,
	}
}

// Reset clears the board and hands the move back to X. The game ID is kept.
func Reset(game entity.Game) entity.Game {
	fresh := NewGame()
	fresh.ID = game.ID

	return fresh
}

// AttemptMove places the current turn's mark at (row, col) and returns the new game.
// Occupied cells, out-of-range coordinates and finished games are no-ops.
func AttemptMove(game entity.Game, row, col int) (entity.Game, MoveResult) {
	cell := entity.Cell{Row: row, Col: col}

	current := Evaluate(game.Board)
	if !canMove(game, current, cell) {
		return game, MoveResult{Accepted: false, Outcome: current}
	}

	game.Board[row][col] = game.Turn

	outcome := Evaluate(game.Board)
	if outcome.IsTerminal() {
		game.Turn = entity.EmptyCell
	} else {
		game.Turn = game.Turn.Opponent()
	}

	return game, MoveResult{Accepted: true, Outcome: outcome}
}

// Evaluate derives the outcome of a board.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range WinLines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Outcome{
				Status: entity.StatusWon,
				Winner: a,
				Line:   []entity.Cell{line[0], line[1], line[2]},
			}
		}
	}

	// the game continues until all the squares are full
	if board.IsFull() {
		return entity.Outcome{Status: entity.StatusDrawn}
	}

	return entity.Outcome{Status: entity.StatusOngoing}
}

func canMove(game entity.Game, current entity.Outcome, cell entity.Cell) bool {
	if current.IsTerminal() {
		return false
	}

	if !cell.InBounds() {
		return false
	}

	if game.Turn != entity.PlayerX && game.Turn != entity.PlayerO {
		return false
	}

	return game.Board.At(cell) == entity.EmptyCell
}
