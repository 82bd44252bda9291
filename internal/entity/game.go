package entity

import "strings"

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDrawn   Status = "drawn"
)

const BoardSize = 3

// Cell addresses a square on the board by row and column, both zero-based.
type Cell struct {
	Row int
	Col int
}

func (that Cell) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Board is a row-major 3x3 grid.
type Board [BoardSize][BoardSize]Mark

func (that *Board) At(cell Cell) Mark {
	return that[cell.Row][cell.Col]
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, mark := range row {
			if mark == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, m := range row {
			if m == mark {
				count++
			}
		}
	}

	return count
}

// String renders the board as three lines, empty cells shown as dots.
func (that *Board) String() string {
	var sb strings.Builder

	for i, row := range that {
		for j, mark := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}

			if mark == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(mark))
			}
		}

		if i < BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Outcome is derived from the board after every move, it is never stored.
type Outcome struct {
	Status Status
	Winner Mark
	Line   []Cell
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

type Game struct {
	ID    string `json:"id"`
	Board Board  `json:"board"`
	Turn  Mark   `json:"turn"`
}

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}
