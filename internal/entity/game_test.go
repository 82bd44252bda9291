package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_InBounds(t *testing.T) {
	t.Run("Corners are in bounds", func(t *testing.T) {
		assert.True(t, Cell{Row: 0, Col: 0}.InBounds())
		assert.True(t, Cell{Row: 2, Col: 2}.InBounds())
	})

	t.Run("Negative and overflowing indexes are out of bounds", func(t *testing.T) {
		assert.False(t, Cell{Row: -1, Col: 0}.InBounds())
		assert.False(t, Cell{Row: 0, Col: 3}.InBounds())
		assert.False(t, Cell{Row: 3, Col: 1}.InBounds())
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// Then: it should not be full
		assert.False(t, board.IsFull())
	})

	t.Run("Board with every cell marked is full", func(t *testing.T) {
		// Given: a board with no empty cells
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerO},
		}

		// Then: it should be full
		assert.True(t, board.IsFull())
	})

	t.Run("One empty cell keeps the board open", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerO, EmptyCell, PlayerO},
			{PlayerO, PlayerX, PlayerO},
		}

		assert.False(t, board.IsFull())
	})
}

func TestBoard_Count(t *testing.T) {
	// Given: a board with three X marks and two O marks
	board := Board{
		{PlayerX, PlayerO, PlayerX},
		{EmptyCell, PlayerO, EmptyCell},
		{PlayerX, EmptyCell, EmptyCell},
	}

	// Then: the counts should match
	assert.Equal(t, 3, board.Count(PlayerX))
	assert.Equal(t, 2, board.Count(PlayerO))
	assert.Equal(t, 4, board.Count(EmptyCell))
}

func TestBoard_String(t *testing.T) {
	board := Board{
		{PlayerX, EmptyCell, EmptyCell},
		{EmptyCell, PlayerO, EmptyCell},
		{EmptyCell, EmptyCell, PlayerX},
	}

	assert.Equal(t, "X . .\n. O .\n. . X", board.String())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestOutcome_IsTerminal(t *testing.T) {
	assert.False(t, Outcome{Status: StatusOngoing}.IsTerminal())
	assert.True(t, Outcome{Status: StatusWon, Winner: PlayerX}.IsTerminal())
	assert.True(t, Outcome{Status: StatusDrawn}.IsTerminal())
}
