package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	actionMove  = "move"
	actionReset = "reset"
	actionHelp  = "help"
	actionQuit  = "quit"
	actionExit  = "exit"
)

// Message is a single parsed input line.
type Message struct {
	Action string
	Cell   entity.Cell
}

// ParseMessage accepts "<row> <col>", "move <row> <col>", "reset", "help", "quit" and "exit".
func ParseMessage(line string) (*Message, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty input", apperror.ErrInvalidCommand)
	}

	if fields[0] == actionMove {
		fields = fields[1:]
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: move needs a row and a column", apperror.ErrInvalidCommand)
		}
	}

	switch fields[0] {
	case actionReset, actionHelp, actionQuit, actionExit:
		if len(fields) != 1 {
			return nil, fmt.Errorf("%w: %s takes no arguments", apperror.ErrInvalidCommand, fields[0])
		}

		return &Message{Action: fields[0]}, nil
	}

	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidCommand, line)
	}

	cell, err := parseCell(fields[0], fields[1])
	if err != nil {
		return nil, err
	}

	return &Message{Action: actionMove, Cell: cell}, nil
}

func parseCell(rawRow, rawCol string) (entity.Cell, error) {
	row, err := strconv.Atoi(rawRow)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidCommand, rawRow)
	}

	col, err := strconv.Atoi(rawCol)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidCommand, rawCol)
	}

	cell := entity.Cell{Row: row, Col: col}
	if !cell.InBounds() {
		return entity.Cell{}, fmt.Errorf("%w: row and column must be between 0 and %d", apperror.ErrInvalidCell, entity.BoardSize-1)
	}

	return cell, nil
}
