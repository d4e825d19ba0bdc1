package ui

import "github.com/SiddhanthDubey/chess2.0/internal/board"

// boardView maps between board squares and logical screen pixels. When
// flipped the board is rotated half a turn, so both rows and columns are
// mirrored.
type boardView struct {
	squareSize int
	flipped    bool
}

func (v boardView) boardSize() int {
	return v.squareSize * board.Size
}

// display converts a board row/column into the row/column drawn on screen.
func (v boardView) display(row, col int) (int, int) {
	if v.flipped {
		return board.Size - 1 - row, board.Size - 1 - col
	}
	return row, col
}

// squareToScreen returns the top-left pixel of sq.
func (v boardView) squareToScreen(sq board.Square) (int, int) {
	row, col := v.display(sq.Row(), sq.Col())
	return col * v.squareSize, row * v.squareSize
}

// screenToSquare returns the square under the pixel, or NoSquare when the
// pixel is off the board.
func (v boardView) screenToSquare(x, y int) board.Square {
	if x < 0 || y < 0 || x >= v.boardSize() || y >= v.boardSize() {
		return board.NoSquare
	}
	// display is its own inverse
	row, col := v.display(y/v.squareSize, x/v.squareSize)
	return board.NewSquare(row, col)
}
