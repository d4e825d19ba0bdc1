// Package board implements the 10x10 variant board, its move rules and the
// move executor.
package board

import "fmt"

// Board dimensions.
const (
	Size       = 10
	NumSquares = Size * Size
)

// Square represents a square on the board (0-99), indexed row*10+col.
// Row 0 is Black's back rank and row 9 is White's back rank.
type Square uint8

// NoSquare marks an absent square (no en-passant target, no king).
const NoSquare Square = NumSquares

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square(row*Size + col)
}

// squareAt returns the square at (row, col), or false if it lies off the board.
func squareAt(row, col int) (Square, bool) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return NoSquare, false
	}
	return NewSquare(row, col), true
}

// Row returns the row of the square (0-9).
func (sq Square) Row() int {
	return int(sq) / Size
}

// Col returns the column of the square (0-9).
func (sq Square) Col() int {
	return int(sq) % Size
}

// Parity returns (row+col) mod 2, the square's colour class.
func (sq Square) Parity() int {
	return (sq.Row() + sq.Col()) & 1
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Offset returns the square displaced by (dr, dc), or false if that falls off the board.
func (sq Square) Offset(dr, dc int) (Square, bool) {
	return squareAt(sq.Row()+dr, sq.Col()+dc)
}

// String returns a file/rank label such as "e1" or "a10".
// Files run a-j left to right and ranks count up from White's back rank.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col(), Size-sq.Row())
}
