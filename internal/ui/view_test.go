package ui

import (
	"testing"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
)

func TestBoardViewMapping(t *testing.T) {
	tests := []struct {
		name    string
		flipped bool
		sq      board.Square
		wantX   int
		wantY   int
	}{
		{"white rook bottom left", false, board.NewSquare(9, 0), 0, 576},
		{"black rook top right", false, board.NewSquare(0, 9), 576, 0},
		{"flipped white rook top right", true, board.NewSquare(9, 0), 576, 0},
		{"flipped middle square", true, board.NewSquare(4, 3), 384, 320},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := boardView{squareSize: 64, flipped: tc.flipped}
			x, y := v.squareToScreen(tc.sq)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("squareToScreen(%v) = (%d, %d), want (%d, %d)", tc.sq, x, y, tc.wantX, tc.wantY)
			}
			// Any pixel inside the square maps back to it.
			if got := v.screenToSquare(x+63, y+1); got != tc.sq {
				t.Errorf("screenToSquare(%d, %d) = %v, want %v", x+63, y+1, got, tc.sq)
			}
		})
	}
}

func TestBoardViewOffBoard(t *testing.T) {
	v := boardView{squareSize: 64}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {640, 10}, {10, 640}} {
		if got := v.screenToSquare(p[0], p[1]); got != board.NoSquare {
			t.Errorf("screenToSquare(%d, %d) = %v, want NoSquare", p[0], p[1], got)
		}
	}
}

func TestBoardViewRoundTrip(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		v := boardView{squareSize: 64, flipped: flipped}
		for i := 0; i < board.NumSquares; i++ {
			sq := board.Square(i)
			x, y := v.squareToScreen(sq)
			if got := v.screenToSquare(x, y); got != sq {
				t.Fatalf("flipped=%v: round trip of %v gave %v", flipped, sq, got)
			}
		}
	}
}
