package game

import (
	"errors"
	"testing"
	"time"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
)

func sq(row, col int) board.Square {
	return board.NewSquare(row, col)
}

// promotionBoard has a White pawn one step from promoting.
func promotionBoard() *board.Board {
	return board.NewBoardFromSetup(board.NewSetup().
		Put(sq(9, 9), board.NewPiece(board.King, board.White)).
		Put(sq(5, 0), board.NewPiece(board.King, board.Black)).
		Put(sq(1, 2), board.NewPiece(board.Pawn, board.White)))
}

func TestNewGame(t *testing.T) {
	g := New()
	if g.ToMove() != board.White {
		t.Errorf("ToMove() = %v, want White", g.ToMove())
	}
	if g.Status().State != board.InProgress {
		t.Errorf("Status() = %v", g.Status())
	}
	if g.ID() == "" || g.ID() == New().ID() {
		t.Errorf("ID() = %q should be unique and non-empty", g.ID())
	}
	if g.Selected() != board.NoSquare {
		t.Errorf("Selected() = %v, want none", g.Selected())
	}
}

func TestSelectPolicy(t *testing.T) {
	tests := []struct {
		name string
		at   board.Square
		want bool
	}{
		{"own piece", sq(8, 0), true},
		{"empty square", sq(5, 5), false},
		{"opponent piece", sq(1, 0), false},
		{"off board", board.NoSquare, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			if got := g.Select(tc.at); got != tc.want {
				t.Errorf("Select(%v) = %v, want %v", tc.at, got, tc.want)
			}
			if tc.want && g.Targets().Len() != 2 {
				t.Errorf("Targets() = %v, want two pawn moves", g.Targets())
			}
			if !tc.want && (g.Selected() != board.NoSquare || !g.Targets().IsEmpty()) {
				t.Errorf("selection not cleared: %v %v", g.Selected(), g.Targets())
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	t.Run("legal destination plays", func(t *testing.T) {
		g := New()
		g.Select(sq(8, 3))
		if got := g.Submit(sq(6, 3)); got != Played {
			t.Fatalf("Submit = %v, want played", got)
		}
		if g.ToMove() != board.Black {
			t.Errorf("ToMove() = %v, want Black", g.ToMove())
		}
		b := g.Board()
		if b.EnPassant() != sq(6, 3) {
			t.Errorf("EnPassant() = %v", b.EnPassant())
		}
		if len(g.History()) != 1 || g.History()[0].To != sq(6, 3) {
			t.Errorf("History() = %v", g.History())
		}
	})

	t.Run("illegal destination clears the selection", func(t *testing.T) {
		g := New()
		g.Select(sq(8, 3))
		if got := g.Submit(sq(4, 3)); got != Ignored {
			t.Errorf("Submit = %v, want ignored", got)
		}
		if g.Selected() != board.NoSquare || g.ToMove() != board.White {
			t.Errorf("state changed: selected %v, to move %v", g.Selected(), g.ToMove())
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		g := New()
		if got := g.Submit(sq(6, 3)); got != Ignored {
			t.Errorf("Submit = %v, want ignored", got)
		}
	})

	t.Run("opponent cannot move out of turn", func(t *testing.T) {
		g := New()
		if got := g.Move(sq(1, 0), sq(3, 0)); got != Ignored {
			t.Errorf("Move = %v, want ignored", got)
		}
	})
}

func TestTwoPhasePromotion(t *testing.T) {
	g := NewFromBoard(promotionBoard(), board.White)

	if got := g.Move(sq(1, 2), sq(0, 2)); got != PromotionPending {
		t.Fatalf("Move = %v, want promotion pending", got)
	}
	c, ok := g.PendingPromotion()
	if !ok || c != board.White {
		t.Fatalf("PendingPromotion() = %v, %v", c, ok)
	}
	if g.ToMove() != board.White {
		t.Error("turn passed before the promotion was chosen")
	}
	if g.Select(sq(9, 9)) {
		t.Error("Select must be refused while a promotion is pending")
	}
	if !g.LegalMoves(sq(9, 9)).IsEmpty() {
		t.Error("LegalMoves must be empty while a promotion is pending")
	}

	res, err := g.Promote(board.Princess)
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if res.Promoted != board.Princess {
		t.Errorf("Promoted = %v, want Princess", res.Promoted)
	}
	b := g.Board()
	if b.PieceAt(sq(0, 2)) != board.NewPiece(board.Princess, board.White) {
		t.Errorf("board after promotion:\n%v", &b)
	}
	if g.ToMove() != board.Black {
		t.Errorf("ToMove() = %v, want Black", g.ToMove())
	}
	if _, ok := g.PendingPromotion(); ok {
		t.Error("promotion still pending")
	}

	if _, err := g.Promote(board.Queen); !errors.Is(err, ErrNoPendingPromotion) {
		t.Errorf("second Promote error = %v, want ErrNoPendingPromotion", err)
	}
}

func TestInvalidPromotionKeepsPending(t *testing.T) {
	g := NewFromBoard(promotionBoard(), board.White)
	if got := g.Move(sq(1, 2), sq(0, 2)); got != PromotionPending {
		t.Fatalf("Move = %v, want promotion pending", got)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic for King")
			}
		}()
		g.Promote(board.King)
	}()

	if _, ok := g.PendingPromotion(); !ok {
		t.Fatal("promotion is no longer pending")
	}
	b := g.Board()
	if b.PieceAt(sq(1, 2)) != board.NewPiece(board.Pawn, board.White) || !b.IsEmpty(sq(0, 2)) {
		t.Errorf("board changed:\n%v", &b)
	}
	if len(g.History()) != 0 {
		t.Errorf("History() has %d plies, want 0", len(g.History()))
	}

	if _, err := g.Promote(board.Queen); err != nil {
		t.Fatalf("Promote: %v", err)
	}
	b = g.Board()
	if b.PieceAt(sq(0, 2)) != board.NewPiece(board.Queen, board.White) {
		t.Errorf("board after promotion:\n%v", &b)
	}
}

func TestSynchronousPromotion(t *testing.T) {
	calls := 0
	chooser := board.PromotionFunc(func(c board.Color) board.PieceKind {
		calls++
		return board.Rook
	})
	g := NewFromBoard(promotionBoard(), board.White, WithPromotionChooser(chooser))

	if got := g.Move(sq(1, 2), sq(0, 2)); got != Played {
		t.Fatalf("Move = %v, want played", got)
	}
	if calls != 1 {
		t.Errorf("chooser called %d times, want 1", calls)
	}
	b := g.Board()
	if b.PieceAt(sq(0, 2)) != board.NewPiece(board.Rook, board.White) {
		t.Errorf("board after promotion:\n%v", &b)
	}
}

func TestCheckmateEndsGame(t *testing.T) {
	// White queen slides to b9 next to the cornered Black king, defended by
	// the White king.
	b := board.NewBoardFromSetup(board.NewSetup().
		Put(sq(0, 0), board.NewPiece(board.King, board.Black)).
		Put(sq(5, 1), board.NewPiece(board.Queen, board.White)).
		Put(sq(2, 2), board.NewPiece(board.King, board.White)))

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	g := NewFromBoard(b, board.White, WithClock(func() time.Time { return now }))

	now = start.Add(90 * time.Second)
	if got := g.Move(sq(5, 1), sq(1, 1)); got != Played {
		t.Fatalf("Move = %v, want played", got)
	}

	st := g.Status()
	if st.State != board.Checkmate || st.Winner != board.White {
		t.Fatalf("Status() = %+v, want checkmate for White", st)
	}
	if g.Select(sq(0, 0)) {
		t.Error("Select must be refused after the game ends")
	}
	if _, err := g.Promote(board.Queen); !errors.Is(err, ErrGameOver) {
		t.Errorf("Promote error = %v, want ErrGameOver", err)
	}

	now = start.Add(time.Hour)
	r, over := g.Result()
	if !over || r.Plies != 1 || r.Duration != 90*time.Second || r.ID != g.ID() {
		t.Errorf("Result() = %+v, %v", r, over)
	}
}

func TestStalemateEndsGame(t *testing.T) {
	b := board.NewBoardFromSetup(board.NewSetup().
		Put(sq(0, 0), board.NewPiece(board.King, board.Black)).
		Put(sq(5, 1), board.NewPiece(board.Queen, board.White)).
		Put(sq(9, 9), board.NewPiece(board.King, board.White)))
	g := NewFromBoard(b, board.White)

	if got := g.Move(sq(5, 1), sq(2, 1)); got != Played {
		t.Fatalf("Move = %v, want played", got)
	}
	if st := g.Status(); st.State != board.Stalemate {
		t.Errorf("Status() = %+v, want stalemate", st)
	}
}

func TestJesterFollowsEitherSide(t *testing.T) {
	g := New()
	g.Move(sq(9, 1), sq(7, 2)) // White knight
	b := g.Board()
	if b.LastMoved() != board.Knight {
		t.Fatalf("LastMoved() = %v", b.LastMoved())
	}
	// Black Jester on d10 now jumps like a knight.
	moves := g.LegalMoves(sq(0, 3))
	for _, want := range []board.Square{sq(2, 2), sq(2, 4)} {
		if !moves.Has(want) {
			t.Errorf("Jester moves %v missing %v", moves, want)
		}
	}
}

func TestHistoryIsACopy(t *testing.T) {
	g := New()
	g.Move(sq(8, 0), sq(7, 0))
	h := g.History()
	h[0].Number = 99
	if g.History()[0].Number != 1 {
		t.Error("History() exposed internal state")
	}
	if last, ok := g.LastMove(); !ok || last.Color != board.White {
		t.Errorf("LastMove() = %v, %v", last, ok)
	}
}
