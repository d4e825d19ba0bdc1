package board

import "testing"

// sq is shorthand for NewSquare in tests.
func sq(row, col int) Square {
	return NewSquare(row, col)
}

// wantSquares fails the test unless every square in want is in got.
func wantSquares(t *testing.T, got SquareSet, want ...Square) {
	t.Helper()
	for _, s := range want {
		if !got.Has(s) {
			t.Errorf("missing %v in %v", s, got)
		}
	}
}

// notSquares fails the test if any square in unwanted is in got.
func notSquares(t *testing.T, got SquareSet, unwanted ...Square) {
	t.Helper()
	for _, s := range unwanted {
		if got.Has(s) {
			t.Errorf("unexpected %v in %v", s, got)
		}
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		row, col int
		name     string
	}{
		{9, 0, "a1"},
		{9, 4, "e1"},
		{0, 9, "j10"},
		{6, 3, "d4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSquare(tc.row, tc.col)
			if s.Row() != tc.row || s.Col() != tc.col {
				t.Errorf("NewSquare(%d, %d) = (%d, %d)", tc.row, tc.col, s.Row(), s.Col())
			}
			if s.String() != tc.name {
				t.Errorf("String() = %q, want %q", s.String(), tc.name)
			}
		})
	}

	if _, ok := sq(0, 0).Offset(-1, 0); ok {
		t.Error("Offset off the top edge should fail")
	}
	if got, ok := sq(5, 5).Offset(2, -3); !ok || got != sq(7, 2) {
		t.Errorf("Offset(2, -3) = %v, %v; want %v", got, ok, sq(7, 2))
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q", NoSquare.String())
	}
}

func TestSquareSet(t *testing.T) {
	var s SquareSet
	for _, x := range []Square{99, 0, 64, 63, 17} {
		s = s.Add(x)
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
	got := s.Squares()
	want := []Square{0, 17, 63, 64, 99}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	s = s.Remove(64)
	if s.Has(64) || s.Len() != 4 {
		t.Errorf("Remove(64) left %v", s)
	}
	if s.Has(NoSquare) {
		t.Error("Has(NoSquare) should be false")
	}
	if !(SquareSet{}).IsEmpty() {
		t.Error("zero SquareSet should be empty")
	}
}

func TestPieceEncoding(t *testing.T) {
	for k := King; k < NoKind; k++ {
		for _, c := range [2]Color{White, Black} {
			p := NewPiece(k, c)
			if p.Kind() != k || p.Color() != c {
				t.Errorf("NewPiece(%v, %v) decodes to (%v, %v)", k, c, p.Kind(), p.Color())
			}
		}
	}
	if NewPiece(NoKind, White) != NoPiece {
		t.Error("NewPiece(NoKind) should be NoPiece")
	}
	if got := NewPiece(Princess, Black).String(); got != "w" {
		t.Errorf("black Princess = %q, want %q", got, "w")
	}
	if got := NewPiece(Bureaucrat, White).String(); got != "C" {
		t.Errorf("white Bureaucrat = %q, want %q", got, "C")
	}
	if King.IsPromotable() || Pawn.IsPromotable() || !Prince.IsPromotable() {
		t.Error("IsPromotable: King and Pawn are excluded, Prince is allowed")
	}
}

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		at   Square
		want Piece
	}{
		{sq(9, 0), NewPiece(Rook, White)},
		{sq(9, 3), NewPiece(Jester, White)},
		{sq(9, 4), NewPiece(King, White)},
		{sq(9, 5), NewPiece(Queen, White)},
		{sq(9, 6), NewPiece(Bureaucrat, White)},
		{sq(8, 1), NewPiece(Squire, White)},
		{sq(8, 2), NewPiece(Paladin, White)},
		{sq(8, 4), NewPiece(Prince, White)},
		{sq(8, 5), NewPiece(Princess, White)},
		{sq(8, 9), NewPiece(Pawn, White)},
		{sq(0, 4), NewPiece(King, Black)},
		{sq(0, 8), NewPiece(Knight, Black)},
		{sq(1, 7), NewPiece(Paladin, Black)},
		{sq(1, 8), NewPiece(Squire, Black)},
		{sq(5, 5), NoPiece},
	}
	for _, tc := range tests {
		if got := b.PieceAt(tc.at); got != tc.want {
			t.Errorf("PieceAt(%v) = %v, want %v", tc.at, got, tc.want)
		}
	}

	for _, c := range [2]Color{White, Black} {
		if n := b.Count(c); n != 20 {
			t.Errorf("%v has %d pieces, want 20", c, n)
		}
		if !b.HasPieceOfKind(c, Prince) {
			t.Errorf("%v should start with a Prince", c)
		}
	}
	if b.KingSquare(White) != sq(9, 4) || b.KingSquare(Black) != sq(0, 4) {
		t.Errorf("KingSquare = %v / %v", b.KingSquare(White), b.KingSquare(Black))
	}
	if b.EnPassant() != NoSquare || b.LastMoved() != NoKind || b.Castling() != NoneMoved {
		t.Errorf("fresh board carries history:\n%v", b)
	}
}

func TestKingSquareMissing(t *testing.T) {
	b := NewBoardFromSetup(NewSetup().Put(sq(0, 0), NewPiece(Queen, Black)))
	if got := b.KingSquare(White); got != NoSquare {
		t.Errorf("KingSquare(White) = %v, want NoSquare", got)
	}
}
