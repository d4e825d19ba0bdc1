package board

// backRankLayout is the major-piece row, columns 0-9, for both colors.
var backRankLayout = [Size]PieceKind{
	Rook, Knight, Bishop, Jester, King, Queen, Bureaucrat, Bishop, Knight, Rook,
}

// pawnRankLayout is the second row, columns 0-9, for both colors.
var pawnRankLayout = [Size]PieceKind{
	Pawn, Squire, Paladin, Pawn, Prince, Princess, Pawn, Paladin, Squire, Pawn,
}

// NewBoard creates the starting position.
func NewBoard() *Board {
	b := emptyBoard()
	for _, c := range [2]Color{White, Black} {
		for col := 0; col < Size; col++ {
			b.place(NewSquare(c.backRank(), col), NewPiece(backRankLayout[col], c))
			b.place(NewSquare(c.pawnRank(), col), NewPiece(pawnRankLayout[col], c))
		}
	}
	return b
}
