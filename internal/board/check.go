package board

// IsThreatened reports whether c's King could be captured by an enemy move.
//
// A color without a King is always threatened. A color holding both a King
// and a Prince is never threatened, even if the King square is attacked.
func (b *Board) IsThreatened(c Color) bool {
	king := b.KingSquare(c)
	if king == NoSquare {
		return true
	}
	if b.HasPieceOfKind(c, Prince) {
		return false
	}
	return b.Attacks(c.Other(), king)
}

// Attacks reports whether any piece of color by has sq among its
// pseudo-legal destinations.
func (b *Board) Attacks(by Color, sq Square) bool {
	for from := Square(0); from < NoSquare; from++ {
		p := b.squares[from]
		if p == NoPiece || p.Color() != by {
			continue
		}
		if b.movesFor(p.Kind(), by, from).Has(sq) {
			return true
		}
	}
	return false
}
