package board

// trialUndo holds what makeTrial changed so unmakeTrial can restore it.
type trialUndo struct {
	from, to   Square
	moved      Piece
	captured   Piece
	epSquare   Square // square of a pawn removed en passant, or NoSquare
	epCaptured Piece
}

// makeTrial places the piece on from at to, removing any captured piece,
// including a pawn taken en passant. Castling rook hops, promotions and
// substitutions are not applied; the result is only used for king safety.
func (b *Board) makeTrial(from, to Square) trialUndo {
	u := trialUndo{
		from:     from,
		to:       to,
		moved:    b.squares[from],
		captured: b.squares[to],
		epSquare: NoSquare,
	}
	if u.moved.Kind() == Pawn && b.isEnPassantCapture(u.moved.Color(), from, to) {
		u.epSquare = b.enPassant
		u.epCaptured = b.remove(b.enPassant)
	}
	b.squares[from] = NoPiece
	b.squares[to] = u.moved
	return u
}

// unmakeTrial reverses makeTrial.
func (b *Board) unmakeTrial(u trialUndo) {
	b.squares[u.to] = u.captured
	b.squares[u.from] = u.moved
	if u.epSquare != NoSquare {
		b.squares[u.epSquare] = u.epCaptured
	}
}

// exposes reports whether moving from -> to leaves c threatened. The board
// is restored before returning.
func (b *Board) exposes(c Color, from, to Square) bool {
	u := b.makeTrial(from, to)
	defer b.unmakeTrial(u)
	return b.IsThreatened(c)
}

// LegalMoves returns the destinations of the piece on sq that do not leave
// its own color threatened.
func (b *Board) LegalMoves(sq Square) SquareSet {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return SquareSet{}
	}
	c := p.Color()
	var legal SquareSet
	b.movesFor(p.Kind(), c, sq).ForEach(func(to Square) {
		if !b.exposes(c, sq, to) {
			legal = legal.Add(to)
		}
	})
	return legal
}

// HasLegalMoves returns true if any piece of c has a legal move.
func (b *Board) HasLegalMoves(c Color) bool {
	for sq := Square(0); sq < NoSquare; sq++ {
		p := b.squares[sq]
		if p == NoPiece || p.Color() != c {
			continue
		}
		if !b.LegalMoves(sq).IsEmpty() {
			return true
		}
	}
	return false
}

// AllLegalMoves lists every legal move for c, ordered by origin then
// destination square.
func (b *Board) AllLegalMoves(c Color) []Move {
	var moves []Move
	b.Occupied(c).ForEach(func(from Square) {
		b.LegalMoves(from).ForEach(func(to Square) {
			moves = append(moves, Move{From: from, To: to})
		})
	})
	return moves
}
