package board

import "log"

// DebugMoveValidation enables logging of rule-engine anomalies.
var DebugMoveValidation = false

type delta struct{ dr, dc int }

var (
	orthogonal = []delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = []delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allAround  = append(append([]delta{}, orthogonal...), diagonal...)

	knightJumps = []delta{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	squireJumps  = []delta{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	paladinJumps = []delta{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}}
)

// unbounded is a slide limit no ray on the board can reach.
const unbounded = Size

// Castling columns on the back rank.
const (
	kingHomeCol      = 4
	queensideKingCol = 1
	queensideRookCol = 2
	kingsideKingCol  = 7
	kingsideRookCol  = 6
)

// generator computes pseudo-legal destinations for a piece of color c
// standing on from.
type generator func(b *Board, c Color, from Square) SquareSet

// generators maps every kind except Jester to its move rule. Jester is
// dispatched by jesterMoves so that it can mimic exactly one other kind.
var generators = [NumKinds]generator{
	King:       kingMoves,
	Queen:      func(b *Board, c Color, from Square) SquareSet { return b.slide(c, from, allAround, unbounded) },
	Rook:       func(b *Board, c Color, from Square) SquareSet { return b.slide(c, from, orthogonal, unbounded) },
	Bishop:     func(b *Board, c Color, from Square) SquareSet { return b.slide(c, from, diagonal, unbounded) },
	Knight:     func(b *Board, c Color, from Square) SquareSet { return b.leap(c, from, knightJumps) },
	Pawn:       pawnMoves,
	Bureaucrat: bureaucratMoves,
	Squire:     func(b *Board, c Color, from Square) SquareSet { return b.leap(c, from, squireJumps) },
	Paladin:    func(b *Board, c Color, from Square) SquareSet { return b.leap(c, from, paladinJumps) },
	Prince:     func(b *Board, c Color, from Square) SquareSet { return b.slide(c, from, allAround, 2) },
	Princess:   func(b *Board, c Color, from Square) SquareSet { return b.slide(c, from, allAround, 3) },
}

// PseudoLegalMoves returns the destinations of the piece on sq before
// filtering moves that expose its own king. An empty square has none.
func (b *Board) PseudoLegalMoves(sq Square) SquareSet {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return SquareSet{}
	}
	return b.movesFor(p.Kind(), p.Color(), sq)
}

// movesFor dispatches on kind.
func (b *Board) movesFor(k PieceKind, c Color, from Square) SquareSet {
	if k == Jester {
		return b.jesterMoves(c, from)
	}
	if k >= NoKind {
		if DebugMoveValidation {
			log.Printf("MOVEGEN: no generator for kind %d at %v", k, from)
		}
		return SquareSet{}
	}
	return generators[k](b, c, from)
}

// jesterMoves generates moves as the last-moved kind would from the
// Jester's square. A Jester as the mimicked kind, or no previous move,
// yields single steps without castling.
func (b *Board) jesterMoves(c Color, from Square) SquareSet {
	var moves SquareSet
	switch mimic := b.lastMoved; mimic {
	case NoKind, Jester:
		moves = b.leap(c, from, allAround)
	default:
		moves = generators[mimic](b, c, from)
	}
	return moves.Minus(b.Occupied(c))
}

// slide walks each ray up to limit squares, stopping at the first occupied
// square and including it when it holds an enemy.
func (b *Board) slide(c Color, from Square, dirs []delta, limit int) SquareSet {
	var moves SquareSet
	for _, d := range dirs {
		sq := from
		for step := 0; step < limit; step++ {
			next, ok := sq.Offset(d.dr, d.dc)
			if !ok {
				break
			}
			sq = next
			if b.IsEmpty(sq) {
				moves = moves.Add(sq)
				continue
			}
			if b.isEnemy(sq, c) {
				moves = moves.Add(sq)
			}
			break
		}
	}
	return moves
}

// leap adds each offset that lands on an empty or enemy square, ignoring
// anything in between.
func (b *Board) leap(c Color, from Square, jumps []delta) SquareSet {
	var moves SquareSet
	for _, d := range jumps {
		to, ok := from.Offset(d.dr, d.dc)
		if !ok {
			continue
		}
		if b.IsEmpty(to) || b.isEnemy(to, c) {
			moves = moves.Add(to)
		}
	}
	return moves
}

func kingMoves(b *Board, c Color, from Square) SquareSet {
	return b.leap(c, from, allAround).Union(b.castleTargets(c))
}

// castleTargets returns the castling destinations (columns 1 and 7 on the
// back rank) while c's king is unmoved and the rook is unmoved and still
// home, with every square between them empty. Where the moving piece stands
// is not considered, so a Jester mimicking a King gets the same squares.
// Attacked squares on the way are not considered either.
func (b *Board) castleTargets(c Color) SquareSet {
	var moves SquareSet
	row := c.backRank()
	if b.castling.KingMoved(c) {
		return moves
	}
	rook := NewPiece(Rook, c)
	if !b.castling.LeftRookMoved(c) && b.squares[NewSquare(row, 0)] == rook && b.rowEmpty(row, 1, 3) {
		moves = moves.Add(NewSquare(row, queensideKingCol))
	}
	if !b.castling.RightRookMoved(c) && b.squares[NewSquare(row, Size-1)] == rook && b.rowEmpty(row, 5, 8) {
		moves = moves.Add(NewSquare(row, kingsideKingCol))
	}
	return moves
}

// rowEmpty reports whether columns lo..hi of row hold no pieces.
func (b *Board) rowEmpty(row, lo, hi int) bool {
	for col := lo; col <= hi; col++ {
		if !b.IsEmpty(NewSquare(row, col)) {
			return false
		}
	}
	return true
}

func pawnMoves(b *Board, c Color, from Square) SquareSet {
	var moves SquareSet
	dir := c.forward()

	if one, ok := from.Offset(dir, 0); ok && b.IsEmpty(one) {
		moves = moves.Add(one)
		if from.Row() == c.pawnRank() {
			if two, ok := from.Offset(2*dir, 0); ok && b.IsEmpty(two) {
				moves = moves.Add(two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		if b.isEnemy(to, c) {
			moves = moves.Add(to)
		} else if b.IsEmpty(to) && b.isEnPassantCapture(c, from, to) {
			moves = moves.Add(to)
		}
	}
	return moves
}

// isEnPassantCapture reports whether a pawn of color c moving from -> to
// captures the enemy piece that just advanced two rows.
func (b *Board) isEnPassantCapture(c Color, from, to Square) bool {
	ep := b.enPassant
	if ep == NoSquare || !b.isEnemy(ep, c) {
		return false
	}
	return from.Row() == ep.Row() &&
		to.Col() == ep.Col() &&
		to.Row() == ep.Row()+c.forward()
}

func bureaucratMoves(b *Board, c Color, from Square) SquareSet {
	var moves SquareSet
	parity := from.Parity()
	for sq := Square(0); sq < NoSquare; sq++ {
		if sq.Parity() == parity && b.IsEmpty(sq) {
			moves = moves.Add(sq)
		}
	}
	return moves
}
