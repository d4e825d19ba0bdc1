package board

import (
	"fmt"
	"log"
)

// Apply executes the move from -> to with all of its side effects and
// returns what changed. The move must already be legal; Apply does not
// re-check it. chooser is consulted only when a pawn reaches row 0 or 9
// and may be nil otherwise.
//
// Apply panics if from is empty, or if chooser returns a kind outside
// PromotionKinds.
func (b *Board) Apply(from, to Square, chooser PromotionChooser) MoveResult {
	mover := b.squares[from]
	if mover == NoPiece {
		panic(fmt.Sprintf("board: apply %v-%v: no piece on %v", from, to, from))
	}
	c := mover.Color()
	row := c.backRank()
	farRank := to.Row() == 0 || to.Row() == Size-1

	promoted := NoKind
	if farRank && mover.Kind() == Pawn {
		if chooser == nil {
			panic(fmt.Sprintf("board: apply %v-%v: promotion needs a chooser", from, to))
		}
		promoted = chooser.ChoosePromotion(c)
		if !promoted.IsPromotable() {
			panic(fmt.Sprintf("board: invalid promotion kind %v for %v", promoted, c))
		}
	}

	res := MoveResult{
		Move:        Move{From: from, To: to},
		Piece:       mover,
		Captured:    NoPiece,
		CapturedAt:  NoSquare,
		RookFrom:    NoSquare,
		RookTo:      NoSquare,
		Promoted:    NoKind,
		Transformed: NoKind,
	}

	b.remove(from)

	switch mover.Kind() {
	case King:
		castling := !b.castling.KingMoved(c) &&
			from == NewSquare(row, kingHomeCol) &&
			to.Row() == row
		b.castling |= kingMovedFlag(c)
		if castling {
			b.castleRook(c, to, &res)
		}
	case Rook:
		b.markRookDeparture(c, from)
	case Pawn:
		if b.isEnPassantCapture(c, from, to) {
			res.Captured = b.remove(b.enPassant)
			res.CapturedAt = b.enPassant
			res.EnPassant = true
		}
	}

	if captured := b.remove(to); captured != NoPiece {
		res.Captured = captured
		res.CapturedAt = to
		if captured.Kind() == Rook {
			b.markRookDeparture(captured.Color(), to)
		}
	}
	b.place(to, mover)

	b.enPassant = NoSquare
	if mover.Kind() == Pawn && abs(to.Row()-from.Row()) == 2 {
		b.enPassant = to
	}

	if promoted != NoKind {
		b.setKind(to, promoted)
		res.Promoted = promoted
	}
	if farRank {
		switch b.squares[to].Kind() {
		case Squire:
			b.setKind(to, Knight)
			res.Transformed = Knight
		case Paladin:
			b.setKind(to, Bishop)
			res.Transformed = Bishop
		}
	}

	res.Substituted = b.substituteHeir(c.Other())

	res.After = b.squares[to].Kind()
	b.lastMoved = res.After

	if DebugMoveValidation {
		b.checkInvariants("apply " + res.Move.String())
		log.Printf("APPLY: %v", res)
	}
	return res
}

// castleRook hops the rook for a king landing on a castling column.
func (b *Board) castleRook(c Color, kingTo Square, res *MoveResult) {
	row := c.backRank()
	var rookFrom, rookTo Square
	switch kingTo.Col() {
	case queensideKingCol:
		rookFrom, rookTo = NewSquare(row, 0), NewSquare(row, queensideRookCol)
	case kingsideKingCol:
		rookFrom, rookTo = NewSquare(row, Size-1), NewSquare(row, kingsideRookCol)
	default:
		return
	}
	if b.squares[rookFrom] != NewPiece(Rook, c) || !b.IsEmpty(rookTo) {
		return
	}
	b.move(rookFrom, rookTo)
	b.markRookDeparture(c, rookFrom)
	res.Castle = true
	res.RookFrom = rookFrom
	res.RookTo = rookTo
}

// markRookDeparture sets the rook flag when sq is one of c's rook homes.
func (b *Board) markRookDeparture(c Color, sq Square) {
	if sq.Row() != c.backRank() {
		return
	}
	switch sq.Col() {
	case 0:
		b.castling |= leftRookFlag(c)
	case Size - 1:
		b.castling |= rightRookFlag(c)
	}
}

// substituteHeir crowns c's Prince when c has lost its King, turns one of
// c's Princesses into a Queen and freezes c's castling. It reports whether a
// substitution happened.
func (b *Board) substituteHeir(c Color) bool {
	if b.KingSquare(c) != NoSquare {
		return false
	}
	heir := b.findKind(c, Prince)
	if heir == NoSquare {
		return false
	}
	b.setKind(heir, King)
	if consort := b.findKind(c, Princess); consort != NoSquare {
		b.setKind(consort, Queen)
	}
	b.castling |= allMoved(c)
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
