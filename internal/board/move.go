package board

import (
	"fmt"
	"strings"
)

// Move is a from/to pair.
type Move struct {
	From, To Square
}

// String returns the move as "from-to".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// PromotionChooser picks the kind a pawn of the given color promotes to.
// It must return one of PromotionKinds.
type PromotionChooser interface {
	ChoosePromotion(c Color) PieceKind
}

// PromotionFunc adapts a function to PromotionChooser.
type PromotionFunc func(c Color) PieceKind

// ChoosePromotion calls f(c).
func (f PromotionFunc) ChoosePromotion(c Color) PieceKind {
	return f(c)
}

// MoveResult describes everything an executed move changed.
type MoveResult struct {
	Move
	Piece Piece // the mover as it stood on From

	Captured   Piece  // NoPiece if nothing was taken
	CapturedAt Square // differs from To for en passant

	EnPassant bool
	Castle    bool
	RookFrom  Square
	RookTo    Square

	// Promoted is the kind chosen for a pawn, or NoKind.
	Promoted PieceKind
	// Transformed is the automatic far-rank kind for Squire/Paladin, or NoKind.
	Transformed PieceKind
	// Substituted is set when the opponent's Prince took over as King.
	Substituted bool

	// After is the mover's kind once the move completed.
	After PieceKind
}

// IsCapture returns true if a piece was removed.
func (r MoveResult) IsCapture() bool {
	return r.Captured != NoPiece
}

// CapturedKing returns true if the move took a King.
func (r MoveResult) CapturedKing() bool {
	return r.Captured != NoPiece && r.Captured.Kind() == King
}

// String returns a compact description such as "R a1-a5", "K e1-b1 (castle)"
// or "P b9xc10=Q".
func (r MoveResult) String() string {
	var sb strings.Builder
	sb.WriteByte(r.Piece.Kind().Letter())
	sb.WriteByte(' ')
	sb.WriteString(r.From.String())
	if r.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(r.To.String())
	if r.Promoted != NoKind {
		fmt.Fprintf(&sb, "=%c", r.Promoted.Letter())
	}
	if r.Transformed != NoKind {
		fmt.Fprintf(&sb, "=%c", r.Transformed.Letter())
	}
	switch {
	case r.Castle:
		sb.WriteString(" (castle)")
	case r.EnPassant:
		sb.WriteString(" e.p.")
	}
	if r.Substituted {
		sb.WriteString(" +heir")
	}
	return sb.String()
}
