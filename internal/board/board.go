package board

import (
	"fmt"
	"log"
	"strings"
)

// CastlingFlags records which castling pieces have left home. Flags only
// ever go from clear to set.
type CastlingFlags uint8

const (
	WhiteKingMoved CastlingFlags = 1 << iota
	WhiteLeftRookMoved
	WhiteRightRookMoved
	BlackKingMoved
	BlackLeftRookMoved
	BlackRightRookMoved
	NoneMoved CastlingFlags = 0
)

// allMoved returns the flags marking king and both rooks of c as moved.
func allMoved(c Color) CastlingFlags {
	return kingMovedFlag(c) | leftRookFlag(c) | rightRookFlag(c)
}

func kingMovedFlag(c Color) CastlingFlags {
	if c == White {
		return WhiteKingMoved
	}
	return BlackKingMoved
}

func leftRookFlag(c Color) CastlingFlags {
	if c == White {
		return WhiteLeftRookMoved
	}
	return BlackLeftRookMoved
}

func rightRookFlag(c Color) CastlingFlags {
	if c == White {
		return WhiteRightRookMoved
	}
	return BlackRightRookMoved
}

// KingMoved reports whether c's king has moved.
func (cf CastlingFlags) KingMoved(c Color) bool {
	return cf&kingMovedFlag(c) != 0
}

// LeftRookMoved reports whether c's column-0 rook has moved.
func (cf CastlingFlags) LeftRookMoved(c Color) bool {
	return cf&leftRookFlag(c) != 0
}

// RightRookMoved reports whether c's column-9 rook has moved.
func (cf CastlingFlags) RightRookMoved(c Color) bool {
	return cf&rightRookFlag(c) != 0
}

// Board holds the square-indexed pieces plus the turn-scoped state the
// move rules read: castling flags, the en-passant target and the kind of
// the last piece moved by either side.
//
// Readers use the exported accessors. Only Apply mutates a Board.
type Board struct {
	squares   [NumSquares]Piece
	castling  CastlingFlags
	enPassant Square
	lastMoved PieceKind
}

// Setup describes an arbitrary position. Squares not in Pieces are empty.
// Start from NewSetup so EnPassant and LastMoved default to "none".
type Setup struct {
	Pieces    map[Square]Piece
	Castling  CastlingFlags
	EnPassant Square
	LastMoved PieceKind
}

// NewSetup returns an empty Setup with no en-passant target and no last move.
func NewSetup() Setup {
	return Setup{
		Pieces:    make(map[Square]Piece),
		EnPassant: NoSquare,
		LastMoved: NoKind,
	}
}

// Put adds p on sq and returns s for chaining.
func (s Setup) Put(sq Square, p Piece) Setup {
	s.Pieces[sq] = p
	return s
}

// emptyBoard returns a board with no pieces and no history.
func emptyBoard() *Board {
	b := &Board{
		enPassant: NoSquare,
		lastMoved: NoKind,
	}
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
	return b
}

// NewBoardFromSetup builds a board from s.
func NewBoardFromSetup(s Setup) *Board {
	b := emptyBoard()
	for sq, p := range s.Pieces {
		if sq.IsValid() && p != NoPiece {
			b.place(sq, p)
		}
	}
	b.castling = s.Castling
	b.enPassant = s.EnPassant
	b.lastMoved = s.LastMoved
	if DebugMoveValidation {
		b.checkInvariants("setup")
	}
	return b
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == NoPiece
}

// isEnemy returns true if sq holds a piece of the color opposing c.
func (b *Board) isEnemy(sq Square, c Color) bool {
	p := b.squares[sq]
	return p != NoPiece && p.Color() != c
}

// Castling returns the castling flags.
func (b *Board) Castling() CastlingFlags {
	return b.castling
}

// EnPassant returns the square of the pawn that just advanced two rows,
// or NoSquare.
func (b *Board) EnPassant() Square {
	return b.enPassant
}

// LastMoved returns the kind of the last executed move's piece, or NoKind
// before the first move.
func (b *Board) LastMoved() PieceKind {
	return b.lastMoved
}

// KingSquare returns the square of c's King, or NoSquare if c has none.
func (b *Board) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := Square(0); sq < NoSquare; sq++ {
		if b.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// HasPieceOfKind returns true if c has at least one piece of kind k.
func (b *Board) HasPieceOfKind(c Color, k PieceKind) bool {
	return b.findKind(c, k) != NoSquare
}

// findKind returns the lowest square holding c's piece of kind k.
func (b *Board) findKind(c Color, k PieceKind) Square {
	want := NewPiece(k, c)
	for sq := Square(0); sq < NoSquare; sq++ {
		if b.squares[sq] == want {
			return sq
		}
	}
	return NoSquare
}

// Occupied returns the squares holding c's pieces.
func (b *Board) Occupied(c Color) SquareSet {
	var s SquareSet
	for sq := Square(0); sq < NoSquare; sq++ {
		if p := b.squares[sq]; p != NoPiece && p.Color() == c {
			s = s.Add(sq)
		}
	}
	return s
}

// Count returns how many pieces c has on the board.
func (b *Board) Count(c Color) int {
	return b.Occupied(c).Len()
}

// place puts p on an empty square.
func (b *Board) place(sq Square, p Piece) {
	b.squares[sq] = p
}

// remove clears sq and returns whatever was there.
func (b *Board) remove(sq Square) Piece {
	p := b.squares[sq]
	b.squares[sq] = NoPiece
	return p
}

// move relocates the piece on from to an empty to.
func (b *Board) move(from, to Square) {
	b.squares[to] = b.squares[from]
	b.squares[from] = NoPiece
}

// setKind changes the kind of the piece on sq, keeping its color.
func (b *Board) setKind(sq Square, k PieceKind) {
	b.squares[sq] = b.squares[sq].withKind(k)
}

// checkInvariants logs positions that break the one-king-per-color rule.
func (b *Board) checkInvariants(where string) {
	for _, c := range [2]Color{White, Black} {
		kings := 0
		for sq := Square(0); sq < NoSquare; sq++ {
			if b.squares[sq] == NewPiece(King, c) {
				kings++
			}
		}
		if kings > 1 {
			log.Printf("BOARD INVARIANT (%s): %v has %d kings\n%v", where, c, kings, b)
		}
	}
}

// String returns a text diagram of the board, White's back rank at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("    a b c d e f g h i j\n")
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%2d  ", Size-row)
		for col := 0; col < Size; col++ {
			sb.WriteString(b.squares[NewSquare(row, col)].String())
			if col < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "ep: %v  last: %v  castling: %06b\n", b.enPassant, b.lastMoved, uint8(b.castling))
	return sb.String()
}
