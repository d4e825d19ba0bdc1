package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// forward returns the row step a pawn of this color advances by.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// backRank returns the home row of this color's major pieces.
func (c Color) backRank() int {
	if c == White {
		return Size - 1
	}
	return 0
}

// pawnRank returns the row this color's pawn line starts on.
func (c Color) pawnRank() int {
	if c == White {
		return Size - 2
	}
	return 1
}

// PieceKind is the closed set of piece kinds.
type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	Bureaucrat
	Jester
	Squire
	Paladin
	Prince
	Princess
	NoKind

	NumKinds = int(NoKind)
)

var kindNames = [...]string{
	"King", "Queen", "Rook", "Bishop", "Knight", "Pawn",
	"Bureaucrat", "Jester", "Squire", "Paladin", "Prince", "Princess", "None",
}

// Letter codes: C=Bureaucrat, J=Jester, S=Squire, L=Paladin, V=Prince, W=Princess.
const kindLetters = "KQRBNPCJSLVW "

// String returns the kind name.
func (k PieceKind) String() string {
	if k > NoKind {
		return kindNames[NoKind]
	}
	return kindNames[k]
}

// Letter returns the one-character code for the kind (upper case).
func (k PieceKind) Letter() byte {
	if k > NoKind {
		return ' '
	}
	return kindLetters[k]
}

// PromotionKinds lists the kinds a pawn may promote to, in picker order.
var PromotionKinds = [...]PieceKind{
	Queen, Rook, Bishop, Knight, Bureaucrat, Jester, Squire, Paladin, Prince, Princess,
}

// IsPromotable returns true if a pawn may become this kind.
func (k PieceKind) IsPromotable() bool {
	for _, p := range PromotionKinds {
		if p == k {
			return true
		}
	}
	return false
}

// Piece combines PieceKind and Color into a single value.
// Encoded as: kind + color*NumKinds
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = Piece(2 * NumKinds)

// NewPiece creates a Piece from PieceKind and Color.
func NewPiece(k PieceKind, c Color) Piece {
	if k >= NoKind || c >= NoColor {
		return NoPiece
	}
	return Piece(k) + Piece(c)*Piece(NumKinds)
}

// Kind returns the PieceKind of the piece.
func (p Piece) Kind() PieceKind {
	if p >= NoPiece {
		return NoKind
	}
	return PieceKind(p % Piece(NumKinds))
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / Piece(NumKinds))
}

// withKind returns the same-colored piece of another kind.
func (p Piece) withKind(k PieceKind) Piece {
	return NewPiece(k, p.Color())
}

// String returns the letter code, upper case for White and lower case for Black.
func (p Piece) String() string {
	if p >= NoPiece {
		return "."
	}
	ch := p.Kind().Letter()
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return string(ch)
}
