package game

import "errors"

var (
	// ErrNoPendingPromotion is returned by Promote when no pawn is waiting.
	ErrNoPendingPromotion = errors.New("no promotion pending")

	// ErrGameOver is returned when a move is made after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
)
