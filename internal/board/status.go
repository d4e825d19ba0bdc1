package board

// State is the phase of a game.
type State uint8

const (
	InProgress State = iota
	Checkmate
	Stalemate
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Status is the outcome of evaluating a position for the side to move.
// Winner is only meaningful for Checkmate.
type Status struct {
	State  State
	Winner Color
	Check  bool // side to move is threatened but still has moves
}

// IsOver returns true for checkmate and stalemate.
func (s Status) IsOver() bool {
	return s.State != InProgress
}

// String returns a human-readable status line.
func (s Status) String() string {
	switch s.State {
	case Checkmate:
		return "Checkmate! " + s.Winner.String() + " wins"
	case Stalemate:
		return "Stalemate! Draw"
	default:
		if s.Check {
			return "Check!"
		}
		return "In progress"
	}
}

// Evaluate determines the status with toMove to play. No legal move while
// threatened is checkmate for the other side; no legal move otherwise is
// stalemate.
func (b *Board) Evaluate(toMove Color) Status {
	threatened := b.IsThreatened(toMove)
	if b.HasLegalMoves(toMove) {
		return Status{State: InProgress, Winner: NoColor, Check: threatened}
	}
	if threatened {
		return Status{State: Checkmate, Winner: toMove.Other()}
	}
	return Status{State: Stalemate, Winner: NoColor}
}
