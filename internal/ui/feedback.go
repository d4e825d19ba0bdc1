package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
)

// InvalidMoveReason represents why a dropped piece was sent back.
type InvalidMoveReason int

const (
	ReasonUnknown InvalidMoveReason = iota
	ReasonWouldExposeKing
	ReasonBlockedByOwnPiece
	ReasonInvalidPieceMovement
)

// invalidMoveReason explains why from-to is not among the legal moves.
func invalidMoveReason(b *board.Board, from, to board.Square) InvalidMoveReason {
	mover := b.PieceAt(from)
	if mover == board.NoPiece {
		return ReasonUnknown
	}
	if target := b.PieceAt(to); target != board.NoPiece && target.Color() == mover.Color() {
		return ReasonBlockedByOwnPiece
	}
	if b.PseudoLegalMoves(from).Has(to) {
		return ReasonWouldExposeKing
	}
	return ReasonInvalidPieceMovement
}

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

func toastColors(t ToastType, alpha float64) (bg, fg color.RGBA) {
	a := uint8(220 * alpha)
	fg = color.RGBA{255, 255, 255, uint8(255 * alpha)}
	switch t {
	case ToastWarning:
		return color.RGBA{180, 140, 20, a}, color.RGBA{40, 30, 0, uint8(255 * alpha)}
	case ToastError:
		return color.RGBA{180, 50, 50, a}, fg
	case ToastSuccess:
		return color.RGBA{50, 150, 50, a}, fg
	default:
		return color.RGBA{50, 100, 150, a}, fg
	}
}

// Draw renders all active toasts centred over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	y := 50.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		alpha := 1.0
		const fade = 0.2
		if elapsed < fade {
			alpha = elapsed / fade
		} else if elapsed > duration-fade {
			alpha = math.Max(0, (duration-elapsed)/fade)
		}
		bg, fg := toastColors(t.Type, alpha)

		w, h := measure(t.Message, false, defaultFontSize)
		const padding = 12.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(BoardSize)/2 - boxW/2

		fillRect(screen, int(x), int(y), int(boxW), int(boxH), bg)
		drawTextSized(screen, t.Message, x+padding, y+padding, false, defaultFontSize, fg)

		y += boxH + 8
	}
}

// ShakeAnimation represents a piece shake effect.
type ShakeAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Intensity float64
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages visual animations.
type AnimationManager struct {
	shakes  []*ShakeAnimation
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake begins a shake animation on a square.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, &ShakeAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  300 * time.Millisecond,
		Intensity: 8.0,
	})
}

// StartFlash begins a flash animation on a square.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     c,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()

	shakes := am.shakes[:0]
	for _, s := range am.shakes {
		if now.Sub(s.StartTime) < s.Duration {
			shakes = append(shakes, s)
		}
	}
	am.shakes = shakes

	flashes := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			flashes = append(flashes, f)
		}
	}
	am.flashes = flashes
}

// Clear drops every running animation, e.g. when the board flips.
func (am *AnimationManager) Clear() {
	am.shakes = nil
	am.flashes = nil
}

// GetShakeOffset returns the current shake offset for a square.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	for _, s := range am.shakes {
		if s.Square != sq {
			continue
		}
		progress := time.Since(s.StartTime).Seconds() / s.Duration.Seconds()
		if progress >= 1.0 {
			return 0, 0
		}
		// Damped sine wave
		amplitude := s.Intensity * math.Exp(-5*progress)
		return amplitude * math.Sin(40*progress), 0
	}
	return 0, 0
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, r *Renderer) {
	for _, f := range am.flashes {
		progress := time.Since(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}
		c := f.Color
		c.A = uint8(float64(c.A) * (1 - progress))
		x, y := r.SquareToScreen(f.Square)
		size := r.SquareSize()
		fillRect(screen, x, y, size, size, c)
	}
}

// FeedbackManager coordinates toasts, animations and sounds.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, r *Renderer) {
	fm.animations.DrawFlashes(screen, r)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Info shows a plain informational toast.
func (fm *FeedbackManager) Info(message string) {
	fm.toasts.Show(message, ToastInfo, 4*time.Second)
}

// OnInvalidMove handles a piece dropped on a square it cannot reach.
func (fm *FeedbackManager) OnInvalidMove(from, to board.Square, reason InvalidMoveReason) {
	var message string
	switch reason {
	case ReasonWouldExposeKing:
		message = "Illegal move - King would be threatened"
	case ReasonBlockedByOwnPiece:
		message = "Square occupied by your piece"
	case ReasonInvalidPieceMovement:
		message = "Invalid move for this piece"
	default:
		message = "Invalid move"
	}

	fm.toasts.Show(message, ToastWarning, 2*time.Second)
	fm.animations.StartShake(from)
	fm.animations.StartFlash(to, color.RGBA{255, 80, 80, 150})
	fm.audio.Play(SoundInvalid)
}

// OnMoveMade plays the sound for an executed move and announces the
// variant's piece changes.
func (fm *FeedbackManager) OnMoveMade(res board.MoveResult) {
	switch {
	case res.Promoted != board.NoKind || res.Transformed != board.NoKind:
		fm.audio.Play(SoundPromote)
	case res.Castle:
		fm.audio.Play(SoundCastle)
	case res.IsCapture():
		fm.audio.Play(SoundCapture)
	default:
		fm.audio.Play(SoundMove)
	}

	if res.Transformed != board.NoKind {
		fm.toasts.Show(res.Piece.Kind().String()+" becomes "+res.Transformed.String(), ToastInfo, 2*time.Second)
	}
	if res.Substituted {
		fm.toasts.Show(res.Captured.Color().String()+"'s heir takes the crown", ToastWarning, 3*time.Second)
	}
}

// OnStatus announces check and the end of the game.
func (fm *FeedbackManager) OnStatus(st board.Status) {
	switch st.State {
	case board.Checkmate:
		fm.toasts.Show(st.String(), ToastSuccess, 5*time.Second)
		fm.audio.Play(SoundGameEnd)
	case board.Stalemate:
		fm.toasts.Show(st.String(), ToastInfo, 5*time.Second)
		fm.audio.Play(SoundGameEnd)
	default:
		if st.Check {
			fm.toasts.Show(st.String(), ToastWarning, 2*time.Second)
			fm.audio.Play(SoundCheck)
		}
	}
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
