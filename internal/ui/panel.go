package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SiddhanthDubey/chess2.0/internal/board"
)

// Panel dimensions
const (
	PanelPadding    = 20
	SectionSpacing  = 28
	ButtonHeight    = 40
	ToggleHeight    = 34
	CollapsedWidth  = 20
	CollapseButtonW = 16
	CollapseButtonH = 48
	SectionLabelH   = 20
	StatusBarH      = 96
	HistoryRowH     = 22
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	sectionBg       = color.RGBA{48, 52, 58, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	buttonActiveBg  = color.RGBA{76, 132, 96, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	moveRowAlt      = color.RGBA{44, 48, 54, 255}
	statusCheck     = color.RGBA{255, 120, 100, 255}
	statusGameOver  = color.RGBA{255, 200, 80, 255}
)

// Button represents a clickable UI element. Active buttons are drawn as
// switched on.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	Active     func() bool
	hovered    bool
	pressed    bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// Panel is the side panel with controls, move history and the status bar.
type Panel struct {
	game      *Game
	collapsed bool

	collapseBtn *Button
	newGameBtn  *Button
	toggles     []*Button // Flip, Auto-flip, Sound

	scrollY    int
	maxScrollY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

func (p *Panel) createButtons() {
	tabY := (ScreenHeight - CollapseButtonH) / 2
	collapseX := BoardSize
	if p.collapsed {
		collapseX = BoardSize + 2
	}
	p.collapseBtn = &Button{
		X: collapseX, Y: tabY,
		W: CollapseButtonW, H: CollapseButtonH,
		OnClick: p.toggleCollapse,
	}

	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	newGameY := PanelPadding + 8
	p.newGameBtn = &Button{
		X: contentX, Y: newGameY,
		W: contentW, H: ButtonHeight,
		Label:   "New Game",
		OnClick: p.game.NewGameAction,
	}

	toggleY := newGameY + ButtonHeight + 8
	toggleW := contentW / 3
	p.toggles = []*Button{
		{X: contentX, Y: toggleY, W: toggleW, H: ToggleHeight, Label: "Flip",
			OnClick: p.game.FlipAction},
		{X: contentX + toggleW, Y: toggleY, W: toggleW, H: ToggleHeight, Label: "Auto-flip",
			OnClick: p.game.ToggleAutoFlipAction, Active: p.game.AutoFlip},
		{X: contentX + toggleW*2, Y: toggleY, W: contentW - toggleW*2, H: ToggleHeight, Label: "Sound",
			OnClick: p.game.ToggleSoundAction, Active: p.game.SoundEnabled},
	}
}

func (p *Panel) buttons() []*Button {
	return append([]*Button{p.newGameBtn}, p.toggles...)
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	p.collapseBtn.hovered = p.collapseBtn.contains(mx, my)
	p.collapseBtn.pressed = input.IsLeftPressed() && p.collapseBtn.hovered
	if input.IsLeftJustPressed() && p.collapseBtn.hovered {
		p.collapseBtn.OnClick()
		return true
	}
	if p.collapsed {
		return false
	}

	if wheel := input.WheelY(); wheel != 0 {
		historyY := p.historyStartY()
		if mx >= BoardSize && my >= historyY && my < ScreenHeight-StatusBarH {
			p.scrollY -= int(wheel * 30)
			p.clampScroll()
		}
	}

	for _, btn := range p.buttons() {
		btn.hovered = btn.contains(mx, my)
		btn.pressed = input.IsLeftPressed() && btn.hovered
	}
	if input.IsLeftJustPressed() {
		for _, btn := range p.buttons() {
			if btn.hovered {
				btn.OnClick()
				return true
			}
		}
	}

	// Swallow clicks elsewhere on the panel so they never reach the board.
	return input.IsLeftJustPressed() && mx >= BoardSize
}

func (p *Panel) clampScroll() {
	if p.scrollY > p.maxScrollY {
		p.scrollY = p.maxScrollY
	}
	if p.scrollY < 0 {
		p.scrollY = 0
	}
}

// ScrollToEnd keeps the newest move in view.
func (p *Panel) ScrollToEnd() {
	p.scrollY = 1 << 30
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	if p.collapseBtn.hovered {
		return true
	}
	if p.collapsed {
		return false
	}
	for _, btn := range p.buttons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.collapsed {
		fillRect(screen, BoardSize, 0, CollapsedWidth, ScreenHeight, panelBg)
		p.drawCollapseButton(screen, true)
		return
	}

	fillRect(screen, BoardSize, 0, PanelWidth, ScreenHeight, panelBg)
	p.drawCollapseButton(screen, false)
	p.drawPrimaryButton(screen, p.newGameBtn)
	for _, btn := range p.toggles {
		p.drawToggle(screen, btn)
	}

	historyY := p.historyStartY()
	drawText(screen, "Moves", BoardSize+PanelPadding, historyY, textMuted)
	p.drawMoveHistory(screen, historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

func (p *Panel) historyStartY() int {
	t := p.toggles[0]
	return t.Y + t.H + SectionSpacing - 4
}

func (p *Panel) drawCollapseButton(screen *ebiten.Image, expand bool) {
	btn := p.collapseBtn
	bg := panelBg
	if btn.hovered {
		bg = sectionBg
	}
	fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bg)

	arrow := "‹"
	if expand {
		arrow = "›"
	}
	c := textMuted
	if btn.hovered {
		c = textPrimary
	}
	drawTextCentered(screen, arrow, btn.X+btn.W/2, btn.Y+btn.H/2, c)
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bg := accentColor
	if btn.pressed {
		bg = accentPressed
	} else if btn.hovered {
		bg = accentHover
	}
	fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bg)

	border := color.RGBA{56, 155, 100, 255}
	if btn.hovered {
		border = color.RGBA{116, 215, 160, 255}
	}
	strokeRect(screen, btn.X, btn.Y, btn.W, btn.H, 1, border)
	drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}

func (p *Panel) drawToggle(screen *ebiten.Image, btn *Button) {
	active := btn.Active != nil && btn.Active()

	bg := buttonBg
	switch {
	case active:
		bg = buttonActiveBg
	case btn.pressed:
		bg = buttonPressedBg
	case btn.hovered:
		bg = buttonHoverBg
	}
	fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bg)

	border := buttonBorder
	if btn.hovered {
		border = accentColor
	}
	strokeRect(screen, btn.X, btn.Y, btn.W, btn.H, 1, border)

	c := textSecondary
	if active {
		c = textPrimary
	}
	drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, c)
}

// drawMoveHistory lists plies two per row, White then Black.
func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	plies := p.game.History()
	x := BoardSize + PanelPadding
	if len(plies) == 0 {
		drawText(screen, "No moves yet", x, startY+5, textMuted)
		return
	}

	maxY := ScreenHeight - StatusBarH
	visibleHeight := maxY - startY

	// A game set up with Black to move starts its first row with an empty
	// White column.
	offset := 0
	if plies[0].Color == board.Black {
		offset = 1
	}
	totalRows := (len(plies) + offset + 1) / 2
	contentHeight := totalRows * HistoryRowH
	p.maxScrollY = contentHeight - visibleHeight
	if p.maxScrollY < 0 {
		p.maxScrollY = 0
	}
	p.clampScroll()

	y := startY - p.scrollY%HistoryRowH
	for row := p.scrollY / HistoryRowH; row < totalRows && y <= maxY-HistoryRowH; row++ {
		if y >= startY {
			if row%2 == 1 {
				fillRect(screen, x-4, y-2, PanelWidth-PanelPadding*2+8, HistoryRowH, moveRowAlt)
			}
			drawText(screen, fmt.Sprintf("%d.", row+1), x, y, textMuted)
			for side := 0; side < 2; side++ {
				i := row*2 + side - offset
				if i < 0 || i >= len(plies) {
					continue
				}
				drawText(screen, plies[i].MoveResult.String(), x+34+side*118, y, textPrimary)
			}
		}
		y += HistoryRowH
	}

	if p.maxScrollY > 0 {
		pct := float64(p.scrollY) / float64(p.maxScrollY)
		indicatorH := visibleHeight * visibleHeight / contentHeight
		if indicatorH < 20 {
			indicatorH = 20
		}
		indicatorY := startY + int(pct*float64(visibleHeight-indicatorH))
		fillRect(screen, BoardSize+PanelWidth-8, indicatorY, 4, indicatorH, textMuted)
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - StatusBarH + 10
	x := BoardSize + PanelPadding

	fillRect(screen, x, statusY-10, PanelWidth-PanelPadding*2, 1, dividerColor)

	st := p.game.Status()
	statusText := p.game.ToMove().String() + " to move"
	statusColor := textPrimary
	switch {
	case st.IsOver():
		statusText = st.String()
		statusColor = statusGameOver
	case p.game.PromotionPending():
		statusText = p.game.ToMove().String() + " promotes"
		statusColor = accentColor
	case st.Check:
		statusText = p.game.ToMove().String() + " to move - Check!"
		statusColor = statusCheck
	}
	drawTextSized(screen, statusText, float64(x), float64(statusY), true, titleFontSize, statusColor)

	drawText(screen, formatElapsed(p.game.Elapsed()), x, statusY+26, textSecondary)

	if stats := p.game.Stats(); stats != nil && stats.GamesPlayed > 0 {
		line := fmt.Sprintf("Played %d  W %d  B %d  D %d", stats.GamesPlayed, stats.WhiteWins, stats.BlackWins, stats.Stalemates)
		drawText(screen, line, x, statusY+50, textMuted)
	}
}

// formatElapsed renders a duration as m:ss, or h:mm:ss past an hour.
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Collapsed returns whether the panel is collapsed.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

// toggleCollapse toggles the panel collapsed state and resizes the window.
func (p *Panel) toggleCollapse() {
	p.collapsed = !p.collapsed
	p.createButtons()

	if p.collapsed {
		ebiten.SetWindowSize(int(float64(BoardSize+CollapsedWidth)*WindowScale), int(float64(ScreenHeight)*WindowScale))
	} else {
		ebiten.SetWindowSize(int(float64(ScreenWidth)*WindowScale), int(float64(ScreenHeight)*WindowScale))
	}
}
