package harvest

import (
	"fmt"
	"math"

	"github.com/vovakirdan/harvest-rush/internal/core"
)

// Smallest field interior, in cells, that still shows every entity apart.
const (
	minFieldCols = 30
	minFieldRows = 10
	hudRows      = 2
)

var farmerGlyphs = map[Direction][2]rune{
	FacingDown:  {'▼', 'v'},
	FacingUp:    {'▲', '^'},
	FacingLeft:  {'◀', '<'},
	FacingRight: {'▶', '>'},
}

// fieldPainter scales world units onto the screen area inside the field border.
type fieldPainter struct {
	dst    *core.Screen
	area   core.Rect
	scaleX float64
	scaleY float64
}

func newFieldPainter(dst *core.Screen, area core.Rect, fieldW, fieldH float64) *fieldPainter {
	return &fieldPainter{
		dst:    dst,
		area:   area,
		scaleX: float64(area.W) / fieldW,
		scaleY: float64(area.H) / fieldH,
	}
}

// cells converts a world box to the screen cells it covers, at least one.
func (p *fieldPainter) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * p.scaleX))
	y0 := int(math.Floor(b.Y * p.scaleY))
	x1 := int(math.Ceil(b.Right() * p.scaleX))
	y1 := int(math.Ceil(b.Bottom() * p.scaleY))

	x0 = core.Clamp(x0, 0, p.area.W-1)
	y0 = core.Clamp(y0, 0, p.area.H-1)
	x1 = core.Clamp(x1, x0+1, p.area.W)
	y1 = core.Clamp(y1, y0+1, p.area.H)

	return core.NewRect(p.area.X+x0, p.area.Y+y0, x1-x0, y1-y0)
}

// Draw implements Surface.
func (p *fieldPainter) Draw(d Drawable) {
	r := p.cells(d.Box)
	switch d.Kind {
	case KindScarecrow:
		p.dst.DrawRect(r, '▓', core.ColorGray)
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		p.dst.SetColored(cx, cy, '†', core.ColorSoil)
	case KindWheat:
		p.dst.DrawRect(r, '"', core.ColorYellow)
	case KindPumpkin:
		p.dst.DrawRect(r, '●', core.ColorOrange)
	case KindGoldenApple:
		p.dst.DrawRect(r, '◆', core.ColorRed)
	case KindFarmer:
		glyphs := farmerGlyphs[d.Facing]
		g := glyphs[0]
		if d.Frame == 2 {
			g = glyphs[1]
		}
		p.dst.DrawRect(r, g, core.ColorBrightWhite)
	}
}

// Render draws the HUD, the field and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil || g.ctrl.Disposed() {
		return
	}

	g.renderHUD(dst)

	area := core.NewRect(1, hudRows+1, dst.Width()-2, dst.Height()-hudRows-2)
	if area.W < minFieldCols || area.H < minFieldRows {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", core.ColorDefault)
		return
	}

	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows), core.ColorSoil)
	g.renderGround(dst, area)

	cfg := g.ctrl.cfg.Field
	g.ctrl.Render(newFieldPainter(dst, area, cfg.Width, cfg.Height))

	switch g.ctrl.State() {
	case StateMenu:
		g.renderOverlay(dst, core.ColorBrightGreen,
			"HARVEST RUSH",
			"Collect crops before the time runs out",
			fmt.Sprintf("Best level %d", g.ctrl.BestLevel()),
			"Enter to start  Q to quit")
	case StatePaused:
		g.renderOverlay(dst, core.ColorCyan,
			"Paused",
			fmt.Sprintf("Level %d  Score %d", g.ctrl.Level(), g.ctrl.Score()),
			"P to resume  M for menu")
	case StateGameOver:
		g.renderOverlay(dst, core.ColorRed,
			"Game Over",
			fmt.Sprintf("Reached level %d with %d points", g.ctrl.Level(), g.ctrl.Score()),
			"Enter to play again  M for menu")
	}
}

// renderHUD draws the label row and the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	line := fmt.Sprintf(" Score %d  Goal %d  Time %d  Level %d  Best %d",
		g.hud.score, g.hud.goal, g.hud.timeLeft, g.ctrl.Level(), g.hud.bestLevel)
	dst.DrawTextColored(0, 0, line, core.ColorBrightYellow)

	if g.hud.timeLeft <= 5 && g.ctrl.State() == StatePlaying {
		label := fmt.Sprintf("Time %d", g.hud.timeLeft)
		x := len(fmt.Sprintf(" Score %d  Goal %d  ", g.hud.score, g.hud.goal))
		dst.DrawTextColored(x, 0, label, core.ColorRed)
	}

	dst.DrawTextColored(1, 1, g.hud.status, core.ColorGray)
}

// renderGround dots the field on the tile grid.
func (g *Game) renderGround(dst *core.Screen, area core.Rect) {
	cfg := g.ctrl.cfg.Field
	p := newFieldPainter(dst, area, cfg.Width, cfg.Height)
	for y := cfg.Tile; y < cfg.Height; y += cfg.Tile * 2 {
		for x := cfg.Tile; x < cfg.Width; x += cfg.Tile * 2 {
			cx := area.X + int(x*p.scaleX)
			cy := area.Y + int(y*p.scaleY)
			if area.Contains(cx, cy) {
				dst.SetColored(cx, cy, '·', core.ColorGreen)
			}
		}
	}
}

// renderOverlay draws a bordered box with a title and lines of text.
func (g *Game) renderOverlay(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}
