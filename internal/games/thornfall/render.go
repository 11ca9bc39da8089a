package thornfall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/thornfall/internal/core"
)

// Terminal layout: one cell covers CellW×CellH world units and the top
// HUDRows rows hold the score line.
const (
	CellW   = 10.0
	CellH   = 20.0
	HUDRows = 1
)

// Visual characters for rendering
const (
	BodyChar    = '█'
	LimbChar    = '▓'
	WingChar    = '░'
	StingerChar = 'v'
	ThornChar   = '|'
	BurstChar   = '*'
)

// FieldForCells converts a terminal size into field dimensions.
func FieldForCells(cols, rows int) (w, h float64) {
	rows -= HUDRows
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return float64(cols) * CellW, float64(rows) * CellH
}

// CellToWorld returns the world point at the center of a terminal cell.
func CellToWorld(cx, cy int) core.Point {
	return core.Point{
		X: (float64(cx) + 0.5) * CellW,
		Y: (float64(cy-HUDRows) + 0.5) * CellH,
	}
}

// cellSpan returns the half-open cell range covered by a world rectangle.
func cellSpan(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / CellW))
	x1 = int(math.Ceil(r.Right() / CellW))
	y0 = int(math.Floor(r.Y/CellH)) + HUDRows
	y1 = int(math.Ceil(r.Bottom()/CellH)) + HUDRows
	return x0, y0, x1, y1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap)
}

// RenderSnapshot draws a snapshot into a terminal screen buffer.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if snap.Phase == PhaseTitle {
		drawTitle(dst, snap)
		return
	}

	for _, o := range snap.Obstacles {
		drawObstacle(dst, o)
	}
	if snap.Phase != PhaseGameOver {
		drawCharacter(dst, snap.Character)
	}
	if snap.Thorn.Active {
		x0, y0, x1, y1 := cellSpan(snap.Thorn.Bounds())
		dst.FillCells(x0, y0, x1, y1, ThornChar, core.ColorBrightGreen)
	}
	if snap.Explosion.Active {
		drawExplosion(dst, snap.Explosion)
	}

	drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d  |  Space/R to restart", snap.Score))
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawHUD draws the score line.
func drawHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	left := fmt.Sprintf(" Score: %d ", snap.Score)
	right := fmt.Sprintf(" Lv %d  Kills %d ", snap.Difficulty.Level, snap.Kills)
	dst.DrawTextColor(0, 0, left, core.ColorYellow)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorCyan)
}

// drawTitle draws the title screen and its start button.
func drawTitle(dst *core.Screen, snap *Snapshot) {
	h := dst.Height()
	dst.DrawTextCentered(h/4, "T H O R N F A L L", core.ColorBrightGreen)
	dst.DrawTextCentered(h/4+2, "dodge the beetles, shoot the wasps", core.ColorGray)

	btn := StartButton(snap.FieldW, snap.FieldH)
	x0, y0, x1, y1 := cellSpan(btn)
	if x1-x0 < 11 {
		mid := (x0 + x1) / 2
		x0, x1 = mid-5, mid+6
	}
	if y1-y0 < 3 {
		y1 = y0 + 3
	}
	dst.DrawBox(x0, y0, x1-x0, y1-y0, core.ColorGreen)
	label := "START"
	dst.DrawTextColor(x0+(x1-x0-len(label))/2, (y0+y1-1)/2, label, core.ColorBrightGreen)

	dst.DrawTextCentered(y1+2, "Enter/Space or click to start", core.ColorGray)
	dst.DrawTextCentered(y1+3, "←/→ move   Space fire   P pause   Q quit", core.ColorGray)
}

// drawCharacter draws the cactus part by part.
func drawCharacter(dst *core.Screen, c Character) {
	for i, p := range c.Parts() {
		glyph := LimbChar
		if i == 0 {
			glyph = BodyChar
		}
		x0, y0, x1, y1 := cellSpan(p.Rect)
		dst.FillCells(x0, y0, x1, y1, glyph, core.ColorGreen)
	}
}

// drawObstacle draws a beetle or wasp part by part.
func drawObstacle(dst *core.Screen, o Obstacle) {
	for i, p := range o.Parts() {
		glyph, color := BodyChar, core.ColorRed
		switch {
		case o.Kind == KindA && i > 0:
			glyph, color = LimbChar, core.ColorMagenta
		case o.Kind == KindB && i == 0:
			color = core.ColorYellow
		case o.Kind == KindB && p.Name == "stinger":
			glyph, color = StingerChar, core.ColorOrange
		case o.Kind == KindB:
			glyph, color = WingChar, core.ColorWhite
		}
		x0, y0, x1, y1 := cellSpan(p.Rect)
		dst.FillCells(x0, y0, x1, y1, glyph, color)
	}
}

// drawExplosion draws a ring of sparks that widens with each frame.
func drawExplosion(dst *core.Screen, e Explosion) {
	color := core.ColorOrange
	if e.Lethal {
		color = core.ColorBrightRed
	}
	cx := int(e.At.X / CellW)
	cy := int(e.At.Y/CellH) + HUDRows
	r := 1 + e.Frame/2

	dst.SetColor(cx, cy, BurstChar, core.ColorBrightYellow)
	for step := 0; step < 8; step++ {
		angle := float64(step) * math.Pi / 4
		// Cells are twice as tall as wide
		x := cx + int(math.Round(math.Cos(angle)*float64(r)*2))
		y := cy + int(math.Round(math.Sin(angle)*float64(r)))
		dst.SetColor(x, y, BurstChar, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillCells(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColor(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
