// Package gui runs Thornfall in a desktop window using ebiten.
// It draws pixels straight from the game snapshot, using the same
// body-part tables the collision code uses.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/thornfall/internal/core"
	"github.com/vovakirdan/thornfall/internal/games/thornfall"
)

// Palette
var (
	bgColor      = color.RGBA{0xf4, 0xe3, 0xc1, 0xff} // Sand
	cactusColor  = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
	armColor     = color.RGBA{0x3c, 0xb3, 0x71, 0xff}
	beetleColor  = color.RGBA{0x8b, 0x1a, 0x1a, 0xff}
	clawColor    = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	waspColor    = color.RGBA{0xf1, 0xc4, 0x0f, 0xff}
	wingColor    = color.RGBA{0xd6, 0xea, 0xf8, 0xc0}
	stingerColor = color.RGBA{0x20, 0x20, 0x20, 0xff}
	thornColor   = color.RGBA{0x1e, 0x5e, 0x3a, 0xff}
	burstColor   = color.RGBA{0xff, 0x8c, 0x00, 0xff}
	lethalColor  = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	buttonColor  = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
	overlayColor = color.RGBA{0x00, 0x00, 0x00, 0xbf}
)

// touchDeadZone is the share of the field width on each side that steers.
// Taps in the middle fire.
const touchDeadZone = 1.0 / 3

// Window adapts a thornfall.Game to ebiten.Game.
type Window struct {
	game     *thornfall.Game
	quitting bool
}

// NewWindow wraps a game that has already been Reset.
func NewWindow(game *thornfall.Game) *Window {
	return &Window{game: game}
}

// Update collects input and advances the game by one tick.
func (w *Window) Update() error {
	if w.quitting {
		return ebiten.Termination
	}

	in := w.collectInput()
	if in.Has(core.ActionQuit) {
		w.quitting = true
		return ebiten.Termination
	}

	w.game.Step(time.Now(), in)
	return nil
}

// collectInput reads keyboard, mouse and touch state into an input frame.
// Movement keys are level-triggered; everything else fires once per press.
func (w *Window) collectInput() core.InputFrame {
	in := core.NewInputFrame()

	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionFire)
		in.Set(core.ActionStart)
		in.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		in.Set(core.ActionFire)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Set(core.ActionQuit)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.pointerPress(&in, float64(x), float64(y))
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		w.pointerPress(&in, float64(x), float64(y))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		w.touchHold(&in, float64(x))
	}

	return in
}

// pointerPress handles a click or tap at a field position.
func (w *Window) pointerPress(in *core.InputFrame, x, y float64) {
	fw, fh := w.game.Field()
	switch w.game.Phase() {
	case thornfall.PhaseTitle:
		if thornfall.StartButton(fw, fh).Contains(x, y) {
			in.Set(core.ActionStart)
		}
	case thornfall.PhaseGameOver:
		in.Set(core.ActionRestart)
	case thornfall.PhasePlaying:
		if x >= fw*touchDeadZone && x < fw*(1-touchDeadZone) {
			in.Set(core.ActionFire)
		}
	}
}

// touchHold steers while a finger rests on the left or right third.
func (w *Window) touchHold(in *core.InputFrame, x float64) {
	fw, _ := w.game.Field()
	switch {
	case x < fw*touchDeadZone:
		in.Set(core.ActionLeft)
	case x >= fw*(1-touchDeadZone):
		in.Set(core.ActionRight)
	}
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	snap := w.game.Snapshot()

	if snap.Phase == thornfall.PhaseTitle {
		drawTitle(screen, &snap)
		return
	}

	for _, o := range snap.Obstacles {
		drawObstacle(screen, o)
	}
	if snap.Phase != thornfall.PhaseGameOver {
		drawParts(screen, snap.Character.Parts(), cactusColor, armColor)
	}
	if snap.Thorn.Active {
		fillRect(screen, snap.Thorn.Bounds(), thornColor)
	}
	if snap.Explosion.Active {
		drawExplosion(screen, snap.Explosion)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %d  Level: %d  Kills: %d", snap.Score, snap.Difficulty.Level, snap.Kills), 8, 6)

	switch {
	case snap.Phase == thornfall.PhaseGameOver:
		drawPanel(screen, &snap, "GAME OVER",
			fmt.Sprintf("Final Score: %d\nSpace, R or tap to restart", snap.Score))
	case snap.Paused:
		drawPanel(screen, &snap, "PAUSED", "Press P to resume")
	}
}

// Layout makes the field follow the window size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.game.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawParts fills the first part with body and the rest with limb.
func drawParts(dst *ebiten.Image, parts []thornfall.Part, body, limb color.Color) {
	for i, p := range parts {
		c := limb
		if i == 0 {
			c = body
		}
		fillRect(dst, p.Rect, c)
	}
}

func drawObstacle(dst *ebiten.Image, o thornfall.Obstacle) {
	parts := o.Parts()
	if o.Kind == thornfall.KindA {
		drawParts(dst, parts, beetleColor, clawColor)
		return
	}
	for i, p := range parts {
		c := wingColor
		switch {
		case i == 0:
			c = waspColor
		case p.Name == "stinger":
			c = stingerColor
		}
		fillRect(dst, p.Rect, c)
	}
}

// drawExplosion draws concentric rings that grow with the frame index.
func drawExplosion(dst *ebiten.Image, e thornfall.Explosion) {
	c := burstColor
	maxR := float32(24)
	if e.Lethal {
		c = lethalColor
		maxR = 48
	}
	r := 4 + maxR*float32(e.Progress())
	x, y := float32(e.At.X), float32(e.At.Y)
	vector.DrawFilledCircle(dst, x, y, r*0.4, c, true)
	vector.StrokeCircle(dst, x, y, r, 3, c, true)
}

func drawTitle(dst *ebiten.Image, snap *thornfall.Snapshot) {
	btn := thornfall.StartButton(snap.FieldW, snap.FieldH)
	fillRect(dst, btn, buttonColor)
	ebitenutil.DebugPrintAt(dst, "START", int(btn.Center().X)-15, int(btn.Center().Y)-8)

	ebitenutil.DebugPrintAt(dst, "T H O R N F A L L", int(snap.FieldW/2)-51, int(btn.Y)-60)
	ebitenutil.DebugPrintAt(dst,
		"Arrows/A-D move, Space fire, P pause, Q quit",
		int(snap.FieldW/2)-132, int(btn.Bottom())+30)
}

func drawPanel(dst *ebiten.Image, snap *thornfall.Snapshot, title, body string) {
	fillRect(dst, core.NewRect(0, 0, snap.FieldW, snap.FieldH), overlayColor)
	cx, cy := int(snap.FieldW/2), int(snap.FieldH/2)
	ebitenutil.DebugPrintAt(dst, title, cx-len(title)*3, cy-24)
	ebitenutil.DebugPrintAt(dst, body, cx-80, cy)
}

// Run opens a window and plays until it is closed or Q is pressed.
func Run(game *thornfall.Game, rc core.RuntimeConfig) error {
	game.Reset(rc)

	ebiten.SetWindowTitle("Thornfall")
	ebiten.SetWindowSize(int(rc.FieldW), int(rc.FieldH))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	if err := ebiten.RunGame(NewWindow(game)); err != nil {
		return fmt.Errorf("gui: window failed: %w", err)
	}
	return nil
}
