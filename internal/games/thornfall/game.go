// Package thornfall implements the Thornfall arcade game: a cactus at the
// bottom of the field dodges and shoots descending beetles and wasps.
//
// The package is pure simulation. Frontends feed it one core.InputFrame per
// tick together with the wall-clock time, and draw from Snapshot.
package thornfall

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/thornfall/internal/config"
	"github.com/vovakirdan/thornfall/internal/core"
)

// Game is one Thornfall session.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger

	phase  Phase
	paused bool
	tick   uint64

	char      Character
	obstacles []Obstacle
	thorn     Projectile
	explosion Explosion
	impact    core.Point // Where the lethal hit landed

	spawner    *Spawner
	difficulty *config.DifficultyController

	survival  int // One point per live obstacle per tick
	bonus     int // Kill awards
	kills     int
	anomalies int
}

// New creates a game using cfg. A nil logger discards output.
// Call Reset before the first Step.
func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:        cfg,
		logger:     logger,
		difficulty: config.NewDifficultyController(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "thornfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Thornfall"
}

// Reset sizes the field and returns to the title screen with a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.phase = PhaseTitle
	g.spawner = NewSpawner(rc.Seed, rc.FieldW, g.cfg.Obstacles)
	g.resetSession(time.Time{})
}

// resetSession clears everything a restart clears and starts the spawn clock.
func (g *Game) resetSession(now time.Time) {
	g.paused = false
	g.tick = 0
	g.survival = 0
	g.bonus = 0
	g.kills = 0
	g.anomalies = 0
	g.obstacles = g.obstacles[:0]
	g.impact = core.Point{}

	g.char = Character{
		W:     g.cfg.Player.Width,
		H:     g.cfg.Player.Height,
		Speed: g.cfg.Player.Speed,
	}
	g.placeCharacter(true)

	g.thorn = Projectile{
		W:     g.cfg.Thorn.Width,
		H:     g.cfg.Thorn.Height,
		Speed: g.cfg.Thorn.Speed,
	}

	g.explosion = Explosion{
		MaxFrames:  g.cfg.Explosion.MaxFrames,
		FrameDelay: g.cfg.Explosion.FrameDelay(),
	}

	g.difficulty.Reset()
	g.spawner.Reset(g.runtime.Seed, now)
}

// placeCharacter anchors the character to the bottom of the field.
// With center set it is also moved to the horizontal middle; otherwise its
// x is only clamped to the field.
func (g *Game) placeCharacter(center bool) {
	if center {
		g.char.X = g.runtime.FieldW/2 - g.char.W/2
	}
	g.char.X = core.ClampF(g.char.X, 0, g.runtime.FieldW-g.char.W)
	g.char.Y = g.runtime.FieldH - g.char.H - g.cfg.Player.BottomMargin
}

// Resize updates the field bounds without touching the session.
func (g *Game) Resize(fieldW, fieldH float64) {
	if fieldW == g.runtime.FieldW && fieldH == g.runtime.FieldH {
		return
	}
	g.runtime.FieldW = fieldW
	g.runtime.FieldH = fieldH
	if g.spawner != nil {
		g.spawner.SetFieldWidth(fieldW)
	}
	g.placeCharacter(false)
	g.logger.Debug("field resized", "w", fieldW, "h", fieldH)
}

// Field returns the current field size in world units.
func (g *Game) Field() (w, h float64) {
	return g.runtime.FieldW, g.runtime.FieldH
}

// Phase returns the current top-level state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns survival points plus kill bonuses.
func (g *Game) Score() int {
	return g.survival + g.bonus
}

// Step advances the game by one tick. now drives the spawn and explosion
// timers; movement is a fixed amount per tick.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseTitle:
		if in.Has(core.ActionStart) {
			g.resetSession(now)
			g.transition(EventStart)
		}
	case PhasePlaying:
		g.stepPlaying(now, in)
	case PhaseExploding:
		if g.explosion.Advance(now) {
			g.transition(EventExplosionDone)
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.resetSession(now)
			g.transition(EventRestart)
		}
	}
	return core.StepResult{State: g.State()}
}

// stepPlaying runs one tick of live play.
func (g *Game) stepPlaying(now time.Time, in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}
	g.tick++

	g.char.Move(in.Direction(), g.runtime.FieldW)
	if in.Has(core.ActionFire) {
		g.fire()
	}

	diff := g.settleDifficulty()

	// Only a lethal explosion suspends spawning, and that never runs here.
	if o, ok := g.spawner.TrySpawn(now, len(g.obstacles), diff); ok {
		g.obstacles = append(g.obstacles, o)
	}

	for i := range g.obstacles {
		g.obstacles[i].Y += diff.EnemySpeed
	}
	g.dropOffField()

	for _, o := range g.obstacles {
		if CheckHit(g.char, o) {
			g.lethalHit(now, o)
			return
		}
	}

	g.advanceThorn(now)

	g.survival += len(g.obstacles)

	if g.explosion.Active && !g.explosion.Lethal {
		g.explosion.Advance(now)
	}

	g.settleDifficulty()
}

// settleDifficulty raises the level when the score crossed a boundary.
func (g *Game) settleDifficulty() config.DifficultyState {
	if g.difficulty.Advance(g.Score()) {
		st := g.difficulty.State()
		g.logger.Debug("level up",
			"level", st.Level,
			"interval", st.SpawnInterval,
			"speed", st.EnemySpeed,
			"max", st.MaxOnScreen)
	}
	return g.difficulty.State()
}

// fire launches a thorn from the top center of the character.
// Does nothing while a thorn is in flight.
func (g *Game) fire() {
	if g.thorn.Active {
		return
	}
	g.thorn.X = g.char.X + g.char.W/2 - g.thorn.W/2
	g.thorn.Y = g.char.Y - g.thorn.H
	g.thorn.Active = true
}

// dropOffField removes obstacles whose top edge passed the field bottom.
func (g *Game) dropOffField() {
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Y < g.runtime.FieldH {
			kept = append(kept, o)
		}
	}
	g.obstacles = kept
}

// advanceThorn moves the thorn and resolves at most one kill.
func (g *Game) advanceThorn(now time.Time) {
	if !g.thorn.Active {
		return
	}
	g.thorn.Y -= g.thorn.Speed
	if g.thorn.Y+g.thorn.H <= 0 {
		g.thorn.Active = false
		return
	}

	for i, o := range g.obstacles {
		if !ProjectileHit(g.thorn, o) {
			continue
		}
		g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
		g.bonus += g.cfg.Scoring.KillBonus
		g.kills++
		g.thorn.Active = false
		// A burst already on screen keeps running; the kill still counts.
		g.explosion.Start(now, g.thorn.Bounds().Center(), false)
		g.logger.Debug("obstacle destroyed", "kind", o.Kind, "kills", g.kills)
		return
	}
}

// lethalHit ends play: the running burst, if any, is replaced by the
// game-ending one at the impact point.
func (g *Game) lethalHit(now time.Time, o Obstacle) {
	impact, ok := FindImpactPoint(g.char, o)
	if !ok {
		g.anomalies++
		g.logger.Error("impact point not found after hit",
			"char", g.char.Bounds(),
			"obstacle", o.Bounds(),
			"kind", o.Kind)
	} else if cp, op, found := ImpactParts(g.char, o); found {
		g.logger.Debug("character hit", "part", cp, "by", o.Kind.String()+" "+op)
	}

	g.impact = impact
	g.thorn.Active = false
	g.explosion.Clear()
	g.explosion.Start(now, impact, true)
	g.transition(EventLethalHit)
}

// transition applies e to the phase table.
func (g *Game) transition(e Event) {
	next, ok := g.phase.Next(e)
	if !ok {
		g.logger.Warn("ignored event", "phase", g.phase, "event", e)
		return
	}
	g.logger.Debug("phase change", "from", g.phase, "to", next, "event", e, "score", g.Score())
	g.phase = next
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// StartButton returns the clickable title-screen region for a field.
func StartButton(fieldW, fieldH float64) core.Rect {
	w := core.MinF(200, fieldW*0.6)
	h := core.MinF(60, fieldH*0.15)
	return core.NewRect(fieldW/2-w/2, fieldH/2-h/2, w, h)
}
