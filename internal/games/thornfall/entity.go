package thornfall

import (
	"time"

	"github.com/vovakirdan/thornfall/internal/core"
)

// Kind selects an obstacle archetype.
type Kind int

const (
	KindA Kind = iota // Beetle
	KindB             // Wasp
)

// Opposite returns the other archetype.
func (k Kind) Opposite() Kind {
	if k == KindA {
		return KindB
	}
	return KindA
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindA:
		return "beetle"
	case KindB:
		return "wasp"
	default:
		return "unknown"
	}
}

// Character is the player-controlled cactus.
type Character struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64 // Horizontal pixels per tick
}

// Bounds returns the character's bounding box.
func (c Character) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Parts returns the character's body parts in world coordinates.
func (c Character) Parts() []Part {
	return CharacterShape.At(c.Bounds())
}

// Move shifts the character by dir*Speed and keeps it inside [0, fieldW].
func (c *Character) Move(dir, fieldW float64) {
	c.X = core.ClampF(c.X+dir*c.Speed, 0, fieldW-c.W)
}

// Obstacle is a descending enemy.
type Obstacle struct {
	X, Y float64
	W, H float64
	Kind Kind
}

// Bounds returns the obstacle's bounding box.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Parts returns the obstacle's body parts in world coordinates.
func (o Obstacle) Parts() []Part {
	return ShapeOf(o.Kind).At(o.Bounds())
}

// Projectile is the thorn fired upward by the character.
// Only one may be in flight.
type Projectile struct {
	X, Y   float64
	W, H   float64
	Speed  float64 // Upward pixels per tick
	Active bool
}

// Bounds returns the thorn's bounding box.
func (p Projectile) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Explosion is the single timed burst shown after a hit.
// Lethal explosions end the session; nonlethal ones mark a kill.
type Explosion struct {
	Active     bool
	At         core.Point // Center of the burst
	Frame      int
	MaxFrames  int
	FrameDelay time.Duration
	LastFrame  time.Time
	Lethal     bool
}

// Start arms the explosion at the given point.
// It refuses to start while another explosion is still running.
func (e *Explosion) Start(now time.Time, at core.Point, lethal bool) bool {
	if e.Active {
		return false
	}
	e.Active = true
	e.At = at
	e.Frame = 0
	e.LastFrame = now
	e.Lethal = lethal
	return true
}

// Advance moves to the next frame once FrameDelay has passed since the
// previous one. It returns true on the advance that finishes the explosion.
func (e *Explosion) Advance(now time.Time) bool {
	if !e.Active {
		return false
	}
	if now.Sub(e.LastFrame) < e.FrameDelay {
		return false
	}
	e.Frame++
	e.LastFrame = now
	if e.Frame >= e.MaxFrames {
		e.Active = false
		return true
	}
	return false
}

// Clear stops the explosion without finishing it.
func (e *Explosion) Clear() {
	e.Active = false
	e.Frame = 0
	e.Lethal = false
}

// Progress returns how far the explosion has run, in [0, 1].
func (e Explosion) Progress() float64 {
	if e.MaxFrames <= 0 {
		return 1
	}
	return core.ClampF(float64(e.Frame)/float64(e.MaxFrames), 0, 1)
}
