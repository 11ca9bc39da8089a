package thornfall

import "github.com/vovakirdan/thornfall/internal/core"

// CheckHit reports whether any character part overlaps any obstacle part.
func CheckHit(c Character, o Obstacle) bool {
	_, _, ok := core.AnyIntersect(rects(c.Parts()), rects(o.Parts()))
	return ok
}

// FindImpactPoint returns the center of the overlap between the first
// colliding pair of parts, scanning character parts then obstacle parts in
// table order. When nothing overlaps it returns the character's center and
// ok is false.
func FindImpactPoint(c Character, o Obstacle) (core.Point, bool) {
	cp, op := rects(c.Parts()), rects(o.Parts())
	i, j, ok := core.AnyIntersect(cp, op)
	if !ok {
		return c.Bounds().Center(), false
	}
	p, _ := core.OverlapCenter(cp[i], op[j])
	return p, true
}

// ImpactParts names the first colliding pair, e.g. for logging.
func ImpactParts(c Character, o Obstacle) (charPart, obstaclePart string, ok bool) {
	cp, op := c.Parts(), o.Parts()
	i, j, ok := core.AnyIntersect(rects(cp), rects(op))
	if !ok {
		return "", "", false
	}
	return cp[i].Name, op[j].Name, true
}

// ProjectileHit reports whether the thorn overlaps any obstacle part.
func ProjectileHit(p Projectile, o Obstacle) bool {
	if !p.Active {
		return false
	}
	_, _, ok := core.AnyIntersect([]core.Rect{p.Bounds()}, rects(o.Parts()))
	return ok
}
