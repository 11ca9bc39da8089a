package thornfall

import "github.com/vovakirdan/thornfall/internal/core"

// Part is a named solid region of an entity, in coordinates local to the
// entity's top-left corner.
type Part struct {
	Name string
	Rect core.Rect
}

// Shape is a static body-part table drawn for a reference box size.
// Entities of another size get the table scaled to their box.
type Shape struct {
	RefW, RefH float64
	Parts      []Part // Parts[0] is always the main body
}

// Body-part tables. Drawing and collision both read these.
var (
	CharacterShape = Shape{
		RefW: 50, RefH: 50,
		Parts: []Part{
			{Name: "body", Rect: core.NewRect(17, 5, 16, 45)},
			{Name: "left-arm", Rect: core.NewRect(3, 15, 14, 10)},
			{Name: "right-arm", Rect: core.NewRect(33, 10, 14, 10)},
		},
	}

	BeetleShape = Shape{
		RefW: 40, RefH: 40,
		Parts: []Part{
			{Name: "body", Rect: core.NewRect(10, 12, 20, 20)},
			{Name: "head", Rect: core.NewRect(14, 30, 12, 8)},
			{Name: "left-claw", Rect: core.NewRect(2, 28, 8, 10)},
			{Name: "right-claw", Rect: core.NewRect(30, 28, 8, 10)},
		},
	}

	WaspShape = Shape{
		RefW: 40, RefH: 40,
		Parts: []Part{
			{Name: "body", Rect: core.NewRect(14, 4, 12, 22)},
			{Name: "stinger", Rect: core.NewRect(18, 26, 4, 10)},
			{Name: "left-wing", Rect: core.NewRect(0, 8, 14, 10)},
			{Name: "right-wing", Rect: core.NewRect(26, 8, 14, 10)},
		},
	}
)

// ShapeOf returns the table for an obstacle kind.
func ShapeOf(k Kind) Shape {
	if k == KindB {
		return WaspShape
	}
	return BeetleShape
}

// At returns the parts placed in world coordinates for an entity whose
// bounding box is box. The result is freshly allocated on every call.
func (s Shape) At(box core.Rect) []Part {
	sx, sy := 1.0, 1.0
	if s.RefW > 0 {
		sx = box.W / s.RefW
	}
	if s.RefH > 0 {
		sy = box.H / s.RefH
	}

	out := make([]Part, len(s.Parts))
	for i, p := range s.Parts {
		out[i] = Part{
			Name: p.Name,
			Rect: core.NewRect(
				box.X+p.Rect.X*sx,
				box.Y+p.Rect.Y*sy,
				p.Rect.W*sx,
				p.Rect.H*sy,
			),
		}
	}
	return out
}

// rects strips the names from a part list.
func rects(parts []Part) []core.Rect {
	out := make([]core.Rect, len(parts))
	for i, p := range parts {
		out[i] = p.Rect
	}
	return out
}
