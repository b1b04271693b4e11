package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bucketsim/internal/dynamo"
)

// Debug-draw palette on a white background.
var (
	ColBg      = rl.White
	ColText    = rl.Black
	ColStatic  = rl.NewColor(149, 165, 166, 255)
	ColDynamic = rl.NewColor(52, 152, 219, 255)
	ColOutline = rl.NewColor(44, 62, 80, 255)
)

func toScreen(v dynamo.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func fromScreen(v rl.Vector2) dynamo.Vec2 {
	return dynamo.Vec2{X: float64(v.X), Y: float64(v.Y)}
}

func drawSegment(seg dynamo.StaticSegment) {
	a, b := toScreen(seg.A), toScreen(seg.B)
	thick := float32(2 * math.Max(seg.Radius, 0.5))
	rl.DrawLineEx(a, b, thick, ColStatic)
	// round caps so consecutive segments join without notches
	rl.DrawCircleV(a, thick/2, ColStatic)
	rl.DrawCircleV(b, thick/2, ColStatic)
}

func drawCircle(c dynamo.Circle) {
	body := c.Shape.Body
	center := body.Position()
	pos := toScreen(center)
	r := float32(c.Radius)

	rl.DrawCircleV(pos, r, ColDynamic)
	rl.DrawCircleLines(int32(pos.X), int32(pos.Y), r, ColOutline)
	rl.DrawLineEx(pos, toScreen(indicatorEnd(center, c.Radius, body.Angle())), 1, ColOutline)
}

// indicatorEnd is the rim point the rotation line is drawn to.
func indicatorEnd(center dynamo.Vec2, radius, angle float64) dynamo.Vec2 {
	return dynamo.Vec2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}
