package sim

import "github.com/san-kum/bucketsim/internal/dynamo"

// Boundary teleports bodies that leave the viewport: through the bottom
// back to the top, and across the left and right edges. Positions on an
// edge are inside. Teleports overwrite state directly; the backend sees
// no collision.
type Boundary struct {
	Viewport dynamo.Viewport
	// FallCap limits downward speed after a bottom-to-top wrap. Upward and
	// horizontal velocity are never touched. Zero means DefaultFallCap.
	FallCap float64
}

// DefaultFallCap is the downward speed limit applied when FallCap is unset.
const DefaultFallCap = 800.0

func (bd Boundary) fallCap() float64 {
	if bd.FallCap <= 0 {
		return DefaultFallCap
	}
	return bd.FallCap
}

// Apply checks every dynamic body once and returns the number of
// teleports performed.
func (bd Boundary) Apply(b dynamo.Backend) int {
	wraps := 0
	for _, body := range b.Bodies() {
		wraps += bd.ApplyBody(body)
	}
	return wraps
}

// ApplyBody runs the three edge checks in order, each seeing the position
// left by the previous one, so a body can wrap on both axes in one call.
func (bd Boundary) ApplyBody(body dynamo.Body) int {
	wraps := 0
	pos := body.Position()

	if pos.Y > bd.Viewport.Height {
		pos.Y = 0
		body.SetPosition(pos)
		if v, limit := body.Velocity(), bd.fallCap(); v.Y > limit {
			v.Y = limit
			body.SetVelocity(v)
		}
		wraps++
	}

	if pos.X < 0 {
		pos.X = bd.Viewport.Width
		body.SetPosition(pos)
		wraps++
	}

	if pos.X > bd.Viewport.Width {
		pos.X = 0
		body.SetPosition(pos)
		wraps++
	}

	return wraps
}
