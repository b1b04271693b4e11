package metrics

import "github.com/san-kum/bucketsim/internal/dynamo"

// Energy is the ball's mechanical energy, kinetic plus potential measured
// from the bottom edge of the viewport (screen y grows downward).
type Energy struct {
	name    string
	mass    float64
	gravity float64
	floor   float64
	samples int
	current float64
	total   float64
}

func NewEnergy(mass, gravity, floor float64) *Energy {
	return &Energy{
		name:    "energy",
		mass:    mass,
		gravity: gravity,
		floor:   floor,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f dynamo.Frame) {
	v := f.Velocity.Norm()
	ke := 0.5 * e.mass * v * v
	pe := e.mass * e.gravity * (e.floor - f.Position.Y)
	e.current = ke + pe
	e.total += e.current
	e.samples++
}

// Value returns the mean energy over all observed frames.
func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Current() float64 { return e.current }

func (e *Energy) Reset() {
	e.current = 0
	e.total = 0
	e.samples = 0
}
