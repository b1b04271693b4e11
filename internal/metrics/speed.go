package metrics

import "github.com/san-kum/bucketsim/internal/dynamo"

// Speed tracks the ball's speed, the Euclidean norm of its velocity.
type Speed struct {
	name string
	last float64
	peak float64
}

func NewSpeed() *Speed {
	return &Speed{name: "speed"}
}

func (s *Speed) Name() string { return s.name }

func (s *Speed) Observe(f dynamo.Frame) {
	s.last = f.Velocity.Norm()
	if s.last > s.peak {
		s.peak = s.last
	}
}

func (s *Speed) Value() float64 { return s.last }

func (s *Speed) Peak() float64 { return s.peak }

func (s *Speed) Reset() {
	s.last = 0
	s.peak = 0
}

// Wraps counts boundary teleports.
type Wraps struct {
	name  string
	total int
}

func NewWraps() *Wraps {
	return &Wraps{name: "wraps"}
}

func (w *Wraps) Name() string { return w.name }

func (w *Wraps) Observe(f dynamo.Frame) { w.total += f.Wraps }

func (w *Wraps) Value() float64 { return float64(w.total) }

func (w *Wraps) Reset() { w.total = 0 }
