package sim

import (
	"github.com/san-kum/bucketsim/internal/control"
	"github.com/san-kum/bucketsim/internal/dynamo"
)

// Session owns all mutable loop state for one simulation: the drag state,
// the scheduler and its clocks, and the frame counter. Sessions share
// nothing, so several can run side by side.
type Session struct {
	backend  dynamo.Backend
	ball     dynamo.Body
	boundary Boundary
	drag     *control.Drag
	sched    *Scheduler

	metrics   []dynamo.Metric
	observers []dynamo.Observer

	// ValidateState makes Frame fail when the ball's state turns NaN/Inf.
	ValidateState bool

	pointer dynamo.Vec2
	frame   int
	time    float64
	last    dynamo.Frame
}

func NewSession(b dynamo.Backend, ball dynamo.Body, boundary Boundary, sched *Scheduler, drag *control.Drag) *Session {
	return &Session{
		backend:       b,
		ball:          ball,
		boundary:      boundary,
		drag:          drag,
		sched:         sched,
		metrics:       make([]dynamo.Metric, 0),
		observers:     make([]dynamo.Observer, 0),
		ValidateState: true,
	}
}

func (s *Session) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Session) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

func (s *Session) Backend() dynamo.Backend { return s.backend }
func (s *Session) Ball() dynamo.Body       { return s.ball }
func (s *Session) Drag() *control.Drag     { return s.drag }
func (s *Session) Scheduler() *Scheduler   { return s.sched }

func (s *Session) Viewport() dynamo.Viewport {
	return s.boundary.Viewport
}

// PointerDown starts a drag if a circle is under p.
func (s *Session) PointerDown(p dynamo.Vec2) bool {
	s.pointer = p
	return s.drag.PointerDown(s.backend, p)
}

func (s *Session) PointerUp() { s.drag.PointerUp() }

func (s *Session) PointerMove(p dynamo.Vec2) { s.pointer = p }

func (s *Session) Pointer() dynamo.Vec2 { return s.pointer }

// Correct runs the render-rate logic: boundary wrap for every body, then
// the drag velocity command toward the pointer. It returns the number of
// wraps.
func (s *Session) Correct() int {
	wraps := s.boundary.Apply(s.backend)
	s.drag.Apply(s.pointer)
	return wraps
}

// Advance runs the fixed physics sub-steps for one frame.
func (s *Session) Advance() {
	s.sched.Advance(s.backend)
	s.time += s.sched.FrameTime()
}

// Frame runs one render frame with the pointer at p: Correct, then Advance,
// then metrics and observers see the resulting ball state.
func (s *Session) Frame(p dynamo.Vec2) (dynamo.Frame, error) {
	s.pointer = p
	wraps := s.Correct()
	s.Advance()
	s.frame++

	f := dynamo.Frame{
		Index:    s.frame,
		Time:     s.time,
		Position: s.ball.Position(),
		Velocity: s.ball.Velocity(),
		Wraps:    wraps,
		Dragging: s.drag.Dragging(),
	}
	s.last = f

	if s.ValidateState && (!f.Position.IsValid() || !f.Velocity.IsValid()) {
		return f, &dynamo.SimulationError{Frame: f.Index, Time: f.Time, Wrapped: dynamo.ErrInvalidState}
	}

	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, o := range s.observers {
		o.OnFrame(f)
	}
	return f, nil
}

// Throttle caps the frame rate at the scheduler's render rate.
func (s *Session) Throttle() { s.sched.Throttle() }

// MarkFrame records a rendered frame when an external ticker sets the pace.
func (s *Session) MarkFrame() { s.sched.MarkFrame() }

// Last returns the snapshot taken at the end of the most recent frame.
func (s *Session) Last() dynamo.Frame { return s.last }

// BallSpeed is the Euclidean norm of the ball's current velocity.
func (s *Session) BallSpeed() float64 { return s.ball.Velocity().Norm() }

func (s *Session) RenderFPS() float64  { return s.sched.RenderFPS() }
func (s *Session) PhysicsFPS() float64 { return s.sched.PhysicsFPS() }

// Metrics returns the current value of every registered metric by name.
func (s *Session) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
