package sim

import (
	"fmt"
	"time"

	"github.com/san-kum/bucketsim/internal/dynamo"
	"github.com/san-kum/bucketsim/internal/metrics"
)

// Scheduler decouples render cadence from physics cadence: every render
// frame advances the backend TickRate times with a fixed Dt, regardless of
// how long the frame actually took.
type Scheduler struct {
	renderRate  int
	physicsRate int
	tickRate    int
	dt          float64
	frame       time.Duration

	now   func() time.Time
	sleep func(time.Duration)
	last  time.Time

	renderMeter  *metrics.Rate
	physicsMeter *metrics.Rate
}

// NewScheduler requires physicsRate to be a positive integer multiple of
// renderRate.
func NewScheduler(renderRate, physicsRate int) (*Scheduler, error) {
	if renderRate <= 0 || physicsRate <= 0 || physicsRate%renderRate != 0 {
		return nil, fmt.Errorf("render %d Hz, physics %d Hz: %w", renderRate, physicsRate, dynamo.ErrInvalidRates)
	}
	return &Scheduler{
		renderRate:   renderRate,
		physicsRate:  physicsRate,
		tickRate:     physicsRate / renderRate,
		dt:           1.0 / float64(physicsRate),
		frame:        time.Second / time.Duration(renderRate),
		now:          time.Now,
		sleep:        time.Sleep,
		renderMeter:  metrics.NewRate("fps", time.Second),
		physicsMeter: metrics.NewRate("physics_fps", time.Second),
	}, nil
}

func (s *Scheduler) RenderRate() int  { return s.renderRate }
func (s *Scheduler) PhysicsRate() int { return s.physicsRate }

// TickRate is the number of physics sub-steps per render frame.
func (s *Scheduler) TickRate() int { return s.tickRate }

// Dt is the fixed sub-step length in seconds.
func (s *Scheduler) Dt() float64 { return s.dt }

// FrameTime is the simulated time covered by one render frame.
func (s *Scheduler) FrameTime() float64 { return float64(s.tickRate) * s.dt }

// Advance runs exactly TickRate sub-steps of Dt.
func (s *Scheduler) Advance(b dynamo.Backend) {
	for i := 0; i < s.tickRate; i++ {
		b.Step(s.dt)
		s.physicsMeter.Tick()
	}
}

// Throttle blocks until at least one render period has passed since the
// previous call, then records the frame.
func (s *Scheduler) Throttle() {
	if !s.last.IsZero() {
		if wait := s.frame - s.now().Sub(s.last); wait > 0 {
			s.sleep(wait)
		}
	}
	s.last = s.now()
	s.renderMeter.Tick()
}

// MarkFrame records a rendered frame without waiting, for loops whose
// cadence is driven elsewhere.
func (s *Scheduler) MarkFrame() { s.renderMeter.Tick() }

// RenderFPS returns the achieved render rate.
func (s *Scheduler) RenderFPS() float64 { return s.renderMeter.Value() }

// PhysicsFPS returns the achieved sub-step rate.
func (s *Scheduler) PhysicsFPS() float64 { return s.physicsMeter.Value() }
