package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/bucketsim/internal/automation"
	"github.com/san-kum/bucketsim/internal/config"
	"github.com/san-kum/bucketsim/internal/control"
	"github.com/san-kum/bucketsim/internal/dynamo"
	"github.com/san-kum/bucketsim/internal/metrics"
	"github.com/san-kum/bucketsim/internal/physics"
	"github.com/san-kum/bucketsim/internal/scene"
	"github.com/san-kum/bucketsim/internal/sim"
)

// Experiment is one configured scene with its own backend and session.
type Experiment struct {
	cfg     *config.Config
	space   *physics.Space
	scene   *scene.Scene
	session *sim.Session

	speed  *metrics.Speed
	wraps  *metrics.Wraps
	energy *metrics.Energy
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup builds the scene into a fresh chipmunk space and wires the
// scheduler, drag controller and metrics into a session.
func (e *Experiment) Setup() error {
	space := physics.NewSpace()
	sc, err := scene.Build(space, e.cfg)
	if err != nil {
		return err
	}

	sched, err := sim.NewScheduler(e.cfg.Rates.Render, e.cfg.Rates.Physics)
	if err != nil {
		return err
	}

	boundary := sim.Boundary{Viewport: e.cfg.ViewportRect(), FallCap: e.cfg.Boundary.FallCap}
	drag := control.NewDrag(e.cfg.Drag.Gain, e.cfg.Drag.QueryRadius)
	sess := sim.NewSession(space, sc.Ball, boundary, sched, drag)

	e.speed = metrics.NewSpeed()
	e.wraps = metrics.NewWraps()
	e.energy = metrics.NewEnergy(sc.Ball.Mass(), e.cfg.Gravity.Y, e.cfg.Viewport.Height)
	sess.AddMetric(e.speed)
	sess.AddMetric(e.wraps)
	sess.AddMetric(e.energy)

	e.space = space
	e.scene = sc
	e.session = sess
	return nil
}

// Setup is shorthand for New(cfg).Setup() returning the session.
func Setup(cfg *config.Config) (*sim.Session, error) {
	e := New(cfg)
	if err := e.Setup(); err != nil {
		return nil, err
	}
	return e.session, nil
}

type RunOptions struct {
	Frames   int
	Script   *automation.Script
	// Realtime throttles every frame to the render rate.
	Realtime bool
}

type Result struct {
	Name      string
	Frames    []dynamo.Frame
	Wraps     int
	PeakSpeed float64
	Metrics   map[string]float64
	Steps     int
	Elapsed   time.Duration
}

// Heights returns the ball's y coordinate per frame.
func (r *Result) Heights() []float64 {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Position.Y
	}
	return out
}

func (r *Result) Speeds() []float64 {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Velocity.Norm()
	}
	return out
}

// Run drives the session for opts.Frames frames with the pointer left
// wherever the script last put it. A cancelled context stops the run and
// the partial result is returned with the context error.
func (e *Experiment) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if e.session == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	var player *automation.Player
	if opts.Script != nil {
		player = automation.NewPlayer(opts.Script)
	}

	res := &Result{Frames: make([]dynamo.Frame, 0, opts.Frames)}
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
		res.Steps = e.space.Steps()
		res.Metrics = e.session.Metrics()
		res.PeakSpeed = e.speed.Peak()
	}()

	for i := 1; i <= opts.Frames; i++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		player.Drive(i, e.session)
		f, err := e.session.Frame(e.session.Pointer())
		if err != nil {
			return res, err
		}
		res.Frames = append(res.Frames, f)
		res.Wraps += f.Wraps

		if opts.Realtime {
			e.session.Throttle()
		} else {
			e.session.MarkFrame()
		}
	}
	return res, nil
}

func (e *Experiment) Session() *sim.Session  { return e.session }
func (e *Experiment) Scene() *scene.Scene    { return e.scene }
func (e *Experiment) Config() *config.Config { return e.cfg }
