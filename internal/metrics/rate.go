package metrics

import "time"

// Rate measures how often Tick is called, averaged over a fixed wall-clock
// window. The reported value only changes when a window completes.
type Rate struct {
	name   string
	window time.Duration
	now    func() time.Time

	start time.Time
	count int
	rate  float64
}

func NewRate(name string, window time.Duration) *Rate {
	return &Rate{
		name:   name,
		window: window,
		now:    time.Now,
	}
}

func (r *Rate) Name() string { return r.name }

func (r *Rate) Tick() {
	t := r.now()
	if r.start.IsZero() {
		r.start = t
		return
	}
	r.count++

	if elapsed := t.Sub(r.start); elapsed >= r.window {
		r.rate = float64(r.count) / elapsed.Seconds()
		r.count = 0
		r.start = t
	}
}

// Value returns ticks per second over the last completed window.
func (r *Rate) Value() float64 { return r.rate }

func (r *Rate) Reset() {
	r.start = time.Time{}
	r.count = 0
	r.rate = 0
}
