package sim

import (
	"math"

	"github.com/san-kum/bucketsim/internal/dynamo"
)

type fakeBody struct {
	pos, vel dynamo.Vec2
}

func (b *fakeBody) Position() dynamo.Vec2     { return b.pos }
func (b *fakeBody) SetPosition(p dynamo.Vec2) { b.pos = p }
func (b *fakeBody) Velocity() dynamo.Vec2     { return b.vel }
func (b *fakeBody) SetVelocity(v dynamo.Vec2) { b.vel = v }
func (b *fakeBody) Angle() float64            { return 0 }
func (b *fakeBody) Mass() float64             { return 1 }

// fakeBackend integrates bodies with explicit Euler under gravity and
// records every step length.
type fakeBackend struct {
	bodies  []*fakeBody
	gravity dynamo.Vec2
	steps   []float64
	poison  bool
}

func (f *fakeBackend) SetGravity(g dynamo.Vec2)                        { f.gravity = g }
func (f *fakeBackend) AddSegment(dynamo.StaticSegment) dynamo.ShapeRef { return dynamo.ShapeRef{} }

func (f *fakeBackend) AddCircle(radius, mass, moment float64, pos dynamo.Vec2, mat dynamo.Material) (dynamo.Body, dynamo.ShapeRef) {
	b := &fakeBody{pos: pos}
	f.bodies = append(f.bodies, b)
	return b, dynamo.ShapeRef{ID: len(f.bodies) - 1, Kind: dynamo.ShapeCircle, Body: b}
}

func (f *fakeBackend) Bodies() []dynamo.Body {
	out := make([]dynamo.Body, len(f.bodies))
	for i, b := range f.bodies {
		out[i] = b
	}
	return out
}

func (f *fakeBackend) Segments() []dynamo.StaticSegment { return nil }
func (f *fakeBackend) Circles() []dynamo.Circle         { return nil }

func (f *fakeBackend) Step(dt float64) {
	f.steps = append(f.steps, dt)
	for _, b := range f.bodies {
		b.vel = b.vel.Add(f.gravity.Scale(dt))
		b.pos = b.pos.Add(b.vel.Scale(dt))
		if f.poison {
			b.pos.X = math.NaN()
		}
	}
}

func (f *fakeBackend) PointQuery(p dynamo.Vec2, radius float64) []dynamo.Hit {
	var hits []dynamo.Hit
	for i, b := range f.bodies {
		if b.pos.Sub(p).Norm() <= radius {
			hits = append(hits, dynamo.Hit{Shape: dynamo.ShapeRef{ID: i, Kind: dynamo.ShapeCircle, Body: b}})
		}
	}
	return hits
}
