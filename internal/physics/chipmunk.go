package physics

import (
	"cmp"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/san-kum/bucketsim/internal/dynamo"
)

// Space is a chipmunk space plus the bookkeeping needed to expose it as a
// dynamo.Backend.
type Space struct {
	space    *cp.Space
	nextID   int
	refs     map[*cp.Shape]dynamo.ShapeRef
	bodies   []dynamo.Body
	segments []dynamo.StaticSegment
	circles  []dynamo.Circle
	steps    int
}

func NewSpace() *Space {
	return &Space{
		space: cp.NewSpace(),
		refs:  make(map[*cp.Shape]dynamo.ShapeRef),
	}
}

// SetIterations sets the impulse solver iteration count. Must be non-zero.
func (s *Space) SetIterations(n uint) {
	if n > 0 {
		s.space.Iterations = n
	}
}

func (s *Space) SetGravity(g dynamo.Vec2) {
	s.space.SetGravity(toVector(g))
}

func (s *Space) Gravity() dynamo.Vec2 {
	return fromVector(s.space.Gravity())
}

func (s *Space) AddSegment(seg dynamo.StaticSegment) dynamo.ShapeRef {
	shape := cp.NewSegment(s.space.StaticBody, toVector(seg.A), toVector(seg.B), seg.Radius)
	shape.SetElasticity(seg.Material.Elasticity)
	shape.SetFriction(seg.Material.Friction)
	s.space.AddShape(shape)

	s.segments = append(s.segments, seg)
	return s.register(shape, dynamo.ShapeSegment, nil)
}

func (s *Space) AddCircle(radius, mass, moment float64, pos dynamo.Vec2, mat dynamo.Material) (dynamo.Body, dynamo.ShapeRef) {
	cb := s.space.AddBody(cp.NewBody(mass, moment))
	cb.SetPosition(toVector(pos))

	shape := cp.NewCircle(cb, radius, cp.Vector{})
	shape.SetElasticity(mat.Elasticity)
	shape.SetFriction(mat.Friction)
	s.space.AddShape(shape)

	b := &body{body: cb}
	ref := s.register(shape, dynamo.ShapeCircle, b)
	s.bodies = append(s.bodies, b)
	s.circles = append(s.circles, dynamo.Circle{Shape: ref, Radius: radius})
	return b, ref
}

func (s *Space) register(shape *cp.Shape, kind dynamo.ShapeKind, b dynamo.Body) dynamo.ShapeRef {
	ref := dynamo.ShapeRef{ID: s.nextID, Kind: kind, Body: b}
	s.nextID++
	s.refs[shape] = ref
	return ref
}

func (s *Space) Bodies() []dynamo.Body { return s.bodies }

func (s *Space) Segments() []dynamo.StaticSegment { return s.segments }

func (s *Space) Circles() []dynamo.Circle { return s.circles }

func (s *Space) Step(dt float64) {
	s.space.Step(dt)
	s.steps++
}

// Steps returns how many times Step has been called.
func (s *Space) Steps() int { return s.steps }

// PointQuery returns every shape whose surface is within radius of p. The
// bounding-box query is coarse; each candidate is confirmed against its
// exact distance.
func (s *Space) PointQuery(p dynamo.Vec2, radius float64) []dynamo.Hit {
	pt := toVector(p)
	var hits []dynamo.Hit
	s.space.BBQuery(cp.NewBBForCircle(pt, radius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		ref, ok := s.refs[shape]
		if !ok {
			return
		}
		info := shape.PointQuery(pt)
		if info.Distance > radius {
			return
		}
		hits = append(hits, dynamo.Hit{Shape: ref, Distance: info.Distance})
	}, nil)

	// The spatial index reports in tree order; callers rely on insertion order.
	slices.SortFunc(hits, func(a, b dynamo.Hit) int {
		return cmp.Compare(a.Shape.ID, b.Shape.ID)
	})
	return hits
}

type body struct {
	body *cp.Body
}

func (b *body) Position() dynamo.Vec2 { return fromVector(b.body.Position()) }

func (b *body) SetPosition(p dynamo.Vec2) { b.body.SetPosition(toVector(p)) }

func (b *body) Velocity() dynamo.Vec2 { return fromVector(b.body.Velocity()) }

func (b *body) SetVelocity(v dynamo.Vec2) { b.body.SetVelocityVector(toVector(v)) }

func (b *body) Angle() float64 { return b.body.Angle() }

func (b *body) Mass() float64 { return b.body.Mass() }

func toVector(v dynamo.Vec2) cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

func fromVector(v cp.Vector) dynamo.Vec2 { return dynamo.Vec2{X: v.X, Y: v.Y} }
