package dynamo

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func (v Vec2) String() string { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }

// Viewport is the fixed wrap boundary. It never changes during a run.
type Viewport struct {
	Width  float64
	Height float64
}

type Material struct {
	Elasticity float64
	Friction   float64
}

// DefaultMaterial is used for both the bucket and the ball.
var DefaultMaterial = Material{Elasticity: 0.8, Friction: 0.6}

// StaticSegment is one straight piece of the bucket. Segments are created
// once at startup and never moved, added or removed afterwards.
type StaticSegment struct {
	A, B     Vec2
	Radius   float64
	Material Material
}

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSegment
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeSegment:
		return "segment"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Body is an opaque handle to a dynamic body owned by a Backend.
// Handles stay valid for the lifetime of the backend.
type Body interface {
	Position() Vec2
	SetPosition(p Vec2)
	Velocity() Vec2
	SetVelocity(v Vec2)
	Angle() float64
	Mass() float64
}

// ShapeRef identifies a collision shape. ID is assigned in insertion order,
// so a larger ID means the shape was added later. Body is nil for static
// shapes.
type ShapeRef struct {
	ID   int
	Kind ShapeKind
	Body Body
}

// Hit is one result of a point query.
type Hit struct {
	Shape    ShapeRef
	Distance float64
}

// Circle describes a dynamic circle for drawing.
type Circle struct {
	Shape  ShapeRef
	Radius float64
}

// Backend is the rigid-body engine contract consumed by the loop.
type Backend interface {
	SetGravity(g Vec2)
	AddSegment(seg StaticSegment) ShapeRef
	AddCircle(radius, mass, moment float64, pos Vec2, mat Material) (Body, ShapeRef)
	// Bodies returns every dynamic body in insertion order.
	Bodies() []Body
	Segments() []StaticSegment
	Circles() []Circle
	Step(dt float64)
	// PointQuery returns every shape within radius of p, ordered by
	// insertion (oldest first).
	PointQuery(p Vec2, radius float64) []Hit
}

// Frame is the per-frame snapshot handed to metrics and observers.
type Frame struct {
	Index    int
	Time     float64
	Position Vec2
	Velocity Vec2
	Wraps    int
	Dragging bool
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}
