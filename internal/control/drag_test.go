package control

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/san-kum/bucketsim/internal/dynamo"
	"github.com/san-kum/bucketsim/internal/physics"
)

func addBall(s *physics.Space, mass float64, pos dynamo.Vec2) (dynamo.Body, dynamo.ShapeRef) {
	return s.AddCircle(20, mass, cp.MomentForCircle(mass, 0, 20, cp.Vector{}), pos, dynamo.DefaultMaterial)
}

// stubBackend answers point queries with a fixed hit list.
type stubBackend struct {
	dynamo.Backend
	hits []dynamo.Hit
}

func (s *stubBackend) PointQuery(p dynamo.Vec2, radius float64) []dynamo.Hit { return s.hits }

func TestPointerDownMiss(t *testing.T) {
	space := physics.NewSpace()
	addBall(space, 10, dynamo.Vec2{X: 100, Y: 100})

	d := NewDrag(10, 10)
	if d.PointerDown(space, dynamo.Vec2{X: 500, Y: 500}) {
		t.Fatal("expected miss")
	}
	if d.Dragging() {
		t.Error("should not be dragging after a miss")
	}
	if _, ok := d.Selected(); ok {
		t.Error("nothing should be selected after a miss")
	}
}

func TestPointerDownSelectsBall(t *testing.T) {
	space := physics.NewSpace()
	_, ref := addBall(space, 10, dynamo.Vec2{X: 100, Y: 100})

	d := NewDrag(10, 10)
	if !d.PointerDown(space, dynamo.Vec2{X: 125, Y: 100}) {
		t.Fatal("expected hit within query radius")
	}
	sel, ok := d.Selected()
	if !ok || sel.ID != ref.ID {
		t.Errorf("expected shape %d selected, got %+v", ref.ID, sel)
	}
	if !d.Dragging() {
		t.Error("expected dragging")
	}
}

func TestPointerDownPrefersLaterShape(t *testing.T) {
	space := physics.NewSpace()
	addBall(space, 10, dynamo.Vec2{X: 100, Y: 100})
	_, later := addBall(space, 10, dynamo.Vec2{X: 110, Y: 100})

	for i := 0; i < 5; i++ {
		d := NewDrag(10, 10)
		d.PointerDown(space, dynamo.Vec2{X: 105, Y: 100})
		sel, ok := d.Selected()
		if !ok || sel.ID != later.ID {
			t.Fatalf("run %d: expected later shape %d, got %+v", i, later.ID, sel)
		}
	}
}

func TestPointerDownSkipsSegments(t *testing.T) {
	ball := dynamo.ShapeRef{ID: 1, Kind: dynamo.ShapeCircle}
	b := &stubBackend{hits: []dynamo.Hit{
		{Shape: dynamo.ShapeRef{ID: 0, Kind: dynamo.ShapeSegment}},
		{Shape: ball},
		{Shape: dynamo.ShapeRef{ID: 2, Kind: dynamo.ShapeSegment}},
	}}

	d := NewDrag(10, 10)
	if !d.PointerDown(b, dynamo.Vec2{}) {
		t.Fatal("expected the circle to be picked")
	}
	if sel, _ := d.Selected(); sel.ID != ball.ID {
		t.Errorf("expected circle %d, got %d", ball.ID, sel.ID)
	}

	b.hits = b.hits[2:]
	if d.PointerDown(b, dynamo.Vec2{}) {
		t.Error("a segment alone must not start a drag")
	}
}

func TestApplySetsVelocity(t *testing.T) {
	space := physics.NewSpace()
	light, _ := addBall(space, 1, dynamo.Vec2{X: 100, Y: 100})

	d := NewDrag(10, 10)
	d.PointerDown(space, dynamo.Vec2{X: 100, Y: 100})

	if !d.Apply(dynamo.Vec2{X: 110, Y: 120}) {
		t.Fatal("expected a velocity command")
	}
	if v := light.Velocity(); v.X != 100 || v.Y != 200 {
		t.Errorf("expected velocity (100, 200), got %v", v)
	}
	if target, ok := d.Target(); !ok || target.X != 110 || target.Y != 120 {
		t.Errorf("unexpected target %v %v", target, ok)
	}

	// Mass has no influence on the command.
	heavySpace := physics.NewSpace()
	heavy, _ := addBall(heavySpace, 1000, dynamo.Vec2{X: 100, Y: 100})
	hd := NewDrag(10, 10)
	hd.PointerDown(heavySpace, dynamo.Vec2{X: 100, Y: 100})
	hd.Apply(dynamo.Vec2{X: 110, Y: 120})
	if heavy.Velocity() != light.Velocity() {
		t.Errorf("heavy %v vs light %v", heavy.Velocity(), light.Velocity())
	}
}

func TestPointerUpKeepsSelection(t *testing.T) {
	space := physics.NewSpace()
	ball, ref := addBall(space, 10, dynamo.Vec2{X: 100, Y: 100})

	d := NewDrag(10, 10)
	d.PointerDown(space, dynamo.Vec2{X: 100, Y: 100})
	d.PointerUp()

	if d.Dragging() {
		t.Error("pointer-up should stop dragging")
	}
	if sel, ok := d.Selected(); !ok || sel.ID != ref.ID {
		t.Error("selection should survive pointer-up")
	}
	if _, ok := d.Target(); ok {
		t.Error("target is meaningless once dragging stops")
	}

	ball.SetVelocity(dynamo.Vec2{X: 1, Y: 2})
	if d.Apply(dynamo.Vec2{X: 300, Y: 300}) {
		t.Error("apply must be inert when not dragging")
	}
	if v := ball.Velocity(); v.X != 1 || v.Y != 2 {
		t.Errorf("velocity changed to %v", v)
	}

	// A later miss clears the retained selection.
	d.PointerDown(space, dynamo.Vec2{X: 700, Y: 700})
	if _, ok := d.Selected(); ok {
		t.Error("miss should clear selection")
	}
}

func TestPointerUpWithoutDrag(t *testing.T) {
	d := NewDrag(10, 10)
	d.PointerUp()
	if d.Dragging() {
		t.Error("pointer-up on idle controller must be a no-op")
	}
}
