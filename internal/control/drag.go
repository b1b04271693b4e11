package control

import "github.com/san-kum/bucketsim/internal/dynamo"

// Drag holds the transient pointer-drag state. At most one shape is
// selected at a time.
type Drag struct {
	Gain        float64
	QueryRadius float64

	selected *dynamo.ShapeRef
	dragging bool
	// target is only meaningful while dragging.
	target dynamo.Vec2
}

func NewDrag(gain, queryRadius float64) *Drag {
	return &Drag{Gain: gain, QueryRadius: queryRadius}
}

// PointerDown selects the last circle shape within QueryRadius of p and
// starts dragging it. If no circle is hit the selection is cleared.
func (d *Drag) PointerDown(b dynamo.Backend, p dynamo.Vec2) bool {
	hits := b.PointQuery(p, d.QueryRadius)
	d.selected = nil

	for i := len(hits) - 1; i >= 0; i-- {
		if hits[i].Shape.Kind == dynamo.ShapeCircle {
			ref := hits[i].Shape
			d.selected = &ref
			break
		}
	}

	if d.selected == nil {
		return false
	}
	for _, h := range hits {
		if h.Shape.ID == d.selected.ID {
			d.dragging = true
			d.target = p
			return true
		}
	}
	d.selected = nil
	return false
}

// PointerUp stops dragging. The selection is kept until the next
// pointer-down that misses.
func (d *Drag) PointerUp() {
	d.dragging = false
}

// Apply drives the selected body toward p by overwriting its velocity.
// It reports whether a command was issued.
func (d *Drag) Apply(p dynamo.Vec2) bool {
	if !d.dragging || d.selected == nil || d.selected.Body == nil {
		return false
	}
	d.target = p

	body := d.selected.Body
	delta := d.target.Sub(body.Position())
	body.SetVelocity(delta.Scale(d.Gain))
	return true
}

func (d *Drag) Dragging() bool { return d.dragging }

// Selected returns the selected shape, if any.
func (d *Drag) Selected() (dynamo.ShapeRef, bool) {
	if d.selected == nil {
		return dynamo.ShapeRef{}, false
	}
	return *d.selected, true
}

// Target returns the last pointer position applied while dragging.
func (d *Drag) Target() (dynamo.Vec2, bool) {
	return d.target, d.dragging
}
