// Package physics adapts the chipmunk2d port (github.com/jakecoffman/cp)
// to the [dynamo.Backend] contract.
//
// The engine owns every body; callers only see [dynamo.Body] handles and
// [dynamo.ShapeRef] values. Shapes are numbered in insertion order and
// [Space.PointQuery] always reports hits oldest first, so callers can apply
// an order-dependent tie-break deterministically.
//
//	space := physics.NewSpace()
//	space.SetGravity(dynamo.Vec2{Y: 980})
//	ball, _ := space.AddCircle(20, 10, cp.MomentForCircle(10, 0, 20, cp.Vector{}), pos, dynamo.DefaultMaterial)
//	space.Step(1.0 / 600)
package physics
