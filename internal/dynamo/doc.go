// Package dynamo provides the core vocabulary shared by the simulation loop
// and its collaborators.
//
// The package defines the types and contracts the loop is written against:
//
//   - [Vec2]: 2D vector in screen coordinates (y grows downward)
//   - [Viewport]: fixed wrap boundary
//   - [StaticSegment]: immutable line obstacle of the bucket
//   - [Body]: opaque handle to a dynamic body owned by a [Backend]
//   - [Backend]: the rigid-body engine contract (see internal/physics)
//   - [Metric], [Observer]: per-frame diagnostics hooks
//
// # Example
//
//	space := physics.NewSpace()
//	sc, _ := scene.Build(space, cfg)
//	sched, _ := sim.NewScheduler(60, 600)
//	bound := sim.Boundary{Viewport: vp, FallCap: 800}
//	sess := sim.NewSession(space, sc.Ball, bound, sched, control.NewDrag(10, 10))
//	sess.Frame(pointer)
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. The simulation runs
// on a single goroutine and body state is never shared.
package dynamo
