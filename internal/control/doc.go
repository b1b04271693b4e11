// Package control turns pointer input into commands on physics bodies.
//
// [Drag] is a two-state machine (idle, dragging):
//
//   - [Drag.PointerDown] hit-tests the backend and selects the most recently
//     added circle under the pointer
//   - [Drag.Apply] overwrites the selected body's velocity with
//     (pointer − position) × gain while dragging
//   - [Drag.PointerUp] stops dragging but keeps the selection
//
// # Usage
//
//	drag := control.NewDrag(10, 10)
//	drag.PointerDown(space, mouse)
//	drag.Apply(mouse) // once per frame
//	drag.PointerUp()
package control
