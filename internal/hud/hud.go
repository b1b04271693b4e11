// Package hud formats the three status lines shown over the scene.
package hud

import "fmt"

// Status is what the overlay reports each frame.
type Status struct {
	Speed      float64
	FPS        float64
	PhysicsFPS float64
}

// Source is anything that can report a Status, typically a sim.Session.
type Source interface {
	BallSpeed() float64
	RenderFPS() float64
	PhysicsFPS() float64
}

func Read(src Source) Status {
	return Status{
		Speed:      src.BallSpeed(),
		FPS:        src.RenderFPS(),
		PhysicsFPS: src.PhysicsFPS(),
	}
}

// Point is a screen position in pixels.
type Point struct {
	X, Y int32
}

// Positions are the top-left anchors of the three lines, in Lines order.
var Positions = [3]Point{{10, 10}, {10, 50}, {10, 90}}

// Lines returns the speed, render rate and physics rate lines. Rates are
// truncated to whole hertz.
func Lines(speed, fps, physicsFPS float64) [3]string {
	return [3]string{
		fmt.Sprintf("Ball Speed: %.2f m/s", speed),
		fmt.Sprintf("FPS: %d Hz", int(fps)),
		fmt.Sprintf("Physics FPS: %d Hz", int(physicsFPS)),
	}
}

func (s Status) Lines() [3]string { return Lines(s.Speed, s.FPS, s.PhysicsFPS) }
