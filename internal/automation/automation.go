package automation

import (
	"fmt"
	"os"

	"github.com/san-kum/bucketsim/internal/dynamo"
	"gopkg.in/yaml.v3"
)

// Pointer actions a script can issue.
const (
	ActionDown = "down"
	ActionMove = "move"
	ActionUp   = "up"
)

// Script is a scripted pointer sequence replayed against a session.
type Script struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Events      []Event `yaml:"events"`
}

// Event fires just before the given 1-based frame runs.
type Event struct {
	Frame  int     `yaml:"frame"`
	Action string  `yaml:"action"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

func (e Event) Point() dynamo.Vec2 { return dynamo.Vec2{X: e.X, Y: e.Y} }

// Target receives pointer events. *sim.Session satisfies it.
type Target interface {
	PointerDown(p dynamo.Vec2) bool
	PointerMove(p dynamo.Vec2)
	PointerUp()
}

// LoadScript loads and validates a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate requires positive, non-decreasing frames and known actions.
func (s *Script) Validate() error {
	prev := 0
	for i, ev := range s.Events {
		switch ev.Action {
		case ActionDown, ActionMove, ActionUp:
		default:
			return fmt.Errorf("event %d: unknown action %q: %w", i+1, ev.Action, dynamo.ErrInvalidScript)
		}
		if ev.Frame < 1 {
			return fmt.Errorf("event %d: frame %d: %w", i+1, ev.Frame, dynamo.ErrInvalidScript)
		}
		if ev.Frame < prev {
			return fmt.Errorf("event %d: frame %d before %d: %w", i+1, ev.Frame, prev, dynamo.ErrInvalidScript)
		}
		prev = ev.Frame
	}
	return nil
}

// Frames is the last frame any event targets.
func (s *Script) Frames() int {
	if len(s.Events) == 0 {
		return 0
	}
	return s.Events[len(s.Events)-1].Frame
}

// Player replays a Script. Each run needs its own Player.
type Player struct {
	script *Script
	next   int
}

func NewPlayer(s *Script) *Player {
	return &Player{script: s}
}

// Drive delivers every event scheduled for frame, in file order. Events for
// frames already passed are delivered too, so a skipped frame loses nothing.
func (p *Player) Drive(frame int, t Target) int {
	if p == nil || p.script == nil {
		return 0
	}
	n := 0
	for p.next < len(p.script.Events) && p.script.Events[p.next].Frame <= frame {
		ev := p.script.Events[p.next]
		switch ev.Action {
		case ActionDown:
			t.PointerDown(ev.Point())
		case ActionMove:
			t.PointerMove(ev.Point())
		case ActionUp:
			t.PointerUp()
		}
		p.next++
		n++
	}
	return n
}

// Done reports whether every event has been delivered.
func (p *Player) Done() bool {
	return p == nil || p.script == nil || p.next >= len(p.script.Events)
}

func (p *Player) Reset() { p.next = 0 }
