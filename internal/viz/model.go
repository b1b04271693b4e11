package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bucketsim/internal/dynamo"
	"github.com/san-kum/bucketsim/internal/hud"
	"github.com/san-kum/bucketsim/internal/sim"
)

const (
	width           = 64
	height          = 24
	historyCapacity = 120
)

type TickMsg time.Time

// Model drives a session from bubbletea ticks at the render rate.
type Model struct {
	sess   *sim.Session
	title  string
	frame  time.Duration
	canvas *Canvas

	width, height int
	speedHistory  []float64
	wraps         int
	err           error
}

func NewModel(sess *sim.Session, title string) Model {
	return Model{
		sess:         sess,
		title:        title,
		frame:        time.Second / time.Duration(sess.Scheduler().RenderRate()),
		canvas:       NewCanvas(width, height),
		width:        width,
		height:       height,
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

// Run starts the terminal program and blocks until the user quits.
func Run(sess *sim.Session, title string) error {
	p := tea.NewProgram(NewModel(sess, title), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Err is the simulation error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.MouseMsg:
		p, ok := m.toWorld(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionPress:
			if ok && msg.Button == tea.MouseButtonLeft {
				m.sess.PointerDown(p)
			}
		case tea.MouseActionRelease:
			m.sess.PointerUp()
		case tea.MouseActionMotion:
			if ok {
				m.sess.PointerMove(p)
			}
		}

	case TickMsg:
		f, err := m.sess.Frame(m.sess.Pointer())
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.sess.MarkFrame()
		m.wraps += f.Wraps
		m.speedHistory = append(m.speedHistory, f.Velocity.Norm())
		if len(m.speedHistory) > historyCapacity {
			m.speedHistory = m.speedHistory[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

// toWorld maps a terminal cell to viewport coordinates at the cell centre.
// It reports false for cells outside the canvas.
func (m Model) toWorld(cellX, cellY int) (dynamo.Vec2, bool) {
	col, row := cellX-canvasOriginX, cellY-canvasOriginY
	if col < 0 || row < 0 || col >= m.width || row >= m.height {
		return dynamo.Vec2{}, false
	}
	vp := m.sess.Viewport()
	return dynamo.Vec2{
		X: (float64(col) + 0.5) / float64(m.width) * vp.Width,
		Y: (float64(row) + 0.5) / float64(m.height) * vp.Height,
	}, true
}

// project maps viewport coordinates to canvas sub-pixels.
func (m Model) project(v dynamo.Vec2) (int, int) {
	vp := m.sess.Viewport()
	x := v.X / vp.Width * float64(m.width*2)
	y := v.Y / vp.Height * float64(m.height*4)
	return int(math.Floor(x)), int(math.Floor(y))
}

func (m Model) draw() {
	m.canvas.Clear()
	b := m.sess.Backend()
	for _, seg := range b.Segments() {
		x0, y0 := m.project(seg.A)
		x1, y1 := m.project(seg.B)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}

	vp := m.sess.Viewport()
	scale := float64(m.width*2) / vp.Width
	for _, c := range b.Circles() {
		body := c.Shape.Body
		center := body.Position()
		cx, cy := m.project(center)
		m.canvas.DrawCircle(cx, cy, int(math.Round(c.Radius*scale)))
		rim := center.Add(dynamo.Vec2{X: math.Cos(body.Angle()), Y: math.Sin(body.Angle())}.Scale(c.Radius))
		rx, ry := m.project(rim)
		m.canvas.DrawLine(cx, cy, rx, ry)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	for _, line := range hud.Read(m.sess).Lines() {
		s.WriteString(lineStyle.Render(line) + "\n")
	}

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("Speed"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	last := m.sess.Last()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", last.Time)) + "\n")
	s.WriteString(labelStyle.Render("Wraps") + valueStyle.Render(fmt.Sprintf("%d", m.wraps)) + "\n")
	if m.sess.Drag().Dragging() {
		s.WriteString(labelStyle.Render("Drag") + dragOn.Render("holding") + "\n")
	} else {
		s.WriteString(labelStyle.Render("Drag") + dragOff.Render("free") + "\n")
	}
	if m.err != nil {
		s.WriteString(errText.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("mouse: drag ball  q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
