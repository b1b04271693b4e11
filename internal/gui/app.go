package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bucketsim/internal/config"
	"github.com/san-kum/bucketsim/internal/dynamo"
	"github.com/san-kum/bucketsim/internal/experiment"
	"github.com/san-kum/bucketsim/internal/hud"
	"github.com/san-kum/bucketsim/internal/sim"
)

type App struct {
	Session *sim.Session
	Title   string
	Width   int32
	Height  int32

	// FontSize is the overlay text height in pixels.
	FontSize int32
}

func NewApp(cfg *config.Config, sess *sim.Session) *App {
	return &App{
		Session:  sess,
		Title:    cfg.Title,
		Width:    int32(cfg.Viewport.Width),
		Height:   int32(cfg.Viewport.Height),
		FontSize: 20,
	}
}

// initWindow opens the window and keeps Escape from closing it, so only the
// window's close button ends the loop.
func (a *App) initWindow() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(a.Width, a.Height, a.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib window: %w", dynamo.ErrBackendUnavailable)
	}
	rl.SetExitKey(0)
	return nil
}

// Run opens the window, builds the scene and blocks until the window is
// closed. Nothing is built if the window cannot be opened, and the window is
// released on every return path.
func Run(cfg *config.Config) error {
	app := NewApp(cfg, nil)
	if err := app.initWindow(); err != nil {
		return err
	}
	defer rl.CloseWindow()

	sess, err := experiment.Setup(cfg)
	if err != nil {
		return err
	}
	app.Session = sess
	return app.RunLoop()
}

func (a *App) RunLoop() error {
	for !rl.WindowShouldClose() {
		if err := a.Update(); err != nil {
			return err
		}
		a.Draw()
		a.Session.Throttle()
	}
	return nil
}

// Update feeds this frame's mouse input to the drag controller, then runs
// one session frame at the current pointer.
func (a *App) Update() error {
	p := fromScreen(rl.GetMousePosition())
	a.Session.PointerMove(p)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.Session.PointerDown(p)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.Session.PointerUp()
	}

	_, err := a.Session.Frame(p)
	return err
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	b := a.Session.Backend()
	for _, seg := range b.Segments() {
		drawSegment(seg)
	}
	for _, c := range b.Circles() {
		drawCircle(c)
	}

	a.drawOverlay()
	rl.EndDrawing()
}

func (a *App) drawOverlay() {
	lines := hud.Read(a.Session).Lines()
	for i, line := range lines {
		pos := hud.Positions[i]
		rl.DrawText(line, pos.X, pos.Y, a.FontSize, ColText)
	}
}
