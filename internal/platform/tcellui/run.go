// Package tcellui is the alternate terminal backend drawing the clock with
// tcell directly.
package tcellui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tetrotime/internal/clockface"
	"github.com/vovakirdan/tetrotime/internal/core"
)

// Frame rate bounds.
const (
	MinFPS = 1
	MaxFPS = 120
)

// halfBlock paints the upper pixel in the foreground and the lower one in the
// background.
const halfBlock = '▀'

// App drives a clock session on a tcell screen.
type App struct {
	screen  tcell.Screen
	session *clockface.Session
	logger  *log.Logger
	fps     int
}

// NewApp builds a session sized to the screen. The screen must already be
// initialized.
func NewApp(screen tcell.Screen, settings clockface.Settings, cfg core.RuntimeConfig) (*App, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	settings.Seed = cfg.Seed
	if settings.Logger == nil {
		settings.Logger = log.New(io.Discard)
	}

	cfg.ScreenW, cfg.ScreenH = screen.Size()
	w, h := cfg.CanvasSize()
	session, err := clockface.NewSession(settings, w, h)
	if err != nil {
		return nil, err
	}

	return &App{
		screen:  screen,
		session: session,
		logger:  settings.Logger,
		fps:     core.Clamp(cfg.TickRate, MinFPS, MaxFPS),
	}, nil
}

// Session returns the clock session driven by the app.
func (a *App) Session() *clockface.Session {
	return a.session
}

// Frame advances the animation one tick and presents it.
func (a *App) Frame() {
	a.session.Step()
	a.draw()
}

// draw copies the canvas to the screen, two pixel rows per cell row.
func (a *App) draw() {
	c := a.session.Canvas()
	bg := a.session.Background()
	sw, sh := a.screen.Size()

	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			top, ok := c.Get(x, 2*y)
			if !ok {
				top = bg
			}
			bottom, ok := c.Get(x, 2*y+1)
			if !ok {
				bottom = bg
			}

			if top == bottom {
				a.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(bottom)))
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			a.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	a.screen.Show()
}

// HandleEvent reacts to one screen event. It returns false when the app
// should stop.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'c':
				if _, err := a.session.NextScheme(); err != nil {
					a.logger.Error("cannot switch colorscheme", "error", err)
				}
			}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		a.session.Resize(w, h*2)
		a.screen.Sync()
		a.logger.Debug("screen resized", "width", w, "height", h)
	}

	return true
}

// Loop runs frames at the configured rate and handles events until a quit
// key arrives or events is closed.
func (a *App) Loop(events <-chan tcell.Event) {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || ev == nil {
				return
			}
			if !a.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.Frame()
		}
	}
}

// Run takes over the local terminal until the user quits.
func Run(settings clockface.Settings, cfg core.RuntimeConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	app, err := NewApp(screen, settings, cfg)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	app.Loop(events)
	return nil
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
