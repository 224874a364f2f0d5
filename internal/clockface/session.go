package clockface

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetrotime/internal/clock"
	"github.com/vovakirdan/tetrotime/internal/colorscheme"
	"github.com/vovakirdan/tetrotime/internal/core"
	"github.com/vovakirdan/tetrotime/internal/tetromino"
)

// Settings describes a clock independent of the screen it is shown on.
type Settings struct {
	Mode             clock.Mode
	Catalog          tetromino.Catalog
	Engine           tetromino.Config
	Scheme           string
	Seed             int64
	ResampleInterval time.Duration
	Now              func() time.Time // nil uses time.Now
	Logger           *log.Logger      // nil discards
}

// Session is one viewer's clock: a face, the canvas it draws into and the
// active colorscheme. Backends drive it with Step and present Canvas.
type Session struct {
	settings Settings
	logger   *log.Logger
	face     *Face
	canvas   *core.Canvas
	scheme   string
	switches int64
}

// NewSession builds a session for a width x height pixel canvas.
func NewSession(s Settings, width, height int) (*Session, error) {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}

	colors, err := colorscheme.Create(s.Scheme, s.Seed)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		settings: s,
		logger:   s.Logger,
		canvas:   core.NewCanvas(width, height),
		scheme:   s.Scheme,
	}
	sess.canvas.Clear(s.Engine.Background)
	sess.face = New(Options{
		Sampler: clock.NewSampler(s.Mode, s.ResampleInterval, s.Now),
		Catalog: s.Catalog,
		Colors:  colors,
		Config:  s.Engine,
		Logger:  s.Logger,
	}, width, height)
	return sess, nil
}

// Step runs one frame: update against the previous frame, then repaint.
func (s *Session) Step() {
	s.face.Update(s.canvas)
	s.canvas.Clear(s.settings.Engine.Background)
	s.face.Render(s.canvas)
}

// Resize restarts the animation for a new canvas size.
func (s *Session) Resize(width, height int) {
	s.canvas.Resize(width, height)
	s.canvas.Clear(s.settings.Engine.Background)
	s.face.Resize(width, height)
}

// Canvas returns the frame to present.
func (s *Session) Canvas() *core.Canvas {
	return s.canvas
}

// Face returns the underlying face.
func (s *Session) Face() *Face {
	return s.face
}

// Background returns the color the canvas is cleared with.
func (s *Session) Background() core.Color {
	return s.settings.Engine.Background
}

// Scheme returns the active colorscheme ID.
func (s *Session) Scheme() string {
	return s.scheme
}

// SetScheme switches to another colorscheme. Pieces already on screen keep
// their colors.
func (s *Session) SetScheme(id string) error {
	s.switches++
	colors, err := colorscheme.Create(id, s.settings.Seed+s.switches)
	if err != nil {
		return err
	}
	s.face.SetColors(colors)
	s.scheme = id
	s.logger.Debug("colorscheme changed", "scheme", id)
	return nil
}

// NextScheme switches to the next registered colorscheme.
func (s *Session) NextScheme() (string, error) {
	id := colorscheme.NextID(s.scheme)
	if err := s.SetScheme(id); err != nil {
		return s.scheme, err
	}
	return id, nil
}
