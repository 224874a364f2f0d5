package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetrotime/internal/clockface"
	"github.com/vovakirdan/tetrotime/internal/core"
)

// Model is the Bubble Tea model showing one clock.
type Model struct {
	session  *clockface.Session
	config   core.RuntimeConfig
	renderer *lipgloss.Renderer
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	showHelp bool
	quitting bool
}

// NewModel creates a model for a cfg.ScreenW x cfg.ScreenH terminal.
// cfg.Seed seeds the colorscheme; 0 uses the current time. A nil renderer
// uses the default one.
func NewModel(settings clockface.Settings, cfg core.RuntimeConfig, renderer *lipgloss.Renderer) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	settings.Seed = cfg.Seed
	if settings.Logger == nil {
		settings.Logger = log.New(io.Discard)
	}
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	w, h := cfg.CanvasSize()
	session, err := clockface.NewSession(settings, w, h)
	if err != nil {
		return Model{}, err
	}

	return Model{
		session:  session,
		config:   cfg,
		renderer: renderer,
		logger:   settings.Logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.session.Step()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.NextScheme):
		if _, err := m.session.NextScheme(); err != nil {
			m.logger.Error("cannot switch colorscheme", "error", err)
		}
	}
	return m, nil
}

// handleResize restarts the animation for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.session.Resize(m.config.CanvasSize())
	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := RenderRows(m.renderer, m.session.Canvas(), m.session.Background())
	if m.showHelp && len(rows) > 0 {
		rows[len(rows)-1] = m.help.View(m.keys)
	}
	return strings.Join(rows, "\n")
}

// Session returns the clock session driven by the model.
func (m Model) Session() *clockface.Session {
	return m.session
}

// Run starts the Bubble Tea program on the local terminal.
func Run(settings clockface.Settings, cfg core.RuntimeConfig) error {
	model, err := NewModel(settings, cfg, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
