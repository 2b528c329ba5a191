package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Game is what the model drives once per tick.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
}

// Options configures a Model.
type Options struct {
	FrameRate  int
	HoldWindow time.Duration
	Width      int // Initial terminal size, updated on resize
	Height     int
	Logger     *log.Logger
}

// Model is the Bubble Tea model running the game loop.
type Model struct {
	game      Game
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	pending   core.InputFrame // One-shot actions since the last tick
	frameRate int
	logger    *log.Logger
	now       func() time.Time
	quitting  bool
}

// NewModel creates a model for the given game.
func NewModel(game Game, opts Options) Model {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    core.NewScreen(opts.Width, max(opts.Height-1, 0)),
		keys:      DefaultKeyMap(),
		help:      h,
		held:      NewHeldKeys(opts.HoldWindow),
		pending:   core.NewInputFrame(),
		frameRate: opts.FrameRate,
		logger:    logger,
		now:       time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The bottom row holds the help line.
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c leaves even if the game stops ticking.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		m.held.Release()
		return m, tea.Quit
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case Holdable(action):
		m.held.Press(action, m.now())
	default:
		m.pending.Set(action)
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.held.Active(now)
	frame.Merge(m.pending)
	m.pending.Clear()

	if res := m.game.Step(frame); res.Quit {
		m.quitting = true
		m.held.Release()
		return m, tea.Quit
	}
	return m, tickCmd(m.frameRate)
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
