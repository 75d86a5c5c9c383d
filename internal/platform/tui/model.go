package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathquiz/internal/core"
	"github.com/vovakirdan/mathquiz/internal/quiz"
)

// helpRows is the number of terminal rows reserved under the canvas.
const helpRows = 1

// Model is the Bubble Tea model that drives one quiz session.
type Model struct {
	game       *quiz.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	phase      quiz.Phase
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards everything.
func NewModel(game *quiz.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, canvasHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
		phase:      quiz.PhaseMenu,
	}
}

func canvasHeight(termH int) int {
	return max(1, termH-helpRows)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// game is a pointer, so the reset survives the value receiver
	m.game.Reset(m.config)

	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Debug("interrupted", "phase", m.phase)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the game running; only the canvas changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, canvasHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	submitted := m.phase == quiz.PhasePlaying && m.inputFrame.Has(core.ActionConfirm)
	snap := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if submitted && snap.FeedbackVisible() {
		m.logger.Debug("answer", "result", snap.Feedback.Message(), "score", snap.Score, "lives", snap.Lives)
	}

	if snap.Phase != m.phase {
		m.logTransition(snap)
		m.phase = snap.Phase
	}

	if snap.Quit {
		m.logger.Info("player quit", "score", snap.Score, "level", snap.Level)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(snap quiz.Snapshot) {
	switch snap.Phase {
	case quiz.PhasePlaying:
		m.logger.Info("run started", "seed", m.config.Seed, "prompt", snap.Prompt)
	case quiz.PhaseGameOver:
		m.logger.Info("game over", "score", snap.Score, "level", snap.Level, "frames", snap.Frame)
	default:
		m.logger.Debug("phase changed", "from", m.phase, "to", snap.Phase)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys().ForPhase(m.phase))))
	return b.String()
}

// Phase returns the phase observed on the last tick.
func (m Model) Phase() quiz.Phase {
	return m.phase
}

// IsQuitting returns true once the session has asked the program to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game *quiz.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
