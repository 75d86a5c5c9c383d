// Package quiz implements the arithmetic quiz: a menu, a timed question loop
// with combo scoring and three lives, and a game over screen.
//
// The game is a pure state machine advanced once per frame by Step. It has no
// dependency on the terminal; the platform layer feeds it input frames and
// draws it with Render.
package quiz

import (
	"strconv"
	"time"

	"github.com/vovakirdan/mathquiz/internal/config"
	"github.com/vovakirdan/mathquiz/internal/core"
)

// MaxInputLen is the maximum number of digits in the answer buffer.
const MaxInputLen = 3

// Phase is the current screen of the game.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is the result of one question.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeInvalid
	OutcomeTimeout
)

// Message returns the feedback label shown after the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeCorrect:
		return "CORRECT!"
	case OutcomeIncorrect:
		return "INCORRECT!"
	case OutcomeInvalid:
		return "INVALID INPUT!"
	case OutcomeTimeout:
		return "TIME'S UP!"
	default:
		return ""
	}
}

// Success reports whether the outcome is shown in the success color.
func (o Outcome) Success() bool {
	return o == OutcomeCorrect
}

// Option configures a Game.
type Option func(*Game)

// WithClock overrides the wall clock used for question deadlines.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// Game implements the quiz session controller.
type Game struct {
	cfg        config.QuizConfig
	difficulty *config.DifficultyManager
	gen        *Generator
	render     *RenderContext
	now        func() time.Time

	phase          Phase
	player         *Player
	question       Question
	input          string
	feedback       Outcome
	feedbackFrames int
	deadline       time.Time
	shake          int
	quit           bool
	frame          uint64
}

// New creates a quiz in the menu phase.
func New(cfg config.QuizConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Tiers),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "mathquiz"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Math Adventure"
}

// Reset returns the game to the menu and reseeds its random sources.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if g.gen == nil {
		g.gen = NewGenerator(rt.Seed, g.cfg.Tiers)
	} else {
		g.gen.Reset(rt.Seed)
	}
	g.render = NewRenderContext(rt.Seed)

	g.phase = PhaseMenu
	g.player = NewPlayer(g.cfg.Scoring)
	g.question = Question{}
	g.input = ""
	g.feedback = OutcomeNone
	g.feedbackFrames = 0
	g.deadline = time.Time{}
	g.shake = 0
	g.quit = false
	g.frame = 0
}

// Step advances the game by one frame. Events are handled in arrival order,
// then the deadline and the lives are checked.
func (g *Game) Step(in core.InputFrame) Snapshot {
	g.frame++
	g.decayEffects()

	for _, e := range in.Events {
		if g.quit {
			break
		}
		g.handleEvent(e)
	}

	if g.phase == PhasePlaying {
		// A frame that already exhausted the lives skips the deadline check.
		if g.player.Alive() && g.now().After(g.deadline) {
			g.player.RecordIncorrect()
			g.finishQuestion(OutcomeTimeout)
		}
		if !g.player.Alive() {
			g.phase = PhaseGameOver
			g.input = ""
		}
	}

	return g.Snapshot()
}

// decayEffects ticks the feedback window and the shake once per frame.
func (g *Game) decayEffects() {
	if g.feedbackFrames > 0 {
		g.feedbackFrames--
	}
	if g.shake > 0 {
		g.shake = core.Max(0, g.shake-g.cfg.Effects.ShakeDecay)
	}
}

func (g *Game) handleEvent(e core.Event) {
	switch g.phase {
	case PhaseMenu:
		if e.Action == core.ActionConfirm {
			g.start()
		}
	case PhasePlaying:
		g.handlePlayingEvent(e)
	case PhaseGameOver:
		if e.Action == core.ActionQuit {
			g.quit = true
		}
	}
}

func (g *Game) handlePlayingEvent(e core.Event) {
	switch e.Action {
	case core.ActionDigit:
		if isDigit(e.Rune) && len(g.input) < MaxInputLen {
			g.input += string(e.Rune)
		}
	case core.ActionDelete:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
	case core.ActionConfirm:
		if g.input != "" && g.player.Alive() {
			g.submit()
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// start begins a fresh run.
func (g *Game) start() {
	g.phase = PhasePlaying
	g.player = NewPlayer(g.cfg.Scoring)
	g.input = ""
	g.feedback = OutcomeNone
	g.feedbackFrames = 0
	g.shake = 0
	g.nextQuestion()
}

// submit scores the buffered answer. A buffer that does not parse counts
// as a wrong answer with its own label.
func (g *Game) submit() {
	answer, err := strconv.Atoi(g.input)

	var outcome Outcome
	switch {
	case err != nil:
		g.player.RecordIncorrect()
		outcome = OutcomeInvalid
	case answer == g.question.Answer:
		g.player.RecordCorrect()
		outcome = OutcomeCorrect
	default:
		g.player.RecordIncorrect()
		g.shake = g.cfg.Effects.ShakeMagnitude
		outcome = OutcomeIncorrect
	}

	g.finishQuestion(outcome)
}

// finishQuestion shows feedback and moves on to the next question.
func (g *Game) finishQuestion(outcome Outcome) {
	g.feedback = outcome
	g.feedbackFrames = g.cfg.Timing.FeedbackFrames
	g.input = ""
	g.nextQuestion()
}

// nextQuestion re-evaluates the level, draws a question and restarts the clock.
func (g *Game) nextQuestion() {
	g.player.level = g.difficulty.Level(g.player.level, g.player.score)
	g.question = g.gen.Generate(TierForLevel(g.player.level))
	g.deadline = g.now().Add(g.cfg.TimeLimit())
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Quit reports whether the player asked to leave the game over screen.
func (g *Game) Quit() bool {
	return g.quit
}

// Question returns the active question.
func (g *Game) Question() Question {
	return g.question
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot(), g.render)
}
