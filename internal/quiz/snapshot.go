package quiz

import "github.com/vovakirdan/mathquiz/internal/config"

// Snapshot captures everything the renderer and the platform need to know
// about the game at the end of a frame. It is a copy; changing it has no
// effect on the game.
type Snapshot struct {
	Frame          uint64
	Phase          Phase
	Score          int
	Lives          int
	MaxLives       int
	Combo          int
	Level          int
	Prompt         string
	Tier           Tier
	Input          string
	Feedback       Outcome
	FeedbackFrames int
	Shake          int
	SecondsLeft    int // Whole seconds left on the question, never negative
	Quit           bool
}

// FeedbackVisible reports whether the feedback window is open.
func (s Snapshot) FeedbackVisible() bool {
	return s.FeedbackFrames > 0 && s.Feedback != OutcomeNone
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:          g.frame,
		Phase:          g.phase,
		MaxLives:       config.MaxLives,
		Prompt:         g.question.Prompt,
		Tier:           g.question.Tier,
		Input:          g.input,
		Feedback:       g.feedback,
		FeedbackFrames: g.feedbackFrames,
		Shake:          g.shake,
		Quit:           g.quit,
	}
	if g.player != nil {
		snap.Score = g.player.Score()
		snap.Lives = g.player.Lives()
		snap.Combo = g.player.Combo()
		snap.Level = g.player.Level()
	}
	if g.phase == PhasePlaying {
		remaining := g.deadline.Sub(g.now())
		snap.SecondsLeft = max(0, int(remaining.Seconds()))
	}
	return snap
}
