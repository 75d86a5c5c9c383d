package config

// Difficulty levels. Level 1 asks addition, level 2 multiplication.
const (
	LevelEasy = 1
	LevelHard = 2
)

// DifficultyManager decides the difficulty level from the cumulative score.
// Promotion is one-way: once a run reaches the hard level it stays there,
// even if later answers cost lives.
type DifficultyManager struct {
	promoteAt int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg QuizTiers) *DifficultyManager {
	return &DifficultyManager{promoteAt: cfg.PromoteAt}
}

// PromoteAt returns the score that unlocks the hard level.
func (d *DifficultyManager) PromoteAt() int {
	return d.promoteAt
}

// Level returns the level for the next question given the current level and score.
func (d *DifficultyManager) Level(current, score int) int {
	if current >= LevelHard {
		return LevelHard
	}
	if score >= d.promoteAt {
		return LevelHard
	}
	return LevelEasy
}
