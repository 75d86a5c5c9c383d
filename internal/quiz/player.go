package quiz

import "github.com/vovakirdan/mathquiz/internal/config"

// Player tracks score, lives, combo streak and difficulty level for one run.
type Player struct {
	score          int
	lives          int
	combo          int
	level          int
	pointsPerCombo int
}

// NewPlayer creates a player with a full set of lives at level 1.
func NewPlayer(cfg config.QuizScoring) *Player {
	return &Player{
		lives:          cfg.Lives,
		level:          config.LevelEasy,
		pointsPerCombo: cfg.PointsPerCombo,
	}
}

// RecordCorrect extends the combo and awards points scaled by it.
// Returns the points gained.
func (p *Player) RecordCorrect() int {
	p.combo++
	gained := p.pointsPerCombo * p.combo
	p.score += gained
	return gained
}

// RecordIncorrect costs a life and breaks the combo.
func (p *Player) RecordIncorrect() {
	p.lives--
	p.combo = 0
}

// Alive reports whether the player has lives left.
func (p *Player) Alive() bool {
	return p.lives > 0
}

func (p *Player) Score() int { return p.score }
func (p *Player) Lives() int { return p.lives }
func (p *Player) Combo() int { return p.combo }
func (p *Player) Level() int { return p.level }
