package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/mathquiz/internal/config"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultQuizConfig().Scoring)
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()
	assert.Equal(t, 0, p.Score())
	assert.Equal(t, 3, p.Lives())
	assert.Equal(t, 0, p.Combo())
	assert.Equal(t, 1, p.Level())
	assert.True(t, p.Alive())
}

func TestRecordCorrectScalesWithCombo(t *testing.T) {
	p := newTestPlayer()
	p.RecordCorrect()
	p.RecordCorrect()
	assert.Equal(t, 2, p.Combo())
	assert.Equal(t, 30, p.Score())

	gained := p.RecordCorrect()

	assert.Equal(t, 30, gained)
	assert.Equal(t, 3, p.Combo())
	assert.Equal(t, 60, p.Score())
}

func TestRecordIncorrectResetsCombo(t *testing.T) {
	for _, streak := range []int{0, 1, 5} {
		p := newTestPlayer()
		for i := 0; i < streak; i++ {
			p.RecordCorrect()
		}
		score := p.Score()

		p.RecordIncorrect()

		assert.Equal(t, 0, p.Combo(), "streak %d", streak)
		assert.Equal(t, 2, p.Lives(), "streak %d", streak)
		assert.Equal(t, score, p.Score(), "streak %d", streak)
	}
}

func TestPlayerDies(t *testing.T) {
	p := newTestPlayer()
	p.RecordIncorrect()
	p.RecordIncorrect()
	assert.True(t, p.Alive())
	p.RecordIncorrect()
	assert.False(t, p.Alive())
}
