package quiz

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mathquiz/internal/core"
)

func renderGame(g *Game) *core.Screen {
	dst := core.NewScreen(80, 23)
	g.Render(dst)
	return dst
}

func countRune(s *core.Screen, r rune) int {
	return strings.Count(s.String(), string(r))
}

func TestRenderMenu(t *testing.T) {
	g, _ := newTestGame(t)
	dst := renderGame(g)

	assert.True(t, dst.Contains("MATH ADVENTURE"))
	assert.True(t, dst.Contains("Press ENTER to start"))
	assert.True(t, dst.Contains("Level 1: Addition | Level 2: Multiplication"))
	assert.False(t, dst.Contains("Lives:"))
}

func TestRenderPlaying(t *testing.T) {
	g, _ := startedGame(t)
	dst := renderGame(g)

	assert.True(t, dst.Contains("Question: "+g.Question().Prompt+" = ?"))
	assert.True(t, dst.Contains(inputPlaceholder))
	assert.True(t, dst.Contains("Time: 10s"))
	assert.True(t, dst.Contains("Score: 0 | Combo: x0 | Level: 1"))
	assert.Equal(t, 3, countRune(dst, LifeFullChar))
	assert.Equal(t, 0, countRune(dst, LifeEmptyChar))

	x, y, ok := dst.FindText(inputPlaceholder)
	require.True(t, ok)
	assert.Equal(t, core.ColorGray, dst.GetCell(x, y).Color)
}

func TestRenderInputBuffer(t *testing.T) {
	g, _ := startedGame(t)
	g.Step(frameOf(
		core.Event{Action: core.ActionDigit, Rune: '9'},
		core.Event{Action: core.ActionDigit, Rune: '8'},
		core.Event{Action: core.ActionDigit, Rune: '7'},
	))

	dst := renderGame(g)

	assert.False(t, dst.Contains(inputPlaceholder))
	x, y, ok := dst.FindText("987")
	require.True(t, ok)
	assert.Equal(t, core.ColorBlue, dst.GetCell(x, y).Color)
}

func TestRenderLivesAndFeedback(t *testing.T) {
	g, _ := startedGame(t)
	answerWrong(g)

	dst := renderGame(g)

	assert.Equal(t, 2, countRune(dst, LifeFullChar))
	assert.Equal(t, 1, countRune(dst, LifeEmptyChar))

	x, y, ok := dst.FindText("INCORRECT!")
	require.True(t, ok)
	assert.Equal(t, core.ColorBrightRed, dst.GetCell(x, y).Color)

	answerCorrect(g)
	dst = renderGame(g)
	x, y, ok = dst.FindText("CORRECT!")
	require.True(t, ok)
	assert.Equal(t, core.ColorBrightGreen, dst.GetCell(x, y).Color)
}

func TestRenderHidesExpiredFeedback(t *testing.T) {
	g, _ := startedGame(t)
	answerWrong(g)
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	assert.False(t, renderGame(g).Contains("INCORRECT!"))
}

func TestRenderTimerTurnsRed(t *testing.T) {
	g, clock := startedGame(t)

	x, y, ok := renderGame(g).FindText("Time: 10s")
	require.True(t, ok)
	assert.Equal(t, core.ColorWhite, renderGame(g).GetCell(x, y).Color)

	clock.Advance(6 * time.Second)
	dst := renderGame(g)
	x, y, ok = dst.FindText("Time: 4s")
	require.True(t, ok)
	assert.Equal(t, core.ColorRed, dst.GetCell(x, y).Color)

	// Past the deadline but before the next frame, the timer floors at zero.
	clock.Advance(10 * time.Second)
	assert.True(t, renderGame(g).Contains("Time: 0s"))
}

func TestRenderShakeStaysNearPanel(t *testing.T) {
	g, _ := startedGame(t)
	answerWrong(g)
	prompt := "Question: " + g.Question().Prompt + " = ?"

	ref := core.NewScreen(80, 23)
	Render(ref, Snapshot{Phase: PhasePlaying, Prompt: g.Question().Prompt, MaxLives: 3}, NewRenderContext(1))
	baseX, _, ok := ref.FindText(prompt)
	require.True(t, ok)

	for i := 0; i < 20; i++ {
		dst := renderGame(g)
		x, _, ok := dst.FindText(prompt)
		require.True(t, ok)
		assert.LessOrEqual(t, core.Abs(x-baseX), 1, "15px of shake is at most one column at 80 columns")
	}
}

func TestRenderGameOver(t *testing.T) {
	g, _ := startedGame(t)
	answerCorrect(g)
	for i := 0; i < 3; i++ {
		answerWrong(g)
	}

	dst := renderGame(g)

	assert.True(t, dst.Contains("GAME OVER"))
	assert.True(t, dst.Contains("Final score: 10"))
	assert.True(t, dst.Contains("Highest level: 1"))
	assert.True(t, dst.Contains("Press ESC to quit"))
	assert.False(t, dst.Contains("Question:"))
}

func TestRenderContextScaling(t *testing.T) {
	ctx := NewRenderContext(0)
	dst := core.NewScreen(90, 30)

	assert.Equal(t, 90, ctx.X(dst, CanvasW))
	assert.Equal(t, 30, ctx.Y(dst, CanvasH))
	assert.Equal(t, 20, ctx.X(dst, 200))

	r := ctx.Rect(dst, 300, 260, 300, 60)
	assert.Equal(t, core.NewRect(30, 13, 30, 4), r)

	// Tiny screens still get a panel with an interior.
	small := ctx.Rect(core.NewScreen(10, 5), 300, 260, 300, 60)
	assert.GreaterOrEqual(t, small.W, 3)
	assert.GreaterOrEqual(t, small.H, 3)
}
