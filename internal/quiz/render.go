package quiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mathquiz/internal/core"
)

// Logical canvas the layout is designed for. Coordinates below are in
// canvas pixels and are scaled onto whatever terminal grid is available.
const (
	CanvasW = 900
	CanvasH = 600
)

// Visual characters for rendering
const (
	LifeFullChar  = '■'
	LifeEmptyChar = '□'
	PanelFillChar = ' '
)

const (
	inputPlaceholder = "Type your answer..."
	livesLabel       = "Lives:"
)

// RenderContext carries the rendering state that is not part of the game:
// the canvas size and the jitter source for the shake effect.
type RenderContext struct {
	CanvasW int
	CanvasH int
	rng     *rand.Rand
}

// NewRenderContext creates a render context for the default canvas.
func NewRenderContext(seed int64) *RenderContext {
	return &RenderContext{
		CanvasW: CanvasW,
		CanvasH: CanvasH,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// X scales a canvas x-coordinate to a screen column.
func (c *RenderContext) X(dst *core.Screen, px int) int {
	return px * dst.Width() / c.CanvasW
}

// Y scales a canvas y-coordinate to a screen row.
func (c *RenderContext) Y(dst *core.Screen, py int) int {
	return py * dst.Height() / c.CanvasH
}

// Rect scales a canvas rectangle to screen cells. Panels keep at least
// one interior row and column so their content stays visible.
func (c *RenderContext) Rect(dst *core.Screen, px, py, pw, ph int) core.Rect {
	x0, y0 := c.X(dst, px), c.Y(dst, py)
	x1, y1 := c.X(dst, px+pw), c.Y(dst, py+ph)
	return core.NewRect(x0, y0, core.Max(x1-x0, 3), core.Max(y1-y0+1, 3))
}

// jitter returns a random offset in [-magnitude, magnitude].
func (c *RenderContext) jitter(magnitude int) int {
	if magnitude <= 0 {
		return 0
	}
	return c.rng.Intn(2*magnitude+1) - magnitude
}

// Render draws the snapshot into dst. It reads the snapshot only; the
// jitter source in ctx is the sole state it advances.
func Render(dst *core.Screen, snap Snapshot, ctx *RenderContext) {
	dst.Clear()

	switch snap.Phase {
	case PhaseMenu:
		renderMenu(dst, ctx)
	case PhasePlaying:
		renderPlaying(dst, snap, ctx)
	case PhaseGameOver:
		renderGameOver(dst, snap, ctx)
	}
}

func renderMenu(dst *core.Screen, ctx *RenderContext) {
	dst.DrawTextCentered(ctx.Y(dst, 200), "MATH ADVENTURE", core.ColorBrightYellow)
	dst.DrawTextCentered(ctx.Y(dst, 280), "Press ENTER to start", core.ColorWhite)
	dst.DrawTextCentered(ctx.Y(dst, 350), "Answer the math questions as fast as you can!", core.ColorBlue)
	dst.DrawTextCentered(ctx.Y(dst, 380), "Level 1: Addition | Level 2: Multiplication", core.ColorGreen)
}

func renderPlaying(dst *core.Screen, snap Snapshot, ctx *RenderContext) {
	dst.DrawTextCentered(ctx.Y(dst, 50), "MATH ADVENTURE", core.ColorBrightYellow)

	// Question panel, shaken horizontally after a wrong answer
	panel := ctx.Rect(dst, 200, 120, 500, 100)
	shake := core.Clamp(ctx.X(dst, ctx.jitter(snap.Shake)), -panel.X, dst.Width()-panel.Right())
	panel = panel.Offset(shake, 0)
	drawPanel(dst, panel)
	cx, _ := panel.Center()
	dst.DrawTextCenteredAt(cx, ctx.Y(dst, 170), fmt.Sprintf("Question: %s = ?", snap.Prompt), core.ColorWhite)

	// Input panel
	inputPanel := ctx.Rect(dst, 300, 260, 300, 60)
	drawPanel(dst, inputPanel)
	inputText, inputColor := snap.Input, core.ColorBlue
	if inputText == "" {
		inputText, inputColor = inputPlaceholder, core.ColorGray
	}
	dst.DrawTextCentered(ctx.Y(dst, 290), inputText, inputColor)

	left := ctx.X(dst, 50)

	// Timer
	timerColor := core.ColorWhite
	if snap.SecondsLeft < 5 {
		timerColor = core.ColorRed
	}
	dst.DrawText(left, ctx.Y(dst, 120), fmt.Sprintf("Time: %ds", snap.SecondsLeft), timerColor)

	// Score
	dst.DrawText(left, ctx.Y(dst, 90),
		fmt.Sprintf("Score: %d | Combo: x%d | Level: %d", snap.Score, snap.Combo, snap.Level),
		core.ColorWhite)

	// Lives
	livesY := ctx.Y(dst, 30)
	dst.DrawText(left, livesY, livesLabel, core.ColorWhite)
	drawLives(dst, left+len(livesLabel)+1, livesY, snap.Lives, snap.MaxLives)

	// Feedback
	if snap.FeedbackVisible() {
		color := core.ColorBrightRed
		if snap.Feedback.Success() {
			color = core.ColorBrightGreen
		}
		dst.DrawTextCentered(ctx.Y(dst, 400), snap.Feedback.Message(), color)
	}
}

func renderGameOver(dst *core.Screen, snap Snapshot, ctx *RenderContext) {
	dst.DrawTextCentered(ctx.Y(dst, 260), "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(ctx.Y(dst, 320), fmt.Sprintf("Final score: %d", snap.Score), core.ColorWhite)
	dst.DrawTextCentered(ctx.Y(dst, 360), fmt.Sprintf("Highest level: %d", snap.Level), core.ColorBrightYellow)
	dst.DrawTextCentered(ctx.Y(dst, 420), "Press ESC to quit", core.ColorGray)
}

// drawPanel draws a filled panel with an outline.
func drawPanel(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, PanelFillChar, core.ColorGray)
	dst.DrawBox(r, core.ColorWhite)
}

// drawLives draws one indicator per life slot: filled for remaining, empty for lost.
func drawLives(dst *core.Screen, x, y, lives, maxLives int) {
	for i := 0; i < maxLives; i++ {
		if i < lives {
			dst.SetCell(x+i*2, y, LifeFullChar, core.ColorRed)
		} else {
			dst.SetCell(x+i*2, y, LifeEmptyChar, core.ColorGray)
		}
	}
}
