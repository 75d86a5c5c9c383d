package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mathquiz/internal/config"
)

func TestGenerateEasy(t *testing.T) {
	gen := NewGenerator(7, config.DefaultQuizConfig().Tiers)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		q := gen.Generate(TierEasy)
		require.Equal(t, TierEasy, q.Tier)
		require.GreaterOrEqual(t, q.A, 1)
		require.LessOrEqual(t, q.A, 10)
		require.GreaterOrEqual(t, q.B, 1)
		require.LessOrEqual(t, q.B, 10)
		require.Equal(t, q.A+q.B, q.Answer)
		require.Equal(t, fmt.Sprintf("%d + %d", q.A, q.B), q.Prompt)
		seen[q.A] = true
	}

	assert.Len(t, seen, 10, "every operand in [1,10] should be drawn")
}

func TestGenerateHard(t *testing.T) {
	gen := NewGenerator(7, config.DefaultQuizConfig().Tiers)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		q := gen.Generate(TierHard)
		require.Equal(t, TierHard, q.Tier)
		require.GreaterOrEqual(t, q.A, 5)
		require.LessOrEqual(t, q.A, 15)
		require.GreaterOrEqual(t, q.B, 5)
		require.LessOrEqual(t, q.B, 15)
		require.Equal(t, q.A*q.B, q.Answer)
		require.Equal(t, fmt.Sprintf("%d × %d", q.A, q.B), q.Prompt)
		seen[q.B] = true
	}

	assert.Len(t, seen, 11, "every operand in [5,15] should be drawn")
}

func TestGeneratorDeterminism(t *testing.T) {
	tiers := config.DefaultQuizConfig().Tiers
	g1 := NewGenerator(99, tiers)
	g2 := NewGenerator(99, tiers)

	for i := 0; i < 50; i++ {
		assert.Equal(t, g1.Generate(TierEasy), g2.Generate(TierEasy))
	}

	g1.Reset(5)
	g2.Reset(5)
	assert.Equal(t, g1.Generate(TierHard), g2.Generate(TierHard))
}

func TestTierForLevel(t *testing.T) {
	assert.Equal(t, TierEasy, TierForLevel(config.LevelEasy))
	assert.Equal(t, TierHard, TierForLevel(config.LevelHard))
	assert.Equal(t, "+", TierEasy.Operator())
	assert.Equal(t, "×", TierHard.Operator())
}
