package quiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mathquiz/internal/config"
)

// Tier is the difficulty class of a question.
type Tier int

const (
	TierEasy Tier = iota // Addition
	TierHard             // Multiplication
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Operator returns the symbol shown in the prompt.
func (t Tier) Operator() string {
	if t == TierHard {
		return "×"
	}
	return "+"
}

// Apply evaluates the tier's operator.
func (t Tier) Apply(a, b int) int {
	if t == TierHard {
		return a * b
	}
	return a + b
}

// TierForLevel maps a difficulty level to the tier of questions it asks.
func TierForLevel(level int) Tier {
	if level >= config.LevelHard {
		return TierHard
	}
	return TierEasy
}

// Question is one arithmetic prompt. It is immutable once generated.
type Question struct {
	Tier   Tier
	A, B   int
	Prompt string // e.g. "7 + 3"
	Answer int
}

// NewQuestion builds a question for the given operands.
func NewQuestion(t Tier, a, b int) Question {
	return Question{
		Tier:   t,
		A:      a,
		B:      b,
		Prompt: fmt.Sprintf("%d %s %d", a, t.Operator(), b),
		Answer: t.Apply(a, b),
	}
}

// Generator produces random questions from a seeded source.
type Generator struct {
	rng  *rand.Rand
	easy config.OperandRange
	hard config.OperandRange
}

// NewGenerator creates a generator with the given seed and operand ranges.
func NewGenerator(seed int64, tiers config.QuizTiers) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		easy: tiers.Easy,
		hard: tiers.Hard,
	}
}

// Reset reseeds the generator.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate draws two independent operands for the tier.
func (g *Generator) Generate(t Tier) Question {
	r := g.easy
	if t == TierHard {
		r = g.hard
	}
	a := g.draw(r)
	b := g.draw(r)
	return NewQuestion(t, a, b)
}

// draw returns a uniform integer in [r.Min, r.Max].
func (g *Generator) draw(r config.OperandRange) int {
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}
