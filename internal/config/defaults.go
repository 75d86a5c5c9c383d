package config

import (
	_ "embed"
)

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// DefaultQuizConfig returns the default quiz configuration.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		Timing: QuizTiming{
			TimeLimitSeconds: 10,
			FeedbackFrames:   60,
		},
		Scoring: QuizScoring{
			PointsPerCombo: 10,
			Lives:          3,
		},
		Tiers: QuizTiers{
			PromoteAt: 100,
			Easy:      OperandRange{Min: 1, Max: 10},
			Hard:      OperandRange{Min: 5, Max: 15},
		},
		Effects: QuizEffects{
			ShakeMagnitude: 15,
			ShakeDecay:     3,
		},
	}
}
