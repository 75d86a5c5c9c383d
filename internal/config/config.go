// Package config provides YAML-based quiz configuration loading and the
// difficulty level policy.
package config

import (
	"errors"
	"fmt"
	"time"
)

// QuizConfig contains all configuration for the arithmetic quiz.
type QuizConfig struct {
	Timing  QuizTiming  `yaml:"timing"`
	Scoring QuizScoring `yaml:"scoring"`
	Tiers   QuizTiers   `yaml:"tiers"`
	Effects QuizEffects `yaml:"effects"`
}

// QuizTiming defines per-question time limits and feedback duration.
type QuizTiming struct {
	TimeLimitSeconds float64 `yaml:"time_limit_seconds"`
	FeedbackFrames   int     `yaml:"feedback_frames"`
}

// QuizScoring defines score gain and the lives pool.
type QuizScoring struct {
	PointsPerCombo int `yaml:"points_per_combo"`
	Lives          int `yaml:"lives"`
}

// QuizTiers defines operand ranges and the promotion threshold.
type QuizTiers struct {
	PromoteAt int          `yaml:"promote_at"` // Cumulative score that unlocks the hard tier
	Easy      OperandRange `yaml:"easy"`
	Hard      OperandRange `yaml:"hard"`
}

// OperandRange is an inclusive range for randomly drawn operands.
type OperandRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// QuizEffects defines the wrong-answer shake effect.
type QuizEffects struct {
	ShakeMagnitude int `yaml:"shake_magnitude"`
	ShakeDecay     int `yaml:"shake_decay"`
}

// MaxLives is the number of life indicators the HUD can show.
const MaxLives = 3

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid quiz config")

// TimeLimit returns the per-question time limit as a duration.
func (c QuizConfig) TimeLimit() time.Duration {
	return time.Duration(c.Timing.TimeLimitSeconds * float64(time.Second))
}

// Validate checks that every value is usable by the game.
func (c QuizConfig) Validate() error {
	switch {
	case c.Timing.TimeLimitSeconds <= 0:
		return fmt.Errorf("%w: timing.time_limit_seconds must be positive", ErrInvalidConfig)
	case c.Timing.FeedbackFrames < 0:
		return fmt.Errorf("%w: timing.feedback_frames must not be negative", ErrInvalidConfig)
	case c.Scoring.PointsPerCombo <= 0:
		return fmt.Errorf("%w: scoring.points_per_combo must be positive", ErrInvalidConfig)
	case c.Scoring.Lives < 1 || c.Scoring.Lives > MaxLives:
		return fmt.Errorf("%w: scoring.lives must be between 1 and %d", ErrInvalidConfig, MaxLives)
	case c.Tiers.PromoteAt < 0:
		return fmt.Errorf("%w: tiers.promote_at must not be negative", ErrInvalidConfig)
	case c.Effects.ShakeMagnitude < 0 || c.Effects.ShakeDecay <= 0:
		return fmt.Errorf("%w: effects.shake_magnitude must be >= 0 and shake_decay > 0", ErrInvalidConfig)
	}
	if err := c.Tiers.Easy.validate("easy"); err != nil {
		return err
	}
	return c.Tiers.Hard.validate("hard")
}

func (r OperandRange) validate(name string) error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("%w: tiers.%s needs 0 <= min <= max, got [%d, %d]", ErrInvalidConfig, name, r.Min, r.Max)
	}
	return nil
}
