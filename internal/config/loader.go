package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadQuiz loads the quiz configuration.
// Search order: customPath -> ~/.mathquiz/configs/quiz.yaml -> ./configs/quiz.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets.
func LoadQuiz(customPath string) (QuizConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return QuizConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseQuiz(data)
		if err != nil {
			return QuizConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("quiz.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseQuiz(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "quiz.yaml")); err == nil {
		if cfg, err := parseQuiz(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseQuiz(defaultQuizYAML)
	if err != nil {
		return DefaultQuizConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseQuiz decodes YAML over the defaults and validates the result.
func parseQuiz(data []byte) (QuizConfig, error) {
	cfg := DefaultQuizConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return QuizConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return QuizConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg QuizConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathquiz", "configs", filename)
}
