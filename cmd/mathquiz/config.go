package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathquiz/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective quiz configuration",
	Long: `Print the quiz rules as YAML after applying the config search order:
--config, ~/.mathquiz/configs/quiz.yaml, ./configs/quiz.yaml, built-in defaults.

Redirect the output to a file to start a custom config:
  mathquiz config > ~/.mathquiz/configs/quiz.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadQuiz(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
