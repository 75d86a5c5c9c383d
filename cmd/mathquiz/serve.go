package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathquiz/internal/config"
	"github.com/vovakirdan/mathquiz/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quiz SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every SSH connection gets its own independent quiz. Nothing is shared
between players and nothing is stored.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mathquiz/host_key

Logs go to stderr unless --log-file is set.

Examples:
  mathquiz serve                           # Listen on :23234 with auto-generated key
  mathquiz serve --ssh :2222               # Listen on port 2222
  mathquiz serve --host-key ./my_host_key  # Use specific host key
  mathquiz serve --config ./quiz.yaml      # Serve custom rules

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	quizCfg, err := config.LoadQuiz(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := serverLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Quiz:        quizCfg,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}

// serverLogger logs to stderr, or to --log-file when given.
func serverLogger() (*log.Logger, func(), error) {
	if flagLogFile != "" {
		return newLogger(flagLogFile, flagDebug)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mathquiz-ssh",
		Level:           level,
	})
	return logger, func() {}, nil
}
