package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/config"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/quantum"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/tui"
)

// main - runs a local game in the terminal without redis or sqlite.
func main() {
	conf := config.MustLoadEnv()

	logger, closeLog, err := initLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open debug log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	simulator := quantum.NewStatevectorSimulator(conf.Simulator.Seed)

	if _, err = tea.NewProgram(tui.New(logger, simulator), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("tui failed", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// initLogger writes debug logs to a file when QTTT_DEBUG is set, since stdout belongs to the UI.
func initLogger() (*slog.Logger, func(), error) {
	path := os.Getenv("QTTT_DEBUG")
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(path, "qttt")
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return logger, func() { _ = f.Close() }, nil
}
