package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clarahjk00/Final-Proejct-G2/internal/infrastructure/storage"
	"github.com/clarahjk00/Final-Proejct-G2/internal/ingest/image"
	"github.com/clarahjk00/Final-Proejct-G2/internal/ports"
	"github.com/clarahjk00/Final-Proejct-G2/internal/solver"
	"github.com/clarahjk00/Final-Proejct-G2/internal/usecase"
	"github.com/clarahjk00/Final-Proejct-G2/internal/validator"
)

var (
	logLevel string
	dataDir  string
	ocrCmd   string
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve 9x9 Sudoku puzzles",
	Long: `Solve 9x9 Sudoku puzzles by exhaustive backtracking.

Run without arguments for an interactive menu, or use the subcommands:
  sudoku solve puzzle.txt
  sudoku scan --ocr-cmd ./recognize.sh board.jpg
  sudoku serve --addr :8080`,
	RunE:          runInteractive,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "./data", "save directory for puzzles")
	rootCmd.PersistentFlags().StringVar(&ocrCmd, "ocr-cmd", "", "external command that prints 81 digits for an image")
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newService wires providers into the use-case layer. The recognizer is only
// available when --ocr-cmd was given.
func newService() *usecase.Service {
	var rec ports.Recognizer
	if ocrCmd != "" {
		rec = image.NewExternalRecognizer(ocrCmd)
	}
	return usecase.NewService(
		solver.NewBacktrackingSolver(),
		validator.New(),
		rec,
		storage.NewFS(dataDir),
	)
}
