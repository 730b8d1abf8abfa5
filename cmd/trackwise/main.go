package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/trackwise/trackwise/internal/advice"
	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/internal/tui"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// stateDir returns ~/.trackwise, creating it if needed.
func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	dir := filepath.Join(home, ".trackwise")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return dir, nil
}

// dataPath returns the data file location: TRACKWISE_DATA env var if set,
// else ~/.trackwise/data.json.
func dataPath() (string, error) {
	if p := os.Getenv("TRACKWISE_DATA"); p != "" {
		return p, nil
	}
	dir, err := stateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data.json"), nil
}

// newLogger builds a file logger so log lines never bleed into the TUI.
func newLogger() *zap.Logger {
	dir, err := stateDir()
	if err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, "trackwise.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func run() error {
	// Optional .env for GEMINI_API_KEY and friends.
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("trackwise " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "path":
			p, err := dataPath()
			if err != nil {
				return err
			}
			fmt.Println(p)
			return nil
		default:
			return fmt.Errorf("unknown command %q (try: trackwise help)", os.Args[1])
		}
	}

	log := newLogger()
	defer log.Sync() //nolint:errcheck // best-effort flush on exit

	path, err := dataPath()
	if err != nil {
		return err
	}
	st := store.Open(path, log)

	var advisor *advice.Advisor
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		advisor, err = advice.New(context.Background(), key, log)
		if err != nil {
			log.Warn("advice client unavailable", zap.Error(err))
			advisor = nil
		}
	} else {
		log.Info("GEMINI_API_KEY not set, using built-in tips")
	}

	app := tui.NewApp(st, advisor, log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func printHelp() {
	fmt.Println(`trackwise — hackathons, projects and internships in one place

usage:
  trackwise            launch the tracker
  trackwise path       print the data file location
  trackwise version    print the version
  trackwise help       show this help

environment:
  TRACKWISE_DATA       override the data file path
  GEMINI_API_KEY       enable mentor tips and README generation`)
}
