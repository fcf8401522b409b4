package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lg37/bazhong-sim/internal/config"
	"github.com/lg37/bazhong-sim/internal/store"
	"github.com/lg37/bazhong-sim/internal/tui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("bazhong-sim %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	dbPath, err := settings.DatabasePath()
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	achievements, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open achievements store: %w", err)
	}
	defer achievements.Close()

	model := tui.New(settings.TickInterval, settings.Seed, achievements)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
