package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/lpg/internal/clipboard"
	"github.com/sant0-9/lpg/internal/config"
	"github.com/sant0-9/lpg/internal/document"
	"github.com/sant0-9/lpg/internal/logging"
	"github.com/sant0-9/lpg/internal/store"
	"github.com/sant0-9/lpg/internal/tui"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println("lpg", version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logCfg := cfg
	if logCfg == nil {
		logCfg = config.DefaultConfig()
	}
	log := openLog(logCfg)
	defer log.Sync()

	statePath, err := config.StatePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Info("starting", "version", version, "first_run", !config.Exists())

	app := tui.NewApp(tui.Options{
		Config:    cfg,
		Converter: document.NewConverter(),
		Store:     store.Open(statePath),
		Clipboard: clipboard.System(),
		Logger:    log,
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		log.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLog falls back to a discarding logger; a broken log file must not
// keep the form from starting.
func openLog(cfg *config.Config) *logging.Logger {
	path, err := cfg.LogPath()
	if err == nil {
		var log *logging.Logger
		if log, err = logging.New(cfg.Log.Level, path); err == nil {
			return log
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	return logging.Nop()
}
