package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"searchpanel/internal/eventbus"
	"searchpanel/internal/ui"
	"searchpanel/internal/ui/handlers"
)

// ErrNotTerminal is returned when the panel is started without a terminal
var ErrNotTerminal = errors.New("stdout is not a terminal; use `searchpanel query` for plain output")

func runTUI(cmd *cobra.Command, opts *options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	cfg, _, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	// Set up logging
	if opts.logPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.logPath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		logFile, err := tea.LogToFile(opts.logPath, "searchpanel")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, sourceName, err := loadSource(cfg)
	if err != nil {
		return err
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	handlers.NewEventHandler(log.Default()).Attach(bus)

	bus.Publish(eventbus.ResultsLoadedEvent{Source: sourceName, Count: store.Len()})

	programOpts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	log.Printf("Starting UI...")
	p := tea.NewProgram(ui.NewModel(bus, cfg, store), programOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			log.Printf("Interrupted")
			return nil
		}
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
