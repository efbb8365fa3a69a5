package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/settings"
	"github.com/sandeepkv93/todo/internal/update"
	"github.com/sandeepkv93/todo/internal/window"
)

func main() {
	memorySettings := flag.Bool("memory-settings", false, "keep settings in memory for this run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "todo: load config: %v\n", err)
		os.Exit(1)
	}
	if *memorySettings {
		cfg.MemorySettings = true
	}

	log, closeLog, err := logging.Open(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "todo: %v\n", err)
		os.Exit(1)
	}

	code := run(cfg, log)
	_ = closeLog()
	os.Exit(code)
}

func run(cfg config.RuntimeConfig, log zerolog.Logger) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openSettings(cfg, log)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.SettingsPath()).Msg("open settings failed")
		return 1
	}
	defer store.Close()

	ctrl := window.New(store,
		window.WithDataPath(cfg.DataPath()),
		window.WithLogger(log),
	)
	if err := ctrl.Load(ctx); err != nil {
		log.Error().Err(err).Str("path", cfg.DataPath()).Msg("load failed")
		return 1
	}

	program := tea.NewProgram(update.NewModel(ctx, ctrl, log), tea.WithAltScreen())
	final, runErr := program.Run()
	if runErr != nil {
		log.Error().Err(runErr).Msg("terminal ui failed")
	}

	closed, closeErr := false, error(nil)
	if m, ok := final.(update.Model); ok {
		closed, closeErr = m.Closed()
	}
	if !closed {
		closeErr = ctrl.Close(ctx)
	}
	if closeErr != nil {
		log.Error().Err(closeErr).Str("path", cfg.DataPath()).Msg("save failed")
		fmt.Fprintf(os.Stderr, "todo: %v\n", closeErr)
		return 1
	}
	if runErr != nil {
		return 1
	}
	return 0
}

func openSettings(cfg config.RuntimeConfig, log zerolog.Logger) (settings.Store, error) {
	if cfg.MemorySettings {
		return settings.NewMemoryStore(settings.DefaultSchema()), nil
	}
	return settings.OpenSQLiteStore(cfg.SettingsPath(), settings.DefaultSchema(), log)
}
