package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"eatnsplit/internal/app"
	"eatnsplit/internal/config"
	"eatnsplit/internal/logging"
	"eatnsplit/internal/trace"
	"eatnsplit/internal/ui"
)

// parseFlags loads the environment config and lets flags override it.
func parseFlags() *config.Config {
	cfg := config.Load()

	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file (empty: discard)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.StringVar(&cfg.AvatarBase, "avatar-base", cfg.AvatarBase, "default image URL prefix for new friends")
	flag.StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", cfg.OTLPEndpoint, "OTLP/HTTP collector host:port (empty: tracing off)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eatnsplit [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Eat 'N Split tracks who owes whom among your friends\n")
		fmt.Fprintf(os.Stderr, "and splits shared bills.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	tracer, err := trace.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("trace shutdown", "err", err)
		}
	}()

	slog.Info("starting", "avatar_base", cfg.AvatarBase, "tracing", cfg.OTLPEndpoint != "")

	model := ui.NewAppModel(ctx, app.NewSeeded(), ui.Options{
		AvatarBase: cfg.AvatarBase,
		Tracer:     tracer,
		Logger:     slog.Default(),
	}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	slog.Info("bye")
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
