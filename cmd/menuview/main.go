package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menuview/internal/config"
	"menuview/internal/credential"
	"menuview/internal/menuapi"
	"menuview/internal/telemetry"
	"menuview/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so the log goes to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "menuview")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	tp, err := telemetry.New(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		log.Printf("telemetry: disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()

	var creds credential.Provider
	if cfg.Auth.Token != "" {
		creds = credential.Static(cfg.Auth.Token)
	} else if creds, err = credential.FromEnv(cfg.Auth.TokenFile); err != nil {
		return fmt.Errorf("token store: %w", err)
	}

	if fs, ok := creds.(*credential.FileStore); ok {
		log.Printf("menuview: reading access token from %s", fs.Path())
	}

	client := menuapi.New(cfg.API.BaseURL,
		menuapi.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		menuapi.WithCredentials(creds),
		menuapi.WithTracer(tp.Tracer()),
	)
	log.Printf("menuview: api=%s perPage=%d timeout=%s tracing=%v", cfg.API.BaseURL, cfg.API.PerPage, cfg.API.Timeout, tp.Enabled())

	model := ui.NewAppModel(client, cfg.API.PerPage, cfg.API.Timeout).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
