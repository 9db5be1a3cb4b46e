package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/sandeepkv93/tabdo/internal/persist"
	"github.com/sandeepkv93/tabdo/internal/storage"
	"github.com/sandeepkv93/tabdo/internal/update"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tabdo failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args, update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig()))
	if err != nil {
		return err
	}

	closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	repo, err := storage.Open(cfg.StoreBackend, cfg.ResolvedStorePath())
	if err != nil {
		return err
	}
	defer repo.Close()

	adapter := persist.NewAdapter(repo)
	snapshot, err := adapter.Load(context.Background())
	status := ""
	if err != nil {
		log.WithError(err).Warn("load failed, starting from defaults")
		if errors.Is(err, persist.ErrCorrupt) {
			status = "stored data was unreadable and has been reset"
		} else {
			status = "could not read stored data: " + err.Error()
		}
	}
	fields := log.Fields{
		"backend": cfg.StoreBackend,
		"path":    cfg.ResolvedStorePath(),
		"todos":   len(snapshot.ToDos),
		"tab":     snapshot.Category,
	}
	if at, ok := adapter.LastSaved(context.Background()); ok {
		fields["last_saved"] = at.Format(time.RFC3339)
	}
	log.WithFields(fields).Info("tabdo starting")

	m := update.NewModelWithStore(snapshot, adapter, cfg)
	if status != "" {
		m.Status = update.StatusBar{Text: status, IsError: true}
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	return nil
}

func parseFlags(args []string, cfg update.RuntimeConfig) (update.RuntimeConfig, error) {
	fs := flag.NewFlagSet("tabdo", flag.ContinueOnError)
	backend := fs.String("backend", string(cfg.StoreBackend), "storage backend: sqlite, file, memory or redis")
	fs.StringVar(&cfg.StorePath, "store", cfg.StorePath, "store path, or redis:// URL for the redis backend")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file, empty to disable logging")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.StoreBackend = storage.Backend(*backend)
	if !cfg.StoreBackend.IsValid() {
		return cfg, fmt.Errorf("unknown backend %q", *backend)
	}
	return cfg, nil
}

// setupLogger points logrus at cfg.LogFile. The terminal belongs to the UI,
// so without a file logs are discarded.
func setupLogger(cfg update.RuntimeConfig) (func(), error) {
	log.SetLevel(log.InfoLevel)
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if dir := filepath.Dir(cfg.LogFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
