// Package cli implements the interactive shell that owns the journal's
// state cache: it wires the local database, the persistence gateway and
// the store together, then drives them from a small REPL.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	_ "modernc.org/sqlite"

	"github.com/Skyism/gratefulnessjar/internal/journal/config"
	"github.com/Skyism/gratefulnessjar/internal/journal/datex"
	"github.com/Skyism/gratefulnessjar/internal/journal/repositories/entries"
	"github.com/Skyism/gratefulnessjar/internal/journal/storage"
	"github.com/Skyism/gratefulnessjar/internal/journal/store"
	"github.com/Skyism/gratefulnessjar/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	repo   entries.Repository
	store  *store.Store
	reader *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := newLogger(cfg.LogLevel)

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "err", err)
		return nil, err
	}

	repo := entries.NewSQLiteRepository(db, log)
	st := store.New(repo, log)

	return &App{
		config: cfg,
		log:    log,
		db:     db,
		repo:   repo,
		store:  st,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func newLogger(level string) logging.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return logging.NewSlogLogger(slog.New(h))
}

// Run loads the initial views and hands control to the REPL. It returns
// when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.store.LoadEntries(ctx); err != nil {
		fmt.Println("Could not load your journal:", err)
	}
	_ = a.store.LoadTodayEntry(ctx)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Gratefulness Jar — one grateful thought per day.")
		fmt.Println("Type 'help' to see commands.")
	}

	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

// Close tears down the store and the database handle.
func (a *App) Close() {
	a.store.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

// statusLine summarizes the cache for the prompt: entry count plus whether
// today has been written yet.
func (a *App) statusLine() string {
	snap := a.store.Snapshot()
	today := "today: —"
	if snap.TodayEntry != nil {
		today = "today: " + snap.TodayEntry.Rating.Label()
	}
	return fmt.Sprintf("%s · %d entries · %s", datex.Today(), len(snap.Entries), today)
}
